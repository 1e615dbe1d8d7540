package namereserver

import (
	"sort"
	"strings"

	"github.com/tsoniclang/generatedts/internal/symgraph"
)

// surfaceMember reports whether m is named on the class surface proper —
// i.e. it is neither a ViewOnly projection (named inside its View instead)
// nor Omitted from emission entirely. Hidden members still surface (they
// shadow a base member; they just suppress inherited docs).
func surfaceMember(m symgraph.Member) bool {
	if m.EmitScope == symgraph.ScopeOmitted {
		return false
	}
	return m.Tag.Kind == symgraph.TagNone || m.Tag.Kind == symgraph.TagHidden
}

// ApplyNamesToGraph runs Phase 3.5 (spec.md §4.3): assigns TsEmitName to
// every Type and Member whose EmitScope is not Omitted, in the mandated
// deterministic order, and returns the rewritten graph together with the
// Reserver that made the reservations, so callers (tests, diagnostics) can
// inspect it. The completeness audit in Audit works on the rewritten graph.
func ApplyNamesToGraph(g *symgraph.SymbolGraph) (*symgraph.SymbolGraph, *Reserver) {
	r := New()

	// Step 1: all type names, namespaces in graph order.
	typeNames := map[string]string{} // CanonicalID -> TsEmitName
	for _, ns := range g.Namespaces {
		for _, t := range ns.Types {
			if t.EmitScope == symgraph.ScopeOmitted {
				continue
			}
			scope := NamespaceScopeOf(ns.ID, ns.Area.String())
			typeNames[t.CanonicalID] = r.Reserve(scope, localName(t.CanonicalID))
		}
	}

	// Step 2: member names, types in graph order; instance, then static,
	// then each view by stable interface id, lexicographic.
	out := g.MapTypes(func(ns symgraph.Namespace, t symgraph.Type) symgraph.Type {
		if name, ok := typeNames[t.CanonicalID]; ok {
			t = t.WithTsEmitName(name)
		}
		if t.EmitScope == symgraph.ScopeOmitted {
			return t
		}

		members := make([]symgraph.Member, len(t.Members))
		copy(members, t.Members)

		reserveSide := func(isStatic bool) {
			scope := ClassSurfaceScopeOf(t.CanonicalID, isStatic)
			for i, m := range members {
				if m.IsStatic != isStatic || !surfaceMember(m) {
					continue
				}
				members[i] = m.WithTsEmitName(r.Reserve(scope, m.Name))
			}
		}
		reserveSide(false)
		reserveSide(true)

		views := make([]symgraph.View, len(t.Views))
		sortedViews := make([]int, len(t.Views))
		for i := range sortedViews {
			sortedViews[i] = i
		}
		sort.Slice(sortedViews, func(a, b int) bool {
			return t.Views[sortedViews[a]].InterfaceID < t.Views[sortedViews[b]].InterfaceID
		})
		for _, vi := range sortedViews {
			v := t.Views[vi]
			scope := ViewScopeOf(t.CanonicalID, v.InterfaceID)
			vMembers := make([]symgraph.Member, len(v.Members))
			for i, m := range v.Members {
				if m.EmitScope == symgraph.ScopeOmitted {
					vMembers[i] = m
					continue
				}
				vMembers[i] = m.WithTsEmitName(r.Reserve(scope, m.Name))
			}
			v.Members = vMembers
			v.TsEmitName = t.TsEmitName.TakeOrElse(func() string { return "" }) + "$" + localName(v.InterfaceID)
			views[vi] = v
		}

		t = t.WithMembers(members)
		t = t.WithViews(views)
		return t
	})

	return out, r
}

// localName strips a dotted namespace path, returning the simple name
// NameReserver normalizes and reserves; the namespace itself is already
// the scope discriminator so it is never part of the proposed name.
func localName(canonicalID string) string {
	if i := strings.LastIndex(canonicalID, "."); i >= 0 {
		return canonicalID[i+1:]
	}
	return canonicalID
}

// Audit enforces P4 (spec.md §8): every non-omitted symbol has a
// TsEmitName after Phase 3.5. A violation here indicates a defect in
// ApplyNamesToGraph itself, not in input data, so it is reported through
// the same GateMissingEmitName diagnostic PhaseGate (§4.7 family a) uses —
// that family re-runs this exact check as a cross-cutting invariant.
func Audit(g *symgraph.SymbolGraph) []symgraph.Diagnostic {
	var diags []symgraph.Diagnostic
	for _, ns := range g.Namespaces {
		for _, t := range ns.Types {
			if t.EmitScope != symgraph.ScopeOmitted {
				if t.TsEmitName.IsNone() {
					diags = append(diags, symgraph.GateMissingEmitName(t.CanonicalID, ""))
				}
			}
			for _, m := range t.Members {
				if surfaceMember(m) && m.TsEmitName.IsNone() {
					diags = append(diags, symgraph.GateMissingEmitName(t.CanonicalID, m.Name))
				}
			}
			for _, v := range t.Views {
				for _, m := range v.Members {
					if m.EmitScope == symgraph.ScopeOmitted {
						continue
					}
					if m.TsEmitName.IsNone() {
						diags = append(diags, symgraph.GateMissingEmitName(t.CanonicalID, m.Name))
					}
				}
			}
		}
	}
	return diags
}
