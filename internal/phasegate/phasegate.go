// Package phasegate implements PhaseGate (Phase 4.7, spec.md §4.7): the
// final cross-cutting validator. It runs ten families of checks over the
// fully-shaped graph, the name reservations, the import plan, the emit
// order, and the constraint findings, and reports every violation as a
// Diagnostic. Any Error-severity diagnostic means the driver must skip
// emission (P7, spec.md §8) — this package only detects; the driver
// decides what to do with the result.
package phasegate

import "github.com/tsoniclang/generatedts/internal/symgraph"

// Input bundles everything PhaseGate needs: the shaped graph plus every
// side artifact the earlier Phase 4/4.5/4.6 collaborators produced.
type Input struct {
	Graph             *symgraph.SymbolGraph
	Indices           *symgraph.Indices
	ImportPlan        *symgraph.ImportPlan
	EmitOrder         symgraph.EmitOrder
	ConstraintResults []symgraph.ConstraintFinding
}

// Run executes all ten check families and returns the combined diagnostics.
func Run(in Input) []symgraph.Diagnostic {
	var diags []symgraph.Diagnostic
	diags = append(diags, checkEmitNamesPresent(in)...)      // (a)
	diags = append(diags, checkNoDuplicateNames(in)...)       // (b)
	diags = append(diags, checkTypeRefsResolve(in)...)        // (c)
	diags = append(diags, checkNoIndexerLeak(in)...)          // (d)
	diags = append(diags, checkViewsMaterialized(in)...)      // (e)
	diags = append(diags, checkImportPlanComplete(in)...)     // (f)
	diags = append(diags, checkEmitOrderTotal(in)...)         // (g)
	diags = append(diags, checkConstraintFindings(in)...)     // (h)
	diags = append(diags, checkNoInterfaceCycle(in)...)       // (i)
	diags = append(diags, checkNoUnsetEmitScope(in)...)       // (j)
	return diags
}

// HasBlockingErrors reports whether diags contains any Error-severity
// entry — the condition that forces the driver to skip emission (P7).
func HasBlockingErrors(diags []symgraph.Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == symgraph.SeverityError {
			return true
		}
	}
	return false
}

func surfaces(t symgraph.Type) []symgraph.Member {
	var out []symgraph.Member
	for _, m := range t.Members {
		if m.EmitScope == symgraph.ScopeOmitted {
			continue
		}
		if m.Tag.Kind == symgraph.TagNone || m.Tag.Kind == symgraph.TagHidden {
			out = append(out, m)
		}
	}
	for _, v := range t.Views {
		for _, m := range v.Members {
			if m.EmitScope != symgraph.ScopeOmitted {
				out = append(out, m)
			}
		}
	}
	return out
}

// (a) every non-omitted symbol has TsEmitName.
func checkEmitNamesPresent(in Input) []symgraph.Diagnostic {
	var diags []symgraph.Diagnostic
	for _, t := range in.Graph.AllTypes() {
		if t.EmitScope != symgraph.ScopeOmitted {
			if _, ok := t.TsEmitName.Take(); !ok {
				diags = append(diags, symgraph.GateMissingEmitName(t.CanonicalID, ""))
			}
		}
		for _, m := range surfaces(t) {
			if _, ok := m.TsEmitName.Take(); !ok {
				diags = append(diags, symgraph.GateMissingEmitName(t.CanonicalID, m.Name))
			}
		}
	}
	return diags
}

// (b) no duplicate TsEmitName within any scope (namespace, class surface, view).
func checkNoDuplicateNames(in Input) []symgraph.Diagnostic {
	var diags []symgraph.Diagnostic

	for _, ns := range in.Graph.Namespaces {
		seen := map[string]bool{}
		for _, t := range ns.Types {
			name, ok := t.TsEmitName.Take()
			if !ok {
				continue
			}
			scope := "namespace:" + ns.ID
			if seen[name] {
				diags = append(diags, symgraph.GateNameCollide(scope, name))
			}
			seen[name] = true
		}
	}

	for _, t := range in.Graph.AllTypes() {
		for _, isStatic := range []bool{false, true} {
			seen := map[string]bool{}
			scope := "class-surface:" + t.CanonicalID + ":" + boolStr(isStatic)
			for _, m := range t.Members {
				if m.IsStatic != isStatic || m.EmitScope == symgraph.ScopeOmitted {
					continue
				}
				if m.Tag.Kind != symgraph.TagNone && m.Tag.Kind != symgraph.TagHidden {
					continue
				}
				name, ok := m.TsEmitName.Take()
				if !ok {
					continue
				}
				if seen[name] {
					diags = append(diags, symgraph.GateNameCollide(scope, name))
				}
				seen[name] = true
			}
		}
		for _, v := range t.Views {
			seen := map[string]bool{}
			scope := "view:" + t.CanonicalID + "#" + v.InterfaceID
			for _, m := range v.Members {
				name, ok := m.TsEmitName.Take()
				if !ok || m.EmitScope == symgraph.ScopeOmitted {
					continue
				}
				if seen[name] {
					diags = append(diags, symgraph.GateNameCollide(scope, name))
				}
				seen[name] = true
			}
		}
	}
	return diags
}

func boolStr(b bool) string {
	if b {
		return "static"
	}
	return "instance"
}

// (c) every TypeRef resolves via indices or is flagged dangling.
func checkTypeRefsResolve(in Input) []symgraph.Diagnostic {
	var diags []symgraph.Diagnostic
	check := func(ref symgraph.TypeRef) {
		if ref.External {
			return
		}
		if _, ok := in.Indices.Resolve(ref.CanonicalID); !ok {
			diags = append(diags, symgraph.GateDanglingRef(ref.CanonicalID))
		}
	}
	for _, t := range in.Graph.AllTypes() {
		if bt, ok := t.BaseType.Take(); ok {
			check(bt)
		}
		for _, iface := range t.Interfaces {
			check(iface)
		}
		for _, m := range t.Members {
			for _, sig := range m.AllSignatures() {
				for _, p := range sig.Params {
					check(p.Type)
				}
				check(sig.ReturnType)
			}
		}
	}
	return diags
}

// (d) no indexer remains on a surface.
func checkNoIndexerLeak(in Input) []symgraph.Diagnostic {
	var diags []symgraph.Diagnostic
	for _, t := range in.Graph.AllTypes() {
		for _, m := range t.Members {
			if m.Kind == symgraph.IndexerMember && m.EmitScope != symgraph.ScopeOmitted {
				diags = append(diags, symgraph.GateLeakedIndexer(t.CanonicalID, m.Name))
			}
		}
	}
	return diags
}

// (e) every ViewOnly member maps to a ViewPlanner-materialized view.
func checkViewsMaterialized(in Input) []symgraph.Diagnostic {
	var diags []symgraph.Diagnostic
	for _, t := range in.Graph.AllTypes() {
		for _, m := range t.Members {
			if !m.Tag.IsViewOnly() {
				continue
			}
			if _, ok := t.ViewFor(m.Tag.InterfaceID); !ok {
				diags = append(diags, symgraph.GateOrphanView(t.CanonicalID, m.Tag.InterfaceID))
			}
		}
	}
	return diags
}

// (f) import plan covers every cross-namespace reference.
func checkImportPlanComplete(in Input) []symgraph.Diagnostic {
	var diags []symgraph.Diagnostic
	nsOfType := map[string]string{}
	for _, ns := range in.Graph.Namespaces {
		for _, t := range ns.Types {
			nsOfType[t.CanonicalID] = ns.ID
		}
	}
	refsOf := func(t symgraph.Type) []symgraph.TypeRef {
		var out []symgraph.TypeRef
		if bt, ok := t.BaseType.Take(); ok {
			out = append(out, bt)
		}
		out = append(out, t.Interfaces...)
		return out
	}
	for _, ns := range in.Graph.Namespaces {
		for _, t := range ns.Types {
			for _, ref := range refsOf(t) {
				if ref.External {
					continue
				}
				fromNS, ok := nsOfType[ref.CanonicalID]
				if !ok || fromNS == ns.ID {
					continue
				}
				resolved, ok := in.Indices.Resolve(ref.CanonicalID)
				if !ok {
					continue
				}
				symbol, ok := resolved.TsEmitName.Take()
				if !ok {
					continue
				}
				if !in.ImportPlan.Covers(ns.ID, fromNS, symbol) {
					diags = append(diags, symgraph.GateImportIncomplete(ns.ID, symbol))
				}
			}
		}
	}
	return diags
}

// (g) emit order is total.
func checkEmitOrderTotal(in Input) []symgraph.Diagnostic {
	ids := make([]string, len(in.Graph.Namespaces))
	for i, ns := range in.Graph.Namespaces {
		ids[i] = ns.ID
	}
	if !in.EmitOrder.IsTotal(ids) {
		return []symgraph.Diagnostic{symgraph.GateEmitOrderIncomplete()}
	}
	return nil
}

// (h) constraint findings contain no unresolved errors.
func checkConstraintFindings(in Input) []symgraph.Diagnostic {
	var diags []symgraph.Diagnostic
	for _, f := range in.ConstraintResults {
		if f.Severity == symgraph.ConstraintError {
			diags = append(diags, symgraph.ConstraintUnsatisfiable(f.TypeID, f.InterfaceID))
		}
	}
	return diags
}

// (i) no interface-inheritance cycle. Phase 2 already detects and reports
// this (spec.md §4.1); PhaseGate re-checks GlobalInterfaceIndex here as the
// final cross-cutting gate rather than trusting the Phase-2 diagnostic
// survived every intervening rewrite untouched. Phase 2 leaves the closure
// of a cyclic interface empty, so an interface that declares an in-graph base
// yet has no transitive ancestors is part of a cycle.
func checkNoInterfaceCycle(in Input) []symgraph.Diagnostic {
	var diags []symgraph.Diagnostic
	for _, t := range in.Graph.AllTypes() {
		if t.Kind != symgraph.InterfaceKind {
			continue
		}
		declaresBase := false
		for _, ref := range t.Interfaces {
			if !ref.External {
				declaresBase = true
				break
			}
		}
		if declaresBase && len(in.Indices.TransitiveInterfaces(t.CanonicalID)) == 0 {
			diags = append(diags, symgraph.InterfaceBaseCycle([]string{t.CanonicalID}))
		}
	}
	return diags
}

// (j) no unset EmitScope.
func checkNoUnsetEmitScope(in Input) []symgraph.Diagnostic {
	var diags []symgraph.Diagnostic
	for _, t := range in.Graph.AllTypes() {
		if t.EmitScope == symgraph.ScopeUnset {
			diags = append(diags, symgraph.GateUnsetScope(t.CanonicalID))
		}
		for _, m := range t.Members {
			if m.EmitScope == symgraph.ScopeUnset {
				diags = append(diags, symgraph.GateUnsetScope(t.CanonicalID+"#"+m.Name))
			}
		}
	}
	return diags
}
