// Package overloadunifier implements OverloadUnifier (Phase 4.5,
// spec.md §4.5): groups class members by (scope, name); where a group has
// two or more methods, folds them into one declaration carrying every
// distinct parameter list as an overload signature, ordered by descending
// specificity, and re-applies the widen-or-demote rule from shape pass 8
// (spec.md §4.2.8) for any return-type conflict pass 8 didn't already
// reconcile. Non-method groups (fields, properties, events, indexers,
// constructors) are left untouched — only methods carry overload sets.
package overloadunifier

import (
	"sort"

	"github.com/tsoniclang/generatedts/internal/config"
	"github.com/tsoniclang/generatedts/internal/symgraph"
)

// Unify rewrites g in place (functionally: returns a new graph) applying
// the unification rule to every type's class surface and every
// materialized view.
func Unify(cfg config.Config, idx *symgraph.Indices, sink *symgraph.DiagnosticsSink, g *symgraph.SymbolGraph) *symgraph.SymbolGraph {
	return g.MapTypes(func(_ symgraph.Namespace, t symgraph.Type) symgraph.Type {
		t = t.WithMembers(unifyGroup(cfg, idx, sink, t.CanonicalID, t.Members))

		views := make([]symgraph.View, len(t.Views))
		for i, v := range t.Views {
			v.Members = unifyGroup(cfg, idx, sink, t.CanonicalID, v.Members)
			views[i] = v
		}
		return t.WithViews(views)
	})
}

type groupKey struct {
	name     string
	isStatic bool
	tag      symgraph.ViewTag
}

// unifyGroup folds method groups sharing (name, isStatic, ViewTag) within a
// single member slice into one declaration per group, emitted at the
// position of the group's first-seen member; non-method members pass
// through untouched in their original position.
func unifyGroup(cfg config.Config, idx *symgraph.Indices, sink *symgraph.DiagnosticsSink, typeID string, members []symgraph.Member) []symgraph.Member {
	groups := map[groupKey][]symgraph.Member{}
	for _, m := range members {
		if m.Kind != symgraph.MethodMember {
			continue
		}
		k := groupKey{name: m.Name, isStatic: m.IsStatic, tag: m.Tag}
		groups[k] = append(groups[k], m)
	}

	out := make([]symgraph.Member, 0, len(members))
	emitted := map[groupKey]bool{}
	for _, m := range members {
		if m.Kind != symgraph.MethodMember {
			out = append(out, m)
			continue
		}
		k := groupKey{name: m.Name, isStatic: m.IsStatic, tag: m.Tag}
		if emitted[k] {
			continue
		}
		emitted[k] = true
		out = append(out, unifyOne(cfg, idx, sink, typeID, groups[k]))
	}
	return out
}

func unifyOne(cfg config.Config, idx *symgraph.Indices, sink *symgraph.DiagnosticsSink, typeID string, group []symgraph.Member) symgraph.Member {
	if len(group) == 1 && len(group[0].Overloads) == 0 {
		return group[0]
	}

	var sigs []symgraph.Signature
	seen := map[symgraph.ErasedSignature]bool{}
	for _, m := range group {
		for _, s := range m.AllSignatures() {
			erased := s.Erase()
			if seen[erased] {
				continue
			}
			seen[erased] = true
			sigs = append(sigs, s)
		}
	}
	sort.SliceStable(sigs, func(a, b int) bool {
		return sigs[a].SpecificityRank() < sigs[b].SpecificityRank()
	})

	primary := group[0]
	primary.Signature = sigs[0]
	primary.Overloads = sigs[1:]

	if len(primary.WidenedReturnUnion) == 0 && primary.Tag.Kind != symgraph.TagOmitted {
		distinct := distinctReturns(primary)
		if len(distinct) > 1 {
			if cfg.WidenOverloadReturns && len(distinct) <= cfg.MaxOverloadReturnUnion {
				if union, ok := nominalCommonAncestor(idx, distinct); ok {
					primary.WidenedReturnUnion = distinct
					primary.Signature.ReturnType = union
					sink.Add(symgraph.OverloadReturnWidened(typeID, primary.Name))
					return primary
				}
			}
			primary.Tag = symgraph.Omitted()
			sink.Add(symgraph.OverloadReturnDemoted(typeID, primary.Name))
		}
	}
	return primary
}

func distinctReturns(m symgraph.Member) []symgraph.TypeRef {
	var out []symgraph.TypeRef
	seen := map[string]bool{}
	for _, sig := range m.AllSignatures() {
		if !seen[sig.ReturnType.CanonicalID] {
			seen[sig.ReturnType.CanonicalID] = true
			out = append(out, sig.ReturnType)
		}
	}
	return out
}

// nominalCommonAncestor mirrors shapepasses.nominalSiblings (spec.md
// §4.2.8); duplicated rather than imported because shapepasses keeps its
// assignability helpers unexported, and Phase 4.5 runs as an independent
// collaborator outside the shape-pass sequence (spec.md §4.5 header).
func nominalCommonAncestor(idx *symgraph.Indices, returns []symgraph.TypeRef) (symgraph.TypeRef, bool) {
	ancestorsOf := func(ref symgraph.TypeRef) []string {
		var chain []string
		cur := ref.CanonicalID
		seen := map[string]bool{}
		for {
			if seen[cur] {
				break
			}
			seen[cur] = true
			chain = append(chain, cur)
			t, ok := idx.Resolve(cur)
			if !ok {
				break
			}
			base, hasBase := t.BaseType.Take()
			if !hasBase {
				break
			}
			cur = base.CanonicalID
		}
		return chain
	}

	if len(returns) == 0 {
		return symgraph.TypeRef{}, false
	}
	common := ancestorsOf(returns[0])
	for _, r := range returns[1:] {
		chain := map[string]bool{}
		for _, id := range ancestorsOf(r) {
			chain[id] = true
		}
		var filtered []string
		for _, id := range common {
			if chain[id] {
				filtered = append(filtered, id)
			}
		}
		common = filtered
	}
	for _, id := range common {
		isInput := false
		for _, r := range returns {
			if r.CanonicalID == id {
				isInput = true
				break
			}
		}
		if !isInput {
			return symgraph.NewTypeRef(id), true
		}
	}
	if len(common) == 0 {
		return symgraph.TypeRef{}, false
	}
	return symgraph.NewTypeRef(common[0]), true
}
