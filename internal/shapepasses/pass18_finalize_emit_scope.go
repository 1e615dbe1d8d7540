package shapepasses

import "github.com/tsoniclang/generatedts/internal/symgraph"

// FinalizeEmitScope is pass 18 (spec.md §4.2.18): after every structural
// rewrite has run, resolve every remaining ScopeUnset to a determinate
// value. Types inherit their namespace Area; members inherit their
// Visibility, except Omitted/Hidden-tagged members which always finalize to
// Omitted/the visibility-derived scope respectively — Hidden still surfaces
// on the class surface, it merely suppresses inherited docs.
func FinalizeEmitScope(_ Context, g *symgraph.SymbolGraph) *symgraph.SymbolGraph {
	return g.MapTypes(func(ns symgraph.Namespace, t symgraph.Type) symgraph.Type {
		changed := false

		if t.EmitScope == symgraph.ScopeUnset {
			t.EmitScope = areaScope(ns.Area)
			changed = true
		}

		members := make([]symgraph.Member, len(t.Members))
		for i, m := range t.Members {
			resolved, wasChanged := finalizeMemberScope(m)
			members[i] = resolved
			changed = changed || wasChanged
		}

		views := make([]symgraph.View, len(t.Views))
		for i, v := range t.Views {
			vMembers := make([]symgraph.Member, len(v.Members))
			for j, m := range v.Members {
				resolved, _ := finalizeMemberScope(m)
				vMembers[j] = resolved
			}
			v.Members = vMembers
			views[i] = v
		}

		if !changed {
			return t
		}
		t = t.WithMembers(members)
		t = t.WithViews(views)
		return t
	})
}

func areaScope(a symgraph.Area) symgraph.EmitScope {
	if a == symgraph.Internal {
		return symgraph.ScopeInternal
	}
	return symgraph.ScopePublic
}

func finalizeMemberScope(m symgraph.Member) (symgraph.Member, bool) {
	if m.Tag.Kind == symgraph.TagOmitted {
		if m.EmitScope == symgraph.ScopeOmitted {
			return m, false
		}
		m.EmitScope = symgraph.ScopeOmitted
		return m, true
	}
	if m.EmitScope != symgraph.ScopeUnset {
		return m, false
	}
	m.EmitScope = visibilityScope(m.Visibility)
	return m, true
}

func visibilityScope(v symgraph.Visibility) symgraph.EmitScope {
	switch v {
	case symgraph.VisibilityPublic, symgraph.VisibilityProtected:
		return symgraph.ScopePublic
	default:
		return symgraph.ScopeInternal
	}
}
