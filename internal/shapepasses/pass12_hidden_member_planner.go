package shapepasses

import "github.com/tsoniclang/generatedts/internal/symgraph"

// HiddenMemberPlanner is pass 12 (spec.md §4.2.12): where the source
// metadata marks a member as hiding an inherited one (the source object
// system's `new` modifier), tag the shadowing member Hidden and suppress
// inheritance of the base member's documentation links.
func HiddenMemberPlanner(ctx Context, g *symgraph.SymbolGraph) *symgraph.SymbolGraph {
	return g.MapTypes(func(_ symgraph.Namespace, t symgraph.Type) symgraph.Type {
		requirePass(ctx, t, "InterfaceInliner")
		changed := false
		members := make([]symgraph.Member, len(t.Members))
		for i, m := range t.Members {
			if m.HidesInherited && m.Tag.Kind == symgraph.TagNone {
				m = m.WithTag(symgraph.Hidden())
				m.HideDocs = true
				changed = true
			}
			members[i] = m
		}
		if !changed {
			return t
		}
		return t.WithMembers(members)
	})
}
