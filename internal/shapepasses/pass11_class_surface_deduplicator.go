package shapepasses

import "github.com/tsoniclang/generatedts/internal/symgraph"

// ClassSurfaceDeduplicator is pass 11 (spec.md §4.2.11): when a view's
// member exactly duplicates a class-surface member, demote the
// class-surface copy to ViewOnly so the view remains the single source of
// truth.
func ClassSurfaceDeduplicator(_ Context, g *symgraph.SymbolGraph) *symgraph.SymbolGraph {
	return g.MapTypes(func(_ symgraph.Namespace, t symgraph.Type) symgraph.Type {
		if len(t.Views) == 0 {
			return t
		}
		viewKeys := map[symgraph.MemberKey]string{} // key -> interface id
		for _, v := range t.Views {
			for _, m := range v.Members {
				viewKeys[m.Key()] = v.InterfaceID
			}
		}

		seenKeys := map[symgraph.MemberKey]bool{}
		var members []symgraph.Member
		for _, m := range t.Members {
			if m.Tag.Kind == symgraph.TagNone {
				if ifaceID, ok := viewKeys[m.Key()]; ok {
					m = m.WithTag(symgraph.ViewOnly(ifaceID))
				}
			}
			key := m.Key()
			dedupKey := struct {
				symgraph.MemberKey
				tag symgraph.ViewTag
			}{key, m.Tag}
			if seenKeys[key] && m.Tag.IsViewOnly() {
				// Another exact (key, ViewOnly-tag) entry already kept;
				// skip this redundant demotion.
				if alreadyHasTag(members, dedupKey) {
					continue
				}
			}
			seenKeys[key] = true
			members = append(members, m)
		}
		return t.WithMembers(members)
	})
}

func alreadyHasTag(members []symgraph.Member, want struct {
	symgraph.MemberKey
	tag symgraph.ViewTag
}) bool {
	for _, m := range members {
		if m.Key() == want.MemberKey && m.Tag == want.tag {
			return true
		}
	}
	return false
}
