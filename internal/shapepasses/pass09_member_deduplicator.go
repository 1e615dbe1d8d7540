package shapepasses

import "github.com/tsoniclang/generatedts/internal/symgraph"

// MemberDeduplicator is pass 9 (spec.md §4.2.9): remove exact duplicates
// (same name, same erased signature, same ViewTag) keeping the earliest in
// declaration order.
func MemberDeduplicator(_ Context, g *symgraph.SymbolGraph) *symgraph.SymbolGraph {
	return g.MapTypes(func(_ symgraph.Namespace, t symgraph.Type) symgraph.Type {
		type fullKey struct {
			symgraph.MemberKey
			tag symgraph.ViewTag
		}
		seen := map[fullKey]bool{}
		var members []symgraph.Member
		for _, m := range t.Members {
			k := fullKey{MemberKey: m.Key(), tag: m.Tag}
			if seen[k] {
				continue
			}
			seen[k] = true
			members = append(members, m)
		}
		return t.WithMembers(members)
	})
}
