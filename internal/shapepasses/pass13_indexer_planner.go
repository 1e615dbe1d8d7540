package shapepasses

import "github.com/tsoniclang/generatedts/internal/symgraph"

// IndexerPlanner is pass 13 (spec.md §4.2.13): mark indexer members Omitted
// with a rationale tag. TypeScript's index signatures are emitted
// separately by the (out-of-scope) emitter, never as named class members.
func IndexerPlanner(_ Context, g *symgraph.SymbolGraph) *symgraph.SymbolGraph {
	return g.MapTypes(func(_ symgraph.Namespace, t symgraph.Type) symgraph.Type {
		changed := false
		members := make([]symgraph.Member, len(t.Members))
		for i, m := range t.Members {
			if m.Kind == symgraph.IndexerMember && m.EmitScope != symgraph.ScopeOmitted {
				m.Tag = symgraph.Omitted()
				m.EmitScope = symgraph.ScopeOmitted
				m.IndexerOmitReason = "indexers are emitted as a TypeScript index signature, never as a named surface member"
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
