package shapepasses

import "github.com/tsoniclang/generatedts/internal/symgraph"

// FinalIndexersPass is pass 14 (spec.md §4.2.14): remove any indexer still
// present on a class surface (leaked through inlining ahead of
// IndexerPlanner). Establishes P6: no member of kind indexer with a
// non-Omitted EmitScope remains after this pass runs.
func FinalIndexersPass(ctx Context, g *symgraph.SymbolGraph) *symgraph.SymbolGraph {
	return g.MapTypes(func(_ symgraph.Namespace, t symgraph.Type) symgraph.Type {
		changed := false
		var members []symgraph.Member
		for _, m := range t.Members {
			if m.Kind == symgraph.IndexerMember && m.EmitScope != symgraph.ScopeOmitted {
				ctx.Sink.Add(symgraph.GateLeakedIndexer(t.CanonicalID, m.Name))
				changed = true
				continue
			}
			members = append(members, m)
		}
		if !changed {
			return t
		}
		return t.WithMembers(members)
	})
}
