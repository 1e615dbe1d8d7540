package shapepasses

import "github.com/tsoniclang/generatedts/internal/symgraph"

// StaticSideAnalyzer is pass 15 (spec.md §4.2.15): partition each class's
// members into instance side and static side, and compute whether the
// static side is non-empty (controls later emission of a companion object).
func StaticSideAnalyzer(_ Context, g *symgraph.SymbolGraph) *symgraph.SymbolGraph {
	return g.MapTypes(func(_ symgraph.Namespace, t symgraph.Type) symgraph.Type {
		hasStatic := false
		for _, m := range t.Members {
			if m.IsStatic && m.EmitScope != symgraph.ScopeOmitted {
				hasStatic = true
				break
			}
		}
		if hasStatic == t.HasStaticSide {
			return t
		}
		t.HasStaticSide = hasStatic
		return t
	})
}
