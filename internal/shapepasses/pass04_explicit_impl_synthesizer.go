package shapepasses

import "github.com/tsoniclang/generatedts/internal/symgraph"

// ExplicitImplSynthesizer is pass 4 (spec.md §4.2.4): for every explicit
// interface implementation in the source metadata, materialize a ViewOnly
// member on the class that routes to I.
func ExplicitImplSynthesizer(_ Context, g *symgraph.SymbolGraph) *symgraph.SymbolGraph {
	return g.MapTypes(func(_ symgraph.Namespace, t symgraph.Type) symgraph.Type {
		if t.Kind != symgraph.ClassKind {
			return t
		}
		changed := false
		members := make([]symgraph.Member, len(t.Members))
		for i, m := range t.Members {
			if m.ExplicitImpl {
				ifaceID, ok := m.DeclaringInterface.Take()
				if ok {
					m.Tag = symgraph.ViewOnly(ifaceID)
					changed = true
				}
			}
			members[i] = m
		}
		if !changed {
			return t
		}
		return t.WithMembers(members)
	})
}
