package shapepasses

import "github.com/tsoniclang/generatedts/internal/symgraph"

// StructuralConformance is pass 3 (spec.md §4.2.3): for each class C
// implementing interface I, determine whether C's surface structurally
// satisfies I. If not, synthesize a ViewOnly projection on C exposing I's
// members with their required shapes, tagged ViewOnly(I). Conformance uses
// TypeScript's structural rule: member name + assignable signature.
func StructuralConformance(ctx Context, g *symgraph.SymbolGraph) *symgraph.SymbolGraph {
	return g.MapTypes(func(_ symgraph.Namespace, t symgraph.Type) symgraph.Type {
		if t.Kind != symgraph.ClassKind || len(t.Interfaces) == 0 {
			return t
		}
		members := append([]symgraph.Member{}, t.Members...)
		for _, iface := range t.Interfaces {
			if iface.External {
				continue
			}
			for _, required := range ctx.Indices.DeclaredMembers(iface.CanonicalID) {
				if conformsStructurally(ctx.Indices, members, required) {
					continue
				}
				view := required
				view.Tag = symgraph.ViewOnly(iface.CanonicalID)
				view.DeclaringInterface = optionalSome(iface.CanonicalID)
				members = append(members, view)
			}
		}
		return t.WithMembers(members)
	})
}

func conformsStructurally(idx *symgraph.Indices, members []symgraph.Member, required symgraph.Member) bool {
	for _, m := range members {
		if m.Name != required.Name || m.IsStatic != required.IsStatic {
			continue
		}
		if m.Tag.IsViewOnly() {
			// A view projection synthesized for another interface is not
			// part of C's surface.
			continue
		}
		if isAssignableSignature(idx, m.Signature, required.Signature) {
			return true
		}
	}
	return false
}
