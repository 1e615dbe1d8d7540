package shapepasses

import "github.com/tsoniclang/generatedts/internal/symgraph"

// InterfaceResolver is pass 5 (spec.md §4.2.5): for each class member,
// attach the declaring-interface back-reference when the member originates
// in an interface contract — either because it was tagged ViewOnly(I) by an
// earlier pass, or because it structurally satisfies an interface member of
// the same name directly on the class surface.
func InterfaceResolver(ctx Context, g *symgraph.SymbolGraph) *symgraph.SymbolGraph {
	return g.MapTypes(func(_ symgraph.Namespace, t symgraph.Type) symgraph.Type {
		if t.Kind != symgraph.ClassKind {
			return t
		}
		members := make([]symgraph.Member, len(t.Members))
		changed := false
		for i, m := range t.Members {
			if _, has := m.DeclaringInterface.Take(); has {
				members[i] = m
				continue
			}
			if m.Tag.IsViewOnly() {
				m.DeclaringInterface = optionalSome(m.Tag.InterfaceID)
				changed = true
				members[i] = m
				continue
			}
			if ifaceID, ok := findDeclaringInterface(ctx.Indices, t, m); ok {
				m.DeclaringInterface = optionalSome(ifaceID)
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

func findDeclaringInterface(idx *symgraph.Indices, t symgraph.Type, m symgraph.Member) (string, bool) {
	for _, iface := range t.Interfaces {
		if iface.External {
			continue
		}
		for _, required := range idx.DeclaredMembers(iface.CanonicalID) {
			if required.Name == m.Name && required.IsStatic == m.IsStatic &&
				isAssignableSignature(idx, m.Signature, required.Signature) {
				return iface.CanonicalID, true
			}
		}
	}
	return "", false
}
