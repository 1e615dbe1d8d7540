package shapepasses

import "github.com/tsoniclang/generatedts/internal/symgraph"

// InternalInterfaceFilter is pass 2 (spec.md §4.2.2): drop interfaces
// marked internal to the base class library from every implements-list and
// from the namespace. Must run after InterfaceInliner so that members
// inherited *through* an internal interface are preserved on their public
// descendants (pass 1 already copied them down before this pass removes the
// internal interface from view).
func InternalInterfaceFilter(ctx Context, g *symgraph.SymbolGraph) *symgraph.SymbolGraph {
	requireOnAll(ctx, g, "InterfaceInliner")

	isInternal := func(ref symgraph.TypeRef) bool {
		if ref.External {
			return false
		}
		t, ok := ctx.Indices.Resolve(ref.CanonicalID)
		return ok && t.Area == symgraph.Internal
	}

	g = g.MapTypes(func(_ symgraph.Namespace, t symgraph.Type) symgraph.Type {
		if len(t.Interfaces) == 0 {
			return t
		}
		var kept []symgraph.TypeRef
		for _, ref := range t.Interfaces {
			if !isInternal(ref) {
				kept = append(kept, ref)
			}
		}
		return t.WithInterfaces(kept)
	})

	var newNamespaces []symgraph.Namespace
	for _, ns := range g.Namespaces {
		var kept []symgraph.Type
		for _, t := range ns.Types {
			if t.Kind == symgraph.InterfaceKind && t.Area == symgraph.Internal {
				continue
			}
			kept = append(kept, t)
		}
		newNamespaces = append(newNamespaces, ns.WithTypes(kept))
	}
	return g.WithNamespaces(newNamespaces)
}

func requireOnAll(ctx Context, g *symgraph.SymbolGraph, pass string) {
	for _, t := range g.AllTypes() {
		requirePass(ctx, t, pass)
	}
}
