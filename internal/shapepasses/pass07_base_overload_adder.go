package shapepasses

import "github.com/tsoniclang/generatedts/internal/symgraph"

// BaseOverloadAdder is pass 7 (spec.md §4.2.7): for each class method M, add
// (as overload signatures) all visible base-class methods sharing M's name
// that are not already represented, so the TypeScript declaration exposes
// the full callable surface. A member that hides an inherited one (the `new`
// modifier) receives no base overloads.
func BaseOverloadAdder(ctx Context, g *symgraph.SymbolGraph) *symgraph.SymbolGraph {
	return g.MapTypes(func(_ symgraph.Namespace, t symgraph.Type) symgraph.Type {
		if t.Kind != symgraph.ClassKind {
			return t
		}
		baseSigs := baseMethodSignatures(ctx.Indices, t)
		if len(baseSigs) == 0 {
			return t
		}
		members := make([]symgraph.Member, len(t.Members))
		changed := false
		for i, m := range t.Members {
			if m.Kind != symgraph.MethodMember || m.IsStatic || m.HidesInherited {
				members[i] = m
				continue
			}
			known := signatureSet(m)
			var additions []symgraph.Signature
			for _, sig := range baseSigs[m.Name] {
				erased := sig.Erase()
				if !known[erased] {
					additions = append(additions, sig)
					known[erased] = true
				}
			}
			if len(additions) > 0 {
				m.Overloads = append(append([]symgraph.Signature{}, m.Overloads...), additions...)
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

func signatureSet(m symgraph.Member) map[symgraph.ErasedSignature]bool {
	out := map[symgraph.ErasedSignature]bool{m.Signature.Erase(): true}
	for _, s := range m.Overloads {
		out[s.Erase()] = true
	}
	return out
}

// baseMethodSignatures walks t's BaseType chain and collects, per method
// name, every signature declared on a visible (non-private) ancestor.
func baseMethodSignatures(idx *symgraph.Indices, t symgraph.Type) map[string][]symgraph.Signature {
	out := map[string][]symgraph.Signature{}
	base, ok := t.BaseType.Take()
	seen := map[string]bool{t.CanonicalID: true}
	for ok && !base.External {
		if seen[base.CanonicalID] {
			break
		}
		seen[base.CanonicalID] = true
		baseType, found := idx.Resolve(base.CanonicalID)
		if !found {
			break
		}
		for _, m := range baseType.Members {
			if m.Kind != symgraph.MethodMember || m.IsStatic || m.Visibility == symgraph.VisibilityPrivate {
				continue
			}
			out[m.Name] = append(out[m.Name], m.Signature)
		}
		base, ok = baseType.BaseType.Take()
	}
	return out
}
