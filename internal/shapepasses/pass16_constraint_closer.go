package shapepasses

import "github.com/tsoniclang/generatedts/internal/symgraph"

// ConstraintCloser is pass 16 (spec.md §4.2.16): for each generic parameter,
// compute the transitive closure of its constraint set (T: I where I
// extends J implies T: J). A constraint cycle is already closed and treated
// as a no-op. Two distinct class-kind constraints on the same parameter are
// an unsatisfiable contradiction (single inheritance) and are reported, not
// rewritten away.
func ConstraintCloser(ctx Context, g *symgraph.SymbolGraph) *symgraph.SymbolGraph {
	return g.MapTypes(func(_ symgraph.Namespace, t symgraph.Type) symgraph.Type {
		changed := false

		closedTypeParams := make([]symgraph.TypeParam, len(t.TypeParams))
		for i, tp := range t.TypeParams {
			closed, wasChanged := closeConstraints(ctx, tp)
			closedTypeParams[i] = closed
			changed = changed || wasChanged
		}

		members := make([]symgraph.Member, len(t.Members))
		for i, m := range t.Members {
			closedMemberParams := make([]symgraph.TypeParam, len(m.Signature.TypeParams))
			memberChanged := false
			for j, tp := range m.Signature.TypeParams {
				closed, wasChanged := closeConstraints(ctx, tp)
				closedMemberParams[j] = closed
				memberChanged = memberChanged || wasChanged
			}
			if memberChanged {
				m.Signature.TypeParams = closedMemberParams
				changed = true
			}
			members[i] = m
		}

		if !changed {
			return t
		}
		t.TypeParams = closedTypeParams
		return t.WithMembers(members)
	})
}

func closeConstraints(ctx Context, tp symgraph.TypeParam) (symgraph.TypeParam, bool) {
	seen := map[string]bool{}
	classConstraints := 0
	var closure []symgraph.TypeRef
	for _, c := range tp.Constraints {
		if seen[c.CanonicalID] {
			continue
		}
		seen[c.CanonicalID] = true
		closure = append(closure, c)

		resolved, ok := ctx.Indices.Resolve(c.CanonicalID)
		if !ok {
			continue
		}
		if resolved.Kind == symgraph.ClassKind {
			classConstraints++
		}
		for _, ancestorID := range ctx.Indices.TransitiveInterfaces(c.CanonicalID) {
			if !seen[ancestorID] {
				seen[ancestorID] = true
				closure = append(closure, symgraph.NewTypeRef(ancestorID))
			}
		}
	}

	if classConstraints > 1 {
		ctx.Sink.Add(symgraph.ConstraintContradiction(tp.Name))
	}

	if len(closure) == len(tp.Constraints) {
		return tp, false
	}
	return tp.WithConstraints(closure), true
}
