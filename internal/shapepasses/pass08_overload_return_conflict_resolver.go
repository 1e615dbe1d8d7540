package shapepasses

import "github.com/tsoniclang/generatedts/internal/symgraph"

// OverloadReturnConflictResolver is pass 8 (spec.md §4.2.8): within an
// overload set whose parameter lists differ but return types diverge
// incompatibly, either (a) widen the common return to a union if all
// returns are assignable to a minimal supertype in the IR, or (b) demote
// the member by tagging it Omitted. Demotion drops the whole overload set,
// primary signature included, from the emitted surface; no ViewOnly
// projection is created for it. Deterministic choice: widen if <= 4
// (config.MaxOverloadReturnUnion) distinct returns and all are nominal
// siblings; else demote.
func OverloadReturnConflictResolver(ctx Context, g *symgraph.SymbolGraph) *symgraph.SymbolGraph {
	return g.MapTypes(func(_ symgraph.Namespace, t symgraph.Type) symgraph.Type {
		members := make([]symgraph.Member, len(t.Members))
		changed := false
		for i, m := range t.Members {
			if len(m.Overloads) == 0 {
				members[i] = m
				continue
			}
			resolved, wasChanged := resolveOverloadReturns(ctx, t.CanonicalID, m)
			members[i] = resolved
			changed = changed || wasChanged
		}
		if !changed {
			return t
		}
		return t.WithMembers(members)
	})
}

func resolveOverloadReturns(ctx Context, typeID string, m symgraph.Member) (symgraph.Member, bool) {
	distinct := distinctReturns(m)
	if len(distinct) <= 1 {
		return m, false
	}

	if ctx.Config.WidenOverloadReturns && len(distinct) <= ctx.Config.MaxOverloadReturnUnion {
		if union, ok := nominalSiblings(ctx.Indices, distinct); ok {
			m.WidenedReturnUnion = distinct
			m.Signature.ReturnType = union
			ctx.Sink.Add(symgraph.OverloadReturnWidened(typeID, m.Name))
			return m, true
		}
	}

	m.Tag = symgraph.Omitted()
	ctx.Sink.Add(symgraph.OverloadReturnDemoted(typeID, m.Name))
	return m, true
}

func distinctReturns(m symgraph.Member) []symgraph.TypeRef {
	var out []symgraph.TypeRef
	seen := map[string]bool{}
	for _, sig := range m.AllSignatures() {
		if !seen[sig.ReturnType.CanonicalID] {
			seen[sig.ReturnType.CanonicalID] = true
			out = append(out, sig.ReturnType)
		}
	}
	return out
}
