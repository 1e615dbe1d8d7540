package shapepasses

import (
	"sort"

	"github.com/tsoniclang/generatedts/internal/symgraph"
)

// DiamondResolver is pass 6 (spec.md §4.2.6): when a class inherits the
// same member through multiple paths (diamond), elect a canonical surface
// member by the rule: (a) prefer a directly-declared class member; else (b)
// prefer the member from the most-derived interface; else (c) if still
// ambiguous, demote all variants to ViewOnly and emit an info diagnostic.
// Ties among same-depth interfaces are broken by lexicographic interface id.
func DiamondResolver(ctx Context, g *symgraph.SymbolGraph) *symgraph.SymbolGraph {
	return g.MapTypes(func(_ symgraph.Namespace, t symgraph.Type) symgraph.Type {
		if t.Kind != symgraph.ClassKind {
			return t
		}
		groups := map[string][]int{} // member name -> member indices sharing that name
		for i, m := range t.Members {
			if m.IsStatic {
				continue
			}
			groups[m.Name] = append(groups[m.Name], i)
		}

		members := append([]symgraph.Member{}, t.Members...)
		for name, idxs := range groups {
			sources := distinctInterfaceSources(members, idxs)
			if len(sources) < 2 {
				continue
			}
			resolveDiamond(ctx, t.CanonicalID, name, members, idxs, sources)
		}
		return t.WithMembers(members)
	})
}

func distinctInterfaceSources(members []symgraph.Member, idxs []int) []string {
	seen := map[string]bool{}
	var out []string
	for _, i := range idxs {
		iface, ok := members[i].DeclaringInterface.Take()
		if !ok {
			continue
		}
		if !seen[iface] {
			seen[iface] = true
			out = append(out, iface)
		}
	}
	sort.Strings(out)
	return out
}

func resolveDiamond(ctx Context, typeID, name string, members []symgraph.Member, idxs []int, sources []string) {
	// (a) prefer a directly-declared class member: one with no declaring
	// interface at all.
	for _, i := range idxs {
		if _, has := members[i].DeclaringInterface.Take(); !has {
			for _, j := range idxs {
				if j == i {
					continue
				}
				if iface, has := members[j].DeclaringInterface.Take(); has {
					members[j] = members[j].WithTag(symgraph.ViewOnly(iface))
				}
			}
			ctx.Sink.Add(symgraph.DiamondResolved(typeID, name, sources))
			return
		}
	}

	// (b) prefer the member from the most-derived interface. mostDerivedDeclarer
	// already applies the lexicographic tie-break (spec.md §9 Open Question
	// iii) pairwise, so folding it over every source always yields a single
	// deterministic winner — same-depth, unrelated sources (e.g. two sibling
	// interfaces that both merely declare the member, neither extending the
	// other) are exactly the tie case, not an unresolvable one.
	winner := sources[0]
	for _, candidate := range sources[1:] {
		winner = mostDerivedDeclarer(ctx.Indices, winner, candidate, typeID)
	}

	// (c) is reserved for a genuine ambiguity no deterministic tie-break can
	// resolve; with a total order available from (b) that case cannot arise
	// here, so DiamondAmbiguous is wired but never reached by this pass as
	// currently modeled (see DESIGN.md).
	for _, i := range idxs {
		iface, has := members[i].DeclaringInterface.Take()
		if !has {
			continue
		}
		if iface != winner {
			members[i] = members[i].WithTag(symgraph.ViewOnly(iface))
		} else {
			members[i] = members[i].WithTag(symgraph.NoTag())
		}
	}
	ctx.Sink.Add(symgraph.DiamondResolved(typeID, name, sources))
}
