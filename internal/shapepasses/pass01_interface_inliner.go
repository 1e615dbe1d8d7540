package shapepasses

import (
	"sort"

	"github.com/tsoniclang/generatedts/internal/symgraph"
)

// InterfaceInliner is pass 1 (spec.md §4.2.1): for each interface I, append
// to I's members every member inherited from interfaces in
// GlobalInterfaceIndex[I]. Deduplication within the copied set is by
// (member name, erased signature); on clash, keep the most-derived
// declarer. TypeScript has structural interfaces without the source
// system's multi-level inheritance semantics, so inheritance is flattened
// at the IR level.
func InterfaceInliner(ctx Context, g *symgraph.SymbolGraph) *symgraph.SymbolGraph {
	return g.MapTypes(func(_ symgraph.Namespace, t symgraph.Type) symgraph.Type {
		if t.Kind != symgraph.InterfaceKind {
			return t
		}
		bases := ctx.Indices.TransitiveInterfaces(t.CanonicalID)
		if len(bases) == 0 {
			return t
		}

		// byKey collects, for every (name, erased signature) key, the
		// winning member plus which interface declared it.
		type candidate struct {
			member   symgraph.Member
			declarer string
		}
		byKey := map[symgraph.MemberKey]candidate{}
		for _, m := range t.Members {
			byKey[m.Key()] = candidate{member: m, declarer: t.CanonicalID}
		}

		for _, baseID := range bases {
			for _, m := range ctx.Indices.DeclaredMembers(baseID) {
				copyOfM := m
				copyOfM.OriginatingDeclarer = baseID
				key := copyOfM.Key()
				existing, clashes := byKey[key]
				if !clashes {
					byKey[key] = candidate{member: copyOfM, declarer: baseID}
					continue
				}
				winner := mostDerivedDeclarer(ctx.Indices, existing.declarer, baseID, t.CanonicalID)
				if winner == baseID {
					byKey[key] = candidate{member: copyOfM, declarer: baseID}
				}
			}
		}

		members := make([]symgraph.Member, 0, len(byKey))
		// Preserve original declaration order for members declared directly
		// on t, then append inlined members sorted by (declarer, name) for
		// determinism (P2).
		seen := map[symgraph.MemberKey]bool{}
		for _, m := range t.Members {
			key := m.Key()
			if c, ok := byKey[key]; ok {
				members = append(members, c.member)
				seen[key] = true
			}
		}
		var inlined []candidate
		for key, c := range byKey {
			if seen[key] {
				continue
			}
			inlined = append(inlined, c)
		}
		sort.Slice(inlined, func(i, j int) bool {
			if inlined[i].declarer != inlined[j].declarer {
				return inlined[i].declarer < inlined[j].declarer
			}
			return inlined[i].member.Name < inlined[j].member.Name
		})
		for _, c := range inlined {
			members = append(members, c.member)
		}

		return t.WithMembers(members)
	})
}

// mostDerivedDeclarer picks whichever of a or b is more derived relative to
// self: the one whose transitive interface closure contains the other. Ties
// (including "neither inherits the other") break lexicographically, per the
// general diamond tie-break rule in spec.md §9.
func mostDerivedDeclarer(idx *symgraph.Indices, a, b, self string) string {
	if a == b {
		return a
	}
	aBases := idx.TransitiveInterfaces(a)
	bBases := idx.TransitiveInterfaces(b)
	aHasB := contains(aBases, b)
	bHasA := contains(bBases, a)
	switch {
	case aHasB && !bHasA:
		return a
	case bHasA && !aHasB:
		return b
	default:
		if a < b {
			return a
		}
		return b
	}
}

func contains(ids []string, id string) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}
