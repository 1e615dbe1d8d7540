package shapepasses

import "github.com/tsoniclang/generatedts/internal/symgraph"

// isAssignableSignature implements the structural rule spec.md §4.2.3 names
// for conformance checks: "member name + assignable signature". A full
// structural subtyping relation is out of scope for this IR (it belongs to
// the TypeScript type checker, not this pipeline); this pipeline only needs
// a conservative approximation sufficient to decide ViewOnly synthesis:
// same parameter arity and pairwise-compatible parameter/return types,
// where compatibility is nominal equality or a declared base-type
// relationship.
func isAssignableSignature(idx *symgraph.Indices, have, want symgraph.Signature) bool {
	if len(have.Params) != len(want.Params) {
		return false
	}
	for i := range have.Params {
		if !isAssignableType(idx, have.Params[i].Type, want.Params[i].Type) {
			return false
		}
	}
	return isAssignableType(idx, have.ReturnType, want.ReturnType)
}

// isAssignableType reports whether a value of type `from` may stand in for
// a value of type `to`: identical canonical ids, or `from` nominally
// descends from `to` via declared base-type references.
func isAssignableType(idx *symgraph.Indices, from, to symgraph.TypeRef) bool {
	if from.CanonicalID == to.CanonicalID {
		return true
	}
	if idx == nil {
		return false
	}
	seen := map[string]bool{}
	cur := from.CanonicalID
	for {
		if seen[cur] {
			return false
		}
		seen[cur] = true
		t, ok := idx.Resolve(cur)
		if !ok {
			return false
		}
		base, hasBase := t.BaseType.Take()
		if !hasBase {
			return false
		}
		if base.CanonicalID == to.CanonicalID {
			return true
		}
		cur = base.CanonicalID
	}
}

// nominalSiblings reports whether all of the given return types share a
// common declared base type (spec.md §4.2.8's "all returns are nominal
// siblings"), and if so returns that minimal common supertype.
func nominalSiblings(idx *symgraph.Indices, returns []symgraph.TypeRef) (symgraph.TypeRef, bool) {
	if len(returns) == 0 {
		return symgraph.TypeRef{}, false
	}
	ancestorsOf := func(ref symgraph.TypeRef) []string {
		var chain []string
		cur := ref.CanonicalID
		seen := map[string]bool{}
		for {
			if seen[cur] {
				break
			}
			seen[cur] = true
			chain = append(chain, cur)
			t, ok := idx.Resolve(cur)
			if !ok {
				break
			}
			base, hasBase := t.BaseType.Take()
			if !hasBase {
				break
			}
			cur = base.CanonicalID
		}
		return chain
	}

	common := ancestorsOf(returns[0])
	for _, r := range returns[1:] {
		chain := map[string]bool{}
		for _, id := range ancestorsOf(r) {
			chain[id] = true
		}
		var filtered []string
		for _, id := range common {
			if chain[id] {
				filtered = append(filtered, id)
			}
		}
		common = filtered
	}
	if len(common) == 0 {
		return symgraph.TypeRef{}, false
	}
	// The minimal (most specific) common ancestor is the first entry that
	// isn't itself one of the input return types, preferring the closest
	// shared ancestor over Object-like roots.
	for _, id := range common {
		isInput := false
		for _, r := range returns {
			if r.CanonicalID == id {
				isInput = true
				break
			}
		}
		if !isInput {
			return symgraph.NewTypeRef(id), true
		}
	}
	return symgraph.NewTypeRef(common[0]), true
}
