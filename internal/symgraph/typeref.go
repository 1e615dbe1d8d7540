package symgraph

// TypeRef is a symbolic reference to a Type, resolved via TypeIndex. It never
// holds a direct pointer to the referenced Type so that the graph stays a
// tree of owned values plus id edges (spec.md §3, "Ownership is flat").
type TypeRef struct {
	CanonicalID string
	TypeArgs    []TypeRef
	// External marks a reference to a type outside the input closure. Such a
	// reference may dangle (spec.md Invariant on TypeRef); External refs are
	// never treated as unresolved errors by the indices.
	External bool
}

func NewTypeRef(canonicalID string, args ...TypeRef) TypeRef {
	return TypeRef{CanonicalID: canonicalID, TypeArgs: args}
}

func ExternalTypeRef(canonicalID string) TypeRef {
	return TypeRef{CanonicalID: canonicalID, External: true}
}

// TypeParam is a generic parameter with its constraint set.
type TypeParam struct {
	Name        string
	Constraints []TypeRef
}

func (p TypeParam) WithConstraints(cs []TypeRef) TypeParam {
	p.Constraints = cs
	return p
}
