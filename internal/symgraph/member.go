package symgraph

import (
	"strings"

	"github.com/moznion/go-optional"
)

// Param is a single parameter in a Member's signature.
type Param struct {
	Name     string
	Type     TypeRef
	Optional bool
	Rest     bool
}

// Signature is a Member's callable shape. Non-method members (fields,
// properties, events) use only ReturnType for their value type and leave
// Params/TypeParams empty.
type Signature struct {
	TypeParams []TypeParam
	Params     []Param
	ReturnType TypeRef
}

// SpecificityRank orders a signature relative to siblings in an overload set
// per spec.md §4.5: fewer optional/rest parameters first.
func (s Signature) SpecificityRank() int {
	rank := 0
	for _, p := range s.Params {
		if p.Optional || p.Rest {
			rank++
		}
	}
	return rank
}

// ErasedSignature is the (name-independent) shape used for deduplication
// comparisons in spec.md §4.2 passes 1 and 9: parameter count/types and
// return type, ignoring parameter names. ParamTypes holds the parameter
// canonical ids joined with "," so the struct stays comparable and usable as
// a map key.
type ErasedSignature struct {
	ParamTypes string
	ReturnType string
	Variadic   bool
}

func (s Signature) Erase() ErasedSignature {
	types := make([]string, len(s.Params))
	variadic := false
	for i, p := range s.Params {
		types[i] = p.Type.CanonicalID
		if p.Rest {
			variadic = true
		}
	}
	return ErasedSignature{ParamTypes: strings.Join(types, ","), ReturnType: s.ReturnType.CanonicalID, Variadic: variadic}
}

// Member is a single declared or synthesized symbol on a Type.
type Member struct {
	Kind      MemberKind
	Name      string
	Signature Signature
	IsStatic  bool
	Visibility Visibility

	// DeclaringInterface is the interface id this member's contract
	// originates from, when applicable (spec.md §3 Member, §4.2 pass 5).
	DeclaringInterface optional.Option[string]

	// ExplicitImpl marks a member the source metadata records as an
	// explicit interface implementation (C#-style `I.Method()` syntax).
	// ExplicitImplSynthesizer (§4.2 pass 4) reads this flag; it is set by
	// the external loader, never by a shape pass.
	ExplicitImpl bool

	// HidesInherited marks a member the source metadata records as hiding
	// an inherited member of the same name (the source object system's
	// `new` modifier). HiddenMemberPlanner (§4.2 pass 12) reads this flag;
	// it is set by the external loader, never by a shape pass.
	HidesInherited bool

	// OriginatingDeclarer records, for members copied during
	// InterfaceInliner (pass 1), which interface most-directly declared the
	// copy — used by the dedup tie-break ("keep the most-derived declarer").
	OriginatingDeclarer string

	Tag ViewTag

	EmitScope EmitScope

	// TsEmitName is assigned during name reservation (Phase 3.5). Modeled as
	// optional.Option[string], grounded on the teacher's use of
	// github.com/moznion/go-optional for nullable AST fields
	// (internal/ast/obj_elem.go).
	TsEmitName optional.Option[string]

	// Overloads holds additional signatures for a member name once
	// OverloadUnifier (§4.5) or BaseOverloadAdder (§4.2 pass 7) has merged
	// siblings into a single declaration. The primary Signature field always
	// remains the first/most specific entry once unified.
	Overloads []Signature

	// HideDocs is set by HiddenMemberPlanner (§4.2 pass 12): a Hidden member
	// must not inherit the base member's documentation links.
	HideDocs bool

	// IndexerOmitReason records why an indexer was marked Omitted (§4.2 pass
	// 13); empty for non-indexer members.
	IndexerOmitReason string

	// WidenedReturnUnion is set by OverloadReturnConflictResolver / the
	// OverloadUnifier re-check (§4.2 pass 8, §4.5) when an overload set's
	// divergent returns were widened to a union rather than demoted.
	WidenedReturnUnion []TypeRef
}

func (m Member) AllSignatures() []Signature {
	return append([]Signature{m.Signature}, m.Overloads...)
}

type Visibility int

const (
	VisibilityPublic Visibility = iota
	VisibilityProtected
	VisibilityInternal
	VisibilityPrivate
)

// Key is the (name, erased signature) identity used throughout the shape
// passes for deduplication (spec.md §4.2 passes 1 and 9).
type MemberKey struct {
	Name     string
	Erased   ErasedSignature
	IsStatic bool
}

func (m Member) Key() MemberKey {
	return MemberKey{Name: m.Name, Erased: m.Signature.Erase(), IsStatic: m.IsStatic}
}

// WithEmitScope returns a copy of m with EmitScope set; used by passes to
// avoid in-place mutation (P1 purity, spec.md §8).
func (m Member) WithEmitScope(scope EmitScope) Member {
	m.EmitScope = scope
	return m
}

func (m Member) WithTag(tag ViewTag) Member {
	m.Tag = tag
	return m
}

func (m Member) WithTsEmitName(name string) Member {
	m.TsEmitName = optional.Some(name)
	return m
}
