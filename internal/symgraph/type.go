package symgraph

import "github.com/moznion/go-optional"

// Type is a class/interface/struct/enum/delegate in the source object
// system, keyed by its CanonicalID (full source-system name including
// generic arity and enclosing-type path).
type Type struct {
	CanonicalID string
	Kind        TypeKind

	Members []Member

	// Views holds the per-interface projections ViewPlanner (§4.2 pass 10)
	// materializes to group this type's ViewOnly members.
	Views []View

	BaseType   optional.Option[TypeRef]
	Interfaces []TypeRef

	TypeParams []TypeParam

	Area Area

	EmitScope EmitScope

	// TsEmitName is nil until Phase 3.5 for every Type whose EmitScope is
	// not Omitted (spec.md §3 Type invariant).
	TsEmitName optional.Option[string]

	// HasStaticSide is computed by StaticSideAnalyzer (§4.2 pass 15).
	HasStaticSide bool

	// phaseFlags records which shape passes have already run over this
	// type, so later passes can assert their preconditions the way the
	// teacher's checker threads Context flags (internal/checker/checker.go).
	phaseFlags map[string]bool
}

func NewType(canonicalID string, kind TypeKind) Type {
	return Type{
		CanonicalID: canonicalID,
		Kind:        kind,
		Area:        Public,
		EmitScope:   ScopeUnset,
		phaseFlags:  map[string]bool{},
	}
}

// HasRun reports whether the named pass has already processed this type.
func (t Type) HasRun(pass string) bool {
	if t.phaseFlags == nil {
		return false
	}
	return t.phaseFlags[pass]
}

// MarkRun returns a copy of t with pass recorded as having run, preserving
// purity (P1): callers never mutate the receiver's flag map in place.
func (t Type) MarkRun(pass string) Type {
	flags := make(map[string]bool, len(t.phaseFlags)+1)
	for k, v := range t.phaseFlags {
		flags[k] = v
	}
	flags[pass] = true
	t.phaseFlags = flags
	return t
}

func (t Type) WithMembers(members []Member) Type {
	t.Members = members
	return t
}

func (t Type) WithEmitScope(scope EmitScope) Type {
	t.EmitScope = scope
	return t
}

func (t Type) WithInterfaces(ifaces []TypeRef) Type {
	t.Interfaces = ifaces
	return t
}

func (t Type) WithTsEmitName(name string) Type {
	t.TsEmitName = optional.Some(name)
	return t
}

func (t Type) WithTypeParams(params []TypeParam) Type {
	t.TypeParams = params
	return t
}

func (t Type) WithViews(views []View) Type {
	t.Views = views
	return t
}

// ViewFor returns the materialized view for interfaceID, if any.
func (t Type) ViewFor(interfaceID string) (View, bool) {
	for _, v := range t.Views {
		if v.InterfaceID == interfaceID {
			return v, true
		}
	}
	return View{}, false
}

// MemberIndex returns the index of the member matching key, or -1.
func (t Type) MemberIndex(key MemberKey) int {
	for i, m := range t.Members {
		if m.Key() == key {
			return i
		}
	}
	return -1
}

// InstanceMembers returns non-static members in declaration order.
func (t Type) InstanceMembers() []Member {
	var out []Member
	for _, m := range t.Members {
		if !m.IsStatic {
			out = append(out, m)
		}
	}
	return out
}

// StaticMembers returns static members in declaration order.
func (t Type) StaticMembers() []Member {
	var out []Member
	for _, m := range t.Members {
		if m.IsStatic {
			out = append(out, m)
		}
	}
	return out
}
