// Package namereserver implements Phase 3.5 (spec.md §4.3): the stateful
// collaborator that assigns every Type and Member a final TsEmitName,
// unique within its scope and legal in the target language's lexical
// rules. It is one of only two components in the pipeline with interior
// mutability (the DiagnosticsSink is the other, spec.md §5); both are
// touched only from the driving thread during their owning phase, the way
// the teacher's internal/checker.Context is used for a single Infer pass.
package namereserver

import (
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/tsoniclang/generatedts/internal/lexer_util"
)

// ScopeKind discriminates the three reservation scopes spec.md §4.3 names.
type ScopeKind int

const (
	NamespaceScope ScopeKind = iota
	ClassSurfaceScope
	ViewScope
)

// Scope identifies one reservation bucket. Exactly one of the field groups
// is meaningful per Kind:
//   - NamespaceScope:    NamespaceID, Area
//   - ClassSurfaceScope: TypeID, IsStatic
//   - ViewScope:         TypeID, InterfaceID
type Scope struct {
	Kind        ScopeKind
	NamespaceID string
	Area        string
	TypeID      string
	IsStatic    bool
	InterfaceID string
}

func NamespaceScopeOf(namespaceID, area string) Scope {
	return Scope{Kind: NamespaceScope, NamespaceID: namespaceID, Area: area}
}

func ClassSurfaceScopeOf(typeID string, isStatic bool) Scope {
	return Scope{Kind: ClassSurfaceScope, TypeID: typeID, IsStatic: isStatic}
}

func ViewScopeOf(typeID, interfaceID string) Scope {
	return Scope{Kind: ViewScope, TypeID: typeID, InterfaceID: interfaceID}
}

// key gives Scope a hashable, unambiguous string identity for the internal
// map — never exposed, and never relied on for ordering (reservation order
// is governed entirely by the deterministic call sequence in apply.go).
func (s Scope) key() string {
	switch s.Kind {
	case NamespaceScope:
		return "ns|" + s.NamespaceID + "|" + s.Area
	case ClassSurfaceScope:
		return "cs|" + s.TypeID + "|" + strconv.FormatBool(s.IsStatic)
	case ViewScope:
		return "vw|" + s.TypeID + "|" + s.InterfaceID
	default:
		return "?"
	}
}

// Reserver assigns unique, legal names within scopes. The zero value is
// ready to use.
type Reserver struct {
	taken map[string]map[string]bool
}

func New() *Reserver {
	return &Reserver{taken: map[string]map[string]bool{}}
}

// Reserve runs the four-step algorithm of spec.md §4.3 for proposed name N
// in scope s, records the result, and returns it. Calling Reserve twice
// with the same (scope, proposed) pair intentionally reserves two distinct
// slots — callers are responsible for calling it exactly once per symbol.
func (r *Reserver) Reserve(s Scope, proposed string) string {
	name := normalize(proposed)
	if isReservedWord(name) {
		name += "_"
	}

	if r.taken == nil {
		r.taken = map[string]map[string]bool{}
	}
	bucket := r.taken[s.key()]
	if bucket == nil {
		bucket = map[string]bool{}
		r.taken[s.key()] = bucket
	}

	if !bucket[name] {
		bucket[name] = true
		return name
	}

	for suffix := 2; ; suffix++ {
		candidate := name + strconv.Itoa(suffix)
		if !bucket[candidate] {
			bucket[candidate] = true
			return candidate
		}
	}
}

// normalize applies spec.md §4.3 step 1: NFC normalization, backtick ->
// underscore, plus sign -> underscore, leading-digit guard. Uses
// strcase-style token splitting as the fallback sanitizer for any
// remaining illegal rune, mirroring the teacher's preference for reusing
// an existing casing library's normalization primitives over hand-rolling
// new ones (SPEC_FULL.md §4.8).
func normalize(s string) string {
	s = lexer_util.NormalizeNFC(s)
	s = strings.ReplaceAll(s, "`", "_")
	s = strings.ReplaceAll(s, "+", "_")

	if len(s) > 0 {
		if first := []rune(s)[0]; first >= '0' && first <= '9' {
			s = "_" + s
		}
	}

	if !lexer_util.IsValidIdentifier(s) {
		s = strcase.ToCamel(sanitizeRunes(s))
		if s == "" {
			s = "_"
		}
		if len(s) > 0 {
			if first := []rune(s)[0]; first >= '0' && first <= '9' {
				s = "_" + s
			}
		}
	}
	return s
}

// sanitizeRunes drops every rune that can never participate in an
// identifier, leaving word-boundary punctuation for strcase to split on.
func sanitizeRunes(s string) string {
	var b strings.Builder
	for _, r := range s {
		if lexer_util.IsIdentStart(r) || lexer_util.IsIdentContinue(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
