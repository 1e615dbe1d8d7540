// Package constraintauditor implements ConstraintAuditor (Phase 4.6,
// spec.md §4.6): for each (type T, interface I) pair where T implements I,
// check whether I requires a constructor constraint on one of its generic
// parameters that T's corresponding type argument cannot satisfy. This
// phase only records findings — it never rewrites the graph.
package constraintauditor

import "github.com/tsoniclang/generatedts/internal/symgraph"

// constructorConstraintID is the sentinel TypeRef.CanonicalID the loader
// uses to represent the source object system's `new()` generic constraint
// (a constructor constraint has no nominal target type to point at).
const constructorConstraintID = "new()"

// Audit walks every type's implemented interfaces and returns one
// ConstraintFinding per constructor-constraint check performed that wasn't
// trivially satisfied.
func Audit(idx *symgraph.Indices, g *symgraph.SymbolGraph) []symgraph.ConstraintFinding {
	var findings []symgraph.ConstraintFinding
	for _, t := range g.AllTypes() {
		for _, iface := range t.Interfaces {
			findings = append(findings, auditImplements(idx, t, iface)...)
		}
	}
	return findings
}

func auditImplements(idx *symgraph.Indices, t symgraph.Type, iface symgraph.TypeRef) []symgraph.ConstraintFinding {
	decl, ok := idx.Resolve(iface.CanonicalID)
	if !ok {
		return nil // dangling reference; PhaseGate family (c) reports this
	}

	var findings []symgraph.ConstraintFinding
	for i, tp := range decl.TypeParams {
		if !requiresConstructor(tp) {
			continue
		}
		if i >= len(iface.TypeArgs) {
			continue // arity mismatch is a different concern, not this pass's
		}
		arg := iface.TypeArgs[i]

		if arg.External {
			// Can't inspect an externally-declared type's constructor surface
			// from this IR: record a precision loss rather than a hard error.
			findings = append(findings, symgraph.ConstraintFinding{
				TypeID: t.CanonicalID, InterfaceID: iface.CanonicalID,
				Kind: symgraph.ConstructorConstraint, Severity: symgraph.ConstraintWarning,
			})
			continue
		}

		argType, ok := idx.Resolve(arg.CanonicalID)
		if !ok {
			continue // dangling, not this pass's concern
		}
		if !hasDefaultConstructor(argType) {
			findings = append(findings, symgraph.ConstraintFinding{
				TypeID: t.CanonicalID, InterfaceID: iface.CanonicalID,
				Kind: symgraph.ConstructorConstraint, Severity: symgraph.ConstraintError,
			})
		}
	}
	return findings
}

func requiresConstructor(tp symgraph.TypeParam) bool {
	for _, c := range tp.Constraints {
		if c.CanonicalID == constructorConstraintID {
			return true
		}
	}
	return false
}

// hasDefaultConstructor reports whether t declares a parameterless
// constructor, or declares no constructor at all (the source object
// system synthesizes an implicit default constructor in that case).
func hasDefaultConstructor(t symgraph.Type) bool {
	sawConstructor := false
	for _, m := range t.Members {
		if m.Kind != symgraph.ConstructorMember {
			continue
		}
		sawConstructor = true
		if allOptionalOrRest(m.Signature) {
			return true
		}
	}
	return !sawConstructor
}

func allOptionalOrRest(sig symgraph.Signature) bool {
	for _, p := range sig.Params {
		if !p.Optional && !p.Rest {
			return false
		}
	}
	return true
}
