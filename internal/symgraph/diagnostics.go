package symgraph

import "github.com/moznion/go-optional"

type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Diagnostic follows the teacher's tagged-error style
// (internal/checker/error.go): every diagnostic code has a named constructor
// below so PhaseGate and tests can match on Code rather than parse strings.
type Diagnostic struct {
	Severity  Severity
	Code      string
	Namespace optional.Option[string]
	Type      optional.Option[string]
	Member    optional.Option[string]
	Message   string
}

func newDiag(sev Severity, code, message string) Diagnostic {
	return Diagnostic{Severity: sev, Code: code, Message: message}
}

func (d Diagnostic) WithNamespace(ns string) Diagnostic {
	d.Namespace = optional.Some(ns)
	return d
}

func (d Diagnostic) WithType(t string) Diagnostic {
	d.Type = optional.Some(t)
	return d
}

func (d Diagnostic) WithMember(m string) Diagnostic {
	d.Member = optional.Some(m)
	return d
}

// DiagnosticsSink accumulates diagnostics append-only across a build
// (spec.md §3 Diagnostic: "The sink is append-only during a run.").
type DiagnosticsSink struct {
	entries []Diagnostic
}

func NewDiagnosticsSink() *DiagnosticsSink {
	return &DiagnosticsSink{}
}

func (s *DiagnosticsSink) Add(d Diagnostic) {
	s.entries = append(s.entries, d)
}

func (s *DiagnosticsSink) All() []Diagnostic {
	out := make([]Diagnostic, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *DiagnosticsSink) HasErrors() bool {
	for _, d := range s.entries {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

func (s *DiagnosticsSink) Errors() []Diagnostic {
	return s.filterSeverity(SeverityError)
}

func (s *DiagnosticsSink) Warnings() []Diagnostic {
	return s.filterSeverity(SeverityWarning)
}

func (s *DiagnosticsSink) filterSeverity(sev Severity) []Diagnostic {
	var out []Diagnostic
	for _, d := range s.entries {
		if d.Severity == sev {
			out = append(out, d)
		}
	}
	return out
}

// Diagnostic code families, one constructor per stable code string
// (spec.md §6 "Diagnostics format"). Codes are grouped by phase prefix.

func DuplicateCanonicalID(id string) Diagnostic {
	return newDiag(SeverityError, "INDEX-DUPLICATE-ID", "duplicate canonical id: "+id).WithType(id)
}

func InterfaceBaseCycle(ids []string) Diagnostic {
	return newDiag(SeverityError, "INDEX-INTERFACE-CYCLE", "cycle detected among interface bases: "+joinIDs(ids))
}

func UnresolvedBaseReference(ref string) Diagnostic {
	return newDiag(SeverityWarning, "INDEX-UNRESOLVED-BASE", "unresolved base reference: "+ref)
}

func DiamondResolved(typeID, member string, sources []string) Diagnostic {
	return newDiag(SeverityInfo, "SHAPE-DIAMOND-RESOLVED", "diamond member "+member+" resolved among: "+joinIDs(sources)).WithType(typeID).WithMember(member)
}

func DiamondAmbiguous(typeID, member string, sources []string) Diagnostic {
	return newDiag(SeverityInfo, "SHAPE-DIAMOND-AMBIGUOUS", "diamond member "+member+" ambiguous, demoted to view: "+joinIDs(sources)).WithType(typeID).WithMember(member)
}

func OverloadReturnWidened(typeID, member string) Diagnostic {
	return newDiag(SeverityWarning, "SHAPE-OVERLOAD-WIDENED", "overload return widened to union for "+member).WithType(typeID).WithMember(member)
}

func OverloadReturnDemoted(typeID, member string) Diagnostic {
	return newDiag(SeverityWarning, "SHAPE-OVERLOAD-DEMOTED", "overload return irreconcilable, overload set omitted for "+member).WithType(typeID).WithMember(member)
}

func ConstraintUnsatisfiable(typeID, interfaceID string) Diagnostic {
	return newDiag(SeverityError, "CONSTRAINT-UNSATISFIABLE", "type "+typeID+" cannot satisfy constructor constraint required by "+interfaceID).WithType(typeID)
}

func ConstraintPrecisionLoss(typeID, interfaceID string) Diagnostic {
	return newDiag(SeverityWarning, "CONSTRAINT-PRECISION-LOSS", "type "+typeID+" satisfies "+interfaceID+" only with precision loss").WithType(typeID)
}

func ConstraintContradiction(typeParam string) Diagnostic {
	return newDiag(SeverityError, "SHAPE-CONSTRAINT-CONTRADICTION", "contradictory constraints on generic parameter "+typeParam)
}

func NamespaceCycleWarning(ids []string) Diagnostic {
	return newDiag(SeverityWarning, "IMPORT-NAMESPACE-CYCLE", "import cycle among namespaces: "+joinIDs(ids))
}

func NamespaceCycleError(ids []string) Diagnostic {
	return newDiag(SeverityError, "IMPORT-NAMESPACE-CYCLE", "import cycle among namespaces treated as error: "+joinIDs(ids))
}

func GateMissingEmitName(typeID, member string) Diagnostic {
	d := newDiag(SeverityError, "GATE-NAME-MISSING", "non-omitted symbol has no TsEmitName").WithType(typeID)
	if member != "" {
		d = d.WithMember(member)
	}
	return d
}

func GateNameCollide(scope, name string) Diagnostic {
	return newDiag(SeverityError, "GATE-NAME-COLLIDE", "duplicate emitted name \""+name+"\" in scope "+scope)
}

func GateDanglingRef(ref string) Diagnostic {
	return newDiag(SeverityError, "GATE-DANGLING-REF", "dangling type reference: "+ref)
}

func GateLeakedIndexer(typeID, member string) Diagnostic {
	return newDiag(SeverityError, "GATE-LEAKED-INDEXER", "indexer member leaked onto surface").WithType(typeID).WithMember(member)
}

func GateOrphanView(typeID, interfaceID string) Diagnostic {
	return newDiag(SeverityError, "GATE-ORPHAN-VIEW", "ViewOnly member has no materialized view for "+interfaceID).WithType(typeID)
}

func GateImportIncomplete(ns, symbol string) Diagnostic {
	return newDiag(SeverityError, "GATE-IMPORT-INCOMPLETE", "cross-namespace reference to "+symbol+" missing from import plan").WithNamespace(ns)
}

func GateEmitOrderIncomplete() Diagnostic {
	return newDiag(SeverityError, "GATE-EMIT-ORDER-INCOMPLETE", "emit order does not cover every namespace")
}

func GateUnsetScope(typeID string) Diagnostic {
	return newDiag(SeverityError, "GATE-UNSET-SCOPE", "type has unset EmitScope").WithType(typeID)
}

func InternalInvariantFailure(code, message string) Diagnostic {
	return newDiag(SeverityError, "INTERNAL-"+code, message)
}

func joinIDs(ids []string) string {
	out := ""
	for i, id := range ids {
		if i > 0 {
			out += ", "
		}
		out += id
	}
	return out
}
