package symgraph

// ImportSpec is one entry of an ImportPlan: a symbol brought from another
// namespace into the importing namespace, with its chosen local alias
// (spec.md §4.4).
type ImportSpec struct {
	FromNamespace string
	Symbol        string
	LocalAlias    string
}

// ImportPlan maps (namespace, external symbol) -> ImportSpec, keyed by the
// importing namespace for iteration convenience.
type ImportPlan struct {
	byNamespace map[string][]ImportSpec
}

func NewImportPlan() *ImportPlan {
	return &ImportPlan{byNamespace: map[string][]ImportSpec{}}
}

func (p *ImportPlan) Add(namespace string, spec ImportSpec) {
	p.byNamespace[namespace] = append(p.byNamespace[namespace], spec)
}

func (p *ImportPlan) For(namespace string) []ImportSpec {
	return p.byNamespace[namespace]
}

func (p *ImportPlan) Namespaces() []string {
	out := make([]string, 0, len(p.byNamespace))
	for ns := range p.byNamespace {
		out = append(out, ns)
	}
	return out
}

// Covers reports whether the plan already records an import of symbol into
// namespace from fromNamespace — used by PhaseGate family (f).
func (p *ImportPlan) Covers(namespace, fromNamespace, symbol string) bool {
	for _, spec := range p.byNamespace[namespace] {
		if spec.FromNamespace == fromNamespace && spec.Symbol == symbol {
			return true
		}
	}
	return false
}

// EmitOrder is a total ordering over namespace ids respecting the import
// dependency DAG, with cycles broken deterministically (spec.md §4.4).
type EmitOrder struct {
	Order []string
}

func (o EmitOrder) IsTotal(namespaceIDs []string) bool {
	if len(o.Order) != len(namespaceIDs) {
		return false
	}
	seen := make(map[string]bool, len(o.Order))
	for _, id := range o.Order {
		seen[id] = true
	}
	for _, id := range namespaceIDs {
		if !seen[id] {
			return false
		}
	}
	return true
}

// ConstraintSeverity mirrors Diagnostic severity for ConstraintFindings
// records (spec.md §4.6 uses only Error/Warning).
type ConstraintSeverity int

const (
	ConstraintError ConstraintSeverity = iota
	ConstraintWarning
)

// ConstraintKind names why a constraint check fired.
type ConstraintKind string

const (
	ConstructorConstraint ConstraintKind = "constructor"
)

// ConstraintFinding is one (type, interface, constraint-kind, severity)
// record produced by ConstraintAuditor (spec.md §4.6).
type ConstraintFinding struct {
	TypeID      string
	InterfaceID string
	Kind        ConstraintKind
	Severity    ConstraintSeverity
}

// EmissionPlan is the Phase 4 output: (SymbolGraph, ImportPlan, EmitOrder).
type EmissionPlan struct {
	Graph      *SymbolGraph
	ImportPlan *ImportPlan
	EmitOrder  EmitOrder
}
