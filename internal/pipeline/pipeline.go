// Package pipeline is the driver that sequences Phases 2 through 4.7 over
// an input SymbolGraph and produces either an EmissionPlan ready for a
// (not-in-scope) emitter, or a failed build with diagnostics explaining
// why. Grounded on the teacher's internal/checker.Checker driver, which
// threads a single Context through a fixed phase sequence and aggregates
// diagnostics the same way (internal/checker/checker.go).
package pipeline

import (
	"github.com/tsoniclang/generatedts/internal/config"
	"github.com/tsoniclang/generatedts/internal/constraintauditor"
	"github.com/tsoniclang/generatedts/internal/emitorder"
	"github.com/tsoniclang/generatedts/internal/importplanner"
	"github.com/tsoniclang/generatedts/internal/namereserver"
	"github.com/tsoniclang/generatedts/internal/overloadunifier"
	"github.com/tsoniclang/generatedts/internal/phasegate"
	"github.com/tsoniclang/generatedts/internal/shapepasses"
	"github.com/tsoniclang/generatedts/internal/symgraph"
)

// Result is the outcome of a full pipeline run.
type Result struct {
	Plan        *symgraph.EmissionPlan
	Diagnostics *symgraph.DiagnosticsSink
	Reserver    *namereserver.Reserver
	OK          bool // false if the sink holds an error diagnostic from any phase
}

// Run executes Phases 2 through 4.7 in sequence over g using cfg, never
// mutating g itself — every phase returns a fresh graph (spec.md §5).
func Run(cfg config.Config, g *symgraph.SymbolGraph) Result {
	sink := symgraph.NewDiagnosticsSink()

	// Phase 2: build indices.
	idx, phase2Diags := symgraph.BuildIndices(g)
	for _, d := range phase2Diags {
		sink.Add(d)
	}
	g = g.WithIndices(idx)

	// Phases 3-4.2: the 18 ordered shape passes.
	shapeCtx := shapepasses.Context{Config: cfg, Sink: sink, Indices: idx}
	g = shapepasses.RunAll(shapeCtx, g)
	idx = symgraph.Rebuild(g) // shapepasses.RunAll already rebuilds per-pass; this is the post-sequence view
	g = g.WithIndices(idx)

	// Phase 3.5: NameReserver.
	g, reserver := namereserver.ApplyNamesToGraph(g)
	for _, d := range namereserver.Audit(g) {
		sink.Add(d)
	}
	idx = symgraph.Rebuild(g)
	g = g.WithIndices(idx)

	// Phase 4: ImportPlanner + EmitOrderPlanner.
	imports := importplanner.Plan(g, idx)
	emitOrder, cycleMembers := emitorder.Plan(g, imports)
	if len(cycleMembers) > 0 {
		if cfg.TreatNamespaceCycleAsError {
			sink.Add(symgraph.NamespaceCycleError(cycleMembers))
		} else {
			sink.Add(symgraph.NamespaceCycleWarning(cycleMembers))
		}
	}

	// Phase 4.5: OverloadUnifier.
	g = overloadunifier.Unify(cfg, idx, sink, g)
	idx = symgraph.Rebuild(g)
	g = g.WithIndices(idx)

	// Phase 4.6: ConstraintAuditor (findings only, no rewrite).
	findings := constraintauditor.Audit(idx, g)
	for _, f := range findings {
		switch f.Severity {
		case symgraph.ConstraintError:
			sink.Add(symgraph.ConstraintUnsatisfiable(f.TypeID, f.InterfaceID))
		case symgraph.ConstraintWarning:
			sink.Add(symgraph.ConstraintPrecisionLoss(f.TypeID, f.InterfaceID))
		}
	}

	plan := &symgraph.EmissionPlan{Graph: g, ImportPlan: imports, EmitOrder: emitOrder}

	// Phase 4.7: PhaseGate.
	gateDiags := phasegate.Run(phasegate.Input{
		Graph:             g,
		Indices:           idx,
		ImportPlan:        imports,
		EmitOrder:         emitOrder,
		ConstraintResults: findings,
	})
	for _, d := range gateDiags {
		sink.Add(d)
	}

	return Result{
		Plan:        plan,
		Diagnostics: sink,
		Reserver:    reserver,
		OK:          !sink.HasErrors(),
	}
}
