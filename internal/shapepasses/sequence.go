// Package shapepasses implements the 18 ordered shape-transformation passes
// of spec.md §4.2. Each pass has the signature (Context, *SymbolGraph) ->
// *SymbolGraph, exactly as spec.md prescribes, grounded on the teacher's
// checker phase functions which thread a Context value through a fixed
// sequence of Infer* passes over an immutable *ast.Module
// (internal/checker/infer_module.go, internal/checker/checker.go).
package shapepasses

import (
	"github.com/tsoniclang/generatedts/internal/config"
	"github.com/tsoniclang/generatedts/internal/symgraph"
)

// Context is threaded through every pass. It never itself becomes part of
// the graph; it carries the build-wide configuration, the diagnostics sink
// (the one collaborator with interior mutability besides NameReserver,
// spec.md §5), and the Phase-2 indices the passes consult.
type Context struct {
	Config  config.Config
	Sink    *symgraph.DiagnosticsSink
	Indices *symgraph.Indices
}

// Pass is the uniform shape of every one of the 18 transformations.
type Pass func(ctx Context, g *symgraph.SymbolGraph) *symgraph.SymbolGraph

// namedPass pairs a Pass with the phase-flag name used for precondition
// assertions (spec.md §4.2 "Sequencing contract is mechanical").
type namedPass struct {
	name string
	run  Pass
}

// sequence is the exact order mandated by spec.md §4.2. Renumbering this
// slice changes the pipeline's semantics, not just its performance.
var sequence = []namedPass{
	{"InterfaceInliner", InterfaceInliner},
	{"InternalInterfaceFilter", InternalInterfaceFilter},
	{"StructuralConformance", StructuralConformance},
	{"ExplicitImplSynthesizer", ExplicitImplSynthesizer},
	{"InterfaceResolver", InterfaceResolver},
	{"DiamondResolver", DiamondResolver},
	{"BaseOverloadAdder", BaseOverloadAdder},
	{"OverloadReturnConflictResolver", OverloadReturnConflictResolver},
	{"MemberDeduplicator", MemberDeduplicator},
	{"ViewPlanner", ViewPlanner},
	{"ClassSurfaceDeduplicator", ClassSurfaceDeduplicator},
	{"HiddenMemberPlanner", HiddenMemberPlanner},
	{"IndexerPlanner", IndexerPlanner},
	{"FinalIndexersPass", FinalIndexersPass},
	{"StaticSideAnalyzer", StaticSideAnalyzer},
	{"ConstraintCloser", ConstraintCloser},
	{"ExplicitImplScheduling", explicitImplSchedulingNoop},
	{"FinalizeEmitScope", FinalizeEmitScope},
}

// RunAll executes all 18 passes in order, marking each type as having run
// every prior pass so later passes can assert preconditions.
func RunAll(ctx Context, g *symgraph.SymbolGraph) *symgraph.SymbolGraph {
	for _, p := range sequence {
		g = p.run(ctx, g)
		g = markRun(g, p.name)
		// Re-derive indices after every pass: each pass is a structural
		// rewrite, and spec.md §3 requires indices stay consistent with the
		// graph they describe.
		ctx.Indices = symgraph.Rebuild(g)
	}
	return g
}

func markRun(g *symgraph.SymbolGraph, pass string) *symgraph.SymbolGraph {
	return g.MapTypes(func(_ symgraph.Namespace, t symgraph.Type) symgraph.Type {
		return t.MarkRun(pass)
	})
}

// requirePass records an INTERNAL-PRECONDITION error diagnostic in the sink
// if a precondition pass hasn't run yet; it does not panic. Shape passes call this at entry for any
// precondition spec.md §4.2 names explicitly (e.g. HiddenMemberPlanner
// requires InterfaceInliner). A failing precondition is a fatal internal
// error, distinguished by the INTERNAL-* code family (spec.md §7).
func requirePass(ctx Context, t symgraph.Type, pass string) {
	if !t.HasRun(pass) {
		ctx.Sink.Add(symgraph.InternalInvariantFailure(
			"PRECONDITION",
			"pass requires "+pass+" to have already run on type "+t.CanonicalID,
		))
	}
}

// pass 17 in spec.md's prose is a scheduling note ("StructuralConformance /
// ExplicitImpl scheduling enforced above"), not an independent
// transformation; it is kept as a no-op slot so the sequence numbering in
// spec.md §4.2 and this slice line up one-to-one for readability.
func explicitImplSchedulingNoop(_ Context, g *symgraph.SymbolGraph) *symgraph.SymbolGraph {
	return g
}
