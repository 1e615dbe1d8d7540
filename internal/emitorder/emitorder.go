// Package emitorder implements EmitOrderPlanner (Phase 4, spec.md §4.4): a
// topological order over namespaces by their import dependency DAG, with
// cycles permitted (declaration-merging covers them at the target-language
// level) but reported and broken by lexicographic tie-break.
package emitorder

import (
	"sort"

	"github.com/maruel/natural"
	"github.com/tsoniclang/generatedts/internal/graphalgo"
	"github.com/tsoniclang/generatedts/internal/symgraph"
)

// Plan computes the EmitOrder for every namespace in g given the import
// dependencies recorded in plan, plus any namespace-cycle diagnostics
// (config.TreatNamespaceCycleAsError decides severity — that decision lives
// in the caller, the pipeline driver, since this package only detects
// cycles, it doesn't know about Config).
func Plan(g *symgraph.SymbolGraph, plan *symgraph.ImportPlan) (symgraph.EmitOrder, []string) {
	ids := make([]string, len(g.Namespaces))
	for i, ns := range g.Namespaces {
		ids[i] = ns.ID
	}
	sort.Strings(ids)

	// An edge runs from an imported namespace to each namespace importing
	// from it, so TopoSort places providers before their importers.
	dependents := map[string][]string{}
	for _, id := range ids {
		for _, spec := range plan.For(id) {
			dependents[spec.FromNamespace] = append(dependents[spec.FromNamespace], id)
		}
	}
	successors := func(id string) []string { return dependents[id] }

	cycles := graphalgo.Cycles(ids, successors)
	var cycleMembers []string
	for _, cycle := range cycles {
		sort.Strings(cycle)
		cycleMembers = append(cycleMembers, cycle...)
	}

	less := func(a, b string) bool {
		// natural.Less gives a human-friendly tie-break on namespace ids that
		// embed numeric version/segment components (e.g. "NS.v2" before
		// "NS.v10"), grounded on the pack's github.com/maruel/natural; falls
		// back to plain lexicographic ordering implicitly since natural.Less
		// degrades to byte comparison for non-numeric segments.
		return natural.Less(a, b)
	}
	order := graphalgo.TopoSort(ids, successors, less)

	return symgraph.EmitOrder{Order: order}, cycleMembers
}
