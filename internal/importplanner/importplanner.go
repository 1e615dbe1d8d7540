// Package importplanner implements ImportPlanner (Phase 4, spec.md §4.4):
// for every namespace, compute the set of symbols it references that are
// declared in a different namespace, and record each as an ImportSpec with
// a collision-safe local alias.
package importplanner

import (
	"sort"

	"github.com/tsoniclang/generatedts/internal/set"
	"github.com/tsoniclang/generatedts/internal/symgraph"
)

// Plan walks g and returns the cross-namespace ImportPlan. The owning
// namespace of every type is recorded in a local map; referenced types are
// resolved through idx (the same btree-backed Indices used elsewhere in
// Phase 4) rather than a fresh linear scan per reference.
func Plan(g *symgraph.SymbolGraph, idx *symgraph.Indices) *symgraph.ImportPlan {
	nsOfType := map[string]string{}
	localNames := map[string]set.Set[string]{} // namespace -> TsEmitName set already declared locally
	for _, ns := range g.Namespaces {
		bucket := set.NewSet[string]()
		for _, t := range ns.Types {
			nsOfType[t.CanonicalID] = ns.ID
			if name, ok := t.TsEmitName.Take(); ok {
				bucket.Add(name)
			}
		}
		localNames[ns.ID] = bucket
	}

	plan := symgraph.NewImportPlan()
	for _, ns := range g.Namespaces {
		refs := set.NewSet[string]() // dedup (fromNamespace|symbol) within this namespace
		for _, t := range ns.Types {
			for _, ref := range references(t) {
				fromNS, ok := nsOfType[ref]
				if !ok || fromNS == ns.ID {
					continue // unresolved (dangling, handled by PhaseGate) or intra-namespace
				}
				resolved, _ := idx.Resolve(ref)
				symbolName, ok := resolved.TsEmitName.Take()
				if !ok {
					continue // omitted type, never imported
				}
				dedupKey := fromNS + "|" + symbolName
				if refs.Contains(dedupKey) {
					continue
				}
				refs.Add(dedupKey)

				alias := symbolName
				if localNames[ns.ID].Contains(symbolName) {
					alias = uniqueAlias(symbolName, localNames[ns.ID])
				}
				localNames[ns.ID].Add(alias)

				plan.Add(ns.ID, symgraph.ImportSpec{
					FromNamespace: fromNS,
					Symbol:        symbolName,
					LocalAlias:    alias,
				})
			}
		}
	}
	return plan
}

// uniqueAlias appends the smallest integer suffix >= 2 that isn't already
// taken in the namespace's local name set (spec.md §4.4 aliasing rule).
func uniqueAlias(symbol string, taken set.Set[string]) string {
	for suffix := 2; ; suffix++ {
		candidate := symbol + itoa(suffix)
		if !taken.Contains(candidate) {
			return candidate
		}
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	if neg {
		digits = append([]byte{'-'}, digits...)
	}
	return string(digits)
}

// references collects every TypeRef canonical id type t mentions: its base
// type, its implemented interfaces, generic constraints, and every member
// signature's parameter/return types across all overloads.
func references(t symgraph.Type) []string {
	var out []string
	add := func(ref symgraph.TypeRef) {
		if ref.External {
			return
		}
		out = append(out, ref.CanonicalID)
		for _, arg := range ref.TypeArgs {
			add(arg)
		}
	}

	if bt, ok := t.BaseType.Take(); ok {
		add(bt)
	}
	for _, iface := range t.Interfaces {
		add(iface)
	}
	for _, tp := range t.TypeParams {
		for _, c := range tp.Constraints {
			add(c)
		}
	}
	for _, m := range t.Members {
		for _, sig := range m.AllSignatures() {
			for _, p := range sig.Params {
				add(p.Type)
			}
			add(sig.ReturnType)
			for _, tp := range sig.TypeParams {
				for _, c := range tp.Constraints {
					add(c)
				}
			}
		}
	}
	sort.Strings(out)
	return out
}
