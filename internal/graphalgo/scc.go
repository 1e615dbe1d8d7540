// Package graphalgo provides small generic graph algorithms shared by the
// indices and planner stages: strongly-connected-component detection (used
// to find interface-inheritance cycles and namespace import cycles) and a
// deterministic topological sort. Adapted from the teacher's
// internal/dep_graph/cycles.go Tarjan implementation, generalized from
// DeclID to any comparable id type since this pipeline's cycle checks run
// over interface ids and namespace ids rather than declaration ids.
package graphalgo

// StronglyConnectedComponents runs Tarjan's algorithm over a graph described
// by nodes and a successors lookup. Components are returned in topological
// order: if component A depends on component B, A appears after B.
func StronglyConnectedComponents[ID comparable](nodes []ID, successors func(ID) []ID) [][]ID {
	index := 0
	var stack []ID
	indices := make(map[ID]int)
	lowlinks := make(map[ID]int)
	onStack := make(map[ID]bool)
	var sccs [][]ID

	var strongConnect func(ID)
	strongConnect = func(v ID) {
		indices[v] = index
		lowlinks[v] = index
		index++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range successors(v) {
			if _, seen := indices[w]; !seen {
				strongConnect(w)
				if lowlinks[w] < lowlinks[v] {
					lowlinks[v] = lowlinks[w]
				}
			} else if onStack[w] {
				if indices[w] < lowlinks[v] {
					lowlinks[v] = indices[w]
				}
			}
		}

		if lowlinks[v] == indices[v] {
			var scc []ID
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				scc = append(scc, w)
				if w == v {
					break
				}
			}
			sccs = append(sccs, scc)
		}
	}

	for _, n := range nodes {
		if _, seen := indices[n]; !seen {
			strongConnect(n)
		}
	}

	return sccs
}

// Cycles returns only the components that represent a real cycle: size > 1,
// or a size-1 component whose sole node is a successor of itself
// (self-reference).
func Cycles[ID comparable](nodes []ID, successors func(ID) []ID) [][]ID {
	sccs := StronglyConnectedComponents(nodes, successors)
	var out [][]ID
	for _, scc := range sccs {
		if len(scc) > 1 {
			out = append(out, scc)
			continue
		}
		for _, w := range successors(scc[0]) {
			if w == scc[0] {
				out = append(out, scc)
				break
			}
		}
	}
	return out
}

// TopoSort produces a total order over nodes respecting the DAG formed by
// successors, breaking ties among ready nodes deterministically with
// less(a, b). When only nodes held back by a cycle remain, the first of them
// in nodes order is emitted next (the caller reports cycles separately);
// this guarantees TopoSort always returns every node exactly once, satisfying
// EmitOrderPlanner's "EmitOrder is total" contract (spec.md §4.4, §8 P-ish
// invariant "emit order is total").
func TopoSort[ID comparable](nodes []ID, successors func(ID) []ID, less func(a, b ID) bool) []ID {
	inDegree := make(map[ID]int, len(nodes))
	depsOf := make(map[ID][]ID, len(nodes))
	for _, n := range nodes {
		if _, ok := inDegree[n]; !ok {
			inDegree[n] = 0
		}
	}
	// An edge n -> s means s depends on n (s must come after n), so s's
	// in-degree counts predecessors.
	predecessors := make(map[ID][]ID, len(nodes))
	for _, n := range nodes {
		for _, s := range successors(n) {
			predecessors[s] = append(predecessors[s], n)
		}
	}
	for _, n := range nodes {
		inDegree[n] = len(uniquePresent(predecessors[n], inDegree))
	}
	_ = depsOf

	remaining := make(map[ID]bool, len(nodes))
	for _, n := range nodes {
		remaining[n] = true
	}

	var order []ID
	for len(order) < len(nodes) {
		var ready []ID
		for _, n := range nodes {
			if !remaining[n] {
				continue
			}
			if inDegree[n] == 0 {
				ready = append(ready, n)
			}
		}
		if len(ready) == 0 {
			// Cycle remnants: break the tie deterministically and proceed so
			// every node is still emitted exactly once.
			for _, n := range nodes {
				if remaining[n] {
					ready = append(ready, n)
					break
				}
			}
		}
		sortBy(ready, less)
		next := ready[0]
		order = append(order, next)
		remaining[next] = false
		for _, s := range successors(next) {
			if remaining[s] {
				inDegree[s]--
			}
		}
	}
	return order
}

func uniquePresent[ID comparable](ids []ID, universe map[ID]int) []ID {
	seen := make(map[ID]bool, len(ids))
	var out []ID
	for _, id := range ids {
		if _, ok := universe[id]; !ok {
			continue
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func sortBy[ID comparable](ids []ID, less func(a, b ID) bool) {
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && less(ids[j], ids[j-1]); j-- {
			ids[j], ids[j-1] = ids[j-1], ids[j]
		}
	}
}
