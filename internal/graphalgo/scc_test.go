package graphalgo

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCycles(t *testing.T) {
	tests := map[string]struct {
		nodes      []string
		edges      map[string][]string
		wantCycles int
	}{
		"NoEdges": {
			nodes:      []string{"A", "B", "C"},
			edges:      map[string][]string{},
			wantCycles: 0,
		},
		"LinearChain_NoCycle": {
			nodes:      []string{"A", "B", "C"},
			edges:      map[string][]string{"A": {"B"}, "B": {"C"}},
			wantCycles: 0,
		},
		"SelfLoop": {
			nodes:      []string{"A"},
			edges:      map[string][]string{"A": {"A"}},
			wantCycles: 1,
		},
		"TwoNodeCycle": {
			nodes:      []string{"A", "B"},
			edges:      map[string][]string{"A": {"B"}, "B": {"A"}},
			wantCycles: 1,
		},
		"ThreeNodeCycle": {
			nodes:      []string{"A", "B", "C"},
			edges:      map[string][]string{"A": {"B"}, "B": {"C"}, "C": {"A"}},
			wantCycles: 1,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			successors := func(id string) []string { return tc.edges[id] }
			cycles := Cycles(tc.nodes, successors)
			assert.Len(t, cycles, tc.wantCycles)
		})
	}
}

func TestTopoSort_RespectsDependencyOrder(t *testing.T) {
	nodes := []string{"C", "A", "B"}
	edges := map[string][]string{"A": {"B"}, "B": {"C"}}
	successors := func(id string) []string { return edges[id] }
	less := func(a, b string) bool { return a < b }

	order := TopoSort(nodes, successors, less)
	require.Len(t, order, 3)

	pos := map[string]int{}
	for i, id := range order {
		pos[id] = i
	}
	assert.Less(t, pos["A"], pos["B"], "A must precede its successor B")
	assert.Less(t, pos["B"], pos["C"], "B must precede its successor C")
}

func TestTopoSort_IsTotalEvenWithCycles(t *testing.T) {
	nodes := []string{"X", "Y", "Z"}
	edges := map[string][]string{"X": {"Y"}, "Y": {"X"}, "Z": {}}
	successors := func(id string) []string { return edges[id] }
	less := func(a, b string) bool { return a < b }

	order := TopoSort(nodes, successors, less)
	sorted := append([]string{}, order...)
	sort.Strings(sorted)
	assert.Equal(t, []string{"X", "Y", "Z"}, sorted, "every node must appear exactly once despite the X/Y cycle")
}

func TestTopoSort_DeterministicTieBreak(t *testing.T) {
	nodes := []string{"Zeta", "Alpha", "Beta"}
	successors := func(string) []string { return nil }
	less := func(a, b string) bool { return a < b }

	order := TopoSort(nodes, successors, less)
	assert.Equal(t, []string{"Alpha", "Beta", "Zeta"}, order)
}
