package emitorder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsoniclang/generatedts/internal/symgraph"
)

func graphWithNamespaces(ids ...string) *symgraph.SymbolGraph {
	namespaces := make([]symgraph.Namespace, len(ids))
	for i, id := range ids {
		namespaces[i] = symgraph.NewNamespace(id, symgraph.Public)
	}
	return symgraph.NewSymbolGraph(namespaces)
}

func TestPlan_OrdersDependenciesBeforeDependents(t *testing.T) {
	g := graphWithNamespaces("App", "Lib")
	plan := symgraph.NewImportPlan()
	plan.Add("App", symgraph.ImportSpec{FromNamespace: "Lib", Symbol: "Widget", LocalAlias: "Widget"})

	order, cycles := Plan(g, plan)
	assert.Empty(t, cycles)
	require.Len(t, order.Order, 2)

	pos := map[string]int{}
	for i, id := range order.Order {
		pos[id] = i
	}
	assert.Less(t, pos["Lib"], pos["App"], "Lib must emit before App, which imports from it")
}

func TestPlan_ReportsCycleMembersButStillProducesTotalOrder(t *testing.T) {
	g := graphWithNamespaces("X", "Y")
	plan := symgraph.NewImportPlan()
	plan.Add("X", symgraph.ImportSpec{FromNamespace: "Y", Symbol: "A", LocalAlias: "A"})
	plan.Add("Y", symgraph.ImportSpec{FromNamespace: "X", Symbol: "B", LocalAlias: "B"})

	order, cycles := Plan(g, plan)
	assert.NotEmpty(t, cycles)
	assert.True(t, order.IsTotal([]string{"X", "Y"}))
}

func TestPlan_NoDependenciesOrdersNaturally(t *testing.T) {
	g := graphWithNamespaces("NS.v10", "NS.v2")
	plan := symgraph.NewImportPlan()

	order, cycles := Plan(g, plan)
	assert.Empty(t, cycles)
	assert.Equal(t, []string{"NS.v2", "NS.v10"}, order.Order, "natural tie-break orders v2 before v10")
}
