package importplanner

import (
	"testing"

	"github.com/moznion/go-optional"
	"github.com/stretchr/testify/assert"
	"github.com/tsoniclang/generatedts/internal/symgraph"
)

func TestPlan_RecordsCrossNamespaceReference(t *testing.T) {
	widget := symgraph.NewType("Lib.Widget", symgraph.ClassKind).WithTsEmitName("Widget")
	consumer := symgraph.NewType("App.Consumer", symgraph.ClassKind)
	consumer.BaseType = optional.Some(symgraph.NewTypeRef("Lib.Widget"))

	libNS := symgraph.NewNamespace("Lib", symgraph.Public).WithTypes([]symgraph.Type{widget})
	appNS := symgraph.NewNamespace("App", symgraph.Public).WithTypes([]symgraph.Type{consumer})
	g := symgraph.NewSymbolGraph([]symgraph.Namespace{libNS, appNS})
	idx, _ := symgraph.BuildIndices(g)

	plan := Plan(g, idx)
	specs := plan.For("App")
	assert.Len(t, specs, 1)
	assert.Equal(t, "Lib", specs[0].FromNamespace)
	assert.Equal(t, "Widget", specs[0].Symbol)
	assert.Equal(t, "Widget", specs[0].LocalAlias)
}

func TestPlan_AliasesCollidingImportedNames(t *testing.T) {
	widgetA := symgraph.NewType("Lib.WidgetA", symgraph.ClassKind).WithTsEmitName("Widget")
	widgetB := symgraph.NewType("Other.WidgetB", symgraph.ClassKind).WithTsEmitName("Widget")

	consumer := symgraph.NewType("App.Consumer", symgraph.ClassKind).
		WithInterfaces([]symgraph.TypeRef{symgraph.NewTypeRef("Lib.WidgetA"), symgraph.NewTypeRef("Other.WidgetB")})

	libNS := symgraph.NewNamespace("Lib", symgraph.Public).WithTypes([]symgraph.Type{widgetA})
	otherNS := symgraph.NewNamespace("Other", symgraph.Public).WithTypes([]symgraph.Type{widgetB})
	appNS := symgraph.NewNamespace("App", symgraph.Public).WithTypes([]symgraph.Type{consumer})
	g := symgraph.NewSymbolGraph([]symgraph.Namespace{libNS, otherNS, appNS})
	idx, _ := symgraph.BuildIndices(g)

	plan := Plan(g, idx)
	specs := plan.For("App")
	assert.Len(t, specs, 2)

	aliases := map[string]bool{}
	for _, s := range specs {
		aliases[s.LocalAlias] = true
	}
	assert.Len(t, aliases, 2, "colliding imported symbol names must get distinct local aliases")
}

func TestPlan_IntraNamespaceReferenceIsNotImported(t *testing.T) {
	base := symgraph.NewType("App.Base", symgraph.ClassKind).WithTsEmitName("Base")
	derived := symgraph.NewType("App.Derived", symgraph.ClassKind)
	derived.BaseType = optional.Some(symgraph.NewTypeRef("App.Base"))

	ns := symgraph.NewNamespace("App", symgraph.Public).WithTypes([]symgraph.Type{base, derived})
	g := symgraph.NewSymbolGraph([]symgraph.Namespace{ns})
	idx, _ := symgraph.BuildIndices(g)

	plan := Plan(g, idx)
	assert.Empty(t, plan.For("App"))
}
