package shapepasses

import (
	"testing"

	"github.com/moznion/go-optional"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsoniclang/generatedts/internal/config"
	"github.com/tsoniclang/generatedts/internal/symgraph"
)

func newCtx(g *symgraph.SymbolGraph) Context {
	idx, _ := symgraph.BuildIndices(g)
	return Context{Config: config.Default(), Sink: symgraph.NewDiagnosticsSink(), Indices: idx}
}

func TestDiamondResolver_SiblingInterfacesResolveDeterministically(t *testing.T) {
	ia := symgraph.NewType("A.IA", symgraph.InterfaceKind)
	ib := symgraph.NewType("A.IB", symgraph.InterfaceKind)
	d := symgraph.NewType("A.D", symgraph.ClassKind).
		WithInterfaces([]symgraph.TypeRef{symgraph.NewTypeRef("A.IA"), symgraph.NewTypeRef("A.IB")}).
		WithMembers([]symgraph.Member{
			{Kind: symgraph.MethodMember, Name: "M", DeclaringInterface: optional.Some("A.IA")},
			{Kind: symgraph.MethodMember, Name: "M", DeclaringInterface: optional.Some("A.IB")},
		})

	ns := symgraph.NewNamespace("A", symgraph.Public).WithTypes([]symgraph.Type{ia, ib, d})
	g := symgraph.NewSymbolGraph([]symgraph.Namespace{ns})
	ctx := newCtx(g)

	out := DiamondResolver(ctx, g)
	result, ok := out.TypeByID("A.D")
	require.True(t, ok)

	var surfaced, viewOnly int
	for _, m := range result.Members {
		switch m.Tag.Kind {
		case symgraph.TagNone:
			surfaced++
		case symgraph.TagViewOnly:
			viewOnly++
		}
	}
	assert.Equal(t, 1, surfaced, "exactly one M must remain on the class surface")
	assert.Equal(t, 1, viewOnly, "the loser must be demoted to ViewOnly, not dropped")

	diags := ctx.Sink.All()
	require.Len(t, diags, 1)
	assert.Equal(t, "SHAPE-DIAMOND-RESOLVED", diags[0].Code)
}

func TestDiamondResolver_DirectClassMemberWinsOverInherited(t *testing.T) {
	ia := symgraph.NewType("A.IA", symgraph.InterfaceKind)
	d := symgraph.NewType("A.D", symgraph.ClassKind).
		WithInterfaces([]symgraph.TypeRef{symgraph.NewTypeRef("A.IA")}).
		WithMembers([]symgraph.Member{
			{Kind: symgraph.MethodMember, Name: "M"}, // direct declaration, no DeclaringInterface
			{Kind: symgraph.MethodMember, Name: "M", DeclaringInterface: optional.Some("A.IA")},
		})

	ns := symgraph.NewNamespace("A", symgraph.Public).WithTypes([]symgraph.Type{ia, d})
	g := symgraph.NewSymbolGraph([]symgraph.Namespace{ns})
	ctx := newCtx(g)

	out := DiamondResolver(ctx, g)
	result, _ := out.TypeByID("A.D")

	assert.Equal(t, symgraph.TagNone, result.Members[0].Tag.Kind)
	assert.Equal(t, symgraph.TagViewOnly, result.Members[1].Tag.Kind)
}

func TestDiamondResolver_NonDiamondMemberIsUntouched(t *testing.T) {
	d := symgraph.NewType("A.D", symgraph.ClassKind).WithMembers([]symgraph.Member{
		{Kind: symgraph.MethodMember, Name: "Solo"},
	})
	ns := symgraph.NewNamespace("A", symgraph.Public).WithTypes([]symgraph.Type{d})
	g := symgraph.NewSymbolGraph([]symgraph.Namespace{ns})
	ctx := newCtx(g)

	out := DiamondResolver(ctx, g)
	result, _ := out.TypeByID("A.D")
	assert.Equal(t, symgraph.TagNone, result.Members[0].Tag.Kind)
	assert.Empty(t, ctx.Sink.All())
}
