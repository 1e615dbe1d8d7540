package overloadunifier

import (
	"testing"

	"github.com/moznion/go-optional"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsoniclang/generatedts/internal/config"
	"github.com/tsoniclang/generatedts/internal/symgraph"
)

func buildForUnify(types ...symgraph.Type) (*symgraph.SymbolGraph, *symgraph.Indices) {
	ns := symgraph.NewNamespace("A", symgraph.Public).WithTypes(types)
	g := symgraph.NewSymbolGraph([]symgraph.Namespace{ns})
	idx, _ := symgraph.BuildIndices(g)
	return g, idx
}

func findMember(g *symgraph.SymbolGraph, typeID, name string) (symgraph.Member, bool) {
	t, ok := g.TypeByID(typeID)
	if !ok {
		return symgraph.Member{}, false
	}
	for _, m := range t.Members {
		if m.Name == name {
			return m, true
		}
	}
	return symgraph.Member{}, false
}

func TestUnify_MergesOverloadsIntoSingleDeclaration(t *testing.T) {
	method := symgraph.Member{
		Kind: symgraph.MethodMember,
		Name: "M",
		Signature: symgraph.Signature{
			Params:     []symgraph.Param{{Name: "x", Type: symgraph.NewTypeRef("int")}},
			ReturnType: symgraph.NewTypeRef("void"),
		},
	}
	overload := symgraph.Member{
		Kind: symgraph.MethodMember,
		Name: "M",
		Signature: symgraph.Signature{
			Params:     []symgraph.Param{{Name: "x", Type: symgraph.NewTypeRef("string")}},
			ReturnType: symgraph.NewTypeRef("void"),
		},
	}
	ty := symgraph.NewType("A.Foo", symgraph.ClassKind).WithMembers([]symgraph.Member{method, overload})

	g, idx := buildForUnify(ty)
	sink := symgraph.NewDiagnosticsSink()
	out := Unify(config.Default(), idx, sink, g)

	result, ok := out.TypeByID("A.Foo")
	require.True(t, ok)

	var mCount int
	for _, m := range result.Members {
		if m.Name == "M" {
			mCount++
		}
	}
	assert.Equal(t, 1, mCount, "only one M declaration must remain after unification")

	m, ok := findMember(out, "A.Foo", "M")
	require.True(t, ok)
	assert.Len(t, m.Overloads, 1, "the second signature must be carried as an overload")
}

func TestUnify_WidensDivergentReturnsToCommonAncestor(t *testing.T) {
	animal := symgraph.NewType("A.Animal", symgraph.ClassKind)
	cat := symgraph.NewType("A.Cat", symgraph.ClassKind)
	cat.BaseType = optional.Some(symgraph.NewTypeRef("A.Animal"))
	dog := symgraph.NewType("A.Dog", symgraph.ClassKind)
	dog.BaseType = optional.Some(symgraph.NewTypeRef("A.Animal"))

	shelter := symgraph.NewType("A.Shelter", symgraph.ClassKind).WithMembers([]symgraph.Member{
		{
			Kind:      symgraph.MethodMember,
			Name:      "Get",
			Signature: symgraph.Signature{Params: []symgraph.Param{{Name: "x", Type: symgraph.NewTypeRef("int")}}, ReturnType: symgraph.NewTypeRef("A.Cat")},
			Overloads: []symgraph.Signature{
				{Params: []symgraph.Param{{Name: "x", Type: symgraph.NewTypeRef("string")}}, ReturnType: symgraph.NewTypeRef("A.Dog")},
			},
		},
	})

	g, idx := buildForUnify(animal, cat, dog, shelter)
	sink := symgraph.NewDiagnosticsSink()
	out := Unify(config.Default(), idx, sink, g)

	m, ok := findMember(out, "A.Shelter", "Get")
	require.True(t, ok)
	assert.Equal(t, "A.Animal", m.Signature.ReturnType.CanonicalID)
	assert.NotEmpty(t, m.WidenedReturnUnion)
}

func TestUnify_NonMethodMembersPassThroughUntouched(t *testing.T) {
	field := symgraph.Member{Kind: symgraph.PropertyMember, Name: "Count", Signature: symgraph.Signature{ReturnType: symgraph.NewTypeRef("int")}}
	ty := symgraph.NewType("A.Foo", symgraph.ClassKind).WithMembers([]symgraph.Member{field})

	g, idx := buildForUnify(ty)
	sink := symgraph.NewDiagnosticsSink()
	out := Unify(config.Default(), idx, sink, g)

	result, _ := out.TypeByID("A.Foo")
	require.Len(t, result.Members, 1)
	assert.Equal(t, "Count", result.Members[0].Name)
}
