// Package loaderstub is a declarative, Go-literal-based stand-in for the
// reflection front end that spec.md §1 places out of scope. It exists only
// so internal/pipeline and cmd/tsgen have a concrete *symgraph.SymbolGraph
// to drive end to end, grounded on how the teacher's compiler.Compile
// wires a real parser front end into the checker core (internal/compiler);
// here the front end is a fixture, not reflection over compiled assemblies.
package loaderstub

import (
	"github.com/moznion/go-optional"
	"github.com/tsoniclang/generatedts/internal/symgraph"
)

// Demo builds a small graph exercising the five non-gating seed scenarios
// from spec.md §8: diamond resolution, a reserved-word type name, a Hidden
// member via the `new` modifier, an overload return that widens to a
// common ancestor, and a class-surface indexer that must be elided.
func Demo() *symgraph.SymbolGraph {
	ns := symgraph.NewNamespace("Demo", symgraph.Public)

	animal := symgraph.NewType("Demo.Animal", symgraph.ClassKind)
	cat := symgraph.NewType("Demo.Cat", symgraph.ClassKind)
	cat.BaseType = optional.Some(symgraph.NewTypeRef("Demo.Animal"))
	dog := symgraph.NewType("Demo.Dog", symgraph.ClassKind)
	dog.BaseType = optional.Some(symgraph.NewTypeRef("Demo.Animal"))

	ia := symgraph.NewType("Demo.IA", symgraph.InterfaceKind).WithMembers([]symgraph.Member{
		{Kind: symgraph.MethodMember, Name: "M", Signature: symgraph.Signature{ReturnType: symgraph.ExternalTypeRef("void")}},
	})
	ib := symgraph.NewType("Demo.IB", symgraph.InterfaceKind).WithMembers([]symgraph.Member{
		{Kind: symgraph.MethodMember, Name: "M", Signature: symgraph.Signature{ReturnType: symgraph.ExternalTypeRef("void")}},
	})

	diamondClass := symgraph.NewType("Demo.D", symgraph.ClassKind).
		WithInterfaces([]symgraph.TypeRef{symgraph.NewTypeRef("Demo.IA"), symgraph.NewTypeRef("Demo.IB")})

	reservedWordType := symgraph.NewType("Demo.delete", symgraph.ClassKind)

	baseB := symgraph.NewType("Demo.B", symgraph.ClassKind).WithMembers([]symgraph.Member{
		{Kind: symgraph.MethodMember, Name: "Foo", Signature: symgraph.Signature{ReturnType: symgraph.ExternalTypeRef("int")}},
	})
	derivedD2 := symgraph.NewType("Demo.D2", symgraph.ClassKind).WithMembers([]symgraph.Member{
		{Kind: symgraph.MethodMember, Name: "Foo", Signature: symgraph.Signature{ReturnType: symgraph.ExternalTypeRef("string")}, HidesInherited: true},
	})
	derivedD2.BaseType = optional.Some(symgraph.NewTypeRef("Demo.B"))

	overloadClass := symgraph.NewType("Demo.Shelter", symgraph.ClassKind).WithMembers([]symgraph.Member{
		{
			Kind:      symgraph.MethodMember,
			Name:      "M",
			Signature: symgraph.Signature{Params: []symgraph.Param{{Name: "x", Type: symgraph.ExternalTypeRef("int")}}, ReturnType: symgraph.NewTypeRef("Demo.Cat")},
			Overloads: []symgraph.Signature{
				{Params: []symgraph.Param{{Name: "x", Type: symgraph.ExternalTypeRef("string")}}, ReturnType: symgraph.NewTypeRef("Demo.Dog")},
			},
		},
	})

	indexerClass := symgraph.NewType("Demo.Matrix", symgraph.ClassKind).WithMembers([]symgraph.Member{
		{
			Kind:      symgraph.IndexerMember,
			Name:      "Item",
			Signature: symgraph.Signature{Params: []symgraph.Param{{Name: "i", Type: symgraph.ExternalTypeRef("int")}}, ReturnType: symgraph.ExternalTypeRef("string")},
		},
	})

	ns = ns.WithTypes([]symgraph.Type{
		animal, cat, dog, ia, ib, diamondClass, reservedWordType,
		baseB, derivedD2, overloadClass, indexerClass,
	})

	return symgraph.NewSymbolGraph([]symgraph.Namespace{ns})
}
