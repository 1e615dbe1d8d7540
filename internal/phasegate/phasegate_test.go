package phasegate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tsoniclang/generatedts/internal/symgraph"
)

func minimalInput(types ...symgraph.Type) Input {
	ns := symgraph.NewNamespace("A", symgraph.Public).WithTypes(types)
	g := symgraph.NewSymbolGraph([]symgraph.Namespace{ns})
	idx, _ := symgraph.BuildIndices(g)
	return Input{
		Graph:      g,
		Indices:    idx,
		ImportPlan: symgraph.NewImportPlan(),
		EmitOrder:  symgraph.EmitOrder{Order: []string{"A"}},
	}
}

func TestRun_CleanGraphHasNoDiagnostics(t *testing.T) {
	ty := symgraph.NewType("A.Foo", symgraph.ClassKind).
		WithEmitScope(symgraph.ScopePublic).
		WithTsEmitName("Foo")

	diags := Run(minimalInput(ty))
	assert.Empty(t, diags)
	assert.False(t, HasBlockingErrors(diags))
}

func TestRun_UnsetEmitScopeIsGated(t *testing.T) {
	ty := symgraph.NewType("A.Foo", symgraph.ClassKind) // EmitScope left at ScopeUnset

	diags := Run(minimalInput(ty))
	assert.True(t, HasBlockingErrors(diags))

	var sawUnset bool
	for _, d := range diags {
		if d.Code == "GATE-UNSET-SCOPE" {
			sawUnset = true
		}
	}
	assert.True(t, sawUnset)
}

func TestRun_MissingEmitNameIsGated(t *testing.T) {
	ty := symgraph.NewType("A.Foo", symgraph.ClassKind).WithEmitScope(symgraph.ScopePublic) // no TsEmitName

	diags := Run(minimalInput(ty))
	assert.True(t, HasBlockingErrors(diags))
}

func TestRun_DuplicateEmitNameInNamespaceIsGated(t *testing.T) {
	a := symgraph.NewType("A.Foo", symgraph.ClassKind).WithEmitScope(symgraph.ScopePublic).WithTsEmitName("Dup")
	b := symgraph.NewType("A.Bar", symgraph.ClassKind).WithEmitScope(symgraph.ScopePublic).WithTsEmitName("Dup")

	diags := Run(minimalInput(a, b))
	var sawCollide bool
	for _, d := range diags {
		if d.Code == "GATE-NAME-COLLIDE" {
			sawCollide = true
		}
	}
	assert.True(t, sawCollide)
}

func TestRun_LeakedIndexerIsGated(t *testing.T) {
	ty := symgraph.NewType("A.Matrix", symgraph.ClassKind).
		WithEmitScope(symgraph.ScopePublic).
		WithTsEmitName("Matrix").
		WithMembers([]symgraph.Member{
			{Kind: symgraph.IndexerMember, Name: "Item", EmitScope: symgraph.ScopePublic},
		})

	diags := Run(minimalInput(ty))
	var sawLeak bool
	for _, d := range diags {
		if d.Code == "GATE-LEAKED-INDEXER" {
			sawLeak = true
		}
	}
	assert.True(t, sawLeak)
}

func TestRun_EmitOrderNotTotalIsGated(t *testing.T) {
	ty := symgraph.NewType("A.Foo", symgraph.ClassKind).WithEmitScope(symgraph.ScopePublic).WithTsEmitName("Foo")
	in := minimalInput(ty)
	in.EmitOrder = symgraph.EmitOrder{Order: nil}

	diags := Run(in)
	var sawIncomplete bool
	for _, d := range diags {
		if d.Code == "GATE-EMIT-ORDER-INCOMPLETE" {
			sawIncomplete = true
		}
	}
	assert.True(t, sawIncomplete)
}
