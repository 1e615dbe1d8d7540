package namereserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReserve_ReservedWordGetsUnderscoreSuffix(t *testing.T) {
	r := New()
	scope := NamespaceScopeOf("Demo", "public")
	got := r.Reserve(scope, "delete")
	assert.Equal(t, "delete_", got)
}

func TestReserve_CollisionGetsNumericSuffix(t *testing.T) {
	r := New()
	scope := ClassSurfaceScopeOf("Demo.D", false)
	first := r.Reserve(scope, "Foo")
	second := r.Reserve(scope, "Foo")
	third := r.Reserve(scope, "Foo")

	assert.Equal(t, "Foo", first)
	assert.Equal(t, "Foo2", second)
	assert.Equal(t, "Foo3", third)
}

func TestReserve_ScopesAreIndependent(t *testing.T) {
	r := New()
	instance := ClassSurfaceScopeOf("Demo.D", false)
	static := ClassSurfaceScopeOf("Demo.D", true)

	gotInstance := r.Reserve(instance, "Foo")
	gotStatic := r.Reserve(static, "Foo")

	assert.Equal(t, "Foo", gotInstance)
	assert.Equal(t, "Foo", gotStatic, "static and instance surfaces reserve independently")
}

func TestReserve_BacktickAndPlusNormalized(t *testing.T) {
	r := New()
	scope := NamespaceScopeOf("Demo", "public")
	got := r.Reserve(scope, "List`1")
	assert.Equal(t, "List_1", got)

	got2 := r.Reserve(NamespaceScopeOf("Demo2", "public"), "Outer+Inner")
	assert.Equal(t, "Outer_Inner", got2)
}

func TestReserve_LeadingDigitGuarded(t *testing.T) {
	r := New()
	got := r.Reserve(NamespaceScopeOf("Demo", "public"), "3DPoint")
	assert.Equal(t, "_3DPoint", got)
}
