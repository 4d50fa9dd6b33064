package graphdef

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputConstructor(t *testing.T) {
	d := Input("a", 5)
	assert.Equal(t, "a", d.Name)
	assert.Equal(t, InputKind, d.Kind)
	assert.Equal(t, 5.0, d.InitialValue)
	assert.Empty(t, d.Parents)
}

func TestComputeConstructor(t *testing.T) {
	d := Compute("sum", "ADD", "a", "b")
	assert.Equal(t, ComputeKind, d.Kind)
	assert.Equal(t, "ADD", d.Operation)
	assert.Equal(t, []string{"a", "b"}, d.Parents)
	assert.Equal(t, 0.0, d.InitialValue)
}

func TestComputeWithInitial(t *testing.T) {
	d := ComputeWithInitial("sma3", "SMA", 7, "price")
	assert.Equal(t, 7.0, d.InitialValue)
	assert.Equal(t, []string{"price"}, d.Parents)
}

func TestComputeParentsAreCopied(t *testing.T) {
	parents := []string{"a", "b"}
	d := Compute("sum", "ADD", parents...)
	parents[0] = "mutated"
	assert.Equal(t, "a", d.Parents[0])
}
