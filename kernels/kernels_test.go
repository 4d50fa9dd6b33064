package kernels

import (
	"math"
	"testing"

	"github.com/derevyn/pulsegraph/compiled"
	"github.com/stretchr/testify/assert"
)

// graphWithParents builds a minimal compiled.Graph whose single compute
// node (id = len(parentValues)) has the given parent values, for exercising
// a kernel's Compute in isolation.
func graphWithParents(parentValues ...float64) (*compiled.Graph, compiled.NodeID) {
	n := len(parentValues)
	self := compiled.NodeID(n)

	values := append(append([]float64(nil), parentValues...), 0)
	parentIDs := make([]compiled.NodeID, n)
	for i := 0; i < n; i++ {
		parentIDs[i] = compiled.NodeID(i)
	}
	offsets := make([]int32, n+2)
	offsets[n+1] = int32(n)

	return &compiled.Graph{
		NodeCount:     n + 1,
		Values:        values,
		ParentOffsets: offsets,
		ParentIDs:     parentIDs,
	}, self
}

func TestVariadicEmptyPolicy(t *testing.T) {
	g, self := graphWithParents()
	assert.Equal(t, 0.0, Sum().Compute(self, g))
	assert.Equal(t, 1.0, Product().Compute(self, g))
	assert.True(t, math.IsNaN(Min().Compute(self, g)))
	assert.True(t, math.IsNaN(Max().Compute(self, g)))
	assert.True(t, math.IsNaN(Avg().Compute(self, g)))
}

func TestVariadicReduction(t *testing.T) {
	g, self := graphWithParents(1, 2, 3, 4)
	assert.Equal(t, 10.0, Sum().Compute(self, g))
	assert.Equal(t, 24.0, Product().Compute(self, g))
	assert.Equal(t, 1.0, Min().Compute(self, g))
	assert.Equal(t, 4.0, Max().Compute(self, g))
	assert.Equal(t, 2.5, Avg().Compute(self, g))
}

func TestBinaryOps(t *testing.T) {
	g, self := graphWithParents(10, 4)
	assert.Equal(t, 14.0, Add().Compute(self, g))
	assert.Equal(t, 6.0, Sub().Compute(self, g))
	assert.Equal(t, 40.0, Mul().Compute(self, g))
	assert.Equal(t, 2.5, Div().Compute(self, g))
	assert.Equal(t, 10000.0, Pow().Compute(self, g))
	assert.Equal(t, 2.0, Mod().Compute(self, g))
}

func TestDivByZeroIsNotAnError(t *testing.T) {
	g, self := graphWithParents(1, 0)
	assert.True(t, math.IsInf(Div().Compute(self, g), 1))

	g, self = graphWithParents(0, 0)
	assert.True(t, math.IsNaN(Div().Compute(self, g)))
}

func TestUnaryOps(t *testing.T) {
	g, self := graphWithParents(-9)
	assert.Equal(t, 9.0, Abs().Compute(self, g))
	assert.Equal(t, 9.0, Neg().Compute(self, g))
	assert.True(t, math.IsNaN(Sqrt().Compute(self, g)))
	assert.True(t, math.IsNaN(Log().Compute(self, g)))

	g, self = graphWithParents(0)
	assert.True(t, math.IsInf(Log().Compute(self, g), -1))

	g, self = graphWithParents(4)
	assert.Equal(t, 2.0, Sqrt().Compute(self, g))
}

func TestTernaryOps(t *testing.T) {
	g, self := graphWithParents(15, 0, 10)
	assert.Equal(t, 10.0, Clamp().Compute(self, g))

	g, self = graphWithParents(-5, 0, 10)
	assert.Equal(t, 0.0, Clamp().Compute(self, g))

	g, self = graphWithParents(5, 0, 10)
	assert.Equal(t, 5.0, Clamp().Compute(self, g))

	g, self = graphWithParents(0, 10, 0.5)
	assert.Equal(t, 5.0, Lerp().Compute(self, g))
}
