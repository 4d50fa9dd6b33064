package kernels

import (
	"math"

	"github.com/derevyn/pulsegraph/compiled"
)

// variadicKernel folds every parent value through reduce, seeded with the
// first parent's value, with no allocation: it never materializes a slice of
// parent values, only streams through the CSR range.
type variadicKernel struct {
	identity float64
	reduce   func(acc, v float64) float64
	// empty overrides the return value when the node has zero parents,
	// for operations whose "empty" policy differs from their identity
	// element (MIN/MAX/AVG return NaN on no inputs; SUM/PRODUCT return
	// their identity, 0 and 1 respectively, so empty is unset for those).
	empty    float64
	hasEmpty bool
}

func (k variadicKernel) Compute(self compiled.NodeID, g *compiled.Graph) float64 {
	start, end := g.ParentRange(self)
	if start == end {
		if k.hasEmpty {
			return k.empty
		}
		return k.identity
	}

	acc := k.identity
	first := true
	for i := start; i < end; i++ {
		v := g.Value(g.ParentIDs[i])
		if first {
			acc = v
			first = false
			continue
		}
		acc = k.reduce(acc, v)
	}
	return acc
}

// Sum returns a Kernel computing the sum of all parents (0 on no parents).
func Sum() compiled.Kernel {
	return variadicKernel{identity: 0, reduce: func(acc, v float64) float64 { return acc + v }}
}

// Product returns a Kernel computing the product of all parents (1 on no
// parents).
func Product() compiled.Kernel {
	return variadicKernel{identity: 1, reduce: func(acc, v float64) float64 { return acc * v }}
}

// Min returns a Kernel computing the minimum of all parents (NaN on no
// parents).
func Min() compiled.Kernel {
	return variadicKernel{
		reduce:   math.Min,
		hasEmpty: true,
		empty:    math.NaN(),
	}
}

// Max returns a Kernel computing the maximum of all parents (NaN on no
// parents).
func Max() compiled.Kernel {
	return variadicKernel{
		reduce:   math.Max,
		hasEmpty: true,
		empty:    math.NaN(),
	}
}

// avgKernel computes the running mean in one pass: no second loop, no
// allocation.
type avgKernel struct{}

func (avgKernel) Compute(self compiled.NodeID, g *compiled.Graph) float64 {
	start, end := g.ParentRange(self)
	if start == end {
		return math.NaN()
	}
	var sum float64
	for i := start; i < end; i++ {
		sum += g.Value(g.ParentIDs[i])
	}
	return sum / float64(end-start)
}

// Avg returns a Kernel computing the arithmetic mean of all parents (NaN on
// no parents).
func Avg() compiled.Kernel {
	return avgKernel{}
}
