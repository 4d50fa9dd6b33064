package kernels

import (
	"math"

	"github.com/derevyn/pulsegraph/compiled"
)

// binaryKernel applies fn to the node's two parents, in declaration order.
type binaryKernel struct {
	fn func(a, b float64) float64
}

func (k binaryKernel) Compute(self compiled.NodeID, g *compiled.Graph) float64 {
	start, _ := g.ParentRange(self)
	a := g.Value(g.ParentIDs[start])
	b := g.Value(g.ParentIDs[start+1])
	return k.fn(a, b)
}

// Add returns a Kernel computing parent[0] + parent[1].
func Add() compiled.Kernel { return binaryKernel{fn: func(a, b float64) float64 { return a + b }} }

// Sub returns a Kernel computing parent[0] - parent[1].
func Sub() compiled.Kernel { return binaryKernel{fn: func(a, b float64) float64 { return a - b }} }

// Mul returns a Kernel computing parent[0] * parent[1].
func Mul() compiled.Kernel { return binaryKernel{fn: func(a, b float64) float64 { return a * b }} }

// Div returns a Kernel computing parent[0] / parent[1]. Division by zero
// follows IEEE-754 float semantics (±Inf or NaN), never an error.
func Div() compiled.Kernel { return binaryKernel{fn: func(a, b float64) float64 { return a / b }} }

// Pow returns a Kernel computing parent[0] ** parent[1].
func Pow() compiled.Kernel { return binaryKernel{fn: math.Pow} }

// Mod returns a Kernel computing floating-point parent[0] mod parent[1].
func Mod() compiled.Kernel { return binaryKernel{fn: math.Mod} }

// unaryKernel applies fn to the node's single parent.
type unaryKernel struct {
	fn func(x float64) float64
}

func (k unaryKernel) Compute(self compiled.NodeID, g *compiled.Graph) float64 {
	start, _ := g.ParentRange(self)
	return k.fn(g.Value(g.ParentIDs[start]))
}

// Sqrt returns a Kernel computing sqrt(parent[0]); negative input yields NaN.
func Sqrt() compiled.Kernel { return unaryKernel{fn: math.Sqrt} }

// Abs returns a Kernel computing |parent[0]|.
func Abs() compiled.Kernel { return unaryKernel{fn: math.Abs} }

// Neg returns a Kernel computing -parent[0].
func Neg() compiled.Kernel { return unaryKernel{fn: func(x float64) float64 { return -x }} }

// Sin returns a Kernel computing sin(parent[0]).
func Sin() compiled.Kernel { return unaryKernel{fn: math.Sin} }

// Cos returns a Kernel computing cos(parent[0]).
func Cos() compiled.Kernel { return unaryKernel{fn: math.Cos} }

// Log returns a Kernel computing the natural log of parent[0]; negative
// input yields NaN, zero yields -Inf.
func Log() compiled.Kernel { return unaryKernel{fn: math.Log} }

// Exp returns a Kernel computing e ** parent[0].
func Exp() compiled.Kernel { return unaryKernel{fn: math.Exp} }

// ternaryKernel applies fn to the node's three parents, in declaration order.
type ternaryKernel struct {
	fn func(x, y, z float64) float64
}

func (k ternaryKernel) Compute(self compiled.NodeID, g *compiled.Graph) float64 {
	start, _ := g.ParentRange(self)
	x := g.Value(g.ParentIDs[start])
	y := g.Value(g.ParentIDs[start+1])
	z := g.Value(g.ParentIDs[start+2])
	return k.fn(x, y, z)
}

// Clamp returns a Kernel computing clamp(x, lo, hi): x if lo <= x <= hi,
// otherwise the nearer bound.
func Clamp() compiled.Kernel {
	return ternaryKernel{fn: func(x, lo, hi float64) float64 {
		if x < lo {
			return lo
		}
		if x > hi {
			return hi
		}
		return x
	}}
}

// Lerp returns a Kernel computing lerp(a, b, t) = a + (b-a)*t.
func Lerp() compiled.Kernel {
	return ternaryKernel{fn: func(a, b, t float64) float64 { return a + (b-a)*t }}
}
