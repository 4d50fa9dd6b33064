package registry

import (
	"github.com/derevyn/pulsegraph/compiled"
	"github.com/derevyn/pulsegraph/kernels"
)

// Standard returns a new Registry pre-populated with the baseline preset:
// variadic SUM/PRODUCT/MIN/MAX/AVG, fixed binary ADD/SUB/MUL/DIV/POW/MOD,
// fixed unary SQRT/ABS/NEG/SIN/COS/LOG/EXP, and fixed ternary CLAMP/LERP.
// Every one of these is stateless, so each is registered with a single
// shared kernel instance rather than a fresh one per call.
//
// The stateful SMA calculator is not part of this preset: its operation
// name is parameterized by lookback, so callers opt in explicitly via
// sma.Register(reg, lookback) after obtaining a Standard registry.
func Standard() *Registry {
	r := New()

	mustRegisterVariadic(r, "SUM", kernels.Sum(), "sum of all parents (0 on no parents)")
	mustRegisterVariadic(r, "PRODUCT", kernels.Product(), "product of all parents (1 on no parents)")
	mustRegisterVariadic(r, "MIN", kernels.Min(), "minimum of all parents (NaN on no parents)")
	mustRegisterVariadic(r, "MAX", kernels.Max(), "maximum of all parents (NaN on no parents)")
	mustRegisterVariadic(r, "AVG", kernels.Avg(), "arithmetic mean of all parents (NaN on no parents)")

	mustRegisterFixed(r, "ADD", 2, kernels.Add(), "parent[0] + parent[1]")
	mustRegisterFixed(r, "SUB", 2, kernels.Sub(), "parent[0] - parent[1]")
	mustRegisterFixed(r, "MUL", 2, kernels.Mul(), "parent[0] * parent[1]")
	mustRegisterFixed(r, "DIV", 2, kernels.Div(), "parent[0] / parent[1], IEEE-754 semantics")
	mustRegisterFixed(r, "POW", 2, kernels.Pow(), "parent[0] ** parent[1]")
	mustRegisterFixed(r, "MOD", 2, kernels.Mod(), "floating-point parent[0] mod parent[1]")

	mustRegisterFixed(r, "SQRT", 1, kernels.Sqrt(), "sqrt(parent[0]); negative input yields NaN")
	mustRegisterFixed(r, "ABS", 1, kernels.Abs(), "|parent[0]|")
	mustRegisterFixed(r, "NEG", 1, kernels.Neg(), "-parent[0]")
	mustRegisterFixed(r, "SIN", 1, kernels.Sin(), "sin(parent[0])")
	mustRegisterFixed(r, "COS", 1, kernels.Cos(), "cos(parent[0])")
	mustRegisterFixed(r, "LOG", 1, kernels.Log(), "ln(parent[0]); negative yields NaN, zero yields -Inf")
	mustRegisterFixed(r, "EXP", 1, kernels.Exp(), "e ** parent[0]")

	mustRegisterFixed(r, "CLAMP", 3, kernels.Clamp(), "clamp(x, lo, hi)")
	mustRegisterFixed(r, "LERP", 3, kernels.Lerp(), "lerp(a, b, t) = a + (b-a)*t")

	return r
}

// sharedFactory closes over a single stateless kernel instance, so every
// compute node that references this operation shares one allocation.
func sharedFactory(k compiled.Kernel) Factory {
	return func() compiled.Kernel { return k }
}

func mustRegisterVariadic(r *Registry, name string, k compiled.Kernel, doc string) {
	if err := r.RegisterVariadic(name, sharedFactory(k), false, doc); err != nil {
		panic(err)
	}
}

func mustRegisterFixed(r *Registry, name string, arity int, k compiled.Kernel, doc string) {
	if err := r.RegisterFixed(name, arity, sharedFactory(k), false, doc); err != nil {
		panic(err)
	}
}
