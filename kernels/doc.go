// Package kernels implements the standard preset of stateless operations:
// variadic SUM/PRODUCT/MIN/MAX/AVG, fixed binary ADD/SUB/MUL/DIV/POW/MOD,
// fixed unary SQRT/ABS/NEG/SIN/COS/LOG/EXP, and fixed ternary CLAMP/LERP.
//
// Every kernel here reads its parents exclusively through the CSR lookup
// contract on *compiled.Graph (ParentRange + Value), performs no
// allocation, and propagates IEEE-754 exceptional values (NaN, ±Inf)
// instead of treating them as errors: division by zero, log of a negative
// number, and similar cases simply produce the float64 result the
// hardware would.
//
// Because every operation here is stateless, a single shared instance per
// operation is registered (see Standard in package registry): kernels hold
// no per-node state, so aliasing one instance across many compute nodes is
// safe.
package kernels
