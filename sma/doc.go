// Package sma implements the reference stateful calculator: a simple
// moving average over a fixed lookback window, backed by a circular
// buffer and a running sum. Compute is O(1) and allocates nothing once
// the buffer is constructed.
//
// Because the compiled graph's operation registry keys kernels by a bare
// operation name with no per-node parameters, a distinct lookback gets its
// own registered operation name: call Register(reg, lookback) once per
// distinct window size you need before compiling, then reference
// OperationName(lookback) as the NodeDefinition's Operation. Register is
// idempotent for a given (reg, lookback) pair: registering the same
// lookback twice on the same Registry returns the already-registered name
// with no error, since it is the caller re-declaring the same dependency,
// not a name collision with a different operation.
package sma
