// errors.go — sentinel errors for the registry package.
//
// Callers must branch with errors.Is(err, ErrX), never string comparison.
// Sentinels are never wrapped with formatted strings at definition site;
// call sites attach context with fmt.Errorf("%w: ...", ErrX) instead.
package registry

import "errors"

// ErrDuplicateOperation indicates RegisterFixed/RegisterVariadic was called
// with a name already present in the registry. The registry is left
// unchanged.
var ErrDuplicateOperation = errors.New("registry: operation already registered")

// ErrNegativeArity indicates RegisterFixed was called with arity < 0.
var ErrNegativeArity = errors.New("registry: arity must be non-negative")

// ErrUnknownOperation indicates a query or CreateKernel named an operation
// that is not registered.
var ErrUnknownOperation = errors.New("registry: unknown operation")
