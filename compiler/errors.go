// errors.go — sentinel errors for compile-time structural failures.
//
// Every one of these fails compilation outright: no partial CompiledGraph
// is ever returned alongside a non-nil error. Callers branch with
// errors.Is(err, ErrX); detail (offending names, expected/got arity) is
// attached with fmt.Errorf("%w: ...", ErrX).
package compiler

import "errors"

// ErrDuplicateName indicates two or more definitions share a Name.
var ErrDuplicateName = errors.New("compiler: duplicate node name")

// ErrUnknownParent indicates a compute node names a parent that does not
// resolve to any definition.
var ErrUnknownParent = errors.New("compiler: unknown parent")

// ErrUnknownOperation indicates a compute node names an operation absent
// from the registry.
var ErrUnknownOperation = errors.New("compiler: unknown operation")

// ErrArityMismatch indicates a compute node's parent count does not match
// its fixed-arity operation's declared arity.
var ErrArityMismatch = errors.New("compiler: arity mismatch")

// ErrCycle indicates the parent relation over the definitions is not
// acyclic: Kahn's algorithm could not order every node.
var ErrCycle = errors.New("compiler: cycle detected")

// ErrEmptyDefinitions indicates Compile was called with zero definitions.
var ErrEmptyDefinitions = errors.New("compiler: definitions must be non-empty")
