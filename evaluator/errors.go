// errors.go — sentinel errors for evaluator runtime calls.
//
// These are runtime call errors: the graph remains valid and its values
// unchanged when one of these is returned.
package evaluator

import "errors"

// ErrBatchLengthMismatch indicates SetInputs was called with mismatched
// id/value slice lengths.
var ErrBatchLengthMismatch = errors.New("evaluator: batch length mismatch")

// ErrStatefulRequiresFullOrForce indicates New was asked to build an
// INCREMENTAL evaluator over a graph containing one or more stateful
// kernels without WithForceStatefulDirty: such a graph would silently stop
// advancing its stateful kernels whenever their inputs stop changing.
var ErrStatefulRequiresFullOrForce = errors.New(
	"evaluator: INCREMENTAL mode over stateful kernels requires WithForceStatefulDirty, or use FullMode")
