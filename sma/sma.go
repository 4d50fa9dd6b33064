package sma

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/derevyn/pulsegraph/compiled"
	"github.com/derevyn/pulsegraph/registry"
)

// ErrNonPositiveLookback indicates Register was called with a lookback <= 0.
// New panics on such a lookback instead of returning an error.
var ErrNonPositiveLookback = errors.New("sma: lookback must be positive")

// Kernel is the stateful simple-moving-average calculator: a ring buffer of
// length L, a write cursor, a running sample count, and a running sum.
// Each instance belongs to exactly one compute node; the registry's factory
// (see Register) must produce one fresh Kernel per node, never share one.
type Kernel struct {
	lookback  int
	buffer    []float64
	cursor    int
	count     int
	sum       float64
	evalCount uint64
}

// New constructs an SMA Kernel with the given lookback. Panics if lookback
// is not positive: this is a constructor-time configuration error, not a
// runtime data condition, so constructors validate eagerly while data-path
// calls never panic.
func New(lookback int) *Kernel {
	if lookback <= 0 {
		panic(fmt.Sprintf("sma: lookback must be positive, got %d", lookback))
	}
	return &Kernel{lookback: lookback, buffer: make([]float64, lookback)}
}

// Compute implements compiled.Kernel. It reads the single parent's current
// value, folds it into the circular buffer and running sum, and returns the
// mean over the samples seen so far (up to lookback).
func (k *Kernel) Compute(self compiled.NodeID, g *compiled.Graph) float64 {
	start, _ := g.ParentRange(self)
	x := g.Value(g.ParentIDs[start])

	if k.count == k.lookback {
		k.sum -= k.buffer[k.cursor]
	}
	k.buffer[k.cursor] = x
	k.sum += x
	k.cursor = (k.cursor + 1) % k.lookback
	if k.count < k.lookback {
		k.count++
	}
	k.evalCount++

	return k.sum / float64(k.count)
}

// Reset zeros the buffer, cursor, count, and running sum, as if Compute had
// never been called.
func (k *Kernel) Reset() {
	for i := range k.buffer {
		k.buffer[i] = 0
	}
	k.cursor = 0
	k.count = 0
	k.sum = 0
	k.evalCount = 0
}

// IsReady reports whether the window has seen at least lookback samples.
func (k *Kernel) IsReady() bool {
	return k.count >= k.lookback
}

// EvalCount reports how many times Compute has run on this instance.
func (k *Kernel) EvalCount() uint64 {
	return k.evalCount
}

var _ compiled.StatefulKernel = (*Kernel)(nil)

// OperationName returns the registered operation name for a given lookback,
// e.g. OperationName(3) == "SMA_3".
func OperationName(lookback int) string {
	return "SMA_" + strconv.Itoa(lookback)
}

// Register registers OperationName(lookback) on reg, with a factory that
// produces a fresh Kernel per node, as the stateful-kernel contract
// requires. Re-registering the same lookback on the same Registry is a
// no-op; registering lookback <= 0 returns ErrNonPositiveLookback.
func Register(reg *registry.Registry, lookback int) (string, error) {
	if lookback <= 0 {
		return "", fmt.Errorf("%w: got %d", ErrNonPositiveLookback, lookback)
	}

	name := OperationName(lookback)
	if reg.Has(name) {
		return name, nil
	}

	doc := fmt.Sprintf("simple moving average over the last %d samples", lookback)
	err := reg.RegisterFixed(name, 1, func() compiled.Kernel { return New(lookback) }, true, doc)
	if err != nil {
		return "", err
	}
	return name, nil
}
