package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/derevyn/pulsegraph/compiled"
)

// Arity is either a fixed non-negative parent count or the distinguished
// Variadic marker.
type Arity int32

// Variadic marks an operation as accepting any number of parents (SUM,
// PRODUCT, MIN, MAX, AVG in the standard preset).
const Variadic Arity = -1

// Factory produces a Kernel instance. For stateless operations a factory
// may return a shared instance across calls; for stateful operations it
// must return a fresh instance per call (see compiled.StatefulKernel and
// package compiler's per-node binding pass).
type Factory func() compiled.Kernel

// Description is the queryable metadata for one registered operation.
type Description struct {
	Name     string
	Arity    Arity
	Stateful bool
	Doc      string
}

type entry struct {
	factory  Factory
	arity    Arity
	stateful bool
	doc      string
}

// Registry maps operation names to kernel factories plus arity and stateful
// metadata. The zero value is not usable; construct with New().
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// RegisterFixed registers a fixed-arity operation. Returns ErrNegativeArity
// if arity < 0, ErrDuplicateOperation if name is already registered. On
// error the registry is left unchanged.
func (r *Registry) RegisterFixed(name string, arity int, factory Factory, stateful bool, doc string) error {
	if arity < 0 {
		return fmt.Errorf("%w: %q requested arity %d", ErrNegativeArity, name, arity)
	}
	return r.register(name, entry{factory: factory, arity: Arity(arity), stateful: stateful, doc: doc})
}

// RegisterVariadic registers a variadic operation (any number of parents,
// including zero).
func (r *Registry) RegisterVariadic(name string, factory Factory, stateful bool, doc string) error {
	return r.register(name, entry{factory: factory, arity: Variadic, stateful: stateful, doc: doc})
}

func (r *Registry) register(name string, e entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateOperation, name)
	}
	r.entries[name] = e
	return nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.entries[name]
	return ok
}

// Arity returns the declared arity for name, or Variadic. The second return
// value is false if name is not registered.
func (r *Registry) Arity(name string) (Arity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[name]
	if !ok {
		return 0, false
	}
	return e.arity, true
}

// IsStateful reports whether name's factory produces stateful kernels. The
// second return value is false if name is not registered.
func (r *Registry) IsStateful(name string) (bool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[name]
	if !ok {
		return false, false
	}
	return e.stateful, true
}

// CreateKernel invokes name's factory and returns the Kernel it produces:
// a fresh instance for stateful operations, possibly a shared one for
// stateless ones (as in Standard). Returns ErrUnknownOperation if name is
// not registered.
func (r *Registry) CreateKernel(name string) (compiled.Kernel, error) {
	r.mu.RLock()
	e, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}
	return e.factory(), nil
}

// Describe returns the full Description for name.
func (r *Registry) Describe(name string) (Description, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[name]
	if !ok {
		return Description{}, false
	}
	return Description{Name: name, Arity: e.arity, Stateful: e.stateful, Doc: e.doc}, true
}

// List returns every registered operation name, sorted for deterministic
// output (the query-side list of available operations).
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
