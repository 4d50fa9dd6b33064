package registry

import (
	"errors"
	"testing"

	"github.com/derevyn/pulsegraph/compiled"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopKernel() compiled.Kernel { return noop{} }

type noop struct{}

func (noop) Compute(compiled.NodeID, *compiled.Graph) float64 { return 0 }

func TestRegisterFixedAndQueries(t *testing.T) {
	r := New()
	require.NoError(t, r.RegisterFixed("ADD2", 2, noopKernel, false, "adds two"))

	assert.True(t, r.Has("ADD2"))
	arity, ok := r.Arity("ADD2")
	require.True(t, ok)
	assert.Equal(t, Arity(2), arity)

	stateful, ok := r.IsStateful("ADD2")
	require.True(t, ok)
	assert.False(t, stateful)

	k, err := r.CreateKernel("ADD2")
	require.NoError(t, err)
	assert.Equal(t, 0.0, k.Compute(0, nil))
}

func TestRegisterVariadic(t *testing.T) {
	r := New()
	require.NoError(t, r.RegisterVariadic("SUMX", noopKernel, false, "sums"))
	arity, ok := r.Arity("SUMX")
	require.True(t, ok)
	assert.Equal(t, Variadic, arity)
}

func TestDuplicateRegistration(t *testing.T) {
	r := New()
	require.NoError(t, r.RegisterFixed("X", 1, noopKernel, false, ""))
	err := r.RegisterFixed("X", 1, noopKernel, false, "")
	assert.True(t, errors.Is(err, ErrDuplicateOperation))
}

func TestNegativeArityRejected(t *testing.T) {
	r := New()
	err := r.RegisterFixed("X", -1, noopKernel, false, "")
	assert.True(t, errors.Is(err, ErrNegativeArity))
	assert.False(t, r.Has("X"))
}

func TestUnknownOperation(t *testing.T) {
	r := New()
	_, err := r.CreateKernel("NOPE")
	assert.True(t, errors.Is(err, ErrUnknownOperation))

	_, ok := r.Arity("NOPE")
	assert.False(t, ok)
}

func TestStandardPresetCoversAllDocumentedOps(t *testing.T) {
	r := Standard()
	for _, name := range []string{
		"SUM", "PRODUCT", "MIN", "MAX", "AVG",
		"ADD", "SUB", "MUL", "DIV", "POW", "MOD",
		"SQRT", "ABS", "NEG", "SIN", "COS", "LOG", "EXP",
		"CLAMP", "LERP",
	} {
		assert.True(t, r.Has(name), "missing standard operation %s", name)
	}
}

func TestStandardFixedArities(t *testing.T) {
	r := Standard()
	cases := map[string]Arity{
		"ADD": 2, "SUB": 2, "MUL": 2, "DIV": 2, "POW": 2, "MOD": 2,
		"SQRT": 1, "ABS": 1, "NEG": 1, "SIN": 1, "COS": 1, "LOG": 1, "EXP": 1,
		"CLAMP": 3, "LERP": 3,
	}
	for name, want := range cases {
		got, ok := r.Arity(name)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
}

func TestStandardVariadicArities(t *testing.T) {
	r := Standard()
	for _, name := range []string{"SUM", "PRODUCT", "MIN", "MAX", "AVG"} {
		got, ok := r.Arity(name)
		require.True(t, ok)
		assert.Equal(t, Variadic, got)
	}
}

func TestListIsSortedAndStable(t *testing.T) {
	r := Standard()
	list := r.List()
	assert.NotEmpty(t, list)
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1], list[i])
	}
}

func TestDescribe(t *testing.T) {
	r := Standard()
	d, ok := r.Describe("ADD")
	require.True(t, ok)
	assert.Equal(t, "ADD", d.Name)
	assert.Equal(t, Arity(2), d.Arity)
	assert.False(t, d.Stateful)
	assert.NotEmpty(t, d.Doc)
}
