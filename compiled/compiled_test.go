package compiled

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minimalGraph() *Graph {
	// a (input) -> sum (compute, ADD-like: parent[0]+parent[0])
	g := &Graph{
		NodeCount:     2,
		InputCount:    1,
		ComputeCount:  1,
		Names:         []string{"a", "sum"},
		NameToID:      map[string]NodeID{"a": 0, "sum": 1},
		InputNameToID: map[string]NodeID{"a": 0},
		Kinds:         []Kind{Input, Compute},
		Values:        []float64{10, 0},
		Kernels:       []Kernel{nil, nil},
		ParentOffsets: []int32{0, 0, 1},
		ParentIDs:     []NodeID{0},
		ChildOffsets:  []int32{0, 1, 1},
		ChildIDs:      []NodeID{1},
		ComputeOrder:  []NodeID{1},
		FullTopoOrder: []NodeID{0, 1},
		EdgeCount:     1,
	}
	return g
}

func TestGetValueAndSetInput(t *testing.T) {
	g := minimalGraph()

	v, err := g.GetValue("a")
	require.NoError(t, err)
	assert.Equal(t, 10.0, v)

	require.NoError(t, g.SetInput("a", 42))
	v, err = g.GetValue("a")
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)

	err = g.SetInput("sum", 1)
	assert.True(t, errors.Is(err, ErrUnknownInput))

	err = g.SetInput("nope", 1)
	assert.True(t, errors.Is(err, ErrUnknownInput))
}

func TestGetValueUnknownNode(t *testing.T) {
	g := minimalGraph()
	_, err := g.GetValue("nope")
	assert.True(t, errors.Is(err, ErrUnknownNode))
}

func TestParentChildRanges(t *testing.T) {
	g := minimalGraph()

	ps, pe := g.ParentRange(1)
	assert.Equal(t, []NodeID{0}, g.ParentIDs[ps:pe])

	cs, ce := g.ChildRange(0)
	assert.Equal(t, []NodeID{1}, g.ChildIDs[cs:ce])
}

func TestIsInput(t *testing.T) {
	g := minimalGraph()
	assert.True(t, g.IsInput("a"))
	assert.False(t, g.IsInput("sum"))
	assert.False(t, g.IsInput("nope"))
}

func TestFootprintBytesNonZero(t *testing.T) {
	g := minimalGraph()
	fp := g.FootprintBytes()
	assert.Greater(t, fp.TotalBytes(), 0)
	assert.Equal(t, len(g.Values)*8, fp.ValuesBytes)
}
