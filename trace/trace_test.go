// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package trace

import (
	"testing"

	"github.com/cockroachdb/algoviz/internal/invariants"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

// cells is a minimal Snapshot used to check the cloning contract.
type cells struct {
	values []int
}

func (c *cells) Kind() Kind { return KindArray }

func (c *cells) Clone() Snapshot {
	return &cells{values: append([]int(nil), c.values...)}
}

func TestNewStepClonesSnapshot(t *testing.T) {
	live := &cells{values: []int{3, 1, 2}}
	s := NewStep("compare 3 and 1", OpCompare, live)
	live.values[0] = 100

	require.Equal(t, []int{3, 1, 2}, s.Snapshot().(*cells).values)
	require.Equal(t, "compare 3 and 1", s.Description())
	require.Equal(t, OpCompare, s.Op())
	require.False(t, s.IsError())
	require.False(t, s.IsCompleted())

	require.True(t, s.WithError().IsError())
	require.True(t, s.WithCompleted().IsCompleted())
	// The With* methods return copies.
	require.False(t, s.IsError())
}

func TestNewStepAssertions(t *testing.T) {
	require.Panics(t, func() { NewStep("", OpStart, &cells{}) })
	require.Panics(t, func() { NewStep("start", OpStart, nil) })
}

func TestBuilder(t *testing.T) {
	live := &cells{values: []int{1}}
	b := NewBuilder(TagLinearSearch)
	require.Equal(t, TagLinearSearch, b.Tag())
	b.Emitf(OpStart, live, "searching %d values", len(live.values))
	live.values = append(live.values, 2)
	b.Emitf(OpCompare, live, "compare")
	b.Completef(OpFound, live, "found at %d", 1)
	require.Equal(t, 3, b.Len())

	tr := b.Finish()
	require.Equal(t, 3, tr.Len())
	require.Equal(t, TagLinearSearch, tr.Tag())
	require.Equal(t, []int{1}, tr.At(0).Snapshot().(*cells).values)
	require.Equal(t, []int{1, 2}, tr.At(1).Snapshot().(*cells).values)
	require.True(t, tr.Last().IsCompleted())
	require.Equal(t, "searching-linear: 3 steps, completed", tr.String())

	require.Panics(t, func() { b.Emitf(OpDone, live, "late") })
	require.Panics(t, func() { NewBuilder(TagStack).Finish() })
	if invariants.Enabled {
		require.Panics(t, func() { b.Finish() })
	} else {
		require.Equal(t, tr.Len(), b.Finish().Len())
	}
}

func TestBuilderFail(t *testing.T) {
	b := NewBuilder(TagBSTSearch)
	b.Failf(OpNotFound, &cells{}, "tree is empty")
	tr := b.Finish()
	require.Equal(t, 1, tr.Len())
	require.True(t, tr.Last().IsError())
	require.False(t, tr.Last().IsCompleted())
	require.Equal(t, "bst-search: 1 steps, ended with error", tr.String())
	require.Equal(t, "[not-found] tree is empty (error)", tr.Last().String())
}

func TestNewTrace(t *testing.T) {
	_, err := NewTrace(TagStack, nil)
	require.True(t, errors.Is(err, ErrEmptyTrace))

	_, err = NewTrace(TagStack, []Step{{}})
	require.Error(t, err)

	steps := []Step{
		NewStep("a", OpStart, &cells{}),
		NewStep("b", OpDone, &cells{}),
	}
	tr, err := NewTrace(TagStack, steps)
	require.NoError(t, err)
	steps[0] = NewStep("replaced", OpStart, &cells{})
	require.Equal(t, "a", tr.At(0).Description())

	var descs []string
	for i, s := range tr.All() {
		require.Equal(t, tr.At(i), s)
		descs = append(descs, s.Description())
	}
	require.Equal(t, []string{"a", "b"}, descs)

	copied := tr.Steps()
	copied[1] = steps[0]
	require.Equal(t, "b", tr.At(1).Description())
}

func TestMatchers(t *testing.T) {
	exact := Exact(TagGraphBFS)
	prefix := Prefix("graph-")
	require.True(t, exact(TagGraphBFS))
	require.False(t, exact(TagGraphDFS))
	require.True(t, prefix(TagGraphDFS))
	require.True(t, prefix(TagDijkstra))
	require.True(t, prefix(TagKruskal))
	require.False(t, prefix(TagBSTInsert))
	// Prefix matching is on the raw string, not on dash-separated words.
	require.True(t, Prefix("bst")(TagBSTDelete))
	require.False(t, Prefix("graph-")(Tag("graph")))

	either := Any(Exact(TagAVLInsert), Prefix("bst-"))
	require.True(t, either(TagAVLInsert))
	require.True(t, either(TagBSTSearch))
	require.False(t, either(TagAVLSearch))
	require.True(t, TagBubbleSort.HasPrefix("sorting-"))
}

func TestKindString(t *testing.T) {
	require.Equal(t, "tree", KindTree.String())
	require.Equal(t, "graph", KindGraph.String())
	require.Equal(t, "array", KindArray.String())
	require.Equal(t, "linear", KindLinear.String())
	require.Equal(t, "kind(9)", Kind(9).String())
}
