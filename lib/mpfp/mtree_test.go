// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package mpfp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMTreeEmptyNeverSubsumes(t *testing.T) {
	t.Parallel()
	tree := newMTree()
	require.False(t, tree.isSubsumed([]Rank{0}))
	require.False(t, tree.isSubsumed([]Rank{0, 1}))
}

func TestMTreeExactAndSubsetAreSubsumed(t *testing.T) {
	t.Parallel()
	tree := newMTree()
	tree.addPattern([]Rank{0, 1, 2})

	require.True(t, tree.isSubsumed([]Rank{0, 1, 2}), "the exact stored pattern is subsumed")
	require.True(t, tree.isSubsumed([]Rank{0, 1}), "a subset of a stored pattern is subsumed")
	require.True(t, tree.isSubsumed([]Rank{1}), "a single item within a stored pattern is subsumed")
}

func TestMTreeUnrelatedPatternIsNotSubsumed(t *testing.T) {
	t.Parallel()
	tree := newMTree()
	tree.addPattern([]Rank{0, 1})

	require.False(t, tree.isSubsumed([]Rank{2}), "rank 2 was never stored")
	require.False(t, tree.isSubsumed([]Rank{0, 2}), "2 does not co-occur with 0 on any stored path")
}

func TestMTreeSupersetIsNotSubsumed(t *testing.T) {
	t.Parallel()
	tree := newMTree()
	tree.addPattern([]Rank{0, 1})

	require.False(t, tree.isSubsumed([]Rank{0, 1, 2}), "a proper superset of a stored pattern is not subsumed by it")
}

func TestMTreeDisjointOccurrenceOfSharedLargestItemIsNotSubsumed(t *testing.T) {
	t.Parallel()
	tree := newMTree()
	tree.addPattern([]Rank{0, 2})

	// Rank 2 is present, but not paired with rank 1 on that path.
	require.False(t, tree.isSubsumed([]Rank{1, 2}))
}
