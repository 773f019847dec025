// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package mpfp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestEngine() *engine {
	return &engine{
		lastTxnIndex: 100,
		minSupN:      1,
		maxPerN:      100,
		pool:         newNodePool(),
		maximal:      newMTree(),
	}
}

func TestPTreeAddTransactionSharesPrefixes(t *testing.T) {
	t.Parallel()
	eng := newTestEngine()
	tree := newPTree(eng, nil)
	tree.addTransaction([]Rank{0, 1}, []int64{1})
	tree.addTransaction([]Rank{0, 1}, []int64{2})
	tree.addTransaction([]Rank{0, 2}, []int64{3})

	require.Len(t, tree.summaries[0], 1, "item 0 should be a single shared node")
	require.Len(t, tree.summaries[1], 1)
	require.Len(t, tree.summaries[2], 1)

	leaf1 := tree.summaries[1][0]
	require.Equal(t, []int64{1, 2}, leaf1.timestamps)

	leaf2 := tree.summaries[2][0]
	require.Equal(t, []int64{3}, leaf2.timestamps)
	require.Same(t, leaf1.parent, leaf2.parent, "both leaves share the node for item 0")
}

func TestPTreeConditionalPatternsSkipsEmptyParentPath(t *testing.T) {
	t.Parallel()
	eng := newTestEngine()
	tree := newPTree(eng, nil)
	// Item 2 occurs once as a direct child of root (no prefix) and once
	// beneath item 0 (prefix [0]).
	tree.addTransaction([]Rank{2}, []int64{1})
	tree.addTransaction([]Rank{0, 2}, []int64{2})

	patterns, timestamps, _ := tree.conditionalPatterns(2)
	require.Len(t, patterns, 1, "the root-adjacent occurrence contributes no conditional pattern")
	require.Equal(t, []Rank{0}, patterns[0])
	require.Equal(t, []int64{2}, timestamps[0])
}

func TestPTreeRemoveHeaderRollsTimestampsUpToParent(t *testing.T) {
	t.Parallel()
	eng := newTestEngine()
	tree := newPTree(eng, nil)
	tree.addTransaction([]Rank{0, 1}, []int64{5})

	parent := tree.summaries[0][0]
	require.Empty(t, parent.timestamps)

	tree.removeHeader(1)
	require.Equal(t, []int64{5}, parent.timestamps)
	require.Empty(t, parent.children, "item 1's node must be unlinked from its parent")
	require.NotContains(t, tree.summaries, Rank(1))
}

func TestRefineDropsRanksBelowThresholds(t *testing.T) {
	t.Parallel()
	patterns := [][]Rank{{0, 1}, {0}}
	timestamps := [][]int64{{1}, {6}}
	// Rank 0 is seen at 1 and 6 (merged across both patterns): period
	// 5, within maxPerN=5. Rank 1 is only ever seen at ts=1: tail
	// |10-1|=9, over maxPerN=5, so it is dropped.
	outPatterns, outTimestamps, info := refine(patterns, timestamps, 10, 1, 5)
	require.Contains(t, info, Rank(0))
	require.NotContains(t, info, Rank(1))
	require.Len(t, outPatterns, 2)
	require.Equal(t, []Rank{0}, outPatterns[0])
	require.Equal(t, []Rank{0}, outPatterns[1])
	require.Equal(t, [][]int64{{1}, {6}}, outTimestamps)
}
