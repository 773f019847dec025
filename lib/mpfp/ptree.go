// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package mpfp

import (
	"sort"

	"github.com/Internet-today/mpfpgrowth/lib/maps"
	"github.com/Internet-today/mpfpgrowth/lib/slices"
	"github.com/Internet-today/mpfpgrowth/lib/textui"
)

// PNode is a node of a PTree. The root is the zero-valued node with
// hasItem false; every other node carries the Rank of the item that
// edge represents and the timestamps of every original transaction
// that terminated at exactly this node.
type PNode struct {
	hasItem    bool
	item       Rank
	children   map[Rank]*PNode
	parent     *PNode
	timestamps []int64
}

// engine holds the state shared by the main PTree and every
// conditional PTree spawned during mining: the database size (for the
// tail term of periodAndSupport), the resolved thresholds, the node
// pool conditional trees are carved from, and the single MTree that
// persists across the whole run.
type engine struct {
	lastTxnIndex int64
	minSupN      int
	maxPerN      int64
	pool         *nodePool
	maximal      *MTree

	progress         *textui.Progress[progressSnapshot]
	headersProcessed int
	patternsFound    int
}

// PTree is the prefix/pattern-growth tree (§4.D): a compressed
// trie of ranked transactions, mined destructively header-by-header.
// The main PTree is built once from the rewritten database; every
// recursive call to generate spawns a conditional PTree that is torn
// down by the time that call returns.
type PTree struct {
	root      *PNode
	summaries map[Rank][]*PNode
	info      map[Rank]Stats
	eng       *engine
}

func newPTree(eng *engine, info map[Rank]Stats) *PTree {
	return &PTree{
		root:      &PNode{},
		summaries: make(map[Rank][]*PNode),
		info:      info,
		eng:       eng,
	}
}

// addTransaction inserts ranks as a branch of the tree, creating
// shared prefixes with any transaction already inserted, and appends
// tss to the timestamps of the node the branch terminates at.
func (t *PTree) addTransaction(ranks []Rank, tss []int64) {
	cur := t.root
	for _, r := range ranks {
		child, ok := cur.children[r]
		if !ok {
			child = t.eng.pool.get(cur, r)
			if cur.children == nil {
				cur.children = make(map[Rank]*PNode)
			}
			cur.children[r] = child
			t.summaries[r] = append(t.summaries[r], child)
		}
		cur = child
	}
	cur.timestamps = append(cur.timestamps, tss...)
}

// conditionalPatterns collects, for every occurrence of alpha, the
// root-to-parent path of ranks above it (reversed into ascending
// order) paired with that occurrence's timestamps. An occurrence
// whose path is empty -- alpha is a direct child of the root, so it
// has no preceding items to grow into -- contributes nothing and is
// dropped entirely. The raw occurrences are then refined (§4.D) into
// the conditional patterns, their timestamps, and the per-rank stats
// of the conditional tree they will seed.
func (t *PTree) conditionalPatterns(alpha Rank) ([][]Rank, [][]int64, map[Rank]Stats) {
	var patterns [][]Rank
	var timestamps [][]int64
	for _, n := range t.summaries[alpha] {
		var path []Rank
		cur := n.parent
		for cur.hasItem {
			path = append(path, cur.item)
			cur = cur.parent
			if cur == nil {
				invariantf("summaries[%d] references a node whose parent chain does not lead to root", alpha)
			}
		}
		if cur != t.root {
			invariantf("summaries[%d] references a node whose parent chain does not lead to this tree's root", alpha)
		}
		if len(path) == 0 {
			continue
		}
		slices.Reverse(path)
		patterns = append(patterns, path)
		timestamps = append(timestamps, n.timestamps)
	}
	return refine(patterns, timestamps, t.eng.lastTxnIndex, t.eng.minSupN, t.eng.maxPerN)
}

// refine is the conditional-transaction refiner (§4.D): it merges the
// timestamps of every occurrence of each rank appearing anywhere in
// patterns, recomputes that rank's (support, period) against the
// merged timestamps, drops ranks that no longer clear minSup/maxPer,
// and rewrites each pattern to keep only the surviving ranks, sorted
// by descending support with ties broken by ascending rank -- the same
// order the main tree's paths follow, so every node's descendants come
// after it in generate's visiting order. A pattern left empty after
// filtering is dropped.
func refine(patterns [][]Rank, timestamps [][]int64, lastTxnIndex int64, minSupN int, maxPerN int64) ([][]Rank, [][]int64, map[Rank]Stats) {
	merged := make(map[Rank][]int64)
	for i, pat := range patterns {
		for _, r := range pat {
			merged[r] = append(merged[r], timestamps[i]...)
		}
	}

	info := make(map[Rank]Stats, len(merged))
	for r, tss := range merged {
		opt := periodAndSupport(tss, lastTxnIndex, maxPerN)
		if opt.OK && opt.Val.Support >= minSupN && opt.Val.Period <= maxPerN {
			info[r] = opt.Val
		}
	}

	outPatterns := make([][]Rank, 0, len(patterns))
	outTimestamps := make([][]int64, 0, len(patterns))
	for i, pat := range patterns {
		filtered := make([]Rank, 0, len(pat))
		for _, r := range pat {
			if _, ok := info[r]; ok {
				filtered = append(filtered, r)
			}
		}
		sort.Slice(filtered, func(a, b int) bool {
			sa, sb := info[filtered[a]], info[filtered[b]]
			if sa.Support != sb.Support {
				return sa.Support > sb.Support
			}
			return filtered[a] < filtered[b]
		})
		if len(filtered) > 0 {
			outPatterns = append(outPatterns, filtered)
			outTimestamps = append(outTimestamps, timestamps[i])
		}
	}
	return outPatterns, outTimestamps, info
}

// removeHeader rolls every occurrence of alpha's timestamps up into
// its parent, unlinks it from the tree, and returns its node to the
// pool. This runs once per header item processed by generate,
// unconditionally -- whether that item was emitted, recursed into, or
// skipped as subsumed.
func (t *PTree) removeHeader(alpha Rank) {
	for _, n := range t.summaries[alpha] {
		n.parent.timestamps = append(n.parent.timestamps, n.timestamps...)
		delete(n.parent.children, alpha)
		t.eng.pool.release(n)
	}
	delete(t.summaries, alpha)
}

// rankedPattern is a generated maximal pattern before its ranks are
// rehydrated back into Labels.
type rankedPattern struct {
	ranks []Rank
	stats Stats
}

// generate is the maximal-pattern miner (§4.D): it visits this tree's
// header items least-supported-first, and for each one builds the
// conditional tree rooted at it. If the item's prefix -- extended
// with everything the conditional tree could possibly grow into -- is
// already dominated by a pattern in the maximal tree, the item
// contributes nothing new and is skipped. Otherwise, if the
// conditional tree has any patterns left to grow with, generate
// recurses into it; if not, this item's path is already maximal and
// is emitted directly.
func (t *PTree) generate(prefix []Rank, out *[]rankedPattern) {
	ranks := maps.Keys(t.summaries)
	sort.Slice(ranks, func(i, j int) bool {
		si, sj := t.info[ranks[i]], t.info[ranks[j]]
		if si.Support != sj.Support {
			return si.Support < sj.Support
		}
		return ranks[i] > ranks[j]
	})

	for _, i := range ranks {
		pattern := append(append([]Rank(nil), prefix...), i)
		condPatterns, condTimestamps, condInfo := t.conditionalPatterns(i)

		sub := append(append([]Rank(nil), pattern...), ranksOf(condInfo)...)
		if !t.eng.maximal.isSubsumed(sub) {
			child := newPTree(t.eng, condInfo)
			for k := range condPatterns {
				child.addTransaction(condPatterns[k], condTimestamps[k])
			}
			if len(condPatterns) > 0 {
				child.generate(pattern, out)
			} else {
				t.eng.maximal.addPattern(pattern)
				*out = append(*out, rankedPattern{
					ranks: append([]Rank(nil), pattern...),
					stats: t.info[i],
				})
				t.eng.reportPattern()
			}
		}
		t.removeHeader(i)
		t.eng.reportHeader()
	}
}

func ranksOf(info map[Rank]Stats) []Rank {
	return maps.Keys(info)
}
