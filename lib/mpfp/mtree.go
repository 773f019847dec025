// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package mpfp

import (
	"github.com/Internet-today/mpfpgrowth/lib/containers"
	"github.com/Internet-today/mpfpgrowth/lib/slices"
)

// MNode is a node of an MTree: a trie over maximal patterns sorted
// ascending by Rank along each root-to-leaf path.
type MNode struct {
	hasItem  bool
	item     Rank
	children map[Rank]*MNode
	parent   *MNode
}

// MTree is the maximal-subsumption trie (§4.E): it persists for the
// whole mining run, accumulating every pattern generate has emitted so
// far, and answers "is this candidate already dominated by an emitted
// pattern" queries. Each header's summary is a LinkedList so the most
// recently added occurrence -- the one most likely to share structure
// with the next query -- is tried first.
type MTree struct {
	root      *MNode
	summaries map[Rank]*containers.LinkedList[*MNode]
}

func newMTree() *MTree {
	return &MTree{
		root:      &MNode{},
		summaries: make(map[Rank]*containers.LinkedList[*MNode]),
	}
}

// addPattern inserts pattern, sorted ascending by Rank, as a branch of
// the trie, sharing prefixes with patterns already present.
func (t *MTree) addPattern(pattern []Rank) {
	sorted := append([]Rank(nil), pattern...)
	slices.Sort(sorted)

	cur := t.root
	for _, r := range sorted {
		child, ok := cur.children[r]
		if !ok {
			child = &MNode{hasItem: true, item: r, parent: cur}
			if cur.children == nil {
				cur.children = make(map[Rank]*MNode)
			}
			cur.children[r] = child
			list, ok := t.summaries[r]
			if !ok {
				list = &containers.LinkedList[*MNode]{}
				t.summaries[r] = list
			}
			list.Store(&containers.LinkedListEntry[*MNode]{Value: child})
		}
		cur = child
	}
}

// isSubsumed reports whether items -- not assumed sorted -- is already
// a subset of some pattern stored in the trie. It looks up every
// stored occurrence of items' largest rank, then walks that
// occurrence's ancestors looking for the rest of items, largest to
// smallest, along that single root-to-leaf path. If the largest rank
// was never stored, items cannot be a subset of anything in the trie.
// If items has exactly one rank and that rank was stored, items is
// trivially a subset of whatever pattern it was stored as part of.
func (t *MTree) isSubsumed(items []Rank) bool {
	if len(items) == 0 {
		return false
	}
	sorted := append([]Rank(nil), items...)
	slices.Sort(sorted)
	slices.Reverse(sorted)

	largest := sorted[0]
	list, ok := t.summaries[largest]
	if !ok {
		return false
	}
	if len(sorted) == 1 {
		return true
	}

	for entry := list.Newest; entry != nil; entry = entry.Older {
		need := 1
		for cur := entry.Value.parent; cur.hasItem; cur = cur.parent {
			if sorted[need] == cur.item {
				need++
				if need == len(sorted) {
					return true
				}
			}
		}
	}
	return false
}
