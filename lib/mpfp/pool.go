// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package mpfp

import "github.com/Internet-today/mpfpgrowth/lib/containers"

// nodePool recycles PNodes across recursion frames. Each conditional
// PTree is owned by exactly one recursive call to (*PTree).generate
// and is torn down (via removeHeader, down to the root) before that
// call returns, so frames retire their nodes in LIFO order -- exactly
// the access pattern a pool is good at absorbing.
type nodePool struct {
	pool containers.SyncPool[*PNode]
	tss  containers.SlicePool[int64]
}

func newNodePool() *nodePool {
	np := &nodePool{}
	np.pool.New = func() *PNode { return &PNode{} }
	return np
}

func (np *nodePool) get(parent *PNode, item Rank) *PNode {
	// release always clears timestamps before returning a node to the
	// pool, so there is never existing capacity on n to reuse directly
	// -- draw a backing array from the shared slice arena instead.
	n, _ := np.pool.Get()
	n.parent = parent
	n.item = item
	n.hasItem = true
	n.children = nil
	n.timestamps = np.timestamps(1)[:0]
	return n
}

// release returns a node's resources to the pool once it has been
// fully unlinked from its tree. The caller must not touch node after
// calling release.
func (np *nodePool) release(node *PNode) {
	np.tss.Put(node.timestamps)
	node.timestamps = nil
	node.parent = nil
	node.children = nil
	np.pool.Put(node)
}

// timestamps borrows a slice sized for n entries from the shared
// pool, avoiding an allocation on the hot path of addTransaction.
func (np *nodePool) timestamps(n int) []int64 {
	return np.tss.Get(n)[:0]
}
