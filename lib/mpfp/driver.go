// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package mpfp

import (
	"context"
	"fmt"
	"sort"

	"github.com/datawire/dlib/derror"
	"github.com/datawire/dlib/dlog"

	"github.com/Internet-today/mpfpgrowth/lib/textui"
)

// Mine runs the full pipeline (§4.F) over txns: profile the database
// for one-item (support, period), drop items that never clear
// minSup/maxPer, rewrite the surviving transactions onto Ranks, build
// the main PTree, and recursively mine it for maximal patterns. The
// returned Result's Patterns are in the order generate emitted them,
// which is deterministic for a given input but not any particular
// sort order over the patterns themselves.
//
// txns must be in nondecreasing TS order; Mine does not sort it. A
// violation of one of the tree invariants documented on PTree/MTree
// surfaces as an error rather than a panic escaping to the caller.
func Mine(ctx context.Context, txns []Transaction, minSup, maxPer Threshold) (_ Result, err error) {
	defer func() {
		if r := derror.PanicToError(recover()); r != nil {
			err = fmt.Errorf("mpfp: %w", r)
		}
	}()

	prof, buildErr := buildProfile(txns, minSup, maxPer)
	if buildErr != nil {
		return Result{}, buildErr
	}
	distinct := make(map[Label]struct{})
	for _, txn := range txns {
		for _, item := range txn.Items {
			distinct[item] = struct{}{}
		}
	}
	dlog.Infof(ctx, "mpfp: %d of %d items survived profiling", len(prof.info), len(distinct))

	ranked := rewriteDatabase(txns, prof)
	dlog.Infof(ctx, "mpfp: %d of %d transactions survived rewriting", len(ranked), len(txns))

	eng := &engine{
		lastTxnIndex: int64(len(txns)),
		minSupN:      minSup.resolve(len(txns)),
		maxPerN:      int64(maxPer.resolve(len(txns))),
		pool:         newNodePool(),
		maximal:      newMTree(),
		progress:     textui.NewProgress[progressSnapshot](ctx, dlog.LogLevelInfo, progressInterval),
	}
	// Done waits for the reporting goroutine that the first Set starts,
	// so report once up front even if no header is ever processed.
	eng.progress.Set(progressSnapshot{})
	defer eng.progress.Done()

	root := newPTree(eng, prof.info)
	for _, txn := range ranked {
		root.addTransaction(txn.ranks, []int64{txn.ts})
	}

	var out []rankedPattern
	root.generate(nil, &out)

	patterns := make([]Pattern, 0, len(out))
	for _, rp := range out {
		ranks := append([]Rank(nil), rp.ranks...)
		sort.Slice(ranks, func(i, j int) bool { return ranks[i] < ranks[j] })
		items := make([]Label, len(ranks))
		for i, r := range ranks {
			items[i] = prof.label[r]
		}
		patterns = append(patterns, Pattern{Items: items, Stats: rp.stats})
	}

	dlog.Infof(ctx, "mpfp: mining complete, %d maximal patterns found", len(patterns))
	return Result{Patterns: patterns}, nil
}
