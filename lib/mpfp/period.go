// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package mpfp

import (
	"github.com/Internet-today/mpfpgrowth/lib/containers"
	"github.com/Internet-today/mpfpgrowth/lib/slices"
)

// periodAndSupport is the period/support evaluator (§4.A). Given the
// timestamps an itemset occurred at and the index of the last
// transaction in the database, it returns the itemset's (support,
// period), or !OK if the itemset's maximum gap already exceeds maxPer
// partway through the scan -- there is no point charging the tail
// term against a pattern that is already dead.
func periodAndSupport(timestamps []int64, lastTxnIndex int64, maxPer int64) containers.Optional[Stats] {
	sorted := make([]int64, len(timestamps))
	copy(sorted, timestamps)
	slices.Sort(sorted)

	var prev, maxGap int64
	count := 0
	for _, ts := range sorted {
		gap := ts - prev
		if gap > maxGap {
			maxGap = gap
		}
		if maxGap > maxPer {
			return containers.Optional[Stats]{}
		}
		prev = ts
		count++
	}

	tail := lastTxnIndex - prev
	if tail < 0 {
		tail = -tail
	}
	if tail > maxGap {
		maxGap = tail
	}

	return containers.Optional[Stats]{OK: true, Val: Stats{Support: count, Period: maxGap}}
}
