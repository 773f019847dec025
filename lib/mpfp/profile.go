// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package mpfp

import "sort"

// itemStat is the per-item bookkeeping the profiler accumulates in a
// single left-to-right pass over the database.
type itemStat struct {
	label  Label
	maxGap int64
	lastTS int64
	seen   bool
	count  int
}

// profile is the one-item profiler (§4.B): it computes per-item
// (support, period), keeps only the items that clear both thresholds,
// and assigns each survivor a Rank in descending-support order (ties
// broken by descending label).
type profile struct {
	// info is keyed by Rank and holds each survivor's final stats.
	info map[Rank]Stats
	// rank maps a surviving Label to its Rank.
	rank map[Label]Rank
	// label is the inverse of rank, for rehydrating output patterns.
	label map[Rank]Label
}

func buildProfile(txns []Transaction, minSup, maxPer Threshold) (*profile, error) {
	n := len(txns)
	if n == 0 {
		return nil, badInputf("no transactions")
	}

	minSupN := minSup.resolve(n)
	maxPerN := int64(maxPer.resolve(n))
	if minSupN > n {
		return nil, badInputf("minSup (%d) exceeds the number of transactions (%d)", minSupN, n)
	}

	stats := make(map[Label]*itemStat)
	order := make([]Label, 0)
	for _, txn := range txns {
		for _, item := range txn.Items {
			st, ok := stats[item]
			if !ok {
				st = &itemStat{label: item}
				stats[item] = st
				order = append(order, item)
			}
			if !st.seen {
				st.seen = true
				st.maxGap = txn.TS
				st.lastTS = txn.TS
				st.count = 1
				continue
			}
			gap := txn.TS - st.lastTS
			if gap > st.maxGap {
				st.maxGap = gap
			}
			st.lastTS = txn.TS
			st.count++
		}
	}

	type survivor struct {
		label Label
		stat  Stats
	}
	survivors := make([]survivor, 0, len(order))
	for _, label := range order {
		st := stats[label]
		tail := int64(n) - st.lastTS
		if tail < 0 {
			tail = -tail
		}
		if tail > st.maxGap {
			st.maxGap = tail
		}
		if st.count >= minSupN && st.maxGap <= maxPerN {
			survivors = append(survivors, survivor{label: label, stat: Stats{Support: st.count, Period: st.maxGap}})
		}
	}

	sort.Slice(survivors, func(i, j int) bool {
		a, b := survivors[i], survivors[j]
		if a.stat.Support != b.stat.Support {
			return a.stat.Support > b.stat.Support
		}
		return a.label > b.label
	})

	p := &profile{
		info:  make(map[Rank]Stats, len(survivors)),
		rank:  make(map[Label]Rank, len(survivors)),
		label: make(map[Rank]Label, len(survivors)),
	}
	for i, s := range survivors {
		r := Rank(i)
		p.info[r] = s.stat
		p.rank[s.label] = r
		p.label[r] = s.label
	}
	return p, nil
}
