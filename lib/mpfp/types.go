// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package mpfp discovers maximal periodic-frequent patterns (MPFPs)
// in a temporal transaction database: itemsets that are frequent
// (occur in at least minSup transactions), periodic (never go longer
// than maxPer between occurrences, including the tail to the end of
// the database), and maximal (no proper superset of the itemset is
// also frequent and periodic).
package mpfp

import "fmt"

// Label identifies an item. Equality and the natural string ordering
// are the only properties the engine relies on.
type Label string

// Rank is the identity of a surviving item once it has been placed in
// descending-support order by the profiler. Only ranks, never labels,
// are used inside the prefix and maximal trees.
type Rank int

// Transaction is one row of the input database: a timestamp and the
// items present at that timestamp. The sequence of Transactions
// handed to Mine must be in nondecreasing TS order.
type Transaction struct {
	TS    int64
	Items []Label
}

// rankedTransaction is a Transaction after the database rewrite: items
// not surviving the profiler are dropped, the rest are mapped to
// their Rank and sorted ascending.
type rankedTransaction struct {
	ts    int64
	ranks []Rank
}

// Stats is the (support, period) pair computed for an item or
// pattern.
type Stats struct {
	Support int
	Period  int64
}

func (s Stats) String() string {
	return fmt.Sprintf("(support=%d, period=%d)", s.Support, s.Period)
}

// Pattern is an emitted maximal periodic-frequent itemset, with its
// items in rank-ascending order.
type Pattern struct {
	Items []Label
	Stats Stats
}

// Result is the output of a mining run: every emitted maximal pattern,
// in the deterministic order they were produced by the driver.
type Result struct {
	Patterns []Pattern
}
