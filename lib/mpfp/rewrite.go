// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package mpfp

import "github.com/Internet-today/mpfpgrowth/lib/slices"

// rewriteDatabase is the database rewriter (§4.C): it projects each
// transaction onto the items that survived profiling, maps the
// survivors to their Rank, and sorts each transaction ascending by
// Rank. Transactions that become empty are dropped entirely, since
// they contribute nothing to any surviving itemset.
func rewriteDatabase(txns []Transaction, p *profile) []rankedTransaction {
	out := make([]rankedTransaction, 0, len(txns))
	for _, txn := range txns {
		ranks := make([]Rank, 0, len(txn.Items))
		for _, item := range txn.Items {
			if r, ok := p.rank[item]; ok {
				ranks = append(ranks, r)
			}
		}
		if len(ranks) == 0 {
			continue
		}
		slices.Sort(ranks)
		out = append(out, rankedTransaction{ts: txn.TS, ranks: ranks})
	}
	return out
}
