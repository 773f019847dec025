// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package mpfp

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// txns builds a []Transaction from lines of the form "ts item item ...".
func txns(rows ...string) []Transaction {
	out := make([]Transaction, len(rows))
	for i, row := range rows {
		fields := strings.Fields(row)
		ts, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			panic(err)
		}
		var items []Label
		for _, f := range fields[1:] {
			items = append(items, Label(f))
		}
		out[i] = Transaction{TS: ts, Items: items}
	}
	return out
}

func TestBuildProfileDropsInfrequentAndAperiodicItems(t *testing.T) {
	t.Parallel()
	db := txns(
		"1 a b",
		"2 a",
		"3 a b c",
	)
	// b occurs at 1, 3: gap 2, tail |3-3|=0, period 2, support 2.
	// a occurs at 1, 2, 3: period 1, support 3.
	// c occurs once, at 3: first gap 3, tail |3-3|=0, period 3, support 1.
	p, err := buildProfile(db, Count(2), Count(2))
	require.NoError(t, err)
	require.Len(t, p.rank, 2)
	require.Contains(t, p.rank, Label("a"))
	require.Contains(t, p.rank, Label("b"))
	require.NotContains(t, p.rank, Label("c"))
}

func TestBuildProfileRanksByDescendingSupportThenDescendingLabel(t *testing.T) {
	t.Parallel()
	db := txns(
		"1 a b",
		"2 a b",
		"3 a",
	)
	// a: support 3. b: support 2. Both clear minSup=2, maxPer generous.
	p, err := buildProfile(db, Count(2), Count(10))
	require.NoError(t, err)
	require.Equal(t, Rank(0), p.rank[Label("a")])
	require.Equal(t, Rank(1), p.rank[Label("b")])
}

func TestBuildProfileRankTieBreaksByDescendingLabel(t *testing.T) {
	t.Parallel()
	db := txns(
		"1 a b",
		"2 a b",
	)
	p, err := buildProfile(db, Count(2), Count(10))
	require.NoError(t, err)
	// Equal support: descending label means "b" ranks ahead of "a".
	require.Equal(t, Rank(0), p.rank[Label("b")])
	require.Equal(t, Rank(1), p.rank[Label("a")])
}

func TestBuildProfileRejectsEmptyDatabase(t *testing.T) {
	t.Parallel()
	_, err := buildProfile(nil, Count(1), Count(1))
	require.Error(t, err)
	var badInput *BadInputError
	require.ErrorAs(t, err, &badInput)
}

func TestBuildProfileRejectsUnsatisfiableMinSup(t *testing.T) {
	t.Parallel()
	db := txns("1 a", "2 a")
	_, err := buildProfile(db, Count(3), Count(10))
	require.Error(t, err)
}

func TestBuildProfileFractionalThresholds(t *testing.T) {
	t.Parallel()
	db := txns(
		"1 a b",
		"2 a",
		"3 a",
		"4 a",
	)
	// minSup = 0.5 * 4 = 2, maxPer = 1.0 * 4 = 4.
	p, err := buildProfile(db, Fraction(0.5), Fraction(1.0))
	require.NoError(t, err)
	require.Contains(t, p.rank, Label("a"))
}
