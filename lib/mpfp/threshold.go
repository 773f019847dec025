// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package mpfp

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Threshold is one of minSup or maxPer as the caller supplied it:
// either a bare count, or a fraction of the database size that is
// resolved to a count once the database size is known. The kind is
// carried explicitly rather than inferred from the value's magnitude,
// matching the convention of the engine this package is based on --
// a Threshold built with Fraction(3) is a (surprising, but
// intentional) fraction of 3x the database size, not a count of 3.
type Threshold struct {
	isCount bool
	count   int
	frac    float64
}

// Count is a threshold expressed as a literal transaction count.
func Count(n int) Threshold {
	return Threshold{isCount: true, count: n}
}

// Fraction is a threshold expressed as a multiple of the database
// size; it need not lie in (0,1].
func Fraction(f float64) Threshold {
	return Threshold{isCount: false, frac: f}
}

// ParseThreshold mirrors the textual convention: a string containing
// a '.' is a decimal fraction, anything else is parsed as an integer
// count.
func ParseThreshold(s string) (Threshold, error) {
	if strings.Contains(s, ".") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Threshold{}, fmt.Errorf("mpfp: parsing threshold %q: %w", s, err)
		}
		return Fraction(f), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Threshold{}, fmt.Errorf("mpfp: parsing threshold %q: %w", s, err)
	}
	return Count(n), nil
}

// Type implements pflag.Value, so a Threshold can be used directly as
// a command-line flag.
func (t *Threshold) Type() string { return "threshold" }

func (t *Threshold) String() string {
	if t.isCount {
		return strconv.Itoa(t.count)
	}
	return strconv.FormatFloat(t.frac, 'g', -1, 64)
}

func (t *Threshold) Set(s string) error {
	parsed, err := ParseThreshold(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// resolve converts the threshold to a transaction count against a
// database of size n, rounding a fraction's product to the nearest
// integer.
func (t Threshold) resolve(n int) int {
	if t.isCount {
		return t.count
	}
	return int(math.Round(t.frac * float64(n)))
}
