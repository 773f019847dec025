// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package mpfp

import (
	"fmt"
	"time"

	"github.com/Internet-today/mpfpgrowth/lib/textui"
)

// progressSnapshot is the periodically-logged state of a mining run:
// how many header items have been folded away so far, and how many
// maximal patterns have been found along the way. Neither number is
// known in advance -- the search tree is discovered as it is mined --
// so this reports a running count rather than a percentage.
type progressSnapshot struct {
	HeadersProcessed int
	PatternsFound    int
}

func (s progressSnapshot) String() string {
	return fmt.Sprintf("mining: %d header items processed, %d maximal patterns found",
		s.HeadersProcessed, s.PatternsFound)
}

var progressInterval = textui.Tunable(2 * time.Second)

func (e *engine) reportHeader() {
	e.headersProcessed++
	if e.progress != nil {
		e.progress.Set(progressSnapshot{HeadersProcessed: e.headersProcessed, PatternsFound: e.patternsFound})
	}
}

func (e *engine) reportPattern() {
	e.patternsFound++
	if e.progress != nil {
		e.progress.Set(progressSnapshot{HeadersProcessed: e.headersProcessed, PatternsFound: e.patternsFound})
	}
}
