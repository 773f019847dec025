// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package mpfp

import "fmt"

// BadInputError reports a problem with the database or thresholds
// that the caller handed to Mine: no transactions, an empty database,
// or a minSup that can never be satisfied. It is always fatal to the
// run that raised it.
type BadInputError struct {
	Reason string
}

func (e *BadInputError) Error() string {
	return fmt.Sprintf("mpfp: bad input: %s", e.Reason)
}

// InvariantError reports that one of the tree invariants documented
// on PTree/MTree has been violated. Seeing this means the engine
// itself has a bug; it is never expected from well-formed input.
type InvariantError struct {
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("mpfp: internal invariant broken: %s", e.Reason)
}

func badInputf(format string, a ...any) error {
	return &BadInputError{Reason: fmt.Sprintf(format, a...)}
}

func invariantf(format string, a ...any) {
	panic(&InvariantError{Reason: fmt.Sprintf(format, a...)})
}
