// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package mpfp

import (
	"io"

	"github.com/Internet-today/mpfpgrowth/lib/textui"
)

// WritePersisted writes result in the persisted form (§6): one
// pattern per line, `label₁ label₂ … :support:period`, with a single
// space separating the items of a pattern, and another before the
// leading colon.
func WritePersisted(w io.Writer, result Result) error {
	for _, pat := range result.Patterns {
		for _, item := range pat.Items {
			if _, err := io.WriteString(w, string(item)+" "); err != nil {
				return err
			}
		}
		if _, err := textui.Fprintf(w, ":%d:%d\n", pat.Stats.Support, pat.Stats.Period); err != nil {
			return err
		}
	}
	return nil
}
