// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package mpfp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWritePersistedSeparatesItemsAndTrailsASpaceBeforeTheColon(t *testing.T) {
	t.Parallel()
	result := Result{
		Patterns: []Pattern{
			{Items: []Label{"a", "b"}, Stats: Stats{Support: 4, Period: 3}},
			{Items: []Label{"c"}, Stats: Stats{Support: 3, Period: 2}},
		},
	}

	var out strings.Builder
	require.NoError(t, WritePersisted(&out, result))
	require.Equal(t, "a b :4:3\nc :3:2\n", out.String())
}

func TestWritePersistedEmptyResult(t *testing.T) {
	t.Parallel()
	var out strings.Builder
	require.NoError(t, WritePersisted(&out, Result{}))
	require.Equal(t, "", out.String())
}
