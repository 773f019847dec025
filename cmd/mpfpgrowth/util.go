// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"git.lukeshu.com/go/lowmemjson"
	"github.com/datawire/dlib/dlog"

	"github.com/Internet-today/mpfpgrowth/lib/mpfp"
	"github.com/Internet-today/mpfpgrowth/lib/textui"
)

// progressReader wraps a file with a byte-count progress reporter, so
// reading a large transaction database logs where it's at.
type progressReader struct {
	ctx            context.Context //nolint:containedctx // for detecting shutdown from methods
	progress       textui.Portion[int64]
	progressWriter *textui.Progress[textui.Portion[int64]]
	reader         io.Reader
	closer         io.Closer
}

func newProgressReader(ctx context.Context, fh *os.File) (*progressReader, error) {
	fi, err := fh.Stat()
	if err != nil {
		return nil, err
	}
	return &progressReader{
		ctx: ctx,
		progress: textui.Portion[int64]{
			D: fi.Size(),
		},
		progressWriter: textui.NewProgress[textui.Portion[int64]](ctx, dlog.LogLevelInfo, textui.Tunable(1*time.Second)),
		reader:         fh,
		closer:         fh,
	}, nil
}

func (pr *progressReader) Read(p []byte) (int, error) {
	if err := pr.ctx.Err(); err != nil {
		return 0, err
	}
	n, err := pr.reader.Read(p)
	pr.progress.N += int64(n)
	pr.progressWriter.Set(pr.progress)
	return n, err
}

func (pr *progressReader) Close() error {
	pr.progressWriter.Done()
	return pr.closer.Close()
}

// readTransactions parses a temporal transaction database: one
// transaction per line, sep-delimited fields, the first field a
// timestamp and the remaining fields item labels.
func readTransactions(ctx context.Context, filename string, sep string) ([]mpfp.Transaction, error) {
	fh, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	pr, err := newProgressReader(dlog.WithField(ctx, "mpfp.read-transactions", filename), fh)
	if err != nil {
		_ = fh.Close()
		return nil, err
	}
	defer func() {
		_ = pr.Close()
	}()

	isSep := func(r rune) bool { return strings.ContainsRune(sep, r) }

	var txns []mpfp.Transaction
	scanner := bufio.NewScanner(pr)
	for scanner.Scan() {
		fields := strings.FieldsFunc(scanner.Text(), isSep)
		if len(fields) == 0 {
			continue
		}
		ts, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("mpfp: parsing timestamp %q: %w", fields[0], err)
		}
		items := make([]mpfp.Label, len(fields)-1)
		for i, f := range fields[1:] {
			items[i] = mpfp.Label(f)
		}
		txns = append(txns, mpfp.Transaction{TS: ts, Items: items})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return txns, nil
}

func writeJSONFile(w io.Writer, obj any, cfg lowmemjson.ReEncoder) (err error) {
	buffer := bufio.NewWriter(w)
	defer func() {
		if _err := buffer.Flush(); err == nil && _err != nil {
			err = _err
		}
	}()
	cfg.Out = buffer
	return lowmemjson.Encode(&cfg, obj)
}
