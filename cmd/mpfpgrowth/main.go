// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"context"
	"os"

	"git.lukeshu.com/go/lowmemjson"
	"github.com/datawire/dlib/dgroup"
	"github.com/datawire/dlib/dlog"
	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Internet-today/mpfpgrowth/lib/mpfp"
	"github.com/Internet-today/mpfpgrowth/lib/textui"
)

type logLevelFlag struct {
	logrus.Level
}

func (lvl *logLevelFlag) Type() string { return "loglevel" }
func (lvl *logLevelFlag) Set(str string) error {
	var err error
	lvl.Level, err = logrus.ParseLevel(str)
	return err
}

var _ pflag.Value = (*logLevelFlag)(nil)

func main() {
	logLevelFlag := logLevelFlag{
		Level: logrus.InfoLevel,
	}
	var sepFlag string
	var outFlag string
	var jsonFlag bool
	minSupFlag := mpfp.Count(0)
	maxPerFlag := mpfp.Count(0)

	argparser := &cobra.Command{
		Use:   "mpfpgrowth INPUT-FILE",
		Short: "Discover maximal periodic-frequent patterns in a temporal transaction database",

		Args: cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),

		SilenceErrors: true, // main() will handle this after .ExecuteContext() returns
		SilenceUsage:  true, // our FlagErrorFunc will handle it

		CompletionOptions: cobra.CompletionOptions{ //nolint:exhaustivestruct
			DisableDefaultCmd: true,
		},
	}
	argparser.SetFlagErrorFunc(cliutil.FlagErrorFunc)
	argparser.SetHelpTemplate(cliutil.HelpTemplate)
	argparser.PersistentFlags().Var(&logLevelFlag, "verbosity", "set the verbosity")
	argparser.Flags().StringVar(&sepFlag, "sep", "\t ", "characters that separate fields within a transaction line")
	argparser.Flags().StringVar(&outFlag, "output", "", "write patterns to `file` instead of stdout")
	argparser.Flags().BoolVar(&jsonFlag, "json", false, "write patterns as JSON instead of the persisted text form")
	argparser.Flags().Var(&minSupFlag, "min-sup", "minimum support, as a count or (with a decimal point) a fraction of the database size")
	argparser.Flags().Var(&maxPerFlag, "max-per", "maximum period, as a count or (with a decimal point) a fraction of the database size")
	if err := argparser.MarkFlagRequired("min-sup"); err != nil {
		panic(err)
	}
	if err := argparser.MarkFlagRequired("max-per"); err != nil {
		panic(err)
	}

	argparser.RunE = func(cmd *cobra.Command, args []string) (err error) {
		ctx := cmd.Context()
		logger := logrus.New()
		logger.SetLevel(logLevelFlag.Level)
		ctx = dlog.WithLogger(ctx, dlog.WrapLogrus(logger))

		grp := dgroup.NewGroup(ctx, dgroup.GroupConfig{
			EnableSignalHandling: true,
		})
		grp.Go("main", func(ctx context.Context) error {
			txns, err := readTransactions(ctx, args[0], sepFlag)
			if err != nil {
				return err
			}

			result, err := mpfp.Mine(ctx, txns, minSupFlag, maxPerFlag)
			if err != nil {
				return err
			}

			out := os.Stdout
			if outFlag != "" {
				fh, err := os.Create(outFlag)
				if err != nil {
					return err
				}
				defer func() {
					_ = fh.Close()
				}()
				out = fh
			}

			if jsonFlag {
				return writeJSONFile(out, result, lowmemjson.ReEncoder{
					Indent:                "\t",
					ForceTrailingNewlines: true,
				})
			}
			return mpfp.WritePersisted(out, result)
		})
		return grp.Wait()
	}

	if err := argparser.ExecuteContext(context.Background()); err != nil {
		textui.Fprintf(os.Stderr, "%v: error: %v\n", argparser.CommandPath(), err)
		os.Exit(1)
	}
}
