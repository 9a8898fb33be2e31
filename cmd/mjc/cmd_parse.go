package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/mjc/format"
	"github.com/dhamidi/mjc/minijava/parser"
)

func newParseCmd(g *globalOptions) *cobra.Command {
	var outputFormat string
	var recovery string
	var trace bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Check that a source file is a syntactically valid program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			enc, err := format.New(outputFormat, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			mode := g.cfg.RecoveryMode()
			if cmd.Flags().Changed("recovery") {
				if mode, err = parser.ParseRecovery(recovery); err != nil {
					return err
				}
			}

			f, err := os.Open(filename)
			if err != nil {
				return fmt.Errorf("open source file: %w", err)
			}
			defer f.Close()

			opts := []parser.Option{parser.WithFile(filename), parser.WithRecovery(mode)}
			if trace || g.cfg.Trace {
				opts = append(opts, parser.WithTrace(cmd.OutOrStdout()))
			}

			result, err := parser.Parse(f, opts...)
			var fatal *parser.FatalError
			if err != nil && !errors.As(err, &fatal) {
				return fmt.Errorf("parse %s: %w", filename, err)
			}
			log.Info("parsed", "file", filename, "tokens", result.Tokens, "errors", result.Errors())

			if err := enc.EncodeResult(result); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			if !result.OK() {
				return errSyntax
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")
	cmd.Flags().StringVar(&recovery, "recovery", "fail-fast", "behavior at a missing expected token (fail-fast, continue)")
	cmd.Flags().BoolVarP(&trace, "trace", "t", false, "print every token as it is produced")

	return cmd
}
