package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/mjc/format"
	"github.com/dhamidi/mjc/minijava/lexer"
)

func newLexCmd(g *globalOptions) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "lex <file>",
		Short: "Print the tokens of a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			enc, err := format.New(outputFormat, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			f, err := os.Open(filename)
			if err != nil {
				return fmt.Errorf("open source file: %w", err)
			}
			defer f.Close()

			l := lexer.New(f, lexer.WithFile(filename))
			for {
				tok := l.Next()
				if err := enc.EncodeToken(tok); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
				if tok.Kind == lexer.TokenEOF {
					break
				}
			}
			return l.Err()
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")

	return cmd
}
