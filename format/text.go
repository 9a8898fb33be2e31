package format

import (
	"fmt"
	"io"

	"github.com/dhamidi/mjc/minijava/lexer"
	"github.com/dhamidi/mjc/minijava/parser"
)

type TextEncoder struct {
	out    io.Writer
	errOut io.Writer
}

func NewTextEncoder(out, errOut io.Writer) *TextEncoder {
	return &TextEncoder{out: out, errOut: errOut}
}

func (e *TextEncoder) EncodeToken(tok lexer.Token) error {
	_, err := fmt.Fprintln(e.out, tok)
	return err
}

func (e *TextEncoder) EncodeResult(result *parser.Result) error {
	if result.OK() {
		_, err := fmt.Fprintln(e.out, Confirmation)
		return err
	}
	for _, d := range result.Diagnostics {
		if err := e.encodeDiagnostic(d); err != nil {
			return err
		}
	}
	return nil
}

func (e *TextEncoder) encodeDiagnostic(d parser.Diagnostic) error {
	if d.File != "" {
		if _, err := fmt.Fprintf(e.errOut, "%s: ", d.File); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(e.errOut, d)
	return err
}
