package format

import (
	"fmt"
	"io"

	"github.com/dhamidi/mjc/minijava/lexer"
	"github.com/dhamidi/mjc/minijava/parser"
)

// Confirmation is printed for a parse without diagnostics.
const Confirmation = "No error!"

type Encoder interface {
	EncodeToken(tok lexer.Token) error
	EncodeResult(result *parser.Result) error
}

// New returns the encoder for name. Text output sends diagnostics to errOut
// and everything else to out; JSON output goes to out only.
func New(name string, out, errOut io.Writer) (Encoder, error) {
	switch name {
	case "", "text":
		return NewTextEncoder(out, errOut), nil
	case "json":
		return NewJSONEncoder(out), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", name)
	}
}
