package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/mjc/minijava/lexer"
	"github.com/dhamidi/mjc/minijava/parser"
)

// JSONEncoder writes one JSON document per line.
type JSONEncoder struct {
	enc *json.Encoder
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{enc: json.NewEncoder(w)}
}

type jsonToken struct {
	Kind    string `json:"kind"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Literal string `json:"literal,omitempty"`
}

type jsonDiagnostic struct {
	Found    string `json:"found"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Expected string `json:"expected,omitempty"`
	Fatal    bool   `json:"fatal"`
	Message  string `json:"message"`
}

type jsonResult struct {
	File        string           `json:"file,omitempty"`
	OK          bool             `json:"ok"`
	Tokens      int              `json:"tokens"`
	Diagnostics []jsonDiagnostic `json:"diagnostics"`
}

func (e *JSONEncoder) EncodeToken(tok lexer.Token) error {
	return e.enc.Encode(tokenToJSON(tok))
}

func (e *JSONEncoder) EncodeResult(result *parser.Result) error {
	return e.enc.Encode(resultToJSON(result))
}

func tokenToJSON(tok lexer.Token) jsonToken {
	return jsonToken{
		Kind:    tok.Kind.String(),
		Line:    tok.Line,
		Column:  tok.Column,
		Literal: tok.Literal,
	}
}

func resultToJSON(result *parser.Result) jsonResult {
	out := jsonResult{
		File:        result.File,
		OK:          result.OK(),
		Tokens:      result.Tokens,
		Diagnostics: make([]jsonDiagnostic, 0, len(result.Diagnostics)),
	}
	for _, d := range result.Diagnostics {
		jd := jsonDiagnostic{
			Found:   d.Found.String(),
			Line:    d.Line,
			Column:  d.Column,
			Fatal:   d.Fatal,
			Message: d.String(),
		}
		if d.Expected != nil {
			jd.Expected = d.Expected.String()
		}
		out.Diagnostics = append(out.Diagnostics, jd)
	}
	return out
}
