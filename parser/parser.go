// Package parser builds document values from the token stream: one routine
// per grammar nonterminal (value, object, list), each running an explicit
// separator state machine with no lookahead beyond the one token in hand.
package parser

import (
	"fmt"
	"io"
	"strconv"

	"jdoc.mleku.dev/chk"
	"jdoc.mleku.dev/json"
	"jdoc.mleku.dev/lexer"
	"jdoc.mleku.dev/token"
)

// Error is a grammar violation: a missing or doubled separator, a value token
// in key position, an unterminated composite, or number text that does not
// convert. A failed parse leaves any partially built tree indeterminate;
// callers must not use it.
type Error struct {
	Msg string
}

func (e *Error) Error() string { return e.Msg }

func errParse(format string, a ...any) *Error {
	return &Error{Msg: fmt.Sprintf(format, a...)}
}

// P pulls tokens from a lexer and assembles values.
type P struct {
	lx *lexer.Lexer
}

// New returns a parser consuming lx.
func New(lx *lexer.Lexer) *P { return &P{lx: lx} }

// Parse reads every top-level value out of r until the input is exhausted.
func Parse(r io.Reader) (vals []*json.T, err error) {
	return New(lexer.New(r)).Run()
}

// Document reads r like Parse and returns the last top-level value, which is
// what the legacy stream reader left behind when a document held several.
// Empty input yields a null value.
func Document(r io.Reader) (v *json.T, err error) {
	var vals []*json.T
	if vals, err = Parse(r); err != nil {
		return
	}
	if len(vals) == 0 {
		return json.New(), nil
	}
	return vals[len(vals)-1], nil
}

// Run is the document loop: one token pulled per iteration, each dispatched
// through value parsing, terminating on end of input.
func (p *P) Run() (vals []*json.T, err error) {
	for {
		var tok token.T
		if tok, err = p.lx.Next(); chk.T(err) {
			return
		}
		if tok.Kind == token.EOF {
			return
		}
		var v *json.T
		if v, err = p.value(tok); err != nil {
			return
		}
		vals = append(vals, v)
	}
}

// value dispatches on an already read token.
func (p *P) value(tok token.T) (v *json.T, err error) {
	switch tok.Kind {
	case token.ObjectOpen:
		return p.object()
	case token.ListOpen:
		return p.list()
	case token.String, token.Number, token.Bool, token.Null:
		return leaf(tok)
	}
	err = errParse("invalid document: unexpected %v", tok.Kind)
	return
}

// object consumes tokens through the matching close brace. Separator state:
// pendingKey is whatever literal text was captured in key position (keys are
// not type-checked, `{1:2}` is legal), colonSeen gates the value, and the
// first/commaSeen pair admits a value exactly once per member - the comma is
// required before every member except the first and rejected doubled or
// leading.
func (p *P) object() (v *json.T, err error) {
	v = json.New()
	v.SetObject()
	var key []byte
	var haveKey, colonSeen, commaSeen bool
	first := true
	for {
		var tok token.T
		if tok, err = p.lx.Next(); chk.T(err) {
			return
		}
		switch tok.Kind {
		case token.ObjectClose:
			return
		case token.EOF:
			err = errParse("unterminated object")
			return
		case token.Colon:
			if !haveKey || colonSeen {
				err = errParse("misplaced colon in object")
				return
			}
			colonSeen = true
		case token.Comma:
			if commaSeen {
				err = errParse("repeated comma in object")
				return
			}
			commaSeen = true
			haveKey = false
			colonSeen = false
			key = nil
		case token.String, token.Number, token.Bool, token.Null,
			token.ObjectOpen, token.ListOpen:
			if !haveKey && tok.Kind != token.ObjectOpen &&
				tok.Kind != token.ListOpen {
				// any literal's raw text serves as the member key
				key = tok.Val
				haveKey = true
				break
			}
			if !haveKey || !colonSeen {
				err = errParse("missing colon in object member")
				return
			}
			if !(first && !commaSeen) && !(!first && commaSeen) {
				err = errParse("missing or misplaced comma in object")
				return
			}
			var val *json.T
			if val, err = p.value(tok); err != nil {
				return
			}
			_ = v.Insert(key, val)
			if first {
				first = false
			} else {
				commaSeen = false
			}
			haveKey = false
			colonSeen = false
			key = nil
		default:
			err = errParse("invalid token in object: %v", tok.Kind)
			return
		}
	}
}

// list mirrors object without keys or colons: comma-separated values appended
// left to right, so lists preserve encounter order (objects do not, their
// members are front-inserted).
func (p *P) list() (v *json.T, err error) {
	v = json.New()
	v.SetList()
	var commaSeen bool
	first := true
	for {
		var tok token.T
		if tok, err = p.lx.Next(); chk.T(err) {
			return
		}
		switch tok.Kind {
		case token.ListClose:
			return
		case token.EOF:
			err = errParse("unterminated list")
			return
		case token.Comma:
			if commaSeen {
				err = errParse("repeated comma in list")
				return
			}
			commaSeen = true
		case token.String, token.Number, token.Bool, token.Null,
			token.ObjectOpen, token.ListOpen:
			if !(first && !commaSeen) && !(!first && commaSeen) {
				err = errParse("missing or misplaced comma in list")
				return
			}
			var val *json.T
			if val, err = p.value(tok); err != nil {
				return
			}
			_ = v.PushBack(val)
			if first {
				first = false
			} else {
				commaSeen = false
			}
		default:
			err = errParse("invalid token in list: %v", tok.Kind)
			return
		}
	}
}

// leaf builds a value from a literal token. String payloads are taken
// verbatim with no unescaping; number text is converted with the
// locale-independent strconv and a conversion failure is a recoverable parse
// error, not an abort of the process.
func leaf(tok token.T) (v *json.T, err error) {
	switch tok.Kind {
	case token.String:
		v = json.NewString(tok.Val)
	case token.Number:
		var n float64
		if n, err = strconv.ParseFloat(string(tok.Val), 64); err != nil {
			err = errParse("invalid number %q", tok.Val)
			return
		}
		v = json.NewNumber(n)
	case token.Bool:
		v = json.NewBool(len(tok.Val) > 0 && tok.Val[0] == 't')
	case token.Null:
		v = json.New()
	}
	return
}
