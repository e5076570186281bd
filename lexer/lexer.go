// Package lexer turns a forward-only character stream into document tokens.
// It keeps one byte of lookahead and nothing else: no positions, no
// backtracking beyond a single unread.
package lexer

import (
	"errors"
	"fmt"
	"io"

	"jdoc.mleku.dev/token"
)

// Error is a lexical error: an unrecognized byte or a broken literal
// continuation. It carries the offending text only; tokens have no position
// information to report.
type Error struct {
	Msg string
}

func (e *Error) Error() string { return e.Msg }

func errLex(format string, a ...any) *Error {
	return &Error{Msg: fmt.Sprintf(format, a...)}
}

// Lexer reads tokens off a byte stream. Create one with New; the zero value
// is not usable.
type Lexer struct {
	r io.ByteScanner
}

// byteScanner is the minimal buffered reader the lexer needs when the caller
// hands it a plain io.Reader.
type byteScanner struct {
	r      io.Reader
	buf    [1]byte
	unread bool
	last   byte
	err    error
}

func (s *byteScanner) ReadByte() (c byte, err error) {
	if s.unread {
		s.unread = false
		return s.last, nil
	}
	if s.err != nil {
		return 0, s.err
	}
	var n int
	for n == 0 && err == nil {
		n, err = s.r.Read(s.buf[:])
	}
	if n == 0 {
		s.err = err
		return 0, err
	}
	s.last = s.buf[0]
	return s.last, nil
}

func (s *byteScanner) UnreadByte() error {
	s.unread = true
	return nil
}

// New returns a lexer consuming r. The stream is read destructively; nothing
// is ever sought back except the single byte of lookahead.
func New(r io.Reader) (lx *Lexer) {
	lx = &Lexer{}
	if bs, ok := r.(io.ByteScanner); ok {
		lx.r = bs
	} else {
		lx.r = &byteScanner{r: r}
	}
	return
}

// Next returns the next token. Exhausted input yields a token.EOF token and a
// nil error; a nil error with any other kind means the token is usable. Only
// space and newline separate tokens - tab and carriage return are not
// whitespace in this language and fall through to the unrecognized character
// error.
func (lx *Lexer) Next() (tok token.T, err error) {
	var c byte
	for {
		if c, err = lx.r.ReadByte(); err != nil {
			if errors.Is(err, io.EOF) {
				return token.T{Kind: token.EOF}, nil
			}
			return
		}
		if c == ' ' || c == '\n' {
			continue
		}
		break
	}
	switch {
	case c == '"':
		return lx.str()
	case c == '-' || (c >= '0' && c <= '9'):
		return lx.number(c)
	case c == 't':
		return lx.literal("rue", token.T{Kind: token.Bool, Val: []byte("true")})
	case c == 'f':
		return lx.literal("alse", token.T{Kind: token.Bool, Val: []byte("false")})
	case c == 'n':
		// the legacy lexer seeks past exactly three bytes here without
		// checking they spell "ull"; `nope` lexes as null. Kept as observable
		// behavior, see DESIGN.md.
		lx.skip(3)
		return token.T{Kind: token.Null}, nil
	case c == '{':
		return token.T{Kind: token.ObjectOpen}, nil
	case c == '}':
		return token.T{Kind: token.ObjectClose}, nil
	case c == '[':
		return token.T{Kind: token.ListOpen}, nil
	case c == ']':
		return token.T{Kind: token.ListClose}, nil
	case c == ':':
		return token.T{Kind: token.Colon}, nil
	case c == ',':
		return token.T{Kind: token.Comma}, nil
	}
	err = errLex("unrecognized character %q", c)
	return
}

// str consumes raw bytes up to the closing double quote. There is no escape
// processing: a backslash is payload like anything else, and an embedded
// double quote cannot be represented.
func (lx *Lexer) str() (tok token.T, err error) {
	var c byte
	var val []byte
	for {
		if c, err = lx.r.ReadByte(); err != nil {
			err = errLex("unterminated string %q", val)
			return
		}
		if c == '"' {
			break
		}
		val = append(val, c)
	}
	return token.T{Kind: token.String, Val: val}, nil
}

// number greedily accumulates bytes from {-, 0-9, .} with no grammar
// validation; `--1..2` lexes fine and is only rejected by the parser's
// numeric conversion.
func (lx *Lexer) number(first byte) (tok token.T, err error) {
	val := []byte{first}
	var c byte
	for {
		if c, err = lx.r.ReadByte(); err != nil {
			if errors.Is(err, io.EOF) {
				err = nil
				break
			}
			return
		}
		if c == '-' || c == '.' || (c >= '0' && c <= '9') {
			val = append(val, c)
			continue
		}
		_ = lx.r.UnreadByte()
		break
	}
	return token.T{Kind: token.Number, Val: val}, nil
}

// literal consumes the continuation of a keyword whose first byte already
// matched, failing if the rest differs.
func (lx *Lexer) literal(rest string, tok token.T) (t token.T, err error) {
	var c byte
	for i := 0; i < len(rest); i++ {
		if c, err = lx.r.ReadByte(); err != nil || c != rest[i] {
			err = errLex("invalid literal: expected %q", tok.Val)
			return
		}
	}
	return tok, nil
}

// skip discards n bytes, silently tolerating a short stream.
func (lx *Lexer) skip(n int) {
	for i := 0; i < n; i++ {
		if _, err := lx.r.ReadByte(); err != nil {
			return
		}
	}
}
