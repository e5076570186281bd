// Package token defines the lexical units the lexer produces and the parser
// consumes. Tokens are ephemeral: the parser copies what it needs out of them
// and they have no ownership tie to the document tree.
package token

// Kind enumerates the token types of the document language.
type Kind byte

const (
	EOF Kind = iota
	ObjectOpen
	ObjectClose
	ListOpen
	ListClose
	Colon
	Comma
	String
	Number
	Bool
	Null
)

var kindNames = []string{
	"EOF",
	"object open",
	"object close",
	"list open",
	"list close",
	"colon",
	"comma",
	"string",
	"number",
	"bool",
	"null",
}

func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return "invalid"
	}
	return kindNames[k]
}

// T is one token. Val holds the raw text for String, Number and Bool tokens
// and is empty for the structural kinds. Tokens carry no position
// information.
type T struct {
	Kind Kind
	Val  []byte
}
