package lexer

import "fmt"

// TokenType classifies a lexical token.
type TokenType int

const (
	Whitespace TokenType = iota
	Word
	Quote
	BacktickQuote
	Reserved
	ReservedTopLevel
	ReservedNewline
	Boundary
	Comment
	BlockComment
	Number
	Variable
	Error
)

var tokenTypeNames = [...]string{
	Whitespace:       "Whitespace",
	Word:             "Word",
	Quote:            "Quote",
	BacktickQuote:    "BacktickQuote",
	Reserved:         "Reserved",
	ReservedTopLevel: "ReservedTopLevel",
	ReservedNewline:  "ReservedNewline",
	Boundary:         "Boundary",
	Comment:          "Comment",
	BlockComment:     "BlockComment",
	Number:           "Number",
	Variable:         "Variable",
	Error:            "Error",
}

// TokenTypes lists every token type in declaration order.
func TokenTypes() []TokenType {
	types := make([]TokenType, len(tokenTypeNames))
	for i := range tokenTypeNames {
		types[i] = TokenType(i)
	}
	return types
}

func (t TokenType) String() string {
	if t >= 0 && int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token is a single lexical unit. Text is the exact source text and Index is
// the token's position in the whitespace-inclusive token stream.
type Token struct {
	Type  TokenType
	Text  string
	Index int
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Type, t.Text)
}

// IsComment reports whether the token is a line or block comment.
func (t Token) IsComment() bool {
	return t.Type == Comment || t.Type == BlockComment
}

// IsBoundary reports whether the token is the boundary symbol s.
func (t Token) IsBoundary(s string) bool {
	return t.Type == Boundary && t.Text == s
}
