package compare

import (
	"fmt"
	"strings"

	"github.com/pseudomuto/sqlfmt/pkg/lexer"
)

// MismatchError describes the first significant token that differs between
// two SQL texts. A nil token means the text ran out of tokens.
type MismatchError struct {
	Index    int
	Original *lexer.Token
	Result   *lexer.Token
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("token %d differs: %s != %s", e.Index, describe(e.Original), describe(e.Result))
}

// Slices compares two slices for equality using an equality function for elements.
// Returns true if both slices have the same length and all corresponding elements are equal.
//
// Example:
//
//	same := compare.Slices(a, b, func(x, y lexer.Token) bool {
//	    return x.Type == y.Type
//	})
func Slices[T any](a, b []T, equalFunc func(T, T) bool) bool {
	return FirstMismatch(a, b, equalFunc) < 0
}

// FirstMismatch returns the index of the first position where a and b
// differ, or -1 when they are equal. When one slice is a prefix of the other
// the length of the shorter one is returned.
func FirstMismatch[T any](a, b []T, equalFunc func(T, T) bool) int {
	n := min(len(a), len(b))
	for i := range n {
		if !equalFunc(a[i], b[i]) {
			return i
		}
	}

	if len(a) != len(b) {
		return n
	}
	return -1
}

// Equivalent checks that result differs from original in layout only: both
// must produce the same significant tokens once whitespace the formatter is
// allowed to touch is normalized. It returns a *MismatchError otherwise.
//
// Example:
//
//	formatted := format.Format(sql)
//	if err := compare.Equivalent(sql, formatted); err != nil {
//	    return err
//	}
func Equivalent(original, result string) error {
	a := significant(lexer.Tokenize(original))
	b := significant(lexer.Tokenize(result))

	i := FirstMismatch(a, b, sameToken)
	if i < 0 {
		return nil
	}

	return &MismatchError{Index: i, Original: at(a, i), Result: at(b, i)}
}

func sameToken(a, b lexer.Token) bool {
	return a.Type == b.Type && normalize(a) == normalize(b)
}

// normalize strips the whitespace differences the formatter introduces:
// collapsed keyword phrases, re-indented block comments and trailing blanks.
func normalize(tok lexer.Token) string {
	switch tok.Type {
	case lexer.ReservedTopLevel, lexer.ReservedNewline, lexer.BlockComment:
		return strings.Join(strings.Fields(tok.Text), " ")
	case lexer.Comment:
		return strings.TrimRight(tok.Text, " \t\r")
	}
	return tok.Text
}

func significant(tokens []lexer.Token) []lexer.Token {
	out := tokens[:0:0]
	for _, tok := range tokens {
		if tok.Type != lexer.Whitespace {
			out = append(out, tok)
		}
	}
	return out
}

func at(tokens []lexer.Token, i int) *lexer.Token {
	if i >= len(tokens) {
		return nil
	}
	return &tokens[i]
}

func describe(tok *lexer.Token) string {
	if tok == nil {
		return "end of input"
	}
	return tok.String()
}
