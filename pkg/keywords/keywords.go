package keywords

import (
	"cmp"
	"slices"
)

// Tables groups the word lists consumed by the lexer.
type Tables struct {
	// TopLevel words start a major clause (SELECT, FROM, WHERE, ...)
	TopLevel []string
	// Newline words start a new line at the current indent (AND, OR, JOIN, ...)
	Newline []string
	// Reserved words are keywords with no layout effect
	Reserved []string
	// Functions are names recognized only when directly followed by "("
	Functions []string
	// Boundaries are the punctuation and operator symbols
	Boundaries []string
}

// Default returns a fresh copy of the built-in tables, each sorted longest
// entry first. Callers may modify the result.
func Default() *Tables {
	return &Tables{
		TopLevel:   ByLength(topLevel),
		Newline:    ByLength(newline),
		Reserved:   ByLength(reserved),
		Functions:  ByLength(functions),
		Boundaries: ByLength(boundaries),
	}
}

// ByLength returns a copy of words ordered by descending length. Entries of
// equal length keep their relative order.
func ByLength(words []string) []string {
	sorted := slices.Clone(words)
	slices.SortStableFunc(sorted, func(a, b string) int {
		return cmp.Compare(len(b), len(a))
	})
	return sorted
}
