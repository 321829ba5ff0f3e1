// Package keywords holds the static word lists the SQL lexer matches against.
//
// The lists are plain data: reserved words that start a clause (top-level),
// reserved words that start a new line without changing indentation, the
// remaining reserved words, built-in function names and the boundary symbols
// that delimit words.
//
// Default returns the tables sorted longest entry first so that a phrase such
// as "LEFT OUTER JOIN" is always tried before "LEFT JOIN" or "JOIN":
//
//	tables := keywords.Default()
//	for _, word := range tables.TopLevel {
//		fmt.Println(word)
//	}
//
// Multi-word entries use a single space between words. Consumers decide
// whether that space matches exactly one space or any whitespace run.
package keywords
