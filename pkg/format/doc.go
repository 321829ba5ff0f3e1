// Package format pretty-prints SQL statements.
//
// The formatter does not parse SQL. It walks the token stream produced by
// package lexer once and decides where to break lines and how far to indent
// from the token types alone, so it accepts any input, including invalid or
// partial statements, and never fails.
//
// Layout rules:
//   - Top-level clause keywords (SELECT, FROM, WHERE, ...) start a new line and
//     indent the clause body one level.
//   - AND, OR and the JOIN family start a new line at the current level.
//   - Commas outside parentheses end the line, except in a LIMIT clause.
//   - Short parenthesized groups stay on one line; longer ones are broken into
//     an indented block with the closing parenthesis on its own line.
//   - Comments are kept verbatim and are always followed by a line break.
//
// Usage:
//
//	// Functional API with default options
//	fmt.Print(format.Format("select a, b from t where x in (1, 2, 3)"))
//
//	// Object-oriented API with custom options
//	formatter := format.New(format.Options{IndentSize: 2})
//	fmt.Print(formatter.Format(sql))
//
//	// Format each statement of a script separately
//	out, err := format.Script("select 1; select 2;")
//
// Output of the first example:
//
//	select
//	    a,
//	    b
//	from
//	    t
//	where
//	    x in (1, 2, 3)
package format
