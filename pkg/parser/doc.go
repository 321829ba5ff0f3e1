// Package parser splits SQL scripts into statements.
//
// The grammar is built with github.com/alecthomas/participle/v2 on top of the
// token stream from package lexer, so ";" inside quoted strings, quoted
// identifiers and comments never ends a statement. Statements are not
// analyzed any further: each one keeps its exact source text, including
// leading whitespace, comments and the terminating ";".
//
// Basic usage:
//
//	script, err := parser.ParseString(`
//	    SELECT 'a;b' FROM t; -- first
//	    UPDATE t SET a = 1;
//	`)
//
//	for _, stmt := range script.Statements() {
//		fmt.Print(format.Format(stmt.String()))
//	}
//
// Script.Statements skips statements made of whitespace only, such as the
// text after the last ";".
package parser
