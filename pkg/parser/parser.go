package parser

import (
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	plexer "github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"github.com/pseudomuto/sqlfmt/pkg/lexer"
)

// parser splits a script on ";" boundaries. Whitespace and comments are not
// elided so every statement keeps its exact source text.
var parser = participle.MustBuild[Script](
	participle.Lexer(lexer.Definition()),
)

type (
	// Script is a sequence of statements. Concatenating the statements
	// reproduces the source text.
	Script struct {
		Stmts []*Statement `parser:"@@*"`
	}

	// Statement is a run of tokens up to and including the next ";". The last
	// statement of a script may have no terminator.
	Statement struct {
		Pos plexer.Position

		Body []string `parser:"( @~';' )+ @';'? | @';'"`
	}
)

// Parse splits the SQL read from reader into statements.
//
// Example usage:
//
//	file, err := os.Open("queries.sql")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer file.Close()
//
//	script, err := parser.Parse(file)
//	if err != nil {
//		log.Fatalf("Parse error: %v", err)
//	}
//
//	for _, stmt := range script.Statements() {
//		fmt.Println(stmt.Pos.Line, stmt.String())
//	}
//
// Any text is accepted. An error is only returned when reader fails.
func Parse(reader io.Reader) (*Script, error) {
	script, err := parser.Parse("", reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse SQL")
	}

	return script, nil
}

// ParseString splits sql into statements.
func ParseString(sql string) (*Script, error) {
	script, err := parser.ParseString("", sql)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse SQL")
	}

	return script, nil
}

// Statements returns the statements holding more than whitespace, in source
// order. Comments count as content.
func (s *Script) Statements() []*Statement {
	var stmts []*Statement
	for _, stmt := range s.Stmts {
		if !stmt.IsBlank() {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

func (s *Script) String() string {
	var sb strings.Builder
	for _, stmt := range s.Stmts {
		sb.WriteString(stmt.String())
	}
	return sb.String()
}

// String returns the exact source text of the statement, including its
// terminating ";" if present.
func (s *Statement) String() string {
	return strings.Join(s.Body, "")
}

// IsBlank reports whether the statement contains only whitespace.
func (s *Statement) IsBlank() bool {
	return strings.TrimSpace(s.String()) == ""
}

// Terminated reports whether the statement ends with ";".
func (s *Statement) Terminated() bool {
	return len(s.Body) > 0 && s.Body[len(s.Body)-1] == ";"
}
