package format

import (
	"strings"

	"github.com/pseudomuto/sqlfmt/pkg/lexer"
	"github.com/pseudomuto/sqlfmt/pkg/parser"
)

// Options controls formatting behavior
type Options struct {
	// IndentSize specifies the number of spaces for each indent level
	IndentSize int
	// InlineMaxLength is the number of characters a parenthesized group may
	// hold before it is broken over several lines
	InlineMaxLength int
	// Lookahead is the number of tokens scanned after "(" when looking for
	// the matching ")" of an inline group
	Lookahead int
}

// Defaults are the standard formatting options
var Defaults = Options{
	IndentSize:      4,
	InlineMaxLength: 30,
	Lookahead:       250,
}

// Formatter pretty-prints SQL with configurable options. A Formatter holds no
// per-call state and may be used from several goroutines.
type Formatter struct {
	options   Options
	tokenizer *lexer.Tokenizer
}

// New creates a new Formatter. Zero or negative option values fall back to
// the matching field of Defaults.
func New(options Options) *Formatter {
	if options.IndentSize <= 0 {
		options.IndentSize = Defaults.IndentSize
	}
	if options.InlineMaxLength <= 0 {
		options.InlineMaxLength = Defaults.InlineMaxLength
	}
	if options.Lookahead <= 0 {
		options.Lookahead = Defaults.Lookahead
	}

	return &Formatter{options: options}
}

// NewWithTokenizer is like New but lexes input with t instead of the
// built-in keyword tables.
func NewWithTokenizer(options Options, t *lexer.Tokenizer) *Formatter {
	f := New(options)
	f.tokenizer = t
	return f
}

// Options returns the effective options of the formatter.
func (f *Formatter) Options() Options {
	return f.options
}

// Format pretty-prints sql. It accepts any input, valid SQL or not, and the
// result always ends with a single newline.
func (f *Formatter) Format(sql string) string {
	var tokens []lexer.Token
	if f.tokenizer != nil {
		tokens = f.tokenizer.Tokenize(sql)
	} else {
		tokens = lexer.Tokenize(sql)
	}

	p := newPrinter(f.options, tokens)
	p.run()
	return p.String()
}

// Script splits sql into statements, formats each one on its own and joins
// the results with a blank line. Statements holding nothing but whitespace
// are dropped.
func (f *Formatter) Script(sql string) (string, error) {
	script, err := parser.ParseString(sql)
	if err != nil {
		return "", err
	}

	var formatted []string
	for _, stmt := range script.Statements() {
		formatted = append(formatted, strings.TrimSuffix(f.Format(stmt.String()), "\n"))
	}

	return strings.Join(formatted, "\n\n") + "\n", nil
}

// Format pretty-prints sql using Defaults.
func Format(sql string) string {
	return New(Defaults).Format(sql)
}

// Script formats each statement of sql using Defaults.
func Script(sql string) (string, error) {
	return New(Defaults).Script(sql)
}
