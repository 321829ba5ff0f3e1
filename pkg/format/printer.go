package format

import (
	"strings"

	"github.com/pseudomuto/sqlfmt/pkg/lexer"
)

// frame is one entry of the indent stack.
type frame int

const (
	// special frames are opened by top-level reserved words.
	special frame = iota
	// block frames are opened by parentheses that are not kept inline.
	block
)

// printer holds the state of a single Format call.
type printer struct {
	opts   Options
	unit   string
	source []lexer.Token
	tokens []lexer.Token

	buf []byte
	// indentStart is the offset right after the last newline written by the
	// printer and lineStart the offset right after its indentation. Trimming
	// never reaches back past lineStart.
	indentStart int
	lineStart   int

	indents       []frame
	pushSpecial   bool
	pushBlock     bool
	newline       bool
	inline        bool
	inlineCount   int
	inlineIndents bool
	limit         bool
}

func newPrinter(opts Options, source []lexer.Token) *printer {
	p := &printer{
		opts:   opts,
		unit:   strings.Repeat(" ", opts.IndentSize),
		source: source,
	}

	for _, tok := range source {
		if tok.Type != lexer.Whitespace {
			p.tokens = append(p.tokens, tok)
		}
	}

	return p
}

func (p *printer) run() {
	for i, tok := range p.tokens {
		text := tok.Text

		p.applyIndent()
		addedNewline := p.flushNewline()

		if tok.IsComment() {
			p.comment(tok, addedNewline)
			continue
		}

		if p.inline {
			if text == ")" {
				p.closeInline()
				continue
			}

			if text == "," && p.inlineCount >= p.opts.InlineMaxLength {
				p.inlineCount = 0
				p.newline = true
			}
			p.inlineCount += len(text)
		}

		switch {
		case text == "(":
			p.openParen(i)
		case text == ")":
			p.closeBlock()
			if !addedNewline {
				p.breakLine()
			}
		case tok.Type == lexer.ReservedTopLevel:
			p.pushSpecial = true
			if p.top() == special {
				p.pop()
			}
			if addedNewline {
				p.reindent()
			} else {
				p.breakLine()
			}
			p.newline = true

			text = collapse(text)
			if strings.EqualFold(text, "LIMIT") && !p.inline {
				p.limit = true
			}
		case p.limit && text != "," && tok.Type != lexer.Number:
			p.limit = false
		case text == "," && !p.inline:
			if p.limit {
				p.limit = false
			} else {
				p.newline = true
			}
		case tok.Type == lexer.ReservedNewline:
			if !addedNewline {
				p.breakLine()
			}
			text = collapse(text)
		}

		p.word(i, tok, text)
	}
}

// word writes a token followed by a space and fixes up the spacing around
// punctuation.
func (p *printer) word(i int, tok lexer.Token, text string) {
	if tok.Type == lexer.Boundary && i > 0 && p.tokens[i-1].Type == lexer.Boundary && p.touchesPrevious(tok) {
		p.trimSpaces()
	}

	switch text {
	case ".", ",", ";":
		p.trimSpaces()
	}

	p.write(text)
	p.write(" ")

	switch text {
	case "(", ".":
		p.trimSpaces()
	}

	if text == "-" && i > 0 && i+1 < len(p.tokens) && p.tokens[i+1].Type == lexer.Number {
		switch p.tokens[i-1].Type {
		case lexer.Quote, lexer.BacktickQuote, lexer.Word, lexer.Number:
		default:
			p.trimSpaces()
		}
	}
}

// comment writes a comment verbatim. Block comments always start on their own
// line.
func (p *printer) comment(tok lexer.Token, addedNewline bool) {
	text := tok.Text
	if tok.Type == lexer.BlockComment {
		if !addedNewline {
			p.breakLine()
		}
		text = p.indentLines(text)
	}

	p.write(text)
	p.newline = true
}

// indentLines moves the continuation lines of a block comment to the current
// indent level. Their common leading blanks are dropped first so relative
// indentation survives and formatting twice gives the same result.
func (p *printer) indentLines(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) == 1 {
		return text
	}

	common := -1
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if n := len(line) - len(strings.TrimLeft(line, " \t")); common < 0 || n < common {
			common = n
		}
	}

	indent := p.indent()
	for i, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			lines[i+1] = ""
			continue
		}
		lines[i+1] = indent + line[common:]
	}

	return strings.Join(lines, "\n")
}

// openParen decides whether the group opened by the "(" at i stays on one
// line. A group is inline when its ")" shows up within the lookahead window
// before any clause keyword, comment, ";" or nested "(".
func (p *printer) openParen(i int) {
	length := 0
	for j := 1; j <= p.opts.Lookahead && i+j < len(p.tokens); j++ {
		next := p.tokens[i+j]
		if next.Text == ")" {
			p.inline = true
			p.inlineCount = 0
			p.inlineIndents = false
			break
		}

		if next.Text == ";" || next.Text == "(" || next.IsComment() {
			break
		}
		if next.Type == lexer.ReservedTopLevel || next.Type == lexer.ReservedNewline {
			break
		}

		length += len(next.Text)
	}

	if p.inline && length > p.opts.InlineMaxLength {
		p.pushBlock = true
		p.inlineIndents = true
		p.newline = true
	}

	if p.touchesPrevious(p.tokens[i]) {
		p.trimSpaces()
	}

	if !p.inline {
		p.pushBlock = true
		p.newline = true
	}
}

func (p *printer) closeInline() {
	p.trimSpaces()

	if p.inlineIndents {
		if p.top() == block {
			p.pop()
		}
		p.breakLine()
	}

	p.inline = false
	p.write(") ")
}

// closeBlock pops the innermost block frame along with the special frames
// opened inside it.
func (p *printer) closeBlock() {
	p.trimSpaces()

	for len(p.indents) > 0 {
		if p.pop() != special {
			break
		}
	}
}

func (p *printer) applyIndent() {
	if p.pushSpecial {
		p.indents = append(p.indents, special)
		p.pushSpecial = false
	}
	if p.pushBlock {
		p.indents = append(p.indents, block)
		p.pushBlock = false
	}
}

func (p *printer) flushNewline() bool {
	if !p.newline {
		return false
	}

	p.breakLine()
	p.newline = false
	return true
}

// top returns the innermost frame, or -1 when the stack is empty.
func (p *printer) top() frame {
	if len(p.indents) == 0 {
		return -1
	}
	return p.indents[len(p.indents)-1]
}

func (p *printer) pop() frame {
	f := p.indents[len(p.indents)-1]
	p.indents = p.indents[:len(p.indents)-1]
	return f
}

func (p *printer) indent() string {
	return strings.Repeat(p.unit, len(p.indents))
}

// breakLine starts a new line at the current indent level.
func (p *printer) breakLine() {
	p.write("\n")
	p.indentStart = len(p.buf)
	p.write(p.indent())
	p.lineStart = len(p.buf)
}

// reindent replaces the indentation of the line just started with the
// current indent level.
func (p *printer) reindent() {
	p.buf = p.buf[:p.indentStart]
	p.write(p.indent())
	p.lineStart = len(p.buf)
}

func (p *printer) trimSpaces() {
	n := len(p.buf)
	for n > p.lineStart && p.buf[n-1] == ' ' {
		n--
	}
	p.buf = p.buf[:n]
}

func (p *printer) write(s string) {
	p.buf = append(p.buf, s...)
}

// touchesPrevious reports whether tok directly followed a non-whitespace
// token in the source.
func (p *printer) touchesPrevious(tok lexer.Token) bool {
	return tok.Index > 0 && p.source[tok.Index-1].Type != lexer.Whitespace
}

// String returns the finished output: trimmed, without trailing blanks on any
// line and terminated by a single newline.
func (p *printer) String() string {
	out := strings.Trim(string(p.buf), " \t\n\r\x00\x0b")

	lines := strings.Split(out, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}

	return strings.Join(lines, "\n") + "\n"
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
