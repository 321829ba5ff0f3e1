package lexer

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pseudomuto/sqlfmt/pkg/keywords"
)

var (
	variableName = regexp.MustCompile(`^@[a-zA-Z0-9._$]+`)

	std = New(keywords.Default())
)

// Tokenizer splits SQL text into tokens. Its tables are read-only after New
// returns, so one Tokenizer may be shared between goroutines.
type Tokenizer struct {
	topLevel   []string
	newline    []string
	reserved   []string
	boundaries []string
	functions  map[string]struct{}
}

// New builds a Tokenizer over the given tables. The tables are copied and
// ordered longest entry first.
func New(tables *keywords.Tables) *Tokenizer {
	t := &Tokenizer{
		topLevel:   upper(keywords.ByLength(tables.TopLevel)),
		newline:    upper(keywords.ByLength(tables.Newline)),
		reserved:   upper(keywords.ByLength(tables.Reserved)),
		boundaries: keywords.ByLength(tables.Boundaries),
		functions:  make(map[string]struct{}, len(tables.Functions)),
	}

	for _, fn := range tables.Functions {
		t.functions[strings.ToUpper(fn)] = struct{}{}
	}

	return t
}

// Tokenize splits sql into tokens using the built-in keyword tables.
func Tokenize(sql string) []Token {
	return std.Tokenize(sql)
}

// Tokenize splits sql into tokens. It never fails: text that matches no rule
// becomes a Word or Error token, and every token is at least one byte long,
// so concatenating the Text of the result always reproduces sql.
func (t *Tokenizer) Tokenize(sql string) []Token {
	s := &scan{Tokenizer: t}

	var tokens []Token
	for rest := sql; rest != ""; {
		typ, n := s.match(rest)

		tok := Token{Type: typ, Text: rest[:n], Index: len(tokens)}
		tokens = append(tokens, tok)

		if typ != Whitespace {
			s.afterDot = tok.IsBoundary(".")
		}

		rest = rest[n:]
	}

	return tokens
}

// scan holds the state of a single Tokenize call.
type scan struct {
	*Tokenizer

	// afterDot is set when the last non-whitespace token was the "." boundary,
	// which turns the next keyword into a plain word (t.from).
	afterDot bool
}

// match applies the lexical rules in priority order. The order is
// significant: "#" is both a comment marker and a boundary, "-" starts both a
// comment and an operator, and so on.
func (s *scan) match(rest string) (TokenType, int) {
	if n := whitespaceLen(rest); n > 0 {
		return Whitespace, n
	}

	if typ, n := commentLen(rest); n > 0 {
		return typ, n
	}

	if typ, n := quotedLen(rest); n > 0 {
		return typ, n
	}

	if n := variableLen(rest); n > 0 {
		return Variable, n
	}

	if n := s.numberLen(rest); n > 0 {
		return Number, n
	}

	if n := s.boundaryLen(rest); n > 0 {
		return Boundary, n
	}

	if !s.afterDot {
		if n := s.phraseLen(rest, s.topLevel, true); n > 0 {
			return ReservedTopLevel, n
		}
		if n := s.phraseLen(rest, s.newline, true); n > 0 {
			return ReservedNewline, n
		}
		if n := s.phraseLen(rest, s.reserved, false); n > 0 {
			return Reserved, n
		}
	}

	word := s.wordLen(rest)
	if word > 0 && word < len(rest) && rest[word] == '(' {
		if _, ok := s.functions[strings.ToUpper(rest[:word])]; ok {
			return Reserved, word
		}
	}

	if word > 0 {
		return Word, word
	}

	_, n := utf8.DecodeRuneInString(rest)
	return Error, n
}

func (s *scan) boundaryLen(rest string) int {
	for _, b := range s.boundaries {
		if strings.HasPrefix(rest, b) {
			return len(b)
		}
	}
	return 0
}

// terminates reports whether a keyword or number may end right before rest.
func (s *scan) terminates(rest string, allowQuote bool) bool {
	if rest == "" || isSpace(rest[0]) {
		return true
	}
	if allowQuote && isQuote(rest[0]) {
		return true
	}
	return s.boundaryLen(rest) > 0
}

// phraseLen returns the length of the longest entry of phrases that starts
// rest and is followed by a terminator. With flexible set, each space inside
// a phrase matches any run of whitespace.
func (s *scan) phraseLen(rest string, phrases []string, flexible bool) int {
	for _, p := range phrases {
		n := matchPhrase(rest, p, flexible)
		if n > 0 && s.terminates(rest[n:], false) {
			return n
		}
	}
	return 0
}

func (s *scan) numberLen(rest string) int {
	for _, n := range numberCandidates(rest) {
		if s.terminates(rest[n:], true) {
			return n
		}
	}
	return 0
}

// wordLen returns the length of the run of bytes before the next whitespace,
// quote character or boundary.
func (s *scan) wordLen(rest string) int {
	for i := 0; i < len(rest); i++ {
		if isSpace(rest[i]) || isQuote(rest[i]) || s.boundaryLen(rest[i:]) > 0 {
			return i
		}
	}
	return len(rest)
}

func matchPhrase(rest, phrase string, flexible bool) int {
	i := 0
	for j := 0; j < len(phrase); j++ {
		if i >= len(rest) {
			return 0
		}

		if phrase[j] == ' ' && flexible {
			if !isSpace(rest[i]) {
				return 0
			}
			for i < len(rest) && isSpace(rest[i]) {
				i++
			}
			continue
		}

		if toUpper(rest[i]) != phrase[j] {
			return 0
		}
		i++
	}
	return i
}

func whitespaceLen(rest string) int {
	n := 0
	for n < len(rest) && isSpace(rest[n]) {
		n++
	}
	return n
}

func commentLen(rest string) (TokenType, int) {
	switch {
	case rest[0] == '#', strings.HasPrefix(rest, "--"):
		if end := strings.IndexByte(rest, '\n'); end >= 0 {
			return Comment, end
		}
		return Comment, len(rest)
	case strings.HasPrefix(rest, "/*"):
		if end := strings.Index(rest[2:], "*/"); end >= 0 {
			return BlockComment, end + 4
		}
		return BlockComment, len(rest)
	}
	return Whitespace, 0
}

func quotedLen(rest string) (TokenType, int) {
	switch rest[0] {
	case '`':
		return BacktickQuote, repeatedQuoteLen(rest, '`', false)
	case '[':
		return BacktickQuote, bracketQuoteLen(rest)
	case '"', '\'':
		return Quote, repeatedQuoteLen(rest, rest[0], true)
	}
	return Whitespace, 0
}

// repeatedQuoteLen consumes consecutive quoted segments so that a doubled
// quote ('it''s') stays inside one token. With escapes set, a backslash
// protects the following byte. An unterminated segment runs to the end.
func repeatedQuoteLen(rest string, q byte, escapes bool) int {
	i := 0
	for i < len(rest) && rest[i] == q {
		i++
		closed := false
		for i < len(rest) {
			c := rest[i]
			i++
			if escapes && c == '\\' {
				if i < len(rest) {
					i++
				}
				continue
			}
			if c == q {
				closed = true
				break
			}
		}
		if !closed {
			return len(rest)
		}
	}
	return i
}

// bracketQuoteLen consumes a [identifier], where "]]" escapes a "]".
func bracketQuoteLen(rest string) int {
	end := strings.IndexByte(rest[1:], ']')
	if end < 0 {
		return len(rest)
	}

	i := end + 2
	for i < len(rest) && rest[i] == ']' {
		next := strings.IndexByte(rest[i+1:], ']')
		if next < 0 {
			return len(rest)
		}
		i += next + 2
	}
	return i
}

func variableLen(rest string) int {
	if rest[0] != '@' || len(rest) < 2 {
		return 0
	}

	if isQuote(rest[1]) {
		_, n := quotedLen(rest[1:])
		return n + 1
	}

	return len(variableName.FindString(rest))
}

// numberCandidates lists possible numeric literal lengths at the start of
// rest, most preferred first.
func numberCandidates(rest string) []int {
	var candidates []int

	digits := runLen(rest, isDigit)
	if digits > 0 {
		if digits < len(rest) && rest[digits] == '.' {
			if frac := runLen(rest[digits+1:], isDigit); frac > 0 {
				candidates = append(candidates, digits+1+frac)
			}
		}
		candidates = append(candidates, digits)
	}

	if strings.HasPrefix(rest, "0x") {
		if n := runLen(rest[2:], isHexDigit); n > 0 {
			candidates = append(candidates, n+2)
		}
	}

	if strings.HasPrefix(rest, "0b") {
		if n := runLen(rest[2:], isBinaryDigit); n > 0 {
			candidates = append(candidates, n+2)
		}
	}

	return candidates
}

func runLen(s string, fn func(byte) bool) int {
	n := 0
	for n < len(s) && fn(s[n]) {
		n++
	}
	return n
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isQuote(c byte) bool {
	return c == '"' || c == '\'' || c == '`'
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isBinaryDigit(c byte) bool { return c == '0' || c == '1' }

func isHexDigit(c byte) bool {
	return isDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func toUpper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func upper(words []string) []string {
	for i, w := range words {
		words[i] = strings.ToUpper(w)
	}
	return words
}
