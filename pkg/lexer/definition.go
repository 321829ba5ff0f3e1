package lexer

import (
	"io"

	plexer "github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// Definition exposes the tokenizer as a participle lexer definition. Symbol
// names are the TokenType names, so grammars can refer to @Word, @Number,
// @ReservedTopLevel and so on.
func Definition() plexer.Definition {
	return &definition{tokenizer: std}
}

// DefinitionFor is like Definition but lexes with t.
func DefinitionFor(t *Tokenizer) plexer.Definition {
	return &definition{tokenizer: t}
}

// SymbolType maps a TokenType to the participle token type used by the
// definition.
func SymbolType(t TokenType) plexer.TokenType {
	return plexer.EOF - 1 - plexer.TokenType(t)
}

type definition struct {
	tokenizer *Tokenizer
}

func (d *definition) Symbols() map[string]plexer.TokenType {
	symbols := map[string]plexer.TokenType{"EOF": plexer.EOF}
	for _, t := range TokenTypes() {
		symbols[t.String()] = SymbolType(t)
	}
	return symbols
}

func (d *definition) Lex(filename string, r io.Reader) (plexer.Lexer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read SQL from %q", filename)
	}
	return d.LexString(filename, string(data))
}

func (d *definition) LexString(filename string, input string) (plexer.Lexer, error) {
	return &stream{
		tokens: d.tokenizer.Tokenize(input),
		pos:    plexer.Position{Filename: filename, Line: 1, Column: 1},
	}, nil
}

type stream struct {
	tokens []Token
	next   int
	pos    plexer.Position
}

func (s *stream) Next() (plexer.Token, error) {
	if s.next >= len(s.tokens) {
		return plexer.EOFToken(s.pos), nil
	}

	tok := s.tokens[s.next]
	s.next++

	out := plexer.Token{Type: SymbolType(tok.Type), Value: tok.Text, Pos: s.pos}
	advance(&s.pos, tok.Text)
	return out, nil
}

func advance(pos *plexer.Position, text string) {
	pos.Offset += len(text)
	for _, r := range text {
		if r == '\n' {
			pos.Line++
			pos.Column = 1
			continue
		}
		pos.Column++
	}
}
