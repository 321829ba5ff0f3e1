// Package lexer splits SQL text into typed tokens.
//
// The lexer is not a SQL parser. It classifies text into whitespace, comments,
// quoted literals, variables, numbers, boundary symbols, reserved words and
// plain words using longest-match rules over the tables in package keywords.
// Anything it does not recognize becomes a Word, so every input produces a
// token stream and the concatenated token text always equals the input.
//
// Rules are tried in this order at each position:
//
//   - whitespace
//   - comments (#, --, /* */)
//   - quoted literals ('', "", “, [])
//   - variables (@name, @'name')
//   - numbers (followed by whitespace, a quote, a boundary or the end)
//   - boundary symbols
//   - reserved words, unless the previous significant token was "."
//   - function names directly followed by "("
//   - words
//
// Basic usage:
//
//	for _, tok := range lexer.Tokenize("SELECT a FROM t") {
//		fmt.Println(tok.Type, tok.Text)
//	}
//
// Definition adapts the tokenizer to github.com/alecthomas/participle/v2 so
// that participle grammars can be written against the same token stream.
package lexer
