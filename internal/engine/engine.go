// Package engine wires the lexer, parser, and validator into the single
// public entry point the rest of the module (and the CLI) calls: Analyze.
// It owns no state between calls; every call builds and returns its own
// output graph, which is what makes concurrent callers safe over the
// immutable specdb tables (spec §5).
package engine

import (
	"tdl/internal/ast"
	"tdl/internal/diag"
	"tdl/internal/lexer"
	"tdl/internal/parser"
	"tdl/internal/source"
	"tdl/internal/token"
	"tdl/internal/validator"
)

// Result is the engine's full output for one source text.
type Result struct {
	AST         *ast.Document
	Diagnostics []diag.Diagnostic
	Comments    []token.CommentTrivia
}

// Analyze runs the full pipeline: lex, parse (with error recovery), then
// validate. Diagnostics are parse diagnostics followed by validator
// diagnostics, concatenated rather than merged or re-sorted, per spec
// §4.5. The AST is always present, even for empty or malformed input.
func Analyze(source string) Result {
	parsed := parser.Parse(source)
	vbag := validator.Validate(parsed.Document)

	all := diag.NewBag()
	all.Append(parsed.Bag)
	all.Append(vbag)

	return Result{
		AST:         parsed.Document,
		Diagnostics: all.Items(),
		Comments:    parsed.Comments,
	}
}

// Tokenize returns the full token stream (including trivia) for editor
// integrations that need to drive syntax highlighting or an outline view
// independent of a full Analyze call.
func Tokenize(text string) []token.Token {
	f := source.NewFile("", text)
	return lexer.New(f).All()
}
