// Package tdl re-exports the engine's public API at the module root, so
// host applications depend on "tdl" rather than reaching into internal/.
package tdl

import (
	"tdl/internal/ast"
	"tdl/internal/diag"
	"tdl/internal/engine"
	"tdl/internal/token"
)

// Result is the outcome of Analyze: the parsed AST plus every diagnostic
// the pipeline produced, parse diagnostics first, then validator
// diagnostics.
type Result = engine.Result

// Document is the root AST node Result.AST points to.
type Document = ast.Document

// Diagnostic is one entry of Result.Diagnostics.
type Diagnostic = diag.Diagnostic

// Analyze runs the full lex/parse/validate pipeline over source and
// returns its AST and diagnostics. It never panics and always returns a
// Document, possibly with zero networks.
func Analyze(source string) Result {
	return engine.Analyze(source)
}

// Tokenize returns the full token stream, including trivia, for editor
// integrations that want highlighting or an outline without a full
// Analyze call.
func Tokenize(source string) []token.Token {
	return engine.Tokenize(source)
}
