package lexer

import (
	"testing"

	"tdl/internal/source"
	"tdl/internal/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func significant(toks []token.Token) []token.Token {
	var out []token.Token
	for _, t := range toks {
		if !t.Kind.IsTrivia() {
			out = append(out, t)
		}
	}
	return out
}

func TestLexerEmpty(t *testing.T) {
	toks := New(source.NewFile("t", "")).All()
	if len(toks) != 1 || toks[0].Kind != token.EOF {
		t.Fatalf("expected single EOF token, got %v", kinds(toks))
	}
}

func TestLexerKeywordsAndIdentifiers(t *testing.T) {
	toks := significant(New(source.NewFile("t", `network terminal NetControlStation_1`)).All())
	want := []token.Kind{token.Keyword, token.Keyword, token.Identifier, token.EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %v, want kinds %v", kinds(toks), want)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %v want %v", i, toks[i].Kind, k)
		}
	}
}

func TestLexerBooleans(t *testing.T) {
	toks := significant(New(source.NewFile("t", `true false`)).All())
	if toks[0].Kind != token.Boolean || toks[1].Kind != token.Boolean {
		t.Fatalf("expected two booleans, got %v", kinds(toks))
	}
}

func TestLexerNumberPercentDuration(t *testing.T) {
	toks := significant(New(source.NewFile("t", `60% 1500ms 3s 2min 1h 42 3.14`)).All())
	want := []token.Kind{
		token.Percent, token.Duration, token.Duration, token.Duration,
		token.Duration, token.Number, token.Number, token.EOF,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %v, want %v", kinds(toks), want)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d (%q): got %v want %v", i, toks[i].Text, toks[i].Kind, k)
		}
	}
}

func TestLexerHexNumber(t *testing.T) {
	toks := significant(New(source.NewFile("t", `0x1A 0X02`)).All())
	if toks[0].Kind != token.HexNumber || toks[0].Text != "0x1A" {
		t.Fatalf("got %v %q", toks[0].Kind, toks[0].Text)
	}
	if toks[1].Kind != token.HexNumber || toks[1].Text != "0X02" {
		t.Fatalf("got %v %q", toks[1].Kind, toks[1].Text)
	}
}

func TestLexerJMessage(t *testing.T) {
	toks := significant(New(source.NewFile("t", `J3/2 J7`)).All())
	if toks[0].Kind != token.JMessage || toks[0].Text != "J3/2" {
		t.Fatalf("got %v %q", toks[0].Kind, toks[0].Text)
	}
	if toks[1].Kind != token.JMessage || toks[1].Text != "J7" {
		t.Fatalf("got %v %q", toks[1].Kind, toks[1].Text)
	}
}

func TestLexerStringUnterminated(t *testing.T) {
	toks := significant(New(source.NewFile("t", "\"abc\ndef")).All())
	if toks[0].Kind != token.String || toks[0].Text != `"abc` {
		t.Fatalf("got %v %q", toks[0].Kind, toks[0].Text)
	}
	// the newline must not be consumed by the string scan
	if toks[1].Kind != token.Identifier {
		t.Fatalf("expected lexer to resume after newline, got %v", toks[1].Kind)
	}
}

func TestLexerComment(t *testing.T) {
	all := New(source.NewFile("t", "-- a comment\nnetwork")).All()
	if all[0].Kind != token.Comment || all[0].Text != "-- a comment" {
		t.Fatalf("got %v %q", all[0].Kind, all[0].Text)
	}
}

func TestLexerOperators(t *testing.T) {
	toks := significant(New(source.NewFile("t", `>= <= > < == != ! =`)).All())
	want := []token.Kind{
		token.Ge, token.Le, token.Gt, token.Lt, token.EqEq, token.NotEq,
		token.Unknown, token.Unknown, token.EOF,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %v want %v", kinds(toks), want)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %v want %v", i, toks[i].Kind, k)
		}
	}
}

func TestLexerUnknownSingleByte(t *testing.T) {
	toks := significant(New(source.NewFile("t", `@#`)).All())
	if toks[0].Kind != token.Unknown || toks[0].Text != "@" {
		t.Fatalf("got %v %q", toks[0].Kind, toks[0].Text)
	}
	if toks[1].Kind != token.Unknown || toks[1].Text != "#" {
		t.Fatalf("got %v %q", toks[1].Kind, toks[1].Text)
	}
}
