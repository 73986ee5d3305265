package lang

import (
	"errors"
	"testing"
)

func parseString(t *testing.T, source string) (Spanned, error) {
	t.Helper()

	lexemes, err := Lex(source, "test")
	if err != nil {
		t.Fatalf("Lex(%q): %v", source, err)
	}

	return Parse(lexemes, "test")
}

func TestParse_Structure(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string // canonical rendering
		node  string // name of the root node
	}{
		{"int", "42", "42", "int"},
		{"float", "4.50", "4.5", "float"},
		{"group dropped", "((x))", "x", "variable"},
		{"precedence", "1 + 2 * 3", "1 + 2 * 3", "binary operation"},
		{"grouping kept", "(1 + 2) * 3", "(1 + 2) * 3", "binary operation"},
		{"left associative", "1 - 2 - 3", "1 - 2 - 3", "binary operation"},
		{"right grouping", "1 - (2 - 3)", "1 - (2 - 3)", "binary operation"},
		{"power left associative", "2 ^ 3 ^ 2", "2 ^ 3 ^ 2", "binary operation"},
		{"power right grouping", "2^(3^2)", "2 ^ (3 ^ 2)", "binary operation"},
		{"unary over power", "-2 ^ 2", "-2 ^ 2", "binary operation"},
		{"nested unary", "--x", "--x", "unary operation"},
		{"hash chain", "v # 0 # 1", "v # 0 # 1", "binary operation"},
		{"hash over unary", "-v # 0", "-v # 0", "unary operation"},
		{"comparison", "a + 1 <= b", "a + 1 <= b", "binary operation"},
		{"type test", "x is 1.5", "x is 1.5", "binary operation"},
		{"assignment", "x = 1 + 2", "x = 1 + 2", "assignment"},
		{"assignment right associative", "x = y = 3", "x = y = 3", "assignment"},
		{"equality", "1 = 2", "1 = 2", "binary operation"},
		{"grouped target compares", "(x) = 1", "(x) = 1", "binary operation"},
		{"grouped call compares", "(f(x)) = 1", "(f(x)) = 1", "binary operation"},
		{"grouped callee assigns", "(f)(x) = 1", "f(x) = 1", "assignment"},
		{"function definition", "f(x) = x ^ 2", "f(x) = x ^ 2", "assignment"},
		{"call", "f(1 + 2)", "f(1 + 2)", "call"},
		{"curried call", "f(1)(2)", "f(1)(2)", "call"},
		{"empty vector", "[]", "[]", "vector"},
		{"vector", "[1 2.5 x]", "[1 2.5 x]", "vector"},
		{"vector subtraction", "[1 -2]", "[1 - 2]", "vector"},
		{"vector negative item", "[1 (-2)]", "[1 (-2)]", "vector"},
		{"vector separated call", "[f (1)]", "[f 1]", "vector"},
		{"vector newlines", "[1\n2\n]", "[1 2]", "vector"},
		{"keywords", "pi * inf", "pi * inf", "binary operation"},
		{"trailing newlines", "1\n\n", "1", "int"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := parseString(t, tt.input)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}

			if got := expr.String(); got != tt.want {
				t.Errorf("Parse(%q).String() = %q, want %q", tt.input, got, tt.want)
			}

			if got := expr.Node.Name(); got != tt.node {
				t.Errorf("Parse(%q) root = %s, want %s", tt.input, got, tt.node)
			}
		})
	}
}

func TestParse_Spans(t *testing.T) {
	tests := []struct {
		input      string
		start, end int
	}{
		{"1 + 2", 0, 5},
		{"(1 + 2)", 0, 7},
		{"  -x", 2, 4},
		{"[1 2 3]", 0, 7},
		{"f(x) = x * 2", 0, 12},
		{"v # 10", 0, 6},
	}

	for _, tt := range tests {
		expr, err := parseString(t, tt.input)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.input, err)
		}

		if expr.Pos.Start != tt.start || expr.Pos.End != tt.end {
			t.Errorf("Parse(%q) span = [%d, %d), want [%d, %d)",
				tt.input, expr.Pos.Start, expr.Pos.End, tt.start, tt.end)
		}
	}
}

func TestParse_MultilineSpan(t *testing.T) {
	expr, err := parseString(t, "[1\n 2]")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if expr.Pos.LineStart != 0 || expr.Pos.LineEnd != 1 {
		t.Errorf("lines = %d..%d, want 0..1", expr.Pos.LineStart, expr.Pos.LineEnd)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		input string
		kind  error
		want  string
	}{
		{"", ErrUnexpectedToken, "ERROR: unexpected end of file - test <ln: 0, column: 0>"},
		{"* 3", ErrUnexpectedToken, "ERROR: unexpected '*' - test <ln: 0, column: 0>"},
		{"1 +", ErrUnexpectedToken, "ERROR: unexpected end of file - test <ln: 0, column: 3>"},
		{"(1 + 2", ErrExpectToken, "ERROR: expected ')' got end of file - test <ln: 0, column: 6>"},
		{"[1 2", ErrExpectToken, "ERROR: expected ']' got end of file - test <ln: 0, column: 4>"},
		{"f(1", ErrExpectToken, "ERROR: expected ')' got end of file - test <ln: 0, column: 3>"},
		{"1 2", ErrExpectToken, "ERROR: expected end of line got int - test <ln: 0, column: 2>"},
		{"1\n2", ErrExpectToken, "ERROR: expected end of file got int - test <ln: 1, column: 0>"},
		{"{1}", ErrUnexpectedToken, "ERROR: unexpected '{' - test <ln: 0, column: 0>"},
		{"x = )", ErrUnexpectedToken, "ERROR: unexpected ')' - test <ln: 0, column: 4>"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := parseString(t, tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded", tt.input)
			}

			if !errors.Is(err, tt.kind) {
				t.Errorf("error %v is not %v", err, tt.kind)
			}

			if err.Error() != tt.want {
				t.Errorf("error = %q, want %q", err.Error(), tt.want)
			}
		})
	}
}

func TestParse_WithoutEOF(t *testing.T) {
	lexemes, err := Lex("1 + 2", "test")
	if err != nil {
		t.Fatal(err)
	}

	expr, err := Parse(lexemes[:len(lexemes)-1], "test")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if got := expr.String(); got != "1 + 2" {
		t.Errorf("String() = %q", got)
	}

	if _, err := Parse(nil, "test"); !errors.Is(err, ErrUnexpectedToken) {
		t.Errorf("Parse(nil) error = %v, want ErrUnexpectedToken", err)
	}
}

func TestParse_WithoutEOF_AfterNewline(t *testing.T) {
	lexemes, err := Lex("[1\n\n", "test")
	if err != nil {
		t.Fatal(err)
	}

	// The end of file follows the newline run at the start of line 2.
	_, err = Parse(lexemes[:len(lexemes)-1], "test")

	want := "ERROR: expected ']' got end of file - test <ln: 2, column: 0>"
	if err == nil || err.Error() != want {
		t.Errorf("error = %v, want %q", err, want)
	}
}

func TestParseProgram(t *testing.T) {
	lexemes, err := Lex("\nx = 1\n\nsq(y) = y * y\nsq(x + 1)\n", "prog")
	if err != nil {
		t.Fatal(err)
	}

	prog, err := ParseProgram(lexemes, "prog")
	if err != nil {
		t.Fatalf("ParseProgram: %v", err)
	}

	want := []string{"x = 1", "sq(y) = y * y", "sq(x + 1)"}
	if len(prog.Statements) != len(want) {
		t.Fatalf("statements = %d, want %d", len(prog.Statements), len(want))
	}

	for i, s := range prog.Statements {
		if s.String() != want[i] {
			t.Errorf("statement %d = %q, want %q", i, s.String(), want[i])
		}
	}

	if prog.Statements[2].Pos.LineStart != 4 {
		t.Errorf("statement 2 line = %d, want 4", prog.Statements[2].Pos.LineStart)
	}

	if prog.Label != "prog" {
		t.Errorf("Label = %q", prog.Label)
	}
}

func TestParseProgram_Errors(t *testing.T) {
	for _, input := range []string{"x = 1 2", "x = 1\n(", "x = [1\n2"} {
		lexemes, err := Lex(input, "prog")
		if err != nil {
			t.Fatal(err)
		}

		if _, err := ParseProgram(lexemes, "prog"); err == nil {
			t.Errorf("ParseProgram(%q) succeeded", input)
		}
	}
}

func TestIdent(t *testing.T) {
	expr, err := parseString(t, "speed")
	if err != nil {
		t.Fatal(err)
	}

	id, ok := expr.Node.(Ident)
	if !ok || id.Var != "speed" {
		t.Fatalf("node = %#v, want Ident speed", expr.Node)
	}

	if id.Name() != "variable" || id.String() != "speed" {
		t.Errorf("Name() = %q, String() = %q", id.Name(), id.String())
	}

	if m := expr.ToMap(); m["node"] != "variable" || m["name"] != "speed" {
		t.Errorf("ToMap() = %v", m)
	}
}
