package repl

import (
	"slices"
	"strings"
	"testing"

	"github.com/ardnew/vcalc/lang"
)

func TestWordBounds(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		cursor    int
		wantWord  string
		wantStart int
		wantEnd   int
	}{
		{"simple", "foo", 3, "foo", 0, 3},
		{"after_plus", "a + fo", 6, "fo", 4, 6},
		{"after_call_paren", "sq(fo", 5, "fo", 3, 5},
		{"in_vector", "[1 fo", 5, "fo", 3, 5},
		{"after_hash", "v#fo", 4, "fo", 2, 4},
		{"after_minus", "a-fo", 4, "fo", 2, 4},
		{"after_comparison", "a >= fo", 7, "fo", 5, 7},
		{"empty_at_boundary", "a + ", 4, "", 4, 4},
		{"mid_word", "foobar", 3, "foobar", 0, 6},
		{"at_start", "foo", 0, "foo", 0, 3},
		{"underscore", "x_1", 3, "x_1", 0, 3},
		{"cursor_past_end", "ab", 10, "ab", 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, start, end := wordBounds(tt.input, tt.cursor)
			if word != tt.wantWord || start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("wordBounds(%q, %d) = (%q, %d, %d), want (%q, %d, %d)",
					tt.input, tt.cursor, word, start, end,
					tt.wantWord, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestEvalCandidates(t *testing.T) {
	env := lang.NewEnv()
	env.Set("velocity", lang.Int(3))
	env.Set("abs", lang.Int(1))

	got := evalCandidates(env)

	if got[0] != "velocity" || got[1] != "abs" {
		t.Errorf("bindings must come first in insertion order, got %v", got[:2])
	}

	if n := countOf(got, "abs"); n != 1 {
		t.Errorf("shadowed builtin listed %d times", n)
	}

	for _, want := range []string{"sqrt", "pi", "inf", "is"} {
		if !slices.Contains(got, want) {
			t.Errorf("candidates missing %q", want)
		}
	}
}

func countOf(s []string, v string) int {
	n := 0

	for _, e := range s {
		if e == v {
			n++
		}
	}

	return n
}

func TestComputeMatches(t *testing.T) {
	env := lang.NewEnv()
	env.Set("distance", lang.Float(1.5))

	m := newModel(t.Context(), Config{Env: env}, NewHistory(""))
	m.input.SetValue("1 + dist")

	matches, start, end := m.computeMatches()
	if start != 4 || end != 8 {
		t.Errorf("word bounds = (%d, %d), want (4, 8)", start, end)
	}

	if len(matches) == 0 || matches[0].Str != "distance" {
		t.Fatalf("best match = %v, want distance", matches)
	}

	m = m.switchToMode(modeCtrl)
	m.input.SetValue("qu")

	matches, _, _ = m.computeMatches()
	if len(matches) != 1 || matches[0].Str != "quit" {
		t.Errorf("control matches = %v, want [quit]", matches)
	}
}

func TestCycle(t *testing.T) {
	env := lang.NewEnv()
	env.Set("alpha", lang.Int(1))
	env.Set("alps", lang.Int(2))

	m := newModel(t.Context(), Config{Env: env}, NewHistory(""))
	m.input.SetValue("al")
	refreshMatches(&m, false)

	if len(m.matches) < 2 {
		t.Fatalf("expected several matches, got %v", m.matches)
	}

	m = m.cycle(1)
	first := m.input.Value()

	m = m.cycle(1)
	if m.input.Value() == first {
		t.Errorf("second tab did not advance from %q", first)
	}

	m = m.cycle(-1)
	if m.input.Value() != first {
		t.Errorf("shift-tab = %q, want %q", m.input.Value(), first)
	}
}

func TestIsCallable(t *testing.T) {
	env := lang.NewEnv()
	env.Set("sq", &lang.Function{Param: "x"})
	env.Set("n", lang.Int(2))
	env.Set("sum", lang.Int(0))

	m := newModel(t.Context(), Config{Env: env}, NewHistory(""))

	for name, want := range map[string]bool{
		"sq":   true,
		"n":    false,
		"sqrt": true,
		"sum":  false,
		"nope": false,
	} {
		if got := m.isCallable(name); got != want {
			t.Errorf("isCallable(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestPreview(t *testing.T) {
	if got := preview(lang.Int(7)); got != "7" {
		t.Errorf("preview(7) = %q", got)
	}

	long := make(lang.Vector, 30)
	for i := range long {
		long[i] = lang.Int(i)
	}

	got := preview(long)
	if len(got) != previewWidth {
		t.Errorf("len(preview) = %d, want %d", len(got), previewWidth)
	}
}

func TestBuiltinSummary(t *testing.T) {
	got := builtinSummary()

	if !strings.HasPrefix(got, "abs(x) ") || !strings.Contains(got, " sum(v) ") {
		t.Errorf("builtinSummary() = %q", got)
	}

	if !strings.Contains(helpMessage(), got) {
		t.Error("help does not list the builtins")
	}
}
