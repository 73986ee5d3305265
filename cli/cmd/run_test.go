package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/ardnew/vcalc/lang"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	prog := writeScript(t, dir, "prog.vc", "v = [1 2 3]\nsq(x) = x * x\nsq(v) # 2\n")
	expr := writeScript(t, dir, "expr.vc", "2 ^ 10\n")
	empty := writeScript(t, dir, "empty.vc", "\n\n")
	multi := writeScript(t, dir, "multi.vc", "1\n2\n")

	tests := []struct {
		name    string
		stdin   string
		args    []string
		want    string
		wantErr error
	}{
		{"script", "", []string{"run", prog}, "9\n", nil},
		{"fresh env per file", "", []string{"run", prog, expr}, "9\n1024\n", nil},
		{"expr flag", "", []string{"run", "-e", expr}, "1024\n", nil},
		{"empty script prints nothing", "", []string{"run", empty}, "", nil},
		{"expr flag rejects programs", "", []string{"run", "--expr", multi}, "", lang.ErrExpectToken},
		{"stdin", "4 % 3\n", []string{"run", "-"}, "1\n", nil},
		{"search path", "", []string{"run", "-I", dir, "expr"}, "1024\n", nil},
		{"missing", "", []string{"run", "nope.vc"}, "", ErrLoadScript},
		{"runtime error", "y\n", []string{"run", "-"}, "", ErrEvaluate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := execute(t, tt.stdin, tt.args...)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if res.out != tt.want {
				t.Errorf("output = %q, want %q", res.out, tt.want)
			}
		})
	}
}

func TestRun_DiagnosticLabel(t *testing.T) {
	_, err := execute(t, "1 +\n", "run", "-")

	var diag *lang.Error
	if !errors.As(err, &diag) {
		t.Fatalf("error %v does not wrap a diagnostic", err)
	}

	if !strings.Contains(diag.Error(), "- <stdin> <ln: 0") {
		t.Errorf("diagnostic = %q", diag.Error())
	}
}
