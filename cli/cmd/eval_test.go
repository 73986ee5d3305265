package cmd

import (
	"errors"
	"testing"

	"github.com/ardnew/vcalc/lang"
)

func TestEval(t *testing.T) {
	dir := t.TempDir()
	lib := writeScript(t, dir, "lib.vc", "half(x) = x / 2\nk = 10\n")

	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr error
	}{
		{"single", []string{"eval", "1 + 2"}, "3\n", nil},
		{"shared env", []string{"eval", "a = 4", "a * a"}, "4\n16\n", nil},
		{"prelude", []string{"eval", "-f", lib, "half(k)"}, "5\n", nil},
		{"vector", []string{"eval", "[1 2] + [10 20 30]"}, "[11, 22]\n", nil},
		{"builtin", []string{"eval", "sum([1 2 3])"}, "6\n", nil},
		{"undefined", []string{"eval", "q"}, "", lang.ErrVariable},
		{"bad prelude", []string{"eval", "-f", "missing.vc", "1"}, "", ErrLoadScript},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := execute(t, "", tt.args...)

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
