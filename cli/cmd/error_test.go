package cmd

import (
	"errors"
	"io/fs"
	"log/slog"
	"testing"

	"github.com/ardnew/vcalc/lang"
)

func TestError(t *testing.T) {
	err := ErrLoadScript.With(slog.String("file", "a.vc")).Wrap(fs.ErrNotExist)

	if want := "load script: file does not exist"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	if !errors.Is(err, ErrLoadScript) || errors.Is(err, ErrEvaluate) {
		t.Error("sentinel matching is wrong")
	}

	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("cause is not reachable")
	}

	if len(ErrLoadScript.Attrs()) != 0 {
		t.Error("With modified the sentinel")
	}

	v := err.LogValue()
	if v.Kind() != slog.KindGroup || len(v.Group()) != 3 {
		t.Errorf("LogValue() = %v", v)
	}
}

func TestError_Diagnostic(t *testing.T) {
	_, cause := lang.Run(t.Context(), "nope", "<arg>", nil)

	err := ErrEvaluate.With(slog.String("file", "<arg>")).Wrap(cause)

	var diag *lang.Error
	if !errors.As(err, &diag) || !errors.Is(err, lang.ErrVariable) {
		t.Fatalf("diagnostic not reachable from %v", err)
	}

	if want := "evaluate: " + diag.Error(); err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	if NewError("").Wrap(cause).Error() != diag.Error() {
		t.Error("empty step prefixes the cause")
	}

	// Copies never share attribute storage.
	a := err.With(slog.Int("a", 1))
	b := err.With(slog.Int("b", 2))

	if a.Attrs()[1].Key != "a" || b.Attrs()[1].Key != "b" {
		t.Errorf("With aliased attributes: %v, %v", a.Attrs(), b.Attrs())
	}
}
