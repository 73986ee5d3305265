package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/vcalc/lang"
	"github.com/ardnew/vcalc/log"
)

// Run evaluates script files, each in a fresh environment, and prints the
// value of each.
type Run struct {
	Expr  bool     `help:"Require each file to hold a single expression." short:"e"`
	Files []string `arg:"" help:"Script files to run, or '-' for stdin."  name:"file"`
}

// Run executes the run command.
func (r *Run) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	for _, name := range uniqueFiles(r.Files) {
		source, label, err := readSource(ctx, name)
		if err != nil {
			return ErrLoadScript.With(slog.String("file", name)).Wrap(err)
		}

		v, err := r.eval(ctx, source, label)
		if err != nil {
			return ErrEvaluate.With(slog.String("file", label)).Wrap(err)
		}

		log.DebugContext(ctx, "script complete", slog.String("file", label))

		if v != nil {
			fmt.Fprintln(stdout(ctx), v)
		}
	}

	return nil
}

func (r *Run) eval(ctx context.Context, source, label string) (lang.Value, error) {
	if r.Expr {
		return lang.Run(ctx, source, label, lang.NewEnv(), langOptions()...)
	}

	return lang.Exec(ctx, source, label, lang.NewEnv(), langOptions()...)
}
