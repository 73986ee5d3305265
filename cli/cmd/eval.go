package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/vcalc/lang"
)

// argLabel labels diagnostics for expressions given on the command line.
const argLabel = "<arg>"

// Eval evaluates expressions given as arguments in one shared environment
// and prints the value of each.
type Eval struct {
	Files []string `help:"Script file(s) to load before evaluating." name:"file" short:"f"`
	Exprs []string `arg:"" help:"Expressions to evaluate, in order."  name:"expr"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	env := lang.NewEnv()

	if err := loadFiles(ctx, env, e.Files); err != nil {
		return err
	}

	for i, expr := range e.Exprs {
		v, err := lang.Run(ctx, expr, argLabel, env, langOptions()...)
		if err != nil {
			return ErrEvaluate.
				With(slog.Int("arg", i), slog.String("expr", expr)).
				Wrap(err)
		}

		fmt.Fprintln(stdout(ctx), v)
	}

	return nil
}

// loadFiles runs each named script against env, in order.
func loadFiles(ctx context.Context, env *lang.Env, names []string) error {
	for _, name := range uniqueFiles(names) {
		source, label, err := readSource(ctx, name)
		if err != nil {
			return ErrLoadScript.With(slog.String("file", name)).Wrap(err)
		}

		if _, err := lang.Exec(ctx, source, label, env, langOptions()...); err != nil {
			return ErrLoadScript.With(slog.String("file", label)).Wrap(err)
		}
	}

	return nil
}
