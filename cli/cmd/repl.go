package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/vcalc/cli/cmd/repl"
	"github.com/ardnew/vcalc/lang"
	"github.com/ardnew/vcalc/log"
)

// Repl starts an interactive session with a persistent environment.
type Repl struct {
	Files []string `help:"Script file(s) to load before the session starts." name:"file" short:"f"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	env := lang.NewEnv()

	if err := loadFiles(ctx, env, r.Files); err != nil {
		return err
	}

	cacheDir, _ := kongVar(ctx, CacheIdentifier)

	log.TraceContext(ctx, "starting session",
		slog.String("cache", cacheDir),
		slog.Int("bindings", env.Len()),
		slog.Any("path", searchPathFrom(ctx)))

	err = repl.Run(ctx, repl.Config{
		Env:      env,
		CacheDir: cacheDir,
		Find:     searchPathFrom(ctx).Find,
		Logger:   log.Default(),
		Stdin:    stdin(ctx),
		Stdout:   stdout(ctx),
	})
	if err != nil {
		return ErrSession.Wrap(err)
	}

	return nil
}
