package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/ardnew/vcalc/lang"
	"github.com/ardnew/vcalc/pkg"
)

// isTerminal reports whether r is a file descriptor attached to a terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// runLines evaluates each line of cfg.Stdin as one REPL input and writes the
// value or diagnostic to cfg.Stdout. Diagnostics do not stop the session.
//
// A line starting with ':' is a control command; only vars, load and reset
// are meaningful without a terminal.
func runLines(ctx context.Context, cfg Config) error {
	env := cfg.Env
	opts := []lang.Option{lang.WithLogger(cfg.Logger)}

	scanner := bufio.NewScanner(cfg.Stdin)

	count := 0

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		count++

		if cmd, ok := strings.CutPrefix(line, ":"); ok {
			var quit bool

			env, quit = lineCommand(ctx, cfg, env, strings.TrimSpace(cmd))
			if quit {
				break
			}

			continue
		}

		v, err := lang.Run(ctx, line, Label, env, opts...)
		if err != nil {
			fmt.Fprintln(cfg.Stdout, err)

			continue
		}

		fmt.Fprintln(cfg.Stdout, v)
	}

	cfg.Logger.TraceContext(ctx, "repl input closed", slog.Int("lines", count))

	if err := scanner.Err(); err != nil {
		return pkg.ErrReadStdin.Wrap(err)
	}

	return nil
}

// lineCommand runs a control command in line mode and returns the
// environment to continue with.
func lineCommand(
	ctx context.Context,
	cfg Config,
	env *lang.Env,
	input string,
) (*lang.Env, bool) {
	name, arg, _ := strings.Cut(input, " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case "q", "quit", "exit":
		return env, true

	case "v", "vars":
		for n, v := range env.All() {
			fmt.Fprintf(cfg.Stdout, "%s %s %s\n", n, v.Type(), preview(v))
		}

	case "l", "load":
		out, err := load(ctx, cfg, env, arg)
		if err != nil {
			fmt.Fprintln(cfg.Stdout, err)
		} else {
			fmt.Fprintln(cfg.Stdout, out)
		}

	case "r", "reset":
		return lang.NewEnv(), false

	default:
		fmt.Fprintf(cfg.Stdout, "%s: %q\n", ErrUnknownCommand, name)
	}

	return env, false
}
