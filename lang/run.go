package lang

import (
	"context"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/klauspost/readahead"

	"github.com/ardnew/vcalc/pkg"
)

// Run lexes, parses and evaluates a single expression.
//
// The label identifies the source in diagnostics, for example a file path or
// "<shell>". The first failure of any stage is returned as an [*Error] and
// the remaining stages are skipped.
func Run(
	ctx context.Context,
	source, label string,
	env *Env,
	opts ...Option,
) (Value, error) {
	cfg := makeConfig(opts...)

	lexemes, err := Lex(source, label)
	if err != nil {
		return nil, err
	}

	expr, err := Parse(lexemes, label)
	if err != nil {
		return nil, err
	}

	cfg.logger.TraceContext(ctx, "parse complete",
		slog.String("label", label),
		slog.Int("lexemes", len(lexemes)),
		slog.Any("expr", expr))

	return Interpret(ctx, expr, label, env, opts...)
}

// RunFile evaluates the single expression in the file at path with a fresh
// environment, using path as the label.
func RunFile(ctx context.Context, path string, opts ...Option) (Value, error) {
	source, err := ReadSource(path)
	if err != nil {
		return nil, err
	}

	return Run(ctx, source, path, NewEnv(), opts...)
}

// ParseSource lexes and parses a newline-separated program.
// Results are cached per label and source until [ClearCache].
func ParseSource(source, label string) (*Program, error) {
	prog, _, err := parseCached(source, label)

	return prog, err
}

// Exec evaluates each statement of a newline-separated program in order
// and returns the value of the last one. An empty program yields nil.
// The first error stops execution; earlier statements keep their effect on
// env.
func Exec(
	ctx context.Context,
	source, label string,
	env *Env,
	opts ...Option,
) (Value, error) {
	cfg := makeConfig(opts...)

	prog, hit, err := parseCached(source, label)
	if err != nil {
		return nil, err
	}

	cfg.logger.TraceContext(ctx, "parse complete",
		slog.String("label", label),
		slog.Int("statements", len(prog.Statements)),
		slog.Bool("cache_hit", hit))

	if env == nil {
		env = NewEnv()
	}

	var last Value

	for _, stmt := range prog.Statements {
		last, err = Interpret(ctx, stmt, label, env, opts...)
		if err != nil {
			return nil, err
		}
	}

	return last, nil
}

// ExecFile runs the program in the file at path against env, using path as
// the label.
func ExecFile(
	ctx context.Context,
	path string,
	env *Env,
	opts ...Option,
) (Value, error) {
	source, err := ReadSource(path)
	if err != nil {
		return nil, err
	}

	return Exec(ctx, source, path, env, opts...)
}

// ReadSource reads the UTF-8 text of the file at path.
func ReadSource(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", pkg.ErrReadInput.Wrap(err)
	}
	defer f.Close()

	return ReadAll(f, path)
}

// ReadAll reads UTF-8 text from r. The name identifies r in errors.
func ReadAll(r io.Reader, name string) (string, error) {
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return "", pkg.ErrReadInput.Wrap(err)
	}

	if !utf8.Valid(data) {
		return "", pkg.ErrReadInput.Wrapf("%s: invalid UTF-8", name)
	}

	return string(data), nil
}
