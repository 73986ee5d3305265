package cmd

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/ardnew/vcalc/lang"
	"github.com/ardnew/vcalc/log"
)

// ContextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// kongVar returns the kong variable named key, if any.
func kongVar(ctx context.Context, key string) (string, bool) {
	ktx := kongContextFrom(ctx)
	if ktx == nil || ktx.Model == nil {
		return "", false
	}

	v, ok := ktx.Model.Vars()[key]

	return v, ok
}

// stdout returns the writer for command output: the kong application's
// stdout if configured, else [os.Stdout].
func stdout(ctx context.Context) io.Writer {
	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stdout != nil {
		return ktx.Stdout
	}

	return os.Stdout
}

type stdinKey struct{}

// WithStdin returns a new context.Context whose commands read "-" from r
// instead of [os.Stdin].
func WithStdin(ctx context.Context, r io.Reader) context.Context {
	return context.WithValue(ctx, stdinKey{}, r)
}

func stdin(ctx context.Context) io.Reader {
	if r, ok := ctx.Value(stdinKey{}).(io.Reader); ok && r != nil {
		return r
	}

	return os.Stdin
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// stdinLabel labels diagnostics for source read from stdin.
const stdinLabel = "<stdin>"

// readSource returns the text of the named script and the label used for it
// in diagnostics. Relative names that do not exist are looked up on the
// search path.
func readSource(ctx context.Context, name string) (source, label string, err error) {
	if name == stdinSource {
		source, err = lang.ReadAll(stdin(ctx), stdinLabel)

		return source, stdinLabel, err
	}

	path, err := searchPathFrom(ctx).Find(name)
	if err != nil {
		return "", name, err
	}

	source, err = lang.ReadSource(path)

	return source, path, err
}

// langOptions returns the options passed to every evaluation.
func langOptions() []lang.Option {
	return []lang.Option{lang.WithLogger(log.Default())}
}

// fileKey uniquely identifies a file by its device and inode numbers.
// This handles deduplication across symlinks, absolute/relative paths, and
// special device files.
type fileKey struct {
	dev uint64
	ino uint64
}

// uniqueFiles returns paths without the entries that name a file already
// listed, comparing device/inode pairs after resolving symlinks. Paths that
// cannot be resolved are kept so that reading them reports the error.
// All occurrences of "-" are replaced with a single entry placed last so
// that stdin is read after all regular files.
func uniqueFiles(paths []string) []string {
	out := make([]string, 0, len(paths))
	seen := make(map[fileKey]struct{})
	hasStdin := false

	for _, path := range paths {
		if path == stdinSource {
			hasStdin = true

			continue
		}

		key, ok := statFileKey(path)
		if ok {
			if _, dup := seen[key]; dup {
				continue
			}

			seen[key] = struct{}{}
		}

		out = append(out, path)
	}

	if hasStdin {
		out = append(out, stdinSource)
	}

	return out
}

// statFileKey resolves path to its target and returns its fileKey.
func statFileKey(path string) (fileKey, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fileKey{}, false
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return fileKey{}, false
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return fileKey{}, false
	}

	return makeFileKey(info)
}

// makeFileKey creates a fileKey from os.FileInfo.
// Returns false if the underlying Sys() data is not of type *syscall.Stat_t.
func makeFileKey(info os.FileInfo) (key fileKey, ok bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return key, false
	}

	return fileKey{dev: uint64(stat.Dev), ino: stat.Ino}, true //nolint:unconvert
}
