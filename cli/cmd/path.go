package cmd

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ardnew/mung"

	"github.com/ardnew/vcalc/pkg"
)

// ScriptExt is the conventional file extension of vcalc scripts. It may be
// omitted from names looked up on the search path.
const ScriptExt = ".vc"

// SearchPath lists the directories searched for scripts named by relative
// paths, in order of precedence.
type SearchPath []string

// PathEnv returns the name of the environment variable holding the default
// search path, e.g. "VCALC_PATH".
func PathEnv() string { return pkg.EnvName("path") }

// MakeSearchPath composes the search path from dirs followed by the entries
// of [PathEnv]. Duplicates and entries that are not directories are dropped.
func MakeSearchPath(dirs ...string) SearchPath {
	joined := mung.Make(
		mung.WithSubjectItems(os.Getenv(PathEnv())),
		mung.WithDelim(string(os.PathListSeparator)),
		mung.WithPrefixItems(dirs...),
		mung.WithFilter(isDir),
	).String()

	if joined == "" {
		return nil
	}

	return SearchPath(filepath.SplitList(joined))
}

func isDir(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.Mode().IsRegular()
}

// Find returns the path of the script called name.
//
// A name that exists as given is returned unchanged. Otherwise a relative
// name is joined to each directory of s in turn, first as given and then
// with [ScriptExt] appended. The error wraps [pkg.ErrNotFound].
func (s SearchPath) Find(name string) (string, error) {
	if isFile(name) {
		return name, nil
	}

	if !filepath.IsAbs(name) {
		candidates := []string{name}
		if filepath.Ext(name) != ScriptExt {
			candidates = append(candidates, name+ScriptExt)
		}

		for _, dir := range s {
			for _, c := range candidates {
				if path := filepath.Join(dir, c); isFile(path) {
					return path, nil
				}
			}
		}
	}

	return "", pkg.ErrNotFound.Wrapf("%s", name)
}

// LogValue implements [slog.LogValuer].
func (s SearchPath) LogValue() slog.Value {
	return slog.AnyValue([]string(s))
}

type searchPathKey struct{}

// WithSearchPath returns a new context.Context containing the search path
// composed from dirs by [MakeSearchPath].
func WithSearchPath(ctx context.Context, dirs ...string) context.Context {
	return context.WithValue(ctx, searchPathKey{}, MakeSearchPath(dirs...))
}

// searchPathFrom retrieves the search path stored in ctx by [WithSearchPath].
func searchPathFrom(ctx context.Context) SearchPath {
	s, _ := ctx.Value(searchPathKey{}).(SearchPath)

	return s
}
