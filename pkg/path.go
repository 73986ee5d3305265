package pkg

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
)

// Prefix returns the base name of the running executable, which names the
// configuration and cache directories and prefixes environment variables.
//
// Debugger and test binaries ("__debug_bin123", "cli.test") fall back to
// [Name], and leading dots are removed.
//
//nolint:gochecknoglobals
var Prefix = sync.OnceValue(
	func() string {
		id := os.Args[0]
		if exe, err := os.Executable(); err == nil {
			id = exe
		}

		id = filepath.Base(id)
		ext := filepath.Ext(id)
		id = strings.TrimLeft(strings.TrimSuffix(id, ext), ".")

		if id == "" || ext == ".test" || debugBinary.MatchString(id) {
			return Name
		}

		return id
	},
)

var debugBinary = regexp.MustCompile(`^__debug_bin\d*$`)

// EnvName returns the environment variable identifier for key, e.g.
// "VCALC_PATH" for "path".
func EnvName(key string) string {
	id := strings.ToUpper(Prefix() + "_" + key)

	return strings.Map(func(r rune) rune {
		if r == '-' || r == '.' {
			return '_'
		}

		return r
	}, id)
}

// ConfigDir returns the per-user configuration directory.
//
//nolint:gochecknoglobals
var ConfigDir = sync.OnceValue(func() string {
	return filepath.Join(userDir(os.UserConfigDir, ".config"), Prefix())
})

// CacheDir returns the per-user directory for transient files such as the
// shell history.
//
//nolint:gochecknoglobals
var CacheDir = sync.OnceValue(func() string {
	return filepath.Join(userDir(os.UserCacheDir, ".cache"), Prefix())
})

// userDir returns the directory reported by base, or the hidden directory
// under the home directory, or the working directory.
func userDir(base func() (string, error), hidden string) string {
	if dir, err := base(); err == nil {
		return dir
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, hidden)
	}

	if wd, err := os.Getwd(); err == nil {
		return wd
	}

	return "."
}
