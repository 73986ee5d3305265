package cli

import (
	"os"
	"path/filepath"

	"github.com/ardnew/vcalc/pkg"
)

// baseConfig is the base name of the configuration files.
const baseConfig = "config"

// defaultDirMode is the permission mode of created runtime directories.
const defaultDirMode os.FileMode = 0o700

// dirs locates the files the CLI reads and writes.
type dirs struct {
	config string // configuration directory
	cache  string // cache directory (history, profiles)
}

// userDirs returns the per-user configuration and cache directories.
func userDirs() dirs {
	return dirs{config: pkg.ConfigDir(), cache: pkg.CacheDir()}
}

// configPath returns the path of the configuration file with extension ext.
func (d dirs) configPath(ext string) string {
	return filepath.Join(d.config, baseConfig+ext)
}

// mkdirAll creates the configuration and cache directories.
func (d dirs) mkdirAll() error {
	for _, dir := range []string{d.config, d.cache} {
		if err := os.MkdirAll(dir, defaultDirMode); err != nil {
			return err
		}
	}

	return nil
}
