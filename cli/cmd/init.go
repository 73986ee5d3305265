package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/vcalc/log"
	"github.com/ardnew/vcalc/pkg"
	"github.com/ardnew/vcalc/profile"
)

// defaultConfigIndent is the number of spaces to use for indentation
// when generating the default configuration file.
const defaultConfigIndent = 2

// configDirMode is the permission mode of a created configuration directory.
const configDirMode os.FileMode = 0o700

// Init generates a default configuration file with current flag values.
type Init struct {
	Force bool `help:"Overwrite existing configuration file" short:"f"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	confPath, ok := kongVar(ctx, ConfigIdentifier)
	if !ok {
		panic("internal error: config path undefined")
	}

	return i.write(ctx, confPath)
}

// write creates the configuration file at confPath.
func (i *Init) write(ctx context.Context, confPath string) error {
	// Check if file exists and force not set
	_, err := os.Stat(confPath)
	if err == nil && !i.Force {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			With(slog.Bool("exists", true)).
			Wrap(ErrFileExists)
	}

	if err := os.MkdirAll(filepath.Dir(confPath), configDirMode); err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	file, err := os.Create(confPath)
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# %s configuration. Command-line flags override these values.\n", pkg.Name)

	enc := yaml.NewEncoder(file,
		yaml.Indent(defaultConfigIndent),
		yaml.IndentSequence(true))

	if err := enc.EncodeContext(ctx, i.document(ctx)); err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(pkg.ErrYAMLMarshal.Wrap(err))
	}

	log.DebugContext(
		ctx,
		"initialized configuration file",
		slog.String("path", confPath),
	)

	return nil
}

// document builds the configuration from current flag values. Flags of a
// group whose names carry the group key as prefix are nested under it, e.g.
// --log-level becomes log.level.
func (i *Init) document(ctx context.Context) yaml.MapSlice {
	ktx := kongContextFrom(ctx)
	if ktx == nil {
		return nil
	}

	prefixIgnore := []string{"help", "version", profile.Tag}

	var (
		doc    yaml.MapSlice
		groups = map[string]int{} // group key -> index in doc
	)

	for _, flag := range ktx.Model.Flags {
		if flag.Hidden || slices.ContainsFunc(prefixIgnore, func(s string) bool {
			return strings.HasPrefix(flag.Name, s)
		}) {
			continue
		}

		val := flagValue(ktx, flag)
		if val == nil {
			continue
		}

		group, name, nested := groupedName(flag)
		if !nested {
			doc = append(doc, yaml.MapItem{Key: flag.Name, Value: val})

			continue
		}

		idx, ok := groups[group]
		if !ok {
			idx = len(doc)
			groups[group] = idx
			doc = append(doc, yaml.MapItem{Key: group, Value: yaml.MapSlice{}})
		}

		items, _ := doc[idx].Value.(yaml.MapSlice)
		doc[idx].Value = append(items, yaml.MapItem{Key: name, Value: val})
	}

	return doc
}

// groupedName splits the name of a grouped flag into the group key and the
// rest of the name.
func groupedName(flag *kong.Flag) (group, name string, ok bool) {
	if flag.Group == nil || flag.Group.Key == "" {
		return "", flag.Name, false
	}

	name, ok = strings.CutPrefix(flag.Name, flag.Group.Key+"-")

	return flag.Group.Key, name, ok
}

// flagValue returns the value of flag for the configuration file, or nil if
// unset.
func flagValue(ktx *kong.Context, flag *kong.Flag) any {
	switch v := ktx.FlagValue(flag).(type) {
	case nil:
		return nil

	case string:
		if v == "" {
			return nil
		}

		return v

	case []string:
		if len(v) == 0 {
			return nil
		}

		return v

	case bool, int, int64, uint, uint64, float64:
		return v

	default:
		return fmt.Sprint(v)
	}
}
