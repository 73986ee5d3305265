package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/vcalc/lang"
)

// Fmt parses a script and prints it in the chosen format.
type Fmt struct {
	Native Native `cmd:"" default:"withargs" help:"Format as native vcalc syntax (default)."`
	JSON   JSON   `cmd:""                    help:"Format as JSON."`
	YAML   YAML   `cmd:""                    help:"Format as YAML."`
	Tree   Tree   `cmd:""                    help:"Format as an indented syntax tree."`
}

// source is the script argument shared by the fmt subcommands.
type source struct {
	Source string `arg:"" default:"-" help:"Script file or '-' for stdin." name:"source"`
}

func (s source) parse(ctx context.Context, format string) (*lang.Program, error) {
	text, label, err := readSource(ctx, s.Source)
	if err != nil {
		return nil, ErrLoadScript.With(slog.String("file", s.Source)).Wrap(err)
	}

	prog, err := lang.ParseSource(text, label)
	if err != nil {
		return nil, ErrFormat.With(slog.String("format", format)).Wrap(err)
	}

	return prog, nil
}

// Native formats input as native vcalc syntax with minimal parentheses.
type Native struct {
	source
}

// Run executes the fmt native command.
func (f *Native) Run(ctx context.Context) error {
	prog, err := f.parse(ctx, "native")
	if err != nil {
		return err
	}

	return prog.Format(ctx, stdout(ctx))
}

// JSON formats input as JSON.
type JSON struct {
	Indent int `default:"2" help:"Indent width for JSON output." short:"i"`

	source
}

// Run executes the fmt json command.
func (j *JSON) Run(ctx context.Context) error {
	prog, err := j.parse(ctx, "json")
	if err != nil {
		return err
	}

	return prog.FormatJSON(ctx, stdout(ctx), j.Indent)
}

// YAML formats input as YAML. An indent of 0 selects flow style.
type YAML struct {
	Indent int `default:"2" help:"Indent width for YAML output." short:"i"`

	source
}

// Run executes the fmt yaml command.
func (y *YAML) Run(ctx context.Context) error {
	prog, err := y.parse(ctx, "yaml")
	if err != nil {
		return err
	}

	return prog.FormatYAML(ctx, stdout(ctx), y.Indent)
}

// Tree formats input as an indented syntax tree with source positions.
type Tree struct {
	Indent int `default:"2" help:"Indent width for each tree level." short:"i"`

	source
}

// Run executes the fmt tree command.
func (a *Tree) Run(ctx context.Context) error {
	prog, err := a.parse(ctx, "tree")
	if err != nil {
		return err
	}

	return prog.FormatTree(ctx, stdout(ctx), a.Indent)
}
