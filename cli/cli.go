package cli

import (
	"context"
	"log/slog"

	"github.com/alecthomas/kong"

	"github.com/ardnew/vcalc/cli/cmd"
	"github.com/ardnew/vcalc/log"
	"github.com/ardnew/vcalc/pkg"
)

// versionIdentifier is the kong variable printed by --version.
const versionIdentifier = "version"

// CLI is the top-level command-line interface for vcalc.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Path []string `help:"Directories searched for scripts, before ${pathEnv}." placeholder:"DIR" short:"I"`

	Version kong.VersionFlag `help:"Print version and exit."`

	Init cmd.Init `cmd:"" help:"Initialize configuration file"`
	Fmt  cmd.Fmt  `cmd:"" help:"Format a script"`
	Run  cmd.Run  `cmd:"" help:"Run scripts"`
	Eval cmd.Eval `cmd:"" help:"Evaluate expressions"`

	Repl cmd.Repl `cmd:"" default:"withargs" help:"Start an interactive session"`
}

// Run executes the vcalc CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	d := userDirs()
	if err := d.mkdirAll(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Apply logger flags before parsing so that parse errors are logged as
	// requested, wherever the flags appear.
	cli.Log.scan(args)

	// Commands run with ctx as it is after parsing.
	parser, err := newParser(func() context.Context { return ctx }, &cli, d,
		kong.Exit(exit))
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithSearchPath(ctx, cli.Path...)

	cli.Log.start(ctx)

	// [pprofConfig.start] is a no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	log.TraceContext(ctx, "run command",
		slog.String("command", ktx.Command()),
		slog.Any("path", cli.Path))

	return ktx.Run(&cli)
}

// newParser returns the kong parser for cli with configuration files and
// runtime directories located by d. Commands receive the context returned by
// ctx when they run.
func newParser(
	ctx func() context.Context,
	cli *CLI,
	d dirs,
	opts ...kong.Option,
) (*kong.Kong, error) {
	vars := kong.Vars{
		cmd.ConfigIdentifier: d.configPath(".yaml"),
		cmd.CacheIdentifier:  d.cache,
		versionIdentifier:    pkg.Name + " " + pkg.Version(),
		"pathEnv":            cmd.PathEnv(),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars(d))

	return kong.New(cli,
		append([]kong.Option{
			kong.Name(pkg.Name),
			kong.Description(pkg.Description),
			kong.UsageOnError(),
			kong.ExplicitGroups(
				[]kong.Group{cli.Log.group(), cli.Pprof.group()},
			),
			kong.BindSingletonProvider(ctx),
			kong.ConfigureHelp(
				kong.HelpOptions{
					Compact:             true,
					Summary:             true,
					Tree:                true,
					NoExpandSubcommands: true,
				}),
			// JSON keys are flat flag names with '_' for '-', e.g. "log_level".
			kong.Configuration(kong.JSON, d.configPath(".json")),
			kong.Configuration(resolve(ctx()), d.configPath(".yaml")),
			vars,
		}, opts...)...,
	)
}
