package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/ardnew/logtree/cli/cmd"
	"github.com/ardnew/logtree/pkg"
)

// CLI is the top-level command-line interface for logtree.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version kong.VersionFlag `help:"Print version and exit." short:"V"`

	Source []string `help:"Record file(s) for render, or '-' for stdin" name:"source" short:"s" type:"existingfile"`

	Init   cmd.Init   `cmd:"" help:"Initialize configuration file"`
	Emit   cmd.Emit   `cmd:"" help:"Log a message through a new logger tree"`
	Levels cmd.Levels `cmd:"" help:"List or validate log levels"`
	Render cmd.Render `cmd:"" help:"Render JSON-lines records to the console"`
}

// Run executes the logtree CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	return run(ctx, exit, nil, args...)
}

func run(
	ctx context.Context,
	exit func(code int),
	opts []kong.Option,
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	configFilePath := configPath(baseConfig + configExt)

	vars := kong.Vars{
		cmd.ConfigIdentifier: configFilePath,
		cmd.CacheIdentifier:  cacheDir(),
		"version":            pkg.Name + " " + pkg.Version,
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags so that diagnostics emitted while parsing
	// already honor them, regardless of flag position.
	cli.Log.scan(args)

	opts = append([]kong.Option{
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configPath(baseConfig+".json")),
		kong.Configuration(resolve(baseConfig), configFilePath),
		vars,
	}, opts...)

	parser, err := kong.New(&cli, opts...)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// The provider above returns ctx, so these values reach every command.
	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithSourceFiles(ctx, cli.Source)

	cli.Log.start()

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start()()

	return ktx.Run(ctx, &cli)
}
