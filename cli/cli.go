package cli

import (
	"context"
	"errors"

	"github.com/alecthomas/kong"

	"github.com/ardnew/hopter/cli/cmd"
	"github.com/ardnew/hopter/pkg"
)

// baseConfig is the base name of the optional configuration files.
const baseConfig = "config"

// CLI is the top-level command-line interface for hopter.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version kong.VersionFlag `help:"Print version and exit." short:"V"`

	Expand  cmd.Expand  `cmd:"" default:"withargs" help:"Expand variadic regions of a template into a header (default; name it explicitly when the input is called check, vocab or preview)."`
	Check   cmd.Check   `cmd:""                    help:"Report regions and unknown placeholders without writing output."`
	Vocab   cmd.Vocab   `cmd:""                    help:"List the placeholder vocabulary."`
	Preview cmd.Preview `cmd:""                    help:"Browse region expansions interactively."`
}

// Run executes the hopter CLI with the given context and arguments.
// The exit function is called by kong for flags that terminate early, such as
// --help and --version.
//
// Argument errors are printed with usage and returned wrapped in
// [cmd.ErrUsage]; use [ExitCode] to map the returned error to a process
// status.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	vars := kong.Vars{
		"version":            pkg.Version(),
		cmd.ConfigIdentifier: configPath(),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Logger flags take effect before kong reports any parse error.
	cli.Log.scan(args)

	groups := []kong.Group{cli.Log.group()}
	if g := cli.Pprof.group(); g.Key != "" {
		groups = append(groups, g)
	}

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.Exit(exit),
		kong.ExplicitGroups(groups),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configPath()+".json"),
		kong.Configuration(loadYAML, configPath(), pkg.ConfigPath(baseConfig+".yml")),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		var perr *kong.ParseError
		if errors.As(err, &perr) && perr.Context != nil {
			_ = perr.Context.PrintUsage(true)
		}

		return cmd.ErrUsage.Wrap(err)
	}

	ctx = cmd.WithContext(ctx, ktx)

	cli.Log.start(ctx)

	// [pprofConfig.start] is a no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	return ktx.Run(ctx)
}

// ExitCode maps an error returned by [Run] to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, cmd.ErrUsage):
		return 2
	default:
		return 1
	}
}

func configPath() string {
	return pkg.ConfigPath(baseConfig + ".yaml")
}
