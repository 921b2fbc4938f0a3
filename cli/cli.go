package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/ardnew/denv/cli/cmd"
	"github.com/ardnew/denv/pkg"
)

// CLI is the top-level command-line interface for denv.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	File    string           `help:"Env file to operate on (default: nearest .env found walking up from the working directory)" name:"file" short:"f" type:"path"`
	Version kong.VersionFlag `help:"Print version and exit"`

	List  cmd.List  `cmd:"" default:"withargs" help:"Print the resolved bindings of the env file"`
	Get   cmd.Get   `cmd:"" help:"Print the value of one binding"`
	Set   cmd.Set   `cmd:"" help:"Add or update one binding in the env file"`
	Unset cmd.Unset `cmd:"" help:"Remove one binding from the env file"`
	Run   cmd.Run   `cmd:"" help:"Run a command with the env file applied to its environment"`
}

// Run executes the denv CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	configFilePath := configPath(baseConfig)

	vars := kong.Vars{
		"version": pkg.Version,
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags so the logger is configured before Kong
	// begins parsing, regardless of flag position. TextUnmarshaler on
	// logFormat/logLevel handles those flags during normal parsing, but
	// this early pass also catches boolean flags like --log-pretty.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
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
		kong.Configuration(kong.JSON, configFilePath+".json"),
		kong.Configuration(resolve, configFilePath+".env"),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Stuff additional context values for use by commands
	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithEnvFile(ctx, cli.File)

	// Finalize logger configuration with all parsed values including
	// TimeLayout and Caller which don't use TextUnmarshaler.
	cli.Log.start(ctx)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	// Execute the selected command
	return ktx.Run(ctx, &cli)
}
