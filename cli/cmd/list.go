package cmd

import (
	"context"
	"io"
	"log/slog"

	"github.com/ardnew/denv/envfile"
	"github.com/ardnew/denv/log"
)

// List prints every binding of the env file after resolution.
type List struct {
	Format      string `default:"shell" enum:"shell,export,simple,json,yaml,table" help:"Output format" short:"F"`
	Override    bool   `default:"true"  help:"Prefer document values over the process environment during expansion" negatable:""`
	Interpolate bool   `default:"true"  help:"Expand parameter references in values"                                negatable:""`
}

// Run implements the list command.
func (l *List) Run(ctx context.Context) error {
	path, err := locateEnvFile(ctx)
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "list bindings",
		slog.String("path", path),
		slog.String("format", l.Format),
	)

	values, err := envfile.Values(path,
		envfile.WithOverride(l.Override),
		envfile.WithInterpolate(l.Interpolate),
	)
	if err != nil {
		return ErrReadEnvFile.Wrap(err).With(slog.String("path", path))
	}

	out, err := formatValues(values, l.Format)
	if err != nil {
		return err
	}

	_, err = io.WriteString(stdout(ctx), out)

	return err
}
