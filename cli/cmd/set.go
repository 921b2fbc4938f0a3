package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/denv/envfile"
	"github.com/ardnew/denv/log"
)

// Set adds or updates one binding in the env file, creating the file
// when none exists.
type Set struct {
	Key   string `arg:"" help:"Binding name"`
	Value string `arg:"" help:"Value to assign"`

	Quote  string `default:"always" enum:"always,auto,never" help:"When to single-quote the written value"`
	Export bool   `help:"Prefix the written line with \"export \""`
}

// Run implements the set command.
func (s *Set) Run(ctx context.Context) error {
	path := locateWritableEnvFile(ctx)

	err := envfile.SetKey(path, s.Key, s.Value,
		envfile.WithQuoteMode(envfile.ParseQuoteMode(s.Quote)),
		envfile.WithExport(s.Export),
	)
	if err != nil {
		return ErrWriteEnvFile.Wrap(err).With(
			slog.String("path", path),
			slog.String("key", s.Key),
		)
	}

	log.DebugContext(ctx, "set binding",
		slog.String("path", path),
		slog.String("key", s.Key),
	)

	_, err = fmt.Fprintf(stdout(ctx), "%s=%s\n", s.Key, s.Value)

	return err
}
