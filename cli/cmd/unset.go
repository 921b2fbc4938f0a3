package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/denv/envfile"
	"github.com/ardnew/denv/log"
)

// Unset removes every binding for a key from the env file.
type Unset struct {
	Key string `arg:"" help:"Binding name"`
}

// Run implements the unset command.
func (u *Unset) Run(ctx context.Context) error {
	path, err := locateEnvFile(ctx)
	if err != nil {
		return err
	}

	removed, err := envfile.UnsetKey(path, u.Key)
	if err != nil {
		return ErrWriteEnvFile.Wrap(err).With(
			slog.String("path", path),
			slog.String("key", u.Key),
		)
	}

	if !removed {
		return ErrKeyNotSet.With(
			slog.String("key", u.Key),
			slog.String("path", path),
		)
	}

	log.InfoContext(ctx, "unset binding",
		slog.String("path", path),
		slog.String("key", u.Key),
	)

	return nil
}
