package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/denv/envfile"
)

// maxSuggestions bounds the near-miss names reported for an unknown key.
const maxSuggestions = 3

// Get prints the resolved value of one binding.
type Get struct {
	Key      string `arg:"" help:"Binding name"`
	Override bool   `default:"true" help:"Prefer document values over the process environment during expansion" negatable:""`
}

// Run implements the get command.
func (g *Get) Run(ctx context.Context) error {
	path, err := locateEnvFile(ctx)
	if err != nil {
		return err
	}

	values, err := envfile.Values(path, envfile.WithOverride(g.Override))
	if err != nil {
		return ErrReadEnvFile.Wrap(err).With(slog.String("path", path))
	}

	value, hasValue, present := values.Lookup(g.Key)
	if !present || !hasValue {
		err := ErrKeyNotSet.With(
			slog.String("key", g.Key),
			slog.String("path", path),
		)

		if names := suggest(g.Key, values.Keys()); len(names) > 0 {
			err = err.With(slog.String("did_you_mean", strings.Join(names, ", ")))
		}

		return err
	}

	_, err = fmt.Fprintln(stdout(ctx), value)

	return err
}

// suggest returns up to maxSuggestions names fuzzy-matching key, best
// matches first.
func suggest(key string, keys []string) []string {
	matches := fuzzy.Find(key, keys)

	names := make([]string, 0, maxSuggestions)
	for _, match := range matches {
		if len(names) == maxSuggestions {
			break
		}

		names = append(names, match.Str)
	}

	return names
}
