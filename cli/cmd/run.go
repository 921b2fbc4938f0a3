package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/ardnew/denv/dotenv"
	"github.com/ardnew/denv/envfile"
	"github.com/ardnew/denv/log"
)

// Run executes a command with the env file's resolved bindings merged
// into its environment.
type Run struct {
	Override bool `default:"true" help:"Prefer document values over the process environment" negatable:""`

	Command []string `arg:"" passthrough:"" help:"Command and arguments to execute"`
}

// Run implements the run command.
func (r *Run) Run(ctx context.Context) error {
	if len(r.Command) == 0 {
		return ErrNoCommand
	}

	path, err := locateEnvFile(ctx)
	if err != nil {
		return err
	}

	values, err := envfile.Values(path, envfile.WithOverride(r.Override))
	if err != nil {
		return ErrReadEnvFile.Wrap(err).With(slog.String("path", path))
	}

	log.DebugContext(ctx, "run command",
		slog.String("path", path),
		slog.String("command", r.Command[0]),
		slog.Bool("override", r.Override),
	)

	cmd := exec.CommandContext(ctx, r.Command[0], r.Command[1:]...)
	cmd.Env = mergedEnviron(values, r.Override)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return ErrCommandFailed.Wrap(err).With(
			slog.String("command", r.Command[0]),
		)
	}

	return nil
}

// mergedEnviron builds the child environment from the process
// environment and the document's resolved values. Names declared
// without a value never reach the child.
func mergedEnviron(values *dotenv.Map, override bool) []string {
	merged := make(map[string]string)

	order := make([]string, 0, len(os.Environ()))

	for _, pair := range os.Environ() {
		key, value, _ := strings.Cut(pair, "=")
		if _, seen := merged[key]; !seen {
			order = append(order, key)
		}

		merged[key] = value
	}

	for _, key := range values.Keys() {
		value, hasValue, _ := values.Lookup(key)
		if !hasValue {
			continue
		}

		if _, exists := merged[key]; !exists {
			order = append(order, key)
		} else if !override {
			continue
		}

		merged[key] = value
	}

	environ := make([]string, 0, len(order))
	for _, key := range order {
		environ = append(environ, key+"="+merged[key])
	}

	return environ
}
