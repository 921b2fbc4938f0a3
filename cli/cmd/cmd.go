package cmd

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/denv/envfile"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// envFileKey is used to store the --file flag value in [context.Context].
type envFileKey struct{}

// WithEnvFile returns a new context.Context carrying the env file path
// selected on the command line, which may be empty.
func WithEnvFile(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, envFileKey{}, path)
}

func envFileFrom(ctx context.Context) string {
	path, _ := ctx.Value(envFileKey{}).(string)

	return path
}

// locateEnvFile returns the env file a command should read: the --file
// flag when given, otherwise the nearest file found by [envfile.Find].
func locateEnvFile(ctx context.Context) (string, error) {
	if path := envFileFrom(ctx); path != "" {
		return path, nil
	}

	path, err := envfile.Find()
	if err != nil {
		return "", ErrNoEnvFile.Wrap(err)
	}

	return path, nil
}

// locateWritableEnvFile returns the env file a mutating command should
// write. Unlike [locateEnvFile], discovery failure is not an error: the
// default file name in the working directory is returned so the command
// can create it.
func locateWritableEnvFile(ctx context.Context) string {
	if path := envFileFrom(ctx); path != "" {
		return path
	}

	if path, err := envfile.Find(); err == nil {
		return path
	}

	return envfile.DefaultFilename
}

// stdout returns the writer command output should go to. Kong rebinds
// its stdout in tests; fall back to the real one outside a parse.
func stdout(ctx context.Context) io.Writer {
	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stdout != nil {
		return ktx.Stdout
	}

	return os.Stdout
}
