package cli

import (
	"io"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/denv/dotenv"
)

// resolve is a [kong.ConfigurationLoader] that reads CLI defaults from
// a config file in env-file format, parsed and expanded by the engine
// itself.
//
// It is wired with [kong.Configuration] like this:
//
//	kong.Configuration(resolve, "/path/to/config.env")
//
// Flag names with hyphens may appear in any of three spellings in the
// file; for --log-level these are:
//
//	log-level=debug
//	log_level=debug
//	LOG_LEVEL=debug
//
// Command-line flags override config file values, and an unreadable or
// malformed file yields an empty configuration rather than an error.
func resolve(r io.Reader) (kong.Resolver, error) {
	bindings, err := dotenv.ParseReader(r)
	if err != nil {
		return envConfig{}, nil
	}

	values, err := dotenv.Resolve(bindings)
	if err != nil {
		// Expansion failure - return empty config
		return envConfig{}, nil
	}

	return envConfig(values.Strings()), nil
}

// envConfig implements [kong.Resolver] for env-file configs.
type envConfig map[string]string

// Validate implements [kong.Resolver].
func (envConfig) Validate(*kong.Application) error {
	// The config was already parsed successfully
	return nil
}

// Resolve implements [kong.Resolver].
func (c envConfig) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	underscored := strings.ReplaceAll(flag.Name, "-", "_")

	for _, name := range []string{
		flag.Name,
		underscored,
		strings.ToUpper(underscored),
	} {
		if value, ok := c[name]; ok {
			return value, nil
		}
	}

	// Not found - let Kong use defaults
	return nil, nil
}
