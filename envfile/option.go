package envfile

import (
	"unicode"

	"github.com/ardnew/denv/dotenv"
)

// QuoteMode selects how [SetKey] quotes the value it writes.
type QuoteMode int

const (
	QuoteAlways QuoteMode = iota // single-quote every value
	QuoteAuto                    // quote unless the value is alphanumeric
	QuoteNever                   // write the value verbatim
)

// String returns the name of the quote mode.
func (m QuoteMode) String() string {
	switch m {
	case QuoteAlways:
		return "always"
	case QuoteAuto:
		return "auto"
	case QuoteNever:
		return "never"
	}
	return "unknown"
}

// ParseQuoteMode parses the string representation of a quote mode.
// Unrecognized input yields [QuoteAlways].
func ParseQuoteMode(s string) QuoteMode {
	switch s {
	case "auto":
		return QuoteAuto
	case "never":
		return QuoteNever
	}
	return QuoteAlways
}

// config holds the settings shared by the package's operations. Each
// operation reads only the fields that apply to it.
type config struct {
	filename     string
	override     *bool
	interpolate  bool
	expandSingle bool
	quote        QuoteMode
	export       bool
}

// Option configures an envfile operation.
type Option func(config) config

func makeConfig(opts ...Option) config {
	cfg := config{
		filename:    DefaultFilename,
		interpolate: true,
	}
	for _, opt := range opts {
		cfg = opt(cfg)
	}
	return cfg
}

// WithFilename sets the file name sought by [Find].
func WithFilename(name string) Option {
	return func(cfg config) config {
		cfg.filename = name
		return cfg
	}
}

// WithOverride selects the precedence between the document and the
// process environment, both for name lookups during expansion and for
// [Load] writing into the environment. [Values] and [GetKey] default to
// document precedence; [Load] defaults to environment precedence.
func WithOverride(enable bool) Option {
	return func(cfg config) config {
		cfg.override = &enable
		return cfg
	}
}

// WithInterpolate enables or disables ${...} expansion. The default is
// enabled.
func WithInterpolate(enable bool) Option {
	return func(cfg config) config {
		cfg.interpolate = enable
		return cfg
	}
}

// WithExpandSingleQuoted expands ${...} references inside single-quoted
// segments. The default is disabled.
func WithExpandSingleQuoted(enable bool) Option {
	return func(cfg config) config {
		cfg.expandSingle = enable
		return cfg
	}
}

// WithQuoteMode sets how [SetKey] quotes the value it writes. The
// default is [QuoteAlways].
func WithQuoteMode(mode QuoteMode) Option {
	return func(cfg config) config {
		cfg.quote = mode
		return cfg
	}
}

// WithExport prefixes the line written by [SetKey] with "export ".
func WithExport(enable bool) Option {
	return func(cfg config) config {
		cfg.export = enable
		return cfg
	}
}

// resolveOptions translates the config into engine options.
func (c config) resolveOptions() []dotenv.Option {
	opts := []dotenv.Option{
		dotenv.WithInterpolate(c.interpolate),
		dotenv.WithExpandSingleQuoted(c.expandSingle),
	}
	if c.override != nil {
		opts = append(opts, dotenv.WithOverride(*c.override))
	}
	return opts
}

// renderLine produces the document line written by [SetKey], including
// its terminator.
func (c config) renderLine(key, value string) string {
	var line string
	switch c.quote {
	case QuoteNever:
		line = key + "=" + value
	case QuoteAuto:
		if isAlphanumeric(value) {
			line = key + "=" + value
		} else {
			line = dotenv.Render(key, value)
		}
	default:
		line = dotenv.Render(key, value)
	}
	if c.export {
		line = "export " + line
	}
	return line + "\n"
}

// isAlphanumeric reports whether s is nonempty and contains only
// letters and digits.
func isAlphanumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
