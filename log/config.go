package log

import (
	"io"
	"log/slog"
	"strings"
	"time"
)

// DefaultTimeLayout is the layout used when none is configured.
const DefaultTimeLayout = time.RFC3339

// DefaultCaller is the default setting for including caller information.
const DefaultCaller = false

// DefaultPretty is the default setting for colorized output.
const DefaultPretty = true

// FormatTime formats a log timestamp. An empty result drops the
// timestamp from the record.
type FormatTime func(time.Time) string

// config holds the settings of a [Logger]. Values are immutable once a
// logger is built; options produce modified copies.
type config struct {
	output     io.Writer
	formatTime FormatTime
	level      Level
	format     Format
	caller     bool
	pretty     bool
}

// Option applies one configuration setting, returning the modified copy.
type Option func(config) config

func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return cfg
}

func makeConfig(w io.Writer, opts ...Option) config {
	if w == nil {
		w = io.Discard
	}

	cfg := config{
		output:     w,
		formatTime: makeFormatTime(DefaultTimeLayout),
		level:      DefaultLevel,
		format:     DefaultFormat,
		caller:     DefaultCaller,
		pretty:     DefaultPretty,
	}

	return apply(cfg, opts...)
}

// WithOutput sets the destination for log output.
// A nil writer discards all output.
func WithOutput(w io.Writer) Option {
	return func(cfg config) config {
		if w == nil {
			w = io.Discard
		}

		cfg.output = w

		return cfg
	}
}

// WithLevel sets the minimum level of messages to emit.
func WithLevel(level Level) Option {
	return func(cfg config) config {
		cfg.level = level

		return cfg
	}
}

// WithFormat sets the output format for log messages.
func WithFormat(format Format) Option {
	return func(cfg config) config {
		cfg.format = format

		return cfg
	}
}

// WithTimeLayout sets the layout used to format log timestamps.
//
// The layout may be the name of one of the [time] package layout
// constants (case-insensitive, e.g. "RFC3339Nano" or "Kitchen") or a
// literal layout string passed to [time.Time.Format]. An empty layout
// disables timestamps entirely.
func WithTimeLayout(layout string) Option {
	format := makeFormatTime(layout)

	return func(cfg config) config {
		cfg.formatTime = format

		return cfg
	}
}

// WithCaller controls whether source file and line are included.
func WithCaller(enable bool) Option {
	return func(cfg config) config {
		cfg.caller = enable

		return cfg
	}
}

// WithPretty controls colorized, human-oriented output: unquoted values
// with ANSI colors for text format, indented multiline objects for JSON.
func WithPretty(enable bool) Option {
	return func(cfg config) config {
		cfg.pretty = enable

		return cfg
	}
}

// handler builds the slog.Handler described by the config.
func (c config) handler() slog.Handler {
	opts := &slog.HandlerOptions{
		AddSource: c.caller,
		Level:     slog.Level(c.level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			switch a.Key {
			case slog.TimeKey:
				if t, ok := a.Value.Any().(time.Time); ok {
					formatted := c.formatTime(t)
					if formatted == "" {
						return slog.Attr{}
					}

					a.Value = slog.StringValue(formatted)
				}

			case slog.LevelKey:
				// Renders custom levels ("TRACE") instead of slog's
				// offset notation ("DEBUG-4").
				if level, ok := a.Value.Any().(slog.Level); ok {
					a.Value = slog.StringValue(strings.ToUpper(Level(level).String()))
				}
			}

			return a
		},
	}

	switch {
	case c.pretty && c.format == FormatJSON:
		return newPrettyJSONHandler(c.output, opts)
	case c.pretty && c.format == FormatText:
		return newPrettyTextHandler(c.output, opts)
	case c.format == FormatJSON:
		return slog.NewJSONHandler(c.output, opts)
	case c.format == FormatText:
		return slog.NewTextHandler(c.output, opts)
	}

	return slog.DiscardHandler
}

// namedLayout maps spelled-out layout names to time package constants.
var namedLayout = map[string]string{
	"rfc3339":     time.RFC3339,
	"rfc3339nano": time.RFC3339Nano,
	"ansic":       time.ANSIC,
	"unixdate":    time.UnixDate,
	"rubydate":    time.RubyDate,
	"rfc822":      time.RFC822,
	"rfc822z":     time.RFC822Z,
	"rfc850":      time.RFC850,
	"kitchen":     time.Kitchen,
	"stamp":       time.Stamp,
	"stampmilli":  time.StampMilli,
	"milli":       time.StampMilli,
	"ms":          time.StampMilli,
	"stampmicro":  time.StampMicro,
	"micro":       time.StampMicro,
	"us":          time.StampMicro,
	"stampnano":   time.StampNano,
	"nano":        time.StampNano,
	"ns":          time.StampNano,
	"none":        "",
}

func makeFormatTime(layout string) FormatTime {
	// Normalize only for the named-layout lookup. Custom layouts are
	// used verbatim.
	name := strings.Map(func(r rune) rune {
		if ('a' <= r && r <= 'z') || ('0' <= r && r <= '9') {
			return r
		}

		return -1
	}, strings.ToLower(layout))

	if std, ok := namedLayout[name]; ok {
		layout = std
	}

	if strings.TrimSpace(layout) == "" {
		return func(time.Time) string { return "" }
	}

	return func(t time.Time) string { return t.Format(layout) }
}
