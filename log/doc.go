// Package log provides leveled, structured logging on top of
// [log/slog], with selectable text or JSON output, optional ANSI
// colorized "pretty" rendering, and a Trace level below Debug.
//
// A [Logger] is an immutable value; [Logger.Wrap] and [Logger.With]
// derive new loggers without mutating the original. The package also
// maintains a default logger writing to standard error, reconfigured
// with [Config] and used by the package-level logging functions.
package log
