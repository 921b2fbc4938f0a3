// Package cli contains the command line interface for denv.
//
// # Usage
//
// Every command operates on one env file, chosen with --file or, when
// the flag is unset, discovered by walking from the working directory
// toward the filesystem root:
//
//	denv list --format=json
//	denv get DATABASE_URL
//	denv set DATABASE_URL postgres://localhost/dev
//	denv unset DATABASE_URL
//	denv run -- make test
//
// # Configuration Loader
//
// CLI defaults can be stored in the user config directory, either as
// config.json or as config.env; the latter is parsed by the project's
// own engine (see [resolve]), so it follows the same grammar as the
// files the tool operates on.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Enable colorized pretty printing
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/denv/pprof)
package cli
