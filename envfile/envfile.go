// Package envfile applies the dotenv engine to real files: discovering
// an env file by walking parent directories, loading its resolved
// values into the process environment, and adding, updating, or
// removing a single binding while preserving every other byte of the
// document.
//
// A missing file surfaces as an error matching [io/fs.ErrNotExist],
// distinct from a present file that lacks the requested key.
package envfile

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ardnew/denv/dotenv"
	"github.com/ardnew/denv/log"
)

// DefaultFilename is the file name located by [Find] when none is
// configured.
const DefaultFilename = ".env"

// defaultFileMode is the permission mode for env files created by
// [SetKey].
const defaultFileMode fs.FileMode = 0o644

// Predefined errors (sentinel values).
var (
	ErrNotFound = dotenv.NewError("env file not found")
)

// Find walks from the working directory toward the filesystem root
// looking for the configured file name and returns the path of the
// first regular file found, or "" and [ErrNotFound].
func Find(opts ...Option) (string, error) {
	cfg := makeConfig(opts...)

	dir, err := os.Getwd()
	if err != nil {
		return "", dotenv.WrapError(err)
	}

	for {
		candidate := filepath.Join(dir, cfg.filename)
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			log.Debug("found env file", slog.String("path", candidate))

			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}

		dir = parent
	}

	log.Debug("env file not found", slog.String("filename", cfg.filename))

	return "", ErrNotFound
}

// Values parses and resolves the document at path. Expansion defaults
// to document-over-environment precedence; [WithOverride] selects the
// other order.
func Values(path string, opts ...Option) (*dotenv.Map, error) {
	cfg := makeConfig(opts...)

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bindings, err := dotenv.ParseReader(f)
	if err != nil {
		return nil, err
	}

	return dotenv.Resolve(bindings, cfg.resolveOptions()...)
}

// Load resolves the document at path and copies every entry that
// carries a value into the process environment. Variables already set
// in the environment are kept unless [WithOverride] enables
// replacement; the same flag is forwarded into expansion, so by default
// the environment also wins name lookups inside values.
func Load(path string, opts ...Option) error {
	cfg := makeConfig(opts...)
	if cfg.override == nil {
		opts = append(opts, WithOverride(false))
	}

	values, err := Values(path, opts...)
	if err != nil {
		return err
	}

	override := cfg.override != nil && *cfg.override

	applied := 0

	for _, key := range values.Keys() {
		value, hasValue, _ := values.Lookup(key)
		if !hasValue {
			continue
		}

		if !override {
			if _, exists := os.LookupEnv(key); exists {
				continue
			}
		}

		if err := os.Setenv(key, value); err != nil {
			return dotenv.WrapError(err)
		}

		applied++
	}

	log.Debug("loaded env file",
		slog.String("path", path),
		slog.Int("applied", applied),
		slog.Bool("override", override),
	)

	return nil
}

// GetKey resolves the document at path and reports the value of one
// key. The boolean result is false when the key is absent or declared
// without a value; a missing file is an error.
func GetKey(path, key string, opts ...Option) (string, bool, error) {
	values, err := Values(path, opts...)
	if err != nil {
		return "", false, err
	}

	value, hasValue, present := values.Lookup(key)
	if !present || !hasValue {
		log.Debug("key not set in env file",
			slog.String("path", path),
			slog.String("key", key),
		)

		return "", false, nil
	}

	return value, true, nil
}

// SetKey adds or updates one binding in the document at path, creating
// the file when absent. Every entry for the key is rewritten in place;
// all other bytes of the document are preserved. The rendered line is
// controlled by [WithQuoteMode] and [WithExport].
func SetKey(path, key, value string, opts ...Option) error {
	cfg := makeConfig(opts...)
	line := cfg.renderLine(key, value)

	data, mode, err := readForRewrite(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}

		log.Warn("env file does not exist, creating",
			slog.String("path", path),
		)
	}

	var sb strings.Builder

	replaced := false

	for _, entry := range dotenv.ParseEntries(string(data)) {
		if entry.Binding != nil && entry.Binding.Key == key {
			sb.WriteString(line)

			replaced = true

			continue
		}

		sb.WriteString(entry.Raw)
	}

	if !replaced {
		// Terminate a final line that lacks a newline before appending.
		if len(data) > 0 && data[len(data)-1] != '\n' {
			sb.WriteByte('\n')
		}

		sb.WriteString(line)
	}

	return os.WriteFile(path, []byte(sb.String()), mode)
}

// UnsetKey removes every binding for key from the document at path,
// dropping each one's entire raw span. It reports whether anything was
// removed; a missing file is an error, a missing key only a logged
// warning.
func UnsetKey(path, key string) (bool, error) {
	data, mode, err := readForRewrite(path)
	if err != nil {
		return false, err
	}

	var sb strings.Builder

	removed := false

	for _, entry := range dotenv.ParseEntries(string(data)) {
		if entry.Binding != nil && entry.Binding.Key == key {
			removed = true

			continue
		}

		sb.WriteString(entry.Raw)
	}

	if !removed {
		log.Warn("key not found in env file",
			slog.String("path", path),
			slog.String("key", key),
		)

		return false, nil
	}

	return true, os.WriteFile(path, []byte(sb.String()), mode)
}

// readForRewrite reads a document and its permission mode ahead of an
// in-place rewrite.
func readForRewrite(path string) ([]byte, fs.FileMode, error) {
	mode := defaultFileMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	data, err := os.ReadFile(path)

	return data, mode, err
}
