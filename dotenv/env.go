package dotenv

import (
	"os"
	"strings"
)

// Environment is a snapshot of process environment variables used for
// name lookups during expansion.
type Environment map[string]string

// OSEnvironment snapshots the current process environment.
func OSEnvironment() Environment {
	environ := os.Environ()
	env := make(Environment, len(environ))
	for _, entry := range environ {
		if key, value, ok := strings.Cut(entry, "="); ok {
			env[key] = value
		}
	}
	return env
}
