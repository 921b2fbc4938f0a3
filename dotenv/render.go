package dotenv

import "strings"

// renderEscaper prepares a value for embedding in single quotes.
var renderEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// Render serializes one binding as a single document line with the
// value single-quoted, escaping backslashes and single quotes so that
// parsing the result recovers key and value exactly. An empty value
// renders as ''.
func Render(key, value string) string {
	return key + "='" + renderEscaper.Replace(value) + "'"
}
