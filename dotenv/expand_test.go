package dotenv

import (
	"errors"
	"testing"
)

func TestExpand(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		"SET":   "set",
		"EMPTY": "",
		"A":     "1",
		"B":     "2",
	}
	resolve := func(name string) (string, bool) {
		value, ok := env[name]
		return value, ok
	}

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr string
	}{
		// Plain references.
		{name: "set", input: "${SET}", want: "set"},
		{name: "empty", input: "${EMPTY}", want: ""},
		{name: "unset", input: "${UNSET}", want: ""},
		{name: "surrounding text", input: "-${SET}-", want: "-set-"},
		{name: "zero match collapse", input: "${C}a${C}b${C}", want: "ab"},
		{name: "multiple references", input: "${A}${B}", want: "12"},
		{name: "no references", input: "plain text", want: "plain text"},

		// Never-expanded forms.
		{name: "bare dollar name", input: "$SET", want: "$SET"},
		{name: "lone dollar", input: "a$ b", want: "a$ b"},
		{name: "unterminated", input: "${SET", want: "${SET"},
		{name: "empty braces", input: "${}", want: "${}"},
		{name: "invalid name", input: "${1BAD}", want: "${1BAD}"},
		{name: "invalid operator", input: "${SET=x}", want: "${SET=x}"},
		{name: "assignment operator unsupported", input: "${SET:=x}", want: "${SET:=x}"},
		{name: "bare colon", input: "${SET:}", want: "${SET:}"},

		// Default operators.
		{name: "dash unset", input: "${UNSET-ok}", want: "ok"},
		{name: "dash empty", input: "${EMPTY-ok}", want: ""},
		{name: "dash set", input: "${SET-ok}", want: "set"},
		{name: "colon dash unset", input: "${UNSET:-ok}", want: "ok"},
		{name: "colon dash empty", input: "${EMPTY:-ok}", want: "ok"},
		{name: "colon dash set", input: "${SET:-ok}", want: "set"},

		// Alternate operators.
		{name: "plus unset", input: "${UNSET+ok}", want: ""},
		{name: "plus empty", input: "${EMPTY+ok}", want: "ok"},
		{name: "plus set", input: "${SET+ok}", want: "ok"},
		{name: "colon plus unset", input: "${UNSET:+ok}", want: ""},
		{name: "colon plus empty", input: "${EMPTY:+ok}", want: ""},
		{name: "colon plus set", input: "${SET:+ok}", want: "ok"},

		// Required-value operators.
		{name: "question set", input: "${SET?missing}", want: "set"},
		{name: "question empty", input: "${EMPTY?missing}", want: ""},
		{name: "question unset", input: "${UNSET?it is required}", wantErr: "UNSET: it is required"},
		{name: "colon question set", input: "${SET:?missing}", want: "set"},
		{name: "colon question empty", input: "${EMPTY:?must not be empty}", wantErr: "EMPTY: must not be empty"},
		{name: "colon question unset", input: "${UNSET:?required}", wantErr: "UNSET: required"},

		// Recursive default and alternate words.
		{name: "nested reference in default", input: "${UNSET:-${SET}}", want: "set"},
		{name: "nested reference in alternate", input: "${SET:+<${A}>}", want: "<1>"},
		{name: "chained defaults", input: "${UNSET-${ALSO_UNSET-fallback}}", want: "fallback"},
		{name: "error inside default word", input: "${UNSET-${MISSING:?oops}}", wantErr: "MISSING: oops"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Expand(tt.input, resolve)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("Expand(%q) = %q, want error %q", tt.input, got, tt.wantErr)
				}

				if err.Error() != tt.wantErr {
					t.Fatalf("Expand(%q) error = %q, want %q", tt.input, err, tt.wantErr)
				}

				return
			}

			if err != nil {
				t.Fatalf("Expand(%q): %v", tt.input, err)
			}

			if got != tt.want {
				t.Errorf("Expand(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExpandLookupError(t *testing.T) {
	t.Parallel()

	unset := func(string) (string, bool) { return "", false }

	_, err := Expand("${NOT_DEFINED:?throw}", unset)

	var lookupErr *LookupError
	if !errors.As(err, &lookupErr) {
		t.Fatalf("error %v is not a *LookupError", err)
	}

	if lookupErr.Name != "NOT_DEFINED" || lookupErr.Message != "throw" {
		t.Errorf("LookupError = %+v, want {NOT_DEFINED throw}", lookupErr)
	}
}

func TestMatchingBrace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		start int
		want  int
	}{
		{"${A}", 2, 3},
		{"${A:-${B}}", 2, 9},
		{"${A:-${B:-${C}}}", 2, 15},
		{"${A", 2, -1},
		{"${A:-${B}", 2, -1},
	}

	for _, tt := range tests {
		if got := matchingBrace(tt.input, tt.start); got != tt.want {
			t.Errorf("matchingBrace(%q, %d) = %d, want %d", tt.input, tt.start, got, tt.want)
		}
	}
}
