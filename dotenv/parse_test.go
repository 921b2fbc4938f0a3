package dotenv

import (
	"strings"
	"testing"
)

// binding is a compact expectation for one parsed binding.
type binding struct {
	key   string
	value string
	none  bool // declared bare, no value
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []binding
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "blank lines",
			input: "\n\n \t \n",
			want:  nil,
		},
		{
			name:  "comments only",
			input: "# first\n  # second\n",
			want:  nil,
		},
		{
			name:  "simple",
			input: "a=b",
			want:  []binding{{key: "a", value: "b"}},
		},
		{
			name:  "whitespace around equals",
			input: " a = b ",
			want:  []binding{{key: "a", value: "b"}},
		},
		{
			name:  "empty value",
			input: "a=",
			want:  []binding{{key: "a", value: ""}},
		},
		{
			name:  "bare name",
			input: "a",
			want:  []binding{{key: "a", none: true}},
		},
		{
			name:  "bare name with comment",
			input: "a  # declared only",
			want:  []binding{{key: "a", none: true}},
		},
		{
			name:  "export prefix",
			input: "export a=b",
			want:  []binding{{key: "a", value: "b"}},
		},
		{
			name:  "export alone is a name",
			input: "export",
			want:  []binding{{key: "export", none: true}},
		},
		{
			name:  "export as key",
			input: "export=1",
			want:  []binding{{key: "export", value: "1"}},
		},
		{
			name:  "inline comment",
			input: "a=b # comment",
			want:  []binding{{key: "a", value: "b"}},
		},
		{
			name:  "hash ends unquoted value",
			input: "a=b#c",
			want:  []binding{{key: "a", value: "b"}},
		},
		{
			name:  "escaped hash stays in value",
			input: `a=b\#c`,
			want:  []binding{{key: "a", value: `b\#c`}},
		},
		{
			name:  "hash inside quotes",
			input: `a="b#c"`,
			want:  []binding{{key: "a", value: "b#c"}},
		},
		{
			name:  "single quoted",
			input: "a='b'",
			want:  []binding{{key: "a", value: "b"}},
		},
		{
			name:  "double quoted",
			input: `a="b"`,
			want:  []binding{{key: "a", value: "b"}},
		},
		{
			name:  "quotes preserve whitespace",
			input: "a='  b  '",
			want:  []binding{{key: "a", value: "  b  "}},
		},
		{
			name:  "adjacent segments concatenate",
			input: `a="TE"'ST'`,
			want:  []binding{{key: "a", value: "TEST"}},
		},
		{
			name:  "unquoted and quoted segments",
			input: `a=TE "ST"`,
			want:  []binding{{key: "a", value: "TE ST"}},
		},
		{
			name:  "double quote escapes",
			input: `a="b\nc\td\\e\"f"`,
			want:  []binding{{key: "a", value: "b\nc\td\\e\"f"}},
		},
		{
			name:  "single quote escapes",
			input: `a='b\'c\\d\ne'`,
			want:  []binding{{key: "a", value: `b'c\d\ne`}},
		},
		{
			name:  "unknown double quote escapes kept",
			input: `a="\$\{X\}"`,
			want:  []binding{{key: "a", value: `\$\{X\}`}},
		},
		{
			name:  "unquoted backslashes literal",
			input: `a=\$\{X\}`,
			want:  []binding{{key: "a", value: `\$\{X\}`}},
		},
		{
			name:  "multiline double quoted",
			input: "a=\"b\nc\"\nd=e",
			want:  []binding{{key: "a", value: "b\nc"}, {key: "d", value: "e"}},
		},
		{
			name:  "multiline single quoted",
			input: "a='b\nc'",
			want:  []binding{{key: "a", value: "b\nc"}},
		},
		{
			name:  "crlf terminators",
			input: "a=b\r\nc=d\r\n",
			want:  []binding{{key: "a", value: "b"}, {key: "c", value: "d"}},
		},
		{
			name:  "non-ascii names and values",
			input: "é=è",
			want:  []binding{{key: "é", value: "è"}},
		},
		{
			name:  "missing key skipped",
			input: "a=b\n=c\nd=e",
			want:  []binding{{key: "a", value: "b"}, {key: "d", value: "e"}},
		},
		{
			name:  "garbage line skipped",
			input: "a=b\n!! not a binding !!\nc=d",
			want:  []binding{{key: "a", value: "b"}, {key: "c", value: "d"}},
		},
		{
			name:  "unterminated quote skips one line",
			input: "a='b\nc=d",
			want:  []binding{{key: "c", value: "d"}},
		},
		{
			name:  "duplicate keys both parsed",
			input: "a=b\na=c",
			want:  []binding{{key: "a", value: "b"}, {key: "a", value: "c"}},
		},
		{
			name:  "trailing whitespace trimmed outside quotes",
			input: "a='x'  \t",
			want:  []binding{{key: "a", value: "x"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Parse(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("Parse(%q) returned %d bindings, want %d", tt.input, len(got), len(tt.want))
			}

			for i, want := range tt.want {
				b := got[i]
				if b.Key != want.key {
					t.Errorf("binding %d: key = %q, want %q", i, b.Key, want.key)
				}

				value, has := b.Value()
				if has == want.none {
					t.Errorf("binding %d: hasValue = %v, want %v", i, has, !want.none)
				}

				if value != want.value {
					t.Errorf("binding %d: value = %q, want %q", i, value, want.value)
				}
			}
		})
	}
}

func TestParseEntriesLossless(t *testing.T) {
	t.Parallel()

	// Concatenating entry spans must reproduce the input byte for byte.
	inputs := []string{
		"",
		"a=b",
		"a=b\n",
		"# comment\n\na=b\nc='d e'\n",
		"a=b\r\nc=d\r\n",
		"  leading=ws\nmalformed line here\ntrailing=ws  \n",
		"multi=\"a\nb\nc\"\nafter=1\n",
		"unterminated='oops\nnext=ok\n",
		"export a=b # note\n\n\n",
	}

	for _, input := range inputs {
		var sb strings.Builder
		for _, e := range ParseEntries(input) {
			sb.WriteString(e.Raw)
		}

		if got := sb.String(); got != input {
			t.Errorf("entry spans reassemble to %q, want %q", got, input)
		}
	}
}

func TestParseEntriesBindingRaw(t *testing.T) {
	t.Parallel()

	entries := ParseEntries("a=b\nc='d'\ne=f")

	want := []string{"a=b\n", "c='d'\n", "e=f"}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}

	for i, e := range entries {
		if e.Binding == nil {
			t.Fatalf("entry %d: not a binding", i)
		}

		if e.Raw != want[i] {
			t.Errorf("entry %d: raw = %q, want %q", i, e.Raw, want[i])
		}
	}
}

func TestParseReader(t *testing.T) {
	t.Parallel()

	got, err := ParseReader(strings.NewReader("a=b\nc=d\n"))
	if err != nil {
		t.Fatalf("ParseReader: %v", err)
	}

	if len(got) != 2 || got[0].Key != "a" || got[1].Key != "c" {
		t.Errorf("ParseReader returned %+v", got)
	}
}

func TestBindingSegments(t *testing.T) {
	t.Parallel()

	bindings := Parse(`a=un"dq"'sq'`)
	if len(bindings) != 1 {
		t.Fatalf("got %d bindings, want 1", len(bindings))
	}

	want := []Segment{
		{Text: "un", Quote: QuoteNone},
		{Text: "dq", Quote: QuoteDouble},
		{Text: "sq", Quote: QuoteSingle},
	}

	got := bindings[0].Segments
	if len(got) != len(want) {
		t.Fatalf("got %d segments, want %d", len(got), len(want))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
