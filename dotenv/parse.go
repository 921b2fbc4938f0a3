package dotenv

import (
	"io"
	"strings"
)

// Quote classifies how a value segment was quoted in the source document.
type Quote int

const (
	QuoteNone   Quote = iota // unquoted run
	QuoteSingle              // '...'
	QuoteDouble              // "..."
)

// String returns the name of the quoting class.
func (q Quote) String() string {
	switch q {
	case QuoteNone:
		return "none"
	case QuoteSingle:
		return "single"
	case QuoteDouble:
		return "double"
	}
	return "unknown"
}

// Segment is one quoting run of a parsed value. Adjacent segments
// concatenate with no separator.
type Segment struct {
	Text  string
	Quote Quote
}

// Binding is one parsed key/value record from a document.
//
// HasValue is false when the source line declared a bare name with no
// '=' sign, which is distinct from an empty value. Raw is the original
// text span including its line terminator, so a document can be
// rewritten around one binding without disturbing any other byte.
type Binding struct {
	Key      string
	Segments []Segment
	HasValue bool
	Raw      string
}

// Value returns the flat, unexpanded value of the binding: the
// concatenation of all segment texts. The second result is false for a
// bare declared name.
func (b *Binding) Value() (string, bool) {
	if !b.HasValue {
		return "", false
	}
	if len(b.Segments) == 1 {
		return b.Segments[0].Text, true
	}
	var sb strings.Builder
	for _, s := range b.Segments {
		sb.WriteString(s.Text)
	}
	return sb.String(), true
}

// Entry is one region of a parsed document: a binding, or verbatim text
// for a blank line, a comment, or a line the parser could not
// understand. Concatenating the Raw spans of all entries reproduces the
// input exactly.
type Entry struct {
	Binding *Binding
	Raw     string
}

// Parse returns the bindings of the given document in source order.
// Malformed lines are skipped.
func Parse(text string) []Binding {
	entries := ParseEntries(text)
	bindings := make([]Binding, 0, len(entries))
	for _, e := range entries {
		if e.Binding != nil {
			bindings = append(bindings, *e.Binding)
		}
	}
	return bindings
}

// ParseEntries parses the given document into a lossless sequence of
// entries covering every input byte.
func ParseEntries(text string) []Entry {
	p := &parser{input: text}
	var entries []Entry
	for !p.eof() {
		entries = append(entries, p.parseEntry())
	}
	return entries
}

// ParseReader reads r to completion and parses its contents. The only
// error it can return is a read failure.
func ParseReader(r io.Reader) ([]Binding, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrReadInput.Wrap(err)
	}
	return Parse(string(data)), nil
}

// parser is a cursor over an input document.
type parser struct {
	input string
	pos   int
}

func (p *parser) eof() bool   { return p.pos >= len(p.input) }
func (p *parser) peek() byte  { return p.input[p.pos] }
func (p *parser) atEOL() bool { return p.eof() || p.peek() == '\n' || p.peek() == '\r' }

// skipBlank advances past spaces and tabs.
func (p *parser) skipBlank() {
	for !p.eof() && (p.peek() == ' ' || p.peek() == '\t') {
		p.pos++
	}
}

// skipLine advances past the remainder of the current line, including
// its terminator.
func (p *parser) skipLine() {
	for !p.eof() && p.peek() != '\n' {
		p.pos++
	}
	if !p.eof() {
		p.pos++
	}
}

// skipLineEnd consumes a single \n or \r\n terminator, if present.
func (p *parser) skipLineEnd() {
	if !p.eof() && p.peek() == '\r' {
		p.pos++
	}
	if !p.eof() && p.peek() == '\n' {
		p.pos++
	}
}

// parseEntry consumes one entry: a blank line, a comment line, a
// binding (possibly spanning multiple lines via quoted values), or a
// single malformed line retained verbatim.
func (p *parser) parseEntry() Entry {
	start := p.pos
	p.skipBlank()
	switch {
	case p.atEOL():
		p.skipLineEnd()
		return Entry{Raw: p.input[start:p.pos]}
	case p.peek() == '#':
		p.skipLine()
		return Entry{Raw: p.input[start:p.pos]}
	}
	b, ok := p.parseBinding()
	if !ok {
		// Malformed: rewind and retain the physical line verbatim.
		p.pos = start
		p.skipLine()
		return Entry{Raw: p.input[start:p.pos]}
	}
	b.Raw = p.input[start:p.pos]
	return Entry{Binding: b, Raw: b.Raw}
}

func (p *parser) parseBinding() (*Binding, bool) {
	key := p.parseKey()
	if key == "" {
		return nil, false
	}
	p.skipBlank()
	b := &Binding{Key: key}
	switch {
	case p.atEOL():
		// Bare name with no value.
		p.skipLineEnd()
		return b, true
	case p.peek() == '#':
		p.skipLine()
		return b, true
	case p.peek() != '=':
		return nil, false
	}
	p.pos++
	b.HasValue = true
	p.skipBlank()
	segments, ok := p.parseSegments()
	if !ok {
		return nil, false
	}
	b.Segments = segments
	return b, true
}

// parseKey scans the binding name, dropping an "export " prefix when one
// precedes an actual key (so `export a=1` binds "a" but a bare `export`
// line declares the name "export").
func (p *parser) parseKey() string {
	start := p.pos
	if rest := p.input[p.pos:]; strings.HasPrefix(rest, "export") {
		mark := p.pos + len("export")
		if mark < len(p.input) && (p.input[mark] == ' ' || p.input[mark] == '\t') {
			p.pos = mark
			p.skipBlank()
			if key := p.scanKey(); key != "" {
				return key
			}
			p.pos = start
		}
	}
	return p.scanKey()
}

func (p *parser) scanKey() string {
	start := p.pos
	for !p.eof() {
		switch p.peek() {
		case '=', '#', '\'', '"', ' ', '\t', '\n', '\r':
			return p.input[start:p.pos]
		}
		p.pos++
	}
	return p.input[start:p.pos]
}

// parseSegments scans the value as a run of quoted and unquoted
// segments, ending at an unescaped '#', a line terminator outside
// quotes, or end of input. Trailing unquoted whitespace is trimmed.
func (p *parser) parseSegments() ([]Segment, bool) {
	var segments []Segment
	for !p.eof() {
		switch p.peek() {
		case '\n', '\r':
			p.skipLineEnd()
			return trimTrailing(segments), true
		case '#':
			p.skipLine()
			return trimTrailing(segments), true
		case '\'':
			text, ok := p.scanQuoted('\'')
			if !ok {
				return nil, false
			}
			segments = append(segments, Segment{Text: text, Quote: QuoteSingle})
		case '"':
			text, ok := p.scanQuoted('"')
			if !ok {
				return nil, false
			}
			segments = append(segments, Segment{Text: text, Quote: QuoteDouble})
		default:
			segments = append(segments, Segment{Text: p.scanUnquoted(), Quote: QuoteNone})
		}
	}
	return trimTrailing(segments), true
}

// scanUnquoted consumes an unquoted run. No escape processing happens
// outside quotes, except that a backslash keeps a following '#' from
// starting a comment (both characters are retained).
func (p *parser) scanUnquoted() string {
	var sb strings.Builder
	for !p.eof() {
		c := p.peek()
		switch c {
		case '\'', '"', '\n', '\r', '#':
			return sb.String()
		case '\\':
			if p.pos+1 < len(p.input) && p.input[p.pos+1] == '#' {
				sb.WriteString(`\#`)
				p.pos += 2
				continue
			}
		}
		sb.WriteByte(c)
		p.pos++
	}
	return sb.String()
}

// scanQuoted consumes a quoted segment, starting at its opening quote.
// Line terminators inside the quotes belong to the value. Reports false
// if the input ends before the closing quote.
func (p *parser) scanQuoted(quote byte) (string, bool) {
	p.pos++
	var sb strings.Builder
	for !p.eof() {
		c := p.peek()
		switch {
		case c == quote:
			p.pos++
			return sb.String(), true
		case c == '\\' && p.pos+1 < len(p.input):
			next := p.input[p.pos+1]
			if esc, ok := unescape(quote, next); ok {
				sb.WriteByte(esc)
			} else {
				// Unrecognized escape: keep both characters.
				sb.WriteByte(c)
				sb.WriteByte(next)
			}
			p.pos += 2
		default:
			sb.WriteByte(c)
			p.pos++
		}
	}
	return "", false
}

// unescape maps a backslash escape to its replacement byte. Single
// quotes recognize only \' and \\; double quotes additionally recognize
// \" and the C-style single-character escapes.
func unescape(quote, c byte) (byte, bool) {
	switch c {
	case '\\', quote:
		return c, true
	}
	if quote == '\'' {
		return 0, false
	}
	switch c {
	case '\'':
		return '\'', true
	case 'n':
		return '\n', true
	case 't':
		return '\t', true
	case 'r':
		return '\r', true
	case 'f':
		return '\f', true
	case 'b':
		return '\b', true
	case 'v':
		return '\v', true
	case 'a':
		return '\a', true
	}
	return 0, false
}

// trimTrailing trims whitespace that follows the last quoted segment
// (or the whole value, when unquoted). Whitespace inside quotes is
// untouched.
func trimTrailing(segments []Segment) []Segment {
	if n := len(segments); n > 0 && segments[n-1].Quote == QuoteNone {
		segments[n-1].Text = strings.TrimRight(segments[n-1].Text, " \t")
		if segments[n-1].Text == "" {
			segments = segments[:n-1]
		}
	}
	return segments
}
