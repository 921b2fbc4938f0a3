// Package dotenv parses line-oriented KEY=value documents ("env files"),
// expands POSIX-style ${NAME} parameter references in their values, and
// serializes individual bindings back into document lines.
//
// # Grammar
//
// A document is a sequence of lines. Informally:
//
//	Document  → Line*
//	Line      → Comment | Blank | Binding
//	Binding   → ["export" WS] Key ["=" Value] [Comment]
//	Key       → run of characters other than whitespace, '=', '#', quotes
//	Value     → Segment*
//	Segment   → Unquoted | "'" Single "'" | '"' Double '"'
//
// Adjacent segments of different quoting concatenate with no separator,
// so `"TE"'ST'` is the single value `TEST`. Quoted segments may span
// line terminators. A line with a key and no '=' declares a bare name
// with no value, which is distinct from an empty value.
//
// Escape processing depends on the segment's quoting:
//
//   - unquoted: none; backslashes are kept literally (a backslash before
//     '#' additionally prevents it from starting a comment)
//   - single-quoted: \' and \\ only
//   - double-quoted: \" \' \\ and the C-style singles (\n \t \r \f \b
//     \v \a); unrecognized escapes keep both characters
//
// Parsing never fails on malformed input: lines the parser cannot
// understand are skipped. [ParseEntries] retains them verbatim so a
// document can be rewritten around a single binding without disturbing
// any other byte.
//
// # Expansion
//
// Only ${...} tokens are expanded; a bare $NAME is always literal text.
// Inside the braces a name may be followed by one of the operators
// `-`, `:-`, `+`, `:+`, `?`, or `:?` and a word, with the usual POSIX
// semantics (default, alternate, required value). The word is itself
// expanded recursively. The required-value operators are the only way
// expansion can fail; they produce a [LookupError].
//
// Name lookup mixes a process-environment snapshot with values defined
// earlier in the same document. The [WithOverride] option chooses which
// side wins when both define a name; the choice is applied independently
// for every reference.
package dotenv
