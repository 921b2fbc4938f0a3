package dotenv

import "strings"

// LookupFunc reports the value bound to a name, if any.
type LookupFunc func(name string) (string, bool)

// Expand substitutes every well-formed ${...} parameter reference in
// value using resolve. Bare $NAME references and malformed tokens are
// left verbatim. The only possible error is a [LookupError] raised by a
// required-value operator.
func Expand(value string, resolve LookupFunc) (string, error) {
	if !strings.Contains(value, "${") {
		return value, nil
	}
	var sb strings.Builder
	sb.Grow(len(value))
	for i := 0; i < len(value); {
		if value[i] != '$' || i+1 >= len(value) || value[i+1] != '{' {
			sb.WriteByte(value[i])
			i++
			continue
		}
		end := matchingBrace(value, i+2)
		if end < 0 {
			// Unterminated reference.
			sb.WriteByte(value[i])
			i++
			continue
		}
		expanded, ok, err := expandParameter(value[i+2:end], resolve)
		if err != nil {
			return "", err
		}
		if ok {
			sb.WriteString(expanded)
		} else {
			sb.WriteString(value[i : end+1])
		}
		i = end + 1
	}
	return sb.String(), nil
}

// matchingBrace returns the index of the '}' closing the reference whose
// contents begin at start, accounting for nested ${...} tokens, or -1
// when the reference is unterminated.
func matchingBrace(s string, start int) int {
	depth := 0
	for i := start; i < len(s); i++ {
		switch {
		case s[i] == '$' && i+1 < len(s) && s[i+1] == '{':
			depth++
			i++
		case s[i] == '}':
			if depth == 0 {
				return i
			}
			depth--
		}
	}
	return -1
}

// expandParameter evaluates the contents of one ${...} token. The
// second result is false when the contents are not a valid name and
// operator, in which case the caller emits the token verbatim.
func expandParameter(expr string, resolve LookupFunc) (string, bool, error) {
	name, op, word, ok := splitParameter(expr)
	if !ok {
		return "", false, nil
	}
	value, set := resolve(name)
	switch op {
	case "":
		if set {
			return value, true, nil
		}
		return "", true, nil
	case "-":
		if !set {
			return expandWord(word, resolve)
		}
		return value, true, nil
	case ":-":
		if !set || value == "" {
			return expandWord(word, resolve)
		}
		return value, true, nil
	case "+":
		if set {
			return expandWord(word, resolve)
		}
		return "", true, nil
	case ":+":
		if set && value != "" {
			return expandWord(word, resolve)
		}
		return "", true, nil
	case "?":
		if !set {
			return "", false, &LookupError{Name: name, Message: word}
		}
		return value, true, nil
	case ":?":
		if !set || value == "" {
			return "", false, &LookupError{Name: name, Message: word}
		}
		return value, true, nil
	}
	return "", false, nil
}

// expandWord recursively expands the default or alternate text of an
// operator.
func expandWord(word string, resolve LookupFunc) (string, bool, error) {
	expanded, err := Expand(word, resolve)
	if err != nil {
		return "", false, err
	}
	return expanded, true, nil
}

// splitParameter divides the contents of a ${...} token into its name,
// operator, and word. The operator is one of "", "-", ":-", "+", ":+",
// "?", or ":?". Reports false for an invalid name or operator.
func splitParameter(expr string) (name, op, word string, ok bool) {
	if expr == "" || !isNameStart(expr[0]) {
		return "", "", "", false
	}
	i := 1
	for i < len(expr) && isNameChar(expr[i]) {
		i++
	}
	name, rest := expr[:i], expr[i:]
	if rest == "" {
		return name, "", "", true
	}
	if rest[0] == ':' {
		if len(rest) < 2 {
			return "", "", "", false
		}
		switch rest[1] {
		case '-', '+', '?':
			return name, rest[:2], rest[2:], true
		}
		return "", "", "", false
	}
	switch rest[0] {
	case '-', '+', '?':
		return name, rest[:1], rest[1:], true
	}
	return "", "", "", false
}

func isNameStart(c byte) bool {
	return c == '_' || ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z')
}

func isNameChar(c byte) bool {
	return isNameStart(c) || ('0' <= c && c <= '9')
}
