package dotenv

import "strings"

// Resolve walks bindings in document order, expanding each value
// against the environment and the values resolved so far, and collects
// the results. A duplicate name replaces its earlier value without
// recomputing references that were already expanded. A bare declared
// name registers without a value but still resolves to the empty string
// when referenced later.
func Resolve(bindings []Binding, opts ...Option) (*Map, error) {
	cfg := makeConfig(opts...)
	values := NewMap()
	resolve := cfg.lookup(values)
	for i := range bindings {
		b := &bindings[i]
		if !b.HasValue {
			values.SetNone(b.Key)
			continue
		}
		if !cfg.interpolate {
			flat, _ := b.Value()
			values.Set(b.Key, flat)
			continue
		}
		expanded, err := expandBinding(b, resolve, cfg.expandSingle)
		if err != nil {
			return nil, err
		}
		values.Set(b.Key, expanded)
	}
	return values, nil
}

// Values parses and resolves a document in one call.
func Values(text string, opts ...Option) (*Map, error) {
	return Resolve(Parse(text), opts...)
}

// expandBinding expands a binding's segments and flattens the result.
// Single-quoted segments stay literal unless singleQuoted is set.
func expandBinding(b *Binding, resolve LookupFunc, singleQuoted bool) (string, error) {
	var sb strings.Builder
	for _, seg := range b.Segments {
		if seg.Quote == QuoteSingle && !singleQuoted {
			sb.WriteString(seg.Text)
			continue
		}
		expanded, err := Expand(seg.Text, resolve)
		if err != nil {
			return "", err
		}
		sb.WriteString(expanded)
	}
	return sb.String(), nil
}

// lookup builds the name-resolution function for one resolve pass. The
// document context and the environment snapshot are consulted in the
// order selected by the override switch, independently for every
// reference.
func (c config) lookup(ctx *Map) LookupFunc {
	document := func(name string) (string, bool) {
		// A name declared without a value counts as set to "".
		value, _, present := ctx.Lookup(name)
		return value, present
	}
	environment := func(name string) (string, bool) {
		value, ok := c.env[name]
		return value, ok
	}
	if c.override {
		return firstOf(document, environment)
	}
	return firstOf(environment, document)
}

func firstOf(primary, fallback LookupFunc) LookupFunc {
	return func(name string) (string, bool) {
		if value, ok := primary(name); ok {
			return value, true
		}
		return fallback(name)
	}
}
