package cmd

import (
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/denv/dotenv"
)

// Output formats recognized by the list command.
const (
	formatShell  = "shell"  // key='value' lines, parseable by the engine
	formatExport = "export" // shell lines with an "export " prefix
	formatSimple = "simple" // key=value lines, no quoting
	formatJSON   = "json"
	formatYAML   = "yaml"
	formatTable  = "table"
)

// formatValues renders a resolved map in the named output format.
// Names declared without a value render as null in json and yaml and as
// an empty value elsewhere.
func formatValues(values *dotenv.Map, format string) (string, error) {
	switch format {
	case formatShell:
		return formatLines(values, func(key, value string) string {
			return dotenv.Render(key, value)
		}), nil

	case formatExport:
		return formatLines(values, func(key, value string) string {
			return "export " + dotenv.Render(key, value)
		}), nil

	case formatSimple:
		return formatLines(values, func(key, value string) string {
			return key + "=" + value
		}), nil

	case formatJSON:
		return formatJSONObject(values)

	case formatYAML:
		return formatYAMLMapping(values)

	case formatTable:
		return formatTableView(values), nil
	}

	return "", ErrUnknownFormat.With(slog.String("format", format))
}

func formatLines(values *dotenv.Map, line func(key, value string) string) string {
	var sb strings.Builder

	for _, key := range values.Keys() {
		value, _, _ := values.Lookup(key)
		sb.WriteString(line(key, value))
		sb.WriteByte('\n')
	}

	return sb.String()
}

// formatJSONObject writes the map as one JSON object, preserving the
// first-seen key order the stdlib encoder would discard.
func formatJSONObject(values *dotenv.Map) (string, error) {
	var sb strings.Builder

	sb.WriteString("{\n")

	for i, key := range values.Keys() {
		if i > 0 {
			sb.WriteString(",\n")
		}

		name, err := json.Marshal(key)
		if err != nil {
			return "", ErrJSONMarshal.Wrap(err)
		}

		sb.WriteString("  ")
		sb.Write(name)
		sb.WriteString(": ")

		value, hasValue, _ := values.Lookup(key)
		if !hasValue {
			sb.WriteString("null")

			continue
		}

		encoded, err := json.Marshal(value)
		if err != nil {
			return "", ErrJSONMarshal.Wrap(err)
		}

		sb.Write(encoded)
	}

	sb.WriteString("\n}\n")

	return sb.String(), nil
}

func formatYAMLMapping(values *dotenv.Map) (string, error) {
	mapping := make(yaml.MapSlice, 0, values.Len())

	for _, key := range values.Keys() {
		value, hasValue, _ := values.Lookup(key)

		item := yaml.MapItem{Key: key}
		if hasValue {
			item.Value = value
		}

		mapping = append(mapping, item)
	}

	encoded, err := yaml.Marshal(mapping)
	if err != nil {
		return "", ErrYAMLMarshal.Wrap(err)
	}

	return string(encoded), nil
}

func formatTableView(values *dotenv.Map) string {
	view := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("KEY", "VALUE")

	for _, key := range values.Keys() {
		value, _, _ := values.Lookup(key)
		view.Row(key, value)
	}

	return view.Render() + "\n"
}
