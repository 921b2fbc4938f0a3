package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"
)

// ANSI escape sequences for pretty output.
const (
	ansiReset   = "\033[0m"
	ansiGray    = "\033[90m"
	ansiRed     = "\033[31m"
	ansiGreen   = "\033[32m"
	ansiYellow  = "\033[33m"
	ansiBlue    = "\033[34m"
	ansiMagenta = "\033[35m"
	ansiCyan    = "\033[36m"
)

func levelColor(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return ansiRed
	case level >= slog.LevelWarn:
		return ansiYellow
	case level >= slog.LevelInfo:
		return ansiGreen
	}
	return ansiBlue
}

// prettyTextHandler renders records as colorized key=value lines.
type prettyTextHandler struct {
	opts  slog.HandlerOptions
	mu    *sync.Mutex
	w     io.Writer
	attrs []slog.Attr
}

func newPrettyTextHandler(w io.Writer, opts *slog.HandlerOptions) *prettyTextHandler {
	return &prettyTextHandler{
		opts: *opts,
		mu:   &sync.Mutex{},
		w:    w,
	}
}

func (h *prettyTextHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *prettyTextHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	if !r.Time.IsZero() {
		h.writeAttr(buf, slog.Time(slog.TimeKey, r.Time))
	}

	h.writeAttr(buf, slog.Any(slog.LevelKey, r.Level))

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			h.writeAttr(buf, slog.String(slog.SourceKey, fmt.Sprintf("%s:%d", src.File, src.Line)))
		}
	}

	h.writeAttr(buf, slog.String(slog.MessageKey, r.Message))

	for _, a := range h.attrs {
		h.writeAttr(buf, a)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(buf, a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...)

	return &clone
}

func (h *prettyTextHandler) WithGroup(string) slog.Handler {
	// Groups are flattened in pretty output.
	return h
}

func (h *prettyTextHandler) writeAttr(buf *bytes.Buffer, a slog.Attr) {
	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}

	buf.WriteString(ansiGray)
	buf.WriteString(a.Key)
	buf.WriteString(ansiReset)
	buf.WriteByte('=')
	h.writeValue(buf, a.Value.Resolve())
}

func (h *prettyTextHandler) writeValue(buf *bytes.Buffer, v slog.Value) {
	switch v.Kind() {
	case slog.KindString:
		writeColored(buf, ansiCyan, v.String())

	case slog.KindInt64:
		writeColored(buf, ansiYellow, strconv.FormatInt(v.Int64(), 10))

	case slog.KindUint64:
		writeColored(buf, ansiYellow, strconv.FormatUint(v.Uint64(), 10))

	case slog.KindFloat64:
		writeColored(buf, ansiYellow, strconv.FormatFloat(v.Float64(), 'g', -1, 64))

	case slog.KindBool:
		if v.Bool() {
			writeColored(buf, ansiGreen, "true")
		} else {
			writeColored(buf, ansiRed, "false")
		}

	case slog.KindDuration:
		writeColored(buf, ansiMagenta, v.Duration().String())

	case slog.KindTime:
		writeColored(buf, ansiBlue, v.Time().String())

	case slog.KindGroup:
		for i, a := range v.Group() {
			if i > 0 {
				buf.WriteByte(' ')
			}

			buf.WriteString(ansiGray)
			buf.WriteString(a.Key)
			buf.WriteString(ansiReset)
			buf.WriteByte('=')
			h.writeValue(buf, a.Value.Resolve())
		}

	case slog.KindAny:
		if level, ok := v.Any().(slog.Level); ok {
			writeColored(buf, levelColor(level), Level(level).String())

			return
		}

		writeColored(buf, ansiCyan, v.String())

	default:
		writeColored(buf, ansiCyan, v.String())
	}
}

func writeColored(buf *bytes.Buffer, color, s string) {
	buf.WriteString(color)
	buf.WriteString(s)
	buf.WriteString(ansiReset)
}

// prettyJSONHandler renders records as indented, colorized objects.
type prettyJSONHandler struct {
	opts  slog.HandlerOptions
	mu    *sync.Mutex
	w     io.Writer
	attrs []slog.Attr
}

func newPrettyJSONHandler(w io.Writer, opts *slog.HandlerOptions) *prettyJSONHandler {
	return &prettyJSONHandler{
		opts: *opts,
		mu:   &sync.Mutex{},
		w:    w,
	}
}

func (h *prettyJSONHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *prettyJSONHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)
	buf.WriteString("{\n")

	first := true

	if !r.Time.IsZero() {
		h.writeField(buf, slog.TimeKey, r.Time.Format("2006-01-02T15:04:05Z07:00"), &first)
	}

	h.writeField(buf, slog.LevelKey, Level(r.Level).String(), &first)

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			h.writeField(buf, slog.SourceKey, fmt.Sprintf("%s:%d", src.File, src.Line), &first)
		}
	}

	h.writeField(buf, slog.MessageKey, r.Message, &first)

	for _, a := range h.attrs {
		h.writeField(buf, a.Key, a.Value.Resolve().Any(), &first)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.writeField(buf, a.Key, a.Value.Resolve().Any(), &first)

		return true
	})

	buf.WriteString("\n}\n")

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyJSONHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...)

	return &clone
}

func (h *prettyJSONHandler) WithGroup(string) slog.Handler {
	return h
}

func (h *prettyJSONHandler) writeField(buf *bytes.Buffer, key string, value any, first *bool) {
	if !*first {
		buf.WriteString(",\n")
	}

	*first = false

	buf.WriteString("  ")
	buf.WriteString(ansiGray)
	buf.WriteString(key)
	buf.WriteString(ansiReset)
	buf.WriteString(": ")
	h.writeJSONValue(buf, value)
}

func (h *prettyJSONHandler) writeJSONValue(buf *bytes.Buffer, v any) {
	switch val := v.(type) {
	case string:
		writeColored(buf, ansiCyan, val)

	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		buf.WriteString(ansiYellow)
		fmt.Fprint(buf, val)
		buf.WriteString(ansiReset)

	case bool:
		if val {
			writeColored(buf, ansiGreen, "true")
		} else {
			writeColored(buf, ansiRed, "false")
		}

	case nil:
		writeColored(buf, ansiGray, "null")

	default:
		buf.WriteString(ansiCyan)
		fmt.Fprint(buf, val)
		buf.WriteString(ansiReset)
	}
}
