package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// prettyHandler implements a colorized key=value handler for the process
// renderer. The logger name is written ahead of the message so that lines
// from different subsystems line up.
type prettyHandler struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	attrs  []slog.Attr
	group  string
	key    lipgloss.Style
	str    lipgloss.Style
	num    lipgloss.Style
	name   lipgloss.Style
	levels map[slog.Level]lipgloss.Style
}

func newPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *prettyHandler {
	lip := lipgloss.NewRenderer(w)

	levels := make(map[slog.Level]lipgloss.Style, len(AllLevels()))
	for _, level := range AllLevels() {
		_, color := level.banner()
		levels[slog.Level(level)] = lip.NewStyle().Foreground(color)
	}

	return &prettyHandler{
		opts:   *opts,
		mu:     &sync.Mutex{},
		w:      w,
		key:    lip.NewStyle().Foreground(lipgloss.Color("8")),
		str:    lip.NewStyle().Foreground(lipgloss.Color("6")),
		num:    lip.NewStyle().Foreground(lipgloss.Color("3")),
		name:   lip.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
		levels: levels,
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	threshold := slog.LevelDebug
	if h.opts.Level != nil {
		threshold = h.opts.Level.Level()
	}

	return level >= threshold
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	if !r.Time.IsZero() {
		h.writeAttr(buf, h.replace(slog.Time(slog.TimeKey, r.Time)))
	}

	lvl := h.replace(slog.Any(slog.LevelKey, r.Level))
	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}

	style, ok := h.levels[r.Level]
	if !ok {
		style = h.str
	}

	buf.WriteString(style.Render(lvl.Value.String()))

	if h.opts.AddSource && r.PC != 0 {
		fs := runtimeFrame(r.PC)
		h.writeAttr(buf, slog.String(slog.SourceKey, fmt.Sprintf("%s:%d", fs.File, fs.Line)))
	}

	var name string

	rest := make([]slog.Attr, 0, r.NumAttrs()+len(h.attrs))
	rest = append(rest, h.attrs...)

	r.Attrs(func(a slog.Attr) bool {
		if a.Key == nameKey && h.group == "" {
			name = a.Value.String()

			return true
		}

		rest = append(rest, h.qualify(a))

		return true
	})

	if name != "" {
		buf.WriteByte(' ')
		buf.WriteString(h.name.Render(name))
	}

	buf.WriteByte(' ')
	buf.WriteString(r.Message)

	for _, a := range rest {
		h.writeAttr(buf, a)
	}

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = slices.Clip(h.attrs)

	for _, a := range attrs {
		c.attrs = append(c.attrs, h.qualify(a))
	}

	return &c
}

// WithGroup qualifies the keys of later attributes with name, joined by dots
// as slog's text handler does.
func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.group = h.qualify(slog.String(name, "")).Key

	return &c
}

func (h *prettyHandler) qualify(a slog.Attr) slog.Attr {
	if h.group != "" {
		a.Key = h.group + "." + a.Key
	}

	return a
}

func (h *prettyHandler) replace(a slog.Attr) slog.Attr {
	if h.opts.ReplaceAttr == nil {
		return a
	}

	return h.opts.ReplaceAttr(nil, a)
}

func (h *prettyHandler) writeAttr(buf *bytes.Buffer, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}

	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}

	buf.WriteString(h.key.Render(a.Key))
	buf.WriteByte('=')
	h.writeValue(buf, a.Value.Resolve())
}

func (h *prettyHandler) writeValue(buf *bytes.Buffer, v slog.Value) {
	switch v.Kind() {
	case slog.KindString:
		buf.WriteString(h.str.Render(v.String()))

	case slog.KindInt64:
		buf.WriteString(h.num.Render(strconv.FormatInt(v.Int64(), 10)))

	case slog.KindUint64:
		buf.WriteString(h.num.Render(strconv.FormatUint(v.Uint64(), 10)))

	case slog.KindFloat64:
		buf.WriteString(h.num.Render(strconv.FormatFloat(v.Float64(), 'g', -1, 64)))

	case slog.KindBool, slog.KindDuration, slog.KindTime:
		buf.WriteString(h.num.Render(v.String()))

	case slog.KindAny:
		buf.WriteString(h.str.Render(FormatValue(v.Any())))

	default:
		buf.WriteString(h.str.Render(v.String()))
	}
}
