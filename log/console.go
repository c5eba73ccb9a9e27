package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-yaml"
)

// Console is an output backend with one write channel per severity class.
//
// Each call receives a rendered prefix (level banner, timestamp, and logger
// name) followed by the message and, when the call carried extra data, a
// single trailing []any holding all of it in call order.
type Console interface {
	Error(prefix string, args ...any)
	Warn(prefix string, args ...any)
	Log(prefix string, args ...any)
}

// Channel identifies a [Console] write channel.
type Channel int

const (
	ChannelLog   Channel = iota // log
	ChannelWarn                 // warn
	ChannelError                // error
)

// String returns the channel name.
func (c Channel) String() string {
	switch c {
	case ChannelLog:
		return "log"
	case ChannelWarn:
		return "warn"
	case ChannelError:
		return "error"
	default:
		return ""
	}
}

// Channel returns the console channel that carries messages at level l.
// Every other level, defined or not, uses the log channel.
func (l Level) Channel() Channel {
	switch l {
	case LevelError:
		return ChannelError
	case LevelWarn:
		return ChannelWarn
	default:
		return ChannelLog
	}
}

// banner returns the upper-case label and colour of the level banner.
func (l Level) banner() (string, lipgloss.TerminalColor) {
	switch l {
	case LevelError:
		return "ERROR", lipgloss.Color("1")
	case LevelWarn:
		return "WARN", lipgloss.Color("3")
	case LevelInfo:
		return "INFO", lipgloss.Color("7")
	case LevelDebug:
		return "DEBUG", lipgloss.Color("#7CB9E8")
	case LevelTrace:
		return "TRACE", lipgloss.Color("8")
	default:
		return strings.ToUpper(l.String()), lipgloss.NoColor{}
	}
}

// ConsoleRenderer formats records for a [Console].
// Rendering is presentation only and never alters the record.
type ConsoleRenderer struct {
	console    Console
	formatTime FormatTime
	timeStyle  lipgloss.Style
	nameStyle  lipgloss.Style
	banners    map[Level]string
}

// NewConsoleRenderer returns a renderer writing to console. Only the time
// layout and pretty options are consulted. A nil console selects a
// [StreamConsole] on the standard streams.
func NewConsoleRenderer(console Console, opts ...Option) *ConsoleRenderer {
	return newConsoleRenderer(apply(makeConfig(opts...), WithConsole(console)))
}

func newConsoleRenderer(cfg config) *ConsoleRenderer {
	console := cfg.console
	if console == nil {
		console = NewStreamConsole(os.Stdout, os.Stderr)
	}

	lip := lipgloss.DefaultRenderer()
	if s, ok := console.(interface{ Renderer() *lipgloss.Renderer }); ok {
		lip = s.Renderer()
	}

	c := &ConsoleRenderer{
		console:    console,
		formatTime: cfg.formatTime,
		timeStyle:  lip.NewStyle(),
		nameStyle:  lip.NewStyle(),
		banners:    make(map[Level]string, len(levels)),
	}

	if cfg.pretty {
		c.timeStyle = c.timeStyle.Foreground(lipgloss.Color("7"))
		c.nameStyle = c.nameStyle.Bold(true).Foreground(lipgloss.Color("3"))
	}

	for _, level := range levels {
		label, color := level.banner()
		if cfg.pretty {
			label = lip.NewStyle().Foreground(color).Render(label)
		}

		c.banners[level] = label
	}

	return c
}

// Render writes r to the console channel selected by its level.
func (c *ConsoleRenderer) Render(r Record) {
	prefix, args := c.Format(r)

	switch r.Meta.LogLevel.Channel() {
	case ChannelError:
		c.console.Error(prefix, args...)
	case ChannelWarn:
		c.console.Warn(prefix, args...)
	case ChannelLog:
		c.console.Log(prefix, args...)
	}
}

// Format returns the prefix and argument list Render passes to the console.
// The arguments hold the message, followed by one []any with all data when
// the record carries any.
func (c *ConsoleRenderer) Format(r Record) (prefix string, args []any) {
	name := r.Meta.Name
	if name == "" {
		name = RootName
	}

	part := make([]string, 0, 3)

	if banner, ok := c.banners[r.Meta.LogLevel]; ok {
		part = append(part, banner)
	} else {
		label, _ := r.Meta.LogLevel.banner()
		part = append(part, label)
	}

	if ts := c.formatTime(r.Meta.Date); ts != "" {
		part = append(part, c.timeStyle.Render("["+ts+"]"))
	}

	part = append(part, c.nameStyle.Render(name))

	args = []any{r.Msg}
	if len(r.Data) > 0 {
		args = append(args, r.Data)
	}

	return strings.Join(part, " "), args
}

func (c *ConsoleRenderer) render(r Record, _ uintptr) { c.Render(r) }

// StreamConsole is a [Console] writing one line per call to a pair of
// streams: the error and warn channels share errOut, the log channel uses out.
type StreamConsole struct {
	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer
	lip    *lipgloss.Renderer
}

// NewStreamConsole returns a console writing to out and errOut.
// Nil writers are replaced with [io.Discard].
func NewStreamConsole(out, errOut io.Writer) *StreamConsole {
	if out == nil {
		out = io.Discard
	}

	if errOut == nil {
		errOut = io.Discard
	}

	return &StreamConsole{
		out:    out,
		errOut: errOut,
		lip:    lipgloss.NewRenderer(out),
	}
}

// Renderer returns the lipgloss renderer bound to the console's output.
func (s *StreamConsole) Renderer() *lipgloss.Renderer { return s.lip }

// Error implements [Console].
func (s *StreamConsole) Error(prefix string, args ...any) {
	s.write(s.errOut, prefix, args)
}

// Warn implements [Console].
func (s *StreamConsole) Warn(prefix string, args ...any) {
	s.write(s.errOut, prefix, args)
}

// Log implements [Console].
func (s *StreamConsole) Log(prefix string, args ...any) {
	s.write(s.out, prefix, args)
}

func (s *StreamConsole) write(w io.Writer, prefix string, args []any) {
	var sb strings.Builder

	sb.WriteString(prefix)

	for _, arg := range args {
		sb.WriteByte(' ')
		sb.WriteString(FormatValue(arg))
	}

	sb.WriteByte('\n')

	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = io.WriteString(w, sb.String())
}

// FormatValue renders a console argument on a single line. Strings are
// written verbatim; collections are rendered in YAML flow style. Errors and
// other values implementing [slog.LogValuer] are rendered through their log
// value so that structured attributes are kept.
func FormatValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}

	v = plain(v)
	if s, ok := v.(string); ok {
		return s
	}

	b, err := yaml.MarshalWithOptions(v, yaml.Flow(true))
	if err != nil {
		return fmt.Sprint(v)
	}

	return strings.TrimSpace(string(b))
}

// plain replaces values the YAML encoder cannot represent usefully with
// their textual or structured form, descending into collections.
func plain(v any) any {
	switch val := v.(type) {
	case slog.LogValuer:
		return plainValue(val.LogValue().Resolve())

	case error:
		return val.Error()

	case fmt.Stringer:
		return val.String()

	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = plain(e)
		}

		return out

	case map[string]any:
		out := make(map[string]any, len(val))
		for k, e := range val {
			out[k] = plain(e)
		}

		return out

	default:
		return v
	}
}

func plainValue(v slog.Value) any {
	if v.Kind() != slog.KindGroup {
		return plain(v.Any())
	}

	group := v.Group()
	out := make(map[string]any, len(group))

	for _, a := range group {
		out[a.Key] = plainValue(a.Value.Resolve())
	}

	return out
}
