package log

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the styles of the pretty text handler. Styles are bound to
// a renderer for the handler's writer, so color is dropped when the writer
// is not a terminal.
type palette struct {
	key, str, num, dur, time, msg, source, err lipgloss.Style
	yes, no                                    lipgloss.Style
	levels                                     map[Level]lipgloss.Style
}

func makePalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return palette{
		key:    fg("8"),
		str:    fg("6"),
		num:    fg("3"),
		dur:    fg("5"),
		time:   fg("4").Faint(true),
		msg:    r.NewStyle().Bold(true),
		source: fg("8").Italic(true),
		err:    fg("1"),
		yes:    fg("2"),
		no:     fg("1"),
		levels: map[Level]lipgloss.Style{
			LevelTrace: fg("5").Width(5),
			LevelDebug: fg("4").Width(5),
			LevelInfo:  fg("2").Width(5),
			LevelWarn:  fg("3").Bold(true).Width(5),
			LevelError: fg("1").Bold(true).Width(5),
		},
	}
}

func (p palette) level(l slog.Level) lipgloss.Style {
	switch {
	case l >= slog.LevelError:
		return p.levels[LevelError]
	case l >= slog.LevelWarn:
		return p.levels[LevelWarn]
	case l >= slog.LevelInfo:
		return p.levels[LevelInfo]
	case l >= slog.LevelDebug:
		return p.levels[LevelDebug]
	}

	return p.levels[LevelTrace]
}

// prettyHandler writes one styled line per record:
//
//	3:04PM WARN  message key=value group.key=value
type prettyHandler struct {
	opts    *slog.HandlerOptions
	palette palette
	mu      *sync.Mutex
	w       io.Writer
	prefix  string // dotted group prefix for keys of subsequent attrs
	attrs   []byte // attrs added with WithAttrs, already rendered
}

func newPrettyHandler(w io.Writer, c config) *prettyHandler {
	return &prettyHandler{
		opts:    c.handlerOptions(),
		palette: makePalette(w),
		mu:      &sync.Mutex{},
		w:       w,
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	if !r.Time.IsZero() {
		if t := h.opts.ReplaceAttr(nil, slog.Time(slog.TimeKey, r.Time)); !t.Equal(slog.Attr{}) {
			buf.WriteString(h.palette.time.Render(t.Value.String()))
			buf.WriteByte(' ')
		}
	}

	buf.WriteString(h.palette.level(r.Level).Render(
		strings.ToUpper(Level(r.Level).String())))

	if h.opts.AddSource {
		if src := r.Source(); src != nil && src.File != "" {
			buf.WriteByte(' ')
			buf.WriteString(h.palette.source.Render(
				shortFile(src.File) + ":" + strconv.Itoa(src.Line)))
		}
	}

	if r.Message != "" {
		buf.WriteByte(' ')
		buf.WriteString(h.palette.msg.Render(r.Message))
	}

	buf.Write(h.attrs)

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(buf, h.prefix, a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	buf := bytes.NewBuffer(bytes.Clone(h.attrs))
	for _, a := range attrs {
		h.writeAttr(buf, h.prefix, a)
	}

	c := *h
	c.attrs = buf.Bytes()

	return &c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.prefix = h.prefix + name + "."

	return &c
}

func (h *prettyHandler) writeAttr(buf *bytes.Buffer, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		group := a.Value.Group()
		if a.Key != "" {
			prefix += a.Key + "."
		}

		for _, g := range group {
			h.writeAttr(buf, prefix, g)
		}

		return
	}

	buf.WriteByte(' ')
	buf.WriteString(h.palette.key.Render(prefix + a.Key + "="))
	h.writeValue(buf, a.Value)
}

func (h *prettyHandler) writeValue(buf *bytes.Buffer, v slog.Value) {
	p := h.palette

	switch v.Kind() {
	case slog.KindString:
		buf.WriteString(p.str.Render(quote(v.String())))

	case slog.KindInt64:
		buf.WriteString(p.num.Render(strconv.FormatInt(v.Int64(), 10)))

	case slog.KindUint64:
		buf.WriteString(p.num.Render(strconv.FormatUint(v.Uint64(), 10)))

	case slog.KindFloat64:
		buf.WriteString(p.num.Render(strconv.FormatFloat(v.Float64(), 'g', -1, 64)))

	case slog.KindBool:
		if v.Bool() {
			buf.WriteString(p.yes.Render("true"))
		} else {
			buf.WriteString(p.no.Render("false"))
		}

	case slog.KindDuration:
		buf.WriteString(p.dur.Render(v.Duration().String()))

	case slog.KindTime:
		buf.WriteString(p.time.Render(v.Time().String()))

	case slog.KindAny:
		switch a := v.Any().(type) {
		case error:
			buf.WriteString(p.err.Render(quote(a.Error())))
		case slog.Level:
			buf.WriteString(p.level(a).Render(strings.ToUpper(Level(a).String())))
		default:
			buf.WriteString(p.str.Render(quote(v.String())))
		}

	default:
		buf.WriteString(p.str.Render(quote(v.String())))
	}
}

// quote quotes s only if it would be ambiguous unquoted.
func quote(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}

	return s
}

// shortFile trims a source path to its parent directory and file name.
func shortFile(path string) string {
	i := strings.LastIndexByte(path, '/')
	if i < 0 {
		return path
	}

	if j := strings.LastIndexByte(path[:i], '/'); j >= 0 {
		return path[j+1:]
	}

	return path
}
