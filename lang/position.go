package lang

import (
	"log/slog"
	"strconv"
)

// Position is a span of source text.
//
// Start and End are byte offsets. Lines and columns are 0-based.
type Position struct {
	Start       int
	End         int
	LineStart   int
	LineEnd     int
	ColumnStart int
	ColumnEnd   int
}

// Extend widens p to cover o as well.
// Only the end fields are considered, so a range never shrinks.
func (p *Position) Extend(o Position) {
	p.End = max(p.End, o.End)
	p.LineEnd = max(p.LineEnd, o.LineEnd)
	p.ColumnEnd = max(p.ColumnEnd, o.ColumnEnd)
}

// Span returns a copy of p extended to cover o.
func (p Position) Span(o Position) Position {
	p.Extend(o)

	return p
}

// String renders the start of p as used in diagnostics.
func (p Position) String() string {
	return "<ln: " + strconv.Itoa(p.LineStart) +
		", column: " + strconv.Itoa(p.ColumnStart) + ">"
}

// LogValue implements slog.LogValuer.
func (p Position) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("line", p.LineStart),
		slog.Int("column", p.ColumnStart),
		slog.Int("start", p.Start),
		slog.Int("end", p.End),
	)
}
