package lang

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/vcalc/pkg"
)

// Binding strength of each production, weakest first.
const (
	precLowest = iota
	precEqual
	precCompare
	precArith
	precTerm
	precPower
	precUnary
	precHash
	precCall
	precAtom
)

func binaryPrec(k Kind) int {
	switch k {
	case KindEqual:
		return precEqual
	case KindNotEqual, KindLess, KindGreater, KindLessEqual, KindGreaterEqual,
		KindIs:
		return precCompare
	case KindAdd, KindSubtract:
		return precArith
	case KindMultiply, KindDivide, KindModulo:
		return precTerm
	case KindPower:
		return precPower
	case KindHash:
		return precHash
	}

	return precLowest
}

func nodePrec(n Node) int {
	switch n := n.(type) {
	case Set:
		return precLowest
	case Binary:
		return binaryPrec(n.Op.Kind)
	case Unary:
		return precUnary
	case Call:
		return precCall
	}

	return precAtom
}

// formatNode renders n with the fewest parentheses that preserve its
// structure when the result appears where min binding is required.
func formatNode(n Node, min int) string {
	var sb strings.Builder

	writeNode(&sb, n, min)

	return sb.String()
}

func writeNode(sb *strings.Builder, n Node, min int) {
	if n == nil {
		return
	}

	if nodePrec(n) < min {
		sb.WriteByte('(')
		writeNode(sb, n, precLowest)
		sb.WriteByte(')')

		return
	}

	switch n := n.(type) {
	case IntLit:
		sb.WriteString(strconv.FormatInt(n.Value, 10))

	case FloatLit:
		sb.WriteString(formatFloat(n.Value))

	case InfLit:
		sb.WriteString(symbols[KindInfinity])

	case PiLit:
		sb.WriteString(symbols[KindPI])

	case Ident:
		sb.WriteString(n.Var)

	case VectorLit:
		sb.WriteByte('[')

		for i, item := range n.Items {
			if i > 0 {
				sb.WriteByte(' ')
			}

			// A leading '-' would bind to the previous item.
			s := formatNode(item.Node, precLowest)
			if i > 0 && strings.HasPrefix(s, "-") {
				s = "(" + s + ")"
			}

			sb.WriteString(s)
		}

		sb.WriteByte(']')

	case Binary:
		p := binaryPrec(n.Op.Kind)

		// An unparenthesized target on the left would parse as assignment.
		if n.Op.Kind == KindEqual && isTargetNode(n.Left.Node) {
			sb.WriteByte('(')
			writeNode(sb, n.Left.Node, precLowest)
			sb.WriteByte(')')
		} else {
			writeNode(sb, n.Left.Node, p)
		}

		sb.WriteByte(' ')
		sb.WriteString(n.Op.Source())
		sb.WriteByte(' ')
		writeNode(sb, n.Right.Node, p+1)

	case Unary:
		sb.WriteString(n.Op.Source())
		writeNode(sb, n.Operand.Node, precUnary)

	case Set:
		writeNode(sb, n.Target.Node, precCall)
		sb.WriteString(" = ")
		writeNode(sb, n.Value.Node, precLowest)

	case Call:
		writeNode(sb, n.Callee.Node, precCall)
		sb.WriteByte('(')
		writeNode(sb, n.Arg.Node, precLowest)
		sb.WriteByte(')')

	default:
		sb.WriteString("<" + n.Name() + ">")
	}
}

func isTargetNode(n Node) bool {
	switch n.(type) {
	case Ident, Call:
		return true
	}

	return false
}

// formatFloat renders f as a float literal. Whole numbers keep a fractional
// part so they scan as floats again.
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "NaN"
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}

// ToMap converts s into nested maps for structured encoders.
func (s Spanned) ToMap() map[string]any {
	m := map[string]any{
		"node": "<nil>",
		"pos": map[string]any{
			"start":  s.Pos.Start,
			"end":    s.Pos.End,
			"line":   s.Pos.LineStart,
			"column": s.Pos.ColumnStart,
		},
	}

	if s.Node == nil {
		return m
	}

	m["node"] = s.Node.Name()

	switch n := s.Node.(type) {
	case IntLit:
		m["value"] = n.Value
	case FloatLit:
		m["value"] = n.Value
	case Ident:
		m["name"] = n.Var
	case VectorLit:
		items := make([]any, len(n.Items))
		for i, item := range n.Items {
			items[i] = item.ToMap()
		}

		m["items"] = items
	case Binary:
		m["op"] = n.Op.Source()
		m["left"] = n.Left.ToMap()
		m["right"] = n.Right.ToMap()
	case Unary:
		m["op"] = n.Op.Source()
		m["operand"] = n.Operand.ToMap()
	case Set:
		m["target"] = n.Target.ToMap()
		m["value"] = n.Value.ToMap()
	case Call:
		m["callee"] = n.Callee.ToMap()
		m["arg"] = n.Arg.ToMap()
	}

	return m
}

// ToMap converts the program into a map for structured encoders.
func (p *Program) ToMap() map[string]any {
	stmts := make([]any, len(p.Statements))
	for i, s := range p.Statements {
		stmts[i] = s.ToMap()
	}

	return map[string]any{
		"label":      p.Label,
		"statements": stmts,
	}
}

// Format writes the program in native syntax, one statement per line.
func (p *Program) Format(_ context.Context, w io.Writer) error {
	for _, s := range p.Statements {
		if _, err := fmt.Fprintln(w, s.String()); err != nil {
			return err
		}
	}

	return nil
}

// FormatJSON writes the program syntax tree as JSON.
func (p *Program) FormatJSON(_ context.Context, w io.Writer, indent int) error {
	var (
		data []byte
		err  error
	)

	if indent > 0 {
		data, err = json.MarshalIndent(p.ToMap(), "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(p.ToMap())
	}

	if err != nil {
		return pkg.ErrJSONMarshal.Wrap(err)
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

// FormatYAML writes the program syntax tree as YAML.
func (p *Program) FormatYAML(ctx context.Context, w io.Writer, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	data, err := yaml.MarshalContext(ctx, p.ToMap(), opts...)
	if err != nil {
		return pkg.ErrYAMLMarshal.Wrap(err)
	}

	_, err = fmt.Fprint(w, string(data))

	return err
}

// FormatTree writes an indented outline of the syntax tree with the source
// position of every node.
func (p *Program) FormatTree(_ context.Context, w io.Writer, indent int) error {
	if indent <= 0 {
		indent = 2
	}

	var sb strings.Builder

	for _, s := range p.Statements {
		writeTree(&sb, "", s, 0, indent)
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

func writeTree(sb *strings.Builder, role string, s Spanned, depth, indent int) {
	sb.WriteString(strings.Repeat(" ", depth*indent))

	if role != "" {
		sb.WriteString(role)
		sb.WriteString(": ")
	}

	if s.Node == nil {
		sb.WriteString("<nil>\n")

		return
	}

	sb.WriteString(s.Node.Name())

	switch n := s.Node.(type) {
	case IntLit, FloatLit, InfLit, PiLit, Ident:
		sb.WriteString(" " + n.String())
	case Binary:
		sb.WriteString(" " + n.Op.Source())
	case Unary:
		sb.WriteString(" " + n.Op.Source())
	}

	sb.WriteString(" " + s.Pos.String() + "\n")

	next := depth + 1

	switch n := s.Node.(type) {
	case VectorLit:
		for i, item := range n.Items {
			writeTree(sb, strconv.Itoa(i), item, next, indent)
		}
	case Binary:
		writeTree(sb, "left", n.Left, next, indent)
		writeTree(sb, "right", n.Right, next, indent)
	case Unary:
		writeTree(sb, "operand", n.Operand, next, indent)
	case Set:
		writeTree(sb, "target", n.Target, next, indent)
		writeTree(sb, "value", n.Value, next, indent)
	case Call:
		writeTree(sb, "callee", n.Callee, next, indent)
		writeTree(sb, "arg", n.Arg, next, indent)
	}
}
