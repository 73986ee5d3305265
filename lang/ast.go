package lang

import "log/slog"

// Node is a syntax tree node.
type Node interface {
	// Name is the display name of the node kind used in diagnostics.
	Name() string
	// String renders the node as source text that parses back to it.
	String() string

	node()
}

// Spanned is a node together with the span of source it was parsed from.
type Spanned struct {
	Node Node
	Pos  Position
}

// String renders the node as source text.
func (s Spanned) String() string {
	if s.Node == nil {
		return ""
	}

	return s.Node.String()
}

// LogValue implements slog.LogValuer.
func (s Spanned) LogValue() slog.Value {
	name := "<nil>"
	if s.Node != nil {
		name = s.Node.Name()
	}

	return slog.GroupValue(
		slog.String("node", name),
		slog.Any("position", s.Pos),
	)
}

// IntLit is an integer literal.
type IntLit struct{ Value int64 }

// FloatLit is a float literal.
type FloatLit struct{ Value float64 }

// InfLit is the positive infinity keyword.
type InfLit struct{}

// PiLit is the pi keyword.
type PiLit struct{}

// Ident is a variable reference.
type Ident struct{ Var string }

// VectorLit is a bracketed vector literal.
type VectorLit struct{ Items []Spanned }

// Binary applies an infix operator.
type Binary struct {
	Op    Token
	Left  Spanned
	Right Spanned
}

// Unary applies a prefix operator.
type Unary struct {
	Op      Token
	Operand Spanned
}

// Set binds a variable, or defines a function when Target is a [Call].
type Set struct {
	Target Spanned
	Value  Spanned
}

// Call applies a function to a single argument.
type Call struct {
	Callee Spanned
	Arg    Spanned
}

func (IntLit) Name() string    { return "int" }
func (FloatLit) Name() string  { return "float" }
func (InfLit) Name() string    { return "infinity" }
func (PiLit) Name() string     { return "pi" }
func (Ident) Name() string     { return "variable" }
func (VectorLit) Name() string { return "vector" }
func (Binary) Name() string    { return "binary operation" }
func (Unary) Name() string     { return "unary operation" }
func (Set) Name() string       { return "assignment" }
func (Call) Name() string      { return "call" }

func (n IntLit) String() string    { return formatNode(n, precLowest) }
func (n FloatLit) String() string  { return formatNode(n, precLowest) }
func (n InfLit) String() string    { return formatNode(n, precLowest) }
func (n PiLit) String() string     { return formatNode(n, precLowest) }
func (n Ident) String() string     { return formatNode(n, precLowest) }
func (n VectorLit) String() string { return formatNode(n, precLowest) }
func (n Binary) String() string    { return formatNode(n, precLowest) }
func (n Unary) String() string     { return formatNode(n, precLowest) }
func (n Set) String() string       { return formatNode(n, precLowest) }
func (n Call) String() string      { return formatNode(n, precLowest) }

func (IntLit) node()    {}
func (FloatLit) node()  {}
func (InfLit) node()    {}
func (PiLit) node()     {}
func (Ident) node()     {}
func (VectorLit) node() {}
func (Binary) node()    {}
func (Unary) node()     {}
func (Set) node()       {}
func (Call) node()      {}
