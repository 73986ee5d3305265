package lang

// Parse builds the syntax tree of a single expression.
//
// The expression may be followed by newlines and must then reach the end of
// input. The first token that no rule accepts aborts parsing with
// [ErrUnexpectedToken] or [ErrExpectToken].
func Parse(lexemes []Lexeme, label string) (Spanned, error) {
	p := newParser(lexemes, label)

	expr, err := p.expr()
	if err != nil {
		return Spanned{}, err
	}

	if !p.is(KindNL, KindEOF) {
		return Spanned{}, errExpectToken(KindNL, p.peek(), label)
	}

	p.skipNL()

	if !p.is(KindEOF) {
		return Spanned{}, errExpectToken(KindEOF, p.peek(), label)
	}

	return expr, nil
}

// Program is a sequence of newline-separated statements.
type Program struct {
	Label      string
	Statements []Spanned
}

// ParseProgram builds the syntax trees of zero or more statements separated
// by newlines.
func ParseProgram(lexemes []Lexeme, label string) (*Program, error) {
	p := newParser(lexemes, label)
	prog := &Program{Label: label}

	p.skipNL()

	for !p.is(KindEOF) {
		stmt, err := p.expr()
		if err != nil {
			return nil, err
		}

		if !p.is(KindNL, KindEOF) {
			return nil, errExpectToken(KindNL, p.peek(), label)
		}

		prog.Statements = append(prog.Statements, stmt)

		p.skipNL()
	}

	return prog, nil
}

// parser holds the parser state.
type parser struct {
	lexemes []Lexeme
	label   string
	pos     int
	end     int // byte offset just past the last consumed lexeme
}

func newParser(lexemes []Lexeme, label string) *parser {
	if n := len(lexemes); n == 0 || lexemes[n-1].Kind != KindEOF {
		var eof Lexeme

		if n > 0 {
			last := lexemes[n-1].Pos
			eof.Pos = Position{
				Start:       last.End,
				End:         last.End,
				LineStart:   last.LineEnd,
				LineEnd:     last.LineEnd,
				ColumnStart: last.ColumnEnd,
				ColumnEnd:   last.ColumnEnd,
			}
		}

		eof.Token = Tok(KindEOF)
		lexemes = append(lexemes[:n:n], eof)
	}

	return &parser{lexemes: lexemes, label: label}
}

// peek returns the current lexeme. Past the end it keeps returning EOF.
func (p *parser) peek() Lexeme {
	if p.pos >= len(p.lexemes) {
		return p.lexemes[len(p.lexemes)-1]
	}

	return p.lexemes[p.pos]
}

func (p *parser) advance() Lexeme {
	lx := p.peek()
	if p.pos < len(p.lexemes) {
		p.pos++
	}

	p.end = lx.Pos.End

	return lx
}

func (p *parser) is(kinds ...Kind) bool {
	k := p.peek().Kind
	for _, want := range kinds {
		if k == want {
			return true
		}
	}

	return false
}

// adjacent reports whether the current lexeme starts exactly where the
// previous one ended.
func (p *parser) adjacent() bool {
	return p.pos > 0 && p.peek().Pos.Start == p.end
}

func (p *parser) skipNL() {
	for p.is(KindNL) {
		p.advance()
	}
}

// expr parses assignment, or a chain of '=' comparisons when the left side
// cannot be assigned to.
func (p *parser) expr() (Spanned, error) {
	left, err := p.comparison()
	if err != nil {
		return Spanned{}, err
	}

	if p.is(KindEqual) && isAssignTarget(left) {
		p.advance()

		value, err := p.expr()
		if err != nil {
			return Spanned{}, err
		}

		return Spanned{
			Node: Set{Target: left, Value: value},
			Pos:  left.Pos.Span(value.Pos),
		}, nil
	}

	return p.binaryLoop(left, p.comparison, KindEqual)
}

func (p *parser) comparison() (Spanned, error) {
	left, err := p.arith()
	if err != nil {
		return Spanned{}, err
	}

	return p.binaryLoop(left, p.arith,
		KindNotEqual, KindLess, KindGreater, KindLessEqual, KindGreaterEqual,
		KindIs)
}

func (p *parser) arith() (Spanned, error) {
	left, err := p.term()
	if err != nil {
		return Spanned{}, err
	}

	return p.binaryLoop(left, p.term, KindAdd, KindSubtract)
}

func (p *parser) term() (Spanned, error) {
	left, err := p.power()
	if err != nil {
		return Spanned{}, err
	}

	return p.binaryLoop(left, p.power, KindMultiply, KindDivide, KindModulo)
}

func (p *parser) power() (Spanned, error) {
	left, err := p.factor()
	if err != nil {
		return Spanned{}, err
	}

	return p.binaryLoop(left, p.factor, KindPower)
}

// binaryLoop folds left-associative operators of the given kinds, parsing
// each right operand with next.
func (p *parser) binaryLoop(
	left Spanned,
	next func() (Spanned, error),
	kinds ...Kind,
) (Spanned, error) {
	for p.is(kinds...) {
		op := p.advance()

		right, err := next()
		if err != nil {
			return Spanned{}, err
		}

		left = Spanned{
			Node: Binary{Op: op.Token, Left: left, Right: right},
			Pos:  left.Pos.Span(right.Pos),
		}
	}

	return left, nil
}

func (p *parser) factor() (Spanned, error) {
	if !p.is(KindSubtract) {
		return p.hash()
	}

	op := p.advance()

	operand, err := p.factor()
	if err != nil {
		return Spanned{}, err
	}

	return Spanned{
		Node: Unary{Op: op.Token, Operand: operand},
		Pos:  op.Pos.Span(operand.Pos),
	}, nil
}

func (p *parser) hash() (Spanned, error) {
	left, err := p.call()
	if err != nil {
		return Spanned{}, err
	}

	return p.binaryLoop(left, p.call, KindHash)
}

// call parses function application. The opening parenthesis must touch the
// callee, so "[f (1)]" remains a two-item vector.
func (p *parser) call() (Spanned, error) {
	callee, err := p.atom()
	if err != nil {
		return Spanned{}, err
	}

	for p.is(KindGroupIn) && p.adjacent() {
		p.advance()

		arg, err := p.expr()
		if err != nil {
			return Spanned{}, err
		}

		if !p.is(KindGroupOut) {
			return Spanned{}, errExpectToken(KindGroupOut, p.peek(), p.label)
		}

		closing := p.advance()

		callee = Spanned{
			Node: Call{Callee: callee, Arg: arg},
			Pos:  callee.Pos.Span(closing.Pos),
		}
	}

	return callee, nil
}

func (p *parser) atom() (Spanned, error) {
	lx := p.peek()

	switch lx.Kind {
	case KindInt:
		p.advance()

		return Spanned{Node: IntLit{Value: lx.Int}, Pos: lx.Pos}, nil

	case KindFloat:
		p.advance()

		return Spanned{Node: FloatLit{Value: lx.Float}, Pos: lx.Pos}, nil

	case KindVariable:
		p.advance()

		return Spanned{Node: Ident{Var: lx.Name}, Pos: lx.Pos}, nil

	case KindPI:
		p.advance()

		return Spanned{Node: PiLit{}, Pos: lx.Pos}, nil

	case KindInfinity:
		p.advance()

		return Spanned{Node: InfLit{}, Pos: lx.Pos}, nil

	case KindGroupIn:
		p.advance()

		inner, err := p.expr()
		if err != nil {
			return Spanned{}, err
		}

		if !p.is(KindGroupOut) {
			return Spanned{}, errExpectToken(KindGroupOut, p.peek(), p.label)
		}

		closing := p.advance()

		return Spanned{Node: inner.Node, Pos: lx.Pos.Span(closing.Pos)}, nil

	case KindVectorIn:
		return p.vector()
	}

	return Spanned{}, errUnexpectedToken(lx, p.label)
}

// vector parses a bracketed list of expressions. Newlines between items are
// ignored.
func (p *parser) vector() (Spanned, error) {
	opening := p.advance()
	items := make([]Spanned, 0)

	for p.skipNL(); !p.is(KindVectorOut); p.skipNL() {
		if p.is(KindEOF) {
			return Spanned{}, errExpectToken(KindVectorOut, p.peek(), p.label)
		}

		item, err := p.expr()
		if err != nil {
			return Spanned{}, err
		}

		items = append(items, item)
	}

	closing := p.advance()

	return Spanned{
		Node: VectorLit{Items: items},
		Pos:  opening.Pos.Span(closing.Pos),
	}, nil
}

// isAssignTarget reports whether s can appear on the left of an assignment:
// a bare variable or a function application. A group keeps its inner node
// but takes the span of its parentheses, so the span checks reject "(x)"
// and "(f(x))", which are compared instead.
func isAssignTarget(s Spanned) bool {
	switch n := s.Node.(type) {
	case Ident:
		return s.Pos.End-s.Pos.Start == len(n.Var)
	case Call:
		return s.Pos.Start == n.Callee.Pos.Start
	}

	return false
}
