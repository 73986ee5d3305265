package lang

import (
	"log/slog"
	"strconv"
	"unicode/utf8"
)

// Lex scans source into a sequence of lexemes terminated by a single
// [KindEOF] lexeme.
//
// White space produces no lexemes. A run of newlines produces one [KindNL]
// lexeme. Scanning stops at the first unrecognized character with an
// [ErrSyntax] error.
func Lex(source, label string) ([]Lexeme, error) {
	s := &scanner{input: source, label: label}

	out := make([]Lexeme, 0, len(source)/2+1)

	for !s.eof() {
		lx, ok, err := s.next()
		if err != nil {
			return nil, err
		}

		if ok {
			out = append(out, lx)
		}
	}

	return append(out, Lexeme{
		Token: Tok(KindEOF),
		Pos: Position{
			Start:       len(source),
			End:         len(source),
			LineStart:   s.line,
			LineEnd:     s.line,
			ColumnStart: s.col,
			ColumnEnd:   s.col,
		},
	}), nil
}

// scanner holds the lexer state.
type scanner struct {
	input string
	label string
	pos   int
	line  int
	col   int
}

func (s *scanner) eof() bool { return s.pos >= len(s.input) }

func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}

	return s.input[s.pos]
}

func (s *scanner) peekAt(n int) byte {
	if s.pos+n >= len(s.input) {
		return 0
	}

	return s.input[s.pos+n]
}

// span returns the position of input[start:s.pos] on the current line.
func (s *scanner) span(start int) Position {
	width := s.pos - start

	return Position{
		Start:       start,
		End:         s.pos,
		LineStart:   s.line,
		LineEnd:     s.line,
		ColumnStart: s.col,
		ColumnEnd:   s.col + width,
	}
}

// emit builds a lexeme spanning input[start:s.pos] and moves the column
// past it.
func (s *scanner) emit(start int, tok Token) Lexeme {
	pos := s.span(start)
	s.col = pos.ColumnEnd

	return Lexeme{Token: tok, Pos: pos}
}

// next scans one lexeme. It reports false for input that produces no lexeme.
func (s *scanner) next() (Lexeme, bool, error) {
	start := s.pos
	c := s.peek()

	switch {
	case isSpace(c):
		for isSpace(s.peek()) {
			s.pos++
		}

		s.col += s.pos - start

		return Lexeme{}, false, nil

	case c == '\n':
		for s.peek() == '\n' {
			s.pos++
		}

		count := s.pos - start
		lx := Lexeme{Token: Tok(KindNL), Pos: s.span(start)}
		// The run ends at the start of the line that follows it.
		lx.Pos.LineEnd = s.line + count
		lx.Pos.ColumnEnd = 0

		s.line += count
		s.col = 0

		return lx, true, nil

	case isDigit(c):
		return s.number(start)

	case isLetter(c):
		for isIdentifier(s.peek()) {
			s.pos++
		}

		word := s.input[start:s.pos]
		if k, ok := keywords[word]; ok {
			return s.emit(start, Tok(k)), true, nil
		}

		return s.emit(start, VarTok(word)), true, nil
	}

	if k, n := s.symbol(); n > 0 {
		s.pos += n

		return s.emit(start, Tok(k)), true, nil
	}

	r, size := utf8.DecodeRuneInString(s.input[s.pos:])
	if size == 0 {
		size = 1
	}

	s.pos += size
	pos := s.span(start)
	pos.ColumnEnd = pos.ColumnStart + 1

	return Lexeme{}, false, newError(ErrorSyntax, pos, s.label,
		"bad character '"+string(r)+"'").
		With(slog.Int("offset", start))
}

// number scans an integer or float literal.
func (s *scanner) number(start int) (Lexeme, bool, error) {
	for isDigit(s.peek()) {
		s.pos++
	}

	if s.peek() == '.' && isDigit(s.peekAt(1)) {
		s.pos++

		for isDigit(s.peek()) {
			s.pos++
		}

		text := s.input[start:s.pos]

		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Lexeme{}, false, newError(ErrorSyntax, s.span(start), s.label,
				"invalid float literal '"+text+"'").Wrap(err)
		}

		return s.emit(start, FloatTok(f)), true, nil
	}

	text := s.input[start:s.pos]

	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return Lexeme{}, false, newError(ErrorSyntax, s.span(start), s.label,
			"invalid int literal '"+text+"'").Wrap(err)
	}

	return s.emit(start, IntTok(i)), true, nil
}

// symbol matches the longest operator or delimiter at the current position.
func (s *scanner) symbol() (Kind, int) {
	c, d := s.peek(), s.peekAt(1)

	switch c {
	case '!':
		if d == '=' {
			return KindNotEqual, 2
		}
	case '<':
		if d == '=' {
			return KindLessEqual, 2
		}

		return KindLess, 1
	case '>':
		if d == '=' {
			return KindGreaterEqual, 2
		}

		return KindGreater, 1
	case '=':
		return KindEqual, 1
	case '+':
		return KindAdd, 1
	case '-':
		return KindSubtract, 1
	case '*':
		return KindMultiply, 1
	case '/':
		return KindDivide, 1
	case '^':
		return KindPower, 1
	case '%':
		return KindModulo, 1
	case '#':
		return KindHash, 1
	case '(':
		return KindGroupIn, 1
	case ')':
		return KindGroupOut, 1
	case '[':
		return KindVectorIn, 1
	case ']':
		return KindVectorOut, 1
	case '{':
		return KindBraceIn, 1
	case '}':
		return KindBraceOut, 1
	}

	return KindError, 0
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\f'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentifier(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '_'
}
