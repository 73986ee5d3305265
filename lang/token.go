package lang

//go:generate go tool stringer --linecomment --type Kind,ErrorKind,TypeKind --output kind_string.go

import (
	"log/slog"
	"maps"
	"slices"
	"strconv"
)

// Kind identifies the lexical class of a [Token].
//
// The line comment of each constant is its display name in diagnostics.
type Kind int

const (
	KindWS           Kind = iota // white space
	KindNL                       // end of line
	KindEOF                      // end of file
	KindError                    // error
	KindInt                      // int
	KindFloat                    // float
	KindVariable                 // variable
	KindInfinity                 // infinity
	KindPI                       // pi
	KindIs                       // 'is'
	KindEqual                    // '='
	KindNotEqual                 // '!='
	KindLess                     // '<'
	KindGreater                  // '>'
	KindLessEqual                // '<='
	KindGreaterEqual             // '>='
	KindAdd                      // '+'
	KindSubtract                 // '-'
	KindMultiply                 // '*'
	KindDivide                   // '/'
	KindPower                    // '^'
	KindModulo                   // '%'
	KindHash                     // '#'
	KindGroupIn                  // '('
	KindGroupOut                 // ')'
	KindVectorIn                 // '['
	KindVectorOut                // ']'
	KindBraceIn                  // '{'
	KindBraceOut                 // '}'
)

// symbols maps every fixed-text kind to its source spelling.
var symbols = map[Kind]string{
	KindInfinity:     "inf",
	KindPI:           "pi",
	KindIs:           "is",
	KindEqual:        "=",
	KindNotEqual:     "!=",
	KindLess:         "<",
	KindGreater:      ">",
	KindLessEqual:    "<=",
	KindGreaterEqual: ">=",
	KindAdd:          "+",
	KindSubtract:     "-",
	KindMultiply:     "*",
	KindDivide:       "/",
	KindPower:        "^",
	KindModulo:       "%",
	KindHash:         "#",
	KindGroupIn:      "(",
	KindGroupOut:     ")",
	KindVectorIn:     "[",
	KindVectorOut:    "]",
	KindBraceIn:      "{",
	KindBraceOut:     "}",
}

// keywords are identifiers with their own token kind.
var keywords = map[string]Kind{
	"inf":      KindInfinity,
	"infinity": KindInfinity,
	"pi":       KindPI,
	"is":       KindIs,
}

// Keywords returns the reserved words in sorted order.
func Keywords() []string { return slices.Sorted(maps.Keys(keywords)) }

// Token is a lexical unit.
//
// Only the payload field matching Kind is set, so two tokens are equal
// (with ==) exactly when they have the same kind and payload.
type Token struct {
	Kind  Kind
	Int   int64
	Float float64
	Name  string
}

// Tok returns a token of a kind that carries no payload.
func Tok(k Kind) Token { return Token{Kind: k} }

// IntTok returns an integer literal token.
func IntTok(v int64) Token { return Token{Kind: KindInt, Int: v} }

// FloatTok returns a float literal token.
func FloatTok(v float64) Token { return Token{Kind: KindFloat, Float: v} }

// VarTok returns a variable token.
func VarTok(name string) Token { return Token{Kind: KindVariable, Name: name} }

// String returns the display name of t used in diagnostics.
func (t Token) String() string { return t.Kind.String() }

// Source returns the source text that produces t.
func (t Token) Source() string {
	switch t.Kind {
	case KindInt:
		return strconv.FormatInt(t.Int, 10)
	case KindFloat:
		return formatFloat(t.Float)
	case KindVariable:
		return t.Name
	case KindNL:
		return "\n"
	case KindWS:
		return " "
	}

	return symbols[t.Kind]
}

// LogValue implements slog.LogValuer.
func (t Token) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("kind", t.Kind.String()),
		slog.String("text", t.Source()),
	)
}

// Lexeme is a token together with the span it was scanned from.
type Lexeme struct {
	Token
	Pos Position
}
