package repl

import (
	"strings"

	"github.com/ardnew/vcalc/lang"
)

// functionCall is the call whose argument the cursor is in.
type functionCall struct {
	name   string
	inCall bool
}

// detectFunctionCall finds the innermost unclosed '(' before the cursor and
// reports the identifier touching it. A '(' preceded by anything else opens a
// group, not a call.
func detectFunctionCall(input string, cursor int) functionCall {
	cursor = min(max(cursor, 0), len(input))

	depth := 0
	open := -1

	for i := cursor - 1; i >= 0 && open < 0; i-- {
		switch input[i] {
		case ')':
			depth++
		case '(':
			if depth == 0 {
				open = i
			}

			depth--
		}
	}

	if open < 0 {
		return functionCall{}
	}

	start := open
	for start > 0 && isIdentByte(input[start-1]) {
		start--
	}

	// Identifiers start with a letter.
	for start < open && !isLetterByte(input[start]) {
		start++
	}

	if start == open {
		return functionCall{}
	}

	return functionCall{name: input[start:open], inCall: true}
}

func isLetterByte(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIdentByte(c byte) bool {
	return isLetterByte(c) || ('0' <= c && c <= '9') || c == '_'
}

// signature describes a callable for the hint line.
type signature struct {
	name  string
	param string
	doc   string
}

// lookupSignature resolves name the way the interpreter resolves a callee:
// a binding first, then a builtin.
func lookupSignature(env *lang.Env, name string) (signature, bool) {
	if v, ok := env.Get(name); ok {
		fn, ok := v.(*lang.Function)
		if !ok {
			return signature{}, false
		}

		return signature{name: name, param: fn.Param, doc: fn.Body.String()}, true
	}

	if b, ok := lang.LookupBuiltin(name); ok {
		return signature{name: b.Name, param: b.Param, doc: b.Doc}, true
	}

	return signature{}, false
}

// render returns the signature with its parameter highlighted, followed by
// the function body or builtin description.
func (s signature) render() string {
	var b strings.Builder

	b.WriteString(signatureNameStyle.Render(s.name))
	b.WriteString(signatureStyle.Render("("))
	b.WriteString(currentParamStyle.Render(s.param))
	b.WriteString(signatureStyle.Render(")"))

	if s.doc != "" {
		b.WriteString(signatureStyle.Render("  " + s.doc))
	}

	return b.String()
}
