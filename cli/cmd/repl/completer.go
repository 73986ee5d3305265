package repl

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/vcalc/lang"
)

// ctrlCommands are the control-mode commands offered for completion.
var ctrlCommands = []string{
	"help", "vars", "load", "edit", "reset", "clear", "quit",
}

// isWordBoundary reports whether r ends an identifier for completion
// purposes: whitespace and every operator or bracket of the language.
func isWordBoundary(r rune) bool {
	switch r {
	case ' ', '\t',
		'(', ')', '[', ']', '{', '}',
		'+', '-', '*', '/', '^', '%', '#',
		'<', '>', '=', '!':
		return true
	}

	return false
}

// wordBounds returns the word under the cursor and its byte offsets in
// input. The word is empty when the cursor sits on a boundary.
func wordBounds(input string, cursor int) (word string, start, end int) {
	cursor = min(max(cursor, 0), len(input))

	start = cursor
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if isWordBoundary(r) {
			break
		}

		start -= size
	}

	end = cursor
	for end < len(input) {
		r, size := utf8.DecodeRuneInString(input[end:])
		if isWordBoundary(r) {
			break
		}

		end += size
	}

	return input[start:end], start, end
}

// evalCandidates returns the names that can start an expression: bindings of
// env, then builtins not shadowed by a binding, then keywords.
func evalCandidates(env *lang.Env) []string {
	names := env.Names()

	for _, b := range lang.Builtins() {
		if _, bound := env.Get(b.Name); !bound {
			names = append(names, b.Name)
		}
	}

	return append(names, lang.Keywords()...)
}

// computeMatches ranks the completion candidates against the word at the
// cursor. An empty word has no matches so the hint line stays visible.
func (m model) computeMatches() (
	matches fuzzy.Matches,
	wordStart, wordEnd int,
) {
	word, wordStart, wordEnd := wordBounds(m.input.Value(), m.input.Position())
	if word == "" {
		return nil, wordStart, wordEnd
	}

	candidates := ctrlCommands
	if m.mode == modeEval {
		candidates = evalCandidates(m.env)
	}

	return fuzzy.Find(word, candidates), wordStart, wordEnd
}

// renderCandidateBar renders the matches on one line, ellipsized to width.
// The candidate at suggIdx is highlighted while tab-cycling.
func renderCandidateBar(
	m model,
	width int,
) string {
	if len(m.matches) == 0 || width <= 0 {
		return ""
	}

	const sep = "  "

	sepWidth := lipgloss.Width(sep)
	ellipsis := hintStyle.Render("...")
	ellipsisWidth := lipgloss.Width(ellipsis)

	var (
		b    strings.Builder
		used int
	)

	for i, match := range m.matches {
		selected := m.tabActive && i == m.suggIdx
		rendered := renderCandidate(match, selected, m.isCallable(match.Str))

		entryWidth := lipgloss.Width(rendered)
		if i > 0 {
			entryWidth += sepWidth
		}

		if i > 0 && used+entryWidth+ellipsisWidth > width {
			b.WriteString(sep)
			b.WriteString(ellipsis)

			break
		}

		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(rendered)

		used += entryWidth
	}

	return b.String()
}

// renderCandidate renders one candidate with its matched characters in bold.
// Callable names get a "()" suffix that is not part of the completion.
func renderCandidate(match fuzzy.Match, selected, callable bool) string {
	base := suggestionStyle
	highlight := matchStyle

	if selected {
		base = selectedStyle
		highlight = selectedMatchStyle
	}

	matched := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matched[idx] = true
	}

	var b strings.Builder

	for i, r := range match.Str {
		if matched[i] {
			b.WriteString(highlight.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}

	if callable {
		b.WriteString(base.Render("()"))
	}

	return b.String()
}

// isCallable reports whether name is bound to a function or names an
// unshadowed builtin.
func (m model) isCallable(name string) bool {
	if v, ok := m.env.Get(name); ok {
		_, fn := v.(*lang.Function)

		return fn
	}

	_, ok := lang.LookupBuiltin(name)

	return ok
}

const previewWidth = 40

// preview returns a one-line summary of a value for the vars listing.
func preview(v lang.Value) string {
	s := v.String()
	if len(s) > previewWidth {
		return s[:previewWidth-3] + "..."
	}

	return s
}
