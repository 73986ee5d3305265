package lang

import (
	"slices"
	"strconv"
	"sync"

	"github.com/zeebo/xxh3"
)

// parsed holds the programs of [ParseSource], keyed by the hash of label
// and source.
//
//nolint:gochecknoglobals
var parsed sync.Map

// entry holds the outcome of parsing one (label, source) pair.
type entry struct {
	once sync.Once
	prog *Program
	err  error
}

// cacheKey combines the hashes of label and source.
// The label is hashed separately so "ab"+"c" and "a"+"bc" differ.
func cacheKey(source, label string) string {
	h := xxh3.HashString(source) ^ (xxh3.HashString(label) * 31)

	return strconv.FormatUint(h, 36)
}

// parseCached parses source once per (label, source) pair and reports
// whether the result came from the cache. The returned program is a copy
// the caller may modify.
func parseCached(source, label string) (*Program, bool, error) {
	v, hit := parsed.LoadOrStore(cacheKey(source, label), new(entry))
	e, _ := v.(*entry)

	e.once.Do(func() {
		lexemes, err := Lex(source, label)
		if err != nil {
			e.err = err

			return
		}

		e.prog, e.err = ParseProgram(lexemes, label)
	})

	if e.err != nil {
		return nil, hit, e.err
	}

	return &Program{
		Label:      e.prog.Label,
		Statements: slices.Clone(e.prog.Statements),
	}, hit, nil
}

// ClearCache discards every program cached by [ParseSource] and [Exec].
func ClearCache() {
	parsed.Clear()
}
