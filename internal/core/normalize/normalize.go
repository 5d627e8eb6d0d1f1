// Package normalize cleans raw article text before vectorization
// Pipeline order
// 1 UTF-8 repair drop invalid bytes
// 2 Lowercase
// 3 Remove digits
// 4 Remove punctuation (ASCII punctuation set and Unicode P*)
// 5 Collapse whitespace runs (Unicode White_Space and U+001C..U+001F) to
// single spaces and trim
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	str "veritas/internal/platform/strings"
)

// Punctuation is the ASCII punctuation set removed in step 4.
// Unicode punctuation outside ASCII is removed as well.
const Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Normalizer is concurrency safe when used with the pool below
type Normalizer struct{}

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		// order matters and mirrors the documented pipeline
		return transform.Chain(
			cases.Lower(language.Und),
			runes.Remove(runes.Predicate(unicode.IsDigit)),
			runes.Remove(runes.Predicate(isPunct)),
		)
	},
}

// New constructs a Normalizer
func New() *Normalizer { return &Normalizer{} }

// Normalize returns the cleaned form of s following the pipeline described above.
// It is total: any input, including empty or whitespace-only, yields a string.
func (n *Normalizer) Normalize(s string) string {
	return Normalize(s)
}

// Normalize is the package level form of (*Normalizer).Normalize
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	// 1 repair UTF-8 drop invalid bytes
	s = strings.ToValidUTF8(s, "")

	// 2-4 lowercase, digits and punctuation through the pooled chain. The
	// chain only errors on invalid UTF-8, repaired above.
	tr := chainPool.Get().(transform.Transformer)
	s, _, _ = transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)

	// 5 collapse whitespace and trim
	return strings.Join(strings.FieldsFunc(s, str.IsSpace), " ")
}

// IsBlank reports whether s has no content once whitespace is ignored.
// Whitespace includes the ASCII separators U+001C..U+001F.
func IsBlank(s string) bool { return str.IsBlank(s) }

func isPunct(r rune) bool {
	if r < 0x80 {
		return strings.IndexRune(Punctuation, r) >= 0
	}
	return unicode.IsPunct(r)
}
