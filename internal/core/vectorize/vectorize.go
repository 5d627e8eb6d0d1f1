// Package vectorize maps cleaned text to TF-IDF feature vectors over a
// fixed vocabulary loaded from a vectorizer artifact
package vectorize

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"
)

// Norm names the row normalisation applied after weighting
type Norm string

// Norm values
const (
	NormL2   Norm = "l2"
	NormL1   Norm = "l1"
	NormNone Norm = "none"
)

// Vector is a sparse feature vector with ascending indices
type Vector struct {
	Dim     int
	Indices []int
	Values  []float64
}

// NNZ returns the number of stored entries
func (v Vector) NNZ() int { return len(v.Indices) }

// Dense expands v to a slice of length Dim
func (v Vector) Dense() []float64 {
	out := make([]float64, v.Dim)
	for i, idx := range v.Indices {
		out[idx] = v.Values[i]
	}
	return out
}

// Dot returns the inner product of v with a dense weight slice of length Dim
func (v Vector) Dot(w []float64) float64 {
	var s float64
	for i, idx := range v.Indices {
		s += v.Values[i] * w[idx]
	}
	return s
}

// Params is the decoded vectorizer artifact body
type Params struct {
	Lowercase   bool           `json:"lowercase"`
	NGramRange  [2]int         `json:"ngram_range"`
	MinTokenLen int            `json:"min_token_len,omitempty"`
	StopWords   []string       `json:"stop_words,omitempty"`
	SublinearTF bool           `json:"sublinear_tf"`
	UseIDF      bool           `json:"use_idf"`
	Norm        Norm           `json:"norm"`
	Vocabulary  map[string]int `json:"vocabulary"`
	IDF         []float64      `json:"idf,omitempty"`
}

// Vectorizer is an immutable TF-IDF transform, safe for concurrent use
type Vectorizer struct {
	p     Params
	stop  map[string]struct{}
	dim   int
	terms []string
}

// New validates p and builds a Vectorizer
func New(p Params) (*Vectorizer, error) {
	if len(p.Vocabulary) == 0 {
		return nil, fmt.Errorf("vectorize: empty vocabulary")
	}
	if p.NGramRange == [2]int{} {
		p.NGramRange = [2]int{1, 1}
	}
	if p.NGramRange[0] < 1 || p.NGramRange[1] < p.NGramRange[0] {
		return nil, fmt.Errorf("vectorize: invalid ngram_range %v", p.NGramRange)
	}
	if p.MinTokenLen <= 0 {
		p.MinTokenLen = 2
	}
	switch p.Norm {
	case "":
		p.Norm = NormL2
	case NormL2, NormL1, NormNone:
	default:
		return nil, fmt.Errorf("vectorize: unsupported norm %q", p.Norm)
	}

	dim := len(p.Vocabulary)
	terms := make([]string, dim)
	for term, idx := range p.Vocabulary {
		if idx < 0 || idx >= dim {
			return nil, fmt.Errorf("vectorize: vocabulary index %d for %q out of range [0,%d)", idx, term, dim)
		}
		if terms[idx] != "" {
			return nil, fmt.Errorf("vectorize: vocabulary index %d assigned twice", idx)
		}
		terms[idx] = term
	}
	if p.UseIDF && len(p.IDF) != dim {
		return nil, fmt.Errorf("vectorize: idf has %d weights, vocabulary has %d terms", len(p.IDF), dim)
	}

	stop := make(map[string]struct{}, len(p.StopWords))
	for _, w := range p.StopWords {
		stop[w] = struct{}{}
	}
	return &Vectorizer{p: p, stop: stop, dim: dim, terms: terms}, nil
}

// Dim returns the fixed output dimensionality
func (v *Vectorizer) Dim() int { return v.dim }

// Params returns a copy of the settings without the vocabulary
func (v *Vectorizer) Params() Params {
	p := v.p
	p.Vocabulary = nil
	p.IDF = nil
	p.StopWords = append([]string(nil), v.p.StopWords...)
	return p
}

// Term returns the vocabulary entry at idx
func (v *Vectorizer) Term(idx int) string {
	if idx < 0 || idx >= v.dim {
		return ""
	}
	return v.terms[idx]
}

// Transform returns the TF-IDF vector for text. Unknown terms are ignored and
// text without known terms yields the all-zero vector.
func (v *Vectorizer) Transform(text string) Vector {
	if v.p.Lowercase {
		text = strings.ToLower(text)
	}

	counts := map[int]float64{}
	for _, term := range v.Analyze(text) {
		if idx, ok := v.p.Vocabulary[term]; ok {
			counts[idx]++
		}
	}

	out := Vector{Dim: v.dim}
	if len(counts) == 0 {
		return out
	}
	out.Indices = make([]int, 0, len(counts))
	for idx := range counts {
		out.Indices = append(out.Indices, idx)
	}
	sort.Ints(out.Indices)

	out.Values = make([]float64, len(out.Indices))
	for i, idx := range out.Indices {
		tf := counts[idx]
		if v.p.SublinearTF {
			tf = 1 + math.Log(tf)
		}
		if v.p.UseIDF {
			tf *= v.p.IDF[idx]
		}
		out.Values[i] = tf
	}

	normalize(out.Values, v.p.Norm)
	return out
}

// Analyze returns the n-gram terms for text in document order
func (v *Vectorizer) Analyze(text string) []string {
	tokens := Tokenize(text, v.p.MinTokenLen)
	if len(v.stop) > 0 {
		kept := tokens[:0]
		for _, t := range tokens {
			if _, drop := v.stop[t]; !drop {
				kept = append(kept, t)
			}
		}
		tokens = kept
	}

	lo, hi := v.p.NGramRange[0], v.p.NGramRange[1]
	if lo == 1 && hi == 1 {
		return tokens
	}
	var out []string
	for n := lo; n <= hi; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			out = append(out, strings.Join(tokens[i:i+n], " "))
		}
	}
	return out
}

// Tokenize splits text into maximal runs of word runes (letters, numbers,
// underscore) keeping runs of at least minLen runes
func Tokenize(text string, minLen int) []string {
	var out []string
	start, n := -1, 0
	for i, r := range text {
		if isWord(r) {
			if start < 0 {
				start, n = i, 0
			}
			n++
			continue
		}
		if start >= 0 && n >= minLen {
			out = append(out, text[start:i])
		}
		start = -1
	}
	if start >= 0 && n >= minLen {
		out = append(out, text[start:])
	}
	return out
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

func normalize(vals []float64, n Norm) {
	var s float64
	switch n {
	case NormL2:
		for _, x := range vals {
			s += x * x
		}
		s = math.Sqrt(s)
	case NormL1:
		for _, x := range vals {
			s += math.Abs(x)
		}
	default:
		return
	}
	if s == 0 {
		return
	}
	for i := range vals {
		vals[i] /= s
	}
}
