package tweetprep

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// A VectorizerKind selects the term-weighting backend.
type VectorizerKind int

const (
	CountFrequency VectorizerKind = iota // Raw term counts.
	TFIDF                                // Smoothed TF-IDF, l2-normalized.
)

// String returns the short name accepted by ParseVectorizerKind.
func (k VectorizerKind) String() string {
	switch k {
	case CountFrequency:
		return "cv"
	case TFIDF:
		return "tfidf"
	}
	return fmt.Sprintf("VectorizerKind(%d)", int(k))
}

// ParseVectorizerKind parses "cv" or "tfidf".
func ParseVectorizerKind(s string) (VectorizerKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cv", "count":
		return CountFrequency, nil
	case "tfidf", "tf-idf":
		return TFIDF, nil
	}
	return 0, &ConfigError{Field: "vectorizer kind", Message: fmt.Sprintf("unknown vectorizer type %q", s)}
}

// An NGramRange is the inclusive span of n-gram lengths to extract.
type NGramRange struct {
	Min int
	Max int
}

// Validate checks that 1 <= Min <= Max.
func (r NGramRange) Validate() error {
	if r.Min < 1 || r.Max < 1 {
		return &ConfigError{Field: "ngram range", Message: fmt.Sprintf("bounds must be at least 1, got (%d, %d)", r.Min, r.Max)}
	}
	if r.Min > r.Max {
		return &ConfigError{Field: "ngram range", Message: fmt.Sprintf("minimum %d exceeds maximum %d", r.Min, r.Max)}
	}
	return nil
}

func (r NGramRange) String() string {
	return fmt.Sprintf("(%d, %d)", r.Min, r.Max)
}

// ParseNGramRange parses a "min,max" pair, optionally wrapped in
// parentheses.
func ParseNGramRange(s string) (NGramRange, error) {
	malformed := &ConfigError{Field: "ngram range", Message: fmt.Sprintf("%q: format should be (minimum n-gram, maximum n-gram)", s)}

	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return NGramRange{}, malformed
	}
	lo, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return NGramRange{}, malformed
	}
	hi, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return NGramRange{}, malformed
	}

	r := NGramRange{Min: lo, Max: hi}
	return r, r.Validate()
}

// A Vectorizer learns a vocabulary from a corpus and maps documents onto it.
//
// A Vectorizer holds the learned vocabulary as mutable state: callers must
// not call Fit and Transform on the same instance concurrently.
type Vectorizer struct {
	kind     VectorizerKind
	ngram    NGramRange
	analyzer Tokenizer

	vocabulary map[string]int
	terms      []string
	idf        []float64
}

// NewVectorizer returns an unfit Vectorizer. An unknown kind or an invalid
// n-gram range is a *ConfigError.
func NewVectorizer(kind VectorizerKind, ngram NGramRange) (*Vectorizer, error) {
	if kind != CountFrequency && kind != TFIDF {
		return nil, &ConfigError{Field: "vectorizer kind", Message: "unknown vectorizer type " + kind.String()}
	}
	if err := ngram.Validate(); err != nil {
		return nil, err
	}
	return &Vectorizer{kind: kind, ngram: ngram, analyzer: newWordTokenizer()}, nil
}

// Kind returns the backend kind.
func (v *Vectorizer) Kind() VectorizerKind { return v.kind }

// NGram returns the n-gram range.
func (v *Vectorizer) NGram() NGramRange { return v.ngram }

// Fitted reports whether Fit has been called.
func (v *Vectorizer) Fitted() bool { return v.vocabulary != nil }

// Vocabulary returns the learned terms in column order.
func (v *Vectorizer) Vocabulary() []string {
	return append([]string(nil), v.terms...)
}

func (v *Vectorizer) analyze(doc string) []string {
	return Ngrams(v.analyzer.Tokenize(doc), v.ngram.Min, v.ngram.Max)
}

// Fit learns the vocabulary, and for TF-IDF the inverse document
// frequencies, from corpus. A corpus without a single term is an error.
func (v *Vectorizer) Fit(corpus []string) error {
	df := make(map[string]int)
	for _, doc := range corpus {
		seen := make(map[string]bool)
		for _, term := range v.analyze(doc) {
			if !seen[term] {
				df[term]++
				seen[term] = true
			}
		}
	}
	if len(df) == 0 {
		return fmt.Errorf("fit: %w", ErrEmptyVocabulary)
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	vocabulary := make(map[string]int, len(terms))
	for i, term := range terms {
		vocabulary[term] = i
	}
	v.vocabulary, v.terms, v.idf = vocabulary, terms, nil

	if v.kind == TFIDF {
		n := float64(len(corpus))
		v.idf = make([]float64, len(terms))
		for i, term := range terms {
			v.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
		}
	}
	return nil
}

// Transform maps each document of corpus onto the learned vocabulary. The
// result's Index is labels.Index, row for row.
func (v *Vectorizer) Transform(corpus []string, labels Series) (*FeatureMatrix, error) {
	if !v.Fitted() {
		return nil, ErrUnfitVectorizer
	}
	if len(corpus) != len(labels.Index) || len(labels.Index) != len(labels.Values) {
		return nil, fmt.Errorf("%w: %d documents, %d label indexes, %d labels",
			ErrLengthMismatch, len(corpus), len(labels.Index), len(labels.Values))
	}

	m := &FeatureMatrix{
		Columns: v.Vocabulary(),
		Index:   append([]int(nil), labels.Index...),
		rows:    make([]sparseRow, len(corpus)),
	}
	for i, doc := range corpus {
		m.rows[i] = v.weigh(doc)
	}
	return m, nil
}

// FitTransform fits corpus and transforms that same corpus.
func (v *Vectorizer) FitTransform(corpus []string, labels Series) (*FeatureMatrix, error) {
	if err := v.Fit(corpus); err != nil {
		return nil, err
	}
	return v.Transform(corpus, labels)
}

func (v *Vectorizer) weigh(doc string) sparseRow {
	counts := make(map[int]float64)
	for _, term := range v.analyze(doc) {
		if j, ok := v.vocabulary[term]; ok {
			counts[j]++
		}
	}

	row := sparseRow{
		cols: make([]int, 0, len(counts)),
		vals: make([]float64, 0, len(counts)),
	}
	for j := range counts {
		row.cols = append(row.cols, j)
	}
	sort.Ints(row.cols)
	for _, j := range row.cols {
		row.vals = append(row.vals, counts[j])
	}

	if v.kind == TFIDF && len(row.vals) > 0 {
		for k, j := range row.cols {
			row.vals[k] *= v.idf[j]
		}
		if norm := floats.Norm(row.vals, 2); norm > 0 {
			floats.Scale(1/norm, row.vals)
		}
	}
	return row
}
