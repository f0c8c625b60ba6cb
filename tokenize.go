package tweetprep

import (
	"regexp"
	"strings"
)

// A Tokenizer splits text into tokens.
type Tokenizer interface {
	Tokenize(string) []string
}

// spaceTokenizer splits text on a literal separator. It does no linguistic
// tokenization: punctuation stays glued to the words around it.
type spaceTokenizer struct {
	separator string
	sanitizer *strings.Replacer
}

type TokenizerOptFunc func(*spaceTokenizer)

// UsingSeparator splits on sep instead of a single space.
func UsingSeparator(sep string) TokenizerOptFunc {
	return func(tokenizer *spaceTokenizer) {
		tokenizer.separator = sep
	}
}

// Use the provided sanitizer before splitting.
func UsingSanitizer(x *strings.Replacer) TokenizerOptFunc {
	return func(tokenizer *spaceTokenizer) {
		tokenizer.sanitizer = x
	}
}

// NewSpaceTokenizer returns the tokenizer used by the text normalizer.
func NewSpaceTokenizer(opts ...TokenizerOptFunc) *spaceTokenizer {
	tok := &spaceTokenizer{separator: " "}
	for _, applyOpt := range opts {
		applyOpt(tok)
	}
	return tok
}

// Tokenize splits text on the separator. Consecutive separators produce
// empty tokens; callers filter them.
func (t *spaceTokenizer) Tokenize(text string) []string {
	if t.sanitizer != nil {
		text = t.sanitizer.Replace(text)
	}
	return strings.Split(text, t.separator)
}

// wordTokenizer extracts the tokens a bag-of-words analyzer counts: runs of
// two or more word characters, lowercased.
type wordTokenizer struct {
	pattern *regexp.Regexp
}

var defaultTokenPattern = regexp.MustCompile(`\b\w\w+\b`)

func newWordTokenizer() *wordTokenizer {
	return &wordTokenizer{pattern: defaultTokenPattern}
}

func (t *wordTokenizer) Tokenize(text string) []string {
	return t.pattern.FindAllString(strings.ToLower(text), -1)
}

// Ngrams returns every contiguous n-gram of tokens for minN <= n <= maxN,
// shortest first. Each n-gram joins its tokens with a single space.
func Ngrams(tokens []string, minN, maxN int) []string {
	if minN < 1 {
		minN = 1
	}
	var grams []string
	for n := minN; n <= maxN; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			if n == 1 {
				grams = append(grams, tokens[i])
				continue
			}
			grams = append(grams, strings.Join(tokens[i:i+n], " "))
		}
	}
	return grams
}
