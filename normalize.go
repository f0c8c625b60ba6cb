package tweetprep

import (
	"regexp"
	"strings"
	"sync"
)

// ProductTarget replaces every token that refers to a tweet's labeled
// product.
const ProductTarget = "product_target"

// Punctuation is the character set stripped from every token.
const Punctuation = "!\"$%&'()*+,-./:;<=>?[\\]^_`{|}~“#"

var (
	mentionRE = regexp.MustCompile(`^@[a-zA-Z]*`)
	numberRE  = regexp.MustCompile(`^\d+$`)
	wordRE    = regexp.MustCompile(`^[a-z]+$`)
)

// A Normalizer reduces raw tweet text to a cleaned, space-joined token
// string. A Normalizer is safe for concurrent use once built.
type Normalizer struct {
	tokenizer   Tokenizer
	stopwords   StopwordSet
	punctuation *strings.Replacer
	tagger      Tagger
	lemmatizer  Lemmatizer

	lemmatizerOnce sync.Once
	lemmatizerErr  error
}

// A NormalizerOpt changes how a Normalizer is built.
type NormalizerOpt func(*Normalizer)

// UsingStopwords replaces the default stopword set.
func UsingStopwords(set StopwordSet) NormalizerOpt {
	return func(n *Normalizer) {
		n.stopwords = set
	}
}

// UsingTagger sets the part-of-speech tagger used for lemmatization.
func UsingTagger(tagger Tagger) NormalizerOpt {
	return func(n *Normalizer) {
		n.tagger = tagger
	}
}

// UsingLemmatizer sets the lemmatizer. Without it, the WordNet lemmatizer is
// loaded the first time lemmatization is requested.
func UsingLemmatizer(lemmatizer Lemmatizer) NormalizerOpt {
	return func(n *Normalizer) {
		n.lemmatizer = lemmatizer
	}
}

// UsingPunctuation replaces the stripped character set.
func UsingPunctuation(chars string) NormalizerOpt {
	return func(n *Normalizer) {
		n.punctuation = stripper(chars)
	}
}

// UsingTokenizer replaces the space tokenizer.
func UsingTokenizer(tokenizer Tokenizer) NormalizerOpt {
	return func(n *Normalizer) {
		n.tokenizer = tokenizer
	}
}

// NewNormalizer builds a Normalizer with the default stopwords, punctuation
// and tagger, then applies opts.
func NewNormalizer(opts ...NormalizerOpt) *Normalizer {
	n := &Normalizer{
		tokenizer:   NewSpaceTokenizer(),
		stopwords:   DefaultStopwords(),
		punctuation: stripper(Punctuation),
		tagger:      NewPerceptronTagger(),
	}
	for _, applyOpt := range opts {
		applyOpt(n)
	}
	return n
}

func stripper(chars string) *strings.Replacer {
	pairs := make([]string, 0, 2*len(chars))
	for _, r := range chars {
		pairs = append(pairs, string(r), "")
	}
	return strings.NewReplacer(pairs...)
}

// Normalize cleans text that carries no product category.
func (n *Normalizer) Normalize(text string, lemmatize bool) (string, error) {
	return n.normalize(text, "", false, lemmatize)
}

// NormalizeWithTarget cleans text and masks the tokens that refer to the
// product named by category.
func (n *Normalizer) NormalizeWithTarget(text, category string, lemmatize bool) (string, error) {
	return n.normalize(text, category, true, lemmatize)
}

func (n *Normalizer) normalize(text, category string, masked, lemmatize bool) (string, error) {
	tokens := n.tokenizer.Tokenize(text)
	tokens = n.clean(tokens)
	if masked {
		tokens = maskTarget(tokens, category)
	}
	tokens = dropEmpty(tokens)

	if lemmatize && len(tokens) > 0 {
		lemmatizer, err := n.lemmatizerOrDefault()
		if err != nil {
			return "", err
		}
		tags := n.tagger.Tag(tokens)
		for i, tok := range tokens {
			tokens[i] = lemmatizer.Lemmatize(tok, WordNetPOS(tags[i]))
		}
	}
	return strings.Join(tokens, " "), nil
}

// clean lowercases, strips punctuation and drops mentions, numbers,
// non-alphabetic tokens and stopwords, in that order.
func (n *Normalizer) clean(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		tok = n.punctuation.Replace(strings.ToLower(tok))
		switch {
		case mentionRE.MatchString(tok):
		case numberRE.MatchString(tok):
		case !wordRE.MatchString(tok):
		case n.stopwords.Contains(tok):
		default:
			out = append(out, tok)
		}
	}
	return out
}

// maskTarget replaces every token contained in the category's keyword with
// ProductTarget. For app categories, remaining "app" tokens are dropped.
func maskTarget(tokens []string, category string) []string {
	keyword := MapTarget(category)
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok != "" && strings.Contains(keyword, tok) {
			tok = ProductTarget
		}
		out = append(out, tok)
	}
	if !isAppCategory(category) {
		return out
	}

	kept := out[:0]
	for _, tok := range out {
		if tok != "app" {
			kept = append(kept, tok)
		}
	}
	return kept
}

func dropEmpty(tokens []string) []string {
	kept := tokens[:0]
	for _, tok := range tokens {
		if tok != "" {
			kept = append(kept, tok)
		}
	}
	return kept
}

func (n *Normalizer) lemmatizerOrDefault() (Lemmatizer, error) {
	n.lemmatizerOnce.Do(func() {
		if n.lemmatizer != nil {
			return
		}
		n.lemmatizer, n.lemmatizerErr = NewWordNetLemmatizer()
	})
	return n.lemmatizer, n.lemmatizerErr
}

var (
	defaultNormalizerOnce sync.Once
	defaultNormalizer     *Normalizer
)

func sharedNormalizer() *Normalizer {
	defaultNormalizerOnce.Do(func() {
		defaultNormalizer = NewNormalizer()
	})
	return defaultNormalizer
}

// Normalize cleans text with the default Normalizer.
func Normalize(text string, lemmatize bool) (string, error) {
	return sharedNormalizer().Normalize(text, lemmatize)
}

// NormalizeWithTarget cleans text with the default Normalizer, masking the
// product named by category.
func NormalizeWithTarget(text, category string, lemmatize bool) (string, error) {
	return sharedNormalizer().NormalizeWithTarget(text, category, lemmatize)
}
