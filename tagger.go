package tweetprep

import (
	"strings"

	prose "github.com/jdkato/prose/v2"
)

// A POS is a WordNet part of speech.
type POS string

const (
	Noun      POS = "n"
	Verb      POS = "v"
	Adjective POS = "a"
	Adverb    POS = "r"
)

// WordNetPOS maps a Penn Treebank tag to the WordNet part of speech used for
// lemmatization. Unknown tags map to Noun.
func WordNetPOS(tag string) POS {
	switch {
	case strings.HasPrefix(tag, "J"):
		return Adjective
	case strings.HasPrefix(tag, "V"):
		return Verb
	case strings.HasPrefix(tag, "N"):
		return Noun
	case strings.HasPrefix(tag, "R"):
		return Adverb
	default:
		return Noun
	}
}

// A Tagger assigns a Penn Treebank tag to each token. The result has one tag
// per input token.
type Tagger interface {
	Tag(tokens []string) []string
}

// perceptronTagger tags tokens with prose's averaged-perceptron model.
type perceptronTagger struct{}

// NewPerceptronTagger returns the default Tagger.
func NewPerceptronTagger() Tagger {
	return perceptronTagger{}
}

func (perceptronTagger) Tag(tokens []string) []string {
	tags := make([]string, len(tokens))
	if len(tokens) == 0 {
		return tags
	}

	doc, err := prose.NewDocument(strings.Join(tokens, " "),
		prose.WithSegmentation(false),
		prose.WithExtraction(false))
	if err != nil {
		return nounTags(tags)
	}

	// Cleaned tokens are plain words, so prose should not split them further;
	// if it does the alignment is lost and every token falls back to NN.
	tagged := doc.Tokens()
	if len(tagged) != len(tokens) {
		return nounTags(tags)
	}
	for i, tok := range tagged {
		tags[i] = tok.Tag
	}
	return tags
}

func nounTags(tags []string) []string {
	for i := range tags {
		tags[i] = "NN"
	}
	return tags
}
