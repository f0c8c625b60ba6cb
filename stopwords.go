package tweetprep

import (
	"sort"
	"strings"

	"github.com/bbalet/stopwords"
)

// englishStopwords is the standard English stopword list used by NLTK.
var englishStopwords = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you",
	"you're", "you've", "you'll", "you'd", "your", "yours", "yourself",
	"yourselves", "he", "him", "his", "himself", "she", "she's", "her", "hers",
	"herself", "it", "it's", "its", "itself", "they", "them", "their", "theirs",
	"themselves", "what", "which", "who", "whom", "this", "that", "that'll",
	"these", "those", "am", "is", "are", "was", "were", "be", "been", "being",
	"have", "has", "had", "having", "do", "does", "did", "doing", "a", "an",
	"the", "and", "but", "if", "or", "because", "as", "until", "while", "of",
	"at", "by", "for", "with", "about", "against", "between", "into", "through",
	"during", "before", "after", "above", "below", "to", "from", "up", "down",
	"in", "out", "on", "off", "over", "under", "again", "further", "then",
	"once", "here", "there", "when", "where", "why", "how", "all", "any",
	"both", "each", "few", "more", "most", "other", "some", "such", "no", "nor",
	"not", "only", "own", "same", "so", "than", "too", "very", "s", "t", "can",
	"will", "just", "don", "don't", "should", "should've", "now", "d", "ll",
	"m", "o", "re", "ve", "y", "ain", "aren", "aren't", "couldn", "couldn't",
	"didn", "didn't", "doesn", "doesn't", "hadn", "hadn't", "hasn", "hasn't",
	"haven", "haven't", "isn", "isn't", "ma", "mightn", "mightn't", "mustn",
	"mustn't", "needn", "needn't", "shan", "shan't", "shouldn", "shouldn't",
	"wasn", "wasn't", "weren", "weren't", "won", "won't", "wouldn", "wouldn't",
}

// DomainStopwords are the Twitter-specific additions to the English list.
var DomainStopwords = []string{"link", "rt", "get"}

// A StopwordSet is a set of exact-match stopwords.
type StopwordSet map[string]bool

// NewStopwordSet builds a set from words.
func NewStopwordSet(words ...string) StopwordSet {
	set := make(StopwordSet, len(words))
	set.Add(words...)
	return set
}

// DefaultStopwords returns the English list plus DomainStopwords.
func DefaultStopwords() StopwordSet {
	set := NewStopwordSet(englishStopwords...)
	set.Add(DomainStopwords...)
	return set
}

// EnglishStopwords returns a copy of the standard English list.
func EnglishStopwords() []string {
	return append([]string(nil), englishStopwords...)
}

// Add inserts words into the set.
func (s StopwordSet) Add(words ...string) {
	for _, w := range words {
		s[w] = true
	}
}

// Contains reports whether word is in the set. Comparison is case-sensitive.
func (s StopwordSet) Contains(word string) bool {
	return s[word]
}

// Words returns the set's members in sorted order.
func (s StopwordSet) Words() []string {
	words := make([]string, 0, len(s))
	for w := range s {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// ExtendedStopwords returns the candidates that the bbalet/stopwords English
// list also treats as stopwords. With no candidates, a list of common English
// words is probed.
//
// The stopwords library doesn't export its lists, so each candidate is run
// through it and counts as a stopword when it is removed or altered.
func ExtendedStopwords(candidates ...string) []string {
	if len(candidates) == 0 {
		candidates = commonEnglishWords
	}

	var found []string
	for _, word := range candidates {
		cleaned := strings.TrimSpace(stopwords.CleanString(word, "en", false))
		if cleaned != word {
			found = append(found, word)
		}
	}
	return found
}

// commonEnglishWords are probed by ExtendedStopwords.
var commonEnglishWords = []string{
	// Articles, pronouns, prepositions, conjunctions
	"a", "an", "and", "are", "as", "at", "be", "been", "by", "for", "from",
	"has", "had", "have", "he", "her", "his", "how", "i", "in", "is", "it",
	"its", "of", "on", "or", "she", "that", "the", "their", "them", "they",
	"this", "to", "was", "we", "were", "what", "when", "where", "which", "who",
	"will", "with", "would", "you", "your",
	// Common verbs and other frequent words
	"about", "after", "all", "also", "am", "any", "back", "because", "before",
	"being", "between", "both", "but", "can", "could", "did", "do", "does",
	"down", "each", "even", "first", "give", "go", "going", "good",
	"got", "here", "him", "himself", "if", "into",
	"just", "know", "last", "like", "made", "make", "many", "may", "me",
	"might", "more", "most", "much", "must", "my", "never", "new", "no",
	"not", "now", "off", "old", "only", "other", "our", "out", "over",
	"own", "said", "same", "see", "should", "since", "so", "some", "still",
	"such", "take", "than", "then", "there", "these", "thing", "think",
	"those", "through", "time", "too", "two", "under", "up", "upon", "us",
	"use", "used", "using", "very", "want", "way", "well", "went",
	"while", "why", "work", "year", "years", "yet",
}
