package tweetprep

import "fmt"

// An Emotion is one of the three canonical sentiment classes.
type Emotion int

const (
	Negative Emotion = iota // 0
	Neutral                 // 1
	Positive                // 2
)

// Classes lists the canonical classes in their fixed order.
var Classes = []Emotion{Negative, Neutral, Positive}

// String returns the class name.
func (e Emotion) String() string {
	switch e {
	case Negative:
		return "negative"
	case Neutral:
		return "neutral"
	case Positive:
		return "positive"
	}
	return fmt.Sprintf("Emotion(%d)", int(e))
}

// Valid reports whether e is one of the canonical classes.
func (e Emotion) Valid() bool {
	return e >= Negative && e <= Positive
}

// A RawRecord is one labeled tweet exactly as read from the primary dataset.
type RawRecord struct {
	Index   int    // Data-row position in the source table.
	Text    string // The tweet text.
	Product string // The product-category the emotion is directed at.
	Emotion string // The emotion label.
}

// A Record is a cleaned, canonically labeled tweet.
type Record struct {
	Index   int     // Row index carried over from the raw row.
	Emotion Emotion // Canonical class.
	Text    string  // Cleaned, space-joined tokens.
}

// A Series is a label column with its row index.
type Series struct {
	Index  []int
	Values []Emotion
}

// Len returns the number of labels in the series.
func (s Series) Len() int {
	return len(s.Values)
}

// Labels returns the emotion series of records, indexed by each record's Index.
func Labels(records []Record) Series {
	s := Series{
		Index:  make([]int, len(records)),
		Values: make([]Emotion, len(records)),
	}
	for i, r := range records {
		s.Index[i] = r.Index
		s.Values[i] = r.Emotion
	}
	return s
}

// Texts returns the cleaned text of every record, in order.
func Texts(records []Record) []string {
	texts := make([]string, len(records))
	for i, r := range records {
		texts[i] = r.Text
	}
	return texts
}

// Reindex returns a copy of records whose Index runs 0..n-1.
//
// Concatenating the primary and external datasets keeps every source's own
// row index; callers that need a unique index should reindex first.
func Reindex(records []Record) []Record {
	out := make([]Record, len(records))
	for i, r := range records {
		r.Index = i
		out[i] = r
	}
	return out
}

// A Diagnostic reports a row that was excluded because its label could not
// be mapped to a canonical class.
type Diagnostic struct {
	Source string // Dataset name.
	Index  int    // Row index within the source.
	Label  string // The offending label.
	Err    error
}

// String formats the diagnostic for logging.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s row %d: %v", d.Source, d.Index, d.Err)
}
