package tweetprep

import (
	"fmt"
	"path/filepath"
)

// An ExternalSource describes an auxiliary labeled tweet dataset and how its
// label vocabulary maps onto the canonical classes.
type ExternalSource struct {
	Name        string
	File        string
	LabelColumn string
	TextColumn  string
	Remap       map[string]Emotion
	Exclude     []string // Labels whose rows are dropped before remapping.
}

// ExternalSources returns the three auxiliary datasets in concatenation
// order.
func ExternalSources() []ExternalSource {
	return []ExternalSource{
		{
			Name:        "apple",
			File:        "Apple-Twitter-Sentiment-DFE.csv",
			LabelColumn: "sentiment",
			TextColumn:  "text",
			Remap:       map[string]Emotion{"5": Positive, "3": Neutral, "1": Negative},
		},
		{
			Name:        "deflategate",
			File:        "Deflategate-DFE.csv",
			LabelColumn: "deflate_sentiment",
			TextColumn:  "text",
			Remap: map[string]Emotion{
				"positive":          Positive,
				"slightly positive": Positive,
				"neutral":           Neutral,
				"negative":          Negative,
				"slightly negative": Negative,
			},
		},
		{
			Name:        "coachella",
			File:        "Coachella-2015-2-DFE.csv",
			LabelColumn: "coachella_sentiment",
			TextColumn:  "text",
			Remap:       map[string]Emotion{"positive": Positive, "neutral": Neutral, "negative": Negative},
			Exclude:     []string{"cant tell"},
		},
	}
}

// MapLabel maps one of the source's labels to a canonical class.
func (src ExternalSource) MapLabel(label string) (Emotion, error) {
	if e, ok := src.Remap[label]; ok {
		return e, nil
	}
	return 0, &LabelError{Label: label, Kind: src.Name}
}

func (src ExternalSource) excluded(label string) bool {
	for _, x := range src.Exclude {
		if label == x {
			return true
		}
	}
	return false
}

// CleanExternal turns one auxiliary dataset into canonical records.
//
// Only the source's label and text columns are read. Excluded labels are
// dropped, labels missing from the remap table are dropped and reported as
// diagnostics, and rows with empty text are skipped. Text is normalized
// without a product target.
func CleanExternal(src ExternalSource, t *Table, opts ...CleanOpt) ([]Record, []Diagnostic, error) {
	labelCol, err := t.Column(src.LabelColumn)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", src.Name, err)
	}
	textCol, err := t.Column(src.TextColumn)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", src.Name, err)
	}

	o := buildCleanOpts(opts)
	var (
		records     []Record
		diagnostics []Diagnostic
	)
	for i, row := range t.Rows {
		o.report(i, len(t.Rows))
		label, text := row[labelCol], row[textCol]
		if src.excluded(label) {
			continue
		}

		emotion, err := src.MapLabel(label)
		if err != nil {
			diagnostics = append(diagnostics, Diagnostic{Source: src.Name, Index: i, Label: label, Err: err})
			continue
		}
		if text == "" {
			continue
		}

		cleaned, err := o.Normalizer.Normalize(text, o.Lemmatize)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: clean row %d: %w", src.Name, i, err)
		}
		records = append(records, Record{Index: i, Emotion: emotion, Text: cleaned})
	}
	o.report(len(t.Rows), len(t.Rows))
	return records, diagnostics, nil
}

// LoadExternalDatasets reads every external source from dir, cleans it and
// concatenates the results in source order. A progress callback sees the
// sources as consecutive equal shares of a single 0 to 1 run.
func LoadExternalDatasets(dir string, opts ...CleanOpt) ([]Record, []Diagnostic, error) {
	var (
		records     []Record
		diagnostics []Diagnostic
	)
	callback := buildCleanOpts(opts).ProgressCallback
	sources := ExternalSources()
	for k, src := range sources {
		t, err := ReadTableFile(filepath.Join(dir, src.File))
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", src.Name, err)
		}

		srcOpts := opts
		if callback != nil {
			share := func(p float64) {
				callback((float64(k) + p) / float64(len(sources)))
			}
			srcOpts = append(opts[:len(opts):len(opts)], WithProgressCallback(share))
		}
		recs, diags, err := CleanExternal(src, t, srcOpts...)
		if err != nil {
			return nil, nil, err
		}
		records = append(records, recs...)
		diagnostics = append(diagnostics, diags...)
	}
	return records, diagnostics, nil
}
