package tweetprep

import "fmt"

// PrimarySource names the primary dataset in diagnostics.
const PrimarySource = "primary"

// CleanOpts controls dataset cleaning.
type CleanOpts struct {
	Lemmatize        bool                   // If true, lemmatize cleaned tokens
	Normalizer       *Normalizer            // Normalizer to use; nil means the default
	ProgressCallback func(progress float64) // Progress reporting callback
}

// A CleanOpt represents a setting that changes dataset cleaning.
type CleanOpt func(opts *CleanOpts)

// WithLemmatization can enable (the default) or disable lemmatization.
func WithLemmatization(include bool) CleanOpt {
	return func(opts *CleanOpts) {
		opts.Lemmatize = include
	}
}

// UsingNormalizer specifies the Normalizer to use.
func UsingNormalizer(n *Normalizer) CleanOpt {
	return func(opts *CleanOpts) {
		opts.Normalizer = n
	}
}

// WithProgressCallback sets a progress reporting callback. It receives the
// fraction of rows processed, from 0 to 1.
func WithProgressCallback(callback func(float64)) CleanOpt {
	return func(opts *CleanOpts) {
		opts.ProgressCallback = callback
	}
}

func buildCleanOpts(opts []CleanOpt) CleanOpts {
	base := CleanOpts{Lemmatize: true}
	for _, applyOpt := range opts {
		applyOpt(&base)
	}
	if base.Normalizer == nil {
		base.Normalizer = sharedNormalizer()
	}
	return base
}

func (o CleanOpts) report(done, total int) {
	if o.ProgressCallback != nil && total > 0 {
		o.ProgressCallback(float64(done) / float64(total))
	}
}

// CleanPrimary turns primary-dataset rows into canonical records.
//
// Rows labeled "I can't tell" and rows with an empty field are dropped
// silently. Rows whose emotion label is not recognized are dropped and
// reported as diagnostics. Surviving rows keep their order and Index; their
// text is normalized with the row's product category as the masking target.
func CleanPrimary(rows []RawRecord, opts ...CleanOpt) ([]Record, []Diagnostic, error) {
	o := buildCleanOpts(opts)

	var (
		records     []Record
		diagnostics []Diagnostic
	)
	for i, row := range rows {
		o.report(i, len(rows))
		if IsAmbiguousEmotion(row.Emotion) || row.Text == "" || row.Product == "" || row.Emotion == "" {
			continue
		}

		emotion, err := MapEmotion(row.Emotion)
		if err != nil {
			diagnostics = append(diagnostics, Diagnostic{
				Source: PrimarySource,
				Index:  row.Index,
				Label:  row.Emotion,
				Err:    err,
			})
			continue
		}

		text, err := o.Normalizer.NormalizeWithTarget(row.Text, row.Product, o.Lemmatize)
		if err != nil {
			return nil, nil, fmt.Errorf("clean row %d: %w", row.Index, err)
		}
		records = append(records, Record{Index: row.Index, Emotion: emotion, Text: text})
	}
	o.report(len(rows), len(rows))
	return records, diagnostics, nil
}
