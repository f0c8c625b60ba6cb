package tweetprep

import (
	"fmt"
	"io"
	"log"
)

// A Corpus is the cleaned, combined training data of a run.
type Corpus struct {
	Primary     []Record
	External    []Record
	Diagnostics []Diagnostic
}

// Records returns the primary records followed by the external ones.
func (c *Corpus) Records() []Record {
	out := make([]Record, 0, len(c.Primary)+len(c.External))
	out = append(out, c.Primary...)
	return append(out, c.External...)
}

// CorpusOpts controls BuildCorpus.
type CorpusOpts struct {
	Logger         *log.Logger
	IncludeExtra   bool      // If true, load the external datasets too
	ProgressWriter io.Writer // Where progress bars are drawn; nil disables them
}

// A CorpusOpt represents a setting that changes corpus assembly.
type CorpusOpt func(opts *CorpusOpts)

// WithLogger sets the logger that receives counts and diagnostics.
func WithLogger(logger *log.Logger) CorpusOpt {
	return func(opts *CorpusOpts) {
		opts.Logger = logger
	}
}

// WithExternalDatasets can enable (the default) or disable the external
// datasets.
func WithExternalDatasets(include bool) CorpusOpt {
	return func(opts *CorpusOpts) {
		opts.IncludeExtra = include
	}
}

// WithProgress draws a progress bar per dataset on w.
func WithProgress(w io.Writer) CorpusOpt {
	return func(opts *CorpusOpts) {
		opts.ProgressWriter = w
	}
}

// BuildCorpus loads and cleans the datasets named by cfg.
func BuildCorpus(cfg Config, opts ...CorpusOpt) (*Corpus, error) {
	o := CorpusOpts{IncludeExtra: true}
	for _, applyOpt := range opts {
		applyOpt(&o)
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard, "", 0)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	normalizer := cfg.NewNormalizer()
	cleanOpts := func(description string) ([]CleanOpt, func()) {
		base := []CleanOpt{WithLemmatization(cfg.Lemmatize), UsingNormalizer(normalizer)}
		if o.ProgressWriter == nil {
			return base, func() {}
		}
		callback, finish := NewProgressBar(o.ProgressWriter, description)
		return append(base, WithProgressCallback(callback)), finish
	}

	path, err := cfg.DataPath(cfg.PrimaryFile)
	if err != nil {
		return nil, err
	}
	rows, err := LoadPrimary(path)
	if err != nil {
		return nil, fmt.Errorf("load primary dataset: %w", err)
	}

	corpus := &Corpus{}
	copts, finish := cleanOpts(PrimarySource)
	corpus.Primary, corpus.Diagnostics, err = CleanPrimary(rows, copts...)
	finish()
	if err != nil {
		return nil, err
	}
	o.Logger.Printf("%s: kept %d of %d rows", PrimarySource, len(corpus.Primary), len(rows))

	if o.IncludeExtra {
		dir, err := cfg.DataPath("")
		if err != nil {
			return nil, err
		}
		copts, finish := cleanOpts("external")
		external, diagnostics, err := LoadExternalDatasets(dir, copts...)
		finish()
		if err != nil {
			return nil, err
		}
		corpus.External = external
		corpus.Diagnostics = append(corpus.Diagnostics, diagnostics...)
		o.Logger.Printf("external: kept %d rows", len(external))
	}

	for _, d := range corpus.Diagnostics {
		o.Logger.Print(d)
	}
	return corpus, nil
}
