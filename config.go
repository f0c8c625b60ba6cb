package tweetprep

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config gathers the settings of a preprocessing run.
type Config struct {
	DataDir     string           `yaml:"data_dir"`
	PrimaryFile string           `yaml:"primary_file"`
	Lemmatize   bool             `yaml:"lemmatize"`
	Vectorizer  VectorizerConfig `yaml:"vectorizer"`
	Stopwords   StopwordConfig   `yaml:"stopwords"`
	Plot        PlotConfig       `yaml:"plot"`
}

// VectorizerConfig selects the vectorizer backend and n-gram range.
type VectorizerConfig struct {
	Kind  string `yaml:"kind"`
	NGram []int  `yaml:"ngram"`
}

// StopwordConfig extends the default stopword set.
type StopwordConfig struct {
	Extra    []string `yaml:"extra"`
	Extended bool     `yaml:"extended"` // Add the bbalet/stopwords English words.
}

// PlotConfig controls saved plots.
type PlotConfig struct {
	DPI float64 `yaml:"dpi"`
}

// DefaultConfig returns standard configuration
func DefaultConfig() Config {
	return Config{
		DataDir:     filepath.Join("..", "data"),
		PrimaryFile: PrimaryFile,
		Lemmatize:   true,
		Vectorizer: VectorizerConfig{
			Kind:  CountFrequency.String(),
			NGram: []int{1, 1},
		},
		Plot: PlotConfig{DPI: SaveDPI},
	}
}

// LoadConfig reads a YAML file over DefaultConfig. Keys absent from the
// file keep their default.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate reports the first invalid setting as a *ConfigError.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return &ConfigError{Field: "data_dir", Message: "must not be empty"}
	}
	if c.PrimaryFile == "" {
		return &ConfigError{Field: "primary_file", Message: "must not be empty"}
	}
	if _, err := ParseVectorizerKind(c.Vectorizer.Kind); err != nil {
		return err
	}
	if _, err := c.ngramRange(); err != nil {
		return err
	}
	if c.Plot.DPI <= 0 {
		return &ConfigError{Field: "plot.dpi", Message: fmt.Sprintf("must be positive, got %v", c.Plot.DPI)}
	}
	return nil
}

func (c Config) ngramRange() (NGramRange, error) {
	if len(c.Vectorizer.NGram) != 2 {
		return NGramRange{}, &ConfigError{
			Field:   "vectorizer.ngram",
			Message: fmt.Sprintf("format should be [minimum n-gram, maximum n-gram], got %v", c.Vectorizer.NGram),
		}
	}
	r := NGramRange{Min: c.Vectorizer.NGram[0], Max: c.Vectorizer.NGram[1]}
	return r, r.Validate()
}

// NewVectorizer builds the configured, unfit Vectorizer.
func (c Config) NewVectorizer() (*Vectorizer, error) {
	kind, err := ParseVectorizerKind(c.Vectorizer.Kind)
	if err != nil {
		return nil, err
	}
	ngram, err := c.ngramRange()
	if err != nil {
		return nil, err
	}
	return NewVectorizer(kind, ngram)
}

// StopwordSet returns the default stopwords plus the configured additions.
func (c Config) StopwordSet() StopwordSet {
	set := DefaultStopwords()
	set.Add(c.Stopwords.Extra...)
	if c.Stopwords.Extended {
		set.Add(ExtendedStopwords()...)
	}
	return set
}

// NewNormalizer builds a Normalizer using the configured stopwords.
func (c Config) NewNormalizer(opts ...NormalizerOpt) *Normalizer {
	return NewNormalizer(append([]NormalizerOpt{UsingStopwords(c.StopwordSet())}, opts...)...)
}

// PlotOpts returns the rendering options for PlotConfusionMatrix and
// PlotTrainingHistory.
func (c Config) PlotOpts() []PlotOpt {
	return []PlotOpt{WithDPI(c.Plot.DPI)}
}

// DataPath resolves name inside the data directory. A relative data
// directory is taken relative to the working directory.
func (c Config) DataPath(name string) (string, error) {
	dir, err := filepath.Abs(c.DataDir)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}
