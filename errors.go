package tweetprep

import (
	"errors"
	"fmt"
)

var (
	// ErrUnrecognizedLabel is wrapped by every LabelError.
	ErrUnrecognizedLabel = errors.New("unrecognized label")
	// ErrInvalidConfig is wrapped by every ConfigError.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrUnfitVectorizer is returned by Transform when Fit has not been called.
	ErrUnfitVectorizer = errors.New("vectorizer has not been fit")
	// ErrEmptyVocabulary is returned by Fit when the corpus yields no terms.
	ErrEmptyVocabulary = errors.New("empty vocabulary")
	// ErrLengthMismatch is returned when a corpus and its labels differ in length.
	ErrLengthMismatch = errors.New("corpus and labels differ in length")
	// ErrMissingColumn is returned when a dataset lacks a required column.
	ErrMissingColumn = errors.New("missing column")
)

// LabelError reports a label that matches none of the known categories.
type LabelError struct {
	Label string
	Kind  string // "emotion", or the name of the dataset whose remap table was used.
}

func (e *LabelError) Error() string {
	return fmt.Sprintf("unrecognized %s label %q", e.Kind, e.Label)
}

func (e *LabelError) Unwrap() error {
	return ErrUnrecognizedLabel
}

// IsUnrecognizedLabel reports whether err is, or wraps, a LabelError.
func IsUnrecognizedLabel(err error) bool {
	var labelErr *LabelError
	return errors.As(err, &labelErr)
}

// ConfigError reports an invalid construction-time setting.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// IsConfigError reports whether err is, or wraps, a ConfigError.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}
