package tweetprep

import (
	"bytes"
	"testing"
)

func TestNewProgressBar(t *testing.T) {
	var buf bytes.Buffer
	callback, finish := NewProgressBar(&buf, "cleaning")

	_, _, err := CleanPrimary(primaryRows(),
		UsingNormalizer(testNormalizer()),
		WithLemmatization(false),
		WithProgressCallback(callback))
	if err != nil {
		t.Fatal(err)
	}
	finish()

	if buf.Len() == 0 {
		t.Error("progress bar wrote nothing")
	}
}
