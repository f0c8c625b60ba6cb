package tweetprep

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// progressSteps is the resolution of the bar driven by NewProgressBar.
const progressSteps = 1000

// NewProgressBar returns a progress callback that draws a bar on w, and a
// function that completes the bar.
func NewProgressBar(w io.Writer, description string) (callback func(float64), finish func()) {
	bar := progressbar.NewOptions(progressSteps,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	callback = func(progress float64) {
		_ = bar.Set(int(progress * progressSteps))
	}
	finish = func() {
		_ = bar.Finish()
	}
	return callback, finish
}
