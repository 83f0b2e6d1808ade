package fetch

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// Bar is a terminal progress bar driven by Fetcher.Run.
type Bar struct {
	bar *progressbar.ProgressBar
}

// NewBar creates a bar for total items writing to w.
func NewBar(w io.Writer, total int, description string) *Bar {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionClearOnFinish(),
	)
	return &Bar{bar: bar}
}

// Add advances the bar by n; it matches the progress callback of Fetcher.Run.
func (b *Bar) Add(n int) {
	_ = b.bar.Add(n)
}

// Finish completes the bar.
func (b *Bar) Finish() {
	_ = b.bar.Finish()
}
