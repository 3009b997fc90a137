// Package progress renders terminal progress bars.
package progress

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
)

// Bar is a counting progress bar.
type Bar struct {
	bar *progressbar.ProgressBar
}

// New returns a bar tracking count steps with the given description.
func New(count int64, desc string) *Bar {
	return &Bar{bar: progressbar.NewOptions64(count,
		progressbar.OptionSetDescription(desc),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)}
}

// NewBytes returns a bar for byte transfers; the description is annotated
// with the humanized total.
func NewBytes(total int64, desc string) *Bar {
	if total > 0 {
		desc = fmt.Sprintf("%s (%s)", desc, humanize.Bytes(uint64(total)))
	}
	return &Bar{bar: progressbar.NewOptions64(total,
		progressbar.OptionSetDescription(desc),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowBytes(true),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)}
}

// Silent returns a bar that renders nothing, for non-interactive runs.
func Silent(count int64) *Bar {
	return &Bar{bar: progressbar.NewOptions64(count,
		progressbar.OptionSetVisibility(false),
	)}
}

// Inc advances the bar by one step.
func (b *Bar) Inc() {
	_ = b.bar.Add(1)
}

// Add advances the bar by n steps.
func (b *Bar) Add(n int) {
	_ = b.bar.Add(n)
}

// Set moves the bar to an absolute position.
func (b *Bar) Set(n int64) {
	_ = b.bar.Set64(n)
}

// Finish completes the bar.
func (b *Bar) Finish() {
	_ = b.bar.Finish()
}

// Iter yields 0..n-1 on the returned channel, advancing b on each value and
// finishing the bar when exhausted.
func (b *Bar) Iter(n int) <-chan int {
	out := make(chan int)
	go func() {
		defer close(out)
		for i := 0; i < n; i++ {
			out <- i
			b.Inc()
		}
		b.Finish()
	}()
	return out
}
