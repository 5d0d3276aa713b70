// Package progressbar implements functionality of printing a progress
// bar to the terminal window
package progressbar

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// ProgressBar implements a progress bar which may be incremented from
// multiple goroutines. The bar is only printed when Display is called,
// or periodically while Run is running.
type ProgressBar struct {
	mu sync.Mutex

	// width is the number of characters wide the bar is
	width float64

	// maxProgress is the number of times Increment() should be called
	// before the progress bar reaches 100%
	maxProgress     float64
	currentProgress float64

	out       io.Writer
	startTime time.Time
}

// New returns a new progress bar printed to out that is width
// characters wide and reaches 100% capacity after max Increment()
// calls
func New(out io.Writer, width, max int) *ProgressBar {
	if max <= 0 {
		panic(fmt.Sprintf("new: max progress must be positive but got %v",
			max))
	}
	return &ProgressBar{
		width:       float64(width),
		maxProgress: float64(max),
		out:         out,
		startTime:   time.Now(),
	}
}

// Increment increments the interal progress counter. Each time an
// iteration is performed, Increment should be called.
func (p *ProgressBar) Increment() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.currentProgress < p.maxProgress {
		p.currentProgress++
	}
}

// Progress returns the fraction of iterations completed
func (p *ProgressBar) Progress() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.currentProgress / p.maxProgress
}

func (p *ProgressBar) String() string {
	progress := p.Progress()

	var bar strings.Builder
	bar.WriteString("|")

	currentProg := progress * p.width
	for i := 0.0; i < currentProg; i++ {
		bar.WriteString("█")
	}
	for i := currentProg; i < p.width; i++ {
		bar.WriteString(" ")
	}
	fmt.Fprintf(&bar, "| [%.2f%% | elapsed: %v]", progress*100,
		time.Since(p.startTime).Truncate(time.Second))

	return bar.String()
}

// Display prints the progress bar, overwriting the current line
func (p *ProgressBar) Display() {
	fmt.Fprintf(p.out, "\n\033[1A\033[K%v", p.String())
}

// Run displays the progress bar every interval until ctx is done, then
// displays it a final time and moves to the next line
func (p *ProgressBar) Run(ctx context.Context, every time.Duration) {
	tick := time.NewTicker(every)
	defer tick.Stop()

	for {
		select {
		case <-tick.C:
			p.Display()

		case <-ctx.Done():
			p.Display()
			fmt.Fprintln(p.out)
			return
		}
	}
}
