package collector

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
)

// progress displays how many players of the running total have been written.
type progress interface {
	Grow(n int)
	Advance()
	Finish()
}

type nopProgress struct{}

func (nopProgress) Grow(int) {}
func (nopProgress) Advance() {}
func (nopProgress) Finish()  {}

// barProgress renders a terminal bar whose total grows as squads are listed.
type barProgress struct {
	bar   *progressbar.ProgressBar
	total int
	done  int
}

func newBarProgress(out io.Writer) *barProgress {
	bar := progressbar.NewOptions(0,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription("Processing Players"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("player"),
		progressbar.OptionOnCompletion(func() { fmt.Fprintln(out) }),
	)
	return &barProgress{bar: bar}
}

func (p *barProgress) Grow(n int) {
	if n <= 0 {
		return
	}
	p.total += n
	p.bar.ChangeMax(p.total)
}

func (p *barProgress) Advance() {
	p.done++
	_ = p.bar.Add(1)
}

// Finish completes the bar only when every counted player produced a row.
// Skipped players leave it short of the total.
func (p *barProgress) Finish() {
	if p.done < p.total {
		_ = p.bar.Exit()
		return
	}
	_ = p.bar.Finish()
}
