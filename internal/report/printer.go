// Package report renders the user-facing output of the wipe commands: the
// dry-run banner, one [QUERY] line per statement and [ERROR] lines for
// statements the database rejected.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

const (
	bannerRule = "--------------------------------------"
	bannerText = " Dry run - no statements are executed "
)

// Printer writes styled lines to an output stream.
type Printer struct {
	out    io.Writer
	info   *color.Color
	errTag *color.Color
	notice *color.Color
}

// New returns a Printer writing to out. Styling is applied only when
// colorize is set; pass !color.NoColor to follow the terminal.
func New(out io.Writer, colorize bool) *Printer {
	p := &Printer{
		out:    out,
		info:   color.New(color.FgGreen),
		errTag: color.New(color.FgWhite, color.BgRed),
		notice: color.New(color.FgWhite, color.BgBlue, color.Bold),
	}
	for _, c := range []*color.Color{p.info, p.errTag, p.notice} {
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// SetOutput redirects subsequent lines, e.g. above a progress bar.
func (p *Printer) SetOutput(out io.Writer) {
	p.out = out
}

// DryRunBanner announces that nothing will be executed.
func (p *Printer) DryRunBanner() {
	p.Line(p.notice.Sprint(bannerRule))
	p.Line(p.notice.Sprint(bannerText))
	p.Line(p.notice.Sprint(bannerRule))
	p.Line("")
}

// Query echoes a statement before it runs.
func (p *Printer) Query(stmt string) {
	p.Line(fmt.Sprintf("%s \"%s\"", p.info.Sprint("[QUERY]:"), stmt))
}

// Error reports a failure with the database's own message.
func (p *Printer) Error(msg string) {
	p.Line(fmt.Sprintf("%s \"%s\"", p.errTag.Sprint("[ERROR]:"), msg))
}

// Fatal reports an error that ends the command.
func (p *Printer) Fatal(msg string) {
	p.Line(p.errTag.Sprint(msg))
}

// Line writes one plain line.
func (p *Printer) Line(s string) {
	fmt.Fprintln(p.out, s)
}
