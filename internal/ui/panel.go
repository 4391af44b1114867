package ui

import (
	"fmt"
	"io"
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// ProgressBar renders a Unicode progress bar for a 0-100 percentage.
func ProgressBar(percent, width int) string {
	if width < 5 {
		width = 5
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %3d%%", bar, percent)
}

// Panel draws a framed box using the current theme.
func Panel(w io.Writer, lines []string) {
	t := Current()
	maxw := 0
	for _, ln := range lines {
		if vis := xansi.StringWidth(ln); vis > maxw {
			maxw = vis
		}
	}
	pad := func(s string) string {
		if vis := xansi.StringWidth(s); vis < maxw {
			s += strings.Repeat(" ", maxw-vis)
		}
		return s
	}
	fmt.Fprintln(w, t.CornerTL+strings.Repeat(t.H, maxw+2)+t.CornerTR)
	for _, ln := range lines {
		fmt.Fprintln(w, t.V+" "+pad(ln)+" "+t.V)
	}
	fmt.Fprintln(w, t.CornerBL+strings.Repeat(t.H, maxw+2)+t.CornerBR)
}

// Truncate cuts s to width visible cells, ANSI-aware.
func Truncate(s string, width int) string {
	if xansi.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return xansi.Cut(s, 0, width)
	}
	return xansi.Cut(s, 0, width-3) + "..."
}
