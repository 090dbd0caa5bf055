package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Stdout and Stderr are swapped out by tests.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

func OK(msg string) {
	fmt.Fprintln(Stdout, SuccessStyle.Render("✔ "+msg))
}

func Fail(msg string) {
	fmt.Fprintln(Stderr, ErrorStyle.Render("✖ "+msg))
}

// Panel prints lines inside a rounded frame.
func Panel(lines []string) {
	fmt.Fprintln(Stdout, PanelString(strings.Join(lines, "\n")))
}

func PanelString(inner string) string {
	return BoxStyle.Render(inner)
}

// ProgressBar renders "[████░░░░] done/total".
func ProgressBar(done, total, width int) string {
	if width <= 0 {
		width = 28
	}
	filled := 0
	if total > 0 {
		filled = int(float64(done) / float64(total) * float64(width))
	}
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + fmt.Sprintf("] %d/%d", done, total)
}
