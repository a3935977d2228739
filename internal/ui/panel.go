package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Box frames inner text with the current theme's border.
func Box(inner string, width int) string {
	t := Current()
	st := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
	if width > 0 {
		st = st.Width(width)
	}
	return st.Render(inner)
}

// Panel draws a framed box of lines to w.
func Panel(w io.Writer, lines []string) {
	fmt.Fprintln(w, Box(strings.Join(lines, "\n"), 0))
}

func OK(w io.Writer, msg string) {
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprintln(w, Current().Success.Render("✔ "+msg))
}

func Fail(w io.Writer, msg string) {
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintln(w, Current().Error.Render("✖ "+msg))
}

// Truncate shortens s to max runes, ending with "...".
func Truncate(s string, max int) string {
	r := []rune(s)
	if max <= 3 || len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
