// Package textutil provides unicode-aware text helpers for TUI rendering.
package textutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is appended to truncated strings.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// VisualWidthStyled returns the width of a string that may carry ANSI styling.
func VisualWidthStyled(s string) int {
	return lipgloss.Width(s)
}

// Truncate shortens s to at most maxWidth columns, ending in an ellipsis
// when anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	avail := maxWidth - VisualWidth(TruncateEllipsis)
	if avail < 0 {
		return TruncateEllipsis
	}

	var b strings.Builder
	w := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > avail {
			break
		}
		b.WriteRune(r)
		w += rw
	}
	return b.String() + TruncateEllipsis
}

// PadRightVisual pads s with spaces to width columns, truncating if wider.
func PadRightVisual(s string, width int) string {
	cur := VisualWidth(s)
	if cur >= width {
		return Truncate(s, width)
	}
	return s + runewidth.FillRight("", width-cur)
}

// PadLeftVisual pads s on the left to width columns, truncating if wider.
func PadLeftVisual(s string, width int) string {
	cur := VisualWidth(s)
	if cur >= width {
		return Truncate(s, width)
	}
	return runewidth.FillLeft("", width-cur) + s
}

// Wrap breaks s into lines of at most width columns at spaces. Words wider
// than width are truncated. Existing newlines are kept.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := ""
		for _, w := range words {
			w = Truncate(w, width)
			switch {
			case line == "":
				line = w
			case VisualWidth(line)+1+VisualWidth(w) <= width:
				line += " " + w
			default:
				lines = append(lines, line)
				line = w
			}
		}
		lines = append(lines, line)
	}
	return lines
}
