package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - titles, full-credit courses
	ColorHighlight = "205" // Magenta - cursor, focused borders
	ColorDanger    = "196" // Red - errors
	ColorMuted     = "241" // Gray - hints, empty cells
	ColorText      = "252" // Light gray - normal text
	ColorDim       = "243" // Darker gray - half-credit courses
)

// Styles contains shared style definitions used across views and modals.
var Styles = struct {
	Title        lipgloss.Style // Bold accent - main titles
	TitleWarning lipgloss.Style // Bold danger - error titles

	Box        lipgloss.Style // Rounded box, highlight border - modals
	BoxDanger  lipgloss.Style // Rounded box, danger border - error panel
	BoxCompact lipgloss.Style // Less padding - search results
	Panel      lipgloss.Style // Unfocused panel border
	PanelFocus lipgloss.Style // Focused panel border

	Selected lipgloss.Style // Cursor / selected item
	Muted    lipgloss.Style
	Normal   lipgloss.Style
	Hint     lipgloss.Style
	Status   lipgloss.Style // Footer status messages
	Section  lipgloss.Style // Section headers, table header row
	Empty    lipgloss.Style // Placeholder text (muted, italic)
	Label    lipgloss.Style
	Error    lipgloss.Style

	CourseFull lipgloss.Style // 1.0 credit course
	CourseHalf lipgloss.Style // any other credit value
	RowLabel   lipgloss.Style // "Year 1 Fall" column
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TitleWarning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2),
	BoxDanger: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 2),
	BoxCompact: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	Panel: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)),
	PanelFocus: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Section: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Label: lipgloss.NewStyle(),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	CourseFull: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	CourseHalf: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),
	RowLabel: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
}

// NewCompactListDelegate returns a delegate with zero spacing and shared styles.
func NewCompactListDelegate(showDescription bool) list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.ShowDescription = showDescription
	d.Styles.SelectedTitle = Styles.Selected
	d.Styles.SelectedDesc = Styles.Selected.Bold(false)
	d.Styles.NormalTitle = Styles.Normal
	d.Styles.NormalDesc = Styles.Muted
	return d
}
