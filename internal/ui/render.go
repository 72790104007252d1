package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"pathways/internal/grid"
	"pathways/internal/ui/textutil"
)

// cursorMarker prefixes the entry under the cursor.
const cursorMarker = "▸ "

// RenderGrid draws g as a table: the header row, then one row per term with
// its label and one cell per category. cursor may be nil. width <= 0 lets
// the table size itself.
func RenderGrid(g grid.Grid, cursor *grid.Position, width int) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(Styles.Muted).
		BorderRow(true).
		Headers(g.Header...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return Styles.Section.Padding(0, 1)
			case col == 0:
				return Styles.RowLabel.Padding(0, 1)
			default:
				return lipgloss.NewStyle().Padding(0, 1)
			}
		})
	if width > 0 {
		t = t.Width(width)
	}

	for ri, row := range g.Rows {
		cells := make([]string, 0, len(row.Cells)+1)
		cells = append(cells, row.Label)
		for ci, cell := range row.Cells {
			onCell := cursor != nil && cursor.Row == ri && cursor.Col == ci
			sel := -1
			if onCell {
				sel = cursor.Entry
			}
			cells = append(cells, renderCell(cell, sel, onCell))
		}
		t = t.Row(cells...)
	}
	return t.Render()
}

// renderCell stacks the cell's entries. sel is the entry under the cursor or -1.
func renderCell(c grid.Cell, sel int, onCell bool) string {
	if c.Empty() {
		if onCell {
			return Styles.Selected.Render(cursorMarker + "—")
		}
		return Styles.Muted.Render("—")
	}
	blocks := make([]string, len(c.Entries))
	for i, e := range c.Entries {
		blocks[i] = renderEntry(e, i == sel)
	}
	return strings.Join(blocks, "\n\n")
}

func renderEntry(e grid.Entry, selected bool) string {
	style := Styles.CourseHalf
	if e.Size == grid.SizeFull {
		style = Styles.CourseFull
	}
	prefix := ""
	if selected {
		style = Styles.Selected
		prefix = cursorMarker
	}
	lines := []string{
		prefix + style.Bold(true).Render(e.Code),
		style.Render(e.Title),
		Styles.Muted.Render(e.CreditsLabel),
	}
	return strings.Join(lines, "\n")
}

// RenderCourse is the detail card body for one entry.
func RenderCourse(e grid.Entry, width int) string {
	if width <= 0 {
		width = 60
	}
	var b strings.Builder
	b.WriteString(Styles.Title.Render(e.Title) + "\n")
	b.WriteString(Styles.Muted.Render(e.Code+" · "+e.CreditsLabel) + "\n\n")
	for _, line := range textutil.Wrap(e.Description, width) {
		b.WriteString(Styles.Normal.Render(line) + "\n")
	}
	if e.Prerequisites != "" {
		b.WriteString("\n" + Styles.Section.Render("Prerequisites") + "\n")
		for _, line := range textutil.Wrap(e.Prerequisites, width) {
			b.WriteString(Styles.Normal.Render(line) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderAlsoIn lists the other pathways offering a course, or "" when there
// are none.
func RenderAlsoIn(names []string, width int) string {
	if len(names) == 0 {
		return ""
	}
	if width <= 0 {
		width = 60
	}
	var b strings.Builder
	b.WriteString(Styles.Section.Render("Also in") + "\n")
	for _, line := range textutil.Wrap(strings.Join(names, ", "), width) {
		b.WriteString(Styles.Normal.Render(line) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
