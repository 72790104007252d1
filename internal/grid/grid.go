// Package grid projects a pathway into the two-dimensional course grid shown
// by the browser: one row per (year, semester), one column per category.
//
// Projection is pure. It reads the pathway, never mutates it, performs no
// I/O, and returns a fresh Grid on every call.
package grid

import (
	"strconv"

	"pathways/internal/catalog"
)

const (
	// CodePlaceholder is shown for courses without a code.
	CodePlaceholder = "TBD"
	// DescriptionPlaceholder is shown for courses without a description.
	DescriptionPlaceholder = "No description available."
)

// Size classifies an entry for display width.
type Size string

const (
	SizeFull Size = "full"
	SizeHalf Size = "half"
)

// Classify returns SizeFull only when credits is exactly 1.0.
// Every other value, including 1.5 and 2.0, is SizeHalf.
func Classify(credits float64) Size {
	if credits == 1.0 {
		return SizeFull
	}
	return SizeHalf
}

// CreditsLabel formats credits the way the grid and course card show them,
// e.g. "1 Credits" or "0.5 Credits".
func CreditsLabel(credits float64) string {
	return strconv.FormatFloat(credits, 'f', -1, 64) + " Credits"
}

// Entry is a course as rendered into a cell, with display defaults applied.
type Entry struct {
	Title         string  `json:"title" yaml:"title"`
	Code          string  `json:"code" yaml:"code"`
	Credits       float64 `json:"credits" yaml:"credits"`
	CreditsLabel  string  `json:"credits_label" yaml:"credits_label"`
	Description   string  `json:"description" yaml:"description"`
	Prerequisites string  `json:"prerequisites,omitempty" yaml:"prerequisites,omitempty"`
	Size          Size    `json:"size" yaml:"size"`

	// Course is the source record, unmodified.
	Course catalog.Course `json:"-" yaml:"-"`
}

// Cell holds the entries of one category within one term.
type Cell struct {
	Category catalog.Category `json:"category" yaml:"category"`
	Entries  []Entry          `json:"entries" yaml:"entries"`
}

// Empty reports whether the cell has no entries. Empty cells are still
// present in their row.
func (c Cell) Empty() bool {
	return len(c.Entries) == 0
}

// Row is one (year, semester) line of the grid.
type Row struct {
	Label    string           `json:"label" yaml:"label"`
	Year     int              `json:"year" yaml:"year"`
	Semester catalog.Semester `json:"semester" yaml:"semester"`
	Cells    []Cell           `json:"cells" yaml:"cells"`
}

// Cell returns the row's cell for cat, or a zero Cell if the category is
// not one of the grid columns.
func (r Row) Cell(cat catalog.Category) Cell {
	for _, c := range r.Cells {
		if c.Category == cat {
			return c
		}
	}
	return Cell{}
}

// Grid is the projected view of a pathway. Header is row 0; Rows follow.
type Grid struct {
	Name   string   `json:"name,omitempty" yaml:"name,omitempty"`
	Header []string `json:"header" yaml:"header"`
	Rows   []Row    `json:"rows" yaml:"rows"`
}

// Len returns the number of rows including the header.
func (g Grid) Len() int {
	return 1 + len(g.Rows)
}

// Columns returns the category of each data column, in order.
func (g Grid) Columns() []catalog.Category {
	return catalog.Categories()
}

// RowLabel formats the leading cell of a data row, e.g. "Year 2 - Winter".
func RowLabel(year int, s catalog.Semester) string {
	return "Year " + strconv.Itoa(year) + " - " + s.Label()
}

// HeaderRow returns the fixed header: a blank corner cell followed by the
// category labels in display order.
func HeaderRow() []string {
	cats := catalog.Categories()
	out := make([]string, 0, len(cats)+1)
	out = append(out, "")
	for _, c := range cats {
		out = append(out, c.Label())
	}
	return out
}
