package grid

import (
	"errors"
	"fmt"
	"strings"

	"pathways/internal/catalog"
)

// ErrMalformedCourseRecord is matched by every *MalformedCourseRecordError.
var ErrMalformedCourseRecord = errors.New("malformed course record")

// MalformedCourseRecordError reports a course missing a required field.
type MalformedCourseRecordError struct {
	Year     int
	Semester catalog.Semester
	Category catalog.Category
	Index    int
	Field    string // "title" or "credits"
}

func (e *MalformedCourseRecordError) Error() string {
	return fmt.Sprintf("%s: %s %s[%d] missing %s",
		ErrMalformedCourseRecord, RowLabel(e.Year, e.Semester), e.Category, e.Index, e.Field)
}

// Is lets errors.Is match ErrMalformedCourseRecord.
func (e *MalformedCourseRecordError) Is(target error) bool {
	return target == ErrMalformedCourseRecord
}

// YearRange is an inclusive span of academic years.
type YearRange struct {
	First int `json:"first" yaml:"first"`
	Last  int `json:"last" yaml:"last"`
}

// AllYears covers every year a pathway may describe.
var AllYears = YearRange{First: catalog.FirstYear, Last: catalog.LastYear}

// clamp restricts r to AllYears. The result may be empty (First > Last).
func (r YearRange) clamp() YearRange {
	if r.First < catalog.FirstYear {
		r.First = catalog.FirstYear
	}
	if r.Last > catalog.LastYear {
		r.Last = catalog.LastYear
	}
	return r
}

// Selection is the caller-owned "current selection": which pathway, and
// which years of it, to project. A zero Years means AllYears.
type Selection struct {
	PathwayID string
	Years     YearRange
}

// Project projects every year of p.
func Project(p catalog.Pathway) (Grid, error) {
	return ProjectRange(p, AllYears)
}

// ProjectRange projects the years of p within r. Bounds are clamped to
// 1..4; an empty range yields a header-only grid.
func ProjectRange(p catalog.Pathway, r YearRange) (Grid, error) {
	r = r.clamp()
	g := Grid{Name: p.Name, Header: HeaderRow(), Rows: []Row{}}
	for n := r.First; n <= r.Last; n++ {
		y, ok := p.Year(n)
		if !ok {
			continue
		}
		for _, s := range catalog.Semesters() {
			t := y.Term(s)
			if t == nil {
				continue
			}
			row, err := projectRow(n, s, t)
			if err != nil {
				return Grid{}, err
			}
			g.Rows = append(g.Rows, row)
		}
	}
	return g, nil
}

// ProjectSelection looks up sel.PathwayID in c and projects it. Unknown
// identifiers fail with an error matching catalog.ErrUnknownPathway.
func ProjectSelection(c *catalog.Catalog, sel Selection) (Grid, error) {
	p, err := c.Pathway(sel.PathwayID)
	if err != nil {
		return Grid{}, err
	}
	r := sel.Years
	if r == (YearRange{}) {
		r = AllYears
	}
	return ProjectRange(p, r)
}

func projectRow(year int, s catalog.Semester, t catalog.Term) (Row, error) {
	cats := catalog.Categories()
	row := Row{
		Label:    RowLabel(year, s),
		Year:     year,
		Semester: s,
		Cells:    make([]Cell, 0, len(cats)),
	}
	for _, cat := range cats {
		courses := t.Courses(cat)
		cell := Cell{Category: cat, Entries: make([]Entry, 0, len(courses))}
		for i, c := range courses {
			e, field := entryFor(c)
			if field != "" {
				return Row{}, &MalformedCourseRecordError{
					Year: year, Semester: s, Category: cat, Index: i, Field: field,
				}
			}
			cell.Entries = append(cell.Entries, e)
		}
		row.Cells = append(row.Cells, cell)
	}
	return row, nil
}

// entryFor renders c, or names the first missing required field.
func entryFor(c catalog.Course) (Entry, string) {
	if strings.TrimSpace(c.Title) == "" {
		return Entry{}, "title"
	}
	if c.Credits == nil {
		return Entry{}, "credits"
	}
	credits := *c.Credits
	e := Entry{
		Title:        c.Title,
		Code:         c.CodeOr(CodePlaceholder),
		Credits:      credits,
		CreditsLabel: CreditsLabel(credits),
		Description:  c.DescriptionOr(DescriptionPlaceholder),
		Size:         Classify(credits),
		Course:       c,
	}
	if c.Prerequisites != nil {
		e.Prerequisites = *c.Prerequisites
	}
	return e, ""
}

// Find returns the first entry whose code equals code, with its position.
func (g Grid) Find(code string) (Entry, Position, bool) {
	for ri, row := range g.Rows {
		for ci, cell := range row.Cells {
			for ei, e := range cell.Entries {
				if e.Code == code {
					return e, Position{Row: ri, Col: ci, Entry: ei}, true
				}
			}
		}
	}
	return Entry{}, Position{}, false
}

// Position addresses an entry: data row index, column index, entry index.
type Position struct {
	Row   int
	Col   int
	Entry int
}

// At returns the entry at pos, if any.
func (g Grid) At(pos Position) (Entry, bool) {
	if pos.Row < 0 || pos.Row >= len(g.Rows) {
		return Entry{}, false
	}
	cells := g.Rows[pos.Row].Cells
	if pos.Col < 0 || pos.Col >= len(cells) {
		return Entry{}, false
	}
	entries := cells[pos.Col].Entries
	if pos.Entry < 0 || pos.Entry >= len(entries) {
		return Entry{}, false
	}
	return entries[pos.Entry], true
}
