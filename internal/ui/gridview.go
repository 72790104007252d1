package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pathways/internal/catalog"
	"pathways/internal/grid"
)

// GridView shows the course grid of one pathway with a cursor on an entry.
//
// j/k walk entries top to bottom: through the entries of the current cell,
// then on to the next row. h/l move across categories.
type GridView struct {
	PathwayID string
	Grid      grid.Grid
	Cursor    grid.Position
	focused   bool
	width     int
	height    int
}

var _ View = (*GridView)(nil)

// NewGridView creates a view over an already projected grid.
func NewGridView(id string, g grid.Grid) *GridView {
	return &GridView{PathwayID: id, Grid: g}
}

// Init implements View.
func (v *GridView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *GridView) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	switch km.String() {
	case "j", "down":
		v.moveDown()
	case "k", "up":
		v.moveUp()
	case "l", "right":
		v.moveAcross(1)
	case "h", "left":
		v.moveAcross(-1)
	case "g", "home":
		v.Cursor = grid.Position{}
	case "G", "end":
		if last := len(v.Grid.Rows) - 1; last >= 0 {
			v.Cursor.Row = last
			v.Cursor.Entry = max(v.cellLen(last, v.Cursor.Col)-1, 0)
		}
	case "enter":
		if e, ok := v.SelectedEntry(); ok {
			id := v.PathwayID
			return v, func() tea.Msg { return ShowCourseMsg{PathwayID: id, Entry: e} }
		}
	}
	return v, nil
}

func (v *GridView) cellLen(row, col int) int {
	if row < 0 || row >= len(v.Grid.Rows) {
		return 0
	}
	cells := v.Grid.Rows[row].Cells
	if col < 0 || col >= len(cells) {
		return 0
	}
	return len(cells[col].Entries)
}

func (v *GridView) moveDown() {
	if len(v.Grid.Rows) == 0 {
		return
	}
	if v.Cursor.Entry < v.cellLen(v.Cursor.Row, v.Cursor.Col)-1 {
		v.Cursor.Entry++
		return
	}
	if v.Cursor.Row < len(v.Grid.Rows)-1 {
		v.Cursor.Row++
		v.Cursor.Entry = 0
	}
}

func (v *GridView) moveUp() {
	if len(v.Grid.Rows) == 0 {
		return
	}
	if v.Cursor.Entry > 0 {
		v.Cursor.Entry--
		return
	}
	if v.Cursor.Row > 0 {
		v.Cursor.Row--
		v.Cursor.Entry = max(v.cellLen(v.Cursor.Row, v.Cursor.Col)-1, 0)
	}
}

func (v *GridView) moveAcross(delta int) {
	cols := len(v.Grid.Columns())
	next := v.Cursor.Col + delta
	if next < 0 || next >= cols {
		return
	}
	v.Cursor.Col = next
	v.Cursor.Entry = min(v.Cursor.Entry, max(v.cellLen(v.Cursor.Row, next)-1, 0))
}

// SelectedEntry returns the entry under the cursor; false on an empty cell.
func (v *GridView) SelectedEntry() (grid.Entry, bool) {
	return v.Grid.At(v.Cursor)
}

// CourseRef locates a course in a pathway grid. Code is the displayed code
// (grid.CodePlaceholder for courses without one). Zero-valued Title, Year,
// Semester and Category match anything.
type CourseRef struct {
	Code     string
	Title    string
	Year     int
	Semester catalog.Semester
	Category catalog.Category
}

func (r CourseRef) matchesRow(row grid.Row) bool {
	return (r.Year == 0 || row.Year == r.Year) && (r.Semester == "" || row.Semester == r.Semester)
}

func (r CourseRef) matchesCell(cell grid.Cell) bool {
	return r.Category == "" || cell.Category == r.Category
}

func (r CourseRef) matchesEntry(e grid.Entry) bool {
	return e.Code == r.Code && (r.Title == "" || e.Title == r.Title)
}

// FocusCourse moves the cursor to the first entry matching ref.
func (v *GridView) FocusCourse(ref CourseRef) bool {
	for ri, row := range v.Grid.Rows {
		if !ref.matchesRow(row) {
			continue
		}
		for ci, cell := range row.Cells {
			if !ref.matchesCell(cell) {
				continue
			}
			for ei, e := range cell.Entries {
				if ref.matchesEntry(e) {
					v.Cursor = grid.Position{Row: ri, Col: ci, Entry: ei}
					return true
				}
			}
		}
	}
	return false
}

// SetFocused changes the border style and shows or hides the cursor.
func (v *GridView) SetFocused(focused bool) {
	v.focused = focused
}

// SetSize implements Sizer.
func (v *GridView) SetSize(width, height int) {
	v.width, v.height = width, height
}

// View implements View.
func (v *GridView) View() string {
	var cursor *grid.Position
	if v.focused {
		cursor = &v.Cursor
	}
	inner := max(v.width-2, 0)
	body := RenderGrid(v.Grid, cursor, inner)
	if len(v.Grid.Rows) == 0 {
		body += "\n" + Styles.Empty.Render("No terms in this pathway")
	}
	body = scrollTo(body, max(v.height-2, 0))

	style := Styles.Panel
	if v.focused {
		style = Styles.PanelFocus
	}
	return style.Render(body)
}

// scrollTo keeps at most height lines of s, positioned so the cursor marker
// stays visible. height <= 0 returns s unchanged.
func scrollTo(s string, height int) string {
	lines := strings.Split(s, "\n")
	if height <= 0 || len(lines) <= height {
		return s
	}
	at := 0
	for i, l := range lines {
		if strings.Contains(l, cursorMarker) {
			at = i
			break
		}
	}
	start := max(at-height/3, 0)
	start = min(start, len(lines)-height)
	return lipgloss.JoinVertical(lipgloss.Left, lines[start:start+height]...)
}
