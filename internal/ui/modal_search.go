package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pathways/internal/grid"
	"pathways/internal/index"
	"pathways/internal/ui/textutil"
)

const (
	searchLimit      = 10
	searchLineWidth  = 64
	searchInputWidth = 40
)

// SearchFunc answers a query with ranked hits.
type SearchFunc func(query string, limit int) []index.Hit

// SearchModal is a query box over the course index. Enter on a hit opens
// that course in its pathway.
type SearchModal struct {
	input    textinput.Model
	search   SearchFunc
	query    string
	Results  []index.Hit
	Selected int
}

var _ View = (*SearchModal)(nil)

// NewSearchModal creates a search overlay backed by search.
func NewSearchModal(search SearchFunc) *SearchModal {
	ti := textinput.New()
	ti.Placeholder = "code, title, or keyword"
	ti.Width = searchInputWidth
	ti.Focus()
	return &SearchModal{input: ti, search: search}
}

// Init implements View.
func (m *SearchModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *SearchModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter":
			if m.Selected < len(m.Results) {
				h := m.Results[m.Selected]
				sel := SelectCourseMsg{PathwayID: h.Pathway, CourseRef: hitRef(h)}
				return m, func() tea.Msg { return sel }
			}
			return m, nil
		case "down", "ctrl+n":
			if m.Selected < len(m.Results)-1 {
				m.Selected++
			}
			return m, nil
		case "up", "ctrl+p":
			if m.Selected > 0 {
				m.Selected--
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if q := strings.TrimSpace(m.input.Value()); q != m.query {
		m.query = q
		m.Selected = 0
		m.Results = nil
		if q != "" && m.search != nil {
			m.Results = m.search(q, searchLimit)
		}
	}
	return m, cmd
}

// Query returns the current trimmed query.
func (m *SearchModal) Query() string {
	return m.query
}

// View implements View.
func (m *SearchModal) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Search courses") + "\n\n")
	b.WriteString(m.input.View() + "\n\n")
	switch {
	case m.query == "":
		b.WriteString(Styles.Empty.Render("Type to search all pathways") + "\n")
	case len(m.Results) == 0:
		b.WriteString(Styles.Empty.Render("No matches") + "\n")
	}
	for i, h := range m.Results {
		line := textutil.Truncate(hitLine(h), searchLineWidth-2)
		if i == m.Selected {
			b.WriteString(cursorMarker + Styles.Selected.Render(line) + "\n")
		} else {
			b.WriteString("  " + Styles.Normal.Render(line) + "\n")
		}
	}
	b.WriteString("\n" + Styles.Hint.Render("↑/↓: select  Enter: open  Esc: cancel"))
	return Styles.BoxCompact.Render(b.String())
}

func hitLine(h index.Hit) string {
	return fmt.Sprintf("%-9s %s  (%s, Y%s %s)", displayCode(h.Code), h.Title, h.Pathway, h.Year, h.Semester.Label())
}

// hitRef pins a hit to its placement so repeated courses (several
// "Open Elective" slots, say) open the one that was chosen.
func hitRef(h index.Hit) CourseRef {
	year, _ := strconv.Atoi(h.Year)
	return CourseRef{
		Code:     displayCode(h.Code),
		Title:    h.Title,
		Year:     year,
		Semester: h.Semester,
		Category: h.CourseType,
	}
}

func displayCode(code string) string {
	if strings.TrimSpace(code) == "" {
		return grid.CodePlaceholder
	}
	return code
}
