package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"pathways/internal/grid"
)

// courseCardWidth is the wrap width of the course card body.
const courseCardWidth = 56

// CourseModal is the detail card for one course. Esc, q, or Enter closes it.
type CourseModal struct {
	PathwayName string
	Entry       grid.Entry
	// AlsoIn names the other pathways offering the course.
	AlsoIn []string
}

var _ View = (*CourseModal)(nil)

// NewCourseModal creates a course card.
func NewCourseModal(pathwayName string, e grid.Entry, alsoIn ...string) *CourseModal {
	return &CourseModal{PathwayName: pathwayName, Entry: e, AlsoIn: alsoIn}
}

// Init implements View.
func (m *CourseModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *CourseModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "esc", "q", "enter":
			return m, func() tea.Msg { return DismissModalMsg{} }
		}
	}
	return m, nil
}

// View implements View.
func (m *CourseModal) View() string {
	content := ""
	if m.PathwayName != "" {
		content = Styles.Hint.Render(m.PathwayName) + "\n"
	}
	content += RenderCourse(m.Entry, courseCardWidth)
	if also := RenderAlsoIn(m.AlsoIn, courseCardWidth); also != "" {
		content += "\n\n" + also
	}
	content += "\n\n" + Styles.Hint.Render("Esc: close")
	return Styles.Box.Render(content)
}
