package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pathways/internal/catalog"
)

// PathwaySummary is one sidebar entry.
type PathwaySummary struct {
	ID      string
	Name    string
	Courses int
}

// SummariesFor lists the catalog's pathways in sidebar order.
func SummariesFor(c *catalog.Catalog) []PathwaySummary {
	if c == nil {
		return nil
	}
	entries := c.Entries()
	out := make([]PathwaySummary, len(entries))
	for i, e := range entries {
		out[i] = PathwaySummary{ID: e.ID, Name: e.Pathway.Name, Courses: e.Pathway.CourseCount()}
	}
	return out
}

// pathwayItem implements list.Item for PathwaySummary.
type pathwayItem struct {
	PathwaySummary
}

func (p pathwayItem) FilterValue() string { return p.Name }
func (p pathwayItem) Title() string {
	if p.Name == "" {
		return p.ID
	}
	return p.Name
}
func (p pathwayItem) Description() string {
	return fmt.Sprintf("%d courses", p.Courses)
}

// SidebarView lists the loaded pathways. Enter is handled by the app.
type SidebarView struct {
	list     list.Model
	Pathways []PathwaySummary
	spinner  spinner.Model
	loading  bool
	focused  bool
	width    int
	height   int
}

var _ View = (*SidebarView)(nil)

// NewSidebarView creates an empty sidebar; pathways arrive with CatalogLoadedMsg.
func NewSidebarView() *SidebarView {
	l := list.New(nil, NewCompactListDelegate(true), 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = Styles.Title

	return &SidebarView{list: l, spinner: s, focused: true}
}

// Selected returns the index of the highlighted pathway.
func (s *SidebarView) Selected() int {
	return s.list.Index()
}

// SelectedID returns the id of the highlighted pathway.
func (s *SidebarView) SelectedID() (string, bool) {
	i := s.list.Index()
	if i < 0 || i >= len(s.Pathways) {
		return "", false
	}
	return s.Pathways[i].ID, true
}

// SetPathways replaces the list, keeping the highlighted id when it survives.
func (s *SidebarView) SetPathways(ps []PathwaySummary) {
	prev, _ := s.SelectedID()
	s.Pathways = ps
	items := make([]list.Item, len(ps))
	for i, p := range ps {
		items[i] = pathwayItem{PathwaySummary: p}
	}
	s.list.SetItems(items)
	if !s.Select(prev) {
		s.list.Select(0)
	}
}

// Select highlights the pathway with id. Returns false if it is not listed.
func (s *SidebarView) Select(id string) bool {
	for i, p := range s.Pathways {
		if p.ID == id {
			s.list.Select(i)
			return true
		}
	}
	return false
}

// Move shifts the highlight by delta, wrapping around, and returns the new id.
func (s *SidebarView) Move(delta int) (string, bool) {
	n := len(s.Pathways)
	if n == 0 {
		return "", false
	}
	s.list.Select(((s.list.Index()+delta)%n + n) % n)
	return s.SelectedID()
}

// SetLoading toggles the spinner and returns the command that drives it.
func (s *SidebarView) SetLoading(loading bool) tea.Cmd {
	s.loading = loading
	if loading {
		return s.spinner.Tick
	}
	return nil
}

// Loading reports whether the catalog is still loading.
func (s *SidebarView) Loading() bool {
	return s.loading
}

// SetFocused changes the border style.
func (s *SidebarView) SetFocused(focused bool) {
	s.focused = focused
}

// SetSize implements Sizer.
func (s *SidebarView) SetSize(width, height int) {
	s.width, s.height = width, height
	// border (2) and title line plus blank (2)
	s.list.SetSize(max(width-2, 10), max(height-4, 3))
}

// Init implements View.
func (s *SidebarView) Init() tea.Cmd {
	if s.loading {
		return s.spinner.Tick
	}
	return nil
}

// Update implements View.
func (s *SidebarView) Update(msg tea.Msg) (View, tea.Cmd) {
	if tick, ok := msg.(spinner.TickMsg); ok {
		if !s.loading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(tick)
		return s, cmd
	}
	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

// View implements View.
func (s *SidebarView) View() string {
	if s.list.Width() == 0 {
		s.SetSize(sidebarWidth, 20)
	}

	var b strings.Builder
	title := fmt.Sprintf("Pathways (%d)", len(s.Pathways))
	if s.loading {
		title += " " + s.spinner.View()
	}
	b.WriteString(Styles.Title.Render(title) + "\n\n")
	if len(s.Pathways) == 0 && !s.loading {
		b.WriteString(Styles.Empty.Render("No pathways found"))
	} else {
		b.WriteString(s.list.View())
	}

	style := Styles.Panel
	if s.focused {
		style = Styles.PanelFocus
	}
	return style.Width(max(s.width-2, 0)).Render(lipgloss.NewStyle().MaxHeight(max(s.height-2, 1)).Render(b.String()))
}
