package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; it mirrors Bubble Tea's Init/Update/View
// but returns itself from Update so containers keep concrete types.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// Sizer is implemented by views that lay themselves out to a panel size.
type Sizer interface {
	SetSize(width, height int)
}
