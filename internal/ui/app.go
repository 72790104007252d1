package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"pathways/internal/catalog"
	"pathways/internal/grid"
	"pathways/internal/index"
)

// Placeholder and error copy for the main panel.
const (
	PlaceholderTitle = "Select a pathway to view courses"
	PlaceholderHint  = "Choose from the sidebar to explore 4-year course structures"
	LoadErrorTitle   = "Unable to load courses"
	footerHint       = "Tab: switch panel  Enter: open  /: search  SPC: commands  q: quit"
)

// AppModel is the root model: the pathway sidebar next to the selected
// pathway's grid, with overlays for course cards and search.
type AppModel struct {
	Mode       AppMode
	Sidebar    *SidebarView
	Grid       *GridView // nil until a pathway projects cleanly
	Overlays   OverlayStack
	Focus      *FocusManager
	KeyHandler *KeyHandler

	Catalog    *catalog.Catalog
	Search     *index.SearchIndex
	Comparison *index.Comparison
	Loader     CatalogLoader
	Log        zerolog.Logger

	// SelectedID is the pathway whose grid is requested, even if projecting it failed.
	SelectedID string

	// Years limits the projected grid; zero means all years.
	Years grid.YearRange

	// InitialPathway is selected once the catalog loads.
	InitialPathway string

	LoadErr       error // catalog load failure
	GridErr       error // projection failure for SelectedID
	Status        string
	StatusIsError bool

	reloading bool
	width     int
	height    int
}

// AppOptions configures NewAppModel.
type AppOptions struct {
	Loader         CatalogLoader
	Log            zerolog.Logger
	InitialPathway string
}

var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model and its keybindings.
func NewAppModel(opts AppOptions) *AppModel {
	a := &AppModel{
		Mode:           ModeBrowse,
		Sidebar:        NewSidebarView(),
		Loader:         opts.Loader,
		Log:            opts.Log,
		InitialPathway: opts.InitialPathway,
	}
	a.Focus = NewFocusManager(a.layout().FocusOrder())
	a.Focus.OnChange = func(_, to string) {
		a.Sidebar.SetFocused(to == PanelSidebar)
		if a.Grid != nil {
			a.Grid.SetFocused(to == PanelGrid)
		}
	}
	a.KeyHandler = NewKeyHandler(DefaultKeybinds())
	return a
}

// DefaultKeybinds returns the browser's key bindings.
func DefaultKeybinds() *KeybindRegistry {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("tab", msgCmd(ToggleFocusMsg{}), "Switch panel")
	reg.BindWithDesc("shift+tab", msgCmd(ToggleFocusMsg{Back: true}), "Previous panel")
	reg.BindWithDesc("/", msgCmd(ShowSearchMsg{}), "Search")

	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC s", msgCmd(ShowSearchMsg{}), "Search")
	reg.BindWithDesc("SPC t", msgCmd(ToggleFocusMsg{}), "Switch panel")
	reg.BindWithDesc("SPC r", msgCmd(ReloadMsg{}), "Reload")
	reg.BindWithDesc("SPC p n", msgCmd(MovePathwayMsg{Delta: 1}), "Next pathway")
	reg.BindWithDesc("SPC p p", msgCmd(MovePathwayMsg{Delta: -1}), "Previous pathway")

	pathwayOnly := []AppMode{ModePathway}
	reg.BindWithDescForMode("SPC c", msgCmd(ShowSelectedCourseMsg{}), "Course details", pathwayOnly)
	reg.BindWithDescForMode("SPC y a", msgCmd(SetYearsMsg{}), "All years", pathwayOnly)
	for y := catalog.FirstYear; y <= catalog.LastYear; y++ {
		k := string(rune('0' + y))
		reg.BindWithDescForMode("SPC y "+k, msgCmd(SetYearsMsg{Years: grid.YearRange{First: y, Last: y}}), "Year "+k, pathwayOnly)
	}
	return reg
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(a.Sidebar.SetLoading(true), loadCatalogCmd(a.Loader, a.Log))
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil
	case CatalogLoadedMsg:
		return a.handleCatalogLoaded(msg)
	case SelectPathwayMsg:
		return a.handleSelectPathway(msg)
	case MovePathwayMsg:
		return a.handleMovePathway(msg)
	case ShowCourseMsg:
		return a.handleShowCourse(msg)
	case ShowSelectedCourseMsg:
		return a.handleShowSelectedCourse()
	case SelectCourseMsg:
		return a.handleSelectCourse(msg)
	case ShowSearchMsg:
		return a.handleShowSearch()
	case SetYearsMsg:
		return a.handleSetYears(msg)
	case ToggleFocusMsg:
		a.toggleFocus(msg.Back)
		return a, nil
	case ReloadMsg:
		a.reloading = true
		a.Status = "Reloading…"
		a.StatusIsError = false
		return a, tea.Batch(a.Sidebar.SetLoading(true), loadCatalogCmd(a.Loader, a.Log))
	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	// Ticks and blinks go to whoever animates.
	var cmds []tea.Cmd
	if cmd, ok := a.Overlays.UpdateTop(msg); ok {
		cmds = append(cmds, cmd)
	}
	_, cmd := a.Sidebar.Update(msg)
	cmds = append(cmds, cmd)
	return a, tea.Batch(cmds...)
}

func (a *appModelAdapter) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := msg.String()
	if top, ok := a.Overlays.Peek(); ok {
		if s == "ctrl+c" {
			return a, tea.Quit
		}
		if top.IsDismissKey(s) {
			a.Overlays.Pop()
			return a, nil
		}
		cmd, _ := a.Overlays.UpdateTop(msg)
		return a, cmd
	}

	if consumed, cmd := a.KeyHandler.HandleForMode(msg, a.Mode); consumed {
		return a, cmd
	}

	if a.Focus.Focused(PanelGrid) && a.Grid != nil {
		if s == "esc" {
			a.Focus.SetFocus(PanelSidebar)
			return a, nil
		}
		_, cmd := a.Grid.Update(msg)
		return a, cmd
	}

	if s == "enter" {
		if id, ok := a.Sidebar.SelectedID(); ok {
			return a, msgCmd(SelectPathwayMsg{ID: id})
		}
		return a, nil
	}
	_, cmd := a.Sidebar.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	var b strings.Builder
	b.WriteString(a.headerLine() + "\n\n")

	body := lipgloss.JoinHorizontal(lipgloss.Top, a.Sidebar.View(), " ", a.mainView())
	if top, ok := a.Overlays.Peek(); ok {
		body = a.place(top.View.View(), body)
	}
	b.WriteString(body + "\n")
	b.WriteString(a.footerLine())

	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		b.WriteString("\n" + RenderKeybindHelp(a.KeyHandler, a.Mode))
	}
	return b.String()
}

func (a *AppModel) headerLine() string {
	if name := a.selectedName(); name != "" {
		return Styles.Title.Render("Viewing " + name + " pathway")
	}
	return Styles.Title.Render("Pathways")
}

// selectedName is the display name of SelectedID, if it is loaded.
func (a *AppModel) selectedName() string {
	if a.SelectedID == "" || a.Catalog == nil {
		return ""
	}
	p, err := a.Catalog.Pathway(a.SelectedID)
	if err != nil {
		return ""
	}
	if p.Name == "" {
		return a.SelectedID
	}
	return p.Name
}

func (a *AppModel) mainView() string {
	switch {
	case a.LoadErr != nil:
		return errorPanel(a.LoadErr)
	case a.SelectedID == "":
		return placeholderPanel()
	case a.GridErr != nil:
		return errorPanel(a.GridErr)
	case a.Grid != nil:
		return a.Grid.View()
	default:
		return placeholderPanel()
	}
}

func placeholderPanel() string {
	content := Styles.Title.Render(PlaceholderTitle) + "\n" + Styles.Hint.Render(PlaceholderHint)
	return Styles.Panel.Padding(1, 2).Render(content)
}

func errorPanel(err error) string {
	content := Styles.TitleWarning.Render(LoadErrorTitle) + "\n" + Styles.Error.Render(err.Error())
	return Styles.BoxDanger.Render(content)
}

func (a *AppModel) footerLine() string {
	switch {
	case a.Status != "" && a.StatusIsError:
		return Styles.Error.Render(a.Status)
	case a.Status != "":
		return Styles.Status.Render(a.Status)
	default:
		return Styles.Hint.Render(footerHint)
	}
}

// place centers the overlay over the body when the terminal size is known.
func (a *AppModel) place(overlay, body string) string {
	if a.width == 0 || a.height == 0 {
		return body + "\n" + overlay
	}
	return lipgloss.Place(a.width, bodyHeight(a.height), lipgloss.Center, lipgloss.Center, overlay)
}

func (a *AppModel) layout() browseLayout {
	l := browseLayout{sidebar: a.Sidebar}
	if a.Grid != nil {
		l.grid = a.Grid
	}
	return l
}

func (a *AppModel) resize(width, height int) {
	a.width, a.height = width, height
	for _, p := range a.layout().Panels() {
		p.Resize(width, height)
	}
}

func (a *AppModel) toggleFocus(back bool) {
	if a.Grid == nil {
		a.Focus.SetFocus(PanelSidebar)
		return
	}
	if back {
		a.Focus.Prev()
		return
	}
	a.Focus.Next()
}
