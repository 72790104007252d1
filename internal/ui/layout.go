package ui

// Layout arranges panels and defines focus order.
type Layout interface {
	Panels() []Panel
	FocusOrder() []string // Tab order for focus
}

// Browse layout geometry.
const (
	sidebarWidth = 34
	minGridWidth = 40
	headerLines  = 2 // title line plus blank line
	footerLines  = 1 // status/hint line
)

// browseLayout puts the sidebar on the left and the grid on the right.
type browseLayout struct {
	sidebar View
	grid    View
}

var _ Layout = browseLayout{}

func (l browseLayout) Panels() []Panel {
	panels := []Panel{{ID: PanelSidebar, View: l.sidebar, Bounds: sidebarBounds}}
	if l.grid != nil {
		panels = append(panels, Panel{ID: PanelGrid, View: l.grid, Bounds: gridBounds})
	}
	return panels
}

func (l browseLayout) FocusOrder() []string {
	return []string{PanelSidebar, PanelGrid}
}

func bodyHeight(height int) int {
	return max(height-headerLines-footerLines, 1)
}

func sidebarBounds(width, height int) (x, y, w, h int) {
	return 0, headerLines, min(sidebarWidth, width), bodyHeight(height)
}

func gridBounds(width, height int) (x, y, w, h int) {
	return sidebarWidth + 1, headerLines, max(width-sidebarWidth-1, minGridWidth), bodyHeight(height)
}
