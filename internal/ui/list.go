package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/loomhq/shuttle/internal/collection"
	"github.com/loomhq/shuttle/internal/loom"
)

// sortPreset pairs a footer label with the server-side sort it requests.
type sortPreset struct {
	label string
	sort  collection.Sort
}

var sortPresets = []sortPreset{
	{"updated", collection.Sort{Field: "updatedAt", Desc: true}},
	{"name", collection.Sort{Field: "name", Desc: false}},
	{"created", collection.Sort{Field: "createdAt", Desc: true}},
}

// layout resizes the per-view viewports to the current terminal size. Three
// fixed lines surround the list: tabs, column header, footer.
func (m *Model) layout() {
	if !m.ready {
		return
	}
	height := m.height - 3
	if height < 1 {
		height = 1
	}
	for _, v := range m.views {
		v.viewport.Width = m.width
		v.viewport.Height = height
	}
}

// refreshContent rebuilds the active viewport from the controller's current
// window, preserving the selection by record id when possible.
func (m *Model) refreshContent() {
	v := m.activeView()
	st := v.ctrl.State()

	m.reconcileSelection(v, st)
	v.viewport.SetContent(m.renderRows(v, st))
	m.ensureSelectionVisible(v, len(st.Edges))
}

// reconcileSelection re-finds the selected record after the window changed.
// Falls back to clamping the row index when the record is gone.
func (m *Model) reconcileSelection(v *resourceView, st collection.State) {
	if len(st.Edges) == 0 {
		v.selectedRow = 0
		v.selectedID = ""
		return
	}
	if v.selectedID != "" {
		for i, e := range st.Edges {
			if e.Node.NodeID() == v.selectedID {
				v.selectedRow = i
				return
			}
		}
	}
	if v.selectedRow >= len(st.Edges) {
		v.selectedRow = len(st.Edges) - 1
	}
	if v.selectedRow < 0 {
		v.selectedRow = 0
	}
	v.selectedID = st.Edges[v.selectedRow].Node.NodeID()
}

func (m *Model) renderRows(v *resourceView, st collection.State) string {
	styles := m.theme.Styles()

	if len(st.Edges) == 0 {
		switch st.Status {
		case collection.StatusLoading:
			return styles.MutedText.Render(fmt.Sprintf("  %s loading %s...", m.spin.View(), v.res.Title()))
		case collection.StatusError:
			return styles.MutedText.Render("  nothing loaded")
		default:
			return styles.MutedText.Render("  no records")
		}
	}

	var b strings.Builder
	for i, e := range st.Edges {
		rec, ok := e.Node.(loom.Record)
		if !ok {
			continue
		}
		line := m.renderRow(v.res, rec)
		if i == v.selectedRow {
			line = styles.Selected.Width(m.width).Render(line)
		} else {
			line = styles.Text.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if st.Status == collection.StatusLoadingMore {
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("  %s loading more...", m.spin.View())))
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// renderRow formats one record line: name, a resource-specific detail
// column, and the age of the last update.
func (m *Model) renderRow(res loom.Resource, rec loom.Record) string {
	nameWidth := m.width - 30
	if nameWidth < 12 {
		nameWidth = 12
	}
	name := truncate(rec.Name, nameWidth)
	detail := truncate(recordDetail(res, rec), 16)
	age := formatAge(rec.ParsedUpdatedAt(), time.Now())
	return fmt.Sprintf(" %-*s %-16s %6s", nameWidth, name, detail, age)
}

// recordDetail picks the middle column per resource.
func recordDetail(res loom.Resource, rec loom.Record) string {
	switch res {
	case loom.ResourcePrompts:
		if rec.Version > 0 {
			return fmt.Sprintf("v%d", rec.Version)
		}
		return "draft"
	case loom.ResourceDatasets:
		return fmt.Sprintf("%d items", rec.ItemCount)
	case loom.ResourceEvaluators:
		return rec.Model
	case loom.ResourceAPIKeys:
		return rec.Scopes
	default:
		return ""
	}
}

// columnHeader renders the fixed header line above the list.
func (m Model) columnHeader() string {
	styles := m.theme.Styles()
	nameWidth := m.width - 30
	if nameWidth < 12 {
		nameWidth = 12
	}
	detail := "DETAIL"
	switch m.order[m.active] {
	case loom.ResourcePrompts:
		detail = "VERSION"
	case loom.ResourceDatasets:
		detail = "ITEMS"
	case loom.ResourceEvaluators:
		detail = "MODEL"
	case loom.ResourceAPIKeys:
		detail = "SCOPES"
	}
	return styles.FaintText.Render(fmt.Sprintf(" %-*s %-16s %6s", nameWidth, "NAME", detail, "AGE"))
}

// moveSelection shifts the selected row by delta, clamped to the window.
func (m *Model) moveSelection(delta int) {
	v := m.activeView()
	st := v.ctrl.State()
	m.moveSelectionToWithState(v, st, v.selectedRow+delta)
}

// moveSelectionTo jumps the selection to an absolute row.
func (m *Model) moveSelectionTo(row int) {
	v := m.activeView()
	st := v.ctrl.State()
	m.moveSelectionToWithState(v, st, row)
}

func (m *Model) moveSelectionToWithState(v *resourceView, st collection.State, row int) {
	n := len(st.Edges)
	if n == 0 {
		return
	}
	if row < 0 {
		row = 0
	}
	if row >= n {
		row = n - 1
	}
	v.selectedRow = row
	v.selectedID = st.Edges[row].Node.NodeID()

	v.viewport.SetContent(m.renderRows(v, st))
	m.ensureSelectionVisible(v, n)
	m.observeScroll()
}

// ensureSelectionVisible scrolls the viewport just enough to keep the
// selected row on screen.
func (m *Model) ensureSelectionVisible(v *resourceView, total int) {
	if total == 0 {
		return
	}
	if v.selectedRow < v.viewport.YOffset {
		v.viewport.SetYOffset(v.selectedRow)
	}
	if v.selectedRow >= v.viewport.YOffset+v.viewport.Height {
		v.viewport.SetYOffset(v.selectedRow - v.viewport.Height + 1)
	}
}

// observeScroll feeds the current scroll geometry to the sentinel, which
// requests the next page when the bottom edge is near. The controller's
// idle guard makes this safe to call on every movement.
func (m *Model) observeScroll() {
	v := m.activeView()
	v.sentinel.Observe(collection.Viewport{
		ScrollHeight: v.viewport.TotalLineCount(),
		ScrollTop:    v.viewport.YOffset,
		ClientHeight: v.viewport.Height,
	})
}

// selectedRecord returns the record under the cursor, if any.
func (m *Model) selectedRecord() (loom.Record, bool) {
	v := m.activeView()
	st := v.ctrl.State()
	if v.selectedRow < 0 || v.selectedRow >= len(st.Edges) {
		return loom.Record{}, false
	}
	rec, ok := st.Edges[v.selectedRow].Node.(loom.Record)
	return rec, ok
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}

// formatAge renders the gap between t and now compactly: 42s, 7m, 3h, 12d.
func formatAge(t, now time.Time) string {
	if t.IsZero() {
		return "-"
	}
	d := now.Sub(t)
	if d < 0 {
		d = 0
	}
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}
