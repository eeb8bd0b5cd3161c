package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/loomhq/shuttle/internal/collection"
)

// renderHeader renders the tab bar.
func (m Model) renderHeader(styles Styles) string {
	var tabs []string
	for i, res := range m.order {
		label := fmt.Sprintf("%d %s", i+1, res.Title())
		if i == m.active {
			tabs = append(tabs, styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, styles.TabInactive.Render(label))
		}
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	title := styles.AccentText.Render(" shuttle ")
	gap := m.width - lipgloss.Width(bar) - lipgloss.Width(title)
	if gap < 0 {
		gap = 0
	}
	return bar + strings.Repeat(" ", gap) + title
}

// renderFooter renders the status line: window size, fetch state, filter,
// sort, and any transient notice.
func (m Model) renderFooter(styles Styles) string {
	v := m.activeView()
	st := v.ctrl.State()

	var parts []string
	parts = append(parts, fmt.Sprintf("%d loaded", len(st.Edges)))

	switch st.Status {
	case collection.StatusLoading:
		parts = append(parts, m.spin.View()+" loading")
	case collection.StatusLoadingMore:
		parts = append(parts, m.spin.View()+" more")
	case collection.StatusIdle:
		if st.PageInfo.HasNextPage {
			parts = append(parts, "more available")
		}
	}

	parts = append(parts, "sort:"+sortPresets[v.sortIdx].label)

	if m.filterActive {
		parts = append(parts, m.filterInput.View())
	} else if v.query != "" {
		parts = append(parts, "filter:"+v.query)
	}

	left := strings.Join(parts, "  ")

	right := "? help"
	if st.Status == collection.StatusError && st.Err != nil {
		right = styles.DangerText.Render(truncate("gateway: "+st.Err.Error(), m.width/2))
	} else if m.notice != "" {
		right = styles.WarningText.Render(truncate(m.notice, m.width/2))
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return styles.Footer.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}
