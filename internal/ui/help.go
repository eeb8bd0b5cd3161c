package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpItem struct {
	keys string
	desc string
}

type helpSection struct {
	title string
	items []helpItem
}

// renderHelp renders the help overlay in place of the list body.
func (m Model) renderHelp(styles Styles) string {
	sections := []helpSection{
		{
			title: "Views",
			items: []helpItem{
				{"tab / shift+tab", "Cycle views"},
				{"1-4", "Prompts/Datasets/Evaluators/API keys"},
			},
		},
		{
			title: "Collection",
			items: []helpItem{
				{"/", "Filter (typed text narrows live)"},
				{"esc", "Clear filter"},
				{"s", "Cycle sort"},
				{"R", "Refresh"},
				{"n", "New record"},
				{"r", "Rename selected"},
				{"d", "Delete selected"},
			},
		},
		{
			title: "Navigation",
			items: []helpItem{
				{"j/k", "Move up/down"},
				{"g/G", "Go to top/bottom"},
				{"ctrl+d/u", "Half page down/up"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"T", "Cycle theme"},
				{"?", "Toggle help"},
				{"q/ctrl+c", "Quit"},
			},
		},
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, section := range sections {
		b.WriteString("\n")
		b.WriteString(styles.AccentText.Render(section.title))
		b.WriteString("\n")
		for _, item := range section.items {
			b.WriteString(fmt.Sprintf("  %s  %s\n",
				styles.WarningText.Render(fmt.Sprintf("%-16s", item.keys)),
				styles.MutedText.Render(item.desc)))
		}
	}

	box := styles.Modal.Render(b.String())
	height := m.height - 3
	if height < 1 {
		height = 1
	}
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, box)
}
