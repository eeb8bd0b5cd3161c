package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/loomhq/shuttle/internal/loom"
)

type modalKind int

const (
	modalCreate modalKind = iota
	modalRename
	modalDelete
)

// modalState holds the current modal dialog, if any.
type modalState struct {
	kind   modalKind
	res    loom.Resource
	target loom.Record // rename/delete target
	input  textinput.Model
}

func (m *Model) openCreateModal() {
	input := textinput.New()
	input.Placeholder = "name"
	input.CharLimit = 80
	input.Focus()
	m.modal = &modalState{
		kind:  modalCreate,
		res:   m.order[m.active],
		input: input,
	}
}

func (m *Model) openRenameModal() {
	rec, ok := m.selectedRecord()
	if !ok {
		return
	}
	input := textinput.New()
	input.CharLimit = 80
	input.SetValue(rec.Name)
	input.CursorEnd()
	input.Focus()
	m.modal = &modalState{
		kind:   modalRename,
		res:    m.order[m.active],
		target: rec,
		input:  input,
	}
}

func (m *Model) openDeleteModal() {
	rec, ok := m.selectedRecord()
	if !ok {
		return
	}
	m.modal = &modalState{
		kind:   modalDelete,
		res:    m.order[m.active],
		target: rec,
	}
}

func (m *Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	modal := m.modal

	switch {
	case msg.Type == tea.KeyEsc:
		m.modal = nil
		return *m, nil

	case key.Matches(msg, m.keys.Confirm):
		m.modal = nil
		switch modal.kind {
		case modalCreate:
			name := strings.TrimSpace(modal.input.Value())
			if name == "" {
				return *m, nil
			}
			return *m, m.startCreate(modal.res, name)
		case modalRename:
			name := strings.TrimSpace(modal.input.Value())
			if name == "" || name == modal.target.Name {
				return *m, nil
			}
			return *m, m.startRename(modal.res, modal.target, name)
		case modalDelete:
			return *m, m.startDelete(modal.res, modal.target)
		}
		return *m, nil
	}

	if modal.kind == modalDelete {
		// Delete confirm has no input; any other key is ignored.
		return *m, nil
	}

	var cmd tea.Cmd
	modal.input, cmd = modal.input.Update(msg)
	return *m, cmd
}

// renderModalOver draws the modal centered over the list body.
func (m Model) renderModalOver(body string, styles Styles) string {
	modal := m.modal

	var content string
	switch modal.kind {
	case modalCreate:
		content = fmt.Sprintf("New %s\n\n%s\n\nenter to create, esc to cancel",
			strings.ToLower(modal.res.Title()), modal.input.View())
	case modalRename:
		content = fmt.Sprintf("Rename %q\n\n%s\n\nenter to rename, esc to cancel",
			modal.target.Name, modal.input.View())
	case modalDelete:
		content = fmt.Sprintf("Delete %q?\n\nenter to delete, esc to cancel",
			modal.target.Name)
	}

	box := styles.Modal.Render(content)
	height := m.height - 3
	if height < 1 {
		height = 1
	}
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, box)
}
