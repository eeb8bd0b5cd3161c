package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/loomhq/shuttle/internal/collection"
	"github.com/loomhq/shuttle/internal/loom"
)

type mutationOp int

const (
	opCreate mutationOp = iota
	opRename
	opDelete
)

// mutationResultMsg reports a gateway mutation outcome back to the UI loop.
type mutationResultMsg struct {
	op     mutationOp
	res    loom.Resource
	record loom.Record
	tempID string // optimistic placeholder id for creates
	id     string // target id for rename/delete
	err    error
}

// startCreate inserts an optimistic placeholder at the head of the window
// and sends the create to the gateway. The placeholder edge carries a local
// uuid until the gateway echoes the real record.
func (m *Model) startCreate(res loom.Resource, name string) tea.Cmd {
	tempID := "local-" + uuid.NewString()
	placeholder := loom.Record{ID: tempID, Name: name}
	m.views[res].ctrl.ApplyMutation(collection.Insert{
		Node:     placeholder,
		Position: collection.InsertHead,
	})

	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		created, err := client.CreateRecord(ctx, res, loom.RecordDraft{Name: name})
		return mutationResultMsg{op: opCreate, res: res, record: created, tempID: tempID, err: err}
	}
}

func (m *Model) startRename(res loom.Resource, target loom.Record, name string) tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		updated, err := client.RenameRecord(ctx, res, target.ID, name)
		return mutationResultMsg{op: opRename, res: res, record: updated, id: target.ID, err: err}
	}
}

func (m *Model) startDelete(res loom.Resource, target loom.Record) tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		err := client.DeleteRecord(ctx, res, target.ID)
		return mutationResultMsg{op: opDelete, res: res, id: target.ID, err: err}
	}
}

// applyMutationResult reconciles the gateway's answer into the window.
// Failures roll the optimistic edit back and surface a notice; the fetch
// state machine is never involved.
func (m *Model) applyMutationResult(msg mutationResultMsg) tea.Cmd {
	ctrl := m.views[msg.res].ctrl

	switch msg.op {
	case opCreate:
		if msg.err != nil {
			ctrl.ApplyMutation(collection.Remove{NodeID: msg.tempID})
			m.notice = "create failed: " + msg.err.Error()
			return nil
		}
		// Swap the placeholder for the gateway's echo, keeping head position.
		ctrl.ApplyMutation(collection.Remove{NodeID: msg.tempID})
		ctrl.ApplyMutation(collection.Insert{Node: msg.record, Position: collection.InsertHead})
		m.views[msg.res].selectedID = msg.record.ID

	case opRename:
		if msg.err != nil {
			m.notice = "rename failed: " + msg.err.Error()
			return nil
		}
		ctrl.ApplyMutation(collection.Update{NodeID: msg.id, Node: msg.record})

	case opDelete:
		if msg.err != nil {
			m.notice = "delete failed: " + msg.err.Error()
			return nil
		}
		ctrl.ApplyMutation(collection.Remove{NodeID: msg.id})
	}
	return nil
}
