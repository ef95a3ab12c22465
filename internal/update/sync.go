package update

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"routined/internal/syncclient"
)

// startSync pushes the local snapshot in the background. A conflict is not
// an error: the server copy comes back in the message and gets adopted.
func (m Model) startSync() (tea.Model, tea.Cmd) {
	if m.Sync == nil {
		m.Status = StatusBar{Text: "no sync server configured", IsError: true}
		return m, nil
	}
	if !m.Sync.Authenticated() {
		m.Status = StatusBar{Text: "log in first: /login <email> <password>", IsError: true}
		return m, nil
	}
	if m.spinnerActive {
		return m, nil
	}
	m.spinnerActive = true
	m.Status = StatusBar{Text: "sync started", IsError: false}

	client := m.Sync
	snap := m.Session.Snapshot()
	push := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		err := client.Push(ctx, snap)
		var conflict *syncclient.Conflict
		if errors.As(err, &conflict) {
			server := conflict.Server
			return SyncDoneMsg{Adopted: &server}
		}
		return SyncDoneMsg{Err: err}
	}
	return m, tea.Batch(m.syncSpinner.Tick, push)
}

func (m Model) onSyncDone(msg SyncDoneMsg) (tea.Model, tea.Cmd) {
	m.spinnerActive = false
	if msg.Err != nil {
		m.LastError = msg.Err
		m.Status = StatusBar{Text: msg.Err.Error(), IsError: true}
		return m, nil
	}
	if msg.Adopted != nil {
		if err := m.Session.Adopt(*msg.Adopted); err != nil {
			m.LastError = err
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m, nil
		}
		m.SelectedTaskID = ""
		m.ensureRoutineState()
		m.Status = StatusBar{Text: "sync complete: adopted newer server copy", IsError: false}
		return m, nil
	}
	m.Status = StatusBar{Text: "sync complete", IsError: false}
	return m, nil
}
