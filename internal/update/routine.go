package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleRoutineKey(msg tea.KeyMsg) Model {
	if m.Routine.CaptureMode {
		switch msg.String() {
		case "esc":
			m.Routine.CaptureMode = false
			m.quickAddInput.Blur()
			m.Status = StatusBar{Text: "routine list mode", IsError: false}
			return m
		case "enter":
			m.addRoutineTask(m.quickAddInput.Value())
			m.quickAddInput.SetValue("")
			m.Routine.Input = ""
			m.Routine.CaptureMode = false
			m.quickAddInput.Blur()
			return m
		}
		var cmd tea.Cmd
		m.quickAddInput, cmd = m.quickAddInput.Update(msg)
		_ = cmd
		m.Routine.Input = m.quickAddInput.Value()
		return m
	}

	switch msg.String() {
	case "a":
		m.Routine.CaptureMode = true
		m.quickAddInput.Focus()
		m.Status = StatusBar{Text: "routine capture mode", IsError: false}
	case "up", "k":
		if m.Routine.Cursor > 0 {
			m.Routine.Cursor--
		}
		m.syncSelectedTaskToCursor()
	case "down", "j":
		if m.Routine.Cursor < len(m.Session.Tasks())-1 {
			m.Routine.Cursor++
		}
		m.syncSelectedTaskToCursor()
	case " ":
		if t, ok := m.currentRoutineTask(); ok {
			m.Session.ToggleTask(t.ID)
			if m.Session.IsFullyComplete() {
				m.Status = StatusBar{Text: "routine complete!", IsError: false}
			} else {
				m.Status = StatusBar{Text: fmt.Sprintf("toggled: %s", t.Title), IsError: false}
			}
		}
	case "d":
		if t, ok := m.currentRoutineTask(); ok {
			m.Session.DeleteTask(t.ID)
			m.SelectedTaskID = ""
			m.ensureRoutineState()
			m.Status = StatusBar{Text: fmt.Sprintf("deleted: %s", t.Title), IsError: false}
		}
	}
	return m
}

func (m *Model) addRoutineTask(title string) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return
	}
	sectionID := ""
	if t, ok := m.currentRoutineTask(); ok {
		sectionID = t.SectionID
	}
	m.Session.AddTask(trimmed, sectionID)
	m.Routine.Cursor = len(m.Session.Tasks()) - 1
	m.syncSelectedTaskToCursor()
	m.Status = StatusBar{Text: fmt.Sprintf("added: %s", trimmed), IsError: false}
}
