package update

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"routined/internal/commands"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
		return m, nil
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m, nil
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
		return m, nil
	}
}

func (m Model) executePaletteCommand() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	var followUp tea.Cmd
	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			m.CurrentView = ViewRoutine
			before := len(m.Session.Tasks())
			m.Session.AddTask(a.Title, a.SectionID)
			if len(m.Session.Tasks()) == before {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "task title is empty"}
			}
			return commands.Result{Message: fmt.Sprintf("added task: %s", a.Title)}, nil
		},
		Rename: func(r commands.RenameArgs) (commands.Result, error) {
			m.Session.RenameTask(r.TaskID, r.Title)
			return commands.Result{Message: fmt.Sprintf("renamed %s", r.TaskID)}, nil
		},
		Delete: func(d commands.DeleteArgs) (commands.Result, error) {
			m.Session.DeleteTask(d.TaskID)
			m.SelectedTaskID = ""
			return commands.Result{Message: fmt.Sprintf("deleted %s", d.TaskID)}, nil
		},
		Section: func(s commands.SectionArgs) (commands.Result, error) {
			id := m.Session.AddSection(s.Title, "")
			if id == "" {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "section title is empty"}
			}
			return commands.Result{Message: fmt.Sprintf("added section: %s", s.Title)}, nil
		},
		Signup: func(a commands.AuthArgs) (commands.Result, error) {
			if m.Sync == nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no sync server configured"}
			}
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := m.Sync.Signup(ctx, a.Email, a.Password); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("signed up as %s", a.Email)}, nil
		},
		Login: func(a commands.AuthArgs) (commands.Result, error) {
			if m.Sync == nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no sync server configured"}
			}
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := m.Sync.Login(ctx, a.Email, a.Password); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("logged in as %s", a.Email)}, nil
		},
		Sync: func() (commands.Result, error) {
			next, cmd := m.startSync()
			if nm, ok := next.(Model); ok {
				m = nm
			}
			followUp = cmd
			return commands.Result{Message: m.Status.Text}, nil
		},
		Reset: func() (commands.Result, error) {
			m.Session.ResetRoutine()
			return commands.Result{Message: "routine reset for a new day"}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
	} else if res.Message != "" {
		m.Status = StatusBar{Text: res.Message, IsError: false}
	}
	return m, followUp
}
