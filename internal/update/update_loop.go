package update

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"routined/internal/views"
)

func (m Model) Init() tea.Cmd {
	return m.dayTickCmd()
}

func (m Model) dayTickCmd() tea.Cmd {
	return tea.Tick(m.dayTickEvery, func(t time.Time) tea.Msg { return DayTickMsg{At: t} })
}

// Update dispatches the message and then refreshes the bubble components on
// the model actually being returned. Syncing any earlier copy would be lost:
// the value receiver means every branch hands back its own Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.dispatch(msg)
	if nm, ok := next.(Model); ok {
		nm.syncBubbleData()
		return nm, cmd
	}
	return next, cmd
}

func (m Model) dispatch(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		m.ensureRoutineState()

		if m.Palette.Active {
			if typed.String() == m.Keys.Help {
				m.HelpVisible = !m.HelpVisible
				return m, nil
			}
			return m.handlePaletteKey(typed)
		}

		// An unlock celebration swallows keys until acknowledged.
		if _, pending := m.Session.PendingNotification(); pending {
			switch typed.String() {
			case "enter", " ":
				m.Session.AcknowledgeNotification()
				return m, nil
			case "ctrl+c":
				return m.quit()
			default:
				return m, nil
			}
		}

		keyStr := typed.String()
		if m.CurrentView == ViewRoutine && m.Routine.CaptureMode && keyStr != "ctrl+c" {
			return m.handleRoutineKey(typed), nil
		}

		switch keyStr {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.Focus()
			m.commandInput.SetValue("")
			m.Status = StatusBar{Text: "command palette active", IsError: false}
			return m, nil
		case m.Keys.Overview:
			m.CurrentView = ViewOverview
			return m, nil
		case m.Keys.Routine:
			m.CurrentView = ViewRoutine
			return m, nil
		case m.Keys.Metrics:
			m.CurrentView = ViewMetrics
			return m, nil
		case m.Keys.Profile:
			m.CurrentView = ViewProfile
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			return m, nil
		case "S":
			return m.startSync()
		case "ctrl+c", m.Keys.Quit:
			return m.quit()
		}
		if m.CurrentView == ViewRoutine {
			return m.handleRoutineKey(typed), nil
		}
		if m.CurrentView == ViewProfile {
			return m.handleProfileKey(typed)
		}
	case spinner.TickMsg:
		if m.spinnerActive {
			var cmd tea.Cmd
			m.syncSpinner, cmd = m.syncSpinner.Update(typed)
			return m, cmd
		}
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	case DayTickMsg:
		m.Session.StartDay()
		m.Quote = quoteOfTheDay(m.Session)
		return m, m.dayTickCmd()
	case AcknowledgeUnlockMsg:
		m.Session.AcknowledgeNotification()
		return m, nil
	case SyncDoneMsg:
		return m.onSyncDone(typed)
	}

	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.Quitting = true
	if m.flusher != nil {
		m.flusher.Flush()
	}
	return m, tea.Quit
}

func (m Model) handleProfileKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "v":
		next := !m.Session.Settings().VoiceEnabled
		m.Session.SetVoiceEnabled(next)
		if next {
			m.Status = StatusBar{Text: "voice announcements on", IsError: false}
		} else {
			m.Status = StatusBar{Text: "voice announcements off", IsError: false}
		}
	}
	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	leftPane := ""
	rightPane := ""
	switch m.CurrentView {
	case ViewOverview:
		leftPane = m.renderOverviewPanel()
		rightPane = m.rulesViewport.View() + m.renderHelpIfVisible()
	case ViewRoutine:
		leftPane = m.renderRoutinePanel()
		rightPane = m.renderCommandPalette() + m.renderHelpIfVisible()
	case ViewMetrics:
		leftPane = m.renderMetricsPanel() + "\n\n" + m.renderMonthCalendar()
		rightPane = m.milestoneTable.View() + m.renderHelpIfVisible()
	case ViewProfile:
		leftPane = m.renderProfilePanel()
		rightPane = m.renderHelpIfVisible()
	}

	notification := ""
	if n, ok := m.Session.PendingNotification(); ok {
		notification = views.RenderCelebration(views.CelebrationData{
			Kind:    string(n.Kind),
			Title:   n.Title,
			Body:    n.Body,
			Pending: m.Session.PendingCount(),
		})
	}
	if m.spinnerActive {
		spin := m.syncSpinner.View()
		notification = strings.TrimSpace(strings.Join([]string{notification, "sync: " + spin + " running"}, "\n"))
	}

	return views.RenderApp(views.AppData{
		Header:       fmt.Sprintf("routined | view: %s | streak: %d | title: %s", m.CurrentView, m.Session.Streak(), m.Session.ActiveTitle()),
		LeftPane:     leftPane,
		RightPane:    rightPane,
		StatusLine:   status,
		Notification: notification,
		Footer:       fmt.Sprintf("keys: %s overview | %s routine | %s metrics | %s profile | / cmd | S sync | %s help | %s quit", m.Keys.Overview, m.Keys.Routine, m.Keys.Metrics, m.Keys.Profile, m.Keys.Help, m.Keys.Quit),
	})
}

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		CurrentView: string(m.CurrentView),
		Bindings: []string{
			"j/k move | space toggle | a add | d delete",
			"/ command palette | S sync | v voice (profile)",
		},
	})
}
