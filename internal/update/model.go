package update

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"routined/internal/model"
	"routined/internal/session"
	"routined/internal/syncclient"
	"routined/internal/views"
)

type View string

const (
	ViewOverview View = "Overview"
	ViewRoutine  View = "Routine"
	ViewMetrics  View = "Metrics"
	ViewProfile  View = "Profile"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Overview string
	Routine  string
	Metrics  string
	Profile  string
	Help     string
	Quit     string
}

type RoutineState struct {
	CaptureMode bool
	Input       string
	Cursor      int
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

// Flusher is what the quit path needs from the autosave layer: one last
// synchronous write before the program exits.
type Flusher interface {
	Flush()
}

type Model struct {
	CurrentView    View
	Session        *session.Session
	SelectedTaskID string
	Routine        RoutineState
	Palette        CommandPaletteState
	HelpVisible    bool
	Status         StatusBar
	Keys           GlobalKeyMap
	Quitting       bool
	LastError      error
	Quote          string
	Sync           *syncclient.Client
	// Bubble components used for rich TUI controls
	routineList    list.Model
	milestoneTable table.Model
	quickAddInput  textinput.Model
	commandInput   textinput.Model
	dayProgress    progress.Model
	syncSpinner    spinner.Model
	helpModel      help.Model
	rulesViewport  viewport.Model
	spinnerActive  bool
	flusher        Flusher
	dayTickEvery   time.Duration
}

type listItem struct {
	title       string
	description string
}

func (i listItem) FilterValue() string { return i.title + " " + i.description }
func (i listItem) Title() string       { return i.title }
func (i listItem) Description() string { return i.description }

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type DayTickMsg struct {
	At time.Time
}

type SyncDoneMsg struct {
	Err     error
	Adopted *model.Snapshot
}

type AcknowledgeUnlockMsg struct{}

func NewModel(sess *session.Session) Model {
	if sess == nil {
		sess = session.NewDefault(nil)
	}
	m := Model{
		CurrentView: ViewOverview,
		Session:     sess,
		Quote:       quoteOfTheDay(sess),
		Keys: GlobalKeyMap{
			Overview: "1",
			Routine:  "2",
			Metrics:  "3",
			Profile:  "4",
			Help:     "?",
			Quit:     "q",
		},
		dayTickEvery: time.Minute,
	}
	m.initBubbleComponents()
	m.syncBubbleData()
	return m
}

func NewModelWithConfig(sess *session.Session, cfg RuntimeConfig, flusher Flusher) Model {
	m := NewModel(sess)
	m.flusher = flusher
	if cfg.ServerURL != "" {
		m.Sync = syncclient.New(cfg.ServerURL)
	}
	if cfg.DayCheckMinutes > 0 {
		m.dayTickEvery = time.Duration(cfg.DayCheckMinutes) * time.Minute
	}
	return m
}

func (m *Model) initBubbleComponents() {
	m.routineList = list.New([]list.Item{}, list.NewDefaultDelegate(), 56, 14)
	m.routineList.Title = "Routine (list)"
	m.routineList.SetShowHelp(false)
	m.routineList.SetFilteringEnabled(false)

	cols := []table.Column{
		{Title: "Milestone", Width: 26},
		{Title: "Unlocked", Width: 10},
	}
	m.milestoneTable = table.New(table.WithColumns(cols), table.WithRows([]table.Row{}), table.WithFocused(true), table.WithHeight(8))

	m.quickAddInput = textinput.New()
	m.quickAddInput.Prompt = "add> "
	m.quickAddInput.CharLimit = 256
	m.quickAddInput.Width = 42

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.dayProgress = progress.New(progress.WithDefaultGradient())

	m.syncSpinner = spinner.New()
	m.syncSpinner.Spinner = spinner.Dot

	m.helpModel = help.New()

	m.rulesViewport = viewport.New(54, 10)
	m.rulesViewport.SetContent(views.RenderMarkdown(streakRulesMarkdown))
}

const streakRulesMarkdown = `# Streak rules

- Completing **every** task in the routine grants one streak day.
- The grant happens once per calendar day, on the first full completion.
- Missing a whole day resets the streak to zero; the best streak is kept.
- Reaching a reward threshold unlocks its title and pays out diamonds.
`

func (m *Model) syncBubbleData() {
	tasks := m.Session.Tasks()
	items := make([]list.Item, 0, len(tasks))
	for _, t := range tasks {
		desc := t.SectionID
		if t.ScheduledTime != "" {
			desc += " @" + t.ScheduledTime
		}
		if t.Completed {
			desc += " (done)"
		}
		items = append(items, listItem{title: t.Title, description: desc})
	}
	m.routineList.SetItems(items)
	if len(items) > 0 {
		m.routineList.Select(m.Routine.Cursor)
	}

	unlocked := make(map[string]bool)
	for _, title := range m.Session.UnlockedTitles() {
		unlocked[title] = true
	}
	rows := make([]table.Row, 0)
	for _, entry := range m.Session.RewardCatalog() {
		rows = append(rows, table.Row{entry.Title, yesNo(unlocked[entry.Title])})
	}
	m.milestoneTable.SetRows(rows)

	m.quickAddInput.SetValue(m.Routine.Input)
	m.commandInput.SetValue(m.Palette.Input)
	if m.Routine.CaptureMode {
		m.quickAddInput.Focus()
	}
	if m.Palette.Active {
		m.commandInput.Focus()
	}
}

// progressView renders the day's completion bar at its current percentage.
// ViewAs takes the value directly, so there is no animation command to lose.
func (m Model) progressView() string {
	return m.dayProgress.ViewAs(float64(m.Session.Progress()) / 100)
}

func (m *Model) ensureRoutineState() {
	tasks := m.Session.Tasks()
	if m.Routine.Cursor < 0 {
		m.Routine.Cursor = 0
	}
	if m.Routine.Cursor >= len(tasks) && len(tasks) > 0 {
		m.Routine.Cursor = len(tasks) - 1
	}
	if len(tasks) > 0 && m.SelectedTaskID == "" {
		m.syncSelectedTaskToCursor()
	}
}

func (m *Model) syncSelectedTaskToCursor() {
	if t, ok := m.currentRoutineTask(); ok {
		m.SelectedTaskID = t.ID
	}
}

func (m Model) currentRoutineTask() (model.Task, bool) {
	tasks := m.Session.Tasks()
	if len(tasks) == 0 || m.Routine.Cursor < 0 || m.Routine.Cursor >= len(tasks) {
		return model.Task{}, false
	}
	return tasks[m.Routine.Cursor], true
}

func quoteOfTheDay(sess *session.Session) string {
	if len(session.Quotes) == 0 {
		return ""
	}
	day := sess.Profile().TotalUsageDays
	if day < 0 {
		day = 0
	}
	return session.Quotes[day%len(session.Quotes)]
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func isKnownView(v View) bool {
	switch v {
	case ViewOverview, ViewRoutine, ViewMetrics, ViewProfile:
		return true
	default:
		return false
	}
}
