package views

import (
	"fmt"
	"strings"
)

type OverviewPanelData struct {
	Greeting       string
	ProgressPct    int
	ProgressView   string
	CompletedCount int
	TotalCount     int
	Streak         int
	BestStreak     int
	ActiveTitle    string
	Quote          string
	FullyComplete  bool
}

type RoutineTaskData struct {
	ID            string
	Title         string
	ScheduledTime string
	Icon          string
	Completed     bool
}

type RoutineSectionData struct {
	Title    string
	Icon     string
	Progress int
	Tasks    []RoutineTaskData
}

type RoutinePanelData struct {
	QuickAddView string
	ListView     string
	Sections     []RoutineSectionData
	SelectedID   string
	CaptureMode  bool
}

type StreakBadgeData struct {
	Days   int
	Earned bool
}

type MetricsPanelData struct {
	Streak            int
	BestStreak        int
	TotalUsageDays    int
	LastLoginDate     string
	TasksAddedToday   int
	FocusMinutesToday int
	ProgressPct       int
	Badges            []StreakBadgeData
}

type MonthDayData struct {
	Day   int
	Today bool
	Login bool
}

type MonthCalendarData struct {
	Year          int
	Month         string
	LeadingBlanks int
	Days          []MonthDayData
}

type RewardData struct {
	Title           string
	Icon            string
	StreakThreshold int
	Unlocked        bool
}

type ProfilePanelData struct {
	ActiveTitle  string
	Diamonds     int
	Rewards      []RewardData
	VoiceEnabled bool
	LoggedIn     bool
}

type CelebrationData struct {
	Kind    string
	Title   string
	Body    string
	Pending int
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
}

func RenderOverviewPanel(data OverviewPanelData) string {
	var b strings.Builder
	b.WriteString("overview:\n")
	if data.Greeting != "" {
		b.WriteString(data.Greeting + "!\n")
	}
	b.WriteString(fmt.Sprintf("progress: %s %d%% (%d/%d)\n", data.ProgressView, data.ProgressPct, data.CompletedCount, data.TotalCount))
	b.WriteString(fmt.Sprintf("streak: %d day(s) | best: %d\n", data.Streak, data.BestStreak))
	b.WriteString(fmt.Sprintf("title: %s\n", data.ActiveTitle))
	if data.FullyComplete {
		b.WriteString("all tasks done for today!\n")
	}
	if data.Quote != "" {
		b.WriteString(fmt.Sprintf("\n%q", data.Quote))
	}
	return strings.TrimSpace(b.String())
}

func RenderRoutinePanel(data RoutinePanelData) string {
	var b strings.Builder
	b.WriteString("routine:\n")
	if data.CaptureMode {
		b.WriteString(data.QuickAddView + "\n")
	}
	b.WriteString("actions: [j/k]move [space]toggle [a]add [d]delete\n")
	for _, sec := range data.Sections {
		label := sec.Title
		if sec.Icon != "" {
			label = sec.Icon + " " + label
		}
		b.WriteString(fmt.Sprintf("\n%s (%d%%):\n", label, sec.Progress))
		if len(sec.Tasks) == 0 {
			b.WriteString("  (none)\n")
			continue
		}
		for _, t := range sec.Tasks {
			cursor := " "
			if data.SelectedID == t.ID {
				cursor = ">"
			}
			box := "[ ]"
			if t.Completed {
				box = "[x]"
			}
			b.WriteString(fmt.Sprintf("%s %s %s", cursor, box, t.Title))
			if t.ScheduledTime != "" {
				b.WriteString(fmt.Sprintf(" @%s", t.ScheduledTime))
			}
			b.WriteString("\n")
		}
	}
	return strings.TrimSpace(b.String())
}

func RenderMetricsPanel(data MetricsPanelData) string {
	var b strings.Builder
	b.WriteString("metrics:\n")
	b.WriteString(fmt.Sprintf("current streak: %d\n", data.Streak))
	b.WriteString(fmt.Sprintf("best streak: %d\n", data.BestStreak))
	b.WriteString(fmt.Sprintf("total usage days: %d\n", data.TotalUsageDays))
	b.WriteString(fmt.Sprintf("last login: %s\n", data.LastLoginDate))
	b.WriteString(fmt.Sprintf("tasks added today: %d\n", data.TasksAddedToday))
	b.WriteString(fmt.Sprintf("focus minutes today: %d\n", data.FocusMinutesToday))
	b.WriteString(fmt.Sprintf("today's completion: %d%%\n", data.ProgressPct))
	if len(data.Badges) > 0 {
		b.WriteString("badges:")
		for _, badge := range data.Badges {
			hex := "⬡"
			if badge.Earned {
				hex = "⬢"
			}
			b.WriteString(fmt.Sprintf("  %s %dd", hex, badge.Days))
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

// RenderMonthCalendar lays the month out Sunday-first, seven cells per row.
// Today is bracketed, the last login day starred.
func RenderMonthCalendar(data MonthCalendarData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %d:\n", data.Month, data.Year))
	b.WriteString(" Su  Mo  Tu  We  Th  Fr  Sa\n")
	col := 0
	for ; col < data.LeadingBlanks; col++ {
		b.WriteString("    ")
	}
	for _, d := range data.Days {
		cell := fmt.Sprintf(" %2d ", d.Day)
		if d.Today {
			cell = fmt.Sprintf("[%2d]", d.Day)
		} else if d.Login {
			cell = fmt.Sprintf("*%2d ", d.Day)
		}
		b.WriteString(cell)
		col++
		if col%7 == 0 {
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), " \n")
}

func RenderProfilePanel(data ProfilePanelData) string {
	var b strings.Builder
	b.WriteString("profile:\n")
	b.WriteString(fmt.Sprintf("active title: %s\n", data.ActiveTitle))
	b.WriteString(fmt.Sprintf("diamonds: %d\n", data.Diamonds))
	b.WriteString("rewards:\n")
	for _, r := range data.Rewards {
		mark := " "
		if r.Unlocked {
			mark = "x"
		}
		b.WriteString(fmt.Sprintf("[%s] %s %s (day %d)\n", mark, r.Icon, r.Title, r.StreakThreshold))
	}
	b.WriteString(fmt.Sprintf("voice announcements: %s\n", onOff(data.VoiceEnabled)))
	b.WriteString(fmt.Sprintf("sync account: %s\n", loggedInLabel(data.LoggedIn)))
	b.WriteString("actions: [v]voice | /login | /signup | /sync")
	return strings.TrimSpace(b.String())
}

func RenderCelebration(data CelebrationData) string {
	var b strings.Builder
	switch data.Kind {
	case "title":
		b.WriteString("new title unlocked!\n")
	case "milestone":
		b.WriteString("milestone reached!\n")
	default:
		b.WriteString("notification:\n")
	}
	b.WriteString(data.Title)
	if data.Body != "" {
		b.WriteString("\n" + data.Body)
	}
	b.WriteString("\npress [enter] to continue")
	if data.Pending > 1 {
		b.WriteString(fmt.Sprintf(" (%d more)", data.Pending-1))
	}
	return b.String()
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help (%s):\n%s", strings.ToLower(data.CurrentView), strings.Join(data.Bindings, "\n"))
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func loggedInLabel(v bool) string {
	if v {
		return "logged in"
	}
	return "local only"
}
