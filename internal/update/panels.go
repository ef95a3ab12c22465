package update

import (
	"routined/internal/views"
)

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.Palette.Input)
}

func (m Model) renderOverviewPanel() string {
	return views.RenderOverviewPanel(views.OverviewPanelData{
		Greeting:       m.currentGreeting(),
		ProgressPct:    m.Session.Progress(),
		ProgressView:   m.progressView(),
		CompletedCount: m.Session.CompletedToday(),
		TotalCount:     len(m.Session.Tasks()),
		Streak:         m.Session.Streak(),
		BestStreak:     m.Session.Profile().BestStreak,
		ActiveTitle:    m.Session.ActiveTitle(),
		Quote:          m.Quote,
		FullyComplete:  m.Session.IsFullyComplete(),
	})
}

func (m Model) renderRoutinePanel() string {
	sections := make([]views.RoutineSectionData, 0)
	for _, sec := range m.Session.Sections() {
		data := views.RoutineSectionData{
			Title:    sec.Title,
			Icon:     sec.Icon,
			Progress: m.Session.SectionProgress(sec.ID),
		}
		for _, t := range m.Session.TasksBySection(sec.ID) {
			data.Tasks = append(data.Tasks, views.RoutineTaskData{
				ID:            t.ID,
				Title:         t.Title,
				ScheduledTime: t.ScheduledTime,
				Icon:          t.Icon,
				Completed:     t.Completed,
			})
		}
		sections = append(sections, data)
	}
	return views.RenderRoutinePanel(views.RoutinePanelData{
		QuickAddView: m.quickAddInput.View(),
		ListView:     m.routineList.View(),
		Sections:     sections,
		SelectedID:   m.SelectedTaskID,
		CaptureMode:  m.Routine.CaptureMode,
	})
}

// Badge thresholds are earned against the best streak, so a badge once won
// survives a later streak reset.
var streakBadgeDays = []int{3, 7, 14, 30}

func (m Model) renderMetricsPanel() string {
	p := m.Session.Profile()
	badges := make([]views.StreakBadgeData, 0, len(streakBadgeDays))
	for _, days := range streakBadgeDays {
		badges = append(badges, views.StreakBadgeData{Days: days, Earned: p.BestStreak >= days})
	}
	return views.RenderMetricsPanel(views.MetricsPanelData{
		Streak:            m.Session.Streak(),
		BestStreak:        p.BestStreak,
		TotalUsageDays:    p.TotalUsageDays,
		LastLoginDate:     p.LastLoginDate.String(),
		TasksAddedToday:   p.TasksAddedToday,
		FocusMinutesToday: p.FocusMinutesToday,
		ProgressPct:       m.Session.Progress(),
		Badges:            badges,
	})
}

func (m Model) renderProfilePanel() string {
	rewards := make([]views.RewardData, 0)
	unlocked := make(map[string]bool)
	for _, title := range m.Session.UnlockedTitles() {
		unlocked[title] = true
	}
	for _, entry := range m.Session.RewardCatalog() {
		rewards = append(rewards, views.RewardData{
			Title:           entry.Title,
			Icon:            entry.Icon,
			StreakThreshold: entry.StreakThreshold,
			Unlocked:        unlocked[entry.Title],
		})
	}
	return views.RenderProfilePanel(views.ProfilePanelData{
		ActiveTitle:  m.Session.ActiveTitle(),
		Diamonds:     m.Session.Profile().Diamonds,
		Rewards:      rewards,
		VoiceEnabled: m.Session.Settings().VoiceEnabled,
		LoggedIn:     m.Sync != nil && m.Sync.Authenticated(),
	})
}
