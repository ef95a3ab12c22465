package session

import "strings"

// Milestone flag names. Each flips false→true exactly once and never resets.
const (
	MilestoneFocusPeak          = "focus_peak"
	MilestoneAcademicExcellence = "academic_excellence"
	MilestoneFlowMaster         = "flow_master"
	MilestoneDisciplineKing     = "discipline_king"
)

// MilestoneConfig holds the unlock thresholds. Thresholds are policy, not
// mechanism: changing them changes when rules fire, never how.
type MilestoneConfig struct {
	FocusPeakTasks       int
	AcademicKeywords     []string
	AcademicTasks        int
	FlowMasterDays       int
	DisciplineKingStreak int
}

func DefaultMilestoneConfig() MilestoneConfig {
	return MilestoneConfig{
		FocusPeakTasks:       5,
		AcademicKeywords:     []string{"study", "studies", "read", "college", "class", "homework", "learn"},
		AcademicTasks:        3,
		FlowMasterDays:       14,
		DisciplineKingStreak: 30,
	}
}

type milestoneRule struct {
	flag      string
	title     string
	predicate func(*Session) bool
}

// evaluateMilestones runs after every mutation and streak transition. The
// catalog scan comes first, then the flag rules in declaration order, so
// simultaneous unlocks from one mutation always enqueue in the same sequence.
func (s *Session) evaluateMilestones() {
	s.evaluateRewardCatalog()

	for _, rule := range s.milestoneRules() {
		if s.snap.Milestones[rule.flag] {
			continue
		}
		if !rule.predicate(s) {
			continue
		}
		s.snap.Milestones[rule.flag] = true
		s.enqueue(Notification{Kind: NotificationMilestone, Title: rule.title})
	}
}

// evaluateRewardCatalog grants streak-threshold titles. Membership in the
// unlocked-title set is the idempotence guard: a title is added and announced
// at most once, no matter how often the same state is re-evaluated.
func (s *Session) evaluateRewardCatalog() {
	for _, entry := range s.catalog {
		if s.snap.Streak < entry.StreakThreshold {
			continue
		}
		if s.hasTitle(entry.Title) {
			continue
		}
		s.snap.UnlockedTitles = append(s.snap.UnlockedTitles, entry.Title)
		s.snap.Profile.Diamonds += entry.StreakThreshold * diamondsPerThresholdDay
		s.enqueue(Notification{Kind: NotificationTitle, Title: entry.Title})
	}
}

func (s *Session) milestoneRules() []milestoneRule {
	return []milestoneRule{
		{
			flag:  MilestoneFocusPeak,
			title: "Daily Focus Peak",
			predicate: func(s *Session) bool {
				return s.CompletedToday() >= s.config.FocusPeakTasks
			},
		},
		{
			flag:  MilestoneAcademicExcellence,
			title: "Academic Excellence",
			predicate: func(s *Session) bool {
				return s.completedAcademicTasks() >= s.config.AcademicTasks
			},
		},
		{
			flag:  MilestoneFlowMaster,
			title: "Flow State Master",
			predicate: func(s *Session) bool {
				return s.snap.Profile.TotalUsageDays >= s.config.FlowMasterDays
			},
		},
		{
			flag:  MilestoneDisciplineKing,
			title: "Discipline King",
			predicate: func(s *Session) bool {
				return s.snap.Streak >= s.config.DisciplineKingStreak
			},
		},
	}
}

func (s *Session) completedAcademicTasks() int {
	count := 0
	for _, t := range s.snap.Tasks {
		if !t.Completed {
			continue
		}
		title := strings.ToLower(t.Title)
		for _, kw := range s.config.AcademicKeywords {
			if strings.Contains(title, kw) {
				count++
				break
			}
		}
	}
	return count
}

func (s *Session) MilestoneUnlocked(flag string) bool {
	return s.snap.Milestones[flag]
}

func (s *Session) hasTitle(title string) bool {
	for _, t := range s.snap.UnlockedTitles {
		if t == title {
			return true
		}
	}
	return false
}
