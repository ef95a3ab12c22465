package session

import "routined/internal/model"

// grantDailyStreak fires on the completion edge. The grant is recorded
// against today's date, so toggling tasks off and on again later the same
// day finds the grant already made and leaves the counter alone. The
// recorded date doubles as the per-day "already granted" flag: it stops
// matching as soon as the calendar date moves on.
func (s *Session) grantDailyStreak() {
	today := s.today()
	if s.snap.StreakGrantedOn.Equal(today) {
		return
	}
	s.snap.Streak++
	s.snap.StreakGrantedOn = today
	if s.snap.Streak > s.snap.Profile.BestStreak {
		s.snap.Profile.BestStreak = s.snap.Streak
	}
}

// StartDay runs the day-boundary transition. Safe to call redundantly: it
// compares calendar dates, not timestamps, and does nothing when the stored
// login date already matches today. One elapsed day preserves the streak
// (continuation is the completion edge's job); a gap of two or more days
// resets it to zero. Best streak is never touched here.
func (s *Session) StartDay() {
	today := s.today()
	last := s.snap.Profile.LastLoginDate

	if last.Equal(today) {
		return
	}

	if !last.IsZero() {
		if gap := last.DaysUntil(today); gap > 1 {
			s.snap.Streak = 0
			s.snap.StreakGrantedOn = model.Date{}
		}
	}

	s.snap.Profile.LastLoginDate = today
	s.snap.Profile.TotalUsageDays++
	s.snap.Profile.TasksAddedToday = 0
	s.snap.Profile.FocusMinutesToday = 0

	s.evaluateMilestones()
	s.markChanged()
}
