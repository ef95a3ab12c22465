package session

import "routined/internal/model"

const diamondsPerThresholdDay = 5

// FallbackTitle is shown before any reward-catalog title has been unlocked.
const FallbackTitle = "Novice User"

// DefaultRewardCatalog is the stock streak ladder, ordered by threshold.
func DefaultRewardCatalog() []model.RewardEntry {
	return []model.RewardEntry{
		{StreakThreshold: 1, Title: "Getting Started 🌱", Icon: "🌱"},
		{StreakThreshold: 5, Title: "Consistent 💪", Icon: "💪"},
		{StreakThreshold: 10, Title: "Focused Mind 🧠", Icon: "🧠"},
		{StreakThreshold: 30, Title: "Discipline Master 👑", Icon: "👑"},
	}
}

func (s *Session) RewardCatalog() []model.RewardEntry {
	return append([]model.RewardEntry(nil), s.catalog...)
}

// ActiveTitle is the highest-threshold catalog title the user has ever
// unlocked, independent of the current streak value.
func (s *Session) ActiveTitle() string {
	active := FallbackTitle
	for _, entry := range s.catalog {
		if s.hasTitle(entry.Title) {
			active = entry.Title
		}
	}
	return active
}

func (s *Session) UnlockedTitles() []string {
	return append([]string(nil), s.snap.UnlockedTitles...)
}
