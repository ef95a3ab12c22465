package session

import (
	"math"

	"routined/internal/model"
)

// progressOf computes rounded percent completion with an explicit guard for
// the empty store: zero tasks is 0%, never a division fault.
func progressOf(tasks []model.Task) int {
	if len(tasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range tasks {
		if t.Completed {
			done++
		}
	}
	return int(math.Round(100 * float64(done) / float64(len(tasks))))
}

func completedCount(tasks []model.Task) int {
	done := 0
	for _, t := range tasks {
		if t.Completed {
			done++
		}
	}
	return done
}

// Progress is the overall completion percentage of the task store.
func (s *Session) Progress() int {
	return progressOf(s.snap.Tasks)
}

// SectionProgress scopes the same formula to one section.
func (s *Session) SectionProgress(sectionID string) int {
	return progressOf(s.TasksBySection(sectionID))
}

// IsFullyComplete is true only when every task is done and at least one
// task exists; an empty store is never "complete".
func (s *Session) IsFullyComplete() bool {
	return len(s.snap.Tasks) > 0 && s.Progress() == 100
}

func (s *Session) CompletedToday() int {
	return completedCount(s.snap.Tasks)
}
