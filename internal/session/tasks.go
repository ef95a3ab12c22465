package session

import (
	"strings"

	"github.com/google/uuid"

	"routined/internal/model"
)

// AddTask appends a new incomplete task to the given section. Empty titles
// (after trimming) are silently dropped, matching the validation taxonomy:
// bad input is a no-op, not an error.
func (s *Session) AddTask(title, sectionID string) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return
	}
	if !s.sectionExists(sectionID) {
		sectionID = s.fallbackSectionID()
	}
	s.snap.Tasks = append(s.snap.Tasks, model.Task{
		ID:        uuid.NewString(),
		Title:     trimmed,
		SectionID: sectionID,
		Icon:      "📌",
	})
	s.snap.Profile.TasksAddedToday++
	s.evaluateMilestones()
	s.markChanged()
}

// ToggleTask flips the completed flag on one task. The completion edge is
// detected against the store as it was before the flip: the streak fires on
// "was not all complete and is now all complete", never on "is all complete",
// so repeated toggling inside an already-finished day cannot re-fire it.
func (s *Session) ToggleTask(id string) {
	idx := s.taskIndex(id)
	if idx < 0 {
		return
	}
	wasComplete := s.IsFullyComplete()
	s.snap.Tasks[idx].Completed = !s.snap.Tasks[idx].Completed
	nowComplete := s.IsFullyComplete()

	if !wasComplete && nowComplete {
		s.grantDailyStreak()
	}
	s.evaluateMilestones()
	s.markChanged()
}

// DeleteTask removes the task outright. Deletion never participates in the
// completion edge, so deleting the last incomplete task cannot fake a
// finished day: the streak only moves through ToggleTask and StartDay.
func (s *Session) DeleteTask(id string) {
	idx := s.taskIndex(id)
	if idx < 0 {
		return
	}
	s.snap.Tasks = append(s.snap.Tasks[:idx], s.snap.Tasks[idx+1:]...)
	s.markChanged()
}

func (s *Session) RenameTask(id, newTitle string) {
	trimmed := strings.TrimSpace(newTitle)
	if trimmed == "" {
		return
	}
	idx := s.taskIndex(id)
	if idx < 0 {
		return
	}
	s.snap.Tasks[idx].Title = trimmed
	s.markChanged()
}

func (s *Session) AddSection(title, icon string) string {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return ""
	}
	sec := model.Section{ID: uuid.NewString(), Title: trimmed, Icon: icon}
	s.snap.Sections = append(s.snap.Sections, sec)
	s.markChanged()
	return sec.ID
}

func (s *Session) RenameSection(id, newTitle string) {
	trimmed := strings.TrimSpace(newTitle)
	if trimmed == "" {
		return
	}
	for i := range s.snap.Sections {
		if s.snap.Sections[i].ID == id {
			s.snap.Sections[i].Title = trimmed
			s.markChanged()
			return
		}
	}
}

// ResetRoutine marks every task incomplete. Streak, profile, milestones and
// titles are untouched; only ToggleTask and StartDay move those.
func (s *Session) ResetRoutine() {
	for i := range s.snap.Tasks {
		s.snap.Tasks[i].Completed = false
	}
	s.markChanged()
}

func (s *Session) Tasks() []model.Task {
	return append([]model.Task(nil), s.snap.Tasks...)
}

func (s *Session) Sections() []model.Section {
	return append([]model.Section(nil), s.snap.Sections...)
}

// TasksBySection returns the ordered tasks for one section. Tasks whose
// section no longer exists surface under the first section rather than
// disappearing; an orphan is a data defect to tolerate, not a crash.
func (s *Session) TasksBySection(sectionID string) []model.Task {
	fallback := s.fallbackSectionID()
	out := make([]model.Task, 0)
	for _, t := range s.snap.Tasks {
		effective := t.SectionID
		if !s.sectionExists(effective) {
			effective = fallback
		}
		if effective == sectionID {
			out = append(out, t)
		}
	}
	return out
}

func (s *Session) taskIndex(id string) int {
	for i, t := range s.snap.Tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (s *Session) sectionExists(id string) bool {
	for _, sec := range s.snap.Sections {
		if sec.ID == id {
			return true
		}
	}
	return false
}

func (s *Session) fallbackSectionID() string {
	if len(s.snap.Sections) == 0 {
		return ""
	}
	return s.snap.Sections[0].ID
}
