package model

import (
	"errors"
	"fmt"
	"time"
)

const SnapshotSchemaVersion = 1

var ErrOrphanTask = errors.New("model: task references unknown section")

// Profile carries the aggregate user metrics that outlive any single day.
type Profile struct {
	BestStreak        int  `json:"best_streak"`
	TotalUsageDays    int  `json:"total_usage_days"`
	LastLoginDate     Date `json:"last_login_date"`
	Diamonds          int  `json:"diamonds"`
	TasksAddedToday   int  `json:"tasks_added_today"`
	FocusMinutesToday int  `json:"focus_minutes_today"`
}

type Settings struct {
	VoiceEnabled bool `json:"voice_enabled"`
}

// RewardEntry maps a streak threshold to the title granted when the streak
// first reaches it. The catalog is static for the process lifetime.
type RewardEntry struct {
	StreakThreshold int    `json:"streak_threshold"`
	Title           string `json:"title"`
	Icon            string `json:"icon"`
}

// Snapshot is the whole session aggregate as one persistable document.
// The storage collaborator only ever sees complete snapshots.
type Snapshot struct {
	SchemaVersion   int             `json:"schema_version"`
	Tasks           []Task          `json:"tasks"`
	Sections        []Section       `json:"sections"`
	Streak          int             `json:"streak"`
	StreakGrantedOn Date            `json:"streak_granted_on"`
	Profile         Profile         `json:"profile"`
	Milestones      map[string]bool `json:"milestones"`
	UnlockedTitles  []string        `json:"unlocked_titles"`
	Settings        Settings        `json:"settings"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Validate checks structural integrity: entity fields, unique ids, and that
// every task references an existing section.
func (s Snapshot) Validate() error {
	sectionIDs := make(map[string]bool, len(s.Sections))
	for _, sec := range s.Sections {
		if err := sec.Validate(); err != nil {
			return err
		}
		if sectionIDs[sec.ID] {
			return fmt.Errorf("model: duplicate section id %s", sec.ID)
		}
		sectionIDs[sec.ID] = true
	}
	taskIDs := make(map[string]bool, len(s.Tasks))
	for _, t := range s.Tasks {
		if err := t.Validate(); err != nil {
			return err
		}
		if taskIDs[t.ID] {
			return fmt.Errorf("model: duplicate task id %s", t.ID)
		}
		taskIDs[t.ID] = true
		if !sectionIDs[t.SectionID] {
			return fmt.Errorf("%w: task %s -> section %s", ErrOrphanTask, t.ID, t.SectionID)
		}
	}
	if s.Streak < 0 {
		return errors.New("model: streak must not be negative")
	}
	if s.Profile.BestStreak < s.Streak {
		return errors.New("model: best streak below current streak")
	}
	return nil
}

// Clone returns a deep copy so callers can hand snapshots across goroutine
// boundaries without sharing slices or maps.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Tasks = append([]Task(nil), s.Tasks...)
	out.Sections = append([]Section(nil), s.Sections...)
	out.UnlockedTitles = append([]string(nil), s.UnlockedTitles...)
	out.Milestones = make(map[string]bool, len(s.Milestones))
	for k, v := range s.Milestones {
		out.Milestones[k] = v
	}
	return out
}
