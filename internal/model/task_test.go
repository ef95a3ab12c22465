package model

import (
	"errors"
	"testing"
)

func TestTaskValidateSuccess(t *testing.T) {
	task := Task{
		ID:            "task-1",
		Title:         "Morning review",
		SectionID:     "sec-1",
		ScheduledTime: "6:45 AM",
		Icon:          "🌅",
	}
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task, got error: %v", err)
	}
}

func TestTaskValidateMissingFields(t *testing.T) {
	err := Task{Title: "x", SectionID: "sec-1"}.Validate()
	if err == nil || !errors.Is(err, ErrMissingID) {
		t.Fatalf("expected ErrMissingID, got: %v", err)
	}

	err = Task{ID: "task-1", Title: "   ", SectionID: "sec-1"}.Validate()
	if err == nil || !errors.Is(err, ErrMissingTitle) {
		t.Fatalf("expected ErrMissingTitle, got: %v", err)
	}

	err = Task{ID: "task-1", Title: "x"}.Validate()
	if err == nil || !errors.Is(err, ErrMissingSection) {
		t.Fatalf("expected ErrMissingSection, got: %v", err)
	}
}

func TestSnapshotValidateRejectsOrphanTask(t *testing.T) {
	snap := Snapshot{
		SchemaVersion: SnapshotSchemaVersion,
		Sections:      []Section{{ID: "sec-1", Title: "Morning Routine"}},
		Tasks: []Task{
			{ID: "task-1", Title: "Wake up", SectionID: "sec-missing"},
		},
	}
	err := snap.Validate()
	if err == nil || !errors.Is(err, ErrOrphanTask) {
		t.Fatalf("expected ErrOrphanTask, got: %v", err)
	}
}

func TestSnapshotValidateRejectsDuplicateIDs(t *testing.T) {
	snap := Snapshot{
		Sections: []Section{{ID: "sec-1", Title: "Morning Routine"}},
		Tasks: []Task{
			{ID: "task-1", Title: "Wake up", SectionID: "sec-1"},
			{ID: "task-1", Title: "Shower", SectionID: "sec-1"},
		},
	}
	if err := snap.Validate(); err == nil {
		t.Fatal("expected duplicate task id error, got nil")
	}
}

func TestSnapshotValidateBestStreakFloor(t *testing.T) {
	snap := Snapshot{Streak: 5, Profile: Profile{BestStreak: 3}}
	if err := snap.Validate(); err == nil {
		t.Fatal("expected best-streak error, got nil")
	}
}
