package session

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"routined/internal/model"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advanceDays(n int) {
	c.now = c.now.AddDate(0, 0, n)
}

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)}
}

func twoTaskSession(clock Clock) *Session {
	snap := model.Snapshot{
		SchemaVersion: model.SnapshotSchemaVersion,
		Sections:      []model.Section{{ID: "sec-1", Title: "Morning Routine"}},
		Tasks: []model.Task{
			{ID: "task-1", Title: "Wake up", SectionID: "sec-1"},
			{ID: "task-2", Title: "Studies", SectionID: "sec-1"},
		},
		Milestones: make(map[string]bool),
	}
	return New(snap, clock)
}

func drainQueue(s *Session) []Notification {
	out := make([]Notification, 0)
	for {
		n, ok := s.PendingNotification()
		if !ok {
			return out
		}
		out = append(out, n)
		s.AcknowledgeNotification()
	}
}

func TestProgressEmptyStoreIsZero(t *testing.T) {
	s := New(model.Snapshot{Milestones: map[string]bool{}}, newClock())
	if got := s.Progress(); got != 0 {
		t.Fatalf("expected 0%% for empty store, got %d", got)
	}
	if s.IsFullyComplete() {
		t.Fatal("empty store must never count as fully complete")
	}
}

func TestProgressThreeOfFour(t *testing.T) {
	snap := model.Snapshot{
		Sections: []model.Section{{ID: "sec-1", Title: "Morning Routine"}},
		Tasks: []model.Task{
			{ID: "t1", Title: "a", SectionID: "sec-1", Completed: true},
			{ID: "t2", Title: "b", SectionID: "sec-1", Completed: true},
			{ID: "t3", Title: "c", SectionID: "sec-1", Completed: true},
			{ID: "t4", Title: "d", SectionID: "sec-1"},
		},
	}
	s := New(snap, newClock())
	if got := s.Progress(); got != 75 {
		t.Fatalf("expected 75%%, got %d", got)
	}
}

func TestCompletionEdgeEndToEnd(t *testing.T) {
	s := twoTaskSession(newClock())

	s.ToggleTask("task-1")
	if s.IsFullyComplete() {
		t.Fatal("one of two tasks should not be fully complete")
	}
	if s.Streak() != 0 {
		t.Fatalf("streak must not move before the edge, got %d", s.Streak())
	}

	s.ToggleTask("task-2")
	if !s.IsFullyComplete() {
		t.Fatal("expected fully complete after second toggle")
	}
	if s.Streak() != 1 {
		t.Fatalf("expected streak 1 after completion edge, got %d", s.Streak())
	}

	notes := drainQueue(s)
	if len(notes) != 1 {
		t.Fatalf("expected exactly one unlock notification, got %d: %+v", len(notes), notes)
	}
	if notes[0].Kind != NotificationTitle || notes[0].Title != "Getting Started 🌱" {
		t.Fatalf("unexpected notification: %+v", notes[0])
	}
	if !s.hasTitle("Getting Started 🌱") {
		t.Fatal("expected title in unlocked set")
	}
}

func TestCompletionEdgeFiresOncePerDay(t *testing.T) {
	s := twoTaskSession(newClock())
	s.ToggleTask("task-1")
	s.ToggleTask("task-2")
	if s.Streak() != 1 {
		t.Fatalf("expected streak 1, got %d", s.Streak())
	}

	// Un-complete and re-complete repeatedly within the same calendar day.
	for i := 0; i < 3; i++ {
		s.ToggleTask("task-2")
		if s.Streak() != 1 {
			t.Fatalf("un-completing must not decrement streak, got %d", s.Streak())
		}
		s.ToggleTask("task-2")
		if s.Streak() != 1 {
			t.Fatalf("re-completing same day must not re-increment, got %d", s.Streak())
		}
	}
}

func TestCompletionEdgeFiresAgainNextDay(t *testing.T) {
	clock := newClock()
	s := twoTaskSession(clock)
	s.StartDay()
	s.ToggleTask("task-1")
	s.ToggleTask("task-2")
	if s.Streak() != 1 {
		t.Fatalf("expected streak 1, got %d", s.Streak())
	}

	clock.advanceDays(1)
	s.StartDay()
	if s.Streak() != 1 {
		t.Fatalf("one-day gap must preserve streak, got %d", s.Streak())
	}

	s.ToggleTask("task-1")
	s.ToggleTask("task-1")
	if s.Streak() != 2 {
		t.Fatalf("expected streak 2 after next-day completion edge, got %d", s.Streak())
	}
}

func TestDayBoundaryResetAfterSkippedDay(t *testing.T) {
	clock := newClock()
	s := twoTaskSession(clock)
	s.StartDay()
	s.ToggleTask("task-1")
	s.ToggleTask("task-2")
	best := s.Profile().BestStreak
	if best != 1 {
		t.Fatalf("expected best streak 1, got %d", best)
	}

	clock.advanceDays(2)
	s.StartDay()
	if s.Streak() != 0 {
		t.Fatalf("expected streak reset after skipped day, got %d", s.Streak())
	}
	if s.Profile().BestStreak != best {
		t.Fatalf("best streak must survive the reset, got %d", s.Profile().BestStreak)
	}
}

func TestStartDayIsIdempotentWithinOneDay(t *testing.T) {
	clock := newClock()
	s := twoTaskSession(clock)
	s.StartDay()
	days := s.Profile().TotalUsageDays
	s.StartDay()
	s.StartDay()
	if s.Profile().TotalUsageDays != days {
		t.Fatalf("redundant StartDay must not accrue usage days, got %d", s.Profile().TotalUsageDays)
	}
}

func TestStartDayResetsDailyCounters(t *testing.T) {
	clock := newClock()
	s := twoTaskSession(clock)
	s.StartDay()
	s.AddTask("Extra reading", "sec-1")
	s.AddFocusMinutes(25)
	if s.Profile().TasksAddedToday != 1 || s.Profile().FocusMinutesToday != 25 {
		t.Fatalf("unexpected daily counters: %+v", s.Profile())
	}

	clock.advanceDays(1)
	s.StartDay()
	p := s.Profile()
	if p.TasksAddedToday != 0 || p.FocusMinutesToday != 0 {
		t.Fatalf("daily counters must reset at the boundary: %+v", p)
	}
	if p.TotalUsageDays != 2 {
		t.Fatalf("expected 2 usage days, got %d", p.TotalUsageDays)
	}
}

func TestStreakNeverNegativeAndBestIsHighWater(t *testing.T) {
	clock := newClock()
	s := twoTaskSession(clock)
	s.StartDay()

	for day := 0; day < 6; day++ {
		s.ToggleTask("task-1")
		s.ToggleTask("task-2")
		clock.advanceDays(3) // always skip, always reset
		s.StartDay()
		if s.Streak() != 0 {
			t.Fatalf("expected reset on day %d, got %d", day, s.Streak())
		}
		if s.Profile().BestStreak < s.Streak() {
			t.Fatalf("best streak fell below streak: %+v", s.Profile())
		}
		s.ToggleTask("task-1")
		s.ToggleTask("task-2")
		s.ToggleTask("task-1")
		s.ToggleTask("task-2")
	}
}

func TestDeleteLastIncompleteTaskDoesNotGrantStreak(t *testing.T) {
	s := twoTaskSession(newClock())
	s.ToggleTask("task-1")
	s.DeleteTask("task-2")
	if !s.IsFullyComplete() {
		t.Fatal("store should read fully complete after deletion")
	}
	if s.Streak() != 0 {
		t.Fatalf("deletion must never grant a streak, got %d", s.Streak())
	}
}

func TestSilentNoOps(t *testing.T) {
	s := twoTaskSession(newClock())
	before := len(s.Tasks())

	s.AddTask("   ", "sec-1")
	if len(s.Tasks()) != before {
		t.Fatal("empty title must be a no-op")
	}

	s.ToggleTask("no-such-id")
	s.DeleteTask("no-such-id")
	s.RenameTask("task-1", "  ")
	s.RenameSection("sec-1", "")

	tasks := s.Tasks()
	if len(tasks) != before || tasks[0].Title != "Wake up" {
		t.Fatalf("unknown-id or empty-rename mutated state: %+v", tasks)
	}
	if s.Sections()[0].Title != "Morning Routine" {
		t.Fatal("empty section rename must be a no-op")
	}
}

func TestAddTaskFallsBackToFirstSection(t *testing.T) {
	s := twoTaskSession(newClock())
	s.AddTask("Review notes", "sec-gone")
	tasks := s.Tasks()
	added := tasks[len(tasks)-1]
	if added.SectionID != "sec-1" {
		t.Fatalf("expected fallback section, got %q", added.SectionID)
	}
}

func TestMilestoneUnlocksAreIdempotent(t *testing.T) {
	clock := newClock()
	snap := DefaultSnapshot()
	s := New(snap, clock)
	s.StartDay()

	// Completing five tasks crosses the focus-peak threshold.
	for _, id := range []string{"task-01", "task-02", "task-03", "task-04", "task-17"} {
		s.ToggleTask(id)
	}
	if !s.MilestoneUnlocked(MilestoneFocusPeak) {
		t.Fatal("expected focus peak unlocked at five completed tasks")
	}

	notes := drainQueue(s)
	seen := map[string]int{}
	for _, n := range notes {
		seen[n.Title]++
	}
	if seen["Daily Focus Peak"] != 1 {
		t.Fatalf("expected exactly one focus-peak notification, got %d", seen["Daily Focus Peak"])
	}

	// Re-toggling over the same state must not re-fire any flag.
	s.ToggleTask("task-05")
	s.ToggleTask("task-05")
	for _, n := range drainQueue(s) {
		if n.Title == "Daily Focus Peak" {
			t.Fatal("focus peak re-fired after unlock")
		}
	}
}

func TestSimultaneousUnlocksQueueInDeclarationOrder(t *testing.T) {
	clock := newClock()
	s := twoTaskSession(clock)
	s.SetRewardCatalog([]model.RewardEntry{
		{StreakThreshold: 1, Title: "Getting Started 🌱", Icon: "🌱"},
	})
	cfg := DefaultMilestoneConfig()
	cfg.FocusPeakTasks = 2
	s.SetMilestoneConfig(cfg)

	// One toggle crosses the completion edge (title unlock) and the
	// focus-peak threshold in the same tick.
	s.ToggleTask("task-1")
	drainQueue(s)
	s.ToggleTask("task-2")

	notes := drainQueue(s)
	if len(notes) != 2 {
		t.Fatalf("expected both unlocks queued, got %d: %+v", len(notes), notes)
	}
	if notes[0].Title != "Getting Started 🌱" || notes[1].Title != "Daily Focus Peak" {
		t.Fatalf("unexpected unlock order: %+v", notes)
	}
}

func TestRewardAtCustomThresholdFiresOnce(t *testing.T) {
	clock := newClock()
	snap := model.Snapshot{
		Sections:   []model.Section{{ID: "sec-1", Title: "Morning Routine"}},
		Tasks:      []model.Task{{ID: "task-1", Title: "Wake up", SectionID: "sec-1"}},
		Streak:     6,
		Profile:    model.Profile{BestStreak: 6, LastLoginDate: model.DateOf(clock.Now())},
		Milestones: make(map[string]bool),
		UnlockedTitles: []string{
			"Getting Started 🌱", "Consistent 💪",
		},
	}
	s := New(snap, clock)
	s.SetRewardCatalog([]model.RewardEntry{
		{StreakThreshold: 1, Title: "Getting Started 🌱"},
		{StreakThreshold: 5, Title: "Consistent 💪"},
		{StreakThreshold: 7, Title: "Focused Mind 🧠"},
	})

	s.ToggleTask("task-1")
	if s.Streak() != 7 {
		t.Fatalf("expected streak 7, got %d", s.Streak())
	}

	count := 0
	for _, n := range drainQueue(s) {
		if n.Title == "Focused Mind 🧠" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected one threshold-7 unlock, got %d", count)
	}

	// Two more toggle cycles the same day: no new grants, no new unlocks.
	s.ToggleTask("task-1")
	s.ToggleTask("task-1")
	s.ToggleTask("task-1")
	s.ToggleTask("task-1")
	if s.Streak() != 7 {
		t.Fatalf("streak moved on intra-day toggles: %d", s.Streak())
	}
	if len(drainQueue(s)) != 0 {
		t.Fatal("expected no further notifications")
	}
}

func TestActiveTitleIsHighestUnlocked(t *testing.T) {
	s := twoTaskSession(newClock())
	if s.ActiveTitle() != FallbackTitle {
		t.Fatalf("expected fallback title, got %q", s.ActiveTitle())
	}
	s.snap.UnlockedTitles = []string{"Getting Started 🌱", "Focused Mind 🧠"}
	if s.ActiveTitle() != "Focused Mind 🧠" {
		t.Fatalf("expected highest unlocked title, got %q", s.ActiveTitle())
	}
}

func TestResetRoutineLeavesStreakAlone(t *testing.T) {
	s := twoTaskSession(newClock())
	s.ToggleTask("task-1")
	s.ToggleTask("task-2")
	titles := len(s.UnlockedTitles())

	s.ResetRoutine()
	if s.Progress() != 0 {
		t.Fatalf("expected all tasks incomplete, progress %d", s.Progress())
	}
	if s.Streak() != 1 || len(s.UnlockedTitles()) != titles {
		t.Fatal("reset must not touch streak or titles")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	clock := newClock()
	s := New(DefaultSnapshot(), clock)
	s.StartDay()
	s.AddTask("Evening review", SectionDeepWork)
	for _, task := range s.Tasks() {
		s.ToggleTask(task.ID)
	}

	before := s.Snapshot()
	raw, err := json.Marshal(before)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var after model.Snapshot
	if err := json.Unmarshal(raw, &after); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("round trip diverged:\nbefore: %+v\nafter:  %+v", before, after)
	}

	restored := New(after, clock)
	if restored.Streak() != s.Streak() || restored.ActiveTitle() != s.ActiveTitle() {
		t.Fatal("restored session diverged from original")
	}
}

func TestOnChangeFiresPerMutation(t *testing.T) {
	s := twoTaskSession(newClock())
	var seen []model.Snapshot
	s.SetOnChange(func(snap model.Snapshot) { seen = append(seen, snap) })

	s.ToggleTask("task-1")
	s.AddTask("Extra", "sec-1")
	s.ToggleTask("no-such-id") // no-op, no change event

	if len(seen) != 2 {
		t.Fatalf("expected 2 change events, got %d", len(seen))
	}
	if len(seen[1].Tasks) != 3 {
		t.Fatalf("change event should carry the post-mutation aggregate, got %d tasks", len(seen[1].Tasks))
	}
}
