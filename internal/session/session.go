// Package session owns the per-user aggregate: the task store, the streak
// state machine, milestone evaluation, and the unlock notification queue.
// Every state transition is a synchronous reaction to one mutation method;
// the package does no I/O and takes its notion of "now" from an injected
// clock so day-boundary logic is deterministic under test.
package session

import (
	"time"

	"routined/internal/model"
)

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ChangeFunc receives a deep copy of the aggregate after every mutation.
// The autosave debouncer hangs off this hook; the session never waits on it.
type ChangeFunc func(model.Snapshot)

type Session struct {
	snap     model.Snapshot
	clock    Clock
	catalog  []model.RewardEntry
	config   MilestoneConfig
	queue    []Notification
	onChange ChangeFunc
}

// New wraps an existing snapshot. The caller is expected to run StartDay
// once before handing the session to the presentation layer.
func New(snap model.Snapshot, clock Clock) *Session {
	if clock == nil {
		clock = SystemClock{}
	}
	s := &Session{
		snap:    snap.Clone(),
		clock:   clock,
		catalog: DefaultRewardCatalog(),
		config:  DefaultMilestoneConfig(),
	}
	if s.snap.Milestones == nil {
		s.snap.Milestones = make(map[string]bool)
	}
	if s.snap.SchemaVersion == 0 {
		s.snap.SchemaVersion = model.SnapshotSchemaVersion
	}
	return s
}

// NewDefault builds a session seeded with the stock routine, used on first
// run or when the stored snapshot is missing.
func NewDefault(clock Clock) *Session {
	return New(DefaultSnapshot(), clock)
}

func (s *Session) SetOnChange(fn ChangeFunc) {
	s.onChange = fn
}

func (s *Session) SetRewardCatalog(catalog []model.RewardEntry) {
	if len(catalog) > 0 {
		s.catalog = append([]model.RewardEntry(nil), catalog...)
	}
}

func (s *Session) SetMilestoneConfig(cfg MilestoneConfig) {
	s.config = cfg
}

// Snapshot returns a deep copy of the aggregate for persistence or display.
func (s *Session) Snapshot() model.Snapshot {
	return s.snap.Clone()
}

func (s *Session) Streak() int { return s.snap.Streak }

func (s *Session) Profile() model.Profile { return s.snap.Profile }

func (s *Session) Settings() model.Settings { return s.snap.Settings }

func (s *Session) SetVoiceEnabled(on bool) {
	if s.snap.Settings.VoiceEnabled == on {
		return
	}
	s.snap.Settings.VoiceEnabled = on
	s.markChanged()
}

// Adopt replaces the aggregate with a snapshot pulled from elsewhere,
// typically the sync server after a conflict. The snapshot is validated
// before anything local is discarded.
func (s *Session) Adopt(snap model.Snapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}
	s.snap = snap.Clone()
	if s.snap.Milestones == nil {
		s.snap.Milestones = make(map[string]bool)
	}
	if s.snap.SchemaVersion == 0 {
		s.snap.SchemaVersion = model.SnapshotSchemaVersion
	}
	s.queue = nil
	s.markChanged()
	return nil
}

// AddFocusMinutes feeds the daily focus counter; reset at the day boundary.
func (s *Session) AddFocusMinutes(minutes int) {
	if minutes <= 0 {
		return
	}
	s.snap.Profile.FocusMinutesToday += minutes
	s.evaluateMilestones()
	s.markChanged()
}

// Now reports the current time on the session's clock, so callers that
// render time-dependent state stay on the same clock as the day logic.
func (s *Session) Now() time.Time {
	return s.clock.Now()
}

func (s *Session) today() model.Date {
	return model.DateOf(s.clock.Now())
}

func (s *Session) markChanged() {
	s.snap.UpdatedAt = s.clock.Now().UTC()
	if s.onChange != nil {
		s.onChange(s.snap.Clone())
	}
}
