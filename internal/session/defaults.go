package session

import "routined/internal/model"

// Stock section ids are stable strings rather than generated uuids so a
// fresh snapshot is reproducible across machines.
const (
	SectionMorning  = "sec-morning"
	SectionAcademic = "sec-academic"
	SectionDeepWork = "sec-deepwork"
)

// DefaultSnapshot seeds the stock daily routine: three sections and the
// eighteen-task default schedule, all incomplete, streak at zero.
func DefaultSnapshot() model.Snapshot {
	return model.Snapshot{
		SchemaVersion: model.SnapshotSchemaVersion,
		Sections: []model.Section{
			{ID: SectionMorning, Title: "Morning Routine", Icon: "🌅"},
			{ID: SectionAcademic, Title: "Academic Core", Icon: "🏫"},
			{ID: SectionDeepWork, Title: "Deep Work", Icon: "💻"},
		},
		Tasks: []model.Task{
			{ID: "task-01", Title: "Wake up", SectionID: SectionMorning, ScheduledTime: "6:45 AM", Icon: "🌅"},
			{ID: "task-02", Title: "Bathing", SectionID: SectionMorning, ScheduledTime: "7:00 AM", Icon: "🚿"},
			{ID: "task-03", Title: "Get ready after bath", SectionID: SectionMorning, ScheduledTime: "7:30 AM", Icon: "👕"},
			{ID: "task-04", Title: "Complete pending college work", SectionID: SectionMorning, ScheduledTime: "8:00 AM", Icon: "📝"},
			{ID: "task-05", Title: "Breakfast at mess", SectionID: SectionMorning, ScheduledTime: "8:30 AM", Icon: "🍳"},
			{ID: "task-06", Title: "Leave for college", SectionID: SectionAcademic, ScheduledTime: "8:45 AM", Icon: "🚶"},
			{ID: "task-07", Title: "Reach college", SectionID: SectionAcademic, ScheduledTime: "9:00 AM", Icon: "🏫"},
			{ID: "task-08", Title: "Submit mobile", SectionID: SectionAcademic, ScheduledTime: "9:01 AM", Icon: "📱"},
			{ID: "task-09", Title: "Collect mobile", SectionID: SectionAcademic, ScheduledTime: "4:00 PM", Icon: "📲"},
			{ID: "task-10", Title: "Return to hostel", SectionID: SectionAcademic, ScheduledTime: "4:10 PM", Icon: "🏠"},
			{ID: "task-11", Title: "Change & wash face", SectionID: SectionDeepWork, ScheduledTime: "4:15 PM", Icon: "🧖"},
			{ID: "task-12", Title: "Rest", SectionID: SectionDeepWork, ScheduledTime: "5:00 PM", Icon: "😴"},
			{ID: "task-13", Title: "Tea at mess", SectionID: SectionDeepWork, ScheduledTime: "5:30 PM", Icon: "☕"},
			{ID: "task-14", Title: "Hostel attendance", SectionID: SectionDeepWork, ScheduledTime: "6:00 PM", Icon: "📋"},
			{ID: "task-15", Title: "Skill-based learning", SectionID: SectionDeepWork, ScheduledTime: "6:30 PM", Icon: "💻"},
			{ID: "task-16", Title: "Dinner", SectionID: SectionDeepWork, ScheduledTime: "8:00 PM", Icon: "🍽️"},
			{ID: "task-17", Title: "Studies", SectionID: SectionDeepWork, ScheduledTime: "8:30 PM", Icon: "📚"},
			{ID: "task-18", Title: "Sleep", SectionID: SectionDeepWork, ScheduledTime: "10:30 PM", Icon: "🌙"},
		},
		Milestones: make(map[string]bool),
		Settings:   model.Settings{VoiceEnabled: true},
	}
}

// Quotes rotate on the overview screen.
var Quotes = []string{
	"The secret of your future is hidden in your daily routine.",
	"Your only limit is you.",
	"Consistency is what transforms average into excellence.",
	"Success is the sum of small efforts, repeated day in and day out.",
	"Don't stop until you're proud.",
	"Discipline is choosing between what you want now and what you want most.",
}
