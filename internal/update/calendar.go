package update

import (
	"time"

	"routined/internal/model"
	"routined/internal/views"
)

// monthCalendar walks the current calendar month into the grid the metrics
// tab renders, marking today and the last recorded login day.
func monthCalendar(now time.Time, lastLogin model.Date) views.MonthCalendarData {
	year, month, today := now.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()

	data := views.MonthCalendarData{
		Year:          year,
		Month:         month.String(),
		LeadingBlanks: int(first.Weekday()),
	}
	for day := 1; day <= daysInMonth; day++ {
		data.Days = append(data.Days, views.MonthDayData{
			Day:   day,
			Today: day == today,
			Login: lastLogin.Year == year && lastLogin.Month == month && lastLogin.Day == day,
		})
	}
	return data
}

func (m Model) renderMonthCalendar() string {
	return views.RenderMonthCalendar(monthCalendar(m.Session.Now(), m.Session.Profile().LastLoginDate))
}
