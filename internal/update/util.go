package update

func greetingForHour(hour int) string {
	switch {
	case hour < 5:
		return "Burning the midnight oil"
	case hour < 12:
		return "Good morning"
	case hour < 17:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

func (m Model) currentGreeting() string {
	return greetingForHour(m.Session.Now().Hour())
}
