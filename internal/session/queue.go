package session

type NotificationKind string

const (
	NotificationTitle     NotificationKind = "title"
	NotificationMilestone NotificationKind = "milestone"
	NotificationToast     NotificationKind = "toast"
)

// Notification is one unlock event bound for the presentation layer.
type Notification struct {
	Kind  NotificationKind
	Title string
	Body  string
}

// The queue is strictly ordered FIFO. The reference design kept a single
// overwritable "new unlock" slot and silently dropped the older unlock when
// two rules fired from one mutation; here every enqueue survives until the
// consumer acknowledges it.

func (s *Session) enqueue(n Notification) {
	s.queue = append(s.queue, n)
}

// Toast enqueues a generic message through the same delivery contract the
// unlock events use.
func (s *Session) Toast(body string) {
	s.enqueue(Notification{Kind: NotificationToast, Body: body})
}

// PendingNotification returns the head of the queue without consuming it.
// The consumer must acknowledge it before the next one is surfaced.
func (s *Session) PendingNotification() (Notification, bool) {
	if len(s.queue) == 0 {
		return Notification{}, false
	}
	return s.queue[0], true
}

// AcknowledgeNotification dismisses the head notification.
func (s *Session) AcknowledgeNotification() {
	if len(s.queue) == 0 {
		return
	}
	s.queue = s.queue[1:]
}

func (s *Session) PendingCount() int {
	return len(s.queue)
}
