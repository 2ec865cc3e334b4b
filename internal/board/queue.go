package board

import "github.com/ayoisaiah/pointage/internal/models"

// Queue holds notifications in arrival order. At most one is shown at a
// time.
type Queue struct {
	current *models.NotificationEvent
	pending []models.NotificationEvent
}

// Push appends events behind any already pending.
func (q *Queue) Push(events ...models.NotificationEvent) {
	q.pending = append(q.pending, events...)
}

// Next pops the oldest pending event and makes it current. It returns false
// when nothing is pending.
func (q *Queue) Next() (models.NotificationEvent, bool) {
	if len(q.pending) == 0 {
		q.current = nil
		return models.NotificationEvent{}, false
	}

	ev := q.pending[0]
	q.pending = q.pending[1:]
	q.current = &ev

	return ev, true
}

// Current returns the event on display.
func (q *Queue) Current() (models.NotificationEvent, bool) {
	if q.current == nil {
		return models.NotificationEvent{}, false
	}

	return *q.current, true
}

// Showing reports whether an event is on display.
func (q *Queue) Showing() bool {
	return q.current != nil
}

// Done clears the event on display.
func (q *Queue) Done() {
	q.current = nil
}

// Clear drops the current and pending events.
func (q *Queue) Clear() {
	q.current = nil
	q.pending = nil
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	return len(q.pending)
}
