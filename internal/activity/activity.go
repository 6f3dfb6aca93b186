// Package activity keeps the append-only event log and the notification
// feed for a session. Entries are never mutated or removed; notifications
// only flip their read flag.
package activity

import (
	"time"

	"github.com/google/uuid"

	"github.com/edurishi/sales-assistant/internal/model"
)

// DefaultActor is recorded on activities when no actor is configured.
const DefaultActor = "Current User"

// Log accumulates activities and notifications in arrival order.
type Log struct {
	actor         string
	now           func() time.Time
	activities    []model.Activity
	notifications []model.Notification
}

// Option customizes a Log.
type Option func(*Log)

// WithActor sets the actor recorded on each activity.
func WithActor(actor string) Option {
	return func(l *Log) { l.actor = actor }
}

// WithClock overrides the time source, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(l *Log) { l.now = now }
}

// NewLog creates an empty Log.
func NewLog(opts ...Option) *Log {
	l := &Log{actor: DefaultActor, now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Record appends an activity and returns it.
func (l *Log) Record(description, activityType, relatedID, relatedName string) model.Activity {
	a := model.Activity{
		ID:          uuid.New().String(),
		Description: description,
		Type:        activityType,
		RelatedID:   relatedID,
		RelatedName: relatedName,
		Timestamp:   l.now(),
		User:        l.actor,
	}
	l.activities = append(l.activities, a)
	return a
}

// Notify appends a notification and returns it. An empty type defaults
// to "info".
func (l *Log) Notify(message, notificationType, relatedID, relatedType string) model.Notification {
	if notificationType == "" {
		notificationType = "info"
	}
	n := model.Notification{
		ID:          uuid.New().String(),
		Message:     message,
		Type:        notificationType,
		RelatedID:   relatedID,
		RelatedType: relatedType,
		Timestamp:   l.now(),
	}
	l.notifications = append(l.notifications, n)
	return n
}

// Activities returns a copy of the log in arrival order.
func (l *Log) Activities() []model.Activity {
	out := make([]model.Activity, len(l.activities))
	copy(out, l.activities)
	return out
}

// ActivitiesByType returns entries matching the type tag, in arrival order.
func (l *Log) ActivitiesByType(activityType string) []model.Activity {
	var out []model.Activity
	for _, a := range l.activities {
		if a.Type == activityType {
			out = append(out, a)
		}
	}
	return out
}

// Recent returns the n most recent activities, newest first.
func (l *Log) Recent(n int) []model.Activity {
	if n > len(l.activities) {
		n = len(l.activities)
	}
	out := make([]model.Activity, 0, n)
	for i := len(l.activities) - 1; i >= len(l.activities)-n; i-- {
		out = append(out, l.activities[i])
	}
	return out
}

// Notifications returns a copy of the notification feed in arrival order.
func (l *Log) Notifications() []model.Notification {
	out := make([]model.Notification, len(l.notifications))
	copy(out, l.notifications)
	return out
}

// Unread returns the notifications not yet marked read, in arrival order.
func (l *Log) Unread() []model.Notification {
	var out []model.Notification
	for _, n := range l.notifications {
		if !n.Read {
			out = append(out, n)
		}
	}
	return out
}

// MarkRead flips a notification's read flag. Unknown IDs are a no-op and
// return false.
func (l *Log) MarkRead(id string) bool {
	for i := range l.notifications {
		if l.notifications[i].ID == id {
			l.notifications[i].Read = true
			return true
		}
	}
	return false
}
