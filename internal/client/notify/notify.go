// Package notify is the single user-visible surface for success and error
// feedback. Notifications queue in insertion order, are never coalesced, and
// expire automatically after a fixed display duration unless dismissed first.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Severity classifies a notification for rendering.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notification is one transient, dismissible outcome message.
type Notification struct {
	ID        string
	Message   string
	Severity  Severity
	CreatedAt time.Time
}

// DefaultTTL matches the display duration of the original toast.
const DefaultTTL = 3 * time.Second

// newID, timeNow and scheduleExpiry are test seams.
var (
	newID          = uuid.NewString
	timeNow        = time.Now
	scheduleExpiry = time.AfterFunc
)

// Channel collects notifications from any component. Safe for concurrent use.
type Channel struct {
	mu    sync.Mutex
	items []Notification
	ttl   time.Duration
	sink  func(Notification)
}

// New creates a channel whose notifications expire after ttl. A non-positive
// ttl falls back to DefaultTTL.
func New(ttl time.Duration) *Channel {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Channel{ttl: ttl}
}

// SetSink registers a callback invoked for every new notification, used by
// the shell to print messages as they arrive.
func (c *Channel) SetSink(fn func(Notification)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sink = fn
}

// Notify appends a notification and schedules its automatic removal.
// Duplicate messages produce duplicate entries. Returns the identifier.
func (c *Channel) Notify(message string, severity Severity) string {
	n := Notification{
		ID:        newID(),
		Message:   message,
		Severity:  severity,
		CreatedAt: timeNow(),
	}

	c.mu.Lock()
	c.items = append(c.items, n)
	sink := c.sink
	c.mu.Unlock()

	scheduleExpiry(c.ttl, func() { c.Dismiss(n.ID) })

	if sink != nil {
		sink(n)
	}
	return n.ID
}

func (c *Channel) Info(message string) string    { return c.Notify(message, SeverityInfo) }
func (c *Channel) Success(message string) string { return c.Notify(message, SeveritySuccess) }
func (c *Channel) Warning(message string) string { return c.Notify(message, SeverityWarning) }
func (c *Channel) Error(message string) string   { return c.Notify(message, SeverityError) }

// Dismiss removes a notification immediately. Unknown ids are ignored.
func (c *Channel) Dismiss(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, n := range c.items {
		if n.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Active returns the live notifications in insertion order.
func (c *Channel) Active() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Notification, len(c.items))
	copy(out, c.items)
	return out
}
