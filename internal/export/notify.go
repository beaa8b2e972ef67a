package export

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type NotificationLevel string

const (
	NotifySuccess NotificationLevel = "success"
	NotifyError   NotificationLevel = "error"
	NotifyInfo    NotificationLevel = "info"
)

type Notification struct {
	ID        uuid.UUID         `json:"id"`
	Level     NotificationLevel `json:"level"`
	Message   string            `json:"message"`
	CreatedAt time.Time         `json:"created_at"`
}

// NotificationCenter holds transient user-facing messages. Each one
// expires after the TTL or on explicit dismissal, mirroring a toast that
// auto-hides after a few seconds.
type NotificationCenter struct {
	mu    sync.Mutex
	ttl   time.Duration
	items []Notification
}

const DefaultNotificationTTL = 5 * time.Second

func NewNotificationCenter(ttl time.Duration) *NotificationCenter {
	if ttl <= 0 {
		ttl = DefaultNotificationTTL
	}
	return &NotificationCenter{ttl: ttl}
}

func (c *NotificationCenter) Push(level NotificationLevel, message string) Notification {
	n := Notification{
		ID:        uuid.New(),
		Level:     level,
		Message:   message,
		CreatedAt: time.Now(),
	}
	c.mu.Lock()
	c.items = append(c.items, n)
	c.mu.Unlock()
	return n
}

// Active returns the not-yet-expired notifications and prunes the rest.
func (c *NotificationCenter) Active(now time.Time) []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.items[:0]
	for _, n := range c.items {
		if now.Sub(n.CreatedAt) < c.ttl {
			kept = append(kept, n)
		}
	}
	c.items = kept
	out := make([]Notification, len(kept))
	copy(out, kept)
	return out
}

// Dismiss removes a notification before its TTL runs out.
func (c *NotificationCenter) Dismiss(id uuid.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, n := range c.items {
		if n.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}
