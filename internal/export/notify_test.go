package export

import (
	"testing"
	"time"
)

func TestNotificationsExpireAfterTTL(t *testing.T) {
	c := NewNotificationCenter(5 * time.Second)
	n := c.Push(NotifyError, "Error generating PDF. Please try again.")

	now := n.CreatedAt
	if got := len(c.Active(now.Add(time.Second))); got != 1 {
		t.Fatalf("active before TTL = %d, want 1", got)
	}
	if got := len(c.Active(now.Add(6 * time.Second))); got != 0 {
		t.Fatalf("active after TTL = %d, want 0", got)
	}
	// pruned for good, not just filtered
	if got := len(c.Active(now)); got != 0 {
		t.Fatalf("expired notification came back: %d", got)
	}
}

func TestDismissRemovesEarly(t *testing.T) {
	c := NewNotificationCenter(time.Minute)
	n := c.Push(NotifySuccess, "Resume downloaded successfully!")
	other := c.Push(NotifyInfo, "something else")

	if !c.Dismiss(n.ID) {
		t.Fatalf("dismiss reported missing notification")
	}
	if c.Dismiss(n.ID) {
		t.Fatalf("second dismiss should report not found")
	}

	active := c.Active(time.Now())
	if len(active) != 1 || active[0].ID != other.ID {
		t.Fatalf("active = %+v", active)
	}
}

func TestZeroTTLFallsBackToDefault(t *testing.T) {
	c := NewNotificationCenter(0)
	n := c.Push(NotifyInfo, "hello")
	if got := len(c.Active(n.CreatedAt.Add(DefaultNotificationTTL - time.Second))); got != 1 {
		t.Fatalf("default TTL not applied")
	}
}
