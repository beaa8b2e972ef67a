package builder

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncerCollapsesBurst(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(50*time.Millisecond, func() { calls.Add(1) })

	for i := 0; i < 10; i++ {
		d.Trigger()
		time.Sleep(5 * time.Millisecond)
	}
	time.Sleep(250 * time.Millisecond)

	if got := calls.Load(); got != 1 {
		t.Fatalf("calls = %d, want 1", got)
	}
}

func TestDebouncerSeesFinalState(t *testing.T) {
	var last atomic.Value
	value := atomic.Value{}
	value.Store("")

	d := NewDebouncer(40*time.Millisecond, func() { last.Store(value.Load()) })

	for _, s := range []string{"G", "Go", "Go!", "Go!!"} {
		value.Store(s)
		d.Trigger()
	}
	time.Sleep(200 * time.Millisecond)

	if got, _ := last.Load().(string); got != "Go!!" {
		t.Fatalf("fired with %q, want final state %q", got, "Go!!")
	}
}

func TestDebouncerCancel(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(30*time.Millisecond, func() { calls.Add(1) })

	d.Trigger()
	d.Cancel()
	time.Sleep(150 * time.Millisecond)

	if got := calls.Load(); got != 0 {
		t.Fatalf("calls after cancel = %d, want 0", got)
	}
}

func TestDebouncerFlush(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(time.Hour, func() { calls.Add(1) })

	d.Flush() // nothing pending
	if got := calls.Load(); got != 0 {
		t.Fatalf("flush with nothing pending fired %d times", got)
	}

	d.Trigger()
	d.Flush()
	if got := calls.Load(); got != 1 {
		t.Fatalf("calls after flush = %d, want 1", got)
	}

	// the flushed call must not fire again later
	time.Sleep(50 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Fatalf("calls settled at %d, want 1", got)
	}
}

func TestDebouncerSeparateBurstsFireSeparately(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(30*time.Millisecond, func() { calls.Add(1) })

	d.Trigger()
	time.Sleep(120 * time.Millisecond)
	d.Trigger()
	time.Sleep(120 * time.Millisecond)

	if got := calls.Load(); got != 2 {
		t.Fatalf("calls = %d, want 2", got)
	}
}
