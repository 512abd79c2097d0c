package web

import (
	"testing"
	"time"
)

func TestNotifier_Expires(t *testing.T) {
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	n := newNotifier(3 * time.Second)
	n.now = func() time.Time { return clock }

	n.push(KindSuccess, "Item saved successfully!")
	clock = clock.Add(2 * time.Second)
	n.push(KindError, "Failed to import menu file.")

	if got := n.active(); len(got) != 2 {
		t.Fatalf("expected 2 active notifications, got %d", len(got))
	}

	clock = clock.Add(time.Second)
	got := n.active()
	if len(got) != 1 || got[0].Kind != KindError {
		t.Fatalf("expected only the error to remain, got %+v", got)
	}

	clock = clock.Add(5 * time.Second)
	if got := n.active(); len(got) != 0 {
		t.Errorf("expected all notifications dismissed, got %+v", got)
	}
}
