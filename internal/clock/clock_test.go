package clock

import (
	"testing"
	"time"
)

func TestManualAdvance(t *testing.T) {
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	c := NewManual(start)

	c.Advance(42 * time.Second)

	if got := c.Now(); !got.Equal(start.Add(42 * time.Second)) {
		t.Fatalf("Now() = %v, want %v", got, start.Add(42*time.Second))
	}
}

func TestManualSetTime(t *testing.T) {
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	c := NewManual(start)

	jump := start.Add(-time.Hour)
	c.SetTime(jump)

	if got := c.Now(); !got.Equal(jump) {
		t.Fatalf("Now() = %v, want %v", got, jump)
	}
}
