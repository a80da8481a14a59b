package engine

import (
	"testing"
	"time"
)

func TestTimeProvider(t *testing.T) {
	provider := NewTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}

	diff := t2.Sub(t1)
	if diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestMockTimeProvider(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)

	now := mock.Now()
	if !now.Equal(startTime) {
		t.Errorf("Expected initial time to be %v, got %v", startTime, now)
	}

	newTime := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	mock.Set(newTime)
	now = mock.Now()
	if !now.Equal(newTime) {
		t.Errorf("Expected time to be %v after Set, got %v", newTime, now)
	}

	mock.Advance(1 * time.Hour)
	now = mock.Now()
	expected := newTime.Add(1 * time.Hour)
	if !now.Equal(expected) {
		t.Errorf("Expected time to be %v after Advance, got %v", expected, now)
	}

	mock.Advance(30 * time.Minute)
	now = mock.Advance(15 * time.Minute)
	expected = newTime.Add(1*time.Hour + 30*time.Minute + 15*time.Minute)
	if !now.Equal(expected) {
		t.Errorf("Expected time to be %v after multiple advances, got %v", expected, now)
	}
}

func TestPausableClock(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	base := NewMockTimeProvider(start)
	clock := NewPausableClock(base)

	base.Advance(time.Second)
	if got := clock.Now(); !got.Equal(start.Add(time.Second)) {
		t.Fatalf("Expected scene time to follow base, got %v", got)
	}

	if !clock.Toggle() {
		t.Fatal("Expected Toggle to pause")
	}
	clock.Pause() // no-op
	base.Advance(5 * time.Second)
	if got := clock.Now(); !got.Equal(start.Add(time.Second)) {
		t.Errorf("Expected frozen time while paused, got %v", got)
	}
	if got := clock.PausedFor(); got != 5*time.Second {
		t.Errorf("Expected 5s paused so far, got %v", got)
	}

	if clock.Toggle() {
		t.Fatal("Expected Toggle to resume")
	}
	clock.Resume() // no-op
	base.Advance(2 * time.Second)
	if got := clock.Now(); !got.Equal(start.Add(3 * time.Second)) {
		t.Errorf("Expected paused span excluded after resume, got %v", got)
	}
	if clock.Paused() || clock.PausedFor() != 5*time.Second {
		t.Errorf("Expected resumed clock with 5s paused, got paused=%v for=%v", clock.Paused(), clock.PausedFor())
	}
	if clock.Base() != Clock(base) {
		t.Error("Expected Base to return the wrapped clock")
	}
}
