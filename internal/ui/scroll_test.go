package ui

import (
	"testing"

	"github.com/depeter/daydrag/internal/timeline"
)

func settle(t *testing.T, s *ScrollState) (uint64, bool) {
	t.Helper()
	for i := 0; i < 500; i++ {
		if gen, ok := s.Animate(); ok || s.ScrollY == s.TargetScrollY {
			return gen, ok
		}
	}
	t.Fatalf("scroll did not settle: at %v, target %v", s.ScrollY, s.TargetScrollY)
	return 0, false
}

func TestScrollStateClamps(t *testing.T) {
	s := NewScrollState(250, -250, 250, 0)
	if s.Speed != ScrollAnimSpeed {
		t.Errorf("speed %v; want default %v", s.Speed, ScrollAnimSpeed)
	}
	s.ScrollBy(100)
	if s.TargetScrollY != 250 {
		t.Errorf("target %v; want 250", s.TargetScrollY)
	}
	s.Jump(-1000)
	if s.ScrollY != -250 || s.TargetScrollY != -250 {
		t.Errorf("jumped to %v/%v; want -250", s.ScrollY, s.TargetScrollY)
	}
}

func TestScrollStateFollow(t *testing.T) {
	s := NewScrollState(250, -250, 250, 0.5)
	s.Follow(timeline.ScrollRequest{Offset: 200, Generation: 3})
	if !s.Following() {
		t.Fatal("not following the request")
	}

	// User scrolling waits for the request.
	s.ScrollBy(-100)
	s.Jump(-100)
	if s.TargetScrollY != 200 {
		t.Errorf("target %v; want 200", s.TargetScrollY)
	}

	gen, ok := settle(t, s)
	if !ok || gen != 3 {
		t.Errorf("settled gen %d ok %v; want 3 true", gen, ok)
	}
	if s.ScrollY != 200 || s.Following() {
		t.Errorf("at %v following %v; want 200 and idle", s.ScrollY, s.Following())
	}
	if _, ok := s.Animate(); ok {
		t.Error("completion reported twice")
	}
}

func TestScrollStateReset(t *testing.T) {
	s := NewScrollState(250, -250, 250, 0.5)
	s.Follow(timeline.ScrollRequest{Offset: 200, Generation: 1})
	s.Reset(100)
	if s.Following() || s.ScrollY != 100 || s.TargetScrollY != 100 {
		t.Errorf("got %+v; want idle at 100", s)
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 10, 0.25); got != 2.5 {
		t.Errorf("got %v; want 2.5", got)
	}
}
