package ui

import (
	"math"

	"github.com/depeter/daydrag/internal/timeline"
)

// ScrollState animates the timeline's scroll offset. User scrolling moves the
// target freely within bounds; an auto-scroll request pins the target to the
// requested row and reports its generation once the animation settles.
type ScrollState struct {
	ScrollY       float64
	TargetScrollY float64
	Speed         float64

	min, max float64
	gen      uint64
	live     bool
}

func NewScrollState(offset, min, max, speed float64) *ScrollState {
	if speed <= 0 {
		speed = ScrollAnimSpeed
	}
	return &ScrollState{ScrollY: offset, TargetScrollY: offset, Speed: speed, min: min, max: max}
}

// Following reports whether an auto-scroll request is being animated.
func (s *ScrollState) Following() bool { return s.live }

// ScrollBy moves the target by d, clamped to the bounds. It is ignored while
// an auto-scroll request is animating.
func (s *ScrollState) ScrollBy(d float64) {
	if s.live || d == 0 {
		return
	}
	s.TargetScrollY = s.clamp(s.TargetScrollY + d)
}

// Jump moves both the offset and the target, as a finger dragging the
// content does.
func (s *ScrollState) Jump(d float64) {
	if s.live || d == 0 {
		return
	}
	s.ScrollY = s.clamp(s.ScrollY + d)
	s.TargetScrollY = s.ScrollY
}

// Follow starts animating towards req.
func (s *ScrollState) Follow(req timeline.ScrollRequest) {
	s.TargetScrollY = s.clamp(req.Offset)
	s.gen = req.Generation
	s.live = true
}

// Animate advances one frame. When a followed request settles it returns its
// generation and true.
func (s *ScrollState) Animate() (uint64, bool) {
	s.ScrollY = Lerp(s.ScrollY, s.TargetScrollY, s.Speed)
	if math.Abs(s.ScrollY-s.TargetScrollY) < ScrollSettleDistance {
		s.ScrollY = s.TargetScrollY
		if s.live {
			s.live = false
			return s.gen, true
		}
	}
	return 0, false
}

// Reset jumps to offset and drops any request in flight.
func (s *ScrollState) Reset(offset float64) {
	s.ScrollY = s.clamp(offset)
	s.TargetScrollY = s.ScrollY
	s.live = false
}

func (s *ScrollState) clamp(v float64) float64 {
	return math.Max(s.min, math.Min(s.max, v))
}

// Lerp for smooth scrolling
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
