package scenario

import (
	"errors"
	"fmt"
	"math"

	"github.com/depeter/daydrag/internal/geom"
	"github.com/depeter/daydrag/internal/timeline"
)

const (
	DefaultAnimSteps = 4
	DefaultWidth     = 390
)

var ErrMismatch = errors.New("expectation failed")

// Result summarises a replayed script.
type Result struct {
	Name     string
	Steps    int
	Requests []timeline.ScrollRequest
	Final    timeline.State
	Offset   float64
}

// Scroller executes scroll requests synchronously: it reports a few
// intermediate offsets and then the completion, the way an animating host
// would over several frames.
type Scroller struct {
	tl      *timeline.Timeline
	steps   int
	pending []timeline.ScrollRequest
	seen    []timeline.ScrollRequest
}

func NewScroller(tl *timeline.Timeline, steps int) *Scroller {
	if steps < 1 {
		steps = DefaultAnimSteps
	}
	return &Scroller{tl: tl, steps: steps}
}

// Request queues r. It is meant to be installed as the timeline's
// OnScrollRequest callback.
func (s *Scroller) Request(r timeline.ScrollRequest) {
	s.pending = append(s.pending, r)
	s.seen = append(s.seen, r)
}

// Requests returns every request received so far.
func (s *Scroller) Requests() []timeline.ScrollRequest { return s.seen }

// Drain plays queued requests, including ones chained by completions, until
// none remain.
func (s *Scroller) Drain() {
	for len(s.pending) > 0 {
		req := s.pending[0]
		s.pending = s.pending[1:]
		from := s.tl.Viewport().ScrollOffset
		for i := 1; i < s.steps; i++ {
			s.tl.SetScrollOffset(from + (req.Offset-from)*float64(i)/float64(s.steps))
		}
		s.tl.SetScrollOffset(req.Offset)
		s.tl.ScrollFinished(req.Generation)
	}
}

// Run replays sc against a fresh timeline built from cfg. It stops at the
// first failed expectation.
func Run(cfg timeline.Config, sc *Script) (*Result, error) {
	tl, err := timeline.New(cfg)
	if err != nil {
		return nil, err
	}
	scroller := NewScroller(tl, sc.AnimSteps)
	tl.OnScrollRequest = scroller.Request

	frame := geom.Rect{X: sc.Frame.X, Y: sc.Frame.Y, W: sc.Frame.Width, H: sc.Frame.Height}
	if frame.W == 0 {
		frame.W = DefaultWidth
	}
	if frame.H == 0 {
		frame.H = cfg.Grid.Height()
	}
	tl.SetFrame(frame)
	if sc.Scroll != nil {
		tl.SetScrollOffset(*sc.Scroll)
	}

	res := &Result{Name: sc.Name}
	var (
		active timeline.Handle
		start  geom.Point
	)
	for i, st := range sc.Steps {
		switch {
		case st.LongPress != nil:
			tl.LongPress(geom.Pt(st.LongPress.X, st.LongPress.Y))
		case st.Tap != nil:
			tl.Tap(geom.Pt(st.Tap.X, st.Tap.Y))
		case st.TapOutside:
			tl.TapOutside()
		case st.Gesture != nil:
			h, _ := parseHandle(st.Gesture.Handle)
			phase, _ := parsePhase(st.Gesture.Phase)
			p := geom.Pt(st.Gesture.X, st.Gesture.Y)
			if phase == timeline.GestureStarted {
				start = p
				if h == timeline.HandleNone {
					h = tl.HitTest(p)
				}
				active = h
			} else if h == timeline.HandleNone {
				h = active
			}
			if h != timeline.HandleNone {
				tl.Pointer(h, timeline.Sample{Location: p, Translation: p.Sub(start), Phase: phase})
			}
			if phase == timeline.GestureEnded {
				active = timeline.HandleNone
			}
		case st.Scroll != nil:
			tl.SetScrollOffset(*st.Scroll)
		case st.Expect != nil:
			if err := check(tl, len(scroller.Requests()), st.Expect); err != nil {
				res.fill(tl, scroller, i)
				return res, fmt.Errorf("%s: step %d: %w", sc.Name, i+1, err)
			}
		}
		scroller.Drain()
	}
	res.fill(tl, scroller, len(sc.Steps))
	return res, nil
}

func (r *Result) fill(tl *timeline.Timeline, s *Scroller, steps int) {
	r.Steps = steps
	r.Requests = s.Requests()
	r.Final = tl.State()
	r.Offset = tl.Viewport().ScrollOffset
}

func check(tl *timeline.Timeline, requests int, e *Expect) error {
	b := tl.Block()
	if e.Phase != "" {
		want, _ := parseStatePhase(e.Phase)
		if got := tl.Phase(); got != want {
			return fmt.Errorf("%w: phase %v; want %v", ErrMismatch, got, want)
		}
	}
	if e.Armed != nil && tl.Armed() != *e.Armed {
		return fmt.Errorf("%w: armed %v; want %v", ErrMismatch, tl.Armed(), *e.Armed)
	}
	if e.Selected != nil && tl.Selected() != *e.Selected {
		return fmt.Errorf("%w: selected %v; want %v", ErrMismatch, tl.Selected(), *e.Selected)
	}
	for _, f := range []struct {
		name string
		want *float64
		got  float64
	}{
		{"x", e.X, b.Center.X},
		{"y", e.Y, b.Center.Y},
		{"height", e.Height, b.Height},
		{"top", e.Top, b.Top()},
		{"offset", e.Offset, tl.Viewport().ScrollOffset},
	} {
		if f.want != nil && math.Abs(f.got-*f.want) > 1e-6 {
			return fmt.Errorf("%w: %s %v; want %v", ErrMismatch, f.name, f.got, *f.want)
		}
	}
	if e.Requests != nil && requests != *e.Requests {
		return fmt.Errorf("%w: %d scroll requests; want %d", ErrMismatch, requests, *e.Requests)
	}
	return nil
}
