package timeline

import (
	"errors"
	"fmt"
	"log"

	"github.com/depeter/daydrag/internal/geom"
	"github.com/depeter/daydrag/internal/grid"
)

// Config errors.
var (
	ErrInvalidViewport = errors.New("timeline: visible height must be positive and not exceed the content height")
	ErrInvalidBlock    = errors.New("timeline: block heights must be positive and fit the content")
)

// DefaultHandleHeight is the height of the stretch strips at each block edge.
const DefaultHandleHeight = 15

// Config describes the timeline layout and the block it hosts.
type Config struct {
	Grid          grid.Grid
	VisibleHeight float64
	MinHeight     float64
	DefaultHeight float64
	// DefaultY is the content Y of the block centre at mount.
	DefaultY     float64
	HandleHeight float64
	AutoScroll   AutoScrollConfig
}

// DefaultConfig mirrors a one-day timeline: 24 rows of 50 seen through a 700
// tall window.
func DefaultConfig() Config {
	return Config{
		Grid:          grid.New(24, 50),
		VisibleHeight: 700,
		MinHeight:     100,
		DefaultHeight: 200,
		DefaultY:      200,
		HandleHeight:  DefaultHandleHeight,
		AutoScroll: AutoScrollConfig{
			TriggerBand:   DefaultTriggerBand,
			SnapTolerance: DefaultSnapTolerance,
		},
	}
}

// Validate checks that the configuration describes a usable timeline.
func (c Config) Validate() error {
	if err := c.Grid.Validate(); err != nil {
		return err
	}
	if c.VisibleHeight <= 0 || c.VisibleHeight > c.Grid.Height() {
		return fmt.Errorf("%w (visible=%v, content=%v)", ErrInvalidViewport, c.VisibleHeight, c.Grid.Height())
	}
	if c.MinHeight <= 0 || c.DefaultHeight < c.MinHeight || c.DefaultHeight > c.Grid.Height() {
		return fmt.Errorf("%w (min=%v, default=%v, content=%v)", ErrInvalidBlock, c.MinHeight, c.DefaultHeight, c.Grid.Height())
	}
	return nil
}

var debugLogging bool

// SetDebug turns transition tracing on or off.
func SetDebug(on bool) { debugLogging = on }

func debugf(format string, args ...any) {
	if debugLogging {
		log.Printf("[timeline] "+format, args...)
	}
}

// Timeline is the scrollable row container hosting one draggable block. It
// owns the container frame, the scroll offset and the interaction state, and
// turns host callbacks into state transitions and scroll requests.
//
// All methods must be called from the host's UI goroutine.
type Timeline struct {
	cfg   Config
	env   Env
	ready bool
	state State
	coord *Coordinator

	// OnScrollRequest is called when the content should animate to a row.
	// The host must call ScrollFinished with the request's generation once
	// the animation settles.
	OnScrollRequest func(ScrollRequest)
}

// New returns a timeline. Nothing is interactive until SetFrame is called.
func New(cfg Config) (*Timeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.HandleHeight <= 0 {
		cfg.HandleHeight = DefaultHandleHeight
	}
	t := &Timeline{
		cfg:   cfg,
		coord: NewCoordinator(cfg.AutoScroll),
	}
	t.env.Grid = cfg.Grid
	t.env.View = geom.Viewport{
		ContentHeight: cfg.Grid.Height(),
		VisibleHeight: cfg.VisibleHeight,
	}
	t.env.View.ScrollOffset = t.env.View.Margin()
	return t, nil
}

// Config returns the configuration the timeline was built with.
func (t *Timeline) Config() Config { return t.cfg }

// SetFrame records the container frame once layout has settled. The frame is
// in content space, i.e. with the scroll offset already removed. Frames
// without area are ignored. The block is mounted on the first valid frame and
// re-settled on later ones.
func (t *Timeline) SetFrame(frame geom.Rect) {
	if frame.Empty() {
		debugf("ignoring empty frame %+v", frame)
		return
	}
	first := !t.ready
	t.env.Frame = frame
	t.env.View.ContentHeight = frame.H
	t.ready = true
	if first {
		t.env.View.ScrollOffset = t.env.View.Margin()
		t.state = State{Block: Block{
			Center:    geom.Pt(frame.MidX(), frame.Y+t.cfg.DefaultY),
			Height:    t.cfg.DefaultHeight,
			MinHeight: t.cfg.MinHeight,
		}}
	} else {
		t.state = tapOutside(t.env, t.state)
		t.coord.Reset()
	}
	t.state.Block = Settle(t.env, t.state.Block)
	t.state.Origin = t.state.Block
	debugf("frame %+v, block %+v", frame, t.state.Block)
}

// Ready reports whether a frame has been recorded and the block may be shown.
func (t *Timeline) Ready() bool { return t.ready }

// Frame returns the recorded container frame.
func (t *Timeline) Frame() geom.Rect { return t.env.Frame }

// Grid returns the row grid.
func (t *Timeline) Grid() grid.Grid { return t.env.Grid }

// Viewport returns the current viewport geometry including the scroll offset.
func (t *Timeline) Viewport() geom.Viewport { return t.env.View }

// State returns a copy of the interaction state.
func (t *Timeline) State() State { return t.state }

// Phase returns the current interaction phase.
func (t *Timeline) Phase() Phase { return t.state.Phase }

// Selected reports whether the block is long-pressed and shows its handles.
func (t *Timeline) Selected() bool { return t.state.Selected() }

// Armed reports whether the block can be dragged without a long press.
func (t *Timeline) Armed() bool { return t.state.Armed }

// NeedsLongPress reports whether a new touch on the block must be held
// before it can drag.
func (t *Timeline) NeedsLongPress() bool { return !t.state.Armed }

// Block returns the block in content space.
func (t *Timeline) Block() Block { return t.state.Block }

// Coordinator exposes the auto-scroll coordinator for inspection.
func (t *Timeline) Coordinator() *Coordinator { return t.coord }

// BlockRect returns the block bounds in viewport space, ready to draw.
func (t *Timeline) BlockRect() geom.Rect {
	return t.env.View.RectToViewport(t.state.Block.Rect(t.env.Frame.W))
}

// NormalizedOffset returns the scroll offset re-based on the visible top.
func (t *Timeline) NormalizedOffset() float64 { return t.env.View.NormalizedOffset() }

// HitTest resolves which part of the block lies under viewport point p.
// The stretch handles only exist while the block is selected.
func (t *Timeline) HitTest(p geom.Point) Handle {
	if !t.ready {
		return HandleNone
	}
	r := t.BlockRect()
	if !geom.PointInRect(p, r) {
		return HandleNone
	}
	if t.state.Selected() {
		hh := t.cfg.HandleHeight
		if p.Y <= r.MinY()+hh {
			return HandleTop
		}
		if p.Y >= r.MaxY()-hh {
			return HandleBottom
		}
	}
	return HandleBody
}

// LongPress reports a completed long press at viewport point p. It selects the
// block when p is on it and returns whether it did.
func (t *Timeline) LongPress(p geom.Point) bool {
	if t.HitTest(p) == HandleNone {
		return false
	}
	t.apply(Input{Kind: InputLongPress})
	return t.state.Selected()
}

// Pointer feeds a gesture sample for the given handle.
func (t *Timeline) Pointer(h Handle, s Sample) {
	if !t.ready {
		return
	}
	t.apply(Input{Kind: InputGesture, Handle: h, Sample: s})
	if h != HandleBody {
		return
	}
	if t.state.Phase != PhaseDragging {
		t.coord.Stop()
		return
	}
	if dir, fire := t.coord.Observe(s.Location.Y, t.env.View); fire {
		t.requestScroll(dir)
	}
}

// TapOutside dismisses the block: any gesture in progress is finished and
// snapped, then the block returns to idle and disarms.
func (t *Timeline) TapOutside() {
	if !t.ready {
		return
	}
	t.coord.Stop()
	t.apply(Input{Kind: InputTapOutside})
}

// Tap handles a short tap at viewport point p. A tap that misses the block
// lands on the rows and dismisses it; it reports whether that happened.
func (t *Timeline) Tap(p geom.Point) bool {
	if !t.ready || t.HitTest(p) != HandleNone {
		return false
	}
	t.TapOutside()
	return true
}

// SetScrollOffset reports the current scroll offset, whether it changed from
// user scrolling or from an animation step.
func (t *Timeline) SetScrollOffset(offset float64) {
	t.env.View.ScrollOffset = offset
	if !t.ready {
		return
	}
	t.apply(Input{Kind: InputScroll})
}

// ScrollFinished reports that the scroll animation for generation has
// settled. If the drag is still held in a trigger band the next step is
// requested.
func (t *Timeline) ScrollFinished(generation uint64) {
	dir, again := t.coord.Complete(generation, t.env.View, t.env.Grid)
	if !again || t.state.Phase != PhaseDragging {
		return
	}
	t.requestScroll(dir)
}

func (t *Timeline) requestScroll(dir Direction) {
	req, ok := t.coord.Plan(dir, t.env.View, t.env.Grid)
	if !ok {
		debugf("auto-scroll %v: already at the end", dir)
		return
	}
	req = t.coord.Begin(req)
	debugf("auto-scroll %v to row %d (gen %d, delta %.1f)", dir, req.Row, req.Generation, req.Delta)
	if t.OnScrollRequest != nil {
		t.OnScrollRequest(req)
	}
}

func (t *Timeline) apply(in Input) {
	before := t.state.Phase
	t.state = Transition(t.env, t.state, in)
	if after := t.state.Phase; after != before {
		debugf("%v -> %v (armed=%v, block y=%.1f h=%.1f)", before, after, t.state.Armed, t.state.Block.Center.Y, t.state.Block.Height)
	}
}
