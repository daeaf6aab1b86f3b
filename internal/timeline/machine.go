package timeline

import (
	"math"

	"github.com/depeter/daydrag/internal/geom"
	"github.com/depeter/daydrag/internal/grid"
)

// Phase is the interaction state of the block.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSelected
	PhaseDragging
	PhaseStretchingTop
	PhaseStretchingBottom
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSelected:
		return "selected"
	case PhaseDragging:
		return "dragging"
	case PhaseStretchingTop:
		return "stretching-top"
	case PhaseStretchingBottom:
		return "stretching-bottom"
	}
	return "unknown"
}

// Handle identifies which part of the block a gesture grabbed.
type Handle int

const (
	HandleNone Handle = iota
	HandleBody
	HandleTop
	HandleBottom
)

func (h Handle) String() string {
	switch h {
	case HandleBody:
		return "body"
	case HandleTop:
		return "top"
	case HandleBottom:
		return "bottom"
	}
	return "none"
}

// GesturePhase is the lifecycle stage of a pointer sample.
type GesturePhase int

const (
	GestureStarted GesturePhase = iota
	GestureChanged
	GestureEnded
)

func (p GesturePhase) String() string {
	switch p {
	case GestureStarted:
		return "started"
	case GestureChanged:
		return "changed"
	case GestureEnded:
		return "ended"
	}
	return "unknown"
}

// Sample is one pointer report from the host. Location is in viewport space;
// Translation is the displacement since the gesture started.
type Sample struct {
	Location    geom.Point
	Translation geom.Vec
	Phase       GesturePhase
}

// InputKind selects the meaning of an Input.
type InputKind int

const (
	InputLongPress InputKind = iota
	InputGesture
	InputTapOutside
	InputScroll
)

// Input is a single event fed to Transition.
type Input struct {
	Kind   InputKind
	Handle Handle
	Sample Sample
}

// Env is the read-only geometry a transition is evaluated against.
type Env struct {
	Frame geom.Rect // container frame, content space
	Grid  grid.Grid
	View  geom.Viewport
}

// State is everything the interaction machine remembers between inputs.
type State struct {
	Phase Phase
	// Armed blocks can be dragged again without a long press.
	Armed bool
	Block Block
	// Origin is the block as it was when the current gesture started.
	Origin Block
	// Lever is the per-axis distance between pointer and centre recorded at
	// drag start.
	Lever geom.Vec
	// Grip is the signed pointer-to-centre offset recorded at drag start. It
	// fixes the side the block trails on for the whole drag.
	Grip geom.Vec
	// Pointer is the latest drag location in viewport space.
	Pointer geom.Point

	// primed is set by a long press and lets the same touch continue into a
	// drag.
	primed bool
}

// Selected reports whether the block has been long-pressed and not yet
// dismissed.
func (s State) Selected() bool { return s.Phase != PhaseIdle }

// Active reports whether a drag or stretch is in progress.
func (s State) Active() bool {
	return s.Phase == PhaseDragging || s.Phase == PhaseStretchingTop || s.Phase == PhaseStretchingBottom
}

func (s State) canDrag() bool {
	return s.Armed || s.primed
}

// Transition applies one input to s and returns the resulting state. It has
// no side effects. Inputs arriving before the container frame is known are
// ignored.
func Transition(env Env, s State, in Input) State {
	if env.Frame.Empty() {
		return s
	}
	switch in.Kind {
	case InputLongPress:
		return longPress(s)
	case InputTapOutside:
		return tapOutside(env, s)
	case InputScroll:
		return followScroll(env, s)
	case InputGesture:
		switch in.Handle {
		case HandleBody:
			return drag(env, s, in.Sample)
		case HandleTop:
			return stretch(env, s, in.Sample, PhaseStretchingTop)
		case HandleBottom:
			return stretch(env, s, in.Sample, PhaseStretchingBottom)
		}
	}
	return s
}

func longPress(s State) State {
	if s.Active() {
		return s
	}
	s.Phase = PhaseSelected
	s.primed = true
	s.Origin = s.Block
	return s
}

func tapOutside(env Env, s State) State {
	switch s.Phase {
	case PhaseDragging:
		s = endDrag(env, s)
	case PhaseStretchingTop, PhaseStretchingBottom:
		s = endStretch(env, s)
	}
	s.Phase = PhaseIdle
	s.Armed = false
	s.primed = false
	return s
}

func drag(env Env, s State, smp Sample) State {
	loc := env.View.ToContent(smp.Location)
	switch smp.Phase {
	case GestureStarted, GestureChanged:
		if s.Phase != PhaseDragging {
			if s.Active() || !s.canDrag() {
				return s
			}
			s.Phase = PhaseDragging
			s.primed = false
			s.Origin = s.Block
			s.Grip = loc.Sub(s.Block.Center)
			s.Lever = geom.Vec{DX: math.Abs(s.Grip.DX), DY: math.Abs(s.Grip.DY)}
		}
		s.Pointer = smp.Location
		s.Block.Center = trail(loc, s.Grip)
		s.Block.Center.Y = clampCenterY(env.Frame, s.Block)
	case GestureEnded:
		if s.Phase != PhaseDragging {
			s.primed = false
			return s
		}
		s = endDrag(env, s)
	}
	return s
}

// trail places the centre on the side of pointer chosen at drag start, at
// the lever distance recorded then. The side never flips, so a pointer pulled
// past a clamped edge can't drag the block the other way.
func trail(pointer geom.Point, grip geom.Vec) geom.Point {
	return geom.Pt(pointer.X-grip.DX, pointer.Y-grip.DY)
}

// clampCenterY keeps the block's vertical extent inside the frame.
func clampCenterY(frame geom.Rect, b Block) float64 {
	return geom.Clamp(b.Center.Y, frame.MinY()+b.Height/2, frame.MaxY()-b.Height/2)
}

func endDrag(env Env, s State) State {
	s.Block.Center.X = env.Frame.MidX()
	if y, ok := env.Grid.NearestCenter(s.Block.Center.Y-env.Frame.Y, s.Block.Height, 0, env.Frame.H); ok {
		s.Block.Center.Y = env.Frame.Y + y
	} else {
		s.Block.Center.Y = s.Origin.Center.Y
	}
	s.Phase = PhaseSelected
	s.Armed = true
	s.Origin = s.Block
	s.Lever = geom.Vec{}
	s.Grip = geom.Vec{}
	return s
}

// followScroll keeps a dragged block under the pointer while the content
// moves beneath a stationary pointer. The new centre comes straight from the
// pointer's current content position and the grip.
func followScroll(env Env, s State) State {
	if s.Phase != PhaseDragging {
		return s
	}
	loc := env.View.ToContent(s.Pointer)
	s.Block.Center.Y = trail(loc, s.Grip).Y
	s.Block.Center.Y = clampCenterY(env.Frame, s.Block)
	return s
}

func stretch(env Env, s State, smp Sample, phase Phase) State {
	switch smp.Phase {
	case GestureStarted, GestureChanged:
		if s.Phase != phase {
			if s.Phase != PhaseSelected {
				return s
			}
			s.Phase = phase
			s.primed = false
			s.Origin = s.Block
		}
		if !env.View.InVisibleBand(smp.Location.Y) {
			return s
		}
		if phase == PhaseStretchingTop {
			s.Block = StretchTopStep(s.Origin, smp.Translation.DY)
		} else {
			s.Block = StretchBottomStep(s.Origin, smp.Translation.DY)
		}
	case GestureEnded:
		if s.Phase != phase {
			return s
		}
		s = endStretch(env, s)
	}
	return s
}

// StretchTopStep resizes origin from its top edge by the vertical translation
// dy, keeping the bottom edge anchored. Negative dy grows the block. The top
// edge never moves below the point where the block would be MinHeight tall.
func StretchTopStep(origin Block, dy float64) Block {
	b := origin
	b.Height = math.Max(origin.MinHeight, origin.Height-dy)
	b.Center.Y = math.Min(
		origin.Center.Y+origin.Height/2-origin.MinHeight/2,
		origin.Center.Y+dy/2,
	)
	return b
}

// StretchBottomStep resizes origin from its bottom edge, keeping the top edge
// anchored. Positive dy grows the block.
func StretchBottomStep(origin Block, dy float64) Block {
	b := origin
	b.Height = math.Max(origin.MinHeight, origin.Height+dy)
	b.Center.Y = math.Max(
		origin.Center.Y-origin.Height/2+origin.MinHeight/2,
		origin.Center.Y+dy/2,
	)
	return b
}

func endStretch(env Env, s State) State {
	h := env.Grid.RoundHeight(s.Block.Height)
	if h < s.Block.MinHeight {
		h = env.Grid.CeilHeight(s.Block.MinHeight)
	}
	var (
		edge float64
		ok   bool
	)
	if s.Phase == PhaseStretchingTop {
		edge, ok = env.Grid.NearestBoundaryWithinRange(s.Block.Top()-env.Frame.Y, 0, env.Frame.H-h)
		if ok {
			s.Block.Center.Y = env.Frame.Y + edge + h/2
		}
	} else {
		edge, ok = env.Grid.NearestBoundaryWithinRange(s.Block.Bottom()-env.Frame.Y, h, env.Frame.H)
		if ok {
			s.Block.Center.Y = env.Frame.Y + edge - h/2
		}
	}
	if ok {
		s.Block.Height = h
	} else {
		s.Block = s.Origin
	}
	s.Phase = PhaseSelected
	s.Origin = s.Block
	return s
}

// Settle snaps a block that is not being manipulated onto the grid inside
// frame, as a drag release would. Blocks that cannot fit keep their position.
func Settle(env Env, b Block) Block {
	b.Height = env.Grid.RoundHeight(b.Height)
	if b.Height < b.MinHeight {
		b.Height = env.Grid.CeilHeight(b.MinHeight)
	}
	s := State{Phase: PhaseDragging, Block: b, Origin: b}
	return endDrag(env, s).Block
}
