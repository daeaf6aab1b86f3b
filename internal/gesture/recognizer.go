// Package gesture turns raw pointer down/move/up reports into taps, long
// presses and drags, and routes them to a timeline the way a touch UI would.
package gesture

import (
	"time"

	"github.com/depeter/daydrag/internal/geom"
)

const (
	DefaultLongPress = time.Second
	DefaultSlop      = 6
)

type Config struct {
	// LongPress is how long a pointer must stay down, without dragging, to
	// count as a long press.
	LongPress time.Duration
	// Slop is the distance a pointer may wander before a press becomes a
	// drag.
	Slop float64
}

type Kind int

const (
	Press Kind = iota
	LongPress
	DragStart
	DragMove
	Release
	Tap
)

func (k Kind) String() string {
	switch k {
	case Press:
		return "press"
	case LongPress:
		return "long-press"
	case DragStart:
		return "drag-start"
	case DragMove:
		return "drag-move"
	case Release:
		return "release"
	case Tap:
		return "tap"
	}
	return "unknown"
}

type Event struct {
	Kind  Kind
	Pos   geom.Point
	Start geom.Point
}

// Translation is the displacement from where the pointer went down.
func (e Event) Translation() geom.Vec { return e.Pos.Sub(e.Start) }

// Recognizer tracks one pointer. Timestamps are caller supplied and only need
// to be monotonic, so hosts can feed a frame counter converted to a duration.
type Recognizer struct {
	cfg         Config
	down        bool
	start       geom.Point
	pos         geom.Point
	downAt      time.Duration
	dragging    bool
	longPressed bool
}

func NewRecognizer(cfg Config) *Recognizer {
	if cfg.LongPress <= 0 {
		cfg.LongPress = DefaultLongPress
	}
	if cfg.Slop <= 0 {
		cfg.Slop = DefaultSlop
	}
	return &Recognizer{cfg: cfg}
}

// Down reports whether the pointer is currently pressed.
func (r *Recognizer) Down() bool { return r.down }

// Dragging reports whether the current press has turned into a drag.
func (r *Recognizer) Dragging() bool { return r.dragging }

// Held returns how long the pointer has been down at now.
func (r *Recognizer) Held(now time.Duration) time.Duration {
	if !r.down {
		return 0
	}
	return now - r.downAt
}

func (r *Recognizer) Press(p geom.Point, now time.Duration) []Event {
	r.down = true
	r.start, r.pos = p, p
	r.downAt = now
	r.dragging = false
	r.longPressed = false
	return []Event{{Kind: Press, Pos: p, Start: p}}
}

// Move reports the pointer at p. Once the press has been long-pressed any
// movement starts a drag; before that the slop must be exceeded.
func (r *Recognizer) Move(p geom.Point, now time.Duration) []Event {
	if !r.down || p == r.pos {
		return nil
	}
	r.pos = p
	if r.dragging {
		return []Event{{Kind: DragMove, Pos: p, Start: r.start}}
	}
	if r.longPressed || geom.Distance(p, r.start) > r.cfg.Slop {
		r.dragging = true
		return []Event{{Kind: DragStart, Pos: p, Start: r.start}}
	}
	return nil
}

// Tick fires the long press once the hold time has elapsed.
func (r *Recognizer) Tick(now time.Duration) []Event {
	if !r.down || r.dragging || r.longPressed {
		return nil
	}
	if now-r.downAt < r.cfg.LongPress {
		return nil
	}
	r.longPressed = true
	return []Event{{Kind: LongPress, Pos: r.pos, Start: r.start}}
}

func (r *Recognizer) Release(p geom.Point, now time.Duration) []Event {
	if !r.down {
		return nil
	}
	events := r.Move(p, now)
	kind := Release
	if !r.dragging && !r.longPressed {
		kind = Tap
	}
	events = append(events, Event{Kind: kind, Pos: p, Start: r.start})
	r.down = false
	r.dragging = false
	r.longPressed = false
	return events
}

// Cancel forgets the current press without emitting anything.
func (r *Recognizer) Cancel() {
	r.down = false
	r.dragging = false
	r.longPressed = false
}
