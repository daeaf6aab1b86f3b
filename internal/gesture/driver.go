package gesture

import (
	"time"

	"github.com/depeter/daydrag/internal/geom"
	"github.com/depeter/daydrag/internal/timeline"
)

// Driver feeds recognized gestures into a timeline. Presses on the block turn
// into drags or stretches; anything else pans the rows or taps them.
type Driver struct {
	tl  *timeline.Timeline
	rec *Recognizer

	active  timeline.Handle
	pending bool // long press selected the block; the next movement drags it
	panning bool
	start   geom.Point
	last    geom.Point

	// OnPan receives vertical movement of drags that started off the block.
	OnPan func(dy float64)
	// Trace, when set, receives every recognized event.
	Trace func(Event)
}

func NewDriver(tl *timeline.Timeline, cfg Config) *Driver {
	return &Driver{tl: tl, rec: NewRecognizer(cfg)}
}

// Active returns the handle the current gesture manipulates.
func (d *Driver) Active() timeline.Handle { return d.active }

// Panning reports whether the current drag scrolls the rows.
func (d *Driver) Panning() bool { return d.panning }

// Recognizer exposes the underlying pointer tracker.
func (d *Driver) Recognizer() *Recognizer { return d.rec }

func (d *Driver) Press(p geom.Point, now time.Duration) {
	d.dispatch(d.rec.Press(p, now))
}

func (d *Driver) Move(p geom.Point, now time.Duration) {
	d.dispatch(d.rec.Move(p, now))
}

func (d *Driver) Tick(now time.Duration) {
	d.dispatch(d.rec.Tick(now))
}

func (d *Driver) Release(p geom.Point, now time.Duration) {
	d.dispatch(d.rec.Release(p, now))
}

func (d *Driver) dispatch(events []Event) {
	for _, ev := range events {
		if d.Trace != nil {
			d.Trace(ev)
		}
		d.handle(ev)
	}
}

func (d *Driver) handle(ev Event) {
	switch ev.Kind {
	case Press:
		d.reset()
		d.last = ev.Pos
	case LongPress:
		if d.tl.LongPress(ev.Pos) {
			d.pending = true
			d.start = ev.Pos
		}
	case DragStart:
		d.beginDrag(ev)
	case DragMove:
		switch {
		case d.active != timeline.HandleNone:
			d.sample(ev.Pos, timeline.GestureChanged)
		case d.panning && d.OnPan != nil:
			d.OnPan(ev.Pos.Y - d.last.Y)
		}
		d.last = ev.Pos
	case Release:
		switch {
		case d.active != timeline.HandleNone:
			d.sample(ev.Pos, timeline.GestureEnded)
		case d.pending:
			// Lets the machine drop the long-press priming.
			d.tl.Pointer(timeline.HandleBody, timeline.Sample{Location: ev.Pos, Phase: timeline.GestureEnded})
		}
		d.reset()
	case Tap:
		d.tl.Tap(ev.Pos)
		d.reset()
	}
}

func (d *Driver) beginDrag(ev Event) {
	if d.pending {
		d.active = timeline.HandleBody
	} else {
		d.start = ev.Start
		switch h := d.tl.HitTest(ev.Start); {
		case h == timeline.HandleBody && d.tl.Armed():
			d.active = h
		case h == timeline.HandleTop || h == timeline.HandleBottom:
			d.active = h
		}
	}
	if d.active == timeline.HandleNone {
		d.panning = true
		if d.OnPan != nil {
			d.OnPan(ev.Pos.Y - d.last.Y)
		}
		d.last = ev.Pos
		return
	}
	d.sample(d.start, timeline.GestureStarted)
	d.sample(ev.Pos, timeline.GestureChanged)
	d.last = ev.Pos
}

func (d *Driver) sample(p geom.Point, phase timeline.GesturePhase) {
	d.tl.Pointer(d.active, timeline.Sample{
		Location:    p,
		Translation: p.Sub(d.start),
		Phase:       phase,
	})
}

func (d *Driver) reset() {
	d.active = timeline.HandleNone
	d.pending = false
	d.panning = false
}
