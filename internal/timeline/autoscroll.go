package timeline

import (
	"math"

	"github.com/depeter/daydrag/internal/geom"
	"github.com/depeter/daydrag/internal/grid"
)

const (
	DefaultTriggerBand   = 25
	DefaultSnapTolerance = 0.5
)

// AutoScrollConfig tunes when a held drag scrolls the timeline.
type AutoScrollConfig struct {
	// TriggerBand is the distance from each visible edge, in viewport units,
	// inside which a drag starts scrolling.
	TriggerBand float64
	// SnapTolerance is how close a finished scroll must land to a row
	// boundary for the next step to chain.
	SnapTolerance float64
}

// Direction is the way the content scrolls during an auto-scroll step.
type Direction int

const (
	DirNone Direction = iota
	// DirUp reveals earlier rows; the normalized offset decreases.
	DirUp
	// DirDown reveals later rows; the normalized offset increases.
	DirDown
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	}
	return "none"
}

// ScrollRequest asks the host to animate the scroll position to a row.
// The host reports completion with the same Generation.
type ScrollRequest struct {
	Generation uint64
	Direction  Direction
	// Row is the index of the row that should end up at the top of the
	// visible window.
	Row int
	// Normalized is the target normalized offset, Row*RowHeight unless the
	// content end was reached first.
	Normalized float64
	// Offset is the target scroll offset in viewport space.
	Offset float64
	// Delta is Offset minus the scroll offset at the time of the request.
	Delta float64
}

// Coordinator decides when a drag held near a visible edge should scroll the
// content by one more row. At most one request is in flight at a time; the
// next one is only issued from Complete.
type Coordinator struct {
	cfg        AutoScrollConfig
	inBand     bool
	dir        Direction
	live       bool
	generation uint64
}

// NewCoordinator returns a coordinator. Zero config values take the defaults.
func NewCoordinator(cfg AutoScrollConfig) *Coordinator {
	if cfg.TriggerBand <= 0 {
		cfg.TriggerBand = DefaultTriggerBand
	}
	if cfg.SnapTolerance <= 0 {
		cfg.SnapTolerance = DefaultSnapTolerance
	}
	return &Coordinator{cfg: cfg}
}

// Config returns the effective configuration.
func (c *Coordinator) Config() AutoScrollConfig { return c.cfg }

// InBand reports whether the latest drag sample was inside a trigger band.
func (c *Coordinator) InBand() bool { return c.inBand }

// Live reports whether a scroll request is awaiting completion.
func (c *Coordinator) Live() bool { return c.live }

// Direction returns the direction of the band the pointer is in.
func (c *Coordinator) Direction() Direction { return c.dir }

// Generation returns the id of the latest request.
func (c *Coordinator) Generation() uint64 { return c.generation }

// Zone classifies viewport y against the trigger bands. Points past a
// visible edge count as inside that edge's band.
func (c *Coordinator) Zone(y float64, v geom.Viewport) Direction {
	switch {
	case y <= v.VisibleTop()+c.cfg.TriggerBand:
		return DirUp
	case y >= v.VisibleBottom()-c.cfg.TriggerBand:
		return DirDown
	}
	return DirNone
}

// Observe records a drag sample at viewport y. It reports a direction and
// true only when the pointer has just moved into a band and no request is in
// flight.
func (c *Coordinator) Observe(y float64, v geom.Viewport) (Direction, bool) {
	zone := c.Zone(y, v)
	if zone == DirNone {
		c.inBand = false
		c.dir = DirNone
		return DirNone, false
	}
	entered := !c.inBand || zone != c.dir
	c.inBand = true
	c.dir = zone
	if !entered || c.live {
		return DirNone, false
	}
	return zone, true
}

// Stop ends the chain. A request already in flight still completes but will
// not be followed by another.
func (c *Coordinator) Stop() {
	c.inBand = false
	c.dir = DirNone
}

// Plan computes the next one-row step in dir from the current viewport. It
// reports false when the content is already at that end.
func (c *Coordinator) Plan(dir Direction, v geom.Viewport, g grid.Grid) (ScrollRequest, bool) {
	n := v.NormalizedOffset()
	var target float64
	switch dir {
	case DirUp:
		target = g.RowHeight * (math.Ceil(n/g.RowHeight-c.rowEpsilon(g)) - 1)
	case DirDown:
		target = g.RowHeight * (math.Floor(n/g.RowHeight+c.rowEpsilon(g)) + 1)
	default:
		return ScrollRequest{}, false
	}
	target = geom.Clamp(target, 0, v.MaxNormalized())
	if geom.ApproxEqual(target, n, c.cfg.SnapTolerance) {
		return ScrollRequest{}, false
	}
	offset := v.OffsetForNormalized(target)
	return ScrollRequest{
		Direction:  dir,
		Row:        int(math.Round(target / g.RowHeight)),
		Normalized: target,
		Offset:     offset,
		Delta:      offset - v.ScrollOffset,
	}, true
}

// Begin marks req as in flight and stamps it with a fresh generation.
func (c *Coordinator) Begin(req ScrollRequest) ScrollRequest {
	c.generation++
	c.live = true
	req.Generation = c.generation
	return req
}

// Complete is called when the host finished animating the request with the
// given generation. It reports a direction and true when the pointer is still
// in a band and the scroll landed on a row boundary, i.e. when the next step
// should be planned. Completions of superseded requests are ignored.
func (c *Coordinator) Complete(generation uint64, v geom.Viewport, g grid.Grid) (Direction, bool) {
	if !c.live || generation != c.generation {
		return DirNone, false
	}
	c.live = false
	if !c.inBand {
		return DirNone, false
	}
	n := v.NormalizedOffset()
	if !geom.ApproxEqual(n, g.NearestBoundary(n), c.cfg.SnapTolerance) {
		return DirNone, false
	}
	return c.dir, true
}

// Reset forgets any in-flight request, e.g. after a re-layout.
func (c *Coordinator) Reset() {
	c.inBand = false
	c.dir = DirNone
	c.live = false
}

// rowEpsilon expresses the snap tolerance in rows so that an offset resting
// within tolerance of a boundary counts as on it.
func (c *Coordinator) rowEpsilon(g grid.Grid) float64 {
	if g.RowHeight <= 0 {
		return 0
	}
	return c.cfg.SnapTolerance / g.RowHeight
}
