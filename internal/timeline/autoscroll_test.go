package timeline

import (
	"testing"

	"github.com/depeter/daydrag/internal/geom"
	"github.com/depeter/daydrag/internal/grid"
)

func TestCoordinatorDefaults(t *testing.T) {
	c := NewCoordinator(AutoScrollConfig{})
	if got := c.Config(); got.TriggerBand != DefaultTriggerBand || got.SnapTolerance != DefaultSnapTolerance {
		t.Errorf("got %+v; want defaults", got)
	}
}

func TestCoordinatorZone(t *testing.T) {
	c := NewCoordinator(AutoScrollConfig{TriggerBand: 25})
	v := geom.Viewport{ContentHeight: 1200, VisibleHeight: 700}
	for _, tc := range []struct {
		y    float64
		want Direction
	}{
		{100, DirUp},
		{250, DirUp},
		{275, DirUp},
		{276, DirNone},
		{600, DirNone},
		{924, DirNone},
		{925, DirDown},
		{1100, DirDown},
	} {
		if got := c.Zone(tc.y, v); got != tc.want {
			t.Errorf("Zone(%v) = %v; want %v", tc.y, got, tc.want)
		}
	}
}

func TestCoordinatorObserveIsEdgeTriggered(t *testing.T) {
	c := NewCoordinator(AutoScrollConfig{})
	v := geom.Viewport{ContentHeight: 1200, VisibleHeight: 700}
	if _, fire := c.Observe(600, v); fire {
		t.Fatal("fired outside the band")
	}
	if dir, fire := c.Observe(270, v); !fire || dir != DirUp {
		t.Fatalf("entering band: got %v, %v; want up, true", dir, fire)
	}
	if _, fire := c.Observe(268, v); fire {
		t.Error("fired again while staying in the band")
	}
	c.Observe(600, v)
	if c.InBand() {
		t.Error("still in band after leaving")
	}
	if dir, fire := c.Observe(930, v); !fire || dir != DirDown {
		t.Errorf("entering bottom band: got %v, %v; want down, true", dir, fire)
	}
}

func TestCoordinatorSingleLiveRequest(t *testing.T) {
	g := grid.New(24, 50)
	c := NewCoordinator(AutoScrollConfig{})
	v := geom.Viewport{ContentHeight: 1200, VisibleHeight: 700, ScrollOffset: 0}

	dir, _ := c.Observe(270, v)
	req, ok := c.Plan(dir, v, g)
	if !ok {
		t.Fatal("no plan")
	}
	req = c.Begin(req)

	// Leave and re-enter while the first step is still animating.
	c.Observe(600, v)
	if _, fire := c.Observe(270, v); fire {
		t.Fatal("fired while a request was live")
	}

	v.ScrollOffset = req.Offset
	if _, again := c.Complete(req.Generation+1, v, g); again {
		t.Fatal("stale generation accepted")
	}
	if dir, again := c.Complete(req.Generation, v, g); !again || dir != DirUp {
		t.Errorf("completion: got %v, %v; want up, true", dir, again)
	}
	if c.Live() {
		t.Error("still live after completion")
	}
}

func TestCoordinatorCompleteOffRow(t *testing.T) {
	g := grid.New(24, 50)
	c := NewCoordinator(AutoScrollConfig{})
	v := geom.Viewport{ContentHeight: 1200, VisibleHeight: 700, ScrollOffset: 0}
	c.Observe(270, v)
	req := c.Begin(ScrollRequest{})
	v.ScrollOffset = 10.6
	if _, again := c.Complete(req.Generation, v, g); again {
		t.Error("chained although the scroll did not land on a row")
	}
}

func TestCoordinatorPlan(t *testing.T) {
	g := grid.New(24, 50)
	c := NewCoordinator(AutoScrollConfig{})
	for _, tc := range []struct {
		label      string
		normalized float64
		dir        Direction
		want       float64
		ok         bool
	}{
		{"up from row", 250, DirUp, 200, true},
		{"up from mid row", 230, DirUp, 200, true},
		{"up near row", 250.3, DirUp, 200, true},
		{"down from row", 250, DirDown, 300, true},
		{"down from mid row", 230, DirDown, 250, true},
		{"up at top", 0, DirUp, 0, false},
		{"down at bottom", 500, DirDown, 0, false},
		{"down clamps to end", 480, DirDown, 500, true},
		{"no direction", 250, DirNone, 0, false},
	} {
		v := geom.Viewport{ContentHeight: 1200, VisibleHeight: 700}
		v.ScrollOffset = v.OffsetForNormalized(tc.normalized)
		req, ok := c.Plan(tc.dir, v, g)
		if ok != tc.ok {
			t.Errorf("%s: ok = %v; want %v", tc.label, ok, tc.ok)
			continue
		}
		if !ok {
			continue
		}
		if req.Normalized != tc.want {
			t.Errorf("%s: target %v; want %v", tc.label, req.Normalized, tc.want)
		}
		if got := v.OffsetForNormalized(tc.want); req.Offset != got {
			t.Errorf("%s: offset %v; want %v", tc.label, req.Offset, got)
		}
		if req.Delta != req.Offset-v.ScrollOffset {
			t.Errorf("%s: delta %v inconsistent", tc.label, req.Delta)
		}
	}
}
