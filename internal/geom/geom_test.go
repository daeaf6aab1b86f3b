package geom

import (
	"math"
	"testing"
)

func TestPointInRect(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 50}
	for _, tc := range []struct {
		p    Point
		want bool
	}{
		{Pt(10, 20), true},
		{Pt(110, 70), true},
		{Pt(60, 45), true},
		{Pt(9.99, 45), false},
		{Pt(60, 70.01), false},
	} {
		if got := PointInRect(tc.p, r); got != tc.want {
			t.Errorf("PointInRect(%v) = %v; want %v", tc.p, got, tc.want)
		}
	}
}

func TestRectInRect(t *testing.T) {
	outer := Rect{W: 100, H: 100}
	for _, tc := range []struct {
		label string
		inner Rect
		want  bool
	}{
		{"same", outer, true},
		{"inside", Rect{X: 10, Y: 10, W: 20, H: 20}, true},
		{"touching bottom", Rect{X: 0, Y: 50, W: 100, H: 50}, true},
		{"past bottom", Rect{X: 0, Y: 51, W: 100, H: 50}, false},
		{"past left", Rect{X: -1, Y: 0, W: 10, H: 10}, false},
	} {
		if got := RectInRect(tc.inner, outer); got != tc.want {
			t.Errorf("%s: got %v; want %v", tc.label, got, tc.want)
		}
	}
}

func TestRectFromCenter(t *testing.T) {
	r := RectFromCenter(Pt(50, 400), 100, 200)
	if want := (Rect{X: 0, Y: 300, W: 100, H: 200}); r != want {
		t.Errorf("got %v; want %v", r, want)
	}
	if c := r.Center(); c != Pt(50, 400) {
		t.Errorf("center %v; want (50,400)", c)
	}
}

func TestClampPointToRect(t *testing.T) {
	r := Rect{X: 0, Y: 100, W: 300, H: 1000}
	for _, tc := range []struct {
		in, want Point
	}{
		{Pt(150, 500), Pt(150, 500)},
		{Pt(-20, 500), Pt(0, 500)},
		{Pt(400, 50), Pt(300, 100)},
		{Pt(10, 2000), Pt(10, 1100)},
	} {
		if got := ClampPointToRect(tc.in, r); got != tc.want {
			t.Errorf("ClampPointToRect(%v) = %v; want %v", tc.in, got, tc.want)
		}
	}
}

func TestNearestGridLine(t *testing.T) {
	for _, tc := range []struct {
		v, spacing, want float64
	}{
		{287, 50, 300},
		{274, 50, 250},
		{275, 50, 300},
		{280, 50, 300},
		{24.9, 50, 0},
		{0, 50, 0},
		{-26, 50, -50},
		{-25, 50, 0},
		{7, 0, 7},
	} {
		if got := NearestGridLine(tc.v, tc.spacing); got != tc.want {
			t.Errorf("NearestGridLine(%v, %v) = %v; want %v", tc.v, tc.spacing, got, tc.want)
		}
	}
}

func TestDistance(t *testing.T) {
	if got := Distance(Pt(0, 0), Pt(3, 4)); got != 5 {
		t.Errorf("got %v; want 5", got)
	}
	if got := Distance(Pt(1, 1), Pt(1, 1)); got != 0 {
		t.Errorf("got %v; want 0", got)
	}
}

func TestClampPrefersLowerBoundWhenInverted(t *testing.T) {
	if got := Clamp(5, 10, 0); got != 10 {
		t.Errorf("got %v; want 10", got)
	}
}

func TestViewportNormalizedOffset(t *testing.T) {
	v := Viewport{ContentHeight: 1200, VisibleHeight: 700}
	if got := v.NormalizedOffset(); got != 250 {
		t.Errorf("offset 0: got %v; want 250", got)
	}
	v.ScrollOffset = -50
	if got := v.NormalizedOffset(); got != 300 {
		t.Errorf("offset -50: got %v; want 300", got)
	}
	v.ScrollOffset = v.Margin()
	if got := v.NormalizedOffset(); got != 0 {
		t.Errorf("rest: got %v; want 0", got)
	}
	if got := v.OffsetForNormalized(300); got != -50 {
		t.Errorf("inverse: got %v; want -50", got)
	}
	if got := v.MaxNormalized(); got != 500 {
		t.Errorf("max: got %v; want 500", got)
	}
}

func TestViewportTransforms(t *testing.T) {
	v := Viewport{ContentHeight: 1200, VisibleHeight: 700, ScrollOffset: 150}
	p := Pt(40, 320)
	c := v.ToContent(p)
	if c != Pt(40, 170) {
		t.Errorf("ToContent = %v; want (40,170)", c)
	}
	if back := v.ToViewport(c); back != p {
		t.Errorf("round trip = %v; want %v", back, p)
	}
	if !v.InVisibleBand(250) || !v.InVisibleBand(950) || v.InVisibleBand(951) {
		t.Error("visible band should be [250, 950]")
	}
	if got := v.RectToViewport(Rect{Y: 10, H: 5}).Y; math.Abs(got-160) > 1e-9 {
		t.Errorf("RectToViewport y = %v; want 160", got)
	}
}
