package gesture

import (
	"testing"
	"time"

	"github.com/depeter/daydrag/internal/geom"
)

func kinds(events []Event) []Kind {
	var out []Kind
	for _, e := range events {
		out = append(out, e.Kind)
	}
	return out
}

func equalKinds(a, b []Kind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRecognizerTap(t *testing.T) {
	r := NewRecognizer(Config{})
	r.Press(geom.Pt(10, 10), 0)
	r.Move(geom.Pt(13, 12), 10*time.Millisecond)
	got := kinds(r.Release(geom.Pt(13, 12), 20*time.Millisecond))
	if want := []Kind{Tap}; !equalKinds(got, want) {
		t.Errorf("got %v; want %v", got, want)
	}
	if r.Down() {
		t.Error("still down after release")
	}
}

func TestRecognizerDragPastSlop(t *testing.T) {
	r := NewRecognizer(Config{Slop: 5})
	r.Press(geom.Pt(0, 0), 0)
	if ev := r.Move(geom.Pt(0, 5), time.Millisecond); len(ev) != 0 {
		t.Fatalf("got %v within slop; want nothing", kinds(ev))
	}
	ev := r.Move(geom.Pt(0, 6), 2*time.Millisecond)
	if len(ev) != 1 || ev[0].Kind != DragStart || ev[0].Start != geom.Pt(0, 0) {
		t.Fatalf("got %+v; want a drag start from the press point", ev)
	}
	ev = r.Move(geom.Pt(0, 20), 3*time.Millisecond)
	if len(ev) != 1 || ev[0].Kind != DragMove || ev[0].Translation() != (geom.Vec{DY: 20}) {
		t.Fatalf("got %+v; want a drag move translated by 20", ev)
	}
	if ev := r.Tick(5 * time.Second); len(ev) != 0 {
		t.Errorf("long press fired during a drag")
	}
	got := kinds(r.Release(geom.Pt(0, 20), 4*time.Millisecond))
	if want := []Kind{Release}; !equalKinds(got, want) {
		t.Errorf("got %v; want %v", got, want)
	}
}

func TestRecognizerLongPress(t *testing.T) {
	r := NewRecognizer(Config{LongPress: 500 * time.Millisecond})
	r.Press(geom.Pt(5, 5), time.Second)
	if ev := r.Tick(1400 * time.Millisecond); len(ev) != 0 {
		t.Fatal("long press fired early")
	}
	ev := r.Tick(1500 * time.Millisecond)
	if len(ev) != 1 || ev[0].Kind != LongPress {
		t.Fatalf("got %v; want a long press", kinds(ev))
	}
	if ev := r.Tick(3 * time.Second); len(ev) != 0 {
		t.Error("long press fired twice")
	}
	if got := r.Held(2 * time.Second); got != time.Second {
		t.Errorf("held %v; want 1s", got)
	}

	// After a long press any movement drags.
	ev = r.Move(geom.Pt(5, 6), 2*time.Second)
	if len(ev) != 1 || ev[0].Kind != DragStart {
		t.Errorf("got %v; want a drag start", kinds(ev))
	}
}

func TestRecognizerLongPressRelease(t *testing.T) {
	r := NewRecognizer(Config{})
	r.Press(geom.Pt(5, 5), 0)
	r.Tick(time.Second)
	got := kinds(r.Release(geom.Pt(5, 5), 2*time.Second))
	if want := []Kind{Release}; !equalKinds(got, want) {
		t.Errorf("got %v; want %v", got, want)
	}
}

func TestRecognizerReleaseBeyondSlop(t *testing.T) {
	r := NewRecognizer(Config{})
	r.Press(geom.Pt(0, 0), 0)
	got := kinds(r.Release(geom.Pt(0, 30), time.Millisecond))
	if want := []Kind{DragStart, Release}; !equalKinds(got, want) {
		t.Errorf("got %v; want %v", got, want)
	}
}

func TestRecognizerIgnoresUnpressed(t *testing.T) {
	r := NewRecognizer(Config{})
	if ev := r.Move(geom.Pt(1, 1), 0); ev != nil {
		t.Errorf("move without press: %v", kinds(ev))
	}
	if ev := r.Release(geom.Pt(1, 1), 0); ev != nil {
		t.Errorf("release without press: %v", kinds(ev))
	}
	r.Press(geom.Pt(0, 0), 0)
	r.Cancel()
	if ev := r.Tick(time.Hour); ev != nil {
		t.Errorf("tick after cancel: %v", kinds(ev))
	}
}
