package scenario

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/depeter/daydrag/internal/timeline"
)

func TestReplayTestdata(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no scripts in testdata")
	}
	for _, f := range files {
		t.Run(filepath.Base(f), func(t *testing.T) {
			sc, err := Load(f)
			if err != nil {
				t.Fatal(err)
			}
			if _, err := Run(timeline.DefaultConfig(), sc); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestAutoScrollRequestsAreSequential(t *testing.T) {
	sc, err := Load(filepath.Join("testdata", "autoscroll_up.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	res, err := Run(timeline.DefaultConfig(), sc)
	if err != nil {
		t.Fatal(err)
	}
	for i, r := range res.Requests {
		if r.Generation != uint64(i+1) {
			t.Errorf("request %d: generation %d; want %d", i, r.Generation, i+1)
		}
		if want := 4 - i; r.Row != want {
			t.Errorf("request %d: row %d; want %d", i, r.Row, want)
		}
		if r.Direction != timeline.DirUp {
			t.Errorf("request %d: direction %v; want up", i, r.Direction)
		}
	}
}

func TestRunReportsMismatch(t *testing.T) {
	sc, err := Parse([]byte(`
name: wrong expectation
steps:
  - long_press: {x: 195, y: 450}
  - expect: {phase: dragging}
`))
	if err != nil {
		t.Fatal(err)
	}
	res, err := Run(timeline.DefaultConfig(), sc)
	if !errors.Is(err, ErrMismatch) {
		t.Fatalf("got %v; want ErrMismatch", err)
	}
	if res.Steps != 1 || res.Final.Phase != timeline.PhaseSelected {
		t.Errorf("got %+v; want the state after step 1", res)
	}
}

func TestParseRejects(t *testing.T) {
	for _, tc := range []struct {
		label string
		src   string
	}{
		{"no steps", "name: empty\n"},
		{"unknown key", "steps:\n  - long_pres: {x: 1, y: 2}\n"},
		{"two actions", "steps:\n  - tap_outside: true\n    scroll: 10\n"},
		{"bad handle", "steps:\n  - gesture: {handle: middle, phase: start}\n"},
		{"bad phase", "steps:\n  - gesture: {phase: hover}\n"},
		{"bad state", "steps:\n  - expect: {phase: flying}\n"},
	} {
		if _, err := Parse([]byte(tc.src)); err == nil {
			t.Errorf("%s: parsed without error", tc.label)
		}
	}
	if _, err := Parse([]byte("name: empty\n")); !errors.Is(err, ErrEmptyScript) {
		t.Errorf("got %v; want ErrEmptyScript", err)
	}
}

func TestScrollerStepsTowardsTarget(t *testing.T) {
	tl, err := timeline.New(timeline.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	s := NewScroller(tl, 0)
	if s.steps != DefaultAnimSteps {
		t.Errorf("steps %d; want %d", s.steps, DefaultAnimSteps)
	}
	tl.SetScrollOffset(0)
	s.Request(timeline.ScrollRequest{Generation: 7, Offset: 50})
	s.Drain()
	if got := tl.Viewport().ScrollOffset; got != 50 {
		t.Errorf("offset %v; want 50", got)
	}
	if len(s.pending) != 0 || len(s.Requests()) != 1 {
		t.Errorf("pending %d seen %d; want 0 and 1", len(s.pending), len(s.Requests()))
	}
}
