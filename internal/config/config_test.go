package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/depeter/daydrag/internal/grid"
	"github.com/depeter/daydrag/internal/timeline"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	tc := cfg.TimelineConfig()
	if tc.Grid.Height() != 1200 || tc.VisibleHeight != 700 {
		t.Errorf("got content %v visible %v; want 1200 and 700", tc.Grid.Height(), tc.VisibleHeight)
	}
	if got := cfg.LongPress(); got != time.Second {
		t.Errorf("long press %v; want 1s", got)
	}
	if g := cfg.GestureConfig(); g.LongPress != time.Second || g.Slop != 6 {
		t.Errorf("gesture config %+v", g)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Timeline.Rows != 24 {
		t.Errorf("rows %d; want 24", cfg.Timeline.Rows)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg := DefaultConfig()
	cfg.Debug = true
	cfg.Timeline.Rows = 12
	cfg.AutoScroll.TriggerBand = 40
	if err := cfg.Save(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "daydrag", "config.toml")); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if !got.Debug || got.Timeline.Rows != 12 || got.AutoScroll.TriggerBand != 40 {
		t.Errorf("got %+v; want saved values", got)
	}
}

func TestLoadFilePartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	src := `
[timeline]
row_height = 60

[input]
long_press_ms = 500
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Timeline.RowHeight != 60 || cfg.Timeline.Rows != 24 {
		t.Errorf("timeline %+v; want row height 60 with default rows", cfg.Timeline)
	}
	if got := cfg.LongPress(); got != 500*time.Millisecond {
		t.Errorf("long press %v; want 500ms", got)
	}
}

func TestLoadFileRejectsInvalid(t *testing.T) {
	for _, tc := range []struct {
		label string
		src   string
		want  error
	}{
		{"zero rows", "[timeline]\nrows = 0\n", grid.ErrInvalidGrid},
		{"visible too tall", "[timeline]\nvisible_height = 5000\n", timeline.ErrInvalidViewport},
		{"min above default", "[timeline]\nmin_height = 400\n", timeline.ErrInvalidBlock},
		{"no tps", "[input]\ntps = 0\n", ErrInvalidInput},
		{"zero window width", "[ui]\nwidth = 0\n", ErrInvalidWindow},
		{"negative window height", "[ui]\nheight = -760\n", ErrInvalidWindow},
	} {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte(tc.src), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := LoadFile(path)
		if !errors.Is(err, tc.want) {
			t.Errorf("%s: got %v; want %v", tc.label, err, tc.want)
		}
	}
}

func TestLoadFileSyntaxError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[timeline\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil || !strings.Contains(err.Error(), "parse") {
		t.Errorf("got %v; want a parse error", err)
	}
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	if err := DefaultConfig().Encode(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"[timeline]", "row_height = 50.0", "[autoscroll]", "long_press_ms = 1000"} {
		if !strings.Contains(out, want) {
			t.Errorf("encoded config lacks %q:\n%s", want, out)
		}
	}
}
