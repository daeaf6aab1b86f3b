package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunCLIFallsThrough(t *testing.T) {
	for _, args := range [][]string{nil, {"-fullscreen"}, {"unknown"}} {
		if handled, _ := runCLI(args); handled {
			t.Errorf("%v: handled; want the window to open", args)
		}
	}
}

func TestCLIReplay(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "none.toml")
	var out bytes.Buffer
	code := cliReplay([]string{"-config", missing, "../../internal/scenario/testdata/drag_snap.yaml"}, &out)
	if code != 0 {
		t.Fatalf("exit %d; output:\n%s", code, out.String())
	}
	if !strings.HasPrefix(out.String(), "ok ") {
		t.Errorf("got %q; want an ok line", out.String())
	}
}

func TestCLIReplayFailure(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "bad.yaml")
	src := `name: bad
steps:
  - long_press: {x: 195, y: 450}
  - expect: {phase: idle}
`
	if err := os.WriteFile(script, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if code := cliReplay([]string{"-config", filepath.Join(dir, "none.toml"), script}, &out); code != 1 {
		t.Errorf("exit %d; want 1", code)
	}
	if !strings.Contains(out.String(), "FAIL bad: step 2") {
		t.Errorf("got %q; want a step failure", out.String())
	}
}

func TestCLIReplayNeedsScript(t *testing.T) {
	if code := cliReplay(nil, &bytes.Buffer{}); code != 2 {
		t.Errorf("exit %d; want 2", code)
	}
}

func TestCLIConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	var out bytes.Buffer
	if code := cliConfig(nil, &out); code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(out.String(), "[timeline]") {
		t.Errorf("got %q; want TOML", out.String())
	}
}

func TestPrintHelp(t *testing.T) {
	var out bytes.Buffer
	printHelp(&out)
	for _, sub := range []string{"term", "replay", "config"} {
		if !strings.Contains(out.String(), sub) {
			t.Errorf("help lacks %q", sub)
		}
	}
}
