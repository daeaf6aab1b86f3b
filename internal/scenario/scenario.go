// Package scenario replays scripted gestures against a timeline without a
// display. Scripts are YAML documents listing host events and expectations.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/depeter/daydrag/internal/timeline"
)

var ErrEmptyScript = errors.New("scenario: script has no steps")

// Script is one replayable gesture session.
type Script struct {
	Name  string `yaml:"name"`
	Frame Frame  `yaml:"frame"`
	// Scroll is the scroll offset applied right after the frame is set. Nil
	// keeps the resting offset.
	Scroll *float64 `yaml:"scroll,omitempty"`
	// AnimSteps is the number of offsets the synchronous scroller reports
	// for every scroll request.
	AnimSteps int    `yaml:"anim_steps,omitempty"`
	Steps     []Step `yaml:"steps"`
}

type Frame struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Step holds exactly one event or expectation.
type Step struct {
	LongPress  *Point   `yaml:"long_press,omitempty"`
	Tap        *Point   `yaml:"tap,omitempty"`
	TapOutside bool     `yaml:"tap_outside,omitempty"`
	Gesture    *Gesture `yaml:"gesture,omitempty"`
	Scroll     *float64 `yaml:"scroll,omitempty"`
	Expect     *Expect  `yaml:"expect,omitempty"`
	Note       string   `yaml:"note,omitempty"`
}

// Gesture is one pointer sample. The translation is derived from the location
// where the gesture started.
type Gesture struct {
	// Handle is body, top, bottom or empty to hit-test at the start location.
	Handle string  `yaml:"handle,omitempty"`
	Phase  string  `yaml:"phase"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
}

// Expect checks the timeline after the preceding steps. Unset fields are not
// checked.
type Expect struct {
	Phase    string   `yaml:"phase,omitempty"`
	Armed    *bool    `yaml:"armed,omitempty"`
	Selected *bool    `yaml:"selected,omitempty"`
	X        *float64 `yaml:"x,omitempty"`
	Y        *float64 `yaml:"y,omitempty"`
	Height   *float64 `yaml:"height,omitempty"`
	Top      *float64 `yaml:"top,omitempty"`
	Offset   *float64 `yaml:"offset,omitempty"`
	Requests *int     `yaml:"requests,omitempty"`
}

// Load reads a script from a YAML file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a script. Unknown keys are rejected so typos do not silently
// drop steps.
func Parse(data []byte) (*Script, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var s Script
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, ErrEmptyScript
	}
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &s, nil
}

func (st Step) validate() error {
	n := 0
	if st.LongPress != nil {
		n++
	}
	if st.Tap != nil {
		n++
	}
	if st.TapOutside {
		n++
	}
	if st.Gesture != nil {
		n++
		if _, err := parseHandle(st.Gesture.Handle); err != nil {
			return err
		}
		if _, err := parsePhase(st.Gesture.Phase); err != nil {
			return err
		}
	}
	if st.Scroll != nil {
		n++
	}
	if st.Expect != nil {
		n++
		if st.Expect.Phase != "" {
			if _, err := parseStatePhase(st.Expect.Phase); err != nil {
				return err
			}
		}
	}
	if n == 0 && st.Note != "" {
		return nil
	}
	if n != 1 {
		return fmt.Errorf("want exactly one action, got %d", n)
	}
	return nil
}

func parseHandle(s string) (timeline.Handle, error) {
	switch strings.ToLower(s) {
	case "":
		return timeline.HandleNone, nil
	case "body":
		return timeline.HandleBody, nil
	case "top":
		return timeline.HandleTop, nil
	case "bottom":
		return timeline.HandleBottom, nil
	}
	return timeline.HandleNone, fmt.Errorf("unknown handle %q", s)
}

func parsePhase(s string) (timeline.GesturePhase, error) {
	switch strings.ToLower(s) {
	case "start", "started":
		return timeline.GestureStarted, nil
	case "move", "changed":
		return timeline.GestureChanged, nil
	case "end", "ended":
		return timeline.GestureEnded, nil
	}
	return 0, fmt.Errorf("unknown gesture phase %q", s)
}

func parseStatePhase(s string) (timeline.Phase, error) {
	for p := timeline.PhaseIdle; p <= timeline.PhaseStretchingBottom; p++ {
		if p.String() == strings.ToLower(s) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown phase %q", s)
}
