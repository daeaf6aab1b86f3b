package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/daydrag/internal/geom"
)

// Direction represents a keyboard scroll direction.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
)

// IsModifierPressed reports whether any modifier key (Alt, Ctrl, Shift, Meta) is held.
func IsModifierPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyAlt) ||
		ebiten.IsKeyPressed(ebiten.KeyControl) ||
		ebiten.IsKeyPressed(ebiten.KeyShift) ||
		ebiten.IsKeyPressed(ebiten.KeyMeta)
}

// InputState returns the arrow direction (with key repeat) and whether Escape
// was pressed this frame.
func InputState() (dir Direction, back bool) {
	if inputRepeating(ebiten.KeyArrowUp) {
		dir = DirUp
	} else if inputRepeating(ebiten.KeyArrowDown) {
		dir = DirDown
	}
	back = inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButton3)
	return
}

// UpdateInputState must be called at the end of each Update() to track key state.
func UpdateInputState() {
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if ebiten.IsKeyPressed(k) {
			keyHoldFrames[k]++
		} else {
			delete(keyHoldFrames, k)
		}
	}
}

var keyHoldFrames = make(map[ebiten.Key]int)

const (
	repeatDelay    = 18 // frames before repeat starts (~300ms at 60fps)
	repeatInterval = 4  // frames between repeats (~67ms at 60fps)
)

func inputRepeating(key ebiten.Key) bool {
	if !ebiten.IsKeyPressed(key) {
		return false
	}
	frames, held := keyHoldFrames[key]
	if !held || frames == 0 {
		return true // just pressed this frame
	}
	return frames >= repeatDelay && (frames-repeatDelay)%repeatInterval == 0
}

// Pointer is the state of the primary pointer for one frame. The first
// active touch wins over the mouse.
type Pointer struct {
	Pos          geom.Point
	Down         bool
	JustPressed  bool
	JustReleased bool
}

var (
	trackedTouch ebiten.TouchID = -1
	lastTouchPos geom.Point
)

// ReadPointer samples the mouse or the tracked touch.
func ReadPointer() Pointer {
	if trackedTouch < 0 {
		for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
			trackedTouch = id
			x, y := ebiten.TouchPosition(id)
			lastTouchPos = geom.Pt(float64(x), float64(y))
			return Pointer{Pos: lastTouchPos, Down: true, JustPressed: true}
		}
	} else {
		if inpututil.IsTouchJustReleased(trackedTouch) {
			trackedTouch = -1
			return Pointer{Pos: lastTouchPos, JustReleased: true}
		}
		x, y := ebiten.TouchPosition(trackedTouch)
		lastTouchPos = geom.Pt(float64(x), float64(y))
		return Pointer{Pos: lastTouchPos, Down: true}
	}

	x, y := ebiten.CursorPosition()
	return Pointer{
		Pos:          geom.Pt(float64(x), float64(y)),
		Down:         ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}
}

// MouseWheelDelta returns the mouse wheel scroll delta.
func MouseWheelDelta() (dx, dy float64) {
	return ebiten.Wheel()
}
