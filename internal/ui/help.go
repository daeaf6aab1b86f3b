package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var helpLines = []string{
	"Hold the event for a second to select it, then drag without lifting.",
	"Once dropped, the event can be dragged again right away.",
	"Drag the light strips at the top or bottom edge to change its length.",
	"Hold a drag near the top or bottom edge to scroll one row at a time.",
	"Tap the rows or press Esc to deselect.",
	"Wheel or arrow keys scroll. F12 shows the debug panel, Alt+Enter toggles fullscreen.",
}

// HelpScreen lists the controls on top of the timeline.
type HelpScreen struct{}

func NewHelpScreen() *HelpScreen { return &HelpScreen{} }

func (h *HelpScreen) Name() string  { return "Help" }
func (h *HelpScreen) OnEnter()      {}
func (h *HelpScreen) OnExit()       {}
func (h *HelpScreen) Overlay() bool { return true }

func (h *HelpScreen) Update() (*ScreenTransition, error) {
	_, back := InputState()
	if back || inpututil.IsKeyJustPressed(ebiten.KeyH) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return &ScreenTransition{Type: TransitionPop}, nil
	}
	return nil, nil
}

func (h *HelpScreen) Draw(dst *ebiten.Image) {
	b := dst.Bounds()
	w, ht := float64(b.Dx()), float64(b.Dy())
	vector.DrawFilledRect(dst, 0, 0, float32(w), float32(ht), ColorOverlay, false)

	const pad = 24.0
	y := ht / 4
	DrawText(dst, "Controls", pad, y, FontSizeHeading, ColorPrimary)
	y += FontSizeHeading * 2
	for _, l := range helpLines {
		y += DrawTextWrapped(dst, l, pad, y, w-pad*2, FontSizeBody, ColorTextOnMask)
		y += FontSizeBody / 2
	}
}
