package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var debugOverlayVisible bool

// ToggleDebugOverlay toggles the debug overlay on F12.
func ToggleDebugOverlay() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		debugOverlayVisible = !debugOverlayVisible
	}
}

// DebugOverlayVisible reports whether the overlay is shown.
func DebugOverlayVisible() bool { return debugOverlayVisible }

// DrawDebugOverlay draws lines in a panel at the bottom right if the overlay
// is visible.
func DrawDebugOverlay(screen *ebiten.Image, lines []string) {
	if !debugOverlayVisible {
		return
	}

	const (
		padX    = 10.0
		padY    = 8.0
		lineH   = 16.0
		marginR = 8.0
		marginB = FooterHeight + 8.0
	)

	panelW := 0.0
	for _, l := range lines {
		if w, _ := MeasureText(l, FontSizeSmall); w > panelW {
			panelW = w
		}
	}
	panelW += padX * 2
	panelH := float64(len(lines)+1)*lineH + padY*2
	b := screen.Bounds()
	px := float64(b.Dx()) - panelW - marginR
	py := float64(b.Dy()) - panelH - marginB

	vector.DrawFilledRect(screen, float32(px), float32(py), float32(panelW), float32(panelH), ColorOverlay, false)

	x := px + padX
	y := py + padY
	DrawText(screen, "Debug (F12 to close)", x, y, FontSizeSmall, ColorPrimary)
	y += lineH
	for _, l := range lines {
		DrawText(screen, l, x, y, FontSizeSmall, ColorTextOnMask)
		y += lineH
	}
}
