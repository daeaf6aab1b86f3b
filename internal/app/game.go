package app

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/daydrag/internal/config"
	"github.com/depeter/daydrag/internal/timeline"
	"github.com/depeter/daydrag/internal/ui"
)

// Game implements ebiten.Game and manages the overall application.
type Game struct {
	Config  *config.Config
	Screens *ui.ScreenManager

	Width, Height int

	debugLog bool
}

// NewGame creates the Game with the timeline screen on top.
func NewGame(cfg *config.Config) (*Game, error) {
	screen, err := ui.NewTimelineScreen(cfg)
	if err != nil {
		return nil, err
	}
	g := &Game{
		Config:   cfg,
		Screens:  ui.NewScreenManager(),
		Width:    cfg.UI.Width,
		Height:   cfg.UI.Height,
		debugLog: cfg.Debug,
	}
	g.Screens.Push(screen)
	return g, nil
}

func (g *Game) Update() error {
	// Alt+Enter toggles fullscreen, as does the configured key
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt) ||
		keyJustPressed(g.Config.Keys.Fullscreen) && !ui.IsModifierPressed() {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	// F12 toggles debug overlay
	ui.ToggleDebugOverlay()

	if keyJustPressed(g.Config.Keys.DebugLog) {
		g.debugLog = !g.debugLog
		timeline.SetDebug(g.debugLog)
		log.Printf("Transition logging: %v", g.debugLog)
	}

	if err := g.Screens.Update(); err != nil {
		return err
	}

	ui.UpdateInputState()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ui.ColorBackground)
	g.Screens.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Width, g.Height
}
