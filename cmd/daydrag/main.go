package main

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/daydrag/assets/icon"
	"github.com/depeter/daydrag/internal/app"
	"github.com/depeter/daydrag/internal/config"
	"github.com/depeter/daydrag/internal/timeline"
	"github.com/depeter/daydrag/internal/ui"
)

func main() {
	if handled, code := runCLI(os.Args[1:]); handled {
		os.Exit(code)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	timeline.SetDebug(cfg.Debug)

	if err := ui.InitFonts(nil); err != nil {
		log.Fatalf("Failed to init fonts: %v", err)
	}

	game, err := app.NewGame(cfg)
	if err != nil {
		log.Fatalf("Failed to create timeline: %v", err)
	}

	// Configure window
	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle("DayDrag")
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Input.TPS)
	ebiten.SetFullscreen(cfg.UI.Fullscreen)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
