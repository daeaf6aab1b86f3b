// Package term hosts the timeline in a terminal with tview, using mouse
// reporting for presses, drags and the wheel.
package term

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/depeter/daydrag/internal/config"
	"github.com/depeter/daydrag/internal/geom"
	"github.com/depeter/daydrag/internal/timeline"
)

const controlsText = "hold: select   drag: move   edges: resize   esc: deselect   ↑/↓: scroll   b: bands   d: debug log   q: quit"

// frameRate paces long-press detection and scroll animation.
const frameRate = 30

type UI struct {
	app      *tview.Application
	view     *TimelineView
	status   *tview.TextView
	controls *tview.TextView
	root     tview.Primitive

	debug bool
	stop  chan struct{}
	once  sync.Once
}

// New builds the terminal UI for cfg. The timeline frame uses the configured
// width; lines map to timeline units at a fixed scale.
func New(cfg *config.Config) (*UI, error) {
	tl, err := timeline.New(cfg.TimelineConfig())
	if err != nil {
		return nil, fmt.Errorf("timeline: %w", err)
	}
	tl.SetFrame(geom.Rect{W: cfg.Timeline.Width, H: tl.Grid().Height()})

	u := &UI{
		app:   tview.NewApplication(),
		view:  NewTimelineView(tl, cfg.GestureConfig(), cfg.AutoScroll.AnimSpeed),
		debug: cfg.Debug,
		stop:  make(chan struct{}),
	}
	u.view.SetBorder(false)

	u.status = tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignLeft)
	u.controls = tview.NewTextView().SetTextAlign(tview.AlignCenter).SetText(controlsText)
	headerRule := tview.NewTextView().SetDynamicColors(true)
	headerRule.SetText("[orange]" + strings.Repeat("─", 200))

	visibleLines := int(cfg.Timeline.VisibleHeight / DefaultUnit)
	u.root = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(u.status, 1, 0, false).
		AddItem(headerRule, 1, 0, false).
		AddItem(u.view, visibleLines, 0, true).
		AddItem(u.controls, 1, 0, false).
		AddItem(tview.NewBox(), 0, 1, false)

	u.app.SetInputCapture(u.handleKey)
	u.updateStatus()
	return u, nil
}

func (u *UI) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape:
		u.view.Dismiss()
	case tcell.KeyUp:
		u.view.ScrollRows(1)
	case tcell.KeyDown:
		u.view.ScrollRows(-1)
	case tcell.KeyCtrlC:
		u.Stop()
		return nil
	case tcell.KeyRune:
		switch event.Rune() {
		case 'q':
			u.Stop()
		case 'b':
			u.view.ToggleBands()
		case 'd':
			u.debug = !u.debug
			timeline.SetDebug(u.debug)
		default:
			return event
		}
	default:
		return event
	}
	u.updateStatus()
	return nil
}

func (u *UI) updateStatus() {
	u.status.SetText("[::b]Today[::-]  " + u.view.Status())
}

// Run starts the event loop and the animation ticker. It blocks until the
// user quits.
func (u *UI) Run() error {
	go u.animate()
	defer u.Stop()
	return u.app.SetRoot(u.root, true).EnableMouse(true).SetFocus(u.view).Run()
}

// Stop ends the event loop.
func (u *UI) Stop() {
	u.once.Do(func() {
		close(u.stop)
		u.app.Stop()
	})
}

// tick runs on the event goroutine, like the mouse and key handlers, so the
// timeline has a single writer.
func (u *UI) tick() {
	u.view.Tick()
	u.updateStatus()
}

func (u *UI) animate() {
	t := time.NewTicker(time.Second / frameRate)
	defer t.Stop()
	for {
		select {
		case <-u.stop:
			return
		case <-t.C:
			u.app.QueueUpdateDraw(u.tick)
		}
	}
}
