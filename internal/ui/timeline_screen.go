package ui

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/daydrag/internal/config"
	"github.com/depeter/daydrag/internal/geom"
	"github.com/depeter/daydrag/internal/gesture"
	"github.com/depeter/daydrag/internal/timeline"
)

// TimelineScreen shows the rows and the draggable block. Only the visible
// window of the timeline's viewport is on screen, between a header and a
// footer that mask whatever lies beyond it.
type TimelineScreen struct {
	tl     *timeline.Timeline
	driver *gesture.Driver
	scroll *ScrollState

	width, height float64
	frameW        float64
	tps           int
	tick          int64

	lastEvent   gesture.Kind
	lastRequest timeline.ScrollRequest
}

func NewTimelineScreen(cfg *config.Config) (*TimelineScreen, error) {
	tl, err := timeline.New(cfg.TimelineConfig())
	if err != nil {
		return nil, fmt.Errorf("timeline: %w", err)
	}
	s := &TimelineScreen{
		tl:     tl,
		width:  float64(cfg.UI.Width),
		height: float64(cfg.UI.Height),
		frameW: cfg.Timeline.Width,
		tps:    cfg.Input.TPS,
	}
	v := tl.Viewport()
	s.scroll = NewScrollState(v.ScrollOffset, v.OffsetForNormalized(v.MaxNormalized()), v.Margin(), cfg.AutoScroll.AnimSpeed)
	tl.OnScrollRequest = func(req timeline.ScrollRequest) {
		s.lastRequest = req
		s.scroll.Follow(req)
	}
	s.driver = gesture.NewDriver(tl, cfg.GestureConfig())
	s.driver.OnPan = s.scroll.Jump
	s.driver.Trace = func(ev gesture.Event) { s.lastEvent = ev.Kind }
	return s, nil
}

func (s *TimelineScreen) Name() string { return "Timeline" }

// OnEnter records the container frame; the window size is fixed by then.
func (s *TimelineScreen) OnEnter() {
	if s.tl.Ready() {
		return
	}
	left := (s.width - s.frameW) / 2
	s.tl.SetFrame(geom.Rect{X: left, W: s.frameW, H: s.tl.Grid().Height()})
	s.scroll.Reset(s.tl.Viewport().ScrollOffset)
}

func (s *TimelineScreen) OnExit() {
	s.driver.Recognizer().Cancel()
}

// Timeline returns the interaction core driven by this screen.
func (s *TimelineScreen) Timeline() *timeline.Timeline { return s.tl }

func (s *TimelineScreen) Update() (*ScreenTransition, error) {
	s.tick++
	now := time.Duration(s.tick) * time.Second / time.Duration(s.tps)

	p := ReadPointer()
	vp := s.toViewport(p.Pos)
	switch {
	case p.JustPressed:
		s.driver.Press(vp, now)
	case p.JustReleased:
		s.driver.Release(vp, now)
	case p.Down:
		s.driver.Move(vp, now)
	}
	s.driver.Tick(now)

	dir, back := InputState()
	if back {
		s.tl.TapOutside()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		return &ScreenTransition{Type: TransitionPush, Screen: NewHelpScreen()}, nil
	}
	if !s.tl.State().Active() && !s.driver.Panning() {
		_, wy := MouseWheelDelta()
		s.scroll.ScrollBy(wy * ScrollWheelSpeed)
		switch dir {
		case DirUp:
			s.scroll.ScrollBy(s.tl.Grid().RowHeight)
		case DirDown:
			s.scroll.ScrollBy(-s.tl.Grid().RowHeight)
		}
	}

	gen, settled := s.scroll.Animate()
	if s.scroll.ScrollY != s.tl.Viewport().ScrollOffset {
		s.tl.SetScrollOffset(s.scroll.ScrollY)
	}
	if settled {
		s.tl.ScrollFinished(gen)
	}
	return nil, nil
}

// toViewport maps a screen point into the timeline's viewport space.
func (s *TimelineScreen) toViewport(p geom.Point) geom.Point {
	return geom.Pt(p.X, p.Y+s.tl.Viewport().Margin()-HeaderHeight)
}

func (s *TimelineScreen) toScreenY(viewportY float64) float32 {
	return float32(viewportY - s.tl.Viewport().Margin() + HeaderHeight)
}

func (s *TimelineScreen) Draw(dst *ebiten.Image) {
	dst.Fill(ColorBackground)
	frame := s.tl.Frame()
	g := s.tl.Grid()
	off := s.tl.Viewport().ScrollOffset

	for i := 0; i < g.Rows; i++ {
		y := s.toScreenY(float64(i)*g.RowHeight + off)
		if y > float32(s.height) || y+float32(g.RowHeight) < 0 {
			continue
		}
		vector.DrawFilledRect(dst, float32(frame.X), y, float32(frame.W), float32(g.RowHeight), ColorRow, false)
		vector.StrokeRect(dst, float32(frame.X), y, float32(frame.W), float32(g.RowHeight), RuleWidth, ColorRowRule, false)
		DrawText(dst, fmt.Sprintf("Row %d", i), frame.X+RowLabelPad, float64(y)+(g.RowHeight-FontSizeBody)/2, FontSizeBody, ColorText)
	}

	if DebugOverlayVisible() {
		s.drawTriggerBands(dst, frame)
	}
	if s.tl.Ready() {
		s.drawBlock(dst)
	}
	s.drawMasks(dst)
	DrawDebugOverlay(dst, s.debugLines())
}

func (s *TimelineScreen) drawBlock(dst *ebiten.Image) {
	r := s.tl.BlockRect()
	y := s.toScreenY(r.Y)
	clr := ColorBlockIdle
	if s.tl.Selected() {
		clr = ColorBlock
	}
	vector.DrawFilledRect(dst, float32(r.X), y, float32(r.W), float32(r.H), clr, true)

	if s.tl.Selected() {
		hh := float32(s.tl.Config().HandleHeight)
		hw := float32(r.W) - 2*HandleInset
		vector.DrawFilledRect(dst, float32(r.X)+HandleInset, y, hw, hh, ColorHandle, false)
		vector.DrawFilledRect(dst, float32(r.X)+HandleInset, y+float32(r.H)-hh, hw, hh, ColorHandle, false)
	}

	b := s.tl.Block()
	g := s.tl.Grid()
	frame := s.tl.Frame()
	label := fmt.Sprintf("Event  rows %d-%d", g.RowAt(b.Top()-frame.Y), g.RowAt(b.Bottom()-frame.Y-1))
	DrawTextCentered(dst, label, r.MidX(), float64(y)+r.H/2, FontSizeBody, ColorTextOnMask)
}

func (s *TimelineScreen) drawTriggerBands(dst *ebiten.Image, frame geom.Rect) {
	band := float32(s.tl.Coordinator().Config().TriggerBand)
	v := s.tl.Viewport()
	top := s.toScreenY(v.VisibleTop())
	bottom := s.toScreenY(v.VisibleBottom())
	vector.DrawFilledRect(dst, float32(frame.X), top, float32(frame.W), band, ColorTrigger, false)
	vector.DrawFilledRect(dst, float32(frame.X), bottom-band, float32(frame.W), band, ColorTrigger, false)
}

func (s *TimelineScreen) drawMasks(dst *ebiten.Image) {
	w := float32(s.width)
	vector.DrawFilledRect(dst, 0, 0, w, HeaderHeight, ColorMask, false)
	vector.DrawFilledRect(dst, 0, float32(s.height)-FooterHeight, w, FooterHeight, ColorMask, false)

	DrawText(dst, "Today", RowLabelPad, (HeaderHeight-FontSizeHeading)/2, FontSizeHeading, ColorTextOnMask)
	status := s.tl.Phase().String()
	if s.tl.Armed() {
		status += ", armed"
	}
	sw, _ := MeasureText(status, FontSizeSmall)
	DrawText(dst, status, s.width-sw-RowLabelPad, (HeaderHeight-FontSizeSmall)/2, FontSizeSmall, ColorTextSecondary)

	hint := "Hold to select, drag to move, H for help"
	DrawTextCentered(dst, hint, s.width/2, s.height-FooterHeight/2, FontSizeSmall, ColorTextSecondary)
}

func (s *TimelineScreen) debugLines() []string {
	st := s.tl.State()
	v := s.tl.Viewport()
	c := s.tl.Coordinator()
	return []string{
		fmt.Sprintf("phase %v  armed %v", st.Phase, st.Armed),
		fmt.Sprintf("block y %.1f  h %.1f", st.Block.Center.Y, st.Block.Height),
		fmt.Sprintf("offset %.1f  normalized %.1f", v.ScrollOffset, v.NormalizedOffset()),
		fmt.Sprintf("pointer %v  last %v", s.driver.Active(), s.lastEvent),
		fmt.Sprintf("band %v  live %v  gen %d", c.Direction(), c.Live(), c.Generation()),
		fmt.Sprintf("last request row %d  delta %.1f", s.lastRequest.Row, s.lastRequest.Delta),
	}
}
