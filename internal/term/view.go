package term

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/depeter/daydrag/internal/geom"
	"github.com/depeter/daydrag/internal/gesture"
	"github.com/depeter/daydrag/internal/timeline"
)

// DefaultUnit is how many timeline units one terminal line covers.
const DefaultUnit = 25

var (
	styleRow     = tcell.StyleDefault.Background(tcell.ColorDarkSlateGray).Foreground(tcell.ColorWhite)
	styleRule    = styleRow.Foreground(tcell.ColorOrange)
	styleBlock   = tcell.StyleDefault.Background(tcell.ColorRed).Foreground(tcell.ColorWhite).Bold(true)
	styleIdle    = tcell.StyleDefault.Background(tcell.ColorMaroon).Foreground(tcell.ColorSilver)
	styleHandle  = tcell.StyleDefault.Background(tcell.ColorLightCoral).Foreground(tcell.ColorBlack)
	styleTrigger = styleRow.Background(tcell.ColorTeal)
)

// TimelineView is a tview primitive drawing the visible window of a timeline.
// Each terminal line covers DefaultUnit timeline units; the inner rectangle's
// first line is the top of the visible window, so lines beyond the window
// height lie past its bottom edge. All methods must run on the application's
// event goroutine.
type TimelineView struct {
	*tview.Box

	tl     *timeline.Timeline
	driver *gesture.Driver
	scroll scroller
	unit   float64
	start  time.Time
	now    func() time.Time

	showBands bool
	lastEvent gesture.Kind
}

// scroller animates the scroll offset towards a target, like the window host
// does, and reports completed requests.
type scroller struct {
	offset, target float64
	min, max       float64
	speed          float64
	gen            uint64
	live           bool
}

func (s *scroller) by(d float64) {
	if s.live {
		return
	}
	s.target = geom.Clamp(s.target+d, s.min, s.max)
}

func (s *scroller) step() (uint64, bool) {
	s.offset += (s.target - s.offset) * s.speed
	if math.Abs(s.offset-s.target) < 0.5 {
		s.offset = s.target
		if s.live {
			s.live = false
			return s.gen, true
		}
	}
	return 0, false
}

func NewTimelineView(tl *timeline.Timeline, gcfg gesture.Config, animSpeed float64) *TimelineView {
	if animSpeed <= 0 {
		animSpeed = 0.25
	}
	v := &TimelineView{
		Box:   tview.NewBox(),
		tl:    tl,
		unit:  DefaultUnit,
		start: time.Now(),
		now:   time.Now,
	}
	vp := tl.Viewport()
	v.scroll = scroller{
		offset: vp.ScrollOffset,
		target: vp.ScrollOffset,
		min:    vp.OffsetForNormalized(vp.MaxNormalized()),
		max:    vp.Margin(),
		speed:  animSpeed,
	}
	tl.OnScrollRequest = func(req timeline.ScrollRequest) {
		v.scroll.target = geom.Clamp(req.Offset, v.scroll.min, v.scroll.max)
		v.scroll.gen = req.Generation
		v.scroll.live = true
	}
	v.driver = gesture.NewDriver(tl, gcfg)
	v.driver.OnPan = func(dy float64) {
		if v.scroll.live {
			return
		}
		v.scroll.offset = geom.Clamp(v.scroll.offset+dy, v.scroll.min, v.scroll.max)
		v.scroll.target = v.scroll.offset
		v.tl.SetScrollOffset(v.scroll.offset)
	}
	v.driver.Trace = func(ev gesture.Event) { v.lastEvent = ev.Kind }
	return v
}

func (v *TimelineView) clock() time.Duration { return v.now().Sub(v.start) }

// ToggleBands shows or hides the auto-scroll trigger bands.
func (v *TimelineView) ToggleBands() {
	v.showBands = !v.showBands
}

// Tick advances long-press detection and the scroll animation. It returns
// true when something changed and the view should be redrawn.
func (v *TimelineView) Tick() bool {
	before := v.tl.State()
	v.driver.Tick(v.clock())
	gen, settled := v.scroll.step()
	changed := v.tl.State() != before
	if v.scroll.offset != v.tl.Viewport().ScrollOffset {
		v.tl.SetScrollOffset(v.scroll.offset)
		changed = true
	}
	if settled {
		v.tl.ScrollFinished(gen)
	}
	return changed || settled
}

// ScrollRows scrolls by n rows; positive n reveals earlier rows.
func (v *TimelineView) ScrollRows(n int) {
	if v.tl.State().Active() {
		return
	}
	v.scroll.by(float64(n) * v.tl.Grid().RowHeight)
}

// Dismiss deselects the block.
func (v *TimelineView) Dismiss() {
	v.tl.TapOutside()
}

// Status returns a one-line summary of the interaction state.
func (v *TimelineView) Status() string {
	st := v.tl.State()
	c := v.tl.Coordinator()
	return fmt.Sprintf("%v armed=%v  y=%.0f h=%.0f  offset=%.0f  band=%v live=%v  last=%v",
		st.Phase, st.Armed, st.Block.Center.Y, st.Block.Height,
		v.tl.NormalizedOffset(), c.Direction(), c.Live(), v.lastEvent)
}

// toViewport maps a terminal cell to the centre of the timeline area it
// covers, in viewport space.
func (v *TimelineView) toViewport(col, line int) geom.Point {
	x, y, w, _ := v.GetInnerRect()
	frame := v.tl.Frame()
	scaleX := 1.0
	if w > 0 {
		scaleX = frame.W / float64(w)
	}
	return geom.Pt(
		frame.X+(float64(col-x)+0.5)*scaleX,
		v.tl.Viewport().VisibleTop()+(float64(line-y)+0.5)*v.unit,
	)
}

// lineSpan returns the viewport Y range covered by inner line i.
func (v *TimelineView) lineSpan(i int) (float64, float64) {
	top := v.tl.Viewport().VisibleTop() + float64(i)*v.unit
	return top, top + v.unit
}

func (v *TimelineView) Draw(screen tcell.Screen) {
	v.Box.DrawForSubclass(screen, v)

	x, y, w, h := v.GetInnerRect()
	vp := v.tl.Viewport()
	g := v.tl.Grid()
	br := v.tl.BlockRect()
	selected := v.tl.Selected()
	band := v.tl.Coordinator().Config().TriggerBand

	for i := 0; i < h; i++ {
		top, bottom := v.lineSpan(i)
		contentTop := top - vp.ScrollOffset
		if contentTop < 0 || contentTop >= g.Height() {
			continue
		}
		style := styleRow
		if v.showBands && (top < vp.VisibleTop()+band || bottom > vp.VisibleBottom()-band) {
			style = styleTrigger
		}
		fill(screen, x, y+i, w, ' ', style)

		// Label the line on which a row starts.
		if start := math.Ceil(contentTop/g.RowHeight) * g.RowHeight; start < contentTop+v.unit {
			printAt(screen, x, y+i, w, fmt.Sprintf(" Row %d ", g.RowAt(start)), styleRule)
		}

		if !v.tl.Ready() || bottom <= br.MinY() || top >= br.MaxY() {
			continue
		}
		bs := styleIdle
		if selected {
			bs = styleBlock
			hh := v.tl.Config().HandleHeight
			if top < br.MinY()+hh || bottom > br.MaxY()-hh {
				bs = styleHandle
			}
		}
		c0, c1 := v.columns(br)
		fill(screen, c0, y+i, c1-c0, ' ', bs)
		if mid := br.MidY(); mid >= top && mid < bottom {
			printAt(screen, c0+1, y+i, c1-c0-1, "Event", bs)
		}
	}
}

// columns converts the block's X extent into a half-open column range.
func (v *TimelineView) columns(r geom.Rect) (int, int) {
	x, _, w, _ := v.GetInnerRect()
	frame := v.tl.Frame()
	if frame.W <= 0 {
		return x, x
	}
	scale := float64(w) / frame.W
	c0 := x + int(math.Floor((r.MinX()-frame.X)*scale))
	c1 := x + int(math.Ceil((r.MaxX()-frame.X)*scale))
	return max(c0, x), min(c1, x+w)
}

func fill(screen tcell.Screen, x, y, w int, r rune, style tcell.Style) {
	for i := 0; i < w; i++ {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func printAt(screen tcell.Screen, x, y, w int, s string, style tcell.Style) {
	i := 0
	for _, r := range s {
		if i >= w {
			return
		}
		screen.SetContent(x+i, y, r, nil, style)
		i++
	}
}

// MouseHandler routes left-button presses, drags and releases to the
// gesture driver. The view captures the mouse while the button is down so
// drags past its edges keep arriving.
func (v *TimelineView) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return v.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		col, line := event.Position()
		down := v.driver.Recognizer().Down()
		if !down && !v.InRect(col, line) {
			return false, nil
		}
		p := v.toViewport(col, line)
		now := v.clock()
		switch action {
		case tview.MouseLeftDown:
			setFocus(v)
			v.driver.Press(p, now)
			return true, v
		case tview.MouseMove:
			if !down {
				return false, nil
			}
			v.driver.Move(p, now)
			return true, v
		case tview.MouseLeftUp:
			v.driver.Release(p, now)
			return true, nil
		case tview.MouseScrollUp:
			if !v.tl.State().Active() {
				v.scroll.by(v.tl.Grid().RowHeight)
			}
			return true, nil
		case tview.MouseScrollDown:
			if !v.tl.State().Active() {
				v.scroll.by(-v.tl.Grid().RowHeight)
			}
			return true, nil
		}
		if down {
			return true, v
		}
		return false, nil
	})
}
