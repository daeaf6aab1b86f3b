package geom

// Viewport describes how scrollable content is seen through a fixed peephole.
//
// Two frames are involved. Content space has its origin at the top of the
// first row and spans ContentHeight. Viewport space is the host's drawing
// area: it is as tall as the content, with the visible window of height
// VisibleHeight centred in it, leaving an equal margin above and below for
// gestures that reach into offscreen territory. Both frames share the X axis.
//
// ScrollOffset is the viewport Y of the content's top edge. When the content
// is not scrolled the first row sits at the top of the visible window, so the
// offset equals Margin(); scrolling towards later rows makes it smaller.
type Viewport struct {
	ContentHeight float64
	VisibleHeight float64
	ScrollOffset  float64
}

// Margin is the space between the viewport top and the visible window top.
func (v Viewport) Margin() float64 {
	return (v.ContentHeight - v.VisibleHeight) / 2
}

// VisibleTop is the viewport Y of the visible window's top edge.
func (v Viewport) VisibleTop() float64 {
	return v.Margin()
}

// VisibleBottom is the viewport Y of the visible window's bottom edge.
func (v Viewport) VisibleBottom() float64 {
	return v.Margin() + v.VisibleHeight
}

// InVisibleBand reports whether viewport y lies inside the visible window.
func (v Viewport) InVisibleBand(y float64) bool {
	return y >= v.VisibleTop() && y <= v.VisibleBottom()
}

// NormalizedOffset re-bases ScrollOffset so that 0 means the first row is at
// the top of the visible window. Positive values are the content distance
// scrolled past.
func (v Viewport) NormalizedOffset() float64 {
	return NormalizedOffset(v.ScrollOffset, v.ContentHeight, v.VisibleHeight)
}

// NormalizedOffset is the free-function form of Viewport.NormalizedOffset.
func NormalizedOffset(scrollOffset, contentHeight, visibleHeight float64) float64 {
	return -(scrollOffset - (contentHeight-visibleHeight)/2)
}

// OffsetForNormalized is the inverse of NormalizedOffset.
func (v Viewport) OffsetForNormalized(n float64) float64 {
	return v.Margin() - n
}

// MaxNormalized is the largest normalized offset, reached when the last row
// sits at the bottom of the visible window.
func (v Viewport) MaxNormalized() float64 {
	if v.ContentHeight < v.VisibleHeight {
		return 0
	}
	return v.ContentHeight - v.VisibleHeight
}

// ToContent converts a viewport point to content space.
func (v Viewport) ToContent(p Point) Point {
	return Point{X: p.X, Y: p.Y - v.ScrollOffset}
}

// ToViewport converts a content point to viewport space.
func (v Viewport) ToViewport(p Point) Point {
	return Point{X: p.X, Y: p.Y + v.ScrollOffset}
}

// RectToViewport converts a content rectangle to viewport space.
func (v Viewport) RectToViewport(r Rect) Rect {
	r.Y += v.ScrollOffset
	return r
}
