package geom

import "math"

// Point is a location in a 2D coordinate space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Vec is a displacement between two points, e.g. a gesture translation.
type Vec struct {
	DX, DY float64
}

// Add returns p moved by v.
func (p Point) Add(v Vec) Point {
	return Point{X: p.X + v.DX, Y: p.Y + v.DY}
}

// Sub returns the displacement from q to p.
func (p Point) Sub(q Point) Vec {
	return Vec{DX: p.X - q.X, DY: p.Y - q.Y}
}

// Rect is an axis-aligned rectangle described by its origin and size.
// Y grows downwards.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) MinX() float64 { return r.X }
func (r Rect) MaxX() float64 { return r.X + r.W }
func (r Rect) MinY() float64 { return r.Y }
func (r Rect) MaxY() float64 { return r.Y + r.H }
func (r Rect) MidX() float64 { return r.X + r.W/2 }
func (r Rect) MidY() float64 { return r.Y + r.H/2 }

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: r.MidX(), Y: r.MidY()}
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Inset shrinks r by dx on the left and right and dy on the top and bottom.
// The result may be empty.
func (r Rect) Inset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W - 2*dx, H: r.H - 2*dy}
}

// PointInRect reports whether p lies inside r, edges included.
func PointInRect(p Point, r Rect) bool {
	return p.X >= r.MinX() && p.X <= r.MaxX() &&
		p.Y >= r.MinY() && p.Y <= r.MaxY()
}

// RectInRect reports whether inner lies entirely inside outer, edges included.
func RectInRect(inner, outer Rect) bool {
	return inner.MinX() >= outer.MinX() &&
		inner.MaxX() <= outer.MaxX() &&
		inner.MinY() >= outer.MinY() &&
		inner.MaxY() <= outer.MaxY()
}

// RectFromCenter returns the rectangle of the given size centred on c.
func RectFromCenter(c Point, width, height float64) Rect {
	return Rect{X: c.X - width/2, Y: c.Y - height/2, W: width, H: height}
}

// ClampPointToRect moves p to the closest point inside r, one axis at a time.
func ClampPointToRect(p Point, r Rect) Point {
	return Point{
		X: Clamp(p.X, r.MinX(), r.MaxX()),
		Y: Clamp(p.Y, r.MinY(), r.MaxY()),
	}
}

// Clamp limits v to [lo, hi]. When lo > hi, lo wins.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// NearestGridLine rounds value to the nearest multiple of spacing, ties rounding up.
func NearestGridLine(value, spacing float64) float64 {
	if spacing == 0 {
		return value
	}
	return spacing * math.Floor(value/spacing+0.5)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// ApproxEqual reports whether a and b differ by at most tol.
func ApproxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
