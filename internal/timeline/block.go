package timeline

import "github.com/depeter/daydrag/internal/geom"

// Block is the draggable event. Its width always equals the container width,
// so only the centre and the vertical extent are stored. Coordinates are in
// content space.
type Block struct {
	Center    geom.Point
	Height    float64
	MinHeight float64
}

// Top returns the content Y of the block's upper edge.
func (b Block) Top() float64 { return b.Center.Y - b.Height/2 }

// Bottom returns the content Y of the block's lower edge.
func (b Block) Bottom() float64 { return b.Center.Y + b.Height/2 }

// Rect returns the block's bounds for the given width.
func (b Block) Rect(width float64) geom.Rect {
	return geom.RectFromCenter(b.Center, width, b.Height)
}
