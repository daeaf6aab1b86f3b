package icon

import (
	"image"
	"image/color"
)

var (
	pageBG    = color.RGBA{R: 0xF2, G: 0xF2, B: 0xF5, A: 0xFF}
	headerCol = color.RGBA{R: 0xE0, G: 0x4E, B: 0x3A, A: 0xFF}
	ruleCol   = color.RGBA{R: 0x9A, G: 0x9A, B: 0xA6, A: 0xFF}
	blockCol  = color.RGBA{R: 0x2F, G: 0x80, B: 0xED, A: 0xFF}
	ringCol   = color.RGBA{R: 0x30, G: 0x30, B: 0x38, A: 0xFF}
	shadowCol = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0x50}
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

// generate draws a day page: a red header, a few hour rules and one event
// block spanning two of them.
func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	fillRoundedRect(img, s*0.10, s*0.12, s*0.82, s*0.82, s*0.10, shadowCol)
	fillRoundedRect(img, s*0.08, s*0.08, s*0.82, s*0.82, s*0.10, pageBG)
	fillRoundedRect(img, s*0.08, s*0.08, s*0.82, s*0.22, s*0.10, headerCol)
	fillRect(img, int(s*0.08), int(s*0.20), int(s*0.82), int(s*0.10), headerCol)

	// Binder rings.
	for _, x := range []float64{0.30, 0.68} {
		fillRoundedRect(img, s*x-s*0.03, s*0.03, s*0.06, s*0.14, s*0.03, ringCol)
	}

	rowH := s * 0.12
	top := s * 0.36
	for i := 0; i < 5; i++ {
		y := int(top + float64(i)*rowH)
		fillRect(img, int(s*0.14), y, int(s*0.70), max(1, size/64), ruleCol)
	}

	fillRoundedRect(img, s*0.24, top+rowH, s*0.58, rowH*2, s*0.04, blockCol)
	return img
}

func fillRect(img *image.RGBA, x0, y0, w, h int, c color.Color) {
	bounds := img.Bounds()
	for y := y0; y < y0+h && y < bounds.Max.Y; y++ {
		for x := x0; x < x0+w && x < bounds.Max.X; x++ {
			if x >= 0 && y >= 0 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func fillRoundedRect(img *image.RGBA, xf, yf, wf, hf, r float64, c color.Color) {
	bounds := img.Bounds()
	for y := int(yf); y <= int(yf+hf) && y < bounds.Max.Y; y++ {
		for x := int(xf); x <= int(xf+wf) && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			if insideRounded(float64(x), float64(y), xf, yf, wf, hf, r) {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// insideRounded tests (fx, fy) against the corner arcs only; the caller
// already limits the scan to the bounding box.
func insideRounded(fx, fy, xf, yf, wf, hf, r float64) bool {
	cx := fx
	switch {
	case fx < xf+r:
		cx = xf + r
	case fx > xf+wf-r:
		cx = xf + wf - r
	}
	cy := fy
	switch {
	case fy < yf+r:
		cy = yf + r
	case fy > yf+hf-r:
		cy = yf + hf - r
	}
	dx, dy := fx-cx, fy-cy
	return dx*dx+dy*dy <= r*r
}

// blendPixel composites c over the pixel at (x, y).
func blendPixel(img *image.RGBA, x, y int, c color.Color) {
	sr, sg, sb, sa := c.RGBA()
	if sa == 0 {
		return
	}
	if sa == 0xFFFF {
		img.Set(x, y, c)
		return
	}
	dst := img.RGBAAt(x, y)
	inv := 0xFFFF - sa
	blend := func(s uint32, d uint8) uint8 {
		return uint8((s + uint32(d)*257*inv/0xFFFF) >> 8)
	}
	img.SetRGBA(x, y, color.RGBA{
		R: blend(sr, dst.R),
		G: blend(sg, dst.G),
		B: blend(sb, dst.B),
		A: 0xFF,
	})
}
