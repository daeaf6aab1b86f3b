package ui

import "image/color"

// Colors: light day view, rows in gray with orange rules.
var (
	ColorBackground    = color.RGBA{R: 0xFA, G: 0xFA, B: 0xFC, A: 0xFF}
	ColorRow           = color.RGBA{R: 0x3D, G: 0x3D, B: 0x3D, A: 0x66}
	ColorRowRule       = color.RGBA{R: 0xFF, G: 0x95, B: 0x00, A: 0xFF}
	ColorBlock         = color.RGBA{R: 0xE6, G: 0x1E, B: 0x1E, A: 0xE6}
	ColorBlockIdle     = color.RGBA{R: 0x73, G: 0x0F, B: 0x0F, A: 0x73} // ColorBlock at half opacity, premultiplied
	ColorHandle        = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0x80} // white at half opacity
	ColorMask          = color.RGBA{R: 0x1C, G: 0x1C, B: 0x24, A: 0xFF}
	ColorPrimary       = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}
	ColorText          = color.RGBA{R: 0x20, G: 0x20, B: 0x24, A: 0xFF}
	ColorTextOnMask    = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	ColorTextSecondary = color.RGBA{R: 0x90, G: 0x90, B: 0x9C, A: 0xFF}
	ColorTextMuted     = color.RGBA{R: 0x60, G: 0x60, B: 0x6C, A: 0xFF}
	ColorOverlay       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xC0}
	ColorTrigger       = color.RGBA{R: 0x00, G: 0x30, B: 0x40, A: 0x50}
)

// Layout constants
const (
	HeaderHeight = 30
	FooterHeight = 30

	RowLabelPad = 12
	HandleInset = 8
	RuleWidth   = 1

	FontSizeHeading = 18
	FontSizeBody    = 15
	FontSizeSmall   = 12

	ScrollAnimSpeed = 0.12

	// ScrollWheelSpeed is content units per mouse wheel step.
	ScrollWheelSpeed = 30

	// ScrollSettleDistance is how close an animation must get to its target
	// before it snaps there and reports completion.
	ScrollSettleDistance = 0.5
)
