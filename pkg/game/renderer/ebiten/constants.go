// Package ebiten provides an Ebiten-based 2D graphical renderer for map mode.
package ebiten

import "image/color"

// WindowTitle is shown in the title bar
const WindowTitle = "Darkvale"

// Colors owned by the window backend
var (
	colorShadow       = color.RGBA{0, 0, 0, 255}
	colorImageOutline = color.RGBA{200, 200, 220, 255}
	colorCalloutBg    = color.RGBA{15, 15, 25, 240}

	// Callout colors
	ColorCalloutInfo    = color.RGBA{200, 200, 255, 255} // Light blue for info
	ColorCalloutSuccess = color.RGBA{100, 255, 150, 255} // Green for success
	ColorCalloutWarning = color.RGBA{255, 220, 100, 255} // Yellow for warnings
)

// Zoom steps the window scale by this much per key press
const zoomStep = 0.25

const (
	baseFontSize  = 16.0 // Used when a text style has no size
	maxFrameDelta = 100  // Longest tick in milliseconds; a stalled window does not teleport sprites
)

// Callout timing in milliseconds
const (
	calloutDuration  = 2500
	entranceDuration = 200
	exitDuration     = 200
	maxCallouts      = 3
)
