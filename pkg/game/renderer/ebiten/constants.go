package ebiten

import "image/color"

// Logical layout. Ebiten scales it to the window.
const (
	gridSize        = 500 // square grid surface
	timerBarHeight  = 14
	statusBarHeight = 26
	screenWidth     = gridSize
	screenHeight    = gridSize + timerBarHeight + statusBarHeight

	gridLineWidth  = 1
	statusFontSize = 14.0
	statusPadding  = 8
)

var (
	colorBackground = color.NRGBA{40, 40, 40, 255}
	colorTimerTrack = color.NRGBA{25, 25, 25, 255}
	colorTimerFill  = color.NRGBA{12, 123, 235, 255}
	colorTimerLow   = color.NRGBA{220, 70, 70, 255}
	colorStatusText = color.NRGBA{200, 200, 200, 255}
)

// timerLowFraction is where the bar turns red
const timerLowFraction = 0.25
