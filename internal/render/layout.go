package render

// Countdown frame layout. The group positions are fixed pixel coordinates
// independent of the configured canvas size; canvases narrower than the
// rightmost group simply clip it. Keeping these as constants preserves exact
// visual parity across configurations.
const (
	numeralPointSize = 50
	captionPointSize = 10

	daysCenterX    = 80
	hoursCenterX   = 240
	minutesCenterX = 400
	secondsCenterX = 560

	numeralCenterY = 60
	captionCenterY = 100

	dividerTop    = 30
	dividerBottom = 120
	dividerWidth  = 2
)

var dividerXs = []float64{160, 320, 480}

// messageFontSize is the one size that scales with the canvas: the passed
// message uses floor(width/12) pixels while the countdown numerals stay fixed.
func messageFontSize(width int) float64 {
	return float64(width / 12)
}
