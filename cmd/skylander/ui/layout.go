// Layout constants shared by the screens.
package ui

const (
	// Chrome heights
	HeaderHeight = 2
	FooterHeight = 2

	// Table sizing
	TablePadding = 2
	TableMinRows = 5
	TableMaxRows = 18

	// Form sizing
	InputWidth    = 48
	SearchWidth   = 40
	ModalMinWidth = 44

	// Responsive breakpoints
	MinimumTerminalWidth  = 80
	MinimumTerminalHeight = 24

	// Coordinate picker pan steps, in degrees
	PanStepFine   = 0.0005
	PanStepCoarse = 0.01
)

// tableHeight clamps the row count to the available vertical space.
func tableHeight(screenHeight int) int {
	h := screenHeight - HeaderHeight - FooterHeight - 6
	if h < TableMinRows {
		return TableMinRows
	}
	if h > TableMaxRows {
		return TableMaxRows
	}
	return h
}
