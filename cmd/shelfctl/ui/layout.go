// Package ui layout constants for consistent spacing and dimensions.
package ui

// Layout constants for page and modal sizing.
const (
	TabBarHeight    = 2
	SearchBarHeight = 2
	StatusBarHeight = 1
	ToastBarHeight  = 1

	TableHeaderHeight = 2

	ModalMinWidth  = 48
	ModalMaxWidth  = 72
	FieldGapHeight = 1

	MinimumTerminalWidth  = 80
	MinimumTerminalHeight = 20

	CellPadding = 2
	MaxCellText = 40
)

// contentHeight is the space left for the active page body.
func contentHeight(total int) int {
	h := total - TabBarHeight - ToastBarHeight - StatusBarHeight
	if h < 1 {
		return 1
	}
	return h
}
