// Package ui layout constants for consistent spacing and dimensions.
package ui

// Layout constants for shell and page sizing.
const (
	SidebarWidth  = 24
	HeaderHeight  = 3
	FooterHeight  = 2
	ContentIndent = 2

	// Table dimensions
	TableHeaderHeight = 3
	TableRowHeight    = 1

	// Responsive breakpoints
	MinimumTerminalWidth  = 80
	MinimumTerminalHeight = 24
	CompactModeWidth      = 100
)

// LayoutConfig provides computed layout dimensions based on terminal size.
type LayoutConfig struct {
	TerminalWidth  int
	TerminalHeight int
	IsCompact      bool
}

// NewLayoutConfig creates a layout configuration for the given terminal size.
func NewLayoutConfig(width, height int) LayoutConfig {
	return LayoutConfig{
		TerminalWidth:  width,
		TerminalHeight: height,
		IsCompact:      width < CompactModeWidth,
	}
}

// ContentWidth returns the width left for the page once the sidebar is laid out.
func (l LayoutConfig) ContentWidth() int {
	w := l.TerminalWidth - SidebarWidth - ContentIndent
	if w < 0 {
		return 0
	}
	return w
}

// ContentHeight returns the height left for the page under the header.
func (l LayoutConfig) ContentHeight() int {
	h := l.TerminalHeight - HeaderHeight - FooterHeight
	if h < 0 {
		return 0
	}
	return h
}
