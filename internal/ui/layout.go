package ui

import "time"

// Layout dimensions in terminal cells.
const (
	// SidebarWidth is the fixed width of the section navigation column.
	SidebarWidth = 32

	// LayoutCompactWidth is the page width below which panels stack vertically.
	LayoutCompactWidth = 90

	// chromeHeight covers the header and footer rows around the page.
	chromeHeight = 2
)

// ActiveRowThreshold is how many rows below the viewport top a section
// heading may sit and still count as the active section.
const ActiveRowThreshold = 3

// Timing constants.
const (
	// ScrollFrameInterval is the delay between smooth-scroll frames.
	ScrollFrameInterval = 16 * time.Millisecond

	// DefaultScrollStep is the rows moved per frame when none is configured.
	DefaultScrollStep = 3
)
