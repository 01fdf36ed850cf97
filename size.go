package ssd1306

import "fmt"

// DisplaySize identifies a supported physical panel configuration.
//
// The set is closed: every consumer switches exhaustively over these values,
// so adding a panel is a compile-time decision at each site.
type DisplaySize int

const (
	// Size128x64 is the common 0.96" 128x64 module.
	Size128x64 DisplaySize = iota
	// Size128x32 is the half-height 128x32 module.
	Size128x32
	// Size96x16 is the small 96x16 module.
	Size96x16
	// Size128x32Quirk is a 128x32 panel driven by an SSD1305, which needs
	// the same addressing as Size128x32 but is kept distinct so its quirks
	// can be handled separately.
	Size128x32Quirk
)

// Dimensions returns the panel width and height in pixels.
//
// It returns (0, 0) for a value outside the declared set.
func (s DisplaySize) Dimensions() (int, int) {
	switch s {
	case Size128x64:
		return 128, 64
	case Size128x32:
		return 128, 32
	case Size128x32Quirk:
		return 128, 32
	case Size96x16:
		return 96, 16
	default:
		return 0, 0
	}
}

// String returns a human readable name for the panel size.
func (s DisplaySize) String() string {
	switch s {
	case Size128x64:
		return "128x64"
	case Size128x32:
		return "128x32"
	case Size96x16:
		return "96x16"
	case Size128x32Quirk:
		return "128x32-quirk"
	default:
		return fmt.Sprintf("DisplaySize(%d)", int(s))
	}
}
