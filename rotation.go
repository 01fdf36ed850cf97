package ssd1306

// Rotation selects the physical orientation of the panel.
type Rotation int

const (
	Rotation0 Rotation = iota
	Rotation90
	Rotation180
	Rotation270
)

// String returns the rotation in degrees.
func (r Rotation) String() string {
	switch r {
	case Rotation0:
		return "0°"
	case Rotation90:
		return "90°"
	case Rotation180:
		return "180°"
	case Rotation270:
		return "270°"
	default:
		return "unknown"
	}
}
