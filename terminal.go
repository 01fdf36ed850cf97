package ssd1306

import (
	"fmt"
	"image"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// DrawWindow is the addressing-window contract the terminal renderer draws
// through. *Dev implements it; tests and alternative transports can
// substitute their own.
type DrawWindow interface {
	// Size returns the configured panel variant.
	Size() DisplaySize
	// SetDrawArea configures the hardware addressing window and moves the
	// cursor to start.
	SetDrawArea(start, end image.Point) error
	// Draw streams raw pixel-column bytes into the window, auto-advancing
	// and wrapping the hardware cursor.
	Draw(pixels []byte) error
	// InitColumnMode places the panel into column-addressing mode.
	InitColumnMode() error
	// SetRotation applies a physical orientation transform.
	SetRotation(Rotation) error
}

// clearOrigin is where the cursor lands after Clear. It is a protocol-level
// convention establishing a known start point, not derived from geometry.
var clearOrigin = image.Pt(6, 32)

// Terminal renders text to the panel without a framebuffer.
//
// Each printed character is converted to an 8x8 glyph and streamed straight
// into the addressing window. The hardware tracks the cursor, wraps to the
// next row at the end of a line and back to the window origin after the last
// cell, so the renderer keeps no drawing state of its own.
//
// A Terminal is not safe for concurrent use; it assumes exclusive ownership
// of its DrawWindow.
type Terminal struct {
	w DrawWindow
}

// NewTerminal creates a terminal renderer that takes ownership of the given
// addressing window. No I/O is performed.
func NewTerminal(w DrawWindow) *Terminal {
	return &Terminal{w: w}
}

// Release gives the addressing window back to the caller. The underlying
// hardware connection is left intact. The Terminal must not be used after
// Release.
func (t *Terminal) Release() DrawWindow {
	w := t.w
	t.w = nil
	return w
}

// Init places the panel into column-addressing mode so that printed glyph
// bytes walk down 8-pixel columns, left to right, with the hardware wrapping
// rows. It must be called before printing.
func (t *Terminal) Init() error {
	return t.w.InitColumnMode()
}

// terminalCells returns the number of 8x8 glyph cells the clear operation
// streams for a panel variant. The mapping encodes a rendering-layout
// decision per variant and is deliberately not derived from the pixel
// dimensions; a variant without an entry is a configuration error.
func terminalCells(s DisplaySize) (int, error) {
	switch s {
	case Size128x64:
		return 128, nil
	case Size128x32, Size128x32Quirk:
		return 64, nil
	case Size96x16:
		return 24, nil
	default:
		return 0, fmt.Errorf("ssd1306: no terminal cell count for display size %v", s)
	}
}

// Clear blanks the panel by streaming one all-zero glyph per cell, leaving
// the cursor at a known position so subsequent printing starts predictably.
//
// A transport error aborts immediately; the panel may be left partially
// cleared.
func (t *Terminal) Clear() error {
	cells, err := terminalCells(t.w.Size())
	if err != nil {
		return err
	}

	// Reset the cursor so we don't end up in some random place of the
	// cleared screen.
	w, h := t.w.Size().Dimensions()
	if err := t.w.SetDrawArea(clearOrigin, image.Pt(w, h)); err != nil {
		return err
	}

	var blank [8]byte
	for i := 0; i < cells; i++ {
		if err := t.w.Draw(blank[:]); err != nil {
			return err
		}
	}
	return nil
}

// PrintChar prints a single character at the cursor and advances it by one
// glyph cell. Characters without a glyph print as a blank cell.
func (t *Terminal) PrintChar(r rune) error {
	g := Bitmap(r)
	return t.w.Draw(g[:])
}

// WriteString prints s one character at a time. A failed character does not
// stop the rest of the string: every character is attempted, and WriteString
// reports how many were written along with the first error encountered.
func (t *Terminal) WriteString(s string) (int, error) {
	n := 0
	var first error
	for _, r := range s {
		if err := t.PrintChar(r); err != nil {
			if first == nil {
				first = err
			}
			continue
		}
		n++
	}
	return n, first
}

// Flush is a no-op: every character is written to the panel at print time.
// It exists so Terminal satisfies the same committable-writer shape as
// buffered rendering modes.
func (t *Terminal) Flush() error {
	return nil
}

// SetRotation forwards an orientation to the addressing window, which
// translates it into the physical remap commands.
func (t *Terminal) SetRotation(rotation Rotation) error {
	return t.w.SetRotation(rotation)
}

// Reset drives the panel's reset pin through its power-up sequence: high,
// 1ms settle, low for 10ms, then high again. sleep may be nil to use
// time.Sleep; the pin and delay source are borrowed for this call only.
func (t *Terminal) Reset(rst gpio.PinOut, sleep func(time.Duration)) error {
	if sleep == nil {
		sleep = time.Sleep
	}
	if err := rst.Out(gpio.High); err != nil {
		return err
	}
	sleep(1 * time.Millisecond)
	if err := rst.Out(gpio.Low); err != nil {
		return err
	}
	sleep(10 * time.Millisecond)
	return rst.Out(gpio.High)
}
