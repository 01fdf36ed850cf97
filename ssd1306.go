// Package ssd1306 controls a SSD1306 monochrome OLED display via I²C or SPI.
//
// The SSD1306 drives panels up to 128x64 pixels. This package exposes the
// raw addressing-window device plus an unbuffered terminal mode that renders
// text one 8x8 glyph at a time without a framebuffer.
//
// See the examples for how to use this package.
package ssd1306

import (
	"errors"
	"fmt"
	"image"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// SSD1306 command set.
const (
	cmdSetMemoryMode      = 0x20
	cmdSetColumnAddr      = 0x21
	cmdSetPageAddr        = 0x22
	cmdSetStartLine       = 0x40
	cmdSetContrast        = 0x81
	cmdSetChargePump      = 0x8D
	cmdSegmentRemapOff    = 0xA0
	cmdSegmentRemapOn     = 0xA1
	cmdDisplayAllOnResume = 0xA4
	cmdNormalDisplay      = 0xA6
	cmdInvertDisplay      = 0xA7
	cmdSetMultiplexRatio  = 0xA8
	cmdDisplayOff         = 0xAE
	cmdDisplayOn          = 0xAF
	cmdComScanInc         = 0xC0
	cmdComScanDec         = 0xC8
	cmdSetDisplayOffset   = 0xD3
	cmdSetDisplayClockDiv = 0xD5
	cmdSetPrecharge       = 0xD9
	cmdSetComPins         = 0xDA
	cmdSetVcomDetect      = 0xDB
)

// I²C control byte prefixes: the byte after the address selects whether the
// payload is a command or display data stream.
const (
	i2cCommandPrefix = 0x00
	i2cDataPrefix    = 0x40
)

// DefaultI2CAddr is the usual SSD1306 slave address; some boards strap 0x3D.
const DefaultI2CAddr uint16 = 0x3C

// Opts is the configuration for the SSD1306 display.
type Opts struct {
	// Size selects the physical panel variant (default: Size128x64).
	Size DisplaySize

	// Rotation is the initial panel orientation applied by InitColumnMode.
	Rotation Rotation

	// Addr is the I²C slave address; ignored for SPI (default: DefaultI2CAddr).
	Addr uint16

	// RST is an optional reset pin, pulsed during construction when set.
	RST gpio.PinIO
}

// Dev is the device handle for the SSD1306 display.
//
// It owns the addressing window: the hardware tracks the drawing rectangle
// and cursor, auto-advancing and wrapping as data bytes are streamed in.
type Dev struct {
	// Communication
	c   conn.Conn
	dc  gpio.PinOut // Data/Command pin; nil when driven over I²C
	rst gpio.PinIO  // Reset pin (optional)

	// Panel geometry
	size     DisplaySize
	rotation Rotation

	// State
	halted bool
}

// NewSPI creates a new SSD1306 device connected via 4-wire SPI.
//
// The SPI port is configured for 3.3MHz, Mode0 (CPOL=0, CPHA=0), 8-bit
// transfers. The dc (Data/Command) GPIO pin must be provided and configured
// as an output.
//
// opts can be nil to use defaults (128x64 panel).
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if dc == nil {
		return nil, errors.New("ssd1306: DC pin is required for SPI")
	}
	opts, err := checkOpts(opts)
	if err != nil {
		return nil, err
	}

	c, err := p.Connect(3300*physic.KiloHertz, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}

	d := &Dev{
		c:        c,
		dc:       dc,
		rst:      opts.RST,
		size:     opts.Size,
		rotation: opts.Rotation,
	}
	if err := d.resetHardware(); err != nil {
		return nil, err
	}
	return d, nil
}

// NewI2C creates a new SSD1306 device connected via I²C.
//
// opts can be nil to use defaults (128x64 panel at address 0x3C).
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	opts, err := checkOpts(opts)
	if err != nil {
		return nil, err
	}
	addr := opts.Addr
	if addr == 0 {
		addr = DefaultI2CAddr
	}

	d := &Dev{
		c:        &i2c.Dev{Bus: b, Addr: addr},
		rst:      opts.RST,
		size:     opts.Size,
		rotation: opts.Rotation,
	}
	if err := d.resetHardware(); err != nil {
		return nil, err
	}
	return d, nil
}

// checkOpts applies defaults and validates the panel selection.
func checkOpts(opts *Opts) (*Opts, error) {
	if opts == nil {
		opts = &Opts{Size: Size128x64}
	}
	if w, h := opts.Size.Dimensions(); w == 0 || h == 0 {
		return nil, fmt.Errorf("ssd1306: unknown display size %v", opts.Size)
	}
	return opts, nil
}

// resetHardware pulses the RST pin when one was provided. The panel wants
// RST held low for at least 3µs; 10ms leaves margin on slow GPIO drivers.
func (d *Dev) resetHardware() error {
	if d.rst == nil {
		return nil
	}
	if err := d.rst.Out(gpio.High); err != nil {
		return fmt.Errorf("ssd1306: failed to pull RST high: %w", err)
	}
	time.Sleep(1 * time.Millisecond)
	if err := d.rst.Out(gpio.Low); err != nil {
		return fmt.Errorf("ssd1306: failed to pull RST low: %w", err)
	}
	time.Sleep(10 * time.Millisecond)
	if err := d.rst.Out(gpio.High); err != nil {
		return fmt.Errorf("ssd1306: failed to pull RST high: %w", err)
	}
	return nil
}

// Size returns the configured panel variant.
func (d *Dev) Size() DisplaySize {
	return d.size
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	w, h := d.size.Dimensions()
	return image.Rect(0, 0, w, h)
}

// InitColumnMode places the panel in column-addressing mode: each data byte
// fills one 8-pixel-tall column strip, the cursor then advances one column
// to the right, and the hardware wraps to the next row of strips on its own.
func (d *Dev) InitColumnMode() error {
	if d.halted {
		return errors.New("ssd1306: halted")
	}
	_, h := d.size.Dimensions()

	contrast := byte(0x8F)
	comPins := byte(0x02)
	if h == 64 {
		contrast = 0xCF
		comPins = 0x12
	}

	cmds := []byte{
		cmdDisplayOff,
		cmdSetDisplayClockDiv, 0x80,
		cmdSetMultiplexRatio, byte(h - 1),
		cmdSetDisplayOffset, 0x00,
		cmdSetStartLine | 0x00,
		cmdSetChargePump, 0x14, // internal VCC
		cmdSetMemoryMode, 0x00, // horizontal addressing, hardware wrap
	}
	cmds = append(cmds, remapCommands(d.rotation)...)
	cmds = append(cmds,
		cmdSetComPins, comPins,
		cmdSetContrast, contrast,
		cmdSetPrecharge, 0xF1,
		cmdSetVcomDetect, 0x40,
		cmdDisplayAllOnResume,
		cmdNormalDisplay,
		cmdDisplayOn,
	)
	return d.sendCommands(cmds)
}

// SetDrawArea configures the hardware addressing window. start is the top
// left pixel, end is the exclusive bottom right pixel; rows are addressed in
// 8-pixel pages. The cursor moves to start and subsequent Draw bytes fill
// the window. The coordinates are forwarded to the panel as-is; terminal
// mode deliberately uses a start point outside small panels as its cursor
// convention, so no range check is applied here.
func (d *Dev) SetDrawArea(start, end image.Point) error {
	if d.halted {
		return errors.New("ssd1306: halted")
	}
	return d.sendCommands([]byte{
		cmdSetColumnAddr, byte(start.X), byte(end.X - 1),
		cmdSetPageAddr, byte(start.Y / 8), byte(end.Y/8 - 1),
	})
}

// Draw streams raw pixel-column bytes into the current addressing window.
// The hardware advances the cursor one column strip per byte and wraps to
// the window origin after the last cell.
func (d *Dev) Draw(pixels []byte) error {
	if d.halted {
		return errors.New("ssd1306: halted")
	}
	return d.sendData(pixels)
}

// remapCommands translates an orientation into the segment remap and COM
// scan direction command pair.
func remapCommands(rotation Rotation) []byte {
	switch rotation {
	case Rotation90:
		return []byte{cmdSegmentRemapOff, cmdComScanDec}
	case Rotation180:
		return []byte{cmdSegmentRemapOff, cmdComScanInc}
	case Rotation270:
		return []byte{cmdSegmentRemapOn, cmdComScanInc}
	default:
		return []byte{cmdSegmentRemapOn, cmdComScanDec}
	}
}

// SetRotation applies a physical orientation transform.
func (d *Dev) SetRotation(rotation Rotation) error {
	if d.halted {
		return errors.New("ssd1306: halted")
	}
	if err := d.sendCommands(remapCommands(rotation)); err != nil {
		return err
	}
	d.rotation = rotation
	return nil
}

// SetContrast sets the display contrast (0-255).
func (d *Dev) SetContrast(contrast byte) error {
	if d.halted {
		return errors.New("ssd1306: halted")
	}
	return d.sendCommands([]byte{cmdSetContrast, contrast})
}

// Invert inverts the display colors (lit becomes unlit and vice versa).
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return errors.New("ssd1306: halted")
	}
	mode := byte(cmdNormalDisplay)
	if invert {
		mode = cmdInvertDisplay
	}
	return d.sendCommands([]byte{mode})
}

// Halt powers off the display. After calling Halt, the device refuses
// further commands until it is re-created.
func (d *Dev) Halt() error {
	err := d.sendCommands([]byte{cmdDisplayOff})
	d.halted = true
	return err
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	w, h := d.size.Dimensions()
	return fmt.Sprintf("ssd1306.Dev{%dx%d}", w, h)
}

// sendCommands sends a slice of command bytes.
func (d *Dev) sendCommands(cmds []byte) error {
	if d.dc != nil {
		if err := d.dc.Out(gpio.Low); err != nil {
			return err
		}
		return d.c.Tx(cmds, nil)
	}
	return d.c.Tx(append([]byte{i2cCommandPrefix}, cmds...), nil)
}

// sendData sends a slice of display data bytes.
func (d *Dev) sendData(data []byte) error {
	if d.dc != nil {
		if err := d.dc.Out(gpio.High); err != nil {
			return err
		}
		return d.c.Tx(data, nil)
	}
	return d.c.Tx(append([]byte{i2cDataPrefix}, data...), nil)
}
