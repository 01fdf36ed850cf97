// Package ssd1306 controls a SSD1306 monochrome OLED display via I²C or SPI.
//
// The SSD1306 is a single-chip driver for OLED panels up to 128×64 pixels.
// This package provides the raw addressing-window device (Dev) and an
// unbuffered terminal text mode (Terminal) on top of it.
//
// # Terminal Mode
//
// Terminal renders text without a client-side framebuffer: every character
// becomes an 8×8 glyph streamed directly into the panel's addressing
// hardware. The panel itself tracks the cursor, wraps at the end of a line
// and restarts at the window origin once the screen is full. This trades the
// up-to-1KiB framebuffer a 128×64 panel would need for simple, stateless
// per-glyph output, which matters on small hosts.
//
// # Hardware Connection
//
// Over I²C:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V (or 5V depending on display)
//	SCL         → I²C Clock (SCL)
//	SDA         → I²C Data (SDA)
//
// Over 4-wire SPI, additionally connect DC to a spare GPIO and CS to the
// SPI chip select. An optional RES pin can be wired to a GPIO and passed in
// Opts.RST for a hardware reset during construction.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"log"
//
//		"github.com/flavioheleno/ssd1306"
//		"periph.io/x/conn/v3/i2c/i2creg"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		if _, err := host.Init(); err != nil {
//			log.Fatal(err)
//		}
//
//		bus, err := i2creg.Open("")
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer bus.Close()
//
//		dev, err := ssd1306.NewI2C(bus, &ssd1306.Opts{Size: ssd1306.Size128x64})
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		term := ssd1306.NewTerminal(dev)
//		if err := term.Init(); err != nil {
//			log.Fatal(err)
//		}
//		if err := term.Clear(); err != nil {
//			log.Fatal(err)
//		}
//		term.WriteString("Hello from terminal mode!")
//	}
//
// # Supported Panels
//
// The panel variant is a closed enumeration:
//
//	ssd1306.Size128x64      // 0.96" 128×64 (most common)
//	ssd1306.Size128x32      // 128×32 half-height
//	ssd1306.Size96x16       // 96×16
//	ssd1306.Size128x32Quirk // 128×32 on an SSD1305
//
// # Glyphs
//
// The built-in font is the 7×7 MarioChron font, one curated 8-byte column
// bitmap per character from '!' through '}'. Anything else, space included,
// renders as a blank cell; there is no multi-byte or proportional glyph
// support.
//
// # Error Handling
//
// Every operation that touches the bus surfaces the transport error
// unchanged and performs no retries. A failure mid-Clear leaves the panel
// partially cleared; the caller decides whether to retry. WriteString is the
// one exception: it attempts every character and reports the count written
// together with the first error.
//
// # Datasheet
//
// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
package ssd1306
