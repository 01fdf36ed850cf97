package ssd1306

import "testing"

func TestBitmapGolden(t *testing.T) {
	tests := []struct {
		r    rune
		want [8]byte
	}{
		{'!', [8]byte{0x00, 0x00, 0x5F, 0x00, 0x00, 0x00, 0x00, 0x00}},
		{'#', [8]byte{0x14, 0x7F, 0x14, 0x7F, 0x14, 0x00, 0x00, 0x00}},
		{'0', [8]byte{0x1C, 0x3E, 0x61, 0x41, 0x43, 0x3E, 0x1C, 0x00}},
		{'5', [8]byte{0x27, 0x67, 0x45, 0x45, 0x45, 0x7D, 0x38, 0x00}},
		{'9', [8]byte{0x06, 0x4F, 0x49, 0x49, 0x69, 0x3F, 0x1E, 0x00}},
		{'A', [8]byte{0x7E, 0x11, 0x11, 0x11, 0x7E, 0x00, 0x00, 0x00}},
		{'M', [8]byte{0x7F, 0x02, 0x04, 0x02, 0x7F, 0x00, 0x00, 0x00}},
		{'W', [8]byte{0x7F, 0x7F, 0x38, 0x1C, 0x38, 0x7F, 0x7F, 0x00}},
		{'Z', [8]byte{0x61, 0x51, 0x49, 0x45, 0x43, 0x00, 0x00, 0x00}},
		{'\\', [8]byte{0x02, 0x04, 0x08, 0x10, 0x20, 0x00, 0x00, 0x00}},
		{'a', [8]byte{0x20, 0x54, 0x54, 0x54, 0x78, 0x00, 0x00, 0x00}},
		{'x', [8]byte{0x00, 0x44, 0x28, 0x10, 0x28, 0x44, 0x00, 0x00}},
		{'z', [8]byte{0x44, 0x64, 0x54, 0x4C, 0x44, 0x00, 0x00, 0x00}},
		{'{', [8]byte{0x00, 0x08, 0x36, 0x41, 0x00, 0x00, 0x00, 0x00}},
		{'}', [8]byte{0x00, 0x41, 0x36, 0x08, 0x00, 0x00, 0x00, 0x00}},
	}

	for _, tt := range tests {
		t.Run(string(tt.r), func(t *testing.T) {
			if got := Bitmap(tt.r); got != tt.want {
				t.Errorf("Bitmap(%q) = %#v, want %#v", tt.r, got, tt.want)
			}
		})
	}
}

func TestBitmapCoversPrintableRange(t *testing.T) {
	// Every character from '!' through '}' has a curated glyph; only a
	// fully blank bitmap would indicate a hole in the table.
	for r := '!'; r <= '}'; r++ {
		if Bitmap(r) == [8]byte{} {
			t.Errorf("Bitmap(%q) is blank, want a glyph", r)
		}
	}
}

func TestBitmapUnmappedRunesAreBlank(t *testing.T) {
	unmapped := []rune{
		' ',      // blank by design
		'~',      // just past the table
		'\x00',   // NUL
		'\n',     // control
		'\x1F',   // control
		'\x7F',   // DEL
		'é',      // Latin-1 supplement
		'字',      // CJK
		'🙂',      // emoji
		rune(0x10FFFF),
	}

	for _, r := range unmapped {
		if got := Bitmap(r); got != [8]byte{} {
			t.Errorf("Bitmap(%q) = %#v, want blank", r, got)
		}
	}
}
