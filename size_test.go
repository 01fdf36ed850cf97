package ssd1306

import "testing"

func TestDisplaySizeDimensions(t *testing.T) {
	tests := []struct {
		size DisplaySize
		w, h int
	}{
		{Size128x64, 128, 64},
		{Size128x32, 128, 32},
		{Size128x32Quirk, 128, 32},
		{Size96x16, 96, 16},
	}

	for _, tt := range tests {
		t.Run(tt.size.String(), func(t *testing.T) {
			w, h := tt.size.Dimensions()
			if w != tt.w || h != tt.h {
				t.Errorf("Dimensions() = (%d, %d), want (%d, %d)", w, h, tt.w, tt.h)
			}

			// Pure accessor: repeated calls must agree.
			w2, h2 := tt.size.Dimensions()
			if w2 != w || h2 != h {
				t.Errorf("Dimensions() second call = (%d, %d), want (%d, %d)", w2, h2, w, h)
			}
		})
	}
}

func TestDisplaySizeDimensionsUnknown(t *testing.T) {
	if w, h := DisplaySize(42).Dimensions(); w != 0 || h != 0 {
		t.Errorf("Dimensions() = (%d, %d), want (0, 0)", w, h)
	}
}

func TestDisplaySizeString(t *testing.T) {
	tests := []struct {
		size DisplaySize
		want string
	}{
		{Size128x64, "128x64"},
		{Size128x32, "128x32"},
		{Size96x16, "96x16"},
		{Size128x32Quirk, "128x32-quirk"},
		{DisplaySize(42), "DisplaySize(42)"},
	}

	for _, tt := range tests {
		if got := tt.size.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
