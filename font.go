package ssd1306

// Bitmap converts a character to an 8x8 monochrome bitmap encoded as 8
// column bytes: byte i is pixel column i, bit j (LSB = top) is the pixel in
// row j of that column.
//
// The glyphs are the 7x7 font from https://github.com/techninja/MarioChron/,
// covering '!' through '}'. Any other rune, including space, yields the
// all-zero blank glyph, so the function is total and never fails.
func Bitmap(r rune) [8]byte {
	switch r {
	case '!':
		return [8]byte{0x00, 0x00, 0x5F, 0x00, 0x00, 0x00, 0x00, 0x00}
	case '"':
		return [8]byte{0x00, 0x07, 0x00, 0x07, 0x00, 0x00, 0x00, 0x00}
	case '#':
		return [8]byte{0x14, 0x7F, 0x14, 0x7F, 0x14, 0x00, 0x00, 0x00}
	case '$':
		return [8]byte{0x24, 0x2A, 0x7F, 0x2A, 0x12, 0x00, 0x00, 0x00}
	case '%':
		return [8]byte{0x23, 0x13, 0x08, 0x64, 0x62, 0x00, 0x00, 0x00}
	case '&':
		return [8]byte{0x36, 0x49, 0x55, 0x22, 0x50, 0x00, 0x00, 0x00}
	case '\'':
		return [8]byte{0x00, 0x05, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00}
	case '(':
		return [8]byte{0x00, 0x1C, 0x22, 0x41, 0x00, 0x00, 0x00, 0x00}
	case ')':
		return [8]byte{0x00, 0x41, 0x22, 0x1C, 0x00, 0x00, 0x00, 0x00}
	case '*':
		return [8]byte{0x08, 0x2A, 0x1C, 0x2A, 0x08, 0x00, 0x00, 0x00}
	case '+':
		return [8]byte{0x08, 0x08, 0x3E, 0x08, 0x08, 0x00, 0x00, 0x00}
	case ',':
		return [8]byte{0x00, 0x50, 0x30, 0x00, 0x00, 0x00, 0x00, 0x00}
	case '-':
		return [8]byte{0x00, 0x18, 0x18, 0x18, 0x18, 0x18, 0x00, 0x00}
	case '.':
		return [8]byte{0x00, 0x60, 0x60, 0x00, 0x00, 0x00, 0x00, 0x00}
	case '/':
		return [8]byte{0x20, 0x10, 0x08, 0x04, 0x02, 0x00, 0x00, 0x00}
	case '0':
		return [8]byte{0x1C, 0x3E, 0x61, 0x41, 0x43, 0x3E, 0x1C, 0x00}
	case '1':
		return [8]byte{0x40, 0x42, 0x7F, 0x7F, 0x40, 0x40, 0x00, 0x00}
	case '2':
		return [8]byte{0x62, 0x73, 0x79, 0x59, 0x5D, 0x4F, 0x46, 0x00}
	case '3':
		return [8]byte{0x20, 0x61, 0x49, 0x4D, 0x4F, 0x7B, 0x31, 0x00}
	case '4':
		return [8]byte{0x18, 0x1C, 0x16, 0x13, 0x7F, 0x7F, 0x10, 0x00}
	case '5':
		return [8]byte{0x27, 0x67, 0x45, 0x45, 0x45, 0x7D, 0x38, 0x00}
	case '6':
		return [8]byte{0x3C, 0x7E, 0x4B, 0x49, 0x49, 0x79, 0x30, 0x00}
	case '7':
		return [8]byte{0x03, 0x03, 0x71, 0x79, 0x0D, 0x07, 0x03, 0x00}
	case '8':
		return [8]byte{0x36, 0x7F, 0x49, 0x49, 0x49, 0x7F, 0x36, 0x00}
	case '9':
		return [8]byte{0x06, 0x4F, 0x49, 0x49, 0x69, 0x3F, 0x1E, 0x00}
	case ':':
		return [8]byte{0x00, 0x36, 0x36, 0x00, 0x00, 0x00, 0x00, 0x00}
	case ';':
		return [8]byte{0x00, 0x56, 0x36, 0x00, 0x00, 0x00, 0x00, 0x00}
	case '<':
		return [8]byte{0x00, 0x08, 0x14, 0x22, 0x41, 0x00, 0x00, 0x00}
	case '=':
		return [8]byte{0x14, 0x14, 0x14, 0x14, 0x14, 0x00, 0x00, 0x00}
	case '>':
		return [8]byte{0x41, 0x22, 0x14, 0x08, 0x00, 0x00, 0x00, 0x00}
	case '?':
		return [8]byte{0x02, 0x01, 0x51, 0x09, 0x06, 0x00, 0x00, 0x00}
	case '@':
		return [8]byte{0x32, 0x49, 0x79, 0x41, 0x3E, 0x00, 0x00, 0x00}
	case 'A':
		return [8]byte{0x7E, 0x11, 0x11, 0x11, 0x7E, 0x00, 0x00, 0x00}
	case 'B':
		return [8]byte{0x7F, 0x49, 0x49, 0x49, 0x36, 0x00, 0x00, 0x00}
	case 'C':
		return [8]byte{0x3E, 0x41, 0x41, 0x41, 0x22, 0x00, 0x00, 0x00}
	case 'D':
		return [8]byte{0x7F, 0x7F, 0x41, 0x41, 0x63, 0x3E, 0x1C, 0x00}
	case 'E':
		return [8]byte{0x7F, 0x49, 0x49, 0x49, 0x41, 0x00, 0x00, 0x00}
	case 'F':
		return [8]byte{0x7F, 0x09, 0x09, 0x01, 0x01, 0x00, 0x00, 0x00}
	case 'G':
		return [8]byte{0x3E, 0x41, 0x41, 0x51, 0x32, 0x00, 0x00, 0x00}
	case 'H':
		return [8]byte{0x7F, 0x08, 0x08, 0x08, 0x7F, 0x00, 0x00, 0x00}
	case 'I':
		return [8]byte{0x00, 0x41, 0x7F, 0x41, 0x00, 0x00, 0x00, 0x00}
	case 'J':
		return [8]byte{0x20, 0x40, 0x41, 0x3F, 0x01, 0x00, 0x00, 0x00}
	case 'K':
		return [8]byte{0x7F, 0x08, 0x14, 0x22, 0x41, 0x00, 0x00, 0x00}
	case 'L':
		return [8]byte{0x7F, 0x7F, 0x40, 0x40, 0x40, 0x40, 0x00, 0x00}
	case 'M':
		return [8]byte{0x7F, 0x02, 0x04, 0x02, 0x7F, 0x00, 0x00, 0x00}
	case 'N':
		return [8]byte{0x7F, 0x04, 0x08, 0x10, 0x7F, 0x00, 0x00, 0x00}
	case 'O':
		return [8]byte{0x3E, 0x7F, 0x41, 0x41, 0x41, 0x7F, 0x3E, 0x00}
	case 'P':
		return [8]byte{0x7F, 0x09, 0x09, 0x09, 0x06, 0x00, 0x00, 0x00}
	case 'Q':
		return [8]byte{0x3E, 0x41, 0x51, 0x21, 0x5E, 0x00, 0x00, 0x00}
	case 'R':
		return [8]byte{0x7F, 0x7F, 0x11, 0x31, 0x79, 0x6F, 0x4E, 0x00}
	case 'S':
		return [8]byte{0x46, 0x49, 0x49, 0x49, 0x31, 0x00, 0x00, 0x00}
	case 'T':
		return [8]byte{0x01, 0x01, 0x7F, 0x01, 0x01, 0x00, 0x00, 0x00}
	case 'U':
		return [8]byte{0x3F, 0x40, 0x40, 0x40, 0x3F, 0x00, 0x00, 0x00}
	case 'V':
		return [8]byte{0x1F, 0x20, 0x40, 0x20, 0x1F, 0x00, 0x00, 0x00}
	case 'W':
		return [8]byte{0x7F, 0x7F, 0x38, 0x1C, 0x38, 0x7F, 0x7F, 0x00}
	case 'X':
		return [8]byte{0x63, 0x14, 0x08, 0x14, 0x63, 0x00, 0x00, 0x00}
	case 'Y':
		return [8]byte{0x03, 0x04, 0x78, 0x04, 0x03, 0x00, 0x00, 0x00}
	case 'Z':
		return [8]byte{0x61, 0x51, 0x49, 0x45, 0x43, 0x00, 0x00, 0x00}
	case '[':
		return [8]byte{0x00, 0x00, 0x7F, 0x41, 0x41, 0x00, 0x00, 0x00}
	case '\\':
		return [8]byte{0x02, 0x04, 0x08, 0x10, 0x20, 0x00, 0x00, 0x00}
	case ']':
		return [8]byte{0x41, 0x41, 0x7F, 0x00, 0x00, 0x00, 0x00, 0x00}
	case '^':
		return [8]byte{0x04, 0x02, 0x01, 0x02, 0x04, 0x00, 0x00, 0x00}
	case '_':
		return [8]byte{0x40, 0x40, 0x40, 0x40, 0x40, 0x00, 0x00, 0x00}
	case '`':
		return [8]byte{0x00, 0x01, 0x02, 0x04, 0x00, 0x00, 0x00, 0x00}
	case 'a':
		return [8]byte{0x20, 0x54, 0x54, 0x54, 0x78, 0x00, 0x00, 0x00}
	case 'b':
		return [8]byte{0x7F, 0x48, 0x44, 0x44, 0x38, 0x00, 0x00, 0x00}
	case 'c':
		return [8]byte{0x38, 0x44, 0x44, 0x44, 0x20, 0x00, 0x00, 0x00}
	case 'd':
		return [8]byte{0x38, 0x44, 0x44, 0x48, 0x7F, 0x00, 0x00, 0x00}
	case 'e':
		return [8]byte{0x38, 0x54, 0x54, 0x54, 0x18, 0x00, 0x00, 0x00}
	case 'f':
		return [8]byte{0x08, 0x7E, 0x09, 0x01, 0x02, 0x00, 0x00, 0x00}
	case 'g':
		return [8]byte{0x08, 0x14, 0x54, 0x54, 0x3C, 0x00, 0x00, 0x00}
	case 'h':
		return [8]byte{0x7F, 0x08, 0x04, 0x04, 0x78, 0x00, 0x00, 0x00}
	case 'i':
		return [8]byte{0x00, 0x44, 0x7D, 0x40, 0x00, 0x00, 0x00, 0x00}
	case 'j':
		return [8]byte{0x20, 0x40, 0x44, 0x3D, 0x00, 0x00, 0x00, 0x00}
	case 'k':
		return [8]byte{0x00, 0x7F, 0x10, 0x28, 0x44, 0x00, 0x00, 0x00}
	case 'l':
		return [8]byte{0x00, 0x41, 0x7F, 0x40, 0x00, 0x00, 0x00, 0x00}
	case 'm':
		return [8]byte{0x7C, 0x04, 0x18, 0x04, 0x78, 0x00, 0x00, 0x00}
	case 'n':
		return [8]byte{0x7C, 0x08, 0x04, 0x04, 0x78, 0x00, 0x00, 0x00}
	case 'o':
		return [8]byte{0x38, 0x44, 0x44, 0x44, 0x38, 0x00, 0x00, 0x00}
	case 'p':
		return [8]byte{0x7C, 0x14, 0x14, 0x14, 0x08, 0x00, 0x00, 0x00}
	case 'q':
		return [8]byte{0x08, 0x14, 0x14, 0x18, 0x7C, 0x00, 0x00, 0x00}
	case 'r':
		return [8]byte{0x7C, 0x08, 0x04, 0x04, 0x08, 0x00, 0x00, 0x00}
	case 's':
		return [8]byte{0x48, 0x54, 0x54, 0x54, 0x20, 0x00, 0x00, 0x00}
	case 't':
		return [8]byte{0x04, 0x3F, 0x44, 0x40, 0x20, 0x00, 0x00, 0x00}
	case 'u':
		return [8]byte{0x3C, 0x40, 0x40, 0x20, 0x7C, 0x00, 0x00, 0x00}
	case 'v':
		return [8]byte{0x1C, 0x20, 0x40, 0x20, 0x1C, 0x00, 0x00, 0x00}
	case 'w':
		return [8]byte{0x3C, 0x40, 0x30, 0x40, 0x3C, 0x00, 0x00, 0x00}
	case 'x':
		return [8]byte{0x00, 0x44, 0x28, 0x10, 0x28, 0x44, 0x00, 0x00}
	case 'y':
		return [8]byte{0x0C, 0x50, 0x50, 0x50, 0x3C, 0x00, 0x00, 0x00}
	case 'z':
		return [8]byte{0x44, 0x64, 0x54, 0x4C, 0x44, 0x00, 0x00, 0x00}
	case '{':
		return [8]byte{0x00, 0x08, 0x36, 0x41, 0x00, 0x00, 0x00, 0x00}
	case '|':
		return [8]byte{0x00, 0x00, 0x7F, 0x00, 0x00, 0x00, 0x00, 0x00}
	case '}':
		return [8]byte{0x00, 0x41, 0x36, 0x08, 0x00, 0x00, 0x00, 0x00}
	default:
		return [8]byte{}
	}
}
