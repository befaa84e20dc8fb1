package videoformat

import "strings"

// FourCC identifies a pixel format as a packed four-character code.
// The zero value is the "unknown" sentinel.
type FourCC uint32

// FourCCUnknown is returned when a pixel format string is not recognised.
const FourCCUnknown FourCC = 0

// Pixel formats supported by the virtual camera driver. Codes pack four
// ASCII characters least significant byte first, the usual on-wire
// convention.
const (
	PixFmtRGB32 = FourCC('R') | FourCC('G')<<8 | FourCC('B')<<16 | FourCC('4')<<24
	PixFmtRGB24 = FourCC('R') | FourCC('G')<<8 | FourCC('B')<<16 | FourCC('3')<<24
	PixFmtRGB16 = FourCC('R') | FourCC('G')<<8 | FourCC('B')<<16 | FourCC('P')<<24
	PixFmtRGB15 = FourCC('R') | FourCC('G')<<8 | FourCC('B')<<16 | FourCC('O')<<24
	PixFmtBGR32 = FourCC('B') | FourCC('G')<<8 | FourCC('R')<<16 | FourCC('4')<<24
	PixFmtBGR24 = FourCC('B') | FourCC('G')<<8 | FourCC('R')<<16 | FourCC('3')<<24
	PixFmtUYVY  = FourCC('U') | FourCC('Y')<<8 | FourCC('V')<<16 | FourCC('Y')<<24
	PixFmtYUY2  = FourCC('Y') | FourCC('U')<<8 | FourCC('Y')<<16 | FourCC('2')<<24
	PixFmtNV12  = FourCC('N') | FourCC('V')<<8 | FourCC('1')<<16 | FourCC('2')<<24
	PixFmtNV21  = FourCC('N') | FourCC('V')<<8 | FourCC('2')<<16 | FourCC('1')<<24
)

// fourccNames maps each known code to its canonical short string form, the
// form used in the persisted registry and on the command line.
var fourccNames = map[FourCC]string{
	PixFmtRGB32: "RGB32",
	PixFmtRGB24: "RGB24",
	PixFmtRGB16: "RGB16",
	PixFmtRGB15: "RGB15",
	PixFmtBGR32: "BGR32",
	PixFmtBGR24: "BGR24",
	PixFmtUYVY:  "UYVY",
	PixFmtYUY2:  "YUY2",
	PixFmtNV12:  "NV12",
	PixFmtNV21:  "NV21",
}

// fourccBitsPerPixel maps each known code to its storage density. The
// planar YUV 4:2:0 formats average 12 bits per pixel across their planes.
var fourccBitsPerPixel = map[FourCC]int{
	PixFmtRGB32: 32,
	PixFmtRGB24: 24,
	PixFmtRGB16: 16,
	PixFmtRGB15: 16,
	PixFmtBGR32: 32,
	PixFmtBGR24: 24,
	PixFmtUYVY:  16,
	PixFmtYUY2:  16,
	PixFmtNV12:  12,
	PixFmtNV21:  12,
}

// String returns the canonical short form of the code, or the empty string
// for unknown codes.
func (fcc FourCC) String() string {
	return fourccNames[fcc]
}

// BitsPerPixel returns the code's storage density, or 0 for unknown codes.
func (fcc FourCC) BitsPerPixel() int {
	return fourccBitsPerPixel[fcc]
}

// FourCCFromString parses a canonical pixel format name. Matching is
// case-insensitive. Unrecognised names yield FourCCUnknown, never an error:
// the registry stores whatever it is given and validity is checked at the
// Format level.
func FourCCFromString(s string) FourCC {
	name := strings.ToUpper(strings.TrimSpace(s))
	for fcc, n := range fourccNames {
		if n == name {
			return fcc
		}
	}
	return FourCCUnknown
}

// InputFormats returns the pixel formats the driver can deliver to capture
// clients, in preference order.
func InputFormats() []FourCC {
	return []FourCC{PixFmtRGB32, PixFmtRGB24, PixFmtUYVY, PixFmtYUY2}
}

// OutputFormats returns the pixel formats accepted for frames written to a
// virtual device, in preference order.
func OutputFormats() []FourCC {
	return []FourCC{
		PixFmtRGB32, PixFmtRGB24, PixFmtRGB16, PixFmtRGB15,
		PixFmtBGR32, PixFmtBGR24, PixFmtUYVY, PixFmtYUY2,
		PixFmtNV12, PixFmtNV21,
	}
}
