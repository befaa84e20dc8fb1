package videoformat

import "fmt"

// Format describes one capture mode of a virtual camera device.
// Order matters when Formats appear in a list: the position is the
// caller-visible format index.
type Format struct {
	FourCC       FourCC
	Width        int
	Height       int
	MinFrameRate Fraction
}

// New builds a Format from its four fields.
func New(fcc FourCC, width, height int, rate Fraction) Format {
	return Format{
		FourCC:       fcc,
		Width:        width,
		Height:       height,
		MinFrameRate: rate,
	}
}

// IsValid reports whether the format is usable: a recognised pixel format
// and positive dimensions and frame rate. Decoding a stored format never
// fails; invalid values are represented and filtered here instead.
func (f Format) IsValid() bool {
	return f.FourCC.String() != "" &&
		f.Width > 0 &&
		f.Height > 0 &&
		f.MinFrameRate.IsValid()
}

// FrameSize returns the byte size of one tightly packed frame.
func (f Format) FrameSize() int {
	return f.Width * f.Height * f.FourCC.BitsPerPixel() / 8
}

// String renders the format for human-readable listings.
func (f Format) String() string {
	return fmt.Sprintf("%s %dx%d %s FPS", f.FourCC, f.Width, f.Height, f.MinFrameRate)
}
