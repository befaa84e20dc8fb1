// Package videoformat provides the pixel-format value types shared by the
// device registry, the IPC bridge and the command line tool.
//
// A Format describes one capture mode of a virtual camera: a fourcc pixel
// format code, frame dimensions and the minimum frame rate expressed as a
// rational number. Formats are plain values; they carry no behaviour beyond
// parsing, formatting and validity checks.
//
// # Key Types
//
//   - FourCC: four-character pixel format code (RGB32, YUY2, NV12, ...)
//   - Fraction: rational frame rate ("30/1")
//   - Format: one capture mode (fourcc + width + height + rate)
//
// Unknown or malformed fields never fail hard: parsing yields the zero
// sentinel and the resulting Format reports IsValid() == false. Callers
// decide whether invalid values are filtered or surfaced.
package videoformat
