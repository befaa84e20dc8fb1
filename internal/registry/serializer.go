package registry

import (
	"strconv"

	"github.com/vcamkit/vcamctl/internal/videoformat"
)

// Formats are persisted as four sibling values per entry:
//
//	Cameras\<i>\Formats\<j>\format -> fourcc code string
//	Cameras\<i>\Formats\<j>\width  -> int
//	Cameras\<i>\Formats\<j>\height -> int
//	Cameras\<i>\Formats\<j>\fps    -> "num/den" string
//
// with Formats\size holding the entry count. Like camera slots, format
// slots are 1-based in storage.

// formatKey builds a store key under format slot j of camera index i.
func formatKey(i, j int, leaf string) string {
	return cameraKey(i, "Formats", strconv.Itoa(j+1), leaf)
}

// writeFormats persists the full format list for camera index i. Callers
// clear the previous Formats subtree first when replacing.
func (r *Registry) writeFormats(i int, formats []videoformat.Format) {
	if len(formats) == 0 {
		return
	}

	r.store.WriteInt(cameraKey(i, "Formats", "size"), len(formats))
	for j, f := range formats {
		r.store.WriteString(formatKey(i, j, "format"), f.FourCC.String())
		r.store.WriteInt(formatKey(i, j, "width"), f.Width)
		r.store.WriteInt(formatKey(i, j, "height"), f.Height)
		r.store.WriteString(formatKey(i, j, "fps"), f.MinFrameRate.String())
	}
}

// readFormat decodes the format at slot j of camera index i. Missing or
// malformed values decode to the zero Format, which IsValid rejects.
func (r *Registry) readFormat(i, j int) videoformat.Format {
	return videoformat.Format{
		FourCC:       videoformat.FourCCFromString(r.store.ReadString(formatKey(i, j, "format"), "")),
		Width:        r.store.ReadInt(formatKey(i, j, "width"), 0),
		Height:       r.store.ReadInt(formatKey(i, j, "height"), 0),
		MinFrameRate: videoformat.ParseFraction(r.store.ReadString(formatKey(i, j, "fps"), "")),
	}
}
