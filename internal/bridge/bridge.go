package bridge

import (
	"github.com/vcamkit/vcamctl/internal/videoformat"
)

// StreamType selects one side of the frame pipeline.
type StreamType int

// Stream directions.
const (
	// StreamInput is the producer side: formats a broadcaster may feed in.
	StreamInput StreamType = iota

	// StreamOutput is the consumer side: formats capture clients may read.
	StreamOutput
)

// ControlType describes how a control value is interpreted.
type ControlType int

// Control value kinds.
const (
	ControlTypeInteger ControlType = iota
	ControlTypeBoolean
	ControlTypeMenu
)

// String returns the human-readable control type name.
func (t ControlType) String() string {
	switch t {
	case ControlTypeInteger:
		return "Integer"
	case ControlTypeBoolean:
		return "Boolean"
	case ControlTypeMenu:
		return "Menu"
	default:
		return "Unknown"
	}
}

// Control is one adjustable device parameter together with its metadata.
// Value is the current per-device setting; the remaining fields come from
// the static descriptor table and are identical across devices.
type Control struct {
	ID          string
	Description string
	Type        ControlType
	Minimum     int
	Maximum     int
	Step        int
	Default     int
	Value       int
	Menu        []string
}

// Bridge is the frontend-facing surface of the virtual camera subsystem.
// Paths are the unique device handles assigned at creation time.
type Bridge interface {
	// Devices lists the paths of all registered devices in order.
	Devices() []string

	// AddDevice registers a device and returns its path. An empty path
	// requests automatic allocation.
	AddDevice(description, path string) (string, error)

	// RemoveDevice unregisters the device with the given path.
	RemoveDevice(path string) error

	// RemoveDevices unregisters every device.
	RemoveDevices() error

	// Description returns the human-readable device name.
	Description(path string) (string, error)

	// SetDescription renames the device. The path never changes.
	SetDescription(path, description string) error

	// Formats returns the device's capture format list in order.
	Formats(path string) []videoformat.Format

	// SetFormats replaces the device's format list.
	SetFormats(path string, formats []videoformat.Format) error

	// AddFormat inserts a format at index; a negative or out-of-range
	// index appends.
	AddFormat(path string, format videoformat.Format, index int) error

	// RemoveFormat removes the format at index.
	RemoveFormat(path string, index int) error

	// SupportedPixelFormats lists the pixel formats usable on one side of
	// the frame pipeline.
	SupportedPixelFormats(stream StreamType) []videoformat.FourCC

	// DefaultPixelFormat returns the preferred pixel format for a side.
	DefaultPixelFormat(stream StreamType) videoformat.FourCC

	// Controls returns the device's control set with current values.
	Controls(path string) ([]Control, error)

	// SetControls updates control values by ID. Values are clamped to the
	// control's range; unknown IDs fail the whole call.
	SetControls(path string, values map[string]int) error

	// Picture returns the global placeholder picture path.
	Picture() string

	// SetPicture stores the global placeholder picture path.
	SetPicture(path string)

	// LogLevel returns the driver log verbosity.
	LogLevel() int

	// SetLogLevel stores the driver log verbosity.
	SetLogLevel(level int)

	// UpdateDevices notifies the running driver that the registry changed.
	UpdateDevices() error

	// DeviceStart begins broadcasting frames to the device.
	DeviceStart(path string, format videoformat.Format) error

	// DeviceStop ends an active broadcast.
	DeviceStop(path string) error

	// Write sends one raw frame to a started device.
	Write(path string, frame []byte) error

	// ClientsPIDs lists processes currently reading from any device.
	ClientsPIDs() []uint64

	// ClientExe resolves a client PID to its executable path.
	ClientExe(pid uint64) string
}

// controlDescriptors is the static control table shared by every device.
// Per-device values are persisted separately; everything else here is
// fixed metadata.
var controlDescriptors = []Control{
	{ID: "brightness", Description: "Brightness", Type: ControlTypeInteger,
		Minimum: -255, Maximum: 255, Step: 1},
	{ID: "contrast", Description: "Contrast", Type: ControlTypeInteger,
		Minimum: -255, Maximum: 255, Step: 1},
	{ID: "saturation", Description: "Saturation", Type: ControlTypeInteger,
		Minimum: -255, Maximum: 255, Step: 1},
	{ID: "gamma", Description: "Gamma", Type: ControlTypeInteger,
		Minimum: -255, Maximum: 255, Step: 1},
	{ID: "hue", Description: "Hue", Type: ControlTypeInteger,
		Minimum: -255, Maximum: 255, Step: 1},
	{ID: "colorfilter", Description: "Color Filter", Type: ControlTypeMenu,
		Minimum: 0, Maximum: 2, Step: 1,
		Menu: []string{"None", "Grayscale", "Sepia"}},
	{ID: "scaling", Description: "Scaling", Type: ControlTypeMenu,
		Minimum: 0, Maximum: 1, Step: 1,
		Menu: []string{"Fast", "Linear"}},
	{ID: "aspect_ratio", Description: "Aspect Ratio", Type: ControlTypeMenu,
		Minimum: 0, Maximum: 2, Step: 1,
		Menu: []string{"Ignore", "Keep", "Expanding"}},
	{ID: "swap_rgb", Description: "Swap RGB", Type: ControlTypeBoolean,
		Minimum: 0, Maximum: 1, Step: 1},
	{ID: "horizontal_mirror", Description: "Horizontal Mirror", Type: ControlTypeBoolean,
		Minimum: 0, Maximum: 1, Step: 1},
	{ID: "vertical_mirror", Description: "Vertical Mirror", Type: ControlTypeBoolean,
		Minimum: 0, Maximum: 1, Step: 1},
}

// ControlDescriptor returns the static descriptor for a control ID.
func ControlDescriptor(id string) (Control, bool) {
	for _, c := range controlDescriptors {
		if c.ID == id {
			return c, true
		}
	}
	return Control{}, false
}
