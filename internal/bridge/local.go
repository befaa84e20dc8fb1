package bridge

import (
	"fmt"

	"github.com/vcamkit/vcamctl/internal/registry"
	"github.com/vcamkit/vcamctl/internal/videoformat"
)

// Local is a Bridge backed directly by the persisted device registry. It
// serves every configuration operation; frame transport needs a running
// driver and is reported as unsupported.
type Local struct {
	reg *registry.Registry
}

// NewLocal creates a registry-backed bridge.
func NewLocal(reg *registry.Registry) *Local {
	return &Local{reg: reg}
}

// Devices lists the paths of all registered devices in order.
func (l *Local) Devices() []string {
	count := l.reg.CamerasCount()
	paths := make([]string, 0, count)
	for i := 0; i < count; i++ {
		paths = append(paths, l.reg.CameraPath(i))
	}
	return paths
}

// AddDevice registers a device and returns its path.
func (l *Local) AddDevice(description, path string) (string, error) {
	if path != "" && l.reg.CameraExists(path) {
		return "", fmt.Errorf("%w: %s", ErrDeviceExists, path)
	}

	devicePath := l.reg.AddCamera(path, description, nil)
	if devicePath == "" {
		return "", ErrNoFreeDevicePath
	}
	return devicePath, nil
}

// RemoveDevice unregisters the device with the given path.
func (l *Local) RemoveDevice(path string) error {
	if !l.reg.CameraExists(path) {
		return fmt.Errorf("%w: %s", ErrDeviceNotFound, path)
	}
	l.reg.RemoveCamera(path)
	return nil
}

// RemoveDevices unregisters every device.
func (l *Local) RemoveDevices() error {
	for _, path := range l.Devices() {
		l.reg.RemoveCamera(path)
	}
	return nil
}

// Description returns the human-readable device name.
func (l *Local) Description(path string) (string, error) {
	index := l.reg.CameraFromPath(path)
	if index < 0 {
		return "", fmt.Errorf("%w: %s", ErrDeviceNotFound, path)
	}
	return l.reg.CameraDescription(index), nil
}

// SetDescription renames the device.
func (l *Local) SetDescription(path, description string) error {
	index := l.reg.CameraFromPath(path)
	if index < 0 {
		return fmt.Errorf("%w: %s", ErrDeviceNotFound, path)
	}
	l.reg.CameraSetDescription(index, description)
	return nil
}

// Formats returns the device's capture format list. An unknown path yields
// an empty list.
func (l *Local) Formats(path string) []videoformat.Format {
	index := l.reg.CameraFromPath(path)
	if index < 0 {
		return nil
	}
	return l.reg.CameraFormats(index)
}

// SetFormats replaces the device's format list.
func (l *Local) SetFormats(path string, formats []videoformat.Format) error {
	index := l.reg.CameraFromPath(path)
	if index < 0 {
		return fmt.Errorf("%w: %s", ErrDeviceNotFound, path)
	}
	l.reg.CameraSetFormats(index, formats)
	return nil
}

// AddFormat inserts a format at index; a negative index appends.
func (l *Local) AddFormat(path string, format videoformat.Format, index int) error {
	camIndex := l.reg.CameraFromPath(path)
	if camIndex < 0 {
		return fmt.Errorf("%w: %s", ErrDeviceNotFound, path)
	}
	l.reg.CameraAddFormat(camIndex, format, index)
	return nil
}

// RemoveFormat removes the format at index.
func (l *Local) RemoveFormat(path string, index int) error {
	camIndex := l.reg.CameraFromPath(path)
	if camIndex < 0 {
		return fmt.Errorf("%w: %s", ErrDeviceNotFound, path)
	}
	l.reg.CameraRemoveFormat(camIndex, index)
	return nil
}

// SupportedPixelFormats lists the pixel formats usable on a pipeline side.
func (l *Local) SupportedPixelFormats(stream StreamType) []videoformat.FourCC {
	if stream == StreamInput {
		return videoformat.InputFormats()
	}
	return videoformat.OutputFormats()
}

// DefaultPixelFormat returns the preferred pixel format for a side.
func (l *Local) DefaultPixelFormat(stream StreamType) videoformat.FourCC {
	if stream == StreamInput {
		return videoformat.PixFmtYUY2
	}
	return videoformat.PixFmtRGB24
}

// Controls returns the device's control set with current values.
func (l *Local) Controls(path string) ([]Control, error) {
	index := l.reg.CameraFromPath(path)
	if index < 0 {
		return nil, fmt.Errorf("%w: %s", ErrDeviceNotFound, path)
	}

	controls := make([]Control, len(controlDescriptors))
	copy(controls, controlDescriptors)
	for i := range controls {
		controls[i].Value = l.reg.CameraControlValue(index, controls[i].ID)
	}
	return controls, nil
}

// SetControls updates control values by ID. Values outside a control's
// range are clamped; an unknown ID fails the whole call before any write.
func (l *Local) SetControls(path string, values map[string]int) error {
	index := l.reg.CameraFromPath(path)
	if index < 0 {
		return fmt.Errorf("%w: %s", ErrDeviceNotFound, path)
	}

	for id := range values {
		if _, ok := ControlDescriptor(id); !ok {
			return fmt.Errorf("%w: %s", ErrControlNotFound, id)
		}
	}

	for id, value := range values {
		desc, _ := ControlDescriptor(id)
		if value < desc.Minimum {
			value = desc.Minimum
		}
		if value > desc.Maximum {
			value = desc.Maximum
		}
		l.reg.CameraSetControlValue(index, id, value)
	}
	return nil
}

// Picture returns the global placeholder picture path.
func (l *Local) Picture() string {
	return l.reg.Picture()
}

// SetPicture stores the global placeholder picture path.
func (l *Local) SetPicture(path string) {
	l.reg.SetPicture(path)
}

// LogLevel returns the driver log verbosity.
func (l *Local) LogLevel() int {
	return l.reg.LogLevel()
}

// SetLogLevel stores the driver log verbosity.
func (l *Local) SetLogLevel(level int) {
	l.reg.SetLogLevel(level)
}

// UpdateDevices is a no-op for the local backend: the registry is the
// source of truth and the driver rereads it on its own schedule.
func (l *Local) UpdateDevices() error {
	return nil
}

// DeviceStart begins broadcasting frames. Unsupported locally.
func (l *Local) DeviceStart(path string, format videoformat.Format) error {
	return ErrStreamingUnsupported
}

// DeviceStop ends an active broadcast. Unsupported locally.
func (l *Local) DeviceStop(path string) error {
	return ErrStreamingUnsupported
}

// Write sends one raw frame. Unsupported locally.
func (l *Local) Write(path string, frame []byte) error {
	return ErrStreamingUnsupported
}

// ClientsPIDs lists processes reading from any device. The local backend
// cannot observe driver clients.
func (l *Local) ClientsPIDs() []uint64 {
	return nil
}

// ClientExe resolves a client PID to its executable path. The local
// backend cannot observe driver clients.
func (l *Local) ClientExe(pid uint64) string {
	return ""
}
