package bridge

import "errors"

// Sentinel errors returned by Bridge implementations. Callers match them
// with errors.Is.
var (
	// ErrDeviceNotFound indicates the path names no registered device.
	ErrDeviceNotFound = errors.New("bridge: device not found")

	// ErrDeviceExists indicates an explicit path is already registered.
	ErrDeviceExists = errors.New("bridge: device path already registered")

	// ErrNoFreeDevicePath indicates the path allocator found no free slot.
	ErrNoFreeDevicePath = errors.New("bridge: no free device path")

	// ErrControlNotFound indicates an unknown control ID.
	ErrControlNotFound = errors.New("bridge: control not found")

	// ErrStreamingUnsupported indicates the backend cannot move frames;
	// broadcasting requires the platform driver's IPC transport.
	ErrStreamingUnsupported = errors.New("bridge: streaming not supported by this backend")
)
