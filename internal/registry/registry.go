package registry

import (
	"strconv"

	"github.com/vcamkit/vcamctl/internal/prefstore"
	"github.com/vcamkit/vcamctl/internal/videoformat"
)

// DefaultLogLevel is the driver log level used when none is stored.
// Levels follow the syslog-like 0..7 scale (0 emergency .. 7 debug);
// 4 is "warning".
const DefaultLogLevel = 4

// Logger defines the logging interface used by the Registry.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Registry owns the ordered list of virtual camera records persisted in a
// key-value store. All methods are synchronous, best-effort and follow the
// default-on-miss contract described in the package documentation.
type Registry struct {
	store   prefstore.Store
	classes ClassLister
	logger  Logger
}

// New creates a registry over the given store. classes lists the platform
// identifiers the path allocator must avoid; nil means no platform
// enumeration is available and only in-store paths are checked.
func New(store prefstore.Store, classes ClassLister) *Registry {
	if classes == nil {
		classes = noClasses{}
	}
	return &Registry{
		store:   store,
		classes: classes,
		logger:  noopLogger{},
	}
}

// SetLogger sets the logger for the registry.
func (r *Registry) SetLogger(logger Logger) {
	r.logger = logger
}

// cameraKey builds a store key under the 1-based slot of camera index i.
func cameraKey(i int, rest ...string) string {
	segments := append([]string{"Cameras", strconv.Itoa(i + 1)}, rest...)
	return prefstore.Join(segments...)
}

// CamerasCount returns the number of registered cameras.
func (r *Registry) CamerasCount() int {
	return r.store.ReadInt(`Cameras\size`, 0)
}

// AddCamera appends a camera record and returns its device path.
//
// When path is non-empty and already registered the call fails and returns
// the empty string. When path is empty a fresh one is allocated; if the
// allocator finds no free slot the call returns the empty string and the
// store is left untouched. An explicitly supplied unused path is taken
// as-is without further checks.
func (r *Registry) AddCamera(path, description string, formats []videoformat.Format) string {
	if path != "" && r.CameraExists(path) {
		r.logger.Warn("device path already registered", "path", path)
		return ""
	}

	devicePath := path
	if devicePath == "" {
		devicePath = r.CreateDevicePath()
		if devicePath == "" {
			r.logger.Error("no free device path", "max", MaxDevices)
			return ""
		}
	}

	index := r.CamerasCount()
	r.store.WriteInt(`Cameras\size`, index+1)
	r.store.WriteString(cameraKey(index, "description"), description)
	r.store.WriteString(cameraKey(index, "path"), devicePath)
	r.writeFormats(index, formats)

	r.logger.Info("camera added", "path", devicePath, "description", description)
	return devicePath
}

// RemoveCamera deletes the record with the given path and renumbers every
// later record down one slot. Unknown paths are a no-op.
func (r *Registry) RemoveCamera(path string) {
	index := r.CameraFromPath(path)
	if index < 0 {
		return
	}

	r.CameraSetFormats(index, nil)

	count := r.CamerasCount()
	r.store.DeleteKey(cameraKey(index) + prefstore.Sep)

	// Close the gap: each subsequent slot moves down by one.
	for i := index + 1; i < count; i++ {
		r.store.MoveTree(cameraKey(i), cameraKey(i-1))
	}

	if count > 1 {
		r.store.WriteInt(`Cameras\size`, count-1)
	} else {
		r.store.DeleteKey(`Cameras` + prefstore.Sep)
	}

	r.logger.Info("camera removed", "path", path)
}

// CameraFromPath returns the 0-based index of the camera with the given
// path, or -1 when no such camera exists.
func (r *Registry) CameraFromPath(path string) int {
	for i := 0; i < r.CamerasCount(); i++ {
		if r.CameraPath(i) == path {
			return i
		}
	}
	return -1
}

// CameraExists reports whether a camera with the given path is registered.
func (r *Registry) CameraExists(path string) bool {
	return r.CameraFromPath(path) >= 0
}

// CameraPath returns the device path of the camera at index, or the empty
// string when the slot is absent.
func (r *Registry) CameraPath(index int) string {
	return r.store.ReadString(cameraKey(index, "path"), "")
}

// CameraDescription returns the description of the camera at index, or the
// empty string for out-of-range indices.
func (r *Registry) CameraDescription(index int) string {
	if index < 0 || index >= r.CamerasCount() {
		return ""
	}
	return r.store.ReadString(cameraKey(index, "description"), "")
}

// CameraSetDescription updates the description of the camera at index.
// Out-of-range indices are a no-op; the device path never changes.
func (r *Registry) CameraSetDescription(index int, description string) {
	if index < 0 || index >= r.CamerasCount() {
		return
	}
	r.store.WriteString(cameraKey(index, "description"), description)
}

// FormatsCount returns the number of stored formats for the camera at index.
func (r *Registry) FormatsCount(index int) int {
	return r.store.ReadInt(cameraKey(index, "Formats", "size"), 0)
}

// CameraFormat decodes the single format at formatIndex. The value is
// returned as stored, valid or not; validity checking is the caller's.
func (r *Registry) CameraFormat(index, formatIndex int) videoformat.Format {
	return r.readFormat(index, formatIndex)
}

// CameraFormats decodes the full format list of the camera at index,
// dropping entries that do not decode to a valid format.
func (r *Registry) CameraFormats(index int) []videoformat.Format {
	var formats []videoformat.Format
	for i := 0; i < r.FormatsCount(index); i++ {
		if f := r.readFormat(index, i); f.IsValid() {
			formats = append(formats, f)
		}
	}
	return formats
}

// CameraSetFormats replaces the whole format list of the camera at index.
// The previous subtree is deleted first so stale entries cannot survive a
// shrinking rewrite. Out-of-range indices are a no-op.
func (r *Registry) CameraSetFormats(index int, formats []videoformat.Format) {
	if index < 0 || index >= r.CamerasCount() {
		return
	}

	r.store.DeleteKey(cameraKey(index, "Formats") + prefstore.Sep)
	r.writeFormats(index, formats)
}

// CameraAddFormat inserts format at position at in the camera's format
// list. Positions outside [0, len] (including the conventional -1) append.
func (r *Registry) CameraAddFormat(index int, format videoformat.Format, at int) {
	if index < 0 || index >= r.CamerasCount() {
		return
	}

	formats := r.CameraFormats(index)
	if at < 0 || at > len(formats) {
		at = len(formats)
	}

	formats = append(formats, videoformat.Format{})
	copy(formats[at+1:], formats[at:])
	formats[at] = format

	r.CameraSetFormats(index, formats)
}

// CameraRemoveFormat removes the format at position at. Out-of-range
// positions leave the list unchanged.
func (r *Registry) CameraRemoveFormat(index, at int) {
	if index < 0 || index >= r.CamerasCount() {
		return
	}

	formats := r.CameraFormats(index)
	if at < 0 || at >= len(formats) {
		return
	}

	formats = append(formats[:at], formats[at+1:]...)
	r.CameraSetFormats(index, formats)
}

// CameraControlValue returns the stored value of a device control, or 0
// when the control has never been written.
func (r *Registry) CameraControlValue(index int, key string) int {
	return r.store.ReadInt(cameraKey(index, "Controls", key), 0)
}

// CameraSetControlValue stores a device control value. Out-of-range camera
// indices are a no-op.
func (r *Registry) CameraSetControlValue(index int, key string, value int) {
	if index < 0 || index >= r.CamerasCount() {
		return
	}
	r.store.WriteInt(cameraKey(index, "Controls", key), value)
}

// Picture returns the placeholder picture path shown when no client is
// streaming, or the empty string when unset.
func (r *Registry) Picture() string {
	return r.store.ReadString(`picture`, "")
}

// SetPicture stores the placeholder picture path.
func (r *Registry) SetPicture(path string) {
	r.store.WriteString(`picture`, path)
}

// LogLevel returns the stored driver log level, or DefaultLogLevel.
func (r *Registry) LogLevel() int {
	return r.store.ReadInt(`loglevel`, DefaultLogLevel)
}

// SetLogLevel stores the driver log level.
func (r *Registry) SetLogLevel(level int) {
	r.store.WriteInt(`loglevel`, level)
}
