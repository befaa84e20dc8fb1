package settings

import (
	"fmt"

	"github.com/vcamkit/vcamctl/internal/bridge"
	"github.com/vcamkit/vcamctl/internal/videoformat"
)

// Logger defines the logging interface used while applying a file.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Apply replaces the current device setup with the one the file describes.
// Global defaults are applied first, then every registered device is
// removed and the file's cameras created in order. Cameras with an empty
// description or no resolvable formats are skipped with a warning; formats
// the output pipeline cannot serve are dropped per camera.
func Apply(f *File, b bridge.Bridge, log Logger) error {
	if log == nil {
		log = noopLogger{}
	}

	if f.General.DefaultFrame != "" {
		b.SetPicture(f.General.DefaultFrame)
	}
	if f.General.LogLevel != "" {
		if level, ok := ParseLogLevel(f.General.LogLevel); ok {
			b.SetLogLevel(level)
		} else {
			log.Warn("unknown log level in settings", "loglevel", f.General.LogLevel)
		}
	}

	pools := make([][]videoformat.Format, 0, len(f.Formats))
	for i, pool := range f.Formats {
		expanded := pool.Expand()
		if len(expanded) == 0 {
			log.Warn("format pool expands to nothing", "pool", i+1)
		}
		pools = append(pools, expanded)
	}

	if err := b.RemoveDevices(); err != nil {
		return fmt.Errorf("removing existing devices: %w", err)
	}

	supported := b.SupportedPixelFormats(bridge.StreamOutput)

	for i, cam := range f.Cameras {
		if cam.Description == "" {
			log.Warn("camera has no description, skipping", "camera", i+1)
			continue
		}

		formats := poolFormats(cam.Formats, pools)
		if len(formats) == 0 {
			log.Warn("camera has no formats, skipping",
				"camera", i+1, "description", cam.Description)
			continue
		}

		path, err := b.AddDevice(cam.Description, "")
		if err != nil {
			return fmt.Errorf("creating device %q: %w", cam.Description, err)
		}

		for _, format := range formats {
			if !fourccSupported(format.FourCC, supported) {
				log.Warn("pixel format not supported by output pipeline",
					"device", path, "format", format.FourCC.String())
				continue
			}
			if err := b.AddFormat(path, format, -1); err != nil {
				return fmt.Errorf("adding format to %q: %w", path, err)
			}
		}

		log.Info("device created", "path", path, "description", cam.Description)
	}

	if err := b.UpdateDevices(); err != nil {
		return fmt.Errorf("notifying driver: %w", err)
	}
	return nil
}

func fourccSupported(fcc videoformat.FourCC, supported []videoformat.FourCC) bool {
	for _, s := range supported {
		if s == fcc {
			return true
		}
	}
	return false
}
