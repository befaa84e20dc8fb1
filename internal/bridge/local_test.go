package bridge

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vcamkit/vcamctl/internal/prefstore"
	"github.com/vcamkit/vcamctl/internal/registry"
	"github.com/vcamkit/vcamctl/internal/videoformat"
)

func newLocal(t *testing.T) *Local {
	t.Helper()
	return NewLocal(registry.New(prefstore.NewMemory(), nil))
}

func TestLocal_DeviceLifecycle(t *testing.T) {
	b := newLocal(t)

	path, err := b.AddDevice("Meeting Camera", "")
	if err != nil {
		t.Fatalf("AddDevice() error = %v", err)
	}
	if path == "" {
		t.Fatal("AddDevice() returned empty path")
	}

	if got := b.Devices(); !reflect.DeepEqual(got, []string{path}) {
		t.Errorf("Devices() = %v, want [%s]", got, path)
	}

	desc, err := b.Description(path)
	if err != nil || desc != "Meeting Camera" {
		t.Errorf("Description() = %q, %v", desc, err)
	}

	if err := b.SetDescription(path, "Renamed"); err != nil {
		t.Errorf("SetDescription() error = %v", err)
	}
	if desc, _ := b.Description(path); desc != "Renamed" {
		t.Errorf("Description() after rename = %q", desc)
	}

	if err := b.RemoveDevice(path); err != nil {
		t.Errorf("RemoveDevice() error = %v", err)
	}
	if got := b.Devices(); len(got) != 0 {
		t.Errorf("Devices() after removal = %v", got)
	}
}

func TestLocal_AddDevice_Duplicate(t *testing.T) {
	b := newLocal(t)

	if _, err := b.AddDevice("A", "p0"); err != nil {
		t.Fatalf("AddDevice() error = %v", err)
	}
	_, err := b.AddDevice("B", "p0")
	if !errors.Is(err, ErrDeviceExists) {
		t.Errorf("AddDevice(duplicate) error = %v, want ErrDeviceExists", err)
	}
}

func TestLocal_UnknownDevice(t *testing.T) {
	b := newLocal(t)

	if err := b.RemoveDevice("nope"); !errors.Is(err, ErrDeviceNotFound) {
		t.Errorf("RemoveDevice() error = %v, want ErrDeviceNotFound", err)
	}
	if _, err := b.Description("nope"); !errors.Is(err, ErrDeviceNotFound) {
		t.Errorf("Description() error = %v, want ErrDeviceNotFound", err)
	}
	if err := b.SetFormats("nope", nil); !errors.Is(err, ErrDeviceNotFound) {
		t.Errorf("SetFormats() error = %v, want ErrDeviceNotFound", err)
	}
	if _, err := b.Controls("nope"); !errors.Is(err, ErrDeviceNotFound) {
		t.Errorf("Controls() error = %v, want ErrDeviceNotFound", err)
	}
}

func TestLocal_RemoveDevices(t *testing.T) {
	b := newLocal(t)

	b.AddDevice("A", "") //nolint:errcheck // exercised above
	b.AddDevice("B", "") //nolint:errcheck // exercised above

	if err := b.RemoveDevices(); err != nil {
		t.Fatalf("RemoveDevices() error = %v", err)
	}
	if got := b.Devices(); len(got) != 0 {
		t.Errorf("Devices() = %v, want empty", got)
	}
}

func TestLocal_Formats(t *testing.T) {
	b := newLocal(t)
	path, _ := b.AddDevice("A", "")

	formats := []videoformat.Format{
		videoformat.New(videoformat.PixFmtYUY2, 640, 480, videoformat.Fraction{Num: 30, Den: 1}),
	}
	if err := b.SetFormats(path, formats); err != nil {
		t.Fatalf("SetFormats() error = %v", err)
	}
	if got := b.Formats(path); !reflect.DeepEqual(got, formats) {
		t.Errorf("Formats() = %v, want %v", got, formats)
	}

	extra := videoformat.New(videoformat.PixFmtRGB24, 1280, 720, videoformat.Fraction{Num: 25, Den: 1})
	if err := b.AddFormat(path, extra, 0); err != nil {
		t.Fatalf("AddFormat() error = %v", err)
	}
	if got := b.Formats(path); len(got) != 2 || got[0] != extra {
		t.Errorf("Formats() after insert = %v", got)
	}

	if err := b.RemoveFormat(path, 0); err != nil {
		t.Fatalf("RemoveFormat() error = %v", err)
	}
	if got := b.Formats(path); !reflect.DeepEqual(got, formats) {
		t.Errorf("Formats() after remove = %v, want %v", got, formats)
	}
}

func TestLocal_Controls(t *testing.T) {
	b := newLocal(t)
	path, _ := b.AddDevice("A", "")

	controls, err := b.Controls(path)
	if err != nil {
		t.Fatalf("Controls() error = %v", err)
	}
	if len(controls) == 0 {
		t.Fatal("Controls() returned empty set")
	}
	for _, c := range controls {
		if c.Value != 0 {
			t.Errorf("control %s initial value = %d, want 0", c.ID, c.Value)
		}
	}

	err = b.SetControls(path, map[string]int{
		"brightness":        100,
		"contrast":          -999, // clamps to minimum
		"horizontal_mirror": 1,
	})
	if err != nil {
		t.Fatalf("SetControls() error = %v", err)
	}

	values := map[string]int{}
	controls, _ = b.Controls(path)
	for _, c := range controls {
		values[c.ID] = c.Value
	}
	if values["brightness"] != 100 {
		t.Errorf("brightness = %d, want 100", values["brightness"])
	}
	if values["contrast"] != -255 {
		t.Errorf("contrast = %d, want clamped -255", values["contrast"])
	}
	if values["horizontal_mirror"] != 1 {
		t.Errorf("horizontal_mirror = %d, want 1", values["horizontal_mirror"])
	}
}

func TestLocal_SetControls_UnknownID(t *testing.T) {
	b := newLocal(t)
	path, _ := b.AddDevice("A", "")

	err := b.SetControls(path, map[string]int{"brightness": 5, "sharpness": 1})
	if !errors.Is(err, ErrControlNotFound) {
		t.Fatalf("SetControls() error = %v, want ErrControlNotFound", err)
	}

	// The whole call fails before any write.
	controls, _ := b.Controls(path)
	for _, c := range controls {
		if c.ID == "brightness" && c.Value != 0 {
			t.Errorf("brightness written despite failed call: %d", c.Value)
		}
	}
}

func TestLocal_Globals(t *testing.T) {
	b := newLocal(t)

	b.SetPicture("/srv/pic.png")
	if got := b.Picture(); got != "/srv/pic.png" {
		t.Errorf("Picture() = %q", got)
	}

	if got := b.LogLevel(); got != registry.DefaultLogLevel {
		t.Errorf("LogLevel() = %d, want %d", got, registry.DefaultLogLevel)
	}
	b.SetLogLevel(7)
	if got := b.LogLevel(); got != 7 {
		t.Errorf("LogLevel() = %d, want 7", got)
	}
}

func TestLocal_StreamingUnsupported(t *testing.T) {
	b := newLocal(t)
	path, _ := b.AddDevice("A", "")

	format := videoformat.New(videoformat.PixFmtYUY2, 640, 480, videoformat.Fraction{Num: 30, Den: 1})
	if err := b.DeviceStart(path, format); !errors.Is(err, ErrStreamingUnsupported) {
		t.Errorf("DeviceStart() error = %v", err)
	}
	if err := b.DeviceStop(path); !errors.Is(err, ErrStreamingUnsupported) {
		t.Errorf("DeviceStop() error = %v", err)
	}
	if err := b.Write(path, []byte{0}); !errors.Is(err, ErrStreamingUnsupported) {
		t.Errorf("Write() error = %v", err)
	}
	if got := b.ClientsPIDs(); got != nil {
		t.Errorf("ClientsPIDs() = %v, want nil", got)
	}
	if got := b.ClientExe(1234); got != "" {
		t.Errorf("ClientExe() = %q, want empty", got)
	}
}

func TestLocal_SupportedPixelFormats(t *testing.T) {
	b := newLocal(t)

	in := b.SupportedPixelFormats(StreamInput)
	out := b.SupportedPixelFormats(StreamOutput)
	if len(in) == 0 || len(out) == 0 {
		t.Fatal("empty pixel format lists")
	}
	if len(in) >= len(out) {
		t.Errorf("input set (%d) should be smaller than output set (%d)", len(in), len(out))
	}
}
