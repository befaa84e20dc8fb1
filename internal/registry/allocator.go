package registry

import (
	"fmt"

	"github.com/google/uuid"
)

// Device path allocation constants.
const (
	// devicePathPrefix is the stem every allocated device path starts with.
	devicePathPrefix = "VCamVideoDevice"

	// MaxDevices bounds the allocator's search: candidate paths carry
	// suffixes 0 through MaxDevices-1.
	MaxDevices = 64
)

// ClassLister enumerates the platform class identifiers already claimed by
// installed camera drivers. The allocator must avoid paths whose derived
// class identifier collides with one of these, even when the path itself is
// absent from the store.
type ClassLister interface {
	RegisteredClassIDs() []uuid.UUID
}

// noClasses is the ClassLister used when no platform enumeration exists.
type noClasses struct{}

func (noClasses) RegisteredClassIDs() []uuid.UUID { return nil }

// DerivedClassID maps a device path to its platform class identifier. The
// mapping is deterministic: the same path always derives the same ID, so
// two hosts registering the same path expose the same device class.
func DerivedClassID(path string) uuid.UUID {
	return uuid.NewMD5(uuid.NameSpaceOID, []byte(path))
}

// CreateDevicePath returns the first candidate path that is neither
// registered in the store nor shadowed by an existing platform class ID.
// It returns the empty string when all MaxDevices candidates are taken.
func (r *Registry) CreateDevicePath() string {
	registered := r.classes.RegisteredClassIDs()

	for i := 0; i < MaxDevices; i++ {
		path := fmt.Sprintf("%s%d", devicePathPrefix, i)
		if r.CameraExists(path) {
			continue
		}
		if classIDTaken(DerivedClassID(path), registered) {
			continue
		}
		return path
	}
	return ""
}

func classIDTaken(id uuid.UUID, registered []uuid.UUID) bool {
	for _, r := range registered {
		if r == id {
			return true
		}
	}
	return false
}
