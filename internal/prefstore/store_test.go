package prefstore

import (
	"path/filepath"
	"sort"
	"testing"
)

// storeUnderTest builds each backend against the same contract tests.
func storesUnderTest(t *testing.T) map[string]Store {
	t.Helper()

	sqlite, err := OpenSQLite(filepath.Join(t.TempDir(), "prefs.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	t.Cleanup(func() {
		if err := sqlite.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})

	return map[string]Store{
		"memory": NewMemory(),
		"sqlite": sqlite,
	}
}

func TestStore_ReadDefaults(t *testing.T) {
	for name, s := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			if got := s.ReadString(`missing`, "fallback"); got != "fallback" {
				t.Errorf("ReadString(missing) = %q, want fallback", got)
			}
			if got := s.ReadInt(`missing`, 7); got != 7 {
				t.Errorf("ReadInt(missing) = %d, want 7", got)
			}
			if got := s.ReadDouble(`missing`, 2.5); got != 2.5 {
				t.Errorf("ReadDouble(missing) = %v, want 2.5", got)
			}
			if got := s.ReadBool(`missing`, true); !got {
				t.Error("ReadBool(missing) = false, want default true")
			}
		})
	}
}

func TestStore_WriteRead(t *testing.T) {
	for name, s := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			s.WriteString(`Cameras\1\path`, "VCamVideoDevice0")
			s.WriteInt(`Cameras\size`, 1)
			s.WriteInt(`Cameras\1\Controls\brightness`, -128)
			s.WriteString(`ratio`, "1.5")

			if got := s.ReadString(`Cameras\1\path`, ""); got != "VCamVideoDevice0" {
				t.Errorf("ReadString = %q, want VCamVideoDevice0", got)
			}
			if got := s.ReadInt(`Cameras\size`, 0); got != 1 {
				t.Errorf("ReadInt = %d, want 1", got)
			}
			if got := s.ReadInt(`Cameras\1\Controls\brightness`, 0); got != -128 {
				t.Errorf("ReadInt negative = %d, want -128", got)
			}
			if got := s.ReadDouble(`ratio`, 0); got != 1.5 {
				t.Errorf("ReadDouble = %v, want 1.5", got)
			}
		})
	}
}

func TestStore_Overwrite(t *testing.T) {
	for name, s := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			s.WriteInt(`loglevel`, 4)
			s.WriteInt(`loglevel`, 7)
			if got := s.ReadInt(`loglevel`, 0); got != 7 {
				t.Errorf("ReadInt after overwrite = %d, want 7", got)
			}
		})
	}
}

func TestStore_ReadBool(t *testing.T) {
	for name, s := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			s.WriteInt(`flag`, 0)
			if s.ReadBool(`flag`, true) {
				t.Error("ReadBool(0) = true, want false")
			}
			s.WriteInt(`flag`, 2)
			if !s.ReadBool(`flag`, false) {
				t.Error("ReadBool(2) = false, want true")
			}
		})
	}
}

func TestStore_DeleteValue(t *testing.T) {
	for name, s := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			s.WriteString(`picture`, "/tmp/pic.png")
			s.DeleteKey(`picture`)
			if got := s.ReadString(`picture`, "gone"); got != "gone" {
				t.Errorf("ReadString after delete = %q, want default", got)
			}
		})
	}
}

func TestStore_DeleteSubtree(t *testing.T) {
	for name, s := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			s.WriteInt(`Cameras\size`, 1)
			s.WriteString(`Cameras\1\path`, "p0")
			s.WriteString(`Cameras\1\Formats\1\format`, "YUY2")
			s.WriteString(`Camerax`, "unrelated")

			s.DeleteKey(`Cameras\`)

			if got := s.ReadInt(`Cameras\size`, -1); got != -1 {
				t.Errorf("Cameras\\size survived subtree delete: %d", got)
			}
			if got := s.ReadString(`Cameras\1\path`, ""); got != "" {
				t.Errorf("Cameras\\1\\path survived subtree delete: %q", got)
			}
			if got := s.ReadString(`Camerax`, ""); got != "unrelated" {
				t.Errorf("sibling key deleted, got %q", got)
			}
		})
	}
}

func TestStore_DeleteSubtree_UnderscoreKeysUntouched(t *testing.T) {
	// Control names may contain characters that are LIKE wildcards in SQL;
	// subtree deletion must still match literally.
	for name, s := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			s.WriteInt(`Cameras\1\Controls\horizontal_mirror`, 1)
			s.WriteInt(`CamerasX1\Controls\horizontal_mirror`, 1)

			s.DeleteKey(`Cameras\1\`)

			if got := s.ReadInt(`Cameras\1\Controls\horizontal_mirror`, -1); got != -1 {
				t.Errorf("control key survived subtree delete: %d", got)
			}
			if got := s.ReadInt(`CamerasX1\Controls\horizontal_mirror`, -1); got != 1 {
				t.Errorf("unrelated key deleted, got %d", got)
			}
		})
	}
}

func TestStore_MoveTree(t *testing.T) {
	for name, s := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			s.WriteString(`Cameras\2\path`, "p1")
			s.WriteString(`Cameras\2\description`, "Camera B")
			s.WriteString(`Cameras\2\Formats\1\format`, "RGB24")
			s.WriteInt(`Cameras\2\Formats\size`, 1)

			s.MoveTree(`Cameras\2`, `Cameras\1`)

			if got := s.ReadString(`Cameras\1\path`, ""); got != "p1" {
				t.Errorf("moved path = %q, want p1", got)
			}
			if got := s.ReadString(`Cameras\1\Formats\1\format`, ""); got != "RGB24" {
				t.Errorf("moved format = %q, want RGB24", got)
			}
			if got := s.ReadString(`Cameras\2\path`, ""); got != "" {
				t.Errorf("source path still present: %q", got)
			}
			if got := s.ReadInt(`Cameras\2\Formats\size`, -1); got != -1 {
				t.Errorf("source formats size still present: %d", got)
			}
		})
	}
}

func TestStore_MoveTree_MissingSource(t *testing.T) {
	for name, s := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			s.WriteString(`Cameras\1\path`, "p0")
			s.MoveTree(`Cameras\9`, `Cameras\8`)
			if got := s.ReadString(`Cameras\1\path`, ""); got != "p0" {
				t.Errorf("unrelated key lost after no-op move: %q", got)
			}
		})
	}
}

func TestJoin(t *testing.T) {
	got := Join("Cameras", "1", "Formats", "2", "width")
	want := `Cameras\1\Formats\2\width`
	if got != want {
		t.Errorf("Join = %q, want %q", got, want)
	}
}

func TestMemory_Keys(t *testing.T) {
	m := NewMemory()
	m.WriteInt(`a`, 1)
	m.WriteInt(`b`, 2)

	keys := m.Keys()
	sort.Strings(keys)
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Errorf("Keys() = %v, want [a b]", keys)
	}
	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}
}
