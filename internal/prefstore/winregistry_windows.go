//go:build windows

package prefstore

import (
	"strconv"
	"strings"

	"golang.org/x/sys/windows/registry"
)

// regRoot is the hive path every key lives under.
const regRoot = `Software\VCamKit\VirtualCamera`

// WinRegistry is a Store persisted in the Windows registry under
// HKEY_CURRENT_USER. This is the backend the persisted layout was designed
// for: registry subkeys map to key prefixes and registry values to leaf
// segments.
type WinRegistry struct {
	logger Logger
}

// NewWinRegistry creates a registry-backed store. The root key is created
// lazily on first write.
func NewWinRegistry() *WinRegistry {
	return &WinRegistry{logger: noopLogger{}}
}

// SetLogger sets the logger used to report backend failures.
func (w *WinRegistry) SetLogger(logger Logger) {
	w.logger = logger
}

// splitSubKey splits a store key into its registry subkey path and value
// name. A key with a trailing separator names a subtree: the value name is
// empty.
func splitSubKey(key string) (subKey, value string) {
	i := strings.LastIndex(key, Sep)
	if i < 0 {
		return regRoot, key
	}
	subKey = regRoot + Sep + key[:i]
	value = key[i+len(Sep):]
	return subKey, value
}

// WriteString stores a string value under key.
func (w *WinRegistry) WriteString(key, value string) {
	subKey, name := splitSubKey(key)
	k, _, err := registry.CreateKey(registry.CURRENT_USER, subKey, registry.SET_VALUE)
	if err != nil {
		w.logger.Error("registry write failed", "key", key, "error", err)
		return
	}
	defer k.Close()

	if err := k.SetStringValue(name, value); err != nil {
		w.logger.Error("registry write failed", "key", key, "error", err)
	}
}

// WriteInt stores an integer value under key as a DWORD.
func (w *WinRegistry) WriteInt(key string, value int) {
	subKey, name := splitSubKey(key)
	k, _, err := registry.CreateKey(registry.CURRENT_USER, subKey, registry.SET_VALUE)
	if err != nil {
		w.logger.Error("registry write failed", "key", key, "error", err)
		return
	}
	defer k.Close()

	if err := k.SetDWordValue(name, uint32(int32(value))); err != nil {
		w.logger.Error("registry write failed", "key", key, "error", err)
	}
}

// ReadString returns the string stored under key, or def.
func (w *WinRegistry) ReadString(key, def string) string {
	subKey, name := splitSubKey(key)
	k, err := registry.OpenKey(registry.CURRENT_USER, subKey, registry.QUERY_VALUE)
	if err != nil {
		return def
	}
	defer k.Close()

	v, _, err := k.GetStringValue(name)
	if err != nil {
		return def
	}
	return v
}

// ReadInt returns the integer stored under key, or def.
func (w *WinRegistry) ReadInt(key string, def int) int {
	subKey, name := splitSubKey(key)
	k, err := registry.OpenKey(registry.CURRENT_USER, subKey, registry.QUERY_VALUE)
	if err != nil {
		return def
	}
	defer k.Close()

	v, _, err := k.GetIntegerValue(name)
	if err != nil {
		return def
	}
	return int(int32(uint32(v)))
}

// ReadDouble returns the float stored (as a string value) under key, or def.
func (w *WinRegistry) ReadDouble(key string, def float64) float64 {
	v := w.ReadString(key, "")
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

// ReadBool returns true when the integer stored under key is non-zero.
func (w *WinRegistry) ReadBool(key string, def bool) bool {
	return w.ReadInt(key, boolToInt(def)) != 0
}

// DeleteKey removes a value, or a whole subtree when the key carries a
// trailing separator.
func (w *WinRegistry) DeleteKey(key string) {
	root, isTree := subtreeRoot(key)
	if isTree {
		if err := w.deleteTree(regRoot + Sep + root); err != nil {
			w.logger.Error("registry delete failed", "key", key, "error", err)
		}
		return
	}

	subKey, name := splitSubKey(key)
	k, err := registry.OpenKey(registry.CURRENT_USER, subKey, registry.SET_VALUE)
	if err != nil {
		return
	}
	defer k.Close()

	if err := k.DeleteValue(name); err != nil {
		w.logger.Debug("registry delete missed", "key", key, "error", err)
	}
}

// MoveTree copies the subtree rooted at from onto to, then deletes the
// source. Not atomic; a failure mid-copy leaves both trees present.
func (w *WinRegistry) MoveTree(from, to string) {
	src := regRoot + Sep + from
	dst := regRoot + Sep + to

	if err := w.copyTree(src, dst); err != nil {
		w.logger.Error("registry move failed", "from", from, "to", to, "error", err)
		return
	}
	if err := w.deleteTree(src); err != nil {
		w.logger.Error("registry move failed", "from", from, "to", to, "error", err)
	}
}

// copyTree recursively copies every value and subkey of src to dst.
func (w *WinRegistry) copyTree(src, dst string) error {
	sk, err := registry.OpenKey(registry.CURRENT_USER, src,
		registry.QUERY_VALUE|registry.ENUMERATE_SUB_KEYS)
	if err != nil {
		// Missing source is a no-op.
		return nil
	}
	defer sk.Close()

	dk, _, err := registry.CreateKey(registry.CURRENT_USER, dst, registry.SET_VALUE)
	if err != nil {
		return err
	}
	defer dk.Close()

	names, err := sk.ReadValueNames(-1)
	if err != nil {
		return err
	}
	for _, name := range names {
		if s, _, err := sk.GetStringValue(name); err == nil {
			if err := dk.SetStringValue(name, s); err != nil {
				return err
			}
			continue
		}
		n, _, err := sk.GetIntegerValue(name)
		if err != nil {
			return err
		}
		if err := dk.SetDWordValue(name, uint32(n)); err != nil {
			return err
		}
	}

	subs, err := sk.ReadSubKeyNames(-1)
	if err != nil {
		return err
	}
	for _, sub := range subs {
		if err := w.copyTree(src+Sep+sub, dst+Sep+sub); err != nil {
			return err
		}
	}
	return nil
}

// deleteTree recursively removes the key at path and everything under it.
func (w *WinRegistry) deleteTree(path string) error {
	k, err := registry.OpenKey(registry.CURRENT_USER, path, registry.ENUMERATE_SUB_KEYS)
	if err != nil {
		// Already gone.
		return nil
	}

	subs, err := k.ReadSubKeyNames(-1)
	k.Close()
	if err != nil {
		return err
	}
	for _, sub := range subs {
		if err := w.deleteTree(path + Sep + sub); err != nil {
			return err
		}
	}
	return registry.DeleteKey(registry.CURRENT_USER, path)
}
