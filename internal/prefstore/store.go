package prefstore

import "strings"

// Sep separates key path segments.
const Sep = `\`

// Store is the hierarchical key-value store consumed by the registry.
//
// All reads return the caller-supplied default on missing keys or backend
// failure; writes and deletes are silent best-effort operations. This
// default-on-miss contract is deliberate and callers rely on it: the
// registry never receives errors from this layer.
type Store interface {
	// WriteString stores a string value under key.
	WriteString(key, value string)

	// WriteInt stores an integer value under key.
	WriteInt(key string, value int)

	// ReadString returns the string stored under key, or def.
	ReadString(key, def string) string

	// ReadInt returns the integer stored under key, or def.
	ReadInt(key string, def int) int

	// ReadDouble returns the float stored (in string form) under key, or def.
	ReadDouble(key string, def float64) float64

	// ReadBool returns true when the integer stored under key is non-zero,
	// or def when the key is absent.
	ReadBool(key string, def bool) bool

	// DeleteKey removes the value stored under key. A key with a trailing
	// separator names a subtree and removes every key underneath it,
	// including the bare prefix itself.
	DeleteKey(key string)

	// MoveTree copies the subtree rooted at from to to, then deletes the
	// source. Missing sources are a silent no-op.
	MoveTree(from, to string)
}

// Logger is the minimal logging interface used by store backends.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger discards everything.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Join builds a key from path segments.
func Join(segments ...string) string {
	return strings.Join(segments, Sep)
}

// subtreeRoot reports whether key names a subtree and returns the prefix
// without its trailing separator.
func subtreeRoot(key string) (string, bool) {
	if strings.HasSuffix(key, Sep) {
		return strings.TrimSuffix(key, Sep), true
	}
	return key, false
}
