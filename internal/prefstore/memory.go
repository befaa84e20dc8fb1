package prefstore

import (
	"strconv"
	"strings"
	"sync"
)

// Memory is a map-backed Store. It keeps the same subtree semantics as the
// persistent backends and is the fake used throughout the tests.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// WriteString stores a string value under key.
func (m *Memory) WriteString(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

// WriteInt stores an integer value under key.
func (m *Memory) WriteInt(key string, value int) {
	m.WriteString(key, strconv.Itoa(value))
}

// ReadString returns the string stored under key, or def.
func (m *Memory) ReadString(key, def string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if v, ok := m.values[key]; ok {
		return v
	}
	return def
}

// ReadInt returns the integer stored under key, or def.
func (m *Memory) ReadInt(key string, def int) int {
	v, ok := m.lookup(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// ReadDouble returns the float stored under key, or def.
func (m *Memory) ReadDouble(key string, def float64) float64 {
	v, ok := m.lookup(key)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

// ReadBool returns true when the integer stored under key is non-zero.
func (m *Memory) ReadBool(key string, def bool) bool {
	return m.ReadInt(key, boolToInt(def)) != 0
}

// DeleteKey removes a value, or a whole subtree when the key carries a
// trailing separator.
func (m *Memory) DeleteKey(key string) {
	root, isTree := subtreeRoot(key)

	m.mu.Lock()
	defer m.mu.Unlock()

	if !isTree {
		delete(m.values, key)
		return
	}

	for k := range m.values {
		if k == root || strings.HasPrefix(k, root+Sep) {
			delete(m.values, k)
		}
	}
}

// MoveTree copies the subtree rooted at from onto to, then deletes the
// source keys.
func (m *Memory) MoveTree(from, to string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	moved := make(map[string]string)
	for k, v := range m.values {
		if k == from || strings.HasPrefix(k, from+Sep) {
			moved[to+k[len(from):]] = v
			delete(m.values, k)
		}
	}
	for k, v := range moved {
		m.values[k] = v
	}
}

// Len returns the number of stored keys. Test helper.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.values)
}

// Keys returns every stored key. Test helper.
func (m *Memory) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	return keys
}

func (m *Memory) lookup(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
