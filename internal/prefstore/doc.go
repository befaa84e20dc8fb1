// Package prefstore provides the persistent key-value store backing the
// virtual camera registry.
//
// The store is a hierarchical, string-keyed namespace. Keys are `\`-joined
// path segments under a fixed application root (for example
// "Cameras\1\Formats\2\width"). Values are strings or integers; integers
// are stored in their decimal string form by backends that have no native
// integer type.
//
// # Failure Policy
//
// Absence is not an error at this layer. Every read takes a caller-supplied
// default and returns it when the key is missing or the backend fails;
// writes and deletes are best-effort and log failures instead of returning
// them. Callers that need existence checks perform them at a higher level.
//
// # Implementations
//
//   - Memory: map-backed, for tests and ephemeral runs
//   - SQLite: persistent single-table store (mattn/go-sqlite3)
//   - WinRegistry: HKEY_CURRENT_USER registry hive (windows only)
//
// Subtree operations (DeleteKey with a trailing separator, MoveTree) operate
// on whole key prefixes; MoveTree copies the source subtree to the target
// and then deletes the source, which is how the registry renumbers camera
// slots after a removal. Individual operations may be atomic inside a
// backend, but sequences of operations are not: the registry layer accepts
// that a crash mid-sequence leaves a partially updated tree.
package prefstore
