// Package registry implements the persisted device registry for the
// virtual camera: the ordered collection of camera records (path,
// description, format list, control values) plus the global settings
// (placeholder picture, log level) stored in a hierarchical key-value
// store.
//
// # Persisted Layout
//
//	Cameras\size                          -> int, camera count
//	Cameras\<1..size>\path                -> string, unique device path
//	Cameras\<1..size>\description         -> string
//	Cameras\<1..size>\Formats\size        -> int
//	Cameras\<1..size>\Formats\<1..n>\format -> string (fourcc code)
//	Cameras\<1..size>\Formats\<1..n>\width  -> int
//	Cameras\<1..size>\Formats\<1..n>\height -> int
//	Cameras\<1..size>\Formats\<1..n>\fps    -> string ("num/den")
//	Cameras\<1..size>\Controls\<key>      -> int
//	picture                               -> string
//	loglevel                              -> int
//
// Camera records occupy a contiguous 1-based block: size entries live at
// positions 1..size with no gaps. Removing a record shifts every later
// record down one slot (a MoveTree per slot) and shrinks size; removing
// the last record deletes the whole Cameras subtree. Callers see 0-based
// indices; the 1-based offset is a storage detail.
//
// # Failure Policy
//
// Nothing in this package returns an error. Out-of-range indices and
// unknown paths are silent no-ops or yield zero values; a duplicate path
// or an exhausted path allocator is signalled by an empty string from
// AddCamera. Multi-key mutations are not atomic: the backing store has no
// transactions spanning operations, and a crash mid-removal can leave a
// partially renumbered tree. This is an accepted limitation, not a bug to
// fix here.
//
// # Usage
//
//	store := prefstore.NewMemory()
//	reg := registry.New(store, nil)
//	reg.SetLogger(log)
//
//	path := reg.AddCamera("", "Virtual Camera", formats)
//	if path == "" {
//	    // duplicate path or no free device slot
//	}
package registry
