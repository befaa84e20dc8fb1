// Package cli implements the vcamctl command tree: device management,
// format lists, device controls, global settings and the declarative
// settings loader, all dispatched onto an injected bridge.
//
// Output conventions follow the tool's two audiences. Human-facing
// listings render as aligned tables on stdout; the persistent
// -p/--parseable flag switches every listing to one bare value per line
// for scripts. Errors go to stderr and yield a non-zero exit status.
package cli
