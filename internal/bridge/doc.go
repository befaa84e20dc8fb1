// Package bridge defines the contract between camera management frontends
// and the virtual camera subsystem, plus a local implementation backed by
// the persisted device registry.
//
// A Bridge exposes device CRUD, per-device format lists, device controls
// with their metadata (range, type, menu entries), the global placeholder
// picture and driver log level, and the frame transport hooks a streaming
// backend would implement. The Local implementation covers everything that
// lives in the registry; frame transport and client enumeration belong to
// the platform driver and report ErrStreamingUnsupported here.
package bridge
