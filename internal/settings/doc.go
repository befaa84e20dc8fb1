// Package settings loads declarative virtual camera setups from a YAML
// file and applies them through a bridge: global defaults, shared format
// pools and the camera list referencing those pools.
//
// # File Layout
//
//	general:
//	  default_frame: /etc/vcam/placeholder.png
//	  loglevel: warning
//
//	formats:
//	  - format: YUY2, RGB24
//	    width: 640
//	    height: 480
//	    fps: 30/1, 20
//
//	cameras:
//	  - description: Virtual Camera
//	    formats: 1
//
// Comma-separated values inside a format pool are combined as a cross
// product: the pool above expands to four formats (each pixel format at
// each frame rate). Cameras reference pools by their 1-based position in
// the formats list.
//
// Applying a file is destructive: every registered device is removed
// before the file's cameras are created.
package settings
