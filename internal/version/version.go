// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Planet ephemerides, galactic frame, twilight commands, tonight TUI
// 0.2.0 - Moon position/phase, event finder with circumpolar handling, catalogs
// 0.1.0 - Initial release: angles, time scales, frame transforms, solar events
