// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Composition overrides, preset catalog, luminosity sparkline, state cards
// 0.2.0 - JSON track export/import with validation, phase intervals, derived metrics
// 0.1.0 - Initial release: evolution calculator, spectral classification, track CLI
