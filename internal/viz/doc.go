// Package viz plays a scene in the terminal.
//
// [Model] is a Bubble Tea model that advances the scene once per frame,
// renders it into a private RGBA frame and downsamples that frame onto a
// [Canvas] of half-block glyphs colored with lipgloss:
//
//   - [Canvas]: box-averaged sub-pixel grid, two sub-pixels per cell
//   - [Theme]: palette for the solid view plus status line colors
//
// # Key Bindings
//
//	Space - Pause/Resume simulation
//	R     - Reset to initial state
//	T     - Cycle color themes
//	Q     - Quit
package viz
