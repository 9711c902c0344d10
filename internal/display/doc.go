// Package display presents a scene in a native window.
//
// [Run] opens a non-resizable window of the scene size times [Options].Scale,
// owns the RGBA buffer and, once per frame, ticks the scene, renders into the
// buffer and uploads it. The default build uses ebiten; building with
// -tags raylib swaps in raylib-go. Both link GLFW, so exactly one is compiled
// into a binary.
//
// # Thread Safety
//
// Run must be called from the main goroutine and blocks until the window
// closes or the context is done.
package display
