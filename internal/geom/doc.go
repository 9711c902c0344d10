// Package geom provides the planar primitives shared by the integrator and
// the rasterizer:
//
//   - [Vec2]: immutable 2D vector with dot product and reflection
//   - [Disk]: circle with a cached squared radius, used for the arena and
//     for particle footprints
//   - [Span]: closed numeric interval used by range mapping
//
// All operations are pure and allocation-free.
package geom
