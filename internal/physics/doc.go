// Package physics holds the per-particle state of a bouncing-ball scene and
// the boundary correction that keeps a particle inside its arena.
//
// A [Particle] is a point mass with a circular footprint. Integrators in
// package integrators advance it by one fixed time step and then call
// [Confine], which performs a specular reflection against the arena rim:
//
//	p = integ.Step(p, arena, gravity, dt)
//
// # Conventions
//
// The boundary test is strict: a particle whose distance from the arena
// center equals Radius-p.Radius is still legal. The reflection normal points
// outward, from the arena center to the particle.
//
// No substepping is done. A particle fast enough to cross the whole legal
// region in one step is not detected; the correction only ever sees the end
// position.
package physics
