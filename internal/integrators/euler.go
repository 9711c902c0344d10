package integrators

import (
	"github.com/san-kum/phasebounce/internal/geom"
	"github.com/san-kum/phasebounce/internal/physics"
)

// SemiImplicitEuler updates velocity first and moves with the new velocity.
// This is the default stepper for every scene.
type SemiImplicitEuler struct{}

func NewSemiImplicitEuler() *SemiImplicitEuler {
	return &SemiImplicitEuler{}
}

func (e *SemiImplicitEuler) Step(p physics.Particle, arena geom.Disk, accel geom.Vec2, dt float64) physics.Particle {
	p.Velocity = p.Velocity.Add(accel.Scale(dt))
	p.Position = p.Position.Add(p.Velocity.Scale(dt))
	return physics.Confine(p, arena)
}

// Euler is the explicit variant: it moves with the old velocity.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(p physics.Particle, arena geom.Disk, accel geom.Vec2, dt float64) physics.Particle {
	p.Position = p.Position.Add(p.Velocity.Scale(dt))
	p.Velocity = p.Velocity.Add(accel.Scale(dt))
	return physics.Confine(p, arena)
}
