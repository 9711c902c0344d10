package integrators

import (
	"github.com/san-kum/phasebounce/internal/geom"
	"github.com/san-kum/phasebounce/internal/physics"
)

// Verlet is velocity Verlet. Under a constant acceleration the two half
// kicks collapse into one, and the position update picks up the ½·a·dt² term.
type Verlet struct{}

func NewVerlet() *Verlet {
	return &Verlet{}
}

func (v *Verlet) Step(p physics.Particle, arena geom.Disk, accel geom.Vec2, dt float64) physics.Particle {
	p.Position = p.Position.Add(p.Velocity.Scale(dt)).Add(accel.Scale(0.5 * dt * dt))
	p.Velocity = p.Velocity.Add(accel.Scale(dt))
	return physics.Confine(p, arena)
}
