package physics

import "github.com/san-kum/phasebounce/internal/geom"

// Stepper advances one particle by one fixed time step under a constant
// acceleration and confines it to the arena.
type Stepper interface {
	Step(p Particle, arena geom.Disk, accel geom.Vec2, dt float64) Particle
}

// StepperFunc adapts a plain function to [Stepper].
type StepperFunc func(p Particle, arena geom.Disk, accel geom.Vec2, dt float64) Particle

func (f StepperFunc) Step(p Particle, arena geom.Disk, accel geom.Vec2, dt float64) Particle {
	return f(p, arena, accel, dt)
}
