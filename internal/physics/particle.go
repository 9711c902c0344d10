package physics

import (
	"math"

	"github.com/san-kum/phasebounce/internal/geom"
)

// Particle is a point mass with a circular footprint.
// Initial is captured at construction and is never written afterwards; the
// phase-space views use it as the pixel a particle is plotted at.
type Particle struct {
	Position geom.Vec2
	Velocity geom.Vec2
	Initial  geom.Vec2
	Radius   float64
	Bounces  int
}

func NewParticle(pos, vel geom.Vec2, radius float64) Particle {
	if radius < 0 {
		radius = 0
	}
	return Particle{
		Position: pos,
		Velocity: vel,
		Initial:  pos,
		Radius:   radius,
	}
}

// Footprint is the disk the particle covers when drawn.
func (p Particle) Footprint() geom.Disk {
	return geom.NewDisk(p.Position, p.Radius)
}

func (p Particle) Speed() float64 { return p.Velocity.Len() }

// KineticEnergy assumes unit mass.
func (p Particle) KineticEnergy() float64 { return 0.5 * p.Velocity.LenSq() }

// LegalRadius is how far the particle center may be from the arena center.
func (p Particle) LegalRadius(arena geom.Disk) float64 {
	return arena.Radius - p.Radius
}

// Confine reflects p off the arena rim if it has left the legal region.
// The velocity is mirrored about the outward normal and the position is
// projected back onto the legal circle. A particle sitting exactly on the
// arena center has no normal and is returned unchanged.
func Confine(p Particle, arena geom.Disk) Particle {
	offset := p.Position.Sub(arena.Center)
	distSq := offset.LenSq()
	limit := p.LegalRadius(arena)

	if distSq <= limit*limit {
		return p
	}

	dist := math.Sqrt(distSq)
	if dist == 0 {
		return p
	}

	normal := offset.Scale(1 / dist)
	p.Velocity = p.Velocity.Reflect(normal)
	p.Position = arena.Center.Add(normal.Scale(limit))
	p.Bounces++
	return p
}
