package metrics

import (
	"math"

	"github.com/san-kum/phasebounce/internal/physics"
	"github.com/san-kum/phasebounce/internal/scene"
)

// Containment is the largest ratio seen between a particle's distance from
// the arena center and its legal radius. Anything above 1 means a particle
// escaped.
type Containment struct {
	name  string
	worst float64
}

func NewContainment() *Containment {
	return &Containment{name: "containment"}
}

func (c *Containment) Name() string { return c.name }

func (c *Containment) Observe(s *scene.Scene) {
	arena := s.Arena()
	s.Each(func(_ int, p physics.Particle) {
		limit := p.LegalRadius(arena)
		if limit <= 0 {
			return
		}
		ratio := p.Position.Sub(arena.Center).Len() / limit
		c.worst = math.Max(c.worst, ratio)
	})
}

func (c *Containment) Value() float64 { return c.worst }

func (c *Containment) Reset() { c.worst = 0 }

// MaxSpeed is the highest particle speed observed.
type MaxSpeed struct {
	name string
	max  float64
}

func NewMaxSpeed() *MaxSpeed {
	return &MaxSpeed{name: "max_speed"}
}

func (m *MaxSpeed) Name() string { return m.name }

func (m *MaxSpeed) Observe(s *scene.Scene) {
	s.Each(func(_ int, p physics.Particle) {
		m.max = math.Max(m.max, p.Speed())
	})
}

func (m *MaxSpeed) Value() float64 { return m.max }

func (m *MaxSpeed) Reset() { m.max = 0 }

// Bounces is the total number of boundary reflections so far.
type Bounces struct {
	name  string
	count int
}

func NewBounces() *Bounces {
	return &Bounces{name: "bounces"}
}

func (b *Bounces) Name() string { return b.name }

func (b *Bounces) Observe(s *scene.Scene) {
	total := 0
	s.Each(func(_ int, p physics.Particle) {
		total += p.Bounces
	})
	b.count = total
}

func (b *Bounces) Value() float64 { return float64(b.count) }

func (b *Bounces) Reset() { b.count = 0 }
