package metrics

import (
	"math"

	"github.com/san-kum/phasebounce/internal/physics"
	"github.com/san-kum/phasebounce/internal/scene"
)

// KineticEnergy is the mean per-particle kinetic energy at the last
// observation, for unit mass.
type KineticEnergy struct {
	name  string
	value float64
}

func NewKineticEnergy() *KineticEnergy {
	return &KineticEnergy{name: "kinetic_energy"}
}

func (k *KineticEnergy) Name() string { return k.name }

func (k *KineticEnergy) Observe(s *scene.Scene) {
	if s.Len() == 0 {
		k.value = 0
		return
	}
	total := 0.0
	s.Each(func(_ int, p physics.Particle) {
		total += p.KineticEnergy()
	})
	k.value = total / float64(s.Len())
}

func (k *KineticEnergy) Value() float64 { return k.value }

func (k *KineticEnergy) Reset() { k.value = 0 }

// EnergyDrift tracks the largest relative change of total mechanical
// energy since the first observation. Reflections are elastic, so any drift
// comes from the integrator and from projecting particles back onto the
// legal circle.
type EnergyDrift struct {
	name          string
	initialEnergy float64
	maxDrift      float64
	samples       int
}

func NewEnergyDrift() *EnergyDrift {
	return &EnergyDrift{name: "energy_drift"}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) Observe(s *scene.Scene) {
	energy := MechanicalEnergy(s)

	if e.samples == 0 {
		e.initialEnergy = energy
	}
	e.samples++

	if e.initialEnergy != 0 {
		drift := math.Abs(energy-e.initialEnergy) / math.Abs(e.initialEnergy)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 { return e.maxDrift }

func (e *EnergyDrift) Reset() {
	e.initialEnergy = 0
	e.maxDrift = 0
	e.samples = 0
}

// MechanicalEnergy sums ½|v|² - g·x over all particles. The potential is
// measured from the arena center.
func MechanicalEnergy(s *scene.Scene) float64 {
	g, c := s.Gravity(), s.Arena().Center
	total := 0.0
	s.Each(func(_ int, p physics.Particle) {
		total += p.KineticEnergy() - g.Dot(p.Position.Sub(c))
	})
	return total
}
