package metrics

import "github.com/san-kum/phasebounce/internal/scene"

// Metric accumulates a scalar over the ticks of a run.
type Metric interface {
	Name() string
	Observe(s *scene.Scene)
	Value() float64
	Reset()
}

// Default returns the metrics reported by headless runs.
func Default() []Metric {
	return []Metric{
		NewKineticEnergy(),
		NewEnergyDrift(),
		NewMaxSpeed(),
		NewContainment(),
		NewBounces(),
	}
}
