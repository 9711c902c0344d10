package sim

import "github.com/san-kum/phasebounce/internal/scene"

type Config struct {
	Ticks int
	Dt    float64
	// SampleEvery controls how often metric values are appended to
	// Result.Series. Zero samples every tick.
	SampleEvery int
}

func DefaultConfig() Config {
	return Config{
		Ticks:       1000,
		Dt:          0.1,
		SampleEvery: 1,
	}
}

// Observer is notified after every tick.
type Observer interface {
	OnTick(s *scene.Scene)
}

type ObserverFunc func(s *scene.Scene)

func (f ObserverFunc) OnTick(s *scene.Scene) { f(s) }

type Result struct {
	Name       string
	TicksTaken int
	Elapsed    float64
	Metrics    map[string]float64
	Series     map[string][]float64
}
