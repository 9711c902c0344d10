package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/phasebounce/internal/metrics"
	"github.com/san-kum/phasebounce/internal/scene"
)

// Runner drives a scene without a display, observing metrics each tick.
type Runner struct {
	name      string
	scene     *scene.Scene
	metrics   []metrics.Metric
	observers []Observer
}

func New(name string, s *scene.Scene) *Runner {
	return &Runner{
		name:      name,
		scene:     s,
		metrics:   make([]metrics.Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (r *Runner) AddMetric(m metrics.Metric) { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer)     { r.observers = append(r.observers, o) }

func (r *Runner) Scene() *scene.Scene { return r.scene }

func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	every := cfg.SampleEvery
	if every <= 0 {
		every = 1
	}

	result := &Result{
		Name:    r.name,
		Metrics: make(map[string]float64, len(r.metrics)),
		Series:  make(map[string][]float64, len(r.metrics)),
	}

	for _, m := range r.metrics {
		m.Reset()
		m.Observe(r.scene)
	}
	r.sample(result)

	for i := 0; i < cfg.Ticks; i++ {
		select {
		case <-ctx.Done():
			r.finish(result)
			return result, ctx.Err()
		default:
		}

		r.scene.Tick(cfg.Dt)
		result.TicksTaken++

		for _, m := range r.metrics {
			m.Observe(r.scene)
		}
		for _, obs := range r.observers {
			obs.OnTick(r.scene)
		}
		if (i+1)%every == 0 {
			r.sample(result)
		}
	}

	r.finish(result)
	return result, nil
}

func (r *Runner) sample(result *Result) {
	for _, m := range r.metrics {
		result.Series[m.Name()] = append(result.Series[m.Name()], m.Value())
	}
}

func (r *Runner) finish(result *Result) {
	result.Elapsed = r.scene.Elapsed()
	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}

func validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Ticks <= 0 {
		return fmt.Errorf("ticks must be positive, got %d", cfg.Ticks)
	}
	return nil
}
