package analysis

import (
	"math"

	"github.com/san-kum/phasebounce/internal/geom"
	"github.com/san-kum/phasebounce/internal/physics"
)

// Trajectory is the fixed environment a particle is stepped in.
type Trajectory struct {
	Stepper physics.Stepper
	Arena   geom.Disk
	Gravity geom.Vec2
	Dt      float64
}

// LyapunovExponent estimates the largest Lyapunov exponent of p using the
// trajectory separation method. A positive value indicates chaos.
//
// Algorithm:
// 1. Run p and a copy whose x velocity is offset by perturbation
// 2. After each step measure their phase-space separation
// 3. Pull the copy back to distance perturbation along the same direction
// 4. λ ≈ (1/t) * Σ ln(|δ|/δ0)
func LyapunovExponent(tr Trajectory, p physics.Particle, ticks int, perturbation float64) float64 {
	if ticks <= 0 || perturbation <= 0 || tr.Dt <= 0 {
		return 0
	}

	q := p
	q.Velocity.X += perturbation
	d0 := perturbation

	sumLog := 0.0
	for i := 0; i < ticks; i++ {
		p = tr.Stepper.Step(p, tr.Arena, tr.Gravity, tr.Dt)
		q = tr.Stepper.Step(q, tr.Arena, tr.Gravity, tr.Dt)

		dx := q.Position.Sub(p.Position)
		dv := q.Velocity.Sub(p.Velocity)
		sep := math.Sqrt(dx.LenSq() + dv.LenSq())
		if sep == 0 || math.IsNaN(sep) || math.IsInf(sep, 0) {
			q = p
			q.Velocity.X += perturbation
			continue
		}
		sumLog += math.Log(sep / d0)

		// Renormalize to stay in the linear regime
		scale := d0 / sep
		q.Position = p.Position.Add(dx.Scale(scale))
		q.Velocity = p.Velocity.Add(dv.Scale(scale))
	}

	return sumLog / (float64(ticks) * tr.Dt)
}

// LyapunovSpectrum estimates the exponent of every particle, in order.
func LyapunovSpectrum(tr Trajectory, particles []physics.Particle, ticks int, perturbation float64) []float64 {
	spectrum := make([]float64, len(particles))
	for i, p := range particles {
		spectrum[i] = LyapunovExponent(tr, p, ticks, perturbation)
	}
	return spectrum
}
