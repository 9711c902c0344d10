// Package analysis provides chaos analysis tools for bouncing particles.
//
//   - [LyapunovExponent]: largest Lyapunov exponent via trajectory separation
//   - [LyapunovSpectrum]: one exponent per particle of a population
//
// # Chaos Detection
//
// A positive largest Lyapunov exponent indicates chaotic dynamics:
//
//	lambda := analysis.LyapunovExponent(tr, p, ticks, 1e-8)
//	if lambda > 0 {
//	    // trajectory is chaotic
//	}
//
// Free flight without wall contact separates nearby trajectories only
// linearly, so its estimate tends to zero as the run grows longer.
package analysis
