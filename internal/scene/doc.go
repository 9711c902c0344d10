// Package scene runs one bouncing-ball scene: it owns the particle
// population, advances it with a fixed time step, and draws it into a
// caller-owned RGBA buffer according to a drawing [Policy].
//
// A display shell drives a [Scene] with exactly one Tick and one Render per
// frame:
//
//	s, _ := scene.Build(cfg, cfg.Scenes["4"])
//	for running {
//	    s.Tick(cfg.Physics.Dt)
//	    if err := s.Render(buf); err != nil { ... }
//	    present(buf)
//	}
//
// # Thread Safety
//
// Scene is NOT safe for concurrent use. Tick must return before Render reads
// the particles; the frame loop serializes both.
package scene
