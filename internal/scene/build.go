package scene

import (
	"fmt"

	"github.com/san-kum/phasebounce/internal/config"
	"github.com/san-kum/phasebounce/internal/geom"
	"github.com/san-kum/phasebounce/internal/integrators"
	"github.com/san-kum/phasebounce/internal/physics"
	"github.com/san-kum/phasebounce/internal/raster"
)

// velocitySpanFactor reproduces the default velocity color range of
// [0, width/10*2.5].
const velocitySpanFactor = 2.5 / 10

// Build runs scene setup: it sizes the arena against the screen, creates
// the population, and resolves the integrator and drawing policy.
func Build(cfg *config.Config, sc config.Scene) (*Scene, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	policy, err := ParsePolicy(sc.Policy)
	if err != nil {
		return nil, err
	}
	stepper, err := integrators.New(cfg.Physics.Integrator)
	if err != nil {
		return nil, err
	}

	w, h := cfg.Screen.Width, cfg.Screen.Height
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: screen must be positive, got %dx%d", config.ErrInvalidConfig, w, h)
	}
	width := float64(w)
	center := geom.V(width/2, float64(h)/2)
	arena := geom.NewDisk(center, sc.ArenaRadius*width)
	radius := sc.ParticleRadius * width

	start := center
	if sc.Start != nil {
		start = geom.V(sc.Start.X*width, sc.Start.Y*float64(h))
	}
	vel := vec(sc.Velocity)

	var particles []physics.Particle
	switch sc.Population {
	case config.PopulationSingle:
		particles = Single(start, vel, radius)
	case config.PopulationSpread:
		particles = Spread(start, vel, sc.Count, sc.VelocityStep, radius)
	case config.PopulationExplicit:
		particles = make([]physics.Particle, 0, len(sc.Particles))
		for _, p := range sc.Particles {
			pos := geom.V(p.Position.X*width, p.Position.Y*float64(h))
			particles = append(particles, physics.NewParticle(pos, vec(p.Velocity), p.Radius*width))
		}
	case config.PopulationPerPixel:
		particles = PerPixel(arena, radius, w, h)
	}

	velSpan := geom.Span{Low: 0, High: width * velocitySpanFactor}
	if sc.VelocitySpan != nil {
		velSpan = span(*sc.VelocitySpan)
	}
	chanSpan := raster.ByteSpan
	if sc.ChannelSpan != nil {
		chanSpan = span(*sc.ChannelSpan)
	}

	return New(Options{
		Title:        sc.Title,
		Width:        w,
		Height:       h,
		Arena:        arena,
		Gravity:      vec(cfg.Physics.Gravity),
		Stepper:      stepper,
		Policy:       policy,
		Palette:      palette(cfg.Palette),
		VelocitySpan: velSpan,
		ChannelSpan:  chanSpan,
	}, particles), nil
}

func vec(v config.Vec) geom.Vec2 { return geom.V(v.X, v.Y) }

func span(s config.Span) geom.Span { return geom.Span{Low: s.Low, High: s.High} }

func color(c config.Color) raster.Color { return raster.RGBA(c.R, c.G, c.B, c.A) }

func palette(p config.Palette) Palette {
	return Palette{
		Clear:    color(p.Clear),
		Arena:    color(p.Arena),
		Particle: color(p.Particle),
	}
}
