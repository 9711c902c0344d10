package scene

import (
	"github.com/san-kum/phasebounce/internal/geom"
	"github.com/san-kum/phasebounce/internal/integrators"
	"github.com/san-kum/phasebounce/internal/physics"
	"github.com/san-kum/phasebounce/internal/raster"
)

type Palette struct {
	Clear    raster.Color
	Arena    raster.Color
	Particle raster.Color
}

var DefaultPalette = Palette{
	Clear:    raster.Black,
	Arena:    raster.RGBA(100, 100, 100, 255),
	Particle: raster.White,
}

// Options holds everything a scene needs besides its particles.
type Options struct {
	Title   string
	Width   int
	Height  int
	Arena   geom.Disk
	Gravity geom.Vec2
	// Stepper defaults to semi-implicit Euler.
	Stepper physics.Stepper
	Policy  Policy
	Palette Palette
	// VelocitySpan is mapped onto ChannelSpan by [VelocityPhaseSpace].
	VelocitySpan geom.Span
	ChannelSpan  geom.Span
}

type Scene struct {
	opts      Options
	particles []physics.Particle
	initial   []physics.Particle
	ticks     int
	elapsed   float64
}

// New takes ownership of particles; their order is the update and draw
// order.
func New(opts Options, particles []physics.Particle) *Scene {
	if opts.Stepper == nil {
		opts.Stepper = integrators.NewSemiImplicitEuler()
	}
	if opts.ChannelSpan == (geom.Span{}) {
		opts.ChannelSpan = raster.ByteSpan
	}
	initial := make([]physics.Particle, len(particles))
	copy(initial, particles)
	return &Scene{
		opts:      opts,
		particles: particles,
		initial:   initial,
	}
}

// Tick advances every particle by dt, in creation order.
func (s *Scene) Tick(dt float64) {
	arena, accel, stepper := s.opts.Arena, s.opts.Gravity, s.opts.Stepper
	for i := range s.particles {
		s.particles[i] = stepper.Step(s.particles[i], arena, accel, dt)
	}
	s.ticks++
	s.elapsed += dt
}

// Render clears pix and draws the scene into it. pix must hold exactly
// Width*Height RGBA pixels and is not retained after Render returns.
func (s *Scene) Render(pix []byte) error {
	f, err := raster.NewFrame(pix, s.opts.Width, s.opts.Height)
	if err != nil {
		return err
	}
	s.Draw(f)
	return nil
}

// Draw is Render for a frame the caller already wrapped.
func (s *Scene) Draw(f *raster.Frame) {
	f.Clear(s.opts.Palette.Clear)

	switch s.opts.Policy {
	case SolidParticles:
		s.drawSolid(f)
	case PositionPhaseSpace:
		s.drawPosition(f)
	case VelocityPhaseSpace:
		s.drawVelocity(f)
	}
}

func (s *Scene) drawSolid(f *raster.Frame) {
	f.FillDisk(s.opts.Arena, s.opts.Palette.Arena)
	for i := range s.particles {
		f.FillDisk(s.particles[i].Footprint(), s.opts.Palette.Particle)
	}
}

func (s *Scene) drawPosition(f *raster.Frame) {
	xs, ys := s.opts.Arena.XSpan(), s.opts.Arena.YSpan()
	for i := range s.particles {
		p := &s.particles[i]
		c := raster.RGBA(
			raster.Channel(raster.MapRange(p.Position.X, xs, raster.ByteSpan)),
			raster.Channel(raster.MapRange(p.Position.Y, ys, raster.ByteSpan)),
			0,
			255,
		)
		f.PlotPoint(p.Initial, c)
	}
}

func (s *Scene) drawVelocity(f *raster.Frame) {
	from, to := s.opts.VelocitySpan, s.opts.ChannelSpan
	for i := range s.particles {
		p := &s.particles[i]
		c := raster.RGBA(
			0,
			raster.Channel(raster.MapRange(p.Velocity.X, from, to)),
			raster.Channel(raster.MapRange(p.Velocity.Y, from, to)),
			255,
		)
		f.PlotPoint(p.Initial, c)
	}
}

// Reset restores the particles the scene was created with.
func (s *Scene) Reset() {
	s.particles = s.particles[:0]
	s.particles = append(s.particles, s.initial...)
	s.ticks = 0
	s.elapsed = 0
}

// SetPalette replaces the colors used by [SolidParticles].
func (s *Scene) SetPalette(p Palette) { s.opts.Palette = p }

// Particles returns a copy of the current particle states.
func (s *Scene) Particles() []physics.Particle {
	out := make([]physics.Particle, len(s.particles))
	copy(out, s.particles)
	return out
}

// Each calls fn for every particle in creation order.
func (s *Scene) Each(fn func(i int, p physics.Particle)) {
	for i := range s.particles {
		fn(i, s.particles[i])
	}
}

func (s *Scene) Len() int                 { return len(s.particles) }
func (s *Scene) Ticks() int               { return s.ticks }
func (s *Scene) Elapsed() float64         { return s.elapsed }
func (s *Scene) Title() string            { return s.opts.Title }
func (s *Scene) Policy() Policy           { return s.opts.Policy }
func (s *Scene) Arena() geom.Disk         { return s.opts.Arena }
func (s *Scene) Size() (int, int)         { return s.opts.Width, s.opts.Height }
func (s *Scene) Palette() Palette         { return s.opts.Palette }
func (s *Scene) Gravity() geom.Vec2       { return s.opts.Gravity }
func (s *Scene) Stepper() physics.Stepper { return s.opts.Stepper }
