package scene

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/phasebounce/internal/config"
	"github.com/san-kum/phasebounce/internal/geom"
	"github.com/san-kum/phasebounce/internal/physics"
	"github.com/san-kum/phasebounce/internal/raster"
)

func smallConfig(size int) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Screen.Width = size
	cfg.Screen.Height = size
	return cfg
}

func build(cfg *config.Config, key string) *Scene {
	s, err := Build(cfg, cfg.Scenes[key])
	Expect(err).NotTo(HaveOccurred())
	return s
}

func render(s *Scene) *raster.Frame {
	w, h := s.Size()
	f := raster.Alloc(w, h)
	Expect(s.Render(f.Pix)).To(Succeed())
	return f
}

var _ = Describe("Scene", func() {
	Describe("Build", func() {
		It("sizes the arena against the screen", func() {
			s := build(config.DefaultConfig(), "1")

			Expect(s.Arena().Center).To(Equal(geom.V(200, 200)))
			Expect(s.Arena().Radius).To(Equal(200.0))
			Expect(s.Len()).To(Equal(1))
			Expect(s.Particles()[0].Radius).To(BeNumerically("~", 4, 1e-12))
			Expect(s.Particles()[0].Velocity).To(Equal(geom.V(10, 0)))
			Expect(s.Title()).To(Equal("Single Ball"))
		})

		It("creates one particle per interior pixel", func() {
			s := build(smallConfig(40), "3")

			Expect(s.Len()).To(Equal(1245))
			Expect(s.Particles()[0].Radius).To(BeNumerically("~", 0.1, 1e-12))
		})

		It("spreads the chaotic scene", func() {
			s := build(config.DefaultConfig(), "2")
			Expect(s.Len()).To(Equal(10))
		})

		It("places explicit particles as screen fractions", func() {
			s := build(config.DefaultConfig(), "two")
			ps := s.Particles()

			Expect(ps).To(HaveLen(2))
			Expect(ps[1].Velocity.X).To(Equal(10.001))
			Expect(ps[1].Radius).To(BeNumerically("~", 4, 1e-12))
			Expect(ps[0].Initial).To(Equal(geom.V(200, 200)))
		})

		It("keeps explicit particles centered on other screen sizes", func() {
			s := build(smallConfig(40), "two")
			ps := s.Particles()

			Expect(ps[0].Initial).To(Equal(s.Arena().Center))
			Expect(ps[1].Radius).To(BeNumerically("~", 0.4, 1e-12))
		})

		It("honours a start position given as a screen fraction", func() {
			cfg := config.DefaultConfig()
			sc := cfg.Scenes["1"]
			sc.Start = &config.Vec{X: 0.25, Y: 0.5}

			s, err := Build(cfg, sc)
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Particles()[0].Initial).To(Equal(geom.V(100, 200)))
		})

		It("rejects unknown integrators", func() {
			cfg := config.DefaultConfig()
			cfg.Physics.Integrator = "rk4"

			_, err := Build(cfg, cfg.Scenes["1"])
			Expect(err).To(HaveOccurred())
		})

		It("rejects invalid scenes", func() {
			cfg := config.DefaultConfig()
			sc := cfg.Scenes["1"]
			sc.Policy = "plasma"

			_, err := Build(cfg, sc)
			Expect(err).To(MatchError(config.ErrInvalidConfig))
		})
	})

	Describe("Tick", func() {
		It("advances under gravity with the semi-implicit step", func() {
			s := build(config.DefaultConfig(), "1")
			s.Tick(0.1)

			p := s.Particles()[0]
			Expect(p.Velocity.X).To(BeNumerically("~", 10, 1e-9))
			Expect(p.Velocity.Y).To(BeNumerically("~", 0.98, 1e-9))
			Expect(p.Position.X).To(BeNumerically("~", 201, 1e-9))
			Expect(p.Position.Y).To(BeNumerically("~", 200.098, 1e-9))
			Expect(s.Ticks()).To(Equal(1))
			Expect(s.Elapsed()).To(BeNumerically("~", 0.1, 1e-12))
		})

		It("is deterministic for a fixed initial ordering", func() {
			a := build(config.DefaultConfig(), "2")
			b := build(config.DefaultConfig(), "2")
			for i := 0; i < 300; i++ {
				a.Tick(0.1)
				b.Tick(0.1)
			}
			Expect(a.Particles()).To(Equal(b.Particles()))
		})

		It("updates particles in creation order", func() {
			var order []geom.Vec2
			stepper := physics.StepperFunc(func(p physics.Particle, _ geom.Disk, _ geom.Vec2, _ float64) physics.Particle {
				order = append(order, p.Initial)
				return p
			})
			ps := Spread(geom.V(5, 5), geom.Vec2{}, 3, 1, 1)
			ps = append(ps, Single(geom.V(7, 7), geom.Vec2{}, 1)...)
			s := New(Options{Width: 10, Height: 10, Arena: geom.NewDisk(geom.V(5, 5), 5), Stepper: stepper}, ps)

			s.Tick(1)
			Expect(order).To(Equal([]geom.Vec2{geom.V(5, 5), geom.V(5, 5), geom.V(5, 5), geom.V(7, 7)}))
		})

		DescribeTable("keeps every particle inside the arena",
			func(key string, size, ticks int) {
				s := build(smallConfig(size), key)
				arena := s.Arena()
				for t := 0; t < ticks; t++ {
					s.Tick(0.1)
					s.Each(func(i int, p physics.Particle) {
						limit := p.LegalRadius(arena)
						Expect(p.Position.Sub(arena.Center).Len()).To(BeNumerically("<=", limit+1e-9),
							"tick %d particle %d", t, i)
					})
				}
			},
			Entry("single ball", "1", 400, 2000),
			Entry("chaotic", "2", 400, 2000),
			Entry("per pixel", "3", 30, 400),
			Entry("two balls", "two", 400, 2000),
		)

		It("preserves speed across a reflection", func() {
			arena := geom.NewDisk(geom.V(0, 0), 10)
			p := physics.NewParticle(geom.V(8.5, 0), geom.V(10, 3), 1)
			s := New(Options{Width: 1, Height: 1, Arena: arena}, []physics.Particle{p})

			s.Tick(0.1)
			got := s.Particles()[0]
			Expect(got.Bounces).To(Equal(1))
			Expect(got.Speed()).To(BeNumerically("~", p.Speed(), 1e-9))
		})
	})

	Describe("Render", func() {
		It("rejects a buffer of the wrong size", func() {
			s := build(config.DefaultConfig(), "1")
			Expect(s.Render(make([]byte, 10))).To(MatchError(raster.ErrBufferSize))
		})

		It("draws the arena and particles for the solid policy", func() {
			s := build(config.DefaultConfig(), "1")
			f := render(s)

			Expect(f.At(0, 0)).To(Equal(DefaultPalette.Clear))
			Expect(f.At(200, 210)).To(Equal(DefaultPalette.Arena))
			Expect(f.At(200, 200)).To(Equal(DefaultPalette.Particle))
			Expect(f.At(203, 200)).To(Equal(DefaultPalette.Particle))
			Expect(f.At(204, 200)).To(Equal(DefaultPalette.Arena))
		})

		It("overwrites whatever the buffer held", func() {
			s := build(config.DefaultConfig(), "1")
			pix := make([]byte, 400*400*4)
			for i := range pix {
				pix[i] = 7
			}
			Expect(s.Render(pix)).To(Succeed())

			f, err := raster.NewFrame(pix, 400, 400)
			Expect(err).NotTo(HaveOccurred())
			Expect(f.At(399, 0)).To(Equal(DefaultPalette.Clear))
		})

		It("colors the position phase space by current position", func() {
			s := build(smallConfig(40), "4")
			f := render(s)

			Expect(f.At(20, 20)).To(Equal(raster.RGBA(128, 128, 0, 255)))
			Expect(f.At(10, 20)).To(Equal(raster.RGBA(64, 128, 0, 255)))
			Expect(f.At(0, 0)).To(Equal(DefaultPalette.Clear), "pixels outside the arena stay clear")

			s.Tick(0.1)
			f = render(s)
			// y = 20 + 0.098 maps to 128.12, still 128 after rounding
			Expect(f.At(20, 20)).To(Equal(raster.RGBA(128, 128, 0, 255)))

			for i := 0; i < 10; i++ {
				s.Tick(0.1)
			}
			f = render(s)
			Expect(f.At(20, 20).G).To(BeNumerically(">", 128), "particles fall towards larger y")
			Expect(f.At(20, 20).R).To(Equal(uint8(128)), "no horizontal motion on the axis")
		})

		It("colors the velocity phase space by current velocity", func() {
			s := build(smallConfig(40), "5")
			f := render(s)
			Expect(f.At(20, 20)).To(Equal(raster.RGBA(0, 100, 100, 255)))

			s.Tick(0.1)
			f = render(s)
			// vy = 0.98 over a span of [0, 10] onto [100, 255]
			want := uint8(math.Round(0.98/10*155 + 100))
			Expect(f.At(20, 20)).To(Equal(raster.RGBA(0, 100, want, 255)))
		})
	})

	Describe("Reset", func() {
		It("restores the initial population", func() {
			s := build(config.DefaultConfig(), "2")
			before := s.Particles()
			for i := 0; i < 25; i++ {
				s.Tick(0.1)
			}
			Expect(s.Particles()).NotTo(Equal(before))

			s.Reset()
			Expect(s.Particles()).To(Equal(before))
			Expect(s.Ticks()).To(BeZero())
			Expect(s.Elapsed()).To(BeZero())
		})
	})
})
