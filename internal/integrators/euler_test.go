package integrators

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/phasebounce/internal/geom"
	"github.com/san-kum/phasebounce/internal/physics"
)

const tol = 1e-9

func TestSemiImplicitEuler_FreeFlight(t *testing.T) {
	arena := geom.NewDisk(geom.V(0, 0), 200)
	p := physics.NewParticle(geom.V(0, 0), geom.V(10, 0), 4)

	got := NewSemiImplicitEuler().Step(p, arena, geom.V(0, 9.8), 0.1)

	if math.Abs(got.Position.X-1.0) > tol || math.Abs(got.Position.Y-0.098) > tol {
		t.Errorf("position = %v, want (1.0, 0.098)", got.Position)
	}
	if math.Abs(got.Velocity.X-10.0) > tol || math.Abs(got.Velocity.Y-0.98) > tol {
		t.Errorf("velocity = %v, want (10.0, 0.98)", got.Velocity)
	}
	if got.Bounces != 0 {
		t.Errorf("expected no reflection, got %d", got.Bounces)
	}
}

func TestSemiImplicitEuler_RadialReflection(t *testing.T) {
	arena := geom.NewDisk(geom.V(0, 0), 200)
	limit := 200.0 - 4.0
	p := physics.NewParticle(geom.V(limit, 0), geom.V(5, 0), 4)

	got := NewSemiImplicitEuler().Step(p, arena, geom.V(0, 0), 0.1)

	if got.Bounces != 1 {
		t.Fatalf("expected one reflection, got %d", got.Bounces)
	}
	if got.Velocity.X >= 0 {
		t.Errorf("outward radial velocity should flip sign, got %v", got.Velocity)
	}
	if math.Abs(got.Velocity.X+5) > tol {
		t.Errorf("expected vx = -5, got %f", got.Velocity.X)
	}
	if d := got.Position.Len(); math.Abs(d-limit) > tol {
		t.Errorf("expected position on the legal circle (%f), got distance %f", limit, d)
	}
}

func TestEuler_UsesOldVelocity(t *testing.T) {
	arena := geom.NewDisk(geom.V(0, 0), 200)
	p := physics.NewParticle(geom.V(0, 0), geom.V(10, 0), 4)

	got := NewEuler().Step(p, arena, geom.V(0, 9.8), 0.1)

	if math.Abs(got.Position.Y) > tol {
		t.Errorf("explicit euler should not move along y on the first step, got %f", got.Position.Y)
	}
	if math.Abs(got.Velocity.Y-0.98) > tol {
		t.Errorf("expected vy = 0.98, got %f", got.Velocity.Y)
	}
}

func TestVerlet_ConstantAcceleration(t *testing.T) {
	arena := geom.NewDisk(geom.V(0, 0), 1000)
	p := physics.NewParticle(geom.V(0, 0), geom.V(0, 0), 1)
	integ := NewVerlet()

	dt := 0.1
	for i := 0; i < 10; i++ {
		p = integ.Step(p, arena, geom.V(0, 9.8), dt)
	}

	// Exact for constant acceleration: y = ½·g·t²
	if want := 0.5 * 9.8 * 1.0; math.Abs(p.Position.Y-want) > 1e-9 {
		t.Errorf("expected y = %f, got %f", want, p.Position.Y)
	}
}

func TestContainment(t *testing.T) {
	arena := geom.NewDisk(geom.V(200, 200), 200)
	gravity := geom.V(0, 9.8)

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			integ, err := New(name)
			if err != nil {
				t.Fatal(err)
			}

			particles := []physics.Particle{
				physics.NewParticle(geom.V(200, 200), geom.V(10, 0), 4),
				physics.NewParticle(geom.V(50, 210), geom.V(-30, 80), 1),
				physics.NewParticle(geom.V(350, 200), geom.V(0, 0), 4),
				physics.NewParticle(geom.V(200, 10), geom.V(150, -150), 2),
			}

			for tick := 0; tick < 5000; tick++ {
				for i := range particles {
					before := particles[i]
					particles[i] = integ.Step(before, arena, gravity, 0.1)

					p := particles[i]
					limit := p.LegalRadius(arena)
					if d := p.Position.Sub(arena.Center).Len(); d > limit+tol {
						t.Fatalf("tick %d particle %d: distance %f exceeds %f", tick, i, d, limit)
					}
					if p.Initial != before.Initial {
						t.Fatalf("tick %d particle %d: initial position changed", tick, i)
					}
				}
			}
		})
	}
}

func TestNew(t *testing.T) {
	for _, name := range []string{"", "semi_implicit", "symplectic", "euler", "explicit", "verlet"} {
		if _, err := New(name); err != nil {
			t.Errorf("New(%q): %v", name, err)
		}
	}

	_, err := New("rk4")
	if !errors.Is(err, ErrUnknownIntegrator) {
		t.Errorf("expected ErrUnknownIntegrator, got %v", err)
	}
}
