package physics

import (
	"math"
	"testing"

	"github.com/san-kum/phasebounce/internal/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParticle(t *testing.T) {
	p := NewParticle(geom.V(3, 4), geom.V(1, 0), 2)

	assert.Equal(t, geom.V(3, 4), p.Initial)
	assert.Equal(t, 2.0, p.Footprint().Radius)
	assert.Equal(t, 4.0, p.Footprint().RadiusSq)
	assert.Equal(t, 1.0, p.Speed())
	assert.Equal(t, 0.5, p.KineticEnergy())

	neg := NewParticle(geom.V(0, 0), geom.V(0, 0), -1)
	assert.Zero(t, neg.Radius)
}

func TestConfine_Inside(t *testing.T) {
	arena := geom.NewDisk(geom.V(0, 0), 200)
	p := NewParticle(geom.V(10, 10), geom.V(3, -2), 4)

	got := Confine(p, arena)
	assert.Equal(t, p, got)
}

func TestConfine_OnLimitIsLegal(t *testing.T) {
	arena := geom.NewDisk(geom.V(0, 0), 200)
	p := NewParticle(geom.V(196, 0), geom.V(5, 0), 4)

	got := Confine(p, arena)
	assert.Equal(t, geom.V(5, 0), got.Velocity, "strict comparison leaves the rim untouched")
	assert.Zero(t, got.Bounces)
}

func TestConfine_Reflects(t *testing.T) {
	arena := geom.NewDisk(geom.V(100, 100), 50)
	p := NewParticle(geom.V(100, 160), geom.V(2, 7), 5)

	got := Confine(p, arena)

	assert.InDelta(t, 45.0, got.Position.Sub(arena.Center).Len(), 1e-9)
	assert.InDelta(t, 100.0, got.Position.X, 1e-9)
	assert.InDelta(t, 145.0, got.Position.Y, 1e-9)
	assert.InDelta(t, 2.0, got.Velocity.X, 1e-12)
	assert.InDelta(t, -7.0, got.Velocity.Y, 1e-12)
	assert.Equal(t, 1, got.Bounces)
	assert.Equal(t, p.Initial, got.Initial, "initial position is never written")
}

func TestConfine_PreservesSpeed(t *testing.T) {
	arena := geom.NewDisk(geom.V(0, 0), 10)

	for i := 0; i < 36; i++ {
		angle := float64(i) * math.Pi / 18
		pos := geom.V(12*math.Cos(angle), 12*math.Sin(angle))
		vel := geom.V(3*math.Cos(angle+0.3), -4*math.Sin(angle))
		p := NewParticle(pos, vel, 1)

		got := Confine(p, arena)
		require.Equal(t, 1, got.Bounces)
		assert.InDelta(t, p.Speed(), got.Speed(), 1e-9)
		assert.InDelta(t, 9.0, got.Position.Len(), 1e-9)
	}
}

func TestConfine_DegenerateNormal(t *testing.T) {
	// A particle wider than the arena has a negative legal radius, so even
	// the center is out of bounds, and the normal there is undefined.
	arena := geom.NewDisk(geom.V(5, 5), 2)
	p := NewParticle(geom.V(5, 5), geom.V(1, 1), 3)

	got := Confine(p, arena)
	assert.Equal(t, p, got)
}
