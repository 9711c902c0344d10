package scene

import (
	"github.com/san-kum/phasebounce/internal/geom"
	"github.com/san-kum/phasebounce/internal/physics"
)

func Single(pos, vel geom.Vec2, radius float64) []physics.Particle {
	return []physics.Particle{physics.NewParticle(pos, vel, radius)}
}

// Spread stacks count particles on pos. Particle i gets an extra
// horizontal velocity of i*step/count, so trajectories start together and
// diverge.
func Spread(pos, vel geom.Vec2, count int, step, radius float64) []physics.Particle {
	if count <= 0 {
		return nil
	}
	out := make([]physics.Particle, 0, count)
	for i := 0; i < count; i++ {
		v := vel.Add(geom.V(float64(i)*step/float64(count), 0))
		out = append(out, physics.NewParticle(pos, v, radius))
	}
	return out
}

// PerPixel places one particle at rest on every integer grid point of a
// width x height screen that lies strictly inside arena, in row-major
// order.
func PerPixel(arena geom.Disk, radius float64, width, height int) []physics.Particle {
	rowStart, rowEnd := gridRange(arena.Center.Y, arena.Radius, height)
	colStart, colEnd := gridRange(arena.Center.X, arena.Radius, width)

	var out []physics.Particle
	for row := rowStart; row < rowEnd; row++ {
		for col := colStart; col < colEnd; col++ {
			p := geom.V(float64(col), float64(row))
			if arena.Contains(p) {
				out = append(out, physics.NewParticle(p, geom.Vec2{}, radius))
			}
		}
	}
	return out
}

// gridRange bounds the integer coordinates in [0, limit) within r of c.
func gridRange(c, r float64, limit int) (int, int) {
	lo, hi := c-r, c+r+1
	start, end := 0, limit
	if lo > 0 {
		start = min(int(lo), limit)
	}
	if hi < float64(limit) {
		end = max(int(hi), 0)
	}
	return start, end
}
