package config

// Presets are the built-in scenes, selected by the positional argument.
var Presets = map[string]Scene{
	"1": {
		Title: "Single Ball", Population: PopulationSingle, Policy: PolicySolid,
		ArenaRadius: 0.5, ParticleRadius: 0.01,
		Velocity: Vec{X: 10, Y: 0},
	},
	"2": {
		Title: "Chaotic System With 10 Balls", Population: PopulationSpread, Policy: PolicySolid,
		ArenaRadius: 0.5, ParticleRadius: 0.01,
		Count: 10, VelocityStep: 1,
	},
	"3": {
		Title: "Ball Per Pixel", Population: PopulationPerPixel, Policy: PolicySolid,
		ArenaRadius: 0.5, ParticleRadius: 0.0025,
	},
	"4": {
		Title: "Position Phase Space", Population: PopulationPerPixel, Policy: PolicyPosition,
		ArenaRadius: 0.5, ParticleRadius: 0.0025,
	},
	"5": {
		Title: "Velocity Phase Space", Population: PopulationPerPixel, Policy: PolicyVelocity,
		ArenaRadius: 0.5, ParticleRadius: 0.0025,
		ChannelSpan: &Span{Low: 100, High: 255},
	},
	"two": {
		Title: "Two Balls", Population: PopulationExplicit, Policy: PolicySolid,
		ArenaRadius: 0.5, ParticleRadius: 0.01,
		Particles: []ParticleSpec{
			{Position: Vec{X: 0.5, Y: 0.5}, Velocity: Vec{X: 10, Y: 0}, Radius: 0.01},
			{Position: Vec{X: 0.5, Y: 0.5}, Velocity: Vec{X: 10.001, Y: 0}, Radius: 0.01},
		},
	},
}
