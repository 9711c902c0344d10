package config

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth      = 400
	DefaultHeight     = DefaultWidth
	DefaultScale      = 3
	DefaultGravity    = 9.8
	DefaultDt         = 0.1
	DefaultIntegrator = "semi_implicit"
	DefaultScene      = "1"
	DefaultFPS        = 30
)

var (
	ErrInvalidConfig     = errors.New("config: invalid configuration")
	ErrUnsupportedFormat = errors.New("config: unsupported file format")
)

type Config struct {
	Screen  Screen           `yaml:"screen" toml:"screen"`
	Physics Physics          `yaml:"physics" toml:"physics"`
	Palette Palette          `yaml:"palette" toml:"palette"`
	Scenes  map[string]Scene `yaml:"scenes" toml:"scenes"`
}

type Screen struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
	// Scale is the window size in screen pixels per buffer pixel.
	Scale int `yaml:"scale" toml:"scale"`
	// FPS is the frame rate of the window and the terminal viewer. Each
	// frame advances the simulation by one Dt.
	FPS int `yaml:"fps" toml:"fps"`
}

type Physics struct {
	Gravity    Vec     `yaml:"gravity" toml:"gravity"`
	Dt         float64 `yaml:"dt" toml:"dt"`
	Integrator string  `yaml:"integrator" toml:"integrator"`
}

type Palette struct {
	Clear    Color `yaml:"clear" toml:"clear"`
	Arena    Color `yaml:"arena" toml:"arena"`
	Particle Color `yaml:"particle" toml:"particle"`
}

type Vec struct {
	X float64 `yaml:"x" toml:"x"`
	Y float64 `yaml:"y" toml:"y"`
}

type Span struct {
	Low  float64 `yaml:"low" toml:"low"`
	High float64 `yaml:"high" toml:"high"`
}

type Color struct {
	R uint8 `yaml:"r" toml:"r"`
	G uint8 `yaml:"g" toml:"g"`
	B uint8 `yaml:"b" toml:"b"`
	A uint8 `yaml:"a" toml:"a"`
}

// Population kinds.
const (
	PopulationSingle   = "single"
	PopulationSpread   = "spread"
	PopulationExplicit = "explicit"
	PopulationPerPixel = "per_pixel"
)

// Policy names.
const (
	PolicySolid    = "solid"
	PolicyPosition = "position"
	PolicyVelocity = "velocity"
)

// Scene describes one selectable scene. Lengths given as fractions are
// relative to the screen width.
type Scene struct {
	Title      string `yaml:"title" toml:"title"`
	Population string `yaml:"population" toml:"population"`
	Policy     string `yaml:"policy" toml:"policy"`

	// ArenaRadius and ParticleRadius are fractions of the screen width.
	ArenaRadius    float64 `yaml:"arena_radius" toml:"arena_radius"`
	ParticleRadius float64 `yaml:"particle_radius" toml:"particle_radius"`

	// Start is a fraction of the screen size; nil means the arena center.
	Start    *Vec `yaml:"start,omitempty" toml:"start,omitempty"`
	Velocity Vec  `yaml:"velocity" toml:"velocity"`

	// Count and VelocityStep configure the spread population: particle i
	// starts with Velocity + (i*VelocityStep/Count, 0).
	Count        int     `yaml:"count,omitempty" toml:"count,omitempty"`
	VelocityStep float64 `yaml:"velocity_step,omitempty" toml:"velocity_step,omitempty"`

	Particles []ParticleSpec `yaml:"particles,omitempty" toml:"particles,omitempty"`

	// VelocitySpan is mapped onto ChannelSpan by the velocity policy.
	// A nil VelocitySpan means [0, width/10*2.5].
	VelocitySpan *Span `yaml:"velocity_span,omitempty" toml:"velocity_span,omitempty"`
	ChannelSpan  *Span `yaml:"channel_span,omitempty" toml:"channel_span,omitempty"`
}

// ParticleSpec places one particle of an explicit population. Position is a
// fraction of the screen size and Radius a fraction of the screen width, like
// Scene.Start and Scene.ParticleRadius; Velocity is in pixels per second.
type ParticleSpec struct {
	Position Vec     `yaml:"position" toml:"position"`
	Velocity Vec     `yaml:"velocity" toml:"velocity"`
	Radius   float64 `yaml:"radius" toml:"radius"`
}

func DefaultConfig() *Config {
	scenes := make(map[string]Scene, len(Presets))
	for k, v := range Presets {
		scenes[k] = v
	}
	return &Config{
		Screen: Screen{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Scale:  DefaultScale,
			FPS:    DefaultFPS,
		},
		Physics: Physics{
			Gravity:    Vec{X: 0, Y: DefaultGravity},
			Dt:         DefaultDt,
			Integrator: DefaultIntegrator,
		},
		Palette: Palette{
			Clear:    Color{0, 0, 0, 255},
			Arena:    Color{100, 100, 100, 255},
			Particle: Color{255, 255, 255, 255},
		},
		Scenes: scenes,
	}
}

// Load reads a yaml or toml file over the defaults. Scenes declared in the
// file replace presets with the same key.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: decode %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("config: decode %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Marshal encodes cfg as yaml.
func Marshal(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *Config) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("%w: screen must be positive, got %dx%d", ErrInvalidConfig, c.Screen.Width, c.Screen.Height)
	}
	if c.Screen.Scale <= 0 {
		return fmt.Errorf("%w: scale must be positive, got %d", ErrInvalidConfig, c.Screen.Scale)
	}
	if !(c.Physics.Dt > 0) || math.IsInf(c.Physics.Dt, 0) {
		return fmt.Errorf("%w: dt must be positive, got %f", ErrInvalidConfig, c.Physics.Dt)
	}
	if !finite(c.Physics.Gravity.X) || !finite(c.Physics.Gravity.Y) {
		return fmt.Errorf("%w: gravity must be finite", ErrInvalidConfig)
	}
	if _, ok := c.Scenes[DefaultScene]; !ok {
		return fmt.Errorf("%w: scene %q is required as the fallback", ErrInvalidConfig, DefaultScene)
	}
	for key, s := range c.Scenes {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("scene %q: %w", key, err)
		}
	}
	return nil
}

func (s Scene) Validate() error {
	switch s.Population {
	case PopulationSingle, PopulationPerPixel:
	case PopulationSpread:
		if s.Count <= 0 {
			return fmt.Errorf("%w: spread population needs a positive count", ErrInvalidConfig)
		}
	case PopulationExplicit:
		if len(s.Particles) == 0 {
			return fmt.Errorf("%w: explicit population needs particles", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown population %q", ErrInvalidConfig, s.Population)
	}
	switch s.Policy {
	case PolicySolid, PolicyPosition, PolicyVelocity:
	default:
		return fmt.Errorf("%w: unknown policy %q", ErrInvalidConfig, s.Policy)
	}
	if !(s.ArenaRadius > 0) {
		return fmt.Errorf("%w: arena radius must be positive, got %f", ErrInvalidConfig, s.ArenaRadius)
	}
	if s.ParticleRadius < 0 {
		return fmt.Errorf("%w: particle radius must not be negative, got %f", ErrInvalidConfig, s.ParticleRadius)
	}
	for _, sp := range []*Span{s.VelocitySpan, s.ChannelSpan} {
		if sp != nil && sp.Low == sp.High {
			return fmt.Errorf("%w: span [%f, %f] is empty", ErrInvalidConfig, sp.Low, sp.High)
		}
	}
	return nil
}

// Resolve maps a scene selector to a scene. Anything that is not a known
// key, after trimming and normalizing integers such as "03", selects
// [DefaultScene]. The returned bool reports whether the selector matched.
func (c *Config) Resolve(selector string) (string, Scene, bool) {
	key := strings.TrimSpace(selector)
	if n, err := strconv.Atoi(key); err == nil {
		key = strconv.Itoa(n)
	}
	if s, ok := c.Scenes[key]; ok {
		return key, s, true
	}
	return DefaultScene, c.Scenes[DefaultScene], false
}

// ListScenes returns scene keys, numeric keys first in numeric order.
func (c *Config) ListScenes() []string {
	keys := make([]string, 0, len(c.Scenes))
	for k := range c.Scenes {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, errA := strconv.Atoi(keys[i])
		b, errB := strconv.Atoi(keys[j])
		switch {
		case errA == nil && errB == nil:
			return a < b
		case errA == nil:
			return true
		case errB == nil:
			return false
		}
		return keys[i] < keys[j]
	})
	return keys
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
