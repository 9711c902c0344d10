package display

import (
	"context"
	"fmt"

	"github.com/san-kum/phasebounce/internal/config"
	"github.com/san-kum/phasebounce/internal/scene"
)

// Options configures a display window.
type Options struct {
	Title string
	// Scale is the integer pixel zoom; the window is Width*Scale x Height*Scale.
	Scale int
	// Dt is the simulated time advanced per frame.
	Dt  float64
	FPS int
}

func (o Options) withDefaults(s *scene.Scene) Options {
	if o.Title == "" {
		o.Title = s.Title()
	}
	if o.Scale <= 0 {
		o.Scale = 1
	}
	if o.FPS <= 0 {
		o.FPS = config.DefaultFPS
	}
	return o
}

// player owns the pixel buffer a window presents and advances the scene
// once per frame.
type player struct {
	ctx    context.Context
	scene  *scene.Scene
	dt     float64
	pix    []byte
	width  int
	height int
}

func newPlayer(ctx context.Context, s *scene.Scene, dt float64) *player {
	w, h := s.Size()
	return &player{
		ctx:    ctx,
		scene:  s,
		dt:     dt,
		pix:    make([]byte, w*h*4),
		width:  w,
		height: h,
	}
}

// frame ticks then renders. It returns ctx.Err() once the context is done.
func (p *player) frame() error {
	if err := p.ctx.Err(); err != nil {
		return err
	}
	p.scene.Tick(p.dt)
	if err := p.scene.Render(p.pix); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
