//go:build !raylib

package display

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/san-kum/phasebounce/internal/scene"
)

// Backend names the windowing library compiled into this binary.
const Backend = "ebiten"

type game struct {
	*player
}

func (g *game) Update() error {
	if err := g.frame(); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.WritePixels(g.pix)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens a fixed-size window and plays s until the window is closed or
// ctx is done.
func Run(ctx context.Context, s *scene.Scene, opts Options) error {
	opts = opts.withDefaults(s)
	g := &game{player: newPlayer(ctx, s, opts.Dt)}

	ebiten.SetWindowSize(g.width*opts.Scale, g.height*opts.Scale)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(opts.FPS)

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
