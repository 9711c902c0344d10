//go:build raylib

package display

import (
	"context"
	"errors"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/phasebounce/internal/scene"
)

// Backend names the windowing library compiled into this binary.
const Backend = "raylib"

// Run opens a fixed-size window and plays s until the window is closed or
// ctx is done.
func Run(ctx context.Context, s *scene.Scene, opts Options) error {
	opts = opts.withDefaults(s)
	p := newPlayer(ctx, s, opts.Dt)

	rl.InitWindow(int32(p.width*opts.Scale), int32(p.height*opts.Scale), opts.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(opts.FPS))
	rl.SetExitKey(rl.KeyEscape)

	img := rl.GenImageColor(p.width, p.height, rl.Black)
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(tex)

	texels := make([]color.RGBA, p.width*p.height)
	for !rl.WindowShouldClose() {
		if err := p.frame(); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}
		for i := range texels {
			px := p.pix[i*4 : i*4+4]
			texels[i] = color.RGBA{R: px[0], G: px[1], B: px[2], A: px[3]}
		}
		rl.UpdateTexture(tex, texels)

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		rl.DrawTextureEx(tex, rl.NewVector2(0, 0), 0, float32(opts.Scale), rl.White)
		rl.EndDrawing()
	}
	return nil
}
