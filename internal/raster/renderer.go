package raster

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"phong-tracer/internal/scene"
)

// Render traces every pixel of cam through w into sink. Rows are handed to
// workers goroutines; each pixel runs cast, intersect, hit, normal and shade
// independently, so workers share nothing but the read-only world. A
// cancelled ctx stops handing out rows and Render returns ctx.Err().
func Render(ctx context.Context, cam *scene.Camera, w *scene.World, sink Sink, workers int) error {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	rows := make(chan int, workers*2)

	g.Go(func() error {
		defer close(rows)
		for y := 0; y < cam.VSize; y++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			select {
			case rows <- y:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for y := range rows {
				for x := 0; x < cam.HSize; x++ {
					sink.WriteColor(x, y, w.ColorAt(cam.RayForPixel(x, y)))
				}
			}
			return nil
		})
	}

	return g.Wait()
}

// RenderCanvas renders into a new canvas sized to the camera.
func RenderCanvas(ctx context.Context, cam *scene.Camera, w *scene.World, workers int) (*Canvas, error) {
	c := NewCanvas(cam.HSize, cam.VSize)
	if err := Render(ctx, cam, w, c, workers); err != nil {
		return nil, err
	}
	return c, nil
}
