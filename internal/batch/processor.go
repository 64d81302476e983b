package batch

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog/log"

	"phong-tracer/internal/config"
	"phong-tracer/internal/postprocess"
	"phong-tracer/internal/raster"
	"phong-tracer/internal/shading"
)

// Job is one resolved scene to render.
type Job struct {
	Source string // scene file, empty for the built-in default
	Config config.Config
}

// Result holds the outcome of rendering one job.
type Result struct {
	Name     string
	Source   string
	Output   string
	Format   string
	Width    int
	Height   int
	Checksum uint64 // xxhash of the encoded image
	Elapsed  time.Duration
	Success  bool
	Error    string
}

// ProgressInterval is how often Run logs progress.
var ProgressInterval = 2 * time.Second

// Run renders every job in order. Each frame is traced in parallel with the
// job's worker count. A failing job is recorded and the rest continue; once
// ctx is cancelled the remaining jobs fail with the context error.
func Run(ctx context.Context, jobs []Job) []Result {
	total := len(jobs)
	results := make([]Result, total)
	var processed, traced atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(ProgressInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				px := traced.Load()
				if px > 0 {
					elapsed := time.Since(start).Seconds()
					log.Info().
						Int64("frames", processed.Load()).
						Int("total", total).
						Float64("pixels_per_sec", float64(px)/elapsed).
						Msg("rendering")
				}
			}
		}
	}()

	for i, job := range jobs {
		if err := ctx.Err(); err != nil {
			results[i] = failed(job, err)
			continue
		}
		results[i] = processJob(ctx, job, &traced)
		processed.Add(1)

		r := results[i]
		if r.Success {
			log.Info().
				Str("scene", r.Name).
				Str("output", r.Output).
				Dur("elapsed", r.Elapsed).
				Msg("rendered")
		} else {
			log.Error().Str("scene", r.Name).Str("error", r.Error).Msg("render failed")
		}
	}

	close(done)
	return results
}

// countingSink tallies traced pixels for the progress reporter.
type countingSink struct {
	raster.Sink
	n *atomic.Int64
}

func (s countingSink) WriteColor(x, y int, c shading.Color) {
	s.Sink.WriteColor(x, y, c)
	s.n.Add(1)
}

func failed(job Job, err error) Result {
	return Result{
		Name:   job.Config.Name,
		Source: job.Source,
		Output: job.Config.OutputPath(),
		Format: job.Config.Format,
		Error:  err.Error(),
	}
}

func processJob(ctx context.Context, job Job, traced *atomic.Int64) Result {
	start := time.Now()
	cfg := job.Config

	world, cam, err := cfg.Build()
	if err != nil {
		return failed(job, err)
	}
	format, err := raster.ParseFormat(cfg.Format)
	if err != nil {
		return failed(job, err)
	}

	canvas := raster.NewCanvas(cam.HSize, cam.VSize)
	if err := raster.Render(ctx, cam, world, countingSink{canvas, traced}, cfg.Workers); err != nil {
		return failed(job, fmt.Errorf("render %s: %w", cfg.Name, err))
	}

	img := canvas.Image()

	// Post-processing: supersample downsample
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.Width, cfg.Height)
	}

	var buf bytes.Buffer
	if err := raster.Encode(&buf, img, format); err != nil {
		return failed(job, err)
	}

	outPath := cfg.OutputPath()
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return failed(job, err)
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
		return failed(job, err)
	}

	b := img.Bounds()
	return Result{
		Name:     cfg.Name,
		Source:   job.Source,
		Output:   outPath,
		Format:   string(format),
		Width:    b.Dx(),
		Height:   b.Dy(),
		Checksum: xxhash.Sum64(buf.Bytes()),
		Elapsed:  time.Since(start),
		Success:  true,
	}
}
