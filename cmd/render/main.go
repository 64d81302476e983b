package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"phong-tracer/internal/batch"
	"phong-tracer/internal/config"
)

var CLI struct {
	Debug bool `help:"Whether to enable debug logging."`

	Render struct {
		Scenes      []string `arg:"" optional:"" name:"scenes" help:"Scene files (.yaml, .yml or .json). Renders the built-in scene when omitted." type:"existingfile"`
		OutputDir   string   `short:"o" help:"Output directory (default: renders)."`
		Format      string   `short:"f" help:"Image format: ppm, png, webp or tga (default: png)."`
		Workers     int      `short:"w" help:"Number of worker goroutines (default: NumCPU)."`
		Supersample int      `short:"s" help:"Render at N times the size and downscale."`
		Width       int      `help:"Output width in pixels."`
		Height      int      `help:"Output height in pixels."`
		NoManifest  bool     `help:"Do not write manifest.json."`
	} `cmd:"" default:"withargs" help:"Render scene files to images."`

	Config struct {
	} `cmd:"" help:"Write the built-in scene to standard output."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	ctx := kong.Parse(&CLI,
		kong.Name("render"),
		kong.Description("a Phong-shaded sphere ray tracer"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Debug().Msg("debug logging enabled")
	}

	switch ctx.Command() {
	case "render", "render <scenes>":
		if err := renderCommand(); err != nil {
			writeError(err)
		}
	case "config":
		os.Stdout.Write(config.DefaultYAML)
	}
}

func renderCommand() error {
	flags := config.Flags{
		OutputDir:   CLI.Render.OutputDir,
		Format:      CLI.Render.Format,
		Workers:     CLI.Render.Workers,
		Supersample: CLI.Render.Supersample,
		Width:       CLI.Render.Width,
		Height:      CLI.Render.Height,
	}

	jobs, err := loadJobs(CLI.Render.Scenes, flags)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Info().Int("scenes", len(jobs)).Msg("starting render")
	start := time.Now()

	results := batch.Run(ctx, jobs)

	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
		}
	}
	log.Info().
		Int("rendered", len(results)-failed).
		Int("failed", failed).
		Dur("elapsed", time.Since(start)).
		Msg("done")

	if !CLI.Render.NoManifest {
		paths, err := batch.WriteManifests(results)
		for _, p := range paths {
			log.Info().Str("path", p).Msg("manifest written")
		}
		if err != nil {
			log.Warn().Err(err).Msg("manifest write failed")
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d scenes failed", failed, len(results))
	}
	return nil
}

func loadJobs(paths []string, flags config.Flags) ([]batch.Job, error) {
	if len(paths) == 0 {
		cfg, err := config.Default()
		if err != nil {
			return nil, err
		}
		cfg.Resolve(flags)
		return []batch.Job{{Config: cfg}}, nil
	}

	jobs := make([]batch.Job, 0, len(paths))
	for _, p := range paths {
		cfg, err := config.Load(p)
		if err != nil {
			return nil, err
		}
		cfg.Resolve(flags)
		jobs = append(jobs, batch.Job{Source: p, Config: cfg})
	}
	return jobs, nil
}
