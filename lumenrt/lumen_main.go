package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"os"
	"os/signal"

	"github.com/gekko3d/lumen"
	"github.com/gekko3d/lumen/lumenrt/rt/raster"
)

func main() {
	configPath := flag.String("config", "", "Scene config (.json, .yaml)")
	out := flag.String("out", "preview.png", "Output image (.png, .bmp, .tiff)")
	channel := flag.String("channel", "", "Write a gbuffer channel instead of the lit frame (albedo, normal, position, shadow, specular)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	stats := flag.Bool("overlay", false, "Draw profiler stats onto the image")
	flag.Parse()

	logger := lumen.NewDefaultLogger("lumen", *debug)
	if err := run(logger, *configPath, *out, *channel, *stats); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(logger lumen.Logger, configPath, out, channel string, stats bool) error {
	cfg := lumen.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = lumen.LoadConfig(configPath); err != nil {
			return err
		}
	}
	if stats {
		cfg.Overlay = true
	}

	format, err := raster.FormatFromPath(out)
	if err != nil {
		return err
	}

	r, err := lumen.NewRenderer(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var img image.Image
	if channel != "" {
		ch, err := raster.ParseChannel(channel)
		if err != nil {
			return err
		}
		img, err = r.PreviewChannel(ch)
		if err != nil {
			return err
		}
	} else {
		img, err = r.Preview(ctx)
		if err != nil {
			return err
		}
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := raster.Encode(f, img, format); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", out, err)
	}
	logger.Infof("wrote %s (%dx%d)", out, cfg.Width, cfg.Height)
	logger.Debugf("\n%s", r.Profiler.GetStatsString())
	return nil
}
