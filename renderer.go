package lumen

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/gekko3d/lumen/lumenrt/rt/core"
	"github.com/gekko3d/lumen/lumenrt/rt/lighting"
	"github.com/gekko3d/lumen/lumenrt/rt/overlay"
	"github.com/gekko3d/lumen/lumenrt/rt/raster"
)

// Renderer owns the light set and shading policy for a sequence of frames.
type Renderer struct {
	Config   Config
	Lights   *LightSet
	Shader   lighting.Shader
	Logger   Logger
	Profiler *Profiler

	text *overlay.TextRenderer
}

func NewRenderer(cfg Config, logger Logger) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = NewNopLogger()
	}

	eval, err := cfg.Evaluator()
	if err != nil {
		return nil, err
	}

	set := NewLightSet(cfg.MaxLights)
	for i, lc := range cfg.Lights {
		l, err := lc.Light()
		if err != nil {
			return nil, fmt.Errorf("light %d: %w", i, err)
		}
		if _, err := set.Add(l); err != nil {
			return nil, fmt.Errorf("light %d: %w", i, err)
		}
	}
	logger.Debugf("renderer: %d lights, fresnel %s", set.Len(), eval.Policy)

	return &Renderer{
		Config:   cfg,
		Lights:   set,
		Shader:   lighting.Shader{Specular: eval},
		Logger:   logger,
		Profiler: NewProfiler(),
	}, nil
}

// Uniforms returns the per-draw uniforms for the current light set.
func (r *Renderer) Uniforms() core.FragmentUniforms {
	return r.Lights.Uniforms(r.Config.Tiling, r.Config.Camera.Position)
}

func (r *Renderer) rasterOptions() raster.Options {
	return raster.Options{
		Workers:    r.Config.Workers,
		BandHeight: r.Config.BandHeight,
		Background: r.Config.Background,
		Logger:     r.Logger,
	}
}

// Render shades g with the renderer's light set.
func (r *Renderer) Render(ctx context.Context, g *raster.GBuffer) (*raster.Frame, error) {
	return r.RenderRecords(ctx, g, r.Uniforms(), r.Lights.Records())
}

// RenderRecords shades g with a flat light array as uploaded to a GPU light
// buffer. A LightCount past the end of records is truncated and logged.
func (r *Renderer) RenderRecords(ctx context.Context, g *raster.GBuffer, u core.FragmentUniforms, records []core.LightRecord) (*raster.Frame, error) {
	lights, err := core.DecodeLights(records, u.LightCount)
	if errors.Is(err, core.ErrLightCountExceeded) {
		r.Logger.Warnf("%v; truncating", err)
	} else if err != nil {
		return nil, err
	}
	u.LightCount = uint32(len(lights))

	r.Profiler.BeginScope("Shade")
	frame, stats, err := raster.Shade(ctx, g, u, lights, r.Shader, r.rasterOptions())
	r.Profiler.EndScope("Shade")
	if err != nil {
		return nil, fmt.Errorf("shade: %w", err)
	}

	r.Profiler.SetCount("Lights", len(lights))
	r.Profiler.SetCount("Fragments", stats.Fragments)
	r.Profiler.SetCount("Bands", stats.Bands)
	r.Logger.Debugf("shaded %d fragments in %d bands", stats.Fragments, stats.Bands)
	return frame, nil
}

// Preview rasterizes the configured fixture, shades it and tone maps the result.
func (r *Renderer) Preview(ctx context.Context) (*image.NRGBA, error) {
	r.Profiler.Reset()

	r.Profiler.BeginScope("Rasterize")
	g, err := r.Config.Fixture().Rasterize(r.Config.CameraState(), r.Config.Width, r.Config.Height)
	r.Profiler.EndScope("Rasterize")
	if err != nil {
		return nil, err
	}

	frame, err := r.Render(ctx, g)
	if err != nil {
		return nil, err
	}

	r.Profiler.BeginScope("ToneMap")
	img := frame.ToneMap(r.Config.ToneMapOptions())
	r.Profiler.EndScope("ToneMap")

	if r.Config.Overlay {
		if err := r.drawStats(img); err != nil {
			r.Logger.Warnf("overlay: %v", err)
		}
	}
	return img, nil
}

// PreviewChannel renders one G-buffer attachment for inspection.
func (r *Renderer) PreviewChannel(ch raster.Channel) (*image.NRGBA, error) {
	g, err := r.Config.Fixture().Rasterize(r.Config.CameraState(), r.Config.Width, r.Config.Height)
	if err != nil {
		return nil, err
	}
	return g.Visualize(ch).ToneMap(raster.ToneMapOptions{Gamma: 1}), nil
}

func (r *Renderer) drawStats(img *image.NRGBA) error {
	if r.text == nil {
		tr, err := overlay.NewTextRenderer(nil, 12)
		if err != nil {
			return err
		}
		r.text = tr
	}
	r.text.Draw(img, []overlay.TextItem{{
		Text:     r.Profiler.GetStatsString(),
		Position: image.Pt(6, 6),
		Color:    color.White,
	}})
	return nil
}
