package raster

import (
	"context"
	"runtime"
	"sync/atomic"

	"github.com/gekko3d/lumen/lumenrt/rt/core"
	"github.com/gekko3d/lumen/lumenrt/rt/lighting"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/sync/errgroup"
)

// Logger receives shading diagnostics. lumen.Logger satisfies it.
type Logger interface {
	Debugf(format string, args ...any)
}

// Options controls how a G-buffer is split across workers.
type Options struct {
	Workers    int        // 0 means runtime.NumCPU()
	BandHeight int        // rows per task, 0 means 16
	Background mgl32.Vec3 // radiance for uncovered texels
	Logger     Logger     // optional
}

// Stats summarizes one shading pass.
type Stats struct {
	Bands     int
	Fragments int
}

// Shade evaluates every covered texel of g. Each texel is independent and the
// light list is read in order, so the result does not depend on scheduling.
func Shade(ctx context.Context, g *GBuffer, u core.FragmentUniforms, lights []core.Light, s lighting.Shader, opts Options) (*Frame, Stats, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	band := opts.BandHeight
	if band <= 0 {
		band = 16
	}

	frame := NewFrame(g.Width, g.Height)
	stats := Stats{Fragments: g.CoveredCount()}

	var skipped atomic.Int32
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for y0 := 0; y0 < g.Height; y0 += band {
		y0 := y0 // per-iteration copy: module targets go 1.21 (pre-1.22 loopvar semantics)
		y1 := min(y0+band, g.Height)
		stats.Bands++
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				skipped.Add(1)
				return err
			}
			for y := y0; y < y1; y++ {
				for x := 0; x < g.Width; x++ {
					i := g.index(x, y)
					if !g.Covered[i] {
						frame.Pix[i] = opts.Background
						continue
					}
					frame.Pix[i] = s.Shade(g.Fragments[i], u, lights).Total()
				}
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		if opts.Logger != nil {
			opts.Logger.Debugf("shade: %d of %d bands skipped: %v", skipped.Load(), stats.Bands, err)
		}
		return nil, stats, err
	}
	return frame, stats, nil
}
