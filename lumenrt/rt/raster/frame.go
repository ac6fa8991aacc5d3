package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Frame is a linear HDR radiance image.
type Frame struct {
	Width  int
	Height int
	Pix    []mgl32.Vec3
}

func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]mgl32.Vec3, width*height),
	}
}

func (f *Frame) At(x, y int) mgl32.Vec3 {
	return f.Pix[y*f.Width+x]
}

// ToneMapOperator maps HDR radiance into [0,1].
type ToneMapOperator uint8

const (
	ToneMapClamp ToneMapOperator = iota
	ToneMapReinhard
)

func ParseToneMap(name string) (ToneMapOperator, error) {
	switch name {
	case "", "clamp":
		return ToneMapClamp, nil
	case "reinhard":
		return ToneMapReinhard, nil
	}
	return 0, fmt.Errorf("unknown tone map operator %q", name)
}

type ToneMapOptions struct {
	Operator ToneMapOperator
	Exposure float32 // linear multiplier, 0 means 1
	Gamma    float32 // 0 means 2.2
}

func (o ToneMapOptions) withDefaults() ToneMapOptions {
	if o.Exposure == 0 {
		o.Exposure = 1
	}
	if o.Gamma == 0 {
		o.Gamma = 2.2
	}
	return o
}

// Encode8 converts one channel to an 8-bit value.
func (o ToneMapOptions) Encode8(c float32) uint8 {
	o = o.withDefaults()
	c *= o.Exposure
	if math.IsNaN(float64(c)) || c < 0 {
		c = 0
	}
	if o.Operator == ToneMapReinhard {
		c = c / (1 + c)
	}
	c = mgl32.Clamp(c, 0, 1)
	c = float32(math.Pow(float64(c), 1/float64(o.Gamma)))
	return uint8(c*255 + 0.5)
}

// ToneMap converts the frame into an 8-bit image.
func (f *Frame) ToneMap(opts ToneMapOptions) *image.NRGBA {
	opts = opts.withDefaults()
	img := image.NewNRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			p := f.At(x, y)
			img.SetNRGBA(x, y, color.NRGBA{
				R: opts.Encode8(p[0]),
				G: opts.Encode8(p[1]),
				B: opts.Encode8(p[2]),
				A: 255,
			})
		}
	}
	return img
}
