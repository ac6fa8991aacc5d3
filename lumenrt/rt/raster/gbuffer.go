// Package raster shades a buffer of interpolated fragments in software.
package raster

import (
	"errors"
	"fmt"

	"github.com/gekko3d/lumen/lumenrt/rt/core"
	"github.com/go-gl/mathgl/mgl32"
)

var ErrGBufferSize = errors.New("invalid gbuffer size")

// Channel names a G-buffer attachment.
type Channel uint32

const (
	ChannelAlbedo   Channel = 0
	ChannelNormal   Channel = 1
	ChannelPosition Channel = 2
	ChannelShadow   Channel = 3
	ChannelSpecular Channel = 4 // roughness, metallic, AO
)

func (c Channel) String() string {
	switch c {
	case ChannelAlbedo:
		return "albedo"
	case ChannelNormal:
		return "normal"
	case ChannelPosition:
		return "position"
	case ChannelShadow:
		return "shadow"
	case ChannelSpecular:
		return "specular"
	}
	return fmt.Sprintf("Channel(%d)", uint32(c))
}

// ParseChannel maps a channel name back to its value.
func ParseChannel(name string) (Channel, error) {
	for c := ChannelAlbedo; c <= ChannelSpecular; c++ {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown gbuffer channel %q", name)
}

// GBuffer stores one fragment per texel. Texels with Covered false are background.
type GBuffer struct {
	Width     int
	Height    int
	Fragments []core.Fragment
	Covered   []bool
}

func NewGBuffer(width, height int) (*GBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrGBufferSize, width, height)
	}
	return &GBuffer{
		Width:     width,
		Height:    height,
		Fragments: make([]core.Fragment, width*height),
		Covered:   make([]bool, width*height),
	}, nil
}

func (g *GBuffer) index(x, y int) int {
	return y*g.Width + x
}

// Set writes a covered fragment at (x, y).
func (g *GBuffer) Set(x, y int, f core.Fragment) {
	i := g.index(x, y)
	g.Fragments[i] = f
	g.Covered[i] = true
}

// At returns the fragment at (x, y) and whether it is covered.
func (g *GBuffer) At(x, y int) (core.Fragment, bool) {
	i := g.index(x, y)
	return g.Fragments[i], g.Covered[i]
}

// CoveredCount returns the number of covered texels.
func (g *GBuffer) CoveredCount() int {
	n := 0
	for _, c := range g.Covered {
		if c {
			n++
		}
	}
	return n
}

// Visualize copies one channel into a frame for debugging.
// Normals are remapped from [-1,1] to [0,1].
func (g *GBuffer) Visualize(ch Channel) *Frame {
	frame := NewFrame(g.Width, g.Height)
	for i, f := range g.Fragments {
		if !g.Covered[i] {
			continue
		}
		var v mgl32.Vec3
		switch ch {
		case ChannelAlbedo:
			v = f.BaseColor
		case ChannelNormal:
			v = f.Normal.Add(mgl32.Vec3{1, 1, 1}).Mul(0.5)
		case ChannelPosition:
			v = f.Position
		case ChannelShadow:
			v = mgl32.Vec3{f.Shadow, f.Shadow, f.Shadow}
		case ChannelSpecular:
			v = mgl32.Vec3{f.Roughness, f.Metallic, f.AmbientOcclusion}
		}
		frame.Pix[i] = v
	}
	return frame
}
