// Package overlay draws text such as frame statistics onto preview images.
package overlay

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

type TextItem struct {
	Text     string
	Position image.Point // top-left corner in pixels
	Color    color.Color
}

type TextRenderer struct {
	Face font.Face
}

// NewTextRenderer parses ttf (Go Regular when nil) at the given size in points.
func NewTextRenderer(ttf []byte, fontSize float64) (*TextRenderer, error) {
	if ttf == nil {
		ttf = goregular.TTF
	}

	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create face: %w", err)
	}

	return &TextRenderer{Face: face}, nil
}

func (tr *TextRenderer) LineHeight() int {
	return tr.Face.Metrics().Height.Ceil()
}

// MeasureText returns the pixel width and height of a possibly multi-line string.
func (tr *TextRenderer) MeasureText(text string) (int, int) {
	if tr == nil {
		return 0, 0
	}
	lines := strings.Split(text, "\n")
	maxW := fixed.Int26_6(0)
	for _, line := range lines {
		if w := font.MeasureString(tr.Face, line); w > maxW {
			maxW = w
		}
	}
	return maxW.Ceil(), tr.LineHeight() * len(lines)
}

// Draw renders items onto dst, backing each with a translucent panel so it
// stays readable over bright pixels.
func (tr *TextRenderer) Draw(dst draw.Image, items []TextItem) {
	ascent := tr.Face.Metrics().Ascent.Ceil()
	lineHeight := tr.LineHeight()

	for _, item := range items {
		w, h := tr.MeasureText(item.Text)
		panel := image.Rect(item.Position.X-2, item.Position.Y-2, item.Position.X+w+2, item.Position.Y+h+2)
		draw.Draw(dst, panel, image.NewUniform(color.NRGBA{0, 0, 0, 160}), image.Point{}, draw.Over)

		d := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(item.Color),
			Face: tr.Face,
		}
		for i, line := range strings.Split(item.Text, "\n") {
			d.Dot = fixed.P(item.Position.X, item.Position.Y+ascent+i*lineHeight)
			d.DrawString(line)
		}
	}
}
