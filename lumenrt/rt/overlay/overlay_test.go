package overlay

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTextRenderer_BadFont(t *testing.T) {
	_, err := NewTextRenderer([]byte("not a font"), 12)
	assert.Error(t, err)
}

func TestMeasureText_MultiLine(t *testing.T) {
	tr, err := NewTextRenderer(nil, 12)
	require.NoError(t, err)

	w1, h1 := tr.MeasureText("Shade")
	w2, h2 := tr.MeasureText("Shade\nShade shade")
	assert.Greater(t, w1, 0)
	assert.Greater(t, w2, w1)
	assert.Equal(t, 2*h1, h2)

	var nilRenderer *TextRenderer
	w, h := nilRenderer.MeasureText("x")
	assert.Zero(t, w)
	assert.Zero(t, h)
}

func TestDraw_WritesPixels(t *testing.T) {
	tr, err := NewTextRenderer(nil, 14)
	require.NoError(t, err)

	img := image.NewNRGBA(image.Rect(0, 0, 120, 40))
	tr.Draw(img, []TextItem{{Text: "Lights: 3", Position: image.Pt(4, 4), Color: color.White}})

	bright := 0
	for y := 0; y < 40; y++ {
		for x := 0; x < 120; x++ {
			if img.NRGBAAt(x, y).R > 128 {
				bright++
			}
		}
	}
	assert.Greater(t, bright, 0)
}
