package lumen

import (
	"encoding/json"
	"testing"

	"github.com/gekko3d/lumen/lumenrt/rt/core"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLightComponent_Light(t *testing.T) {
	tests := []struct {
		name string
		in   LightComponent
		want core.Light
	}{
		{
			name: "Directional defaults specular to color",
			in:   LightComponent{Type: LightTypeDirectional, Direction: mgl32.Vec3{0, -1, 0}, Color: mgl32.Vec3{1, 0.5, 0}, Intensity: 2},
			want: core.Directional{Direction: mgl32.Vec3{0, -1, 0}, Color: mgl32.Vec3{1, 0.5, 0}, SpecularColor: mgl32.Vec3{1, 0.5, 0}, Intensity: 2},
		},
		{
			name: "Point defaults attenuation",
			in:   LightComponent{Type: LightTypePoint, Position: mgl32.Vec3{1, 2, 3}, Color: mgl32.Vec3{1, 1, 1}},
			want: core.Point{Position: mgl32.Vec3{1, 2, 3}, Color: mgl32.Vec3{1, 1, 1}, SpecularColor: mgl32.Vec3{1, 1, 1}, Attenuation: mgl32.Vec3{1, 0, 0}},
		},
		{
			name: "Spot converts degrees",
			in: LightComponent{Type: LightTypeSpot, Position: mgl32.Vec3{0, 4, 0}, Direction: mgl32.Vec3{0, -1, 0},
				Color: mgl32.Vec3{1, 1, 1}, SpecularColor: mgl32.Vec3{0.5, 0.5, 0.5}, Attenuation: mgl32.Vec3{1, 0.2, 0}, ConeAngle: 90, ConeAttenuation: 4},
			want: core.Spot{Position: mgl32.Vec3{0, 4, 0}, ConeDirection: mgl32.Vec3{0, -1, 0}, Color: mgl32.Vec3{1, 1, 1},
				SpecularColor: mgl32.Vec3{0.5, 0.5, 0.5}, Attenuation: mgl32.Vec3{1, 0.2, 0}, ConeAngle: mgl32.DegToRad(90), ConeAttenuation: 4},
		},
		{
			name: "Ambient",
			in:   LightComponent{Type: LightTypeAmbient, Color: mgl32.Vec3{0.7, 0.7, 0.7}, Intensity: 0.5},
			want: core.Ambient{Color: mgl32.Vec3{0.7, 0.7, 0.7}, Intensity: 0.5},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.in.Light()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLightComponent_Invalid(t *testing.T) {
	_, err := LightComponent{Type: LightTypeDirectional}.Light()
	assert.Error(t, err)

	_, err = LightComponent{Type: LightTypeSpot, Position: mgl32.Vec3{0, 1, 0}}.Light()
	assert.Error(t, err)

	_, err = LightComponent{Type: LightType(7)}.Light()
	assert.ErrorIs(t, err, core.ErrUnknownLightKind)
}

func TestLightType_Text(t *testing.T) {
	var c LightComponent
	require.NoError(t, json.Unmarshal([]byte(`{"type":"sun","direction":[0,-1,0],"color":[1,1,1],"intensity":1}`), &c))
	assert.Equal(t, LightTypeDirectional, c.Type)

	data, err := json.Marshal(LightComponent{Type: LightTypeSpot})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"spot"`)

	assert.Error(t, json.Unmarshal([]byte(`{"type":"area"}`), &c))
}
