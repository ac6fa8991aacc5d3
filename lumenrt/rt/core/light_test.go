package core

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLightRecord_DecodeVariants(t *testing.T) {
	tests := []struct {
		name   string
		record LightRecord
		want   Light
	}{
		{
			name:   "Sun flips toward-light into travel direction",
			record: LightRecord{Type: LightKindSun, Position: mgl32.Vec3{1, 2, -2}, Color: mgl32.Vec3{1, 1, 1}, Intensity: 0.7},
			want:   Directional{Direction: mgl32.Vec3{-1, -2, 2}, Color: mgl32.Vec3{1, 1, 1}, Intensity: 0.7},
		},
		{
			name:   "Point",
			record: LightRecord{Type: LightKindPoint, Position: mgl32.Vec3{0, 3, 0}, Color: mgl32.Vec3{1, 0, 0}, Attenuation: mgl32.Vec3{1, 0.1, 0.01}},
			want:   Point{Position: mgl32.Vec3{0, 3, 0}, Color: mgl32.Vec3{1, 0, 0}, Attenuation: mgl32.Vec3{1, 0.1, 0.01}},
		},
		{
			name: "Spot",
			record: LightRecord{Type: LightKindSpot, Position: mgl32.Vec3{0, 3, 0}, ConeAngle: 0.5,
				ConeDirection: mgl32.Vec3{0, -1, 0}, ConeAttenuation: 8, Attenuation: mgl32.Vec3{1, 0, 0}},
			want: Spot{Position: mgl32.Vec3{0, 3, 0}, ConeAngle: 0.5, ConeDirection: mgl32.Vec3{0, -1, 0},
				ConeAttenuation: 8, Attenuation: mgl32.Vec3{1, 0, 0}},
		},
		{
			name:   "Ambient keeps only color and intensity",
			record: LightRecord{Type: LightKindAmbient, Position: mgl32.Vec3{9, 9, 9}, Color: mgl32.Vec3{0.7, 0.7, 0.7}, Intensity: 0.5},
			want:   Ambient{Color: mgl32.Vec3{0.7, 0.7, 0.7}, Intensity: 0.5},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.record.Decode()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.record.Type, got.Kind())
		})
	}
}

func TestLightRecord_DecodeUnusedAndUnknown(t *testing.T) {
	nan := float32(math.NaN())
	l, err := LightRecord{Type: LightKindUnused, Color: mgl32.Vec3{nan, nan, nan}}.Decode()
	require.NoError(t, err)
	assert.Nil(t, l)

	_, err = LightRecord{Type: LightKind(42)}.Decode()
	assert.ErrorIs(t, err, ErrUnknownLightKind)
}

func TestEncodeLight_RoundTripsThroughDecode(t *testing.T) {
	lights := []Light{
		Directional{Direction: mgl32.Vec3{0, -1, 0}, Color: mgl32.Vec3{1, 1, 1}, Intensity: 1},
		Spot{Position: mgl32.Vec3{1, 2, 3}, ConeAngle: 0.3, ConeDirection: mgl32.Vec3{0, -1, 0}, ConeAttenuation: 2},
	}
	for _, l := range lights {
		got, err := EncodeLight(l).Decode()
		require.NoError(t, err)
		assert.Equal(t, l, got)
	}
}

func TestDecodeLights_SkipsUnusedAndHonorsCount(t *testing.T) {
	records := []LightRecord{
		{Type: LightKindAmbient, Color: mgl32.Vec3{1, 1, 1}, Intensity: 1},
		{Type: LightKindUnused},
		{Type: LightKindPoint, Attenuation: mgl32.Vec3{1, 0, 0}},
		{Type: LightKindSun, Position: mgl32.Vec3{0, 1, 0}},
	}

	lights, err := DecodeLights(records, 3)
	require.NoError(t, err)
	require.Len(t, lights, 2)
	assert.Equal(t, LightKindAmbient, lights[0].Kind())
	assert.Equal(t, LightKindPoint, lights[1].Kind())
}

func TestDecodeLights_TruncatesOversizedCount(t *testing.T) {
	records := []LightRecord{
		{Type: LightKindSun, Position: mgl32.Vec3{0, 1, 0}},
	}

	lights, err := DecodeLights(records, 8)
	assert.ErrorIs(t, err, ErrLightCountExceeded)
	assert.Len(t, lights, 1)
}

func TestLightKind_String(t *testing.T) {
	assert.Equal(t, "spot", LightKindSpot.String())
	assert.Equal(t, "LightKind(9)", LightKind(9).String())
}
