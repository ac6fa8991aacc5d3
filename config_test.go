package lumen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gekko3d/lumen/lumenrt/rt/brdf"
	"github.com/gekko3d/lumen/lumenrt/rt/raster"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Len(t, cfg.Lights, 2)
	assert.Equal(t, LightTypeDirectional, cfg.Lights[0].Type)
	assert.Equal(t, float32(0.7), cfg.Lights[0].Intensity)
}

func TestLoadConfig_JSON(t *testing.T) {
	path := writeFile(t, "scene.json", `{
		"width": 64,
		"height": 32,
		"fresnel": "schlick",
		"toneMap": "reinhard",
		"lights": [
			{"type": "point", "position": [0, 3, 0], "color": [1, 1, 1], "intensity": 1, "attenuation": [1, 0, 0.1]}
		]
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Width)
	assert.Equal(t, 16, cfg.MaxLights, "unset fields keep defaults")
	require.Len(t, cfg.Lights, 1)
	assert.Equal(t, LightTypePoint, cfg.Lights[0].Type)
	assert.Equal(t, mgl32.Vec3{}, cfg.Lights[0].Direction, "must not inherit default light fields")

	eval, err := cfg.Evaluator()
	require.NoError(t, err)
	assert.Equal(t, brdf.NewSchlickEvaluator(), eval)
	assert.Equal(t, raster.ToneMapReinhard, cfg.ToneMapOptions().Operator)
}

func TestLoadConfig_YAML(t *testing.T) {
	path := writeFile(t, "scene.yaml", `
width: 48
height: 48
fresnel: schlick
f0: [0.04, 0.04, 0.04]
shadowLight: -1
lights:
  - type: spot
    position: [0, 4, 0]
    direction: [0, -1, 0]
    color: [1, 1, 1]
    coneAngle: 25
    coneAttenuation: 2
  - type: ambient
    color: [0.2, 0.2, 0.2]
    intensity: 1
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Len(t, cfg.Lights, 2)
	assert.Equal(t, LightTypeSpot, cfg.Lights[0].Type)
	assert.Equal(t, float32(25), cfg.Lights[0].ConeAngle)
	assert.Equal(t, -1, cfg.ShadowLight)

	eval, err := cfg.Evaluator()
	require.NoError(t, err)
	assert.Equal(t, brdf.FresnelSchlick, eval.Policy)
	assert.False(t, eval.DeriveF0)
	assert.Equal(t, mgl32.Vec3{}, cfg.Fixture().ToLight)
}

func TestLoadConfig_KeepsDefaultLightsWhenOmitted(t *testing.T) {
	cfg, err := LoadConfig(writeFile(t, "scene.json", `{"width": 10, "height": 10}`))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Lights, cfg.Lights)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = LoadConfig(writeFile(t, "scene.toml", `width = 1`))
	assert.Error(t, err)

	_, err = LoadConfig(writeFile(t, "scene.json", `{"width": -1}`))
	assert.Error(t, err)

	_, err = LoadConfig(writeFile(t, "scene.json", `{"fresnel": "cook"}`))
	assert.Error(t, err)

	_, err = LoadConfig(writeFile(t, "scene.json", `{"maxLights": 1}`))
	assert.ErrorIs(t, err, ErrLightSetFull)
}

func TestConfig_FixtureShadowFromSun(t *testing.T) {
	cfg := DefaultConfig()
	fx := cfg.Fixture()
	assert.Equal(t, mgl32.Vec3{1, 2, -2}, fx.ToLight)
	assert.Equal(t, cfg.Sphere.Radius, fx.Sphere.Radius)
}
