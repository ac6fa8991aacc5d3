package lumen

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gekko3d/lumen/lumenrt/rt/brdf"
	"github.com/gekko3d/lumen/lumenrt/rt/core"
	"github.com/gekko3d/lumen/lumenrt/rt/raster"
	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

type CameraCfg struct {
	Position mgl32.Vec3 `json:"position" yaml:"position"`
	YawDeg   float32    `json:"yawDeg" yaml:"yawDeg"`
	PitchDeg float32    `json:"pitchDeg" yaml:"pitchDeg"`
	FovDeg   float32    `json:"fovDeg" yaml:"fovDeg"`
}

type MaterialCfg struct {
	BaseColor        mgl32.Vec3 `json:"baseColor" yaml:"baseColor"`
	Roughness        float32    `json:"roughness" yaml:"roughness"`
	Metallic         float32    `json:"metallic" yaml:"metallic"`
	AmbientOcclusion float32    `json:"ambientOcclusion" yaml:"ambientOcclusion"`
}

type SphereCfg struct {
	Center   mgl32.Vec3  `json:"center" yaml:"center"`
	Radius   float32     `json:"radius" yaml:"radius"`
	Material MaterialCfg `json:"material" yaml:"material"`
}

type FloorCfg struct {
	Y        float32     `json:"y" yaml:"y"`
	Material MaterialCfg `json:"material" yaml:"material"`
}

// Config describes a preview frame: output, shading policy, camera, fixture and lights.
type Config struct {
	Width      int        `json:"width" yaml:"width"`
	Height     int        `json:"height" yaml:"height"`
	Tiling     uint32     `json:"tiling,omitempty" yaml:"tiling,omitempty"`
	Gamma      float32    `json:"gamma,omitempty" yaml:"gamma,omitempty"`
	Exposure   float32    `json:"exposure,omitempty" yaml:"exposure,omitempty"`
	ToneMap    string     `json:"toneMap,omitempty" yaml:"toneMap,omitempty"` // clamp | reinhard
	Fresnel    string     `json:"fresnel,omitempty" yaml:"fresnel,omitempty"` // collapsed | schlick
	F0         mgl32.Vec3 `json:"f0" yaml:"f0"`                               // schlick only; zero derives from metallic
	Workers    int        `json:"workers,omitempty" yaml:"workers,omitempty"`
	BandHeight int        `json:"bandHeight,omitempty" yaml:"bandHeight,omitempty"`
	MaxLights  int        `json:"maxLights" yaml:"maxLights"`
	Overlay    bool       `json:"overlay,omitempty" yaml:"overlay,omitempty"`
	Background mgl32.Vec3 `json:"background" yaml:"background"`

	Camera      CameraCfg        `json:"camera" yaml:"camera"`
	Sphere      SphereCfg        `json:"sphere" yaml:"sphere"`
	Floor       FloorCfg         `json:"floor" yaml:"floor"`
	ShadowLight int              `json:"shadowLight" yaml:"shadowLight"` // index into Lights, -1 disables
	Lights      []LightComponent `json:"lights" yaml:"lights"`
}

// DefaultConfig is a sun plus ambient light over a sphere resting on a floor.
func DefaultConfig() Config {
	return Config{
		Width:      640,
		Height:     360,
		Tiling:     1,
		Gamma:      2.2,
		Exposure:   1,
		ToneMap:    "clamp",
		Fresnel:    "collapsed",
		MaxLights:  16,
		Background: mgl32.Vec3{0.05, 0.06, 0.08},
		Camera: CameraCfg{
			Position: mgl32.Vec3{0, 1.5, 6},
			FovDeg:   60,
		},
		Sphere: SphereCfg{
			Center: mgl32.Vec3{0, 1, 0},
			Radius: 1,
			Material: MaterialCfg{
				BaseColor:        mgl32.Vec3{0.8, 0.3, 0.2},
				Roughness:        0.35,
				Metallic:         0.2,
				AmbientOcclusion: 1,
			},
		},
		Floor: FloorCfg{
			Y: 0,
			Material: MaterialCfg{
				BaseColor:        mgl32.Vec3{0.6, 0.6, 0.6},
				Roughness:        0.9,
				AmbientOcclusion: 1,
			},
		},
		ShadowLight: 0,
		Lights: []LightComponent{
			{
				Type:      LightTypeDirectional,
				Direction: mgl32.Vec3{-1, -2, 2},
				Color:     mgl32.Vec3{1, 1, 1},
				Intensity: 0.7,
			},
			{
				Type:      LightTypeAmbient,
				Color:     mgl32.Vec3{0.7, 0.7, 0.7},
				Intensity: 0.5,
			},
		},
	}
}

// LoadConfig reads a JSON or YAML config on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	// Slices decode into existing elements, so start the light list empty.
	cfg := DefaultConfig()
	defaults := cfg.Lights
	cfg.Lights = nil
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return Config{}, fmt.Errorf("unsupported config extension %q", filepath.Ext(path))
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Lights == nil {
		cfg.Lights = defaults
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid output size %dx%d", c.Width, c.Height)
	}
	if c.MaxLights <= 0 {
		return fmt.Errorf("maxLights must be positive, got %d", c.MaxLights)
	}
	if len(c.Lights) > c.MaxLights {
		return fmt.Errorf("%w: %d lights, capacity %d", ErrLightSetFull, len(c.Lights), c.MaxLights)
	}
	if c.ShadowLight < -1 || (len(c.Lights) > 0 && c.ShadowLight >= len(c.Lights)) {
		return fmt.Errorf("shadowLight %d out of range", c.ShadowLight)
	}
	if _, err := raster.ParseToneMap(c.ToneMap); err != nil {
		return err
	}
	if _, err := c.Evaluator(); err != nil {
		return err
	}
	for i, l := range c.Lights {
		if _, err := l.Light(); err != nil {
			return fmt.Errorf("light %d: %w", i, err)
		}
	}
	return nil
}

// Evaluator builds the specular evaluator selected by Fresnel and F0.
func (c Config) Evaluator() (brdf.Evaluator, error) {
	switch c.Fresnel {
	case "", "collapsed":
		return brdf.Evaluator{}, nil
	case "schlick":
		if c.F0 == (mgl32.Vec3{}) {
			return brdf.NewSchlickEvaluator(), nil
		}
		return brdf.Evaluator{Policy: brdf.FresnelSchlick, F0: c.F0}, nil
	}
	return brdf.Evaluator{}, fmt.Errorf("unknown fresnel policy %q", c.Fresnel)
}

func (c Config) ToneMapOptions() raster.ToneMapOptions {
	op, _ := raster.ParseToneMap(c.ToneMap)
	return raster.ToneMapOptions{Operator: op, Exposure: c.Exposure, Gamma: c.Gamma}
}

func (c Config) CameraState() *core.CameraState {
	cam := core.NewCameraState()
	cam.Position = c.Camera.Position
	cam.Yaw = mgl32.DegToRad(c.Camera.YawDeg)
	cam.Pitch = mgl32.DegToRad(c.Camera.PitchDeg)
	if c.Camera.FovDeg > 0 {
		cam.FovY = mgl32.DegToRad(c.Camera.FovDeg)
	}
	return cam
}

func (m MaterialCfg) Material() core.Material {
	mat := core.NewMaterial(m.BaseColor, m.Roughness, m.Metallic)
	mat.AmbientOcclusion = m.AmbientOcclusion
	return mat
}

// Fixture builds the preview sphere and floor. The shadow direction comes
// from the light at ShadowLight when it is directional or positional.
func (c Config) Fixture() raster.Fixture {
	fx := raster.Fixture{
		Sphere: raster.Sphere{
			Center:   c.Sphere.Center,
			Radius:   c.Sphere.Radius,
			Material: c.Sphere.Material.Material(),
		},
		FloorY:        c.Floor.Y,
		FloorMaterial: c.Floor.Material.Material(),
		ShadowSpread:  0.05 * c.Sphere.Radius,
	}
	if c.ShadowLight < 0 || c.ShadowLight >= len(c.Lights) {
		return fx
	}
	switch l := c.Lights[c.ShadowLight]; l.Type {
	case LightTypeDirectional:
		fx.ToLight = l.Direction.Mul(-1)
	case LightTypePoint, LightTypeSpot:
		fx.ToLight = l.Position.Sub(mgl32.Vec3{c.Sphere.Center.X(), c.Floor.Y, c.Sphere.Center.Z()})
	}
	return fx
}
