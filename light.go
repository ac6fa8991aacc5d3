package lumen

import (
	"fmt"
	"strings"

	"github.com/gekko3d/lumen/lumenrt/rt/core"
	"github.com/go-gl/mathgl/mgl32"
)

type LightType uint32

const (
	LightTypePoint       LightType = 0
	LightTypeDirectional LightType = 1
	LightTypeSpot        LightType = 2
	LightTypeAmbient     LightType = 3
)

var lightTypeNames = map[LightType]string{
	LightTypePoint:       "point",
	LightTypeDirectional: "directional",
	LightTypeSpot:        "spot",
	LightTypeAmbient:     "ambient",
}

func (t LightType) String() string {
	if name, ok := lightTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("LightType(%d)", uint32(t))
}

func (t LightType) MarshalText() ([]byte, error) {
	if _, ok := lightTypeNames[t]; !ok {
		return nil, fmt.Errorf("unknown light type %d", uint32(t))
	}
	return []byte(t.String()), nil
}

func (t *LightType) UnmarshalText(text []byte) error {
	name := strings.ToLower(string(text))
	if name == "sun" {
		name = "directional"
	}
	for k, v := range lightTypeNames {
		if v == name {
			*t = k
			return nil
		}
	}
	return fmt.Errorf("unknown light type %q", string(text))
}

// LightComponent is the authoring-side description of a light, as found in
// scene configuration files. Angles are in degrees.
type LightComponent struct {
	Type LightType `json:"type" yaml:"type"`
	// Position is used by point and spot lights.
	Position mgl32.Vec3 `json:"position" yaml:"position"`
	// Direction is the travel direction of a directional light, or where a spot points.
	Direction mgl32.Vec3 `json:"direction" yaml:"direction"`
	Color     mgl32.Vec3 `json:"color" yaml:"color"`
	// SpecularColor defaults to Color.
	SpecularColor mgl32.Vec3 `json:"specularColor" yaml:"specularColor"`
	Intensity     float32    `json:"intensity" yaml:"intensity"`
	// Attenuation defaults to (1,0,0).
	Attenuation mgl32.Vec3 `json:"attenuation" yaml:"attenuation"`
	// ConeAngle is the spot half angle.
	ConeAngle       float32 `json:"coneAngle,omitempty" yaml:"coneAngle,omitempty"`
	ConeAttenuation float32 `json:"coneAttenuation,omitempty" yaml:"coneAttenuation,omitempty"`
}

// Light converts the component into the shading core's light variant.
func (c LightComponent) Light() (core.Light, error) {
	specular := c.SpecularColor
	if specular == (mgl32.Vec3{}) {
		specular = c.Color
	}
	attenuation := c.Attenuation
	if attenuation == (mgl32.Vec3{}) {
		attenuation = mgl32.Vec3{1, 0, 0}
	}

	switch c.Type {
	case LightTypeDirectional:
		if c.Direction.Len() == 0 {
			return nil, fmt.Errorf("directional light needs a direction")
		}
		return core.Directional{
			Direction:     c.Direction,
			Color:         c.Color,
			SpecularColor: specular,
			Intensity:     c.Intensity,
		}, nil
	case LightTypePoint:
		return core.Point{
			Position:      c.Position,
			Color:         c.Color,
			SpecularColor: specular,
			Intensity:     c.Intensity,
			Attenuation:   attenuation,
		}, nil
	case LightTypeSpot:
		if c.Direction.Len() == 0 {
			return nil, fmt.Errorf("spot light needs a direction")
		}
		return core.Spot{
			Position:        c.Position,
			Color:           c.Color,
			SpecularColor:   specular,
			Intensity:       c.Intensity,
			Attenuation:     attenuation,
			ConeAngle:       mgl32.DegToRad(c.ConeAngle),
			ConeDirection:   c.Direction,
			ConeAttenuation: c.ConeAttenuation,
		}, nil
	case LightTypeAmbient:
		return core.Ambient{Color: c.Color, Intensity: c.Intensity}, nil
	}
	return nil, fmt.Errorf("%w: %s", core.ErrUnknownLightKind, c.Type)
}
