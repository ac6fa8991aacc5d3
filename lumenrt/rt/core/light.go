package core

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrLightCountExceeded = errors.New("light count exceeds light array length")
	ErrUnknownLightKind   = errors.New("unknown light kind")
)

// LightKind is the numeric tag stored in a LightRecord.
type LightKind uint32

const (
	LightKindUnused  LightKind = 0
	LightKindSun     LightKind = 1
	LightKindSpot    LightKind = 2
	LightKindPoint   LightKind = 3
	LightKindAmbient LightKind = 4
)

func (k LightKind) String() string {
	switch k {
	case LightKindUnused:
		return "unused"
	case LightKindSun:
		return "sun"
	case LightKindSpot:
		return "spot"
	case LightKindPoint:
		return "point"
	case LightKindAmbient:
		return "ambient"
	}
	return fmt.Sprintf("LightKind(%d)", uint32(k))
}

// Light is one of Directional, Point, Spot or Ambient.
type Light interface {
	Kind() LightKind
	isLight()
}

// Directional is a sun-style light with no distance falloff.
// Direction is the direction the light travels, from the light into the scene.
type Directional struct {
	Direction     mgl32.Vec3
	Color         mgl32.Vec3
	SpecularColor mgl32.Vec3
	Intensity     float32
}

// Point light. Attenuation holds the constant, linear and quadratic coefficients.
type Point struct {
	Position      mgl32.Vec3
	Color         mgl32.Vec3
	SpecularColor mgl32.Vec3
	Intensity     float32
	Attenuation   mgl32.Vec3
}

// Spot is a point light restricted to a hard-edged cone.
// ConeAngle is the half angle in radians, ConeDirection is where the spot points.
type Spot struct {
	Position        mgl32.Vec3
	Color           mgl32.Vec3
	SpecularColor   mgl32.Vec3
	Intensity       float32
	Attenuation     mgl32.Vec3
	ConeAngle       float32
	ConeDirection   mgl32.Vec3
	ConeAttenuation float32
}

type Ambient struct {
	Color     mgl32.Vec3
	Intensity float32
}

func (Directional) Kind() LightKind { return LightKindSun }
func (Point) Kind() LightKind       { return LightKindPoint }
func (Spot) Kind() LightKind        { return LightKindSpot }
func (Ambient) Kind() LightKind     { return LightKindAmbient }

func (Directional) isLight() {}
func (Point) isLight()       {}
func (Spot) isLight()        {}
func (Ambient) isLight()     {}

// LightRecord is the flat per-light layout shared with GPU light buffers.
// For sun lights Position holds the direction toward the light.
type LightRecord struct {
	Position        mgl32.Vec3
	Color           mgl32.Vec3
	SpecularColor   mgl32.Vec3
	Intensity       float32
	Attenuation     mgl32.Vec3
	Type            LightKind
	ConeAngle       float32
	ConeDirection   mgl32.Vec3
	ConeAttenuation float32
}

// Decode converts a record into its Light variant. Unused records decode to nil.
func (r LightRecord) Decode() (Light, error) {
	switch r.Type {
	case LightKindUnused:
		return nil, nil
	case LightKindSun:
		return Directional{
			Direction:     r.Position.Mul(-1),
			Color:         r.Color,
			SpecularColor: r.SpecularColor,
			Intensity:     r.Intensity,
		}, nil
	case LightKindPoint:
		return Point{
			Position:      r.Position,
			Color:         r.Color,
			SpecularColor: r.SpecularColor,
			Intensity:     r.Intensity,
			Attenuation:   r.Attenuation,
		}, nil
	case LightKindSpot:
		return Spot{
			Position:        r.Position,
			Color:           r.Color,
			SpecularColor:   r.SpecularColor,
			Intensity:       r.Intensity,
			Attenuation:     r.Attenuation,
			ConeAngle:       r.ConeAngle,
			ConeDirection:   r.ConeDirection,
			ConeAttenuation: r.ConeAttenuation,
		}, nil
	case LightKindAmbient:
		return Ambient{Color: r.Color, Intensity: r.Intensity}, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownLightKind, uint32(r.Type))
}

// EncodeLight flattens a Light back into a record.
func EncodeLight(l Light) LightRecord {
	switch v := l.(type) {
	case Directional:
		return LightRecord{
			Position:      v.Direction.Mul(-1),
			Color:         v.Color,
			SpecularColor: v.SpecularColor,
			Intensity:     v.Intensity,
			Attenuation:   mgl32.Vec3{1, 0, 0},
			Type:          LightKindSun,
		}
	case Point:
		return LightRecord{
			Position:      v.Position,
			Color:         v.Color,
			SpecularColor: v.SpecularColor,
			Intensity:     v.Intensity,
			Attenuation:   v.Attenuation,
			Type:          LightKindPoint,
		}
	case Spot:
		return LightRecord{
			Position:        v.Position,
			Color:           v.Color,
			SpecularColor:   v.SpecularColor,
			Intensity:       v.Intensity,
			Attenuation:     v.Attenuation,
			Type:            LightKindSpot,
			ConeAngle:       v.ConeAngle,
			ConeDirection:   v.ConeDirection,
			ConeAttenuation: v.ConeAttenuation,
		}
	case Ambient:
		return LightRecord{
			Color:       v.Color,
			Intensity:   v.Intensity,
			Attenuation: mgl32.Vec3{1, 0, 0},
			Type:        LightKindAmbient,
		}
	}
	return LightRecord{}
}

// DecodeLights decodes the first count records, skipping unused entries.
// A count larger than the array is truncated to len(records) and
// ErrLightCountExceeded is returned alongside the usable lights.
func DecodeLights(records []LightRecord, count uint32) ([]Light, error) {
	var countErr error
	n := int(count)
	if n > len(records) {
		countErr = fmt.Errorf("%w: count %d, array %d", ErrLightCountExceeded, count, len(records))
		n = len(records)
	}

	lights := make([]Light, 0, n)
	for i := 0; i < n; i++ {
		l, err := records[i].Decode()
		if err != nil {
			return nil, fmt.Errorf("light %d: %w", i, err)
		}
		if l == nil {
			continue
		}
		lights = append(lights, l)
	}
	return lights, countErr
}
