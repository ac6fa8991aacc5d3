package lighting

import (
	"github.com/gekko3d/lumen/lumenrt/rt/brdf"
	"github.com/gekko3d/lumen/lumenrt/rt/core"
	"github.com/go-gl/mathgl/mgl32"
)

// Radiance is the shaded result of one fragment, before tone mapping.
type Radiance struct {
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
}

func (r Radiance) Total() mgl32.Vec3 {
	return r.Diffuse.Add(r.Specular)
}

// Shader combines the light accumulator with a specular evaluator.
type Shader struct {
	Specular brdf.Evaluator
}

// Shade returns diffuse plus per-light specular radiance for f.
// Lights behind the surface contribute no specular.
// Direct terms are scaled by 1-f.Shadow; ambient light is not.
func (s Shader) Shade(f core.Fragment, u core.FragmentUniforms, lights []core.Light) Radiance {
	direct, ambient := accumulate(f.Normal, f.Position, u, lights, f.BaseColor)

	N := f.Normal.Normalize()
	V := u.ViewDirection(f.Position)

	var spec mgl32.Vec3
	n := lightCount(u, lights)
	for i := 0; i < n; i++ {
		L, color, intensity, scale, ok := specularInputs(lights[i], f.Position)
		if !ok || N.Dot(L) <= 0 {
			continue
		}
		term := s.Specular.Specular(core.Lighting{
			LightDirection:   L,
			ViewDirection:    V,
			BaseColor:        f.BaseColor,
			Normal:           N,
			Metallic:         f.Metallic,
			Roughness:        f.Roughness,
			AmbientOcclusion: f.AmbientOcclusion,
			LightColor:       color,
			Intensity:        intensity,
		})
		spec = spec.Add(term.Mul(scale))
	}

	lit := 1 - core.Saturate(f.Shadow)
	return Radiance{
		Diffuse:  direct.Mul(lit).Add(ambient),
		Specular: spec.Mul(lit),
	}
}

// specularInputs resolves the light direction, color and distance/cone
// scale used for a light's specular term. Ambient lights have none.
func specularInputs(light core.Light, position mgl32.Vec3) (L, color mgl32.Vec3, intensity, scale float32, ok bool) {
	switch l := light.(type) {
	case core.Directional:
		return l.Direction.Mul(-1).Normalize(), l.SpecularColor, l.Intensity, 1, true
	case core.Point:
		d := core.Distance(l.Position, position)
		L = l.Position.Sub(position).Normalize()
		return L, l.SpecularColor, l.Intensity, Attenuation(l.Attenuation, d), true
	case core.Spot:
		d := core.Distance(l.Position, position)
		L = l.Position.Sub(position).Normalize()
		cone, inside := ConeFactor(l, L)
		if !inside {
			return L, l.SpecularColor, 0, 0, false
		}
		return L, l.SpecularColor, l.Intensity, Attenuation(l.Attenuation, d) * cone, true
	}
	return mgl32.Vec3{}, mgl32.Vec3{}, 0, 0, false
}
