// Package brdf evaluates the Cook-Torrance microfacet specular term.
package brdf

import (
	"math"

	"github.com/gekko3d/lumen/lumenrt/rt/core"
	"github.com/go-gl/mathgl/mgl32"
)

// FresnelPolicy selects how the Fresnel factor F is computed.
type FresnelPolicy uint8

const (
	// FresnelCollapsed blends 1 toward 1, so F is always 1.
	FresnelCollapsed FresnelPolicy = iota
	// FresnelSchlick blends the evaluator's F0 toward 1.
	FresnelSchlick
)

func (p FresnelPolicy) String() string {
	switch p {
	case FresnelCollapsed:
		return "collapsed"
	case FresnelSchlick:
		return "schlick"
	}
	return "unknown"
}

// DielectricF0 is the base reflectance used for non-metals.
var DielectricF0 = mgl32.Vec3{0.04, 0.04, 0.04}

// minAlpha floors specularRoughness² so a mirror-aligned smooth sample stays finite.
const minAlpha = 1e-4

// Evaluator computes the specular contribution of one light.
// The zero value uses FresnelCollapsed.
type Evaluator struct {
	Policy FresnelPolicy
	// F0 is the normal-incidence reflectance for FresnelSchlick.
	// When DeriveF0 is set it is derived per sample instead.
	F0       mgl32.Vec3
	DeriveF0 bool
}

// NewSchlickEvaluator returns an evaluator that derives F0 from base color and metallic.
func NewSchlickEvaluator() Evaluator {
	return Evaluator{Policy: FresnelSchlick, F0: DielectricF0, DeriveF0: true}
}

// MetallicF0 blends the dielectric reflectance toward the base color.
func MetallicF0(baseColor mgl32.Vec3, metallic float32) mgl32.Vec3 {
	return core.Mix(DielectricF0, baseColor, core.Saturate(metallic))
}

// SpecularRoughness remaps roughness so metals get the roughest highlight.
func SpecularRoughness(roughness, metallic float32) float32 {
	return roughness*(1-metallic) + metallic
}

// Distribution is the GGX normal distribution term for a remapped roughness.
func Distribution(specularRoughness, NoH float32) float32 {
	if specularRoughness >= 1.0 {
		return 1.0 / core.Pi
	}
	a := max(specularRoughness*specularRoughness, minAlpha)
	d := (NoH*a-NoH)*NoH + 1
	return a / (core.Pi * d * d)
}

// Geometry is the product of the two Smith shadowing terms.
func Geometry(specularRoughness, NoL, NoV float32) float32 {
	alphaG := (specularRoughness*0.5 + 0.5) * (specularRoughness*0.5 + 0.5)
	a := alphaG * alphaG
	return smithG1(a, NoL*NoL) * smithG1(a, NoV*NoV)
}

func smithG1(a, b float32) float32 {
	return 1.0 / (b + float32(math.Sqrt(float64(a+b-a*b))))
}

// FresnelWeight is the Schlick blend factor (1-HoL)^5.
func FresnelWeight(HoL float32) float32 {
	x := core.Saturate(1 - HoL)
	x2 := x * x
	return x2 * x2 * x
}

// Fresnel returns F for the given blend weight.
func (e Evaluator) Fresnel(baseColor mgl32.Vec3, metallic, weight float32) mgl32.Vec3 {
	one := mgl32.Vec3{1, 1, 1}
	switch e.Policy {
	case FresnelSchlick:
		f0 := e.F0
		if e.DeriveF0 {
			f0 = MetallicF0(baseColor, metallic)
		}
		return core.Mix(f0, one, weight)
	default:
		return core.Mix(one, one, weight)
	}
}

// Specular evaluates D*G*F*specColor*AO*intensity for one light.
// Roughness, metallic and ambient occlusion are clamped to [0,1].
// The light, view and normal directions must be non-zero and L must not equal -V.
func (e Evaluator) Specular(l core.Lighting) mgl32.Vec3 {
	roughness := core.Saturate(l.Roughness)
	metallic := core.Saturate(l.Metallic)
	ao := core.Saturate(l.AmbientOcclusion)

	H := l.LightDirection.Add(l.ViewDirection).Normalize()
	NoL := core.Saturate(l.Normal.Dot(l.LightDirection))
	NoH := core.Saturate(l.Normal.Dot(H))
	NoV := core.Saturate(l.Normal.Dot(l.ViewDirection))
	HoL := core.Saturate(l.LightDirection.Dot(H))

	sr := SpecularRoughness(roughness, metallic)
	D := Distribution(sr, NoH)
	G := Geometry(sr, NoL, NoV)
	F := e.Fresnel(l.BaseColor, metallic, FresnelWeight(HoL))

	specColor := core.Mix(l.LightColor, l.BaseColor, metallic)
	return core.MulVec(F, specColor).Mul(D * G * ao * l.Intensity)
}

// Specular evaluates with the zero-value Evaluator.
func Specular(l core.Lighting) mgl32.Vec3 {
	return Evaluator{}.Specular(l)
}
