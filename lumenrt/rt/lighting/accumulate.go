// Package lighting accumulates per-light diffuse and specular radiance for a fragment.
package lighting

import (
	"math"

	"github.com/gekko3d/lumen/lumenrt/rt/core"
	"github.com/go-gl/mathgl/mgl32"
)

// Attenuation returns 1/(c0 + c1*d + c2*d²).
func Attenuation(coeffs mgl32.Vec3, d float32) float32 {
	return 1.0 / (coeffs[0] + coeffs[1]*d + coeffs[2]*d*d)
}

// ConeFactor returns the angular falloff for a spot light seen along lightDir
// (fragment to light). ok is false outside the cone; the edge is hard.
func ConeFactor(s core.Spot, lightDir mgl32.Vec3) (factor float32, ok bool) {
	coneDir := s.ConeDirection.Mul(-1).Normalize()
	spotResult := lightDir.Dot(coneDir)
	if !(spotResult > float32(math.Cos(float64(s.ConeAngle)))) {
		return 0, false
	}
	return float32(math.Pow(float64(spotResult), float64(s.ConeAttenuation))), true
}

// lightCount returns how many entries of lights may be read.
func lightCount(u core.FragmentUniforms, lights []core.Light) int {
	return min(int(u.LightCount), len(lights))
}

// Accumulate sums the diffuse and ambient radiance of the first
// u.LightCount lights at a fragment. A count larger than len(lights) is
// truncated. Nil entries are skipped. Lights are visited in order, which
// matters only for ambient lights: each one adds into a running ambient
// sum that is then multiplied by baseColor and added to the total.
func Accumulate(normal, position mgl32.Vec3, u core.FragmentUniforms, lights []core.Light, baseColor mgl32.Vec3) mgl32.Vec3 {
	direct, ambient := accumulate(normal, position, u, lights, baseColor)
	return direct.Add(ambient)
}

// accumulate splits the total into direct light and the ambient additions.
func accumulate(normal, position mgl32.Vec3, u core.FragmentUniforms, lights []core.Light, baseColor mgl32.Vec3) (direct, ambientTotal mgl32.Vec3) {
	var ambient mgl32.Vec3
	N := normal.Normalize()

	n := lightCount(u, lights)
	for i := 0; i < n; i++ {
		switch l := lights[i].(type) {
		case core.Directional:
			direct = direct.Add(directionalDiffuse(l, N, baseColor))
		case core.Point:
			direct = direct.Add(pointDiffuse(l, N, position, baseColor))
		case core.Spot:
			direct = direct.Add(spotDiffuse(l, N, position, baseColor))
		case core.Ambient:
			ambient = core.MulVec(ambient.Add(l.Color.Mul(l.Intensity)), baseColor)
			ambientTotal = ambientTotal.Add(ambient)
		}
	}
	return direct, ambientTotal
}

func lambert(L, N mgl32.Vec3) float32 {
	return core.Saturate(L.Dot(N))
}

func directionalDiffuse(l core.Directional, N, baseColor mgl32.Vec3) mgl32.Vec3 {
	L := l.Direction.Mul(-1).Normalize()
	return core.MulVec(l.Color.Mul(l.Intensity), baseColor).Mul(lambert(L, N))
}

// Point and spot diffuse do not scale by intensity.
func pointDiffuse(l core.Point, N, position, baseColor mgl32.Vec3) mgl32.Vec3 {
	d := core.Distance(l.Position, position)
	L := l.Position.Sub(position).Normalize()
	color := core.MulVec(l.Color, baseColor).Mul(lambert(L, N))
	return color.Mul(Attenuation(l.Attenuation, d))
}

func spotDiffuse(l core.Spot, N, position, baseColor mgl32.Vec3) mgl32.Vec3 {
	d := core.Distance(l.Position, position)
	L := l.Position.Sub(position).Normalize()
	cone, ok := ConeFactor(l, L)
	if !ok {
		return mgl32.Vec3{}
	}
	attenuation := Attenuation(l.Attenuation, d) * cone
	color := core.MulVec(l.Color, baseColor).Mul(lambert(L, N))
	return color.Mul(attenuation)
}
