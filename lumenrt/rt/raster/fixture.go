package raster

import (
	"math"

	"github.com/gekko3d/lumen/lumenrt/rt/core"
	"github.com/go-gl/mathgl/mgl32"
)

// Sphere is an analytic sphere used by the preview fixture.
type Sphere struct {
	Center   mgl32.Vec3
	Radius   float32
	Material core.Material
}

// Intersect returns the nearest positive hit distance along a unit ray.
func (s Sphere) Intersect(origin, dir mgl32.Vec3) (float32, bool) {
	oc := origin.Sub(s.Center)
	b := oc.Dot(dir)
	c := oc.Dot(oc) - s.Radius*s.Radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := float32(math.Sqrt(float64(disc)))
	if t := -b - sq; t > 1e-4 {
		return t, true
	}
	if t := -b + sq; t > 1e-4 {
		return t, true
	}
	return 0, false
}

// Fixture is a sphere resting above an infinite floor plane y = FloorY.
type Fixture struct {
	Sphere        Sphere
	FloorY        float32
	FloorMaterial core.Material
	// ToLight is the direction toward the shadow-casting light; zero disables shadows.
	ToLight mgl32.Vec3
	// ShadowSpread is the Poisson filter radius in world units.
	ShadowSpread float32
}

// Rasterize casts one primary ray per texel and fills a G-buffer.
func (fx Fixture) Rasterize(cam *core.CameraState, width, height int) (*GBuffer, error) {
	g, err := NewGBuffer(width, height)
	if err != nil {
		return nil, err
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dir := cam.PrimaryRay(x, y, width, height)
			if f, ok := fx.trace(cam.Position, dir); ok {
				g.Set(x, y, f)
			}
		}
	}
	return g, nil
}

func (fx Fixture) trace(origin, dir mgl32.Vec3) (core.Fragment, bool) {
	tSphere, hitSphere := fx.Sphere.Intersect(origin, dir)

	tFloor, hitFloor := float32(0), false
	if dir.Y() < 0 {
		tFloor = (fx.FloorY - origin.Y()) / dir.Y()
		hitFloor = tFloor > 0
	}

	switch {
	case hitSphere && (!hitFloor || tSphere < tFloor):
		p := origin.Add(dir.Mul(tSphere))
		n := p.Sub(fx.Sphere.Center).Normalize()
		return core.NewFragment(p, n, fx.Sphere.Material), true
	case hitFloor:
		p := origin.Add(dir.Mul(tFloor))
		f := core.NewFragment(p, mgl32.Vec3{0, 1, 0}, fx.FloorMaterial)
		f.Shadow = fx.shadow(p)
		return f, true
	}
	return core.Fragment{}, false
}

// shadow estimates how much of the floor point p is blocked by the sphere,
// filtering 16 jittered Poisson taps.
func (fx Fixture) shadow(p mgl32.Vec3) float32 {
	if fx.ToLight.Len() == 0 {
		return 0
	}
	L := fx.ToLight.Normalize()

	blocked := 0
	for i := range core.PoissonDisk {
		off := core.PoissonOffset(p, i, fx.ShadowSpread)
		tap := p.Add(mgl32.Vec3{off.X(), 0, off.Y()})
		if _, hit := fx.Sphere.Intersect(tap, L); hit {
			blocked++
		}
	}
	return float32(blocked) / float32(len(core.PoissonDisk))
}
