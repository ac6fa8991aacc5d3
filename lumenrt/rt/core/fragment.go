package core

import "github.com/go-gl/mathgl/mgl32"

// FragmentUniforms are the per-draw scalars. LightCount bounds the light list.
type FragmentUniforms struct {
	Tiling         uint32
	CameraPosition mgl32.Vec3
	LightCount     uint32
}

// Lighting is the input bundle for a single light/surface interaction.
type Lighting struct {
	LightDirection   mgl32.Vec3 // surface to light, unit length
	ViewDirection    mgl32.Vec3 // surface to camera, unit length
	BaseColor        mgl32.Vec3
	Normal           mgl32.Vec3
	Metallic         float32
	Roughness        float32
	AmbientOcclusion float32
	LightColor       mgl32.Vec3
	Intensity        float32
}

// Fragment holds the interpolated attributes of one visible sample.
type Fragment struct {
	Position         mgl32.Vec3
	Normal           mgl32.Vec3
	BaseColor        mgl32.Vec3
	Roughness        float32
	Metallic         float32
	AmbientOcclusion float32
	// Shadow is the fraction of direct light blocked; 0 is fully lit.
	Shadow float32
}

// NewFragment builds a lit fragment from a material.
func NewFragment(position, normal mgl32.Vec3, m Material) Fragment {
	return Fragment{
		Position:         position,
		Normal:           normal,
		BaseColor:        m.BaseColor,
		Roughness:        m.Roughness,
		Metallic:         m.Metallic,
		AmbientOcclusion: m.AmbientOcclusion,
	}
}

// ViewDirection returns the unit vector from the fragment to the camera.
func (u FragmentUniforms) ViewDirection(position mgl32.Vec3) mgl32.Vec3 {
	return u.CameraPosition.Sub(position).Normalize()
}
