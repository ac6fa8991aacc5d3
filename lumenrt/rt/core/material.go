package core

import "github.com/go-gl/mathgl/mgl32"

// Material is the metallic/roughness surface description for a draw call.
type Material struct {
	BaseColor        mgl32.Vec3
	Roughness        float32
	Metallic         float32
	AmbientOcclusion float32
}

func NewMaterial(baseColor mgl32.Vec3, roughness, metallic float32) Material {
	return Material{
		BaseColor:        baseColor,
		Roughness:        roughness,
		Metallic:         metallic,
		AmbientOcclusion: 1.0,
	}
}

// Helper for default white
func DefaultMaterial() Material {
	return NewMaterial(mgl32.Vec3{1, 1, 1}, 1.0, 0.0)
}
