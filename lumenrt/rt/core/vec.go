package core

import "github.com/go-gl/mathgl/mgl32"

// MulVec multiplies two vectors component-wise.
func MulVec(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// Mix linearly interpolates from a to b by t.
func Mix(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Mul(1 - t).Add(b.Mul(t))
}

func Saturate(x float32) float32 {
	return mgl32.Clamp(x, 0, 1)
}

// Distance returns |a-b|.
func Distance(a, b mgl32.Vec3) float32 {
	return a.Sub(b).Len()
}
