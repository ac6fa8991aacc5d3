package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// CameraState is a Y-up yaw/pitch camera. Yaw 0 looks down -Z.
type CameraState struct {
	Position mgl32.Vec3
	Yaw      float32
	Pitch    float32
	FovY     float32 // radians
}

func NewCameraState() *CameraState {
	return &CameraState{
		Position: mgl32.Vec3{0, 1, 5},
		FovY:     mgl32.DegToRad(60),
	}
}

func (c *CameraState) GetForward() mgl32.Vec3 {
	cp := math.Cos(float64(c.Pitch))
	return mgl32.Vec3{
		float32(cp * math.Sin(float64(c.Yaw))),
		float32(math.Sin(float64(c.Pitch))),
		float32(-cp * math.Cos(float64(c.Yaw))),
	}
}

func (c *CameraState) GetRight() mgl32.Vec3 {
	return mgl32.Vec3{
		float32(math.Cos(float64(c.Yaw))),
		0,
		float32(math.Sin(float64(c.Yaw))),
	}
}

func (c *CameraState) GetUp() mgl32.Vec3 {
	return c.GetRight().Cross(c.GetForward())
}

func (c *CameraState) GetViewMatrix() mgl32.Mat4 {
	eye := c.Position
	return mgl32.LookAtV(eye, eye.Add(c.GetForward()), mgl32.Vec3{0, 1, 0})
}

func (c *CameraState) GetProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(c.FovY, aspect, Near, Far)
}

// PrimaryRay returns the unit direction through the center of pixel (px, py)
// of a width x height image. Row 0 is the top of the image.
func (c *CameraState) PrimaryRay(px, py, width, height int) mgl32.Vec3 {
	aspect := float32(width) / float32(height)
	tanHalf := float32(math.Tan(float64(c.FovY) / 2))

	ndcX := (2*(float32(px)+0.5)/float32(width) - 1) * aspect * tanHalf
	ndcY := (1 - 2*(float32(py)+0.5)/float32(height)) * tanHalf

	dir := c.GetForward().Add(c.GetRight().Mul(ndcX)).Add(c.GetUp().Mul(ndcY))
	return dir.Normalize()
}
