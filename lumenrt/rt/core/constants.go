package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	Pi   float32 = math.Pi
	Near float32 = 0.1
	Far  float32 = 100.0
)

// SunLight is the default sun position used by shadow passes.
var SunLight = mgl32.Vec3{0, -1000, -1000}

// PoissonDisk holds 16 sample offsets in the unit disk for PCF shadow filtering.
var PoissonDisk = [16]mgl32.Vec2{
	{-0.94201624, -0.39906216},
	{0.94558609, -0.76890725},
	{-0.094184101, -0.92938870},
	{0.34495938, 0.29387760},
	{-0.91588581, 0.45771432},
	{-0.81544232, -0.87912464},
	{-0.38277543, 0.27676845},
	{0.97484398, 0.75648379},
	{0.44323325, -0.97511554},
	{0.53742981, -0.47373420},
	{-0.26496911, -0.41893023},
	{0.79197514, 0.19090188},
	{-0.24188840, 0.99706507},
	{-0.81409955, 0.91437590},
	{0.19984126, 0.78641367},
	{0.14383161, -0.14100790},
}

var randomWeights = mgl32.Vec4{12.9898, 78.233, 45.164, 94.673}

// Random returns a hash in [0,1) of seed and i.
func Random(seed mgl32.Vec3, i int) float32 {
	d := seed.Vec4(float32(i)).Dot(randomWeights)
	s := float32(math.Sin(float64(d))) * 43758.5453
	f := s - float32(math.Floor(float64(s)))
	if f >= 1 {
		// tiny negative s rounds up
		return 0
	}
	return f
}

// PoissonOffset picks a pseudo-random disk sample for seed and scales it by spread.
func PoissonOffset(seed mgl32.Vec3, i int, spread float32) mgl32.Vec2 {
	idx := int(16*Random(seed, i)) % len(PoissonDisk)
	return PoissonDisk[idx].Mul(spread)
}
