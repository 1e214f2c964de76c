package renderer

import (
	"math"

	"github.com/lumen-render/lumen/pkg/core"
)

// PinholeCamera is a physically parameterized pinhole camera. Film
// dimensions are in meters so flux-to-radiance conversions work in real
// units; NDC space is [0,1)^2 with Y growing downward, matching image
// rows.
type PinholeCamera struct {
	origin      core.Vec3
	forward     core.Vec3
	right       core.Vec3
	up          core.Vec3
	focalLength float64
	filmWidth   float64
	filmHeight  float64
}

// CameraConfig describes a camera placement
type CameraConfig struct {
	LookFrom    core.Vec3
	LookAt      core.Vec3
	VUp         core.Vec3
	VFov        float64 // vertical field of view in degrees
	AspectRatio float64 // width / height
	FocalLength float64 // meters; film size follows from fov and focal
}

// NewPinholeCamera creates a camera from a placement description
func NewPinholeCamera(config CameraConfig) *PinholeCamera {
	forward := config.LookAt.Subtract(config.LookFrom).Normalize()
	right := forward.Cross(config.VUp).Normalize()
	up := right.Cross(forward)

	theta := config.VFov * math.Pi / 180
	filmHeight := 2 * config.FocalLength * math.Tan(theta/2)
	filmWidth := config.AspectRatio * filmHeight

	return &PinholeCamera{
		origin:      config.LookFrom,
		forward:     forward,
		right:       right,
		up:          up,
		focalLength: config.FocalLength,
		filmWidth:   filmWidth,
		filmHeight:  filmHeight,
	}
}

// Project implements core.Camera. ok is false for points at or behind
// the camera plane; points projecting outside the unit square are
// returned as-is so the caller decides visibility.
func (c *PinholeCamera) Project(point core.Vec3) (core.Vec2, bool) {
	d := point.Subtract(c.origin)

	depth := d.Dot(c.forward)
	if depth <= 0 {
		return core.Vec2{}, false
	}

	// Perspective divide onto the film plane at the focal distance
	x := d.Dot(c.right) * c.focalLength / depth
	y := d.Dot(c.up) * c.focalLength / depth

	ndc := core.NewVec2(
		x/c.filmWidth+0.5,
		0.5-y/c.filmHeight,
	)
	return ndc, true
}

// GenerateRay maps an NDC position back to a world-space ray, the
// inverse of Project
func (c *PinholeCamera) GenerateRay(ndc core.Vec2) core.Ray {
	x := (ndc.X - 0.5) * c.filmWidth
	y := (0.5 - ndc.Y) * c.filmHeight

	direction := c.forward.Multiply(c.focalLength).
		Add(c.right.Multiply(x)).
		Add(c.up.Multiply(y))

	return core.NewRay(c.origin, direction.Normalize())
}

// Position implements core.Camera
func (c *PinholeCamera) Position() core.Vec3 {
	return c.origin
}

// Forward implements core.Camera
func (c *PinholeCamera) Forward() core.Vec3 {
	return c.forward
}

// FocalLength implements core.Camera
func (c *PinholeCamera) FocalLength() float64 {
	return c.focalLength
}

// FilmDimensions implements core.Camera
func (c *PinholeCamera) FilmDimensions() core.Vec2 {
	return core.NewVec2(c.filmWidth, c.filmHeight)
}
