package material

import (
	"github.com/lumen-render/lumen/pkg/core"
)

// ConstantEnvironment is distant illumination with the same radiance in
// every direction, sampled uniformly over the sphere
type ConstantEnvironment struct {
	Radiance core.Vec3
}

// NewConstantEnvironment creates a constant environment EDF
func NewConstantEnvironment(radiance core.Vec3) *ConstantEnvironment {
	return &ConstantEnvironment{Radiance: radiance}
}

// Sample implements core.EnvironmentEDF
func (e *ConstantEnvironment) Sample(sample core.Vec2) (core.Vec3, core.Vec3, float64) {
	direction := core.SampleUniformSphere(sample)
	return direction, e.Radiance, core.UniformSpherePdf()
}

// Evaluate implements core.EnvironmentEDF
func (e *ConstantEnvironment) Evaluate(direction core.Vec3) (core.Vec3, float64) {
	return e.Radiance, core.UniformSpherePdf()
}

// GradientEnvironment blends between two colors along the vertical axis,
// the usual sky-to-ground backdrop
type GradientEnvironment struct {
	Top    core.Vec3
	Bottom core.Vec3
}

// NewGradientEnvironment creates a gradient environment EDF
func NewGradientEnvironment(top, bottom core.Vec3) *GradientEnvironment {
	return &GradientEnvironment{Top: top, Bottom: bottom}
}

// Sample implements core.EnvironmentEDF with uniform sphere sampling
func (e *GradientEnvironment) Sample(sample core.Vec2) (core.Vec3, core.Vec3, float64) {
	direction := core.SampleUniformSphere(sample)
	radiance, pdf := e.Evaluate(direction)
	return direction, radiance, pdf
}

// Evaluate implements core.EnvironmentEDF
func (e *GradientEnvironment) Evaluate(direction core.Vec3) (core.Vec3, float64) {
	unit := direction.Normalize()
	t := 0.5 * (unit.Y + 1.0)
	radiance := e.Bottom.Multiply(1.0 - t).Add(e.Top.Multiply(t))
	return radiance, core.UniformSpherePdf()
}
