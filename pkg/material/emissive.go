package material

import (
	"github.com/lumen-render/lumen/pkg/core"
)

// DiffuseEDF emits radiance with a cosine distribution over the
// hemisphere around the emission normal
type DiffuseEDF struct {
	Radiance core.Vec3
}

// NewDiffuseEDF creates a new diffuse emitter
func NewDiffuseEDF(radiance core.Vec3) *DiffuseEDF {
	return &DiffuseEDF{Radiance: radiance}
}

// Sample implements core.EDF with cosine-weighted direction sampling
func (e *DiffuseEDF) Sample(sample core.Vec2, geometricNormal core.Vec3, basis core.Basis) (core.Vec3, core.Vec3, float64) {
	direction := core.SampleCosineHemisphere(basis, sample)
	cosTheta := direction.Dot(basis.Normal)
	return direction, e.Radiance, core.CosineHemispherePdf(cosTheta)
}

// Evaluate implements core.EDF for a fixed emission direction
func (e *DiffuseEDF) Evaluate(geometricNormal core.Vec3, basis core.Basis, direction core.Vec3) (core.Vec3, float64) {
	cosTheta := direction.Dot(basis.Normal)
	if cosTheta <= 0 {
		return core.Vec3{}, 0
	}
	return e.Radiance, core.CosineHemispherePdf(cosTheta)
}
