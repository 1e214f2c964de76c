package material

import (
	"math"

	"github.com/lumen-render/lumen/pkg/core"
)

// Lambertian is a perfectly diffuse BSDF
type Lambertian struct {
	Albedo core.Vec3 // Base reflectance
}

// NewLambertian creates a new lambertian BSDF
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Sample implements core.BSDF with cosine-weighted hemisphere sampling
func (l *Lambertian) Sample(s *core.Sampler, adjoint bool, geometricNormal core.Vec3, basis core.Basis, outgoing core.Vec3) (core.BSDFSample, bool) {
	// Reject outgoing directions below the surface
	if outgoing.Dot(basis.Normal) <= 0 {
		return core.BSDFSample{}, false
	}

	incoming := core.SampleCosineHemisphere(basis, s.Get2D())
	cosTheta := incoming.Dot(basis.Normal)
	if cosTheta <= 0 {
		return core.BSDFSample{}, false
	}

	// BRDF value albedo/π, premultiplied by |cos(incoming, normal)|
	value := l.Albedo.Multiply(cosTheta / math.Pi)

	return core.BSDFSample{
		Incoming: incoming,
		Value:    value,
		Pdf:      core.FinitePdf(core.CosineHemispherePdf(cosTheta)),
		Mode:     core.ScatterDiffuse,
	}, true
}

// Evaluate implements core.BSDF for a fixed pair of directions
func (l *Lambertian) Evaluate(adjoint bool, geometricNormal core.Vec3, basis core.Basis, outgoing, incoming core.Vec3) (core.Vec3, core.Pdf, bool) {
	cosIn := incoming.Dot(basis.Normal)
	cosOut := outgoing.Dot(basis.Normal)

	// Undefined when either direction is below the surface
	if cosIn <= 0 || cosOut <= 0 {
		return core.Vec3{}, core.Pdf{}, false
	}

	value := l.Albedo.Multiply(cosIn / math.Pi)
	return value, core.FinitePdf(core.CosineHemispherePdf(cosIn)), true
}
