package core

import (
	"math"
)

// SampleCosineHemisphere generates a cosine-weighted direction in the
// hemisphere around the basis normal. The associated pdf is cos(θ)/π.
func SampleCosineHemisphere(basis Basis, sample Vec2) Vec3 {
	a := 2.0 * math.Pi * sample.X
	z := sample.Y
	r := math.Sqrt(z)

	x := r * math.Cos(a)
	y := r * math.Sin(a)
	zCoord := math.Sqrt(1.0 - z)

	return basis.ToWorld(NewVec3(x, y, zCoord))
}

// CosineHemispherePdf returns the pdf of SampleCosineHemisphere for a
// direction with the given cosine against the normal
func CosineHemispherePdf(cosTheta float64) float64 {
	if cosTheta <= 0 {
		return 0
	}
	return cosTheta / math.Pi
}

// SampleUniformSphere generates a uniform direction on the unit sphere.
// The associated pdf is 1/(4π).
func SampleUniformSphere(sample Vec2) Vec3 {
	z := 1.0 - 2.0*sample.X
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * sample.Y
	return NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
}

// UniformSpherePdf returns the pdf of SampleUniformSphere
func UniformSpherePdf() float64 {
	return 1.0 / (4.0 * math.Pi)
}

// PowerHeuristic computes the power heuristic MIS weight with exponent 2
// for a technique taking nf samples with density fPdf against a technique
// taking ng samples with density gPdf
func PowerHeuristic(nf int, fPdf float64, ng int, gPdf float64) float64 {
	f := float64(nf) * fPdf
	g := float64(ng) * gPdf
	denom := f*f + g*g
	if denom == 0 {
		return 0
	}
	return f * f / denom
}
