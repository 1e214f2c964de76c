package lights

import (
	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/geometry"
)

// QuadLight is a rectangular area light. The embedded quad keeps the
// light intersectable so it occludes and shows up in renders.
type QuadLight struct {
	*geometry.Quad
	edf  core.EDF
	area float64
}

// NewQuadLight creates a quad light emitting through the given EDF
func NewQuadLight(corner, u, v core.Vec3, edf core.EDF, material core.Material) *QuadLight {
	quad := geometry.NewQuad(corner, u, v, material)
	return &QuadLight{
		Quad: quad,
		edf:  edf,
		area: quad.Area(),
	}
}

// SamplePoint implements core.Light with uniform area sampling
func (ql *QuadLight) SamplePoint(sample core.Vec2) (core.LightPoint, float64) {
	position := ql.Corner.Add(ql.U.Multiply(sample.X)).Add(ql.V.Multiply(sample.Y))

	return core.LightPoint{
		Position:        position,
		GeometricNormal: ql.Normal,
		Basis:           core.NewBasis(ql.Normal),
		UV:              sample,
	}, 1.0 / ql.area
}

// EDF implements core.Light
func (ql *QuadLight) EDF(uv core.Vec2) core.EDF {
	return ql.edf
}
