package material

import (
	"github.com/lumen-render/lumen/pkg/core"
)

// Surface binds scattering, emission and opacity capabilities into a
// core.Material. Any binding may be left nil; the path tracer treats
// missing bindings as normal terminal states.
type Surface struct {
	BSDF    core.BSDF
	EDF     core.EDF
	Opacity float64                   // Constant alpha, used when AlphaFn is nil
	AlphaFn func(uv core.Vec2) float64 // Optional spatially varying mask
}

// NewSurface creates an opaque surface around a BSDF
func NewSurface(bsdf core.BSDF) *Surface {
	return &Surface{BSDF: bsdf, Opacity: 1}
}

// NewEmissiveSurface creates an opaque emitting surface
func NewEmissiveSurface(edf core.EDF) *Surface {
	return &Surface{EDF: edf, Opacity: 1}
}

// Alpha implements core.Material
func (m *Surface) Alpha(uv core.Vec2) float64 {
	if m.AlphaFn != nil {
		return m.AlphaFn(uv)
	}
	return m.Opacity
}

// SurfaceBSDF implements core.Material. Inputs for the concrete BSDFs in
// this package are constants, so the binding is the BSDF itself.
func (m *Surface) SurfaceBSDF(uv core.Vec2) core.BSDF {
	return m.BSDF
}

// SurfaceEDF implements core.Material
func (m *Surface) SurfaceEDF(uv core.Vec2) core.EDF {
	return m.EDF
}
