package material

import (
	"github.com/lumen-render/lumen/pkg/core"
)

// Mirror is a perfectly specular reflector. Its sampling density is a
// Dirac delta, so sampled values are never divided by a pdf and MIS
// never weights them against other techniques.
type Mirror struct {
	Reflectance core.Vec3
}

// NewMirror creates a new mirror BSDF
func NewMirror(reflectance core.Vec3) *Mirror {
	return &Mirror{Reflectance: reflectance}
}

// Sample implements core.BSDF by deterministic reflection
func (m *Mirror) Sample(s *core.Sampler, adjoint bool, geometricNormal core.Vec3, basis core.Basis, outgoing core.Vec3) (core.BSDFSample, bool) {
	if outgoing.Dot(basis.Normal) <= 0 {
		return core.BSDFSample{}, false
	}

	incoming := outgoing.Negate().Reflect(basis.Normal)

	return core.BSDFSample{
		Incoming: incoming,
		Value:    m.Reflectance,
		Pdf:      core.DeltaPdf(),
		Mode:     core.ScatterSpecular,
	}, true
}

// Evaluate implements core.BSDF; a delta lobe is undefined for any fixed
// pair of directions
func (m *Mirror) Evaluate(adjoint bool, geometricNormal core.Vec3, basis core.Basis, outgoing, incoming core.Vec3) (core.Vec3, core.Pdf, bool) {
	return core.Vec3{}, core.Pdf{}, false
}
