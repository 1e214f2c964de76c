package lights

import (
	"github.com/lumen-render/lumen/pkg/core"
)

// UniformLightSampler picks one emitter uniformly among the scene's
// lights, then a point on it, and reports the combined probability.
type UniformLightSampler struct {
	lights []core.Light
}

// NewUniformLightSampler creates a sampler over the given lights
func NewUniformLightSampler(lights []core.Light) *UniformLightSampler {
	return &UniformLightSampler{lights: lights}
}

// Sample implements core.LightSampler
func (ls *UniformLightSampler) Sample(s *core.Sampler) (core.LightSample, bool) {
	if len(ls.lights) == 0 {
		return core.LightSample{}, false
	}

	// Uniform light selection
	index := int(s.Get1D() * float64(len(ls.lights)))
	if index == len(ls.lights) {
		index--
	}
	light := ls.lights[index]
	selectionProb := 1.0 / float64(len(ls.lights))

	point, areaPdf := light.SamplePoint(s.Get2D())
	if areaPdf <= 0 {
		return core.LightSample{}, false
	}

	return core.LightSample{
		Light:       light,
		Point:       point,
		Probability: selectionProb * areaPdf,
	}, true
}
