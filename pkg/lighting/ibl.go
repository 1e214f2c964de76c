package lighting

import (
	"github.com/lumen-render/lumen/pkg/core"
)

// EstimateImageBasedLighting estimates the single-scattering contribution
// of distant illumination at a shading point. Two complementary
// techniques sample the same integral and are combined with the power
// heuristic: sampling the BSDF works well for shiny lobes, sampling the
// environment works well for concentrated radiance.
func EstimateImageBasedLighting(
	s *core.Sampler,
	tracer *Tracer,
	environment core.EnvironmentEDF,
	shadingPoint *core.ShadingPoint,
	outgoing core.Vec3,
	bsdf core.BSDF,
	bsdfSampleCount, envSampleCount int,
) core.Vec3 {
	radiance := estimateWithBSDFSampling(
		s, tracer, environment, shadingPoint, outgoing, bsdf, bsdfSampleCount, envSampleCount)

	return radiance.Add(estimateWithEnvironmentSampling(
		s, tracer, environment, shadingPoint, outgoing, bsdf, bsdfSampleCount, envSampleCount))
}

// estimateWithBSDFSampling draws directions from the BSDF and looks up
// the environment along each. Only diffuse-mode samples are kept:
// glossy and specular directions are assumed handled by the caller
// through an explicit specular bounce, which avoids double counting
// (see Physically Based Rendering vol. 1 p. 732).
func estimateWithBSDFSampling(
	s *core.Sampler,
	tracer *Tracer,
	environment core.EnvironmentEDF,
	shadingPoint *core.ShadingPoint,
	outgoing core.Vec3,
	bsdf core.BSDF,
	bsdfSampleCount, envSampleCount int,
) core.Vec3 {
	radiance := core.Vec3{}

	for i := 0; i < bsdfSampleCount; i++ {
		sample, ok := bsdf.Sample(s.Fork(), false, shadingPoint.GeometricNormal, shadingPoint.Basis, outgoing)
		if !ok {
			continue
		}
		if sample.Mode != core.ScatterDiffuse {
			continue
		}

		// A diffuse lobe never samples with a delta density
		pdf := sample.Pdf.Value()
		if pdf <= 0 {
			continue
		}

		// Occlusion toward the environment
		occluder, transmission := tracer.Trace(shadingPoint.Point, sample.Incoming)
		if occluder.Hit {
			continue
		}

		envRadiance, envPdf := environment.Evaluate(sample.Incoming)

		misWeight := 1.0
		if !sample.Pdf.IsDelta() {
			misWeight = core.PowerHeuristic(bsdfSampleCount, pdf, envSampleCount, envPdf)
		}

		contribution := envRadiance.
			Multiply(transmission * misWeight / pdf).
			MultiplyVec(sample.Value)
		radiance = radiance.Add(contribution)
	}

	if bsdfSampleCount > 1 {
		radiance = radiance.Multiply(1.0 / float64(bsdfSampleCount))
	}

	return radiance
}

// estimateWithEnvironmentSampling draws directions from the
// environment's importance distribution and evaluates the BSDF along
// each
func estimateWithEnvironmentSampling(
	s *core.Sampler,
	tracer *Tracer,
	environment core.EnvironmentEDF,
	shadingPoint *core.ShadingPoint,
	outgoing core.Vec3,
	bsdf core.BSDF,
	bsdfSampleCount, envSampleCount int,
) core.Vec3 {
	radiance := core.Vec3{}

	for i := 0; i < envSampleCount; i++ {
		incoming, envRadiance, envPdf := environment.Sample(s.Get2D())
		if envPdf <= 0 {
			continue
		}

		occluder, transmission := tracer.Trace(shadingPoint.Point, incoming)
		if occluder.Hit {
			continue
		}

		// Skip directions where the BSDF is undefined, e.g. below the
		// surface
		bsdfValue, bsdfPdf, ok := bsdf.Evaluate(false, shadingPoint.GeometricNormal, shadingPoint.Basis, outgoing, incoming)
		if !ok {
			continue
		}

		misWeight := core.PowerHeuristic(envSampleCount, envPdf, bsdfSampleCount, bsdfPdf.Value())

		contribution := envRadiance.
			Multiply(transmission / envPdf * misWeight).
			MultiplyVec(bsdfValue)
		radiance = radiance.Add(contribution)
	}

	if envSampleCount > 1 {
		radiance = radiance.Multiply(1.0 / float64(envSampleCount))
	}

	return radiance
}
