package lighttracing

import (
	"math"

	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/lighting"
	"github.com/lumen-render/lumen/pkg/log"
	"github.com/lumen-render/lumen/pkg/stats"
)

// Offset applied to emission points along the geometric normal before
// tracing, so the light ray does not immediately re-hit its emitter
const emitterOffset = 1e-4

var logger = log.New("lighttracing")

// Config controls path termination for generated light paths
type Config struct {
	RRMinPathLength int // Minimum length before Russian roulette applies (0 disables)
	MaxPathLength   int // Maximum light path length (0 = unbounded)
}

// Generator emits radiance-carrying particles from the scene's lights
// and walks them through the scene, splatting a contribution onto the
// image plane at every vertex visible from the camera. Each generator
// owns a seeded sampler, so one generator per worker gives a fully
// deterministic render.
type Generator struct {
	camera       core.Camera
	intersector  core.Intersector
	lightSampler core.LightSampler
	tracer       *lighting.Tracer
	sampler      *core.Sampler
	seed         int64
	config       Config
	stats        stats.RenderStats
}

// NewGenerator creates a light-tracing sample generator
func NewGenerator(
	camera core.Camera,
	intersector core.Intersector,
	lightSampler core.LightSampler,
	seed int64,
	config Config,
) *Generator {
	return &Generator{
		camera:       camera,
		intersector:  intersector,
		lightSampler: lightSampler,
		tracer:       lighting.NewTracer(intersector),
		sampler:      core.NewSampler(seed),
		seed:         seed,
		config:       config,
	}
}

// Reset returns the generator to its initial state so a render can be
// reproduced exactly
func (g *Generator) Reset() {
	g.sampler.Reseed(g.seed)
	g.stats = stats.RenderStats{}
}

// Stats returns the statistics accumulated since the last Reset
func (g *Generator) Stats() *stats.RenderStats {
	return &g.stats
}

// GeneratePath traces one light path and pushes its image-plane
// contributions into the sink. Returns the number of samples emitted;
// zero is a normal outcome when the path never becomes visible to the
// camera.
func (g *Generator) GeneratePath(sink core.SampleSink) int {
	lightSample, ok := g.lightSampler.Sample(g.sampler)
	if !ok {
		return 0
	}

	edf := lightSample.Light.EDF(lightSample.Point.UV)
	if edf == nil {
		return 0
	}

	// Sample an emission direction and convert the emitted value into an
	// initial particle flux
	direction, value, directionPdf := edf.Sample(
		g.sampler.Get2D(),
		lightSample.Point.GeometricNormal,
		lightSample.Point.Basis)
	if directionPdf <= 0 {
		return 0
	}

	initialFlux := value.Multiply(1.0 / (lightSample.Probability * directionPdf))

	visitor := &pathVisitor{
		camera:      g.camera,
		tracer:      g.tracer,
		sink:        sink,
		flux:        initialFlux,
		cameraPos:   g.camera.Position(),
		cameraDir:   g.camera.Forward(),
		focalLength: g.camera.FocalLength(),
	}
	filmDims := g.camera.FilmDimensions()
	visitor.rcpFilmArea = 1.0 / (filmDims.X * filmDims.Y)

	// The light vertex contributes directly, before any scattering
	visitor.visitLightVertex(lightSample.Point.Position)

	origin := lightSample.Point.Position.Add(
		lightSample.Point.GeometricNormal.Multiply(emitterOffset))
	lightRay := core.NewRay(origin, direction)

	pathTracer := lighting.NewPathTracer(
		visitor,
		core.ScatterAll,
		true, // adjoint: the walk runs from the light toward the camera
		g.config.RRMinPathLength,
		g.config.MaxPathLength)

	pathLength := pathTracer.TraceRay(g.sampler, g.intersector, lightRay)

	g.stats.PathCount++
	g.stats.PathLength.Insert(float64(pathLength))
	g.stats.SampleCount += visitor.sampleCount

	return visitor.sampleCount
}

// pathVisitor splats the walk's vertices onto the image plane. It lives
// for a single light path; flux starts as the particle's emitted power
// and decays with each bounce.
type pathVisitor struct {
	camera      core.Camera
	tracer      *lighting.Tracer
	sink        core.SampleSink
	flux        core.Vec3
	cameraPos   core.Vec3
	cameraDir   core.Vec3
	focalLength float64
	rcpFilmArea float64
	sampleCount int
}

// visitLightVertex splats the emission point itself, carrying the raw
// particle flux
func (v *pathVisitor) visitLightVertex(position core.Vec3) {
	ndc, transmission, g, fluxToRadiance, ok := v.connectToCamera(position)
	if !ok {
		return
	}

	radiance := v.flux.Multiply(transmission * g * fluxToRadiance)
	v.emit(ndc, radiance)
}

// VisitVertex implements lighting.PathVisitor. Outgoing points back
// toward the light here, since the walk runs in the adjoint direction.
func (v *pathVisitor) VisitVertex(s *core.Sampler, vertex *lighting.PathVertex) bool {
	position := vertex.ShadingPoint.Point

	ndc, transmission, g, fluxToRadiance, ok := v.connectToCamera(position)
	if !ok {
		// The vertex is invisible, but the walk continues
		return true
	}

	toCamera := v.cameraPos.Subtract(position).Normalize()

	// Keep the geometric normal in the shading hemisphere so the BSDF
	// sidedness tests agree with the shading frame
	geometricNormal := vertex.ShadingPoint.GeometricNormal
	if vertex.ShadingPoint.ShadingNormal.Dot(geometricNormal) < 0 {
		geometricNormal = geometricNormal.Negate()
	}

	bsdfValue, _, ok := vertex.BSDF.Evaluate(
		true,
		geometricNormal,
		vertex.ShadingPoint.Basis,
		vertex.Outgoing,
		toCamera)

	// Update the particle flux whether or not the BSDF connects
	v.flux = v.flux.MultiplyVec(vertex.Throughput)

	if !ok {
		return true
	}

	radiance := v.flux.
		MultiplyVec(bsdfValue).
		Multiply(transmission * g * fluxToRadiance)
	v.emit(ndc, radiance)

	return true
}

// VisitEnvironment implements lighting.PathVisitor. A particle escaping
// into the environment carries no camera contribution.
func (v *pathVisitor) VisitEnvironment(s *core.Sampler, sp *core.ShadingPoint, outgoing core.Vec3, prevMode core.ScatterMode, throughput core.Vec3) {
}

// connectToCamera projects a vertex onto the image plane and computes
// the factors shared by every splat: the occlusion transmission, the
// geometric term g = cos(theta)/d^2, and the flux-to-radiance measure
// conversion. ok is false when the vertex cannot contribute.
func (v *pathVisitor) connectToCamera(position core.Vec3) (ndc core.Vec2, transmission, g, fluxToRadiance float64, ok bool) {
	ndc, visible := v.camera.Project(position)
	if !visible || !ndc.InUnitSquare() {
		return core.Vec2{}, 0, 0, 0, false
	}

	// Trace from the camera toward the vertex so the occlusion ray does
	// not start inside the vertex's own surface
	transmission = v.tracer.TraceBetween(v.cameraPos, position)
	if transmission == 0 {
		return core.Vec2{}, 0, 0, 0, false
	}

	toCamera := v.cameraPos.Subtract(position)
	squareDistance := toCamera.LengthSquared()
	if squareDistance == 0 {
		return core.Vec2{}, 0, 0, 0, false
	}
	toCamera = toCamera.Multiply(1.0 / toCamera.Length())

	// The pixel under the vertex sits at distance focal/cos(theta) from
	// the camera position; the measure conversion follows from the solid
	// angle subtended by that pixel
	cosTheta := math.Abs(toCamera.Negate().Dot(v.cameraDir))
	if cosTheta == 0 {
		return core.Vec2{}, 0, 0, 0, false
	}
	distPixelToCamera := v.focalLength / cosTheta

	fluxToRadiance = square(distPixelToCamera/cosTheta) * v.rcpFilmArea
	g = cosTheta / squareDistance

	return ndc, transmission, g, fluxToRadiance, true
}

func (v *pathVisitor) emit(ndc core.Vec2, radiance core.Vec3) {
	if !radiance.IsFinite() {
		logger.Warningf("discarding non-finite sample at (%.4f, %.4f)", ndc.X, ndc.Y)
		return
	}

	v.sink.AddSample(core.Sample{
		Position: ndc,
		Color:    radiance,
		Alpha:    1,
	})
	v.sampleCount++
}

func square(x float64) float64 {
	return x * x
}
