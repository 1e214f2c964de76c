package lighting

import (
	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/log"
)

// Hard limit on the number of bounces, so pathological configurations
// (mirror boxes, unbounded path length) still terminate
const hardPathLengthLimit = 10000

var logger = log.New("lighting")

// PathVertex is the state handed to a visitor at each path vertex
type PathVertex struct {
	ShadingPoint *core.ShadingPoint
	Outgoing     core.Vec3 // Unit direction back along the arriving ray
	BSDF         core.BSDF // Bound at the vertex's surface coordinates
	PrevMode     core.ScatterMode
	PrevPdf      core.Pdf
	Throughput   core.Vec3 // Accumulated BSDF/pdf products up to this vertex
}

// PathVisitor receives callbacks as the tracer walks a path.
// VisitVertex returning false terminates the walk; this is how visitors
// implement next-event estimation cutoffs and early exits.
type PathVisitor interface {
	VisitVertex(s *core.Sampler, vertex *PathVertex) bool
	VisitEnvironment(s *core.Sampler, sp *core.ShadingPoint, outgoing core.Vec3, prevMode core.ScatterMode, throughput core.Vec3)
}

// PathTracer executes stochastic light-transport walks. It is generic
// over the visitor, the set of accepted scattering modes, and the
// transport direction (adjoint = light-to-camera).
type PathTracer struct {
	visitor         PathVisitor
	acceptedModes   core.ScatterMode
	adjoint         bool
	rrMinPathLength int // Minimum length before Russian roulette applies (0 disables)
	maxPathLength   int // Maximum length (0 = unbounded up to the hard limit)
}

// NewPathTracer creates a path tracer. The visitor is referenced, not
// owned; one visitor may serve many traces.
func NewPathTracer(visitor PathVisitor, acceptedModes core.ScatterMode, adjoint bool, rrMinPathLength, maxPathLength int) *PathTracer {
	return &PathTracer{
		visitor:         visitor,
		acceptedModes:   acceptedModes,
		adjoint:         adjoint,
		rrMinPathLength: rrMinPathLength,
		maxPathLength:   maxPathLength,
	}
}

// TraceRay traces one path starting from a ray and returns the number of
// vertices visited
func (pt *PathTracer) TraceRay(s *core.Sampler, intersector core.Intersector, ray core.Ray) int {
	return pt.Trace(s, intersector, intersector.Trace(ray))
}

// Trace traces one path starting from a precomputed shading point.
// Every way out of the loop below is a normal outcome of the random
// walk, not an error.
func (pt *PathTracer) Trace(s *core.Sampler, intersector core.Intersector, shadingPoint core.ShadingPoint) int {
	// Two reusable shading-point slots, toggled each bounce so the
	// current point stays valid while the next one is traced
	var slots [2]core.ShadingPoint
	slotIndex := 0
	current := &shadingPoint

	throughput := core.NewVec3(1, 1, 1)
	pathLength := 1

	// The path origin acts as an idealized emitter/sensor: a specular
	// "bounce" with a Dirac delta density
	prevMode := core.ScatterSpecular
	prevPdf := core.DeltaPdf()

	for {
		ray := current.Ray

		// A miss is the natural terminal state
		if !current.Hit {
			outgoing := ray.Direction.Negate().Normalize()
			pt.visitor.VisitEnvironment(s, current, outgoing, prevMode, throughput)
			break
		}

		// Unbound materials are content issues reported upstream;
		// here they just end the path
		if current.Material == nil {
			break
		}

		// Stochastic alpha transparency: with probability 1-alpha the
		// surface is skipped and the ray continues unchanged, without
		// consuming a bounce or a visitor callback
		alpha := current.Material.Alpha(current.UV)
		if alpha < 1 {
			if s.Get1D() >= alpha {
				cutoffRay := core.NewRay(current.Point, ray.Direction)

				slots[slotIndex].Clear()
				slots[slotIndex] = intersector.Trace(cutoffRay)
				current = &slots[slotIndex]
				slotIndex = 1 - slotIndex
				continue
			}
		}

		// Bind the BSDF at this vertex's surface coordinates
		bsdf := current.Material.SurfaceBSDF(current.UV)
		if bsdf == nil {
			break
		}

		outgoing := ray.Direction.Negate().Normalize()

		vertex := PathVertex{
			ShadingPoint: current,
			Outgoing:     outgoing,
			BSDF:         bsdf,
			PrevMode:     prevMode,
			PrevPdf:      prevPdf,
			Throughput:   throughput,
		}
		if !pt.visitor.VisitVertex(s, &vertex) {
			break
		}

		sample, ok := bsdf.Sample(s, pt.adjoint, current.GeometricNormal, current.Basis, outgoing)
		if !ok {
			break
		}

		// Terminate when the sampled mode is filtered out; this is how
		// callers build diffuse-only or specular-only sub-walks
		if !pt.acceptedModes.Accepts(sample.Mode) {
			break
		}

		value := sample.Value
		if !sample.Pdf.IsDelta() {
			pdf := sample.Pdf.Value()
			if pdf <= 0 {
				break
			}
			value = value.Multiply(1.0 / pdf)
		}

		throughput = throughput.MultiplyVec(value)

		// Guard the invariant before the bad value reaches the image
		if !throughput.IsFinite() || !throughput.IsNonNegative() {
			logger.Warningf("non-finite or negative path throughput after %d bounces, terminating path", pathLength)
			break
		}

		// Russian roulette, with survival probability derived from the
		// just-sampled bounce's own magnitude so it only ever reduces
		// variance in expectation
		if pt.rrMinPathLength > 0 && pathLength >= pt.rrMinPathLength {
			survival := min(value.MaxComponent(), 1.0)
			if s.Get1D() >= survival {
				break
			}
			throughput = throughput.Multiply(1.0 / survival)
		}

		if pt.maxPathLength > 0 && pathLength >= pt.maxPathLength {
			break
		}

		if pathLength >= hardPathLengthLimit {
			logger.Warningf("reached hard path length limit (%d), terminating path", pathLength)
			break
		}

		pathLength++
		prevMode = sample.Mode
		prevPdf = sample.Pdf

		scatteredRay := core.NewRay(current.Point, sample.Incoming)

		slots[slotIndex].Clear()
		slots[slotIndex] = intersector.Trace(scatteredRay)
		current = &slots[slotIndex]
		slotIndex = 1 - slotIndex
	}

	return pathLength
}
