package lighting

import (
	"github.com/lumen-render/lumen/pkg/core"
)

// Transmission below this value is treated as fully occluded
const minTransmission = 1e-6

// Tracer computes transmission factors through alpha-transparent
// surfaces. Each crossing multiplies the factor by 1-alpha, so the
// result is exact and consumes no randomness; the first opaque hit ends
// the walk.
type Tracer struct {
	intersector core.Intersector
}

// NewTracer creates a transmission tracer
func NewTracer(intersector core.Intersector) *Tracer {
	return &Tracer{intersector: intersector}
}

// Trace follows a ray until it escapes or hits an opaque surface.
// Returns the terminating shading point (Hit=false if the ray escaped)
// and the accumulated transmission factor.
func (t *Tracer) Trace(origin, direction core.Vec3) (core.ShadingPoint, float64) {
	transmission := 1.0
	ray := core.NewRay(origin, direction)

	for {
		shadingPoint := t.intersector.Trace(ray)
		if !shadingPoint.Hit {
			return shadingPoint, transmission
		}

		// Surfaces without a material block everything
		alpha := 1.0
		if shadingPoint.Material != nil {
			alpha = shadingPoint.Material.Alpha(shadingPoint.UV)
		}

		transmission *= 1.0 - alpha
		if transmission < minTransmission {
			return shadingPoint, 0
		}

		ray = core.NewRay(shadingPoint.Point, direction)
	}
}

// TraceBetween computes the transmission between two points, 0 when the
// segment is blocked by an opaque surface
func (t *Tracer) TraceBetween(origin, target core.Vec3) float64 {
	segment := target.Subtract(origin)
	distance := segment.Length()
	if distance == 0 {
		return 1
	}
	direction := segment.Multiply(1.0 / distance)

	transmission := 1.0
	ray := core.NewRay(origin, direction)
	remaining := distance

	for {
		shadingPoint := t.intersector.Trace(ray)
		if !shadingPoint.Hit {
			return transmission
		}

		// Hits at or beyond the target do not occlude the segment
		traveled := shadingPoint.Point.Subtract(ray.Origin).Length()
		if traveled >= remaining-1e-6 {
			return transmission
		}

		alpha := 1.0
		if shadingPoint.Material != nil {
			alpha = shadingPoint.Material.Alpha(shadingPoint.UV)
		}

		transmission *= 1.0 - alpha
		if transmission < minTransmission {
			return 0
		}

		remaining -= traveled
		ray = core.NewRay(shadingPoint.Point, direction)
	}
}
