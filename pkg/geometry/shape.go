package geometry

import (
	"github.com/lumen-render/lumen/pkg/core"
)

// HitRecord contains information about a ray-shape intersection
type HitRecord struct {
	T         float64       // Parameter t along the ray
	Point     core.Vec3     // Point of intersection
	Normal    core.Vec3     // Surface normal, flipped toward the ray origin
	UV        core.Vec2     // Surface parameterization at the hit
	FrontFace bool          // Whether the ray hit the front face
	Material  core.Material // Material of the hit shape (may be nil)
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
}

// Shape is anything a ray can intersect
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool)
	BoundingBox() AABB
}
