package geometry

import (
	"math"

	"github.com/lumen-render/lumen/pkg/core"
)

// Quad represents a rectangular surface defined by a corner and two edge vectors
type Quad struct {
	Corner   core.Vec3     // One corner of the quad
	U        core.Vec3     // First edge vector
	V        core.Vec3     // Second edge vector
	Normal   core.Vec3     // Unit normal (U × V direction)
	Material core.Material // Material of the quad
	d        float64       // Plane equation constant: normal · p = d
	w        core.Vec3     // Cached vector for barycentric coordinates
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, material core.Material) *Quad {
	normal := u.Cross(v).Normalize()
	d := normal.Dot(corner)

	cross := u.Cross(v)
	w := normal.Multiply(1.0 / normal.Dot(cross))

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Normal:   normal,
		Material: material,
		d:        d,
		w:        w,
	}
}

// Area returns the surface area of the quad
func (q *Quad) Area() float64 {
	return q.U.Cross(q.V).Length()
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	denominator := ray.Direction.Dot(q.Normal)

	// Parallel rays never intersect the plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := (q.d - ray.Origin.Dot(q.Normal)) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	hitPoint := ray.At(t)
	hitVector := hitPoint.Subtract(q.Corner)

	alpha := q.w.Dot(hitVector.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(hitVector))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return nil, false
	}

	hitRecord := &HitRecord{
		T:        t,
		Point:    hitPoint,
		UV:       core.NewVec2(alpha, beta),
		Material: q.Material,
	}
	hitRecord.SetFaceNormal(ray, q.Normal)

	return hitRecord, true
}

// BoundingBox returns the axis-aligned bounding box for this quad
func (q *Quad) BoundingBox() AABB {
	corner2 := q.Corner.Add(q.U).Add(q.V)
	box := AABB{
		Min: core.Vec3{
			X: math.Min(q.Corner.X, corner2.X),
			Y: math.Min(q.Corner.Y, corner2.Y),
			Z: math.Min(q.Corner.Z, corner2.Z),
		},
		Max: core.Vec3{
			X: math.Max(q.Corner.X, corner2.X),
			Y: math.Max(q.Corner.Y, corner2.Y),
			Z: math.Max(q.Corner.Z, corner2.Z),
		},
	}

	// Pad so axis-aligned quads still have a non-degenerate box
	const pad = 1e-4
	size := box.Size()
	if size.X < pad {
		box.Min.X -= pad
		box.Max.X += pad
	}
	if size.Y < pad {
		box.Min.Y -= pad
		box.Max.Y += pad
	}
	if size.Z < pad {
		box.Min.Z -= pad
		box.Max.Z += pad
	}

	return box
}
