package geometry

import (
	"math"

	"github.com/lumen-render/lumen/pkg/core"
)

// Self-intersection epsilon applied as tMin on every traced ray
const rayEpsilon = 1e-4

// SceneIntersector implements core.Intersector over a BVH of shapes
type SceneIntersector struct {
	bvh *BVH
}

// NewSceneIntersector builds an intersector for a set of shapes
func NewSceneIntersector(shapes []Shape) *SceneIntersector {
	return &SceneIntersector{bvh: NewBVH(shapes)}
}

// Trace intersects a ray with the scene and produces a shading point.
// A miss yields a point with Hit=false and the ray preserved.
func (si *SceneIntersector) Trace(ray core.Ray) core.ShadingPoint {
	hit, isHit := si.bvh.Hit(ray, rayEpsilon, math.Inf(1))
	if !isHit {
		return core.ShadingPoint{Ray: ray}
	}

	// Shading normal equals the geometric normal for analytic shapes;
	// both already face the ray origin via SetFaceNormal
	return core.ShadingPoint{
		Hit:             true,
		Point:           hit.Point,
		GeometricNormal: hit.Normal,
		ShadingNormal:   hit.Normal,
		Basis:           core.NewBasis(hit.Normal),
		UV:              hit.UV,
		Material:        hit.Material,
		Ray:             ray,
	}
}
