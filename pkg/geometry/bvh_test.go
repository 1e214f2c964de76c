package geometry

import (
	"math/rand"
	"testing"

	"github.com/lumen-render/lumen/pkg/core"
)

func TestBVHMatchesLinearScan(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	// A cloud of random spheres, enough to force internal nodes
	var shapes []Shape
	for i := 0; i < 100; i++ {
		center := core.NewVec3(
			rng.Float64()*20-10,
			rng.Float64()*20-10,
			rng.Float64()*20-10,
		)
		shapes = append(shapes, NewSphere(center, 0.5, nil))
	}

	bvh := NewBVH(shapes)

	for i := 0; i < 200; i++ {
		origin := core.NewVec3(rng.Float64()*30-15, rng.Float64()*30-15, 25)
		direction := core.NewVec3(rng.Float64()-0.5, rng.Float64()-0.5, -1).Normalize()
		ray := core.NewRay(origin, direction)

		bvhHit, bvhOK := bvh.Hit(ray, 0.001, 1e9)

		// Brute force reference
		var closest *HitRecord
		closestT := 1e9
		for _, shape := range shapes {
			if rec, ok := shape.Hit(ray, 0.001, closestT); ok {
				closest = rec
				closestT = rec.T
			}
		}

		if bvhOK != (closest != nil) {
			t.Fatalf("Ray %d: BVH hit=%v, linear scan hit=%v", i, bvhOK, closest != nil)
		}
		if bvhOK && bvhHit.T != closest.T {
			t.Fatalf("Ray %d: BVH t=%v, linear scan t=%v", i, bvhHit.T, closest.T)
		}
	}
}

func TestBVHEmpty(t *testing.T) {
	bvh := NewBVH(nil)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if _, ok := bvh.Hit(ray, 0.001, 1e9); ok {
		t.Error("Expected no hit from empty BVH")
	}
}

func TestSphereHit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1, nil)

	hit, ok := sphere.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 0.001, 1e9)
	if !ok {
		t.Fatal("Expected hit for ray through sphere center")
	}
	if hit.T != 4 {
		t.Errorf("Expected t=4, got %v", hit.T)
	}
	if !hit.FrontFace {
		t.Error("Expected front face hit from outside")
	}
	if hit.Normal != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected normal (0,0,1), got %v", hit.Normal)
	}

	if _, ok := sphere.Hit(core.NewRay(core.NewVec3(0, 3, 0), core.NewVec3(0, 0, -1)), 0.001, 1e9); ok {
		t.Error("Expected miss for ray passing above sphere")
	}
}

func TestQuadHit(t *testing.T) {
	quad := NewQuad(core.NewVec3(-1, 0, -1), core.NewVec3(2, 0, 0), core.NewVec3(0, 0, 2), nil)

	hit, ok := quad.Hit(core.NewRay(core.NewVec3(0.5, 2, 0.5), core.NewVec3(0, -1, 0)), 0.001, 1e9)
	if !ok {
		t.Fatal("Expected hit inside quad bounds")
	}
	if hit.T != 2 {
		t.Errorf("Expected t=2, got %v", hit.T)
	}

	if _, ok := quad.Hit(core.NewRay(core.NewVec3(5, 2, 0), core.NewVec3(0, -1, 0)), 0.001, 1e9); ok {
		t.Error("Expected miss outside quad bounds")
	}

	// Parallel ray never hits the plane
	if _, ok := quad.Hit(core.NewRay(core.NewVec3(0, 2, 0), core.NewVec3(1, 0, 0)), 0.001, 1e9); ok {
		t.Error("Expected miss for ray parallel to quad")
	}
}

func TestSceneIntersector(t *testing.T) {
	near := NewSphere(core.NewVec3(0, 0, -3), 1, nil)
	far := NewSphere(core.NewVec3(0, 0, -8), 1, nil)
	intersector := NewSceneIntersector([]Shape{far, near})

	sp := intersector.Trace(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)))
	if !sp.Hit {
		t.Fatal("Expected hit")
	}
	if sp.Point.Z != -2 {
		t.Errorf("Expected closest hit at z=-2, got %v", sp.Point.Z)
	}
	if sp.GeometricNormal != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected normal (0,0,1), got %v", sp.GeometricNormal)
	}

	miss := intersector.Trace(core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, 1, 0)))
	if miss.Hit {
		t.Error("Expected miss for ray leaving the scene")
	}
	if miss.Ray.Direction != core.NewVec3(0, 1, 0) {
		t.Error("Expected ray to be preserved on miss")
	}
}
