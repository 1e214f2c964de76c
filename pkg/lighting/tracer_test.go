package lighting

import (
	"math"
	"testing"

	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/geometry"
	"github.com/lumen-render/lumen/pkg/material"
)

func veilQuad(opacity float64, z float64) geometry.Shape {
	surface := &material.Surface{
		BSDF:    material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)),
		Opacity: opacity,
	}
	return geometry.NewQuad(
		core.NewVec3(-5, -5, z),
		core.NewVec3(10, 0, 0),
		core.NewVec3(0, 10, 0),
		surface)
}

func TestTracerClearPath(t *testing.T) {
	tracer := NewTracer(geometry.NewSceneIntersector(nil))

	sp, transmission := tracer.Trace(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if sp.Hit {
		t.Error("Expected no hit in empty scene")
	}
	if transmission != 1 {
		t.Errorf("Expected full transmission, got %v", transmission)
	}
}

func TestTracerOpaqueBlocks(t *testing.T) {
	tracer := NewTracer(geometry.NewSceneIntersector([]geometry.Shape{veilQuad(1, -2)}))

	sp, transmission := tracer.Trace(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if !sp.Hit {
		t.Fatal("Expected hit on opaque quad")
	}
	if transmission != 0 {
		t.Errorf("Expected zero transmission through opaque surface, got %v", transmission)
	}
}

func TestTracerStackedTransparency(t *testing.T) {
	// Two veils with alpha 0.25 each: transmission = 0.75^2
	shapes := []geometry.Shape{veilQuad(0.25, -2), veilQuad(0.25, -4)}
	tracer := NewTracer(geometry.NewSceneIntersector(shapes))

	sp, transmission := tracer.Trace(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if sp.Hit {
		t.Error("Expected ray to escape through both veils")
	}
	if math.Abs(transmission-0.5625) > 1e-12 {
		t.Errorf("Expected transmission 0.5625, got %v", transmission)
	}
}

func TestTracerBetween(t *testing.T) {
	shapes := []geometry.Shape{veilQuad(0.5, -2)}
	tracer := NewTracer(geometry.NewSceneIntersector(shapes))

	// Segment crossing the veil
	got := tracer.TraceBetween(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -5))
	if math.Abs(got-0.5) > 1e-12 {
		t.Errorf("Expected transmission 0.5 across veil, got %v", got)
	}

	// Segment stopping short of the veil
	got = tracer.TraceBetween(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if got != 1 {
		t.Errorf("Expected full transmission short of veil, got %v", got)
	}

	// Segment ending exactly on the veil should not count it as an
	// occluder
	got = tracer.TraceBetween(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -2))
	if got != 1 {
		t.Errorf("Expected full transmission to point on veil, got %v", got)
	}

	// Opaque surface blocks the segment entirely
	opaque := NewTracer(geometry.NewSceneIntersector([]geometry.Shape{veilQuad(1, -2)}))
	if got := opaque.TraceBetween(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -5)); got != 0 {
		t.Errorf("Expected zero transmission through opaque surface, got %v", got)
	}
}
