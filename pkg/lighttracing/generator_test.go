package lighttracing

import (
	"testing"

	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/geometry"
	"github.com/lumen-render/lumen/pkg/lights"
	"github.com/lumen-render/lumen/pkg/material"
	"github.com/lumen-render/lumen/pkg/renderer"
)

type collectorSink struct {
	samples []core.Sample
}

func (c *collectorSink) AddSample(sample core.Sample) {
	c.samples = append(c.samples, sample)
}

func ceilingLight() *lights.QuadLight {
	edf := material.NewDiffuseEDF(core.NewVec3(10, 10, 10))
	return lights.NewQuadLight(
		core.NewVec3(-0.25, 2, -0.25),
		core.NewVec3(0.5, 0, 0),
		core.NewVec3(0, 0, 0.5),
		edf,
		material.NewEmissiveSurface(edf))
}

func frontCamera() core.Camera {
	return renderer.NewPinholeCamera(renderer.CameraConfig{
		LookFrom:    core.NewVec3(0, 1, 5),
		LookAt:      core.NewVec3(0, 1, 0),
		VUp:         core.NewVec3(0, 1, 0),
		VFov:        40,
		AspectRatio: 1,
		FocalLength: 0.035,
	})
}

func TestGeneratePathSplatsVisibleVertices(t *testing.T) {
	light := ceilingLight()
	floor := geometry.NewQuad(
		core.NewVec3(-3, 0, -3),
		core.NewVec3(0, 0, 6),
		core.NewVec3(6, 0, 0),
		material.NewSurface(material.NewLambertian(core.NewVec3(0.7, 0.7, 0.7))))

	generator := NewGenerator(
		frontCamera(),
		geometry.NewSceneIntersector([]geometry.Shape{floor}),
		lights.NewUniformLightSampler([]core.Light{light}),
		42,
		Config{MaxPathLength: 4})

	sink := &collectorSink{}
	total := 0
	const paths = 200
	for i := 0; i < paths; i++ {
		total += generator.GeneratePath(sink)
	}

	// The light itself faces the camera, so at minimum the light vertex
	// of every path splats
	if total < paths {
		t.Errorf("Expected at least %d samples, got %d", paths, total)
	}
	if len(sink.samples) != total {
		t.Errorf("Expected sink to hold %d samples, got %d", total, len(sink.samples))
	}

	for _, sample := range sink.samples {
		if !sample.Position.InUnitSquare() {
			t.Fatalf("Expected sample inside the unit square, got %v", sample.Position)
		}
		if !sample.Color.IsFinite() || !sample.Color.IsNonNegative() {
			t.Fatalf("Expected finite non-negative radiance, got %v", sample.Color)
		}
	}

	stats := generator.Stats()
	if stats.PathCount != paths {
		t.Errorf("Expected %d paths in statistics, got %d", paths, stats.PathCount)
	}
	if stats.PathLength.Count() != paths {
		t.Errorf("Expected %d path lengths recorded, got %d", paths, stats.PathLength.Count())
	}
	if stats.SampleCount != total {
		t.Errorf("Expected %d samples in statistics, got %d", total, stats.SampleCount)
	}
}

func TestGeneratePathLightBehindCamera(t *testing.T) {
	// The light sits behind the camera, so neither it nor any vertex of
	// an escaping particle can project onto the film
	edf := material.NewDiffuseEDF(core.NewVec3(10, 10, 10))
	light := lights.NewQuadLight(
		core.NewVec3(-0.25, 1, 10),
		core.NewVec3(0.5, 0, 0),
		core.NewVec3(0, 0, 0.5),
		edf,
		material.NewEmissiveSurface(edf))

	generator := NewGenerator(
		frontCamera(),
		geometry.NewSceneIntersector(nil),
		lights.NewUniformLightSampler([]core.Light{light}),
		42,
		Config{MaxPathLength: 4})

	sink := &collectorSink{}
	for i := 0; i < 100; i++ {
		if got := generator.GeneratePath(sink); got != 0 {
			t.Fatalf("Expected 0 samples for invisible light, got %d", got)
		}
	}
	if len(sink.samples) != 0 {
		t.Errorf("Expected empty sink, got %d samples", len(sink.samples))
	}
}

func TestGeneratePathNoLights(t *testing.T) {
	generator := NewGenerator(
		frontCamera(),
		geometry.NewSceneIntersector(nil),
		lights.NewUniformLightSampler(nil),
		42,
		Config{})

	sink := &collectorSink{}
	if got := generator.GeneratePath(sink); got != 0 {
		t.Errorf("Expected 0 samples without lights, got %d", got)
	}
}

func TestGeneratorResetReproducesRender(t *testing.T) {
	light := ceilingLight()
	floor := geometry.NewQuad(
		core.NewVec3(-3, 0, -3),
		core.NewVec3(0, 0, 6),
		core.NewVec3(6, 0, 0),
		material.NewSurface(material.NewLambertian(core.NewVec3(0.7, 0.7, 0.7))))

	generator := NewGenerator(
		frontCamera(),
		geometry.NewSceneIntersector([]geometry.Shape{floor}),
		lights.NewUniformLightSampler([]core.Light{light}),
		7,
		Config{MaxPathLength: 3})

	run := func() []core.Sample {
		sink := &collectorSink{}
		for i := 0; i < 50; i++ {
			generator.GeneratePath(sink)
		}
		return sink.samples
	}

	first := run()
	generator.Reset()
	second := run()

	if len(first) != len(second) {
		t.Fatalf("Expected identical sample counts, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("Sample %d differs after reset: %v vs %v", i, first[i], second[i])
		}
	}

	// Statistics must also be rebuilt from scratch
	if generator.Stats().PathCount != 50 {
		t.Errorf("Expected 50 paths after reset, got %d", generator.Stats().PathCount)
	}
}
