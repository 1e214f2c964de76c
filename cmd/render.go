package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli"

	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/geometry"
	"github.com/lumen-render/lumen/pkg/lighttracing"
	"github.com/lumen-render/lumen/pkg/lights"
	"github.com/lumen-render/lumen/pkg/material"
	"github.com/lumen-render/lumen/pkg/renderer"
)

// RenderFrame renders the built-in demonstration scene with light
// tracing and writes the result to a PNG file
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	width := ctx.Int("width")
	height := ctx.Int("height")
	totalPaths := ctx.Int("paths")
	seed := ctx.Int64("seed")
	numWorkers := ctx.Int("workers")
	if numWorkers <= 0 {
		numWorkers = renderer.DefaultWorkerCount()
	}

	config := lighttracing.Config{
		RRMinPathLength: ctx.Int("rr-min-path-length"),
		MaxPathLength:   ctx.Int("max-path-length"),
	}

	camera, intersector, lightSampler := buildDemoScene(float64(width) / float64(height))

	// One generator per worker, each with its own seeded sampler
	generators := make([]renderer.SampleGenerator, numWorkers)
	for i := range generators {
		generators[i] = lighttracing.NewGenerator(
			camera, intersector, lightSampler, seed+int64(i), config)
	}

	logger.Infof("tracing %d light paths on %d workers", totalPaths, numWorkers)
	start := time.Now()

	queue := renderer.NewSampleQueue()
	pool := renderer.NewGeneratorPool(generators)
	stats := pool.Run(context.Background(), totalPaths, queue)

	film := renderer.NewFilm(width, height)
	film.Accumulate(queue.All())

	img := film.Develop(stats.PathCount, ctx.Float64("exposure"))
	if scale := ctx.Float64("scale"); scale != 1.0 {
		img = renderer.Rescale(img, int(float64(width)*scale), int(float64(height)*scale))
	}

	out := ctx.String("out")
	if err := renderer.WritePNG(img, out); err != nil {
		return err
	}

	logger.Infof("wrote %s in %s", out, time.Since(start))
	fmt.Printf("frame statistics\n%s", stats.Summary())
	return nil
}

// buildDemoScene assembles a Cornell-style box: colored side walls, a
// mirror and a matte sphere, a translucent veil and one area light in
// the ceiling
func buildDemoScene(aspectRatio float64) (core.Camera, core.Intersector, core.LightSampler) {
	white := material.NewSurface(material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73)))
	red := material.NewSurface(material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05)))
	green := material.NewSurface(material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15)))
	mirror := material.NewSurface(material.NewMirror(core.NewVec3(0.9, 0.9, 0.9)))

	// A partially transparent diffuse panel in front of the matte sphere
	veil := &material.Surface{
		BSDF:    material.NewLambertian(core.NewVec3(0.8, 0.8, 0.9)),
		Opacity: 0.35,
	}

	shapes := []geometry.Shape{
		// Floor, ceiling and back wall; corner/edge order picks the
		// inward-facing normal
		geometry.NewQuad(core.NewVec3(-1, 0, -1), core.NewVec3(0, 0, 2), core.NewVec3(2, 0, 0), white),
		geometry.NewQuad(core.NewVec3(-1, 2, -1), core.NewVec3(2, 0, 0), core.NewVec3(0, 0, 2), white),
		geometry.NewQuad(core.NewVec3(-1, 0, -1), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), white),
		geometry.NewQuad(core.NewVec3(-1, 0, -1), core.NewVec3(0, 2, 0), core.NewVec3(0, 0, 2), red),
		geometry.NewQuad(core.NewVec3(1, 0, -1), core.NewVec3(0, 0, 2), core.NewVec3(0, 2, 0), green),

		geometry.NewSphere(core.NewVec3(-0.45, 0.4, -0.35), 0.4, mirror),
		geometry.NewSphere(core.NewVec3(0.45, 0.35, 0.25), 0.35, white),
		geometry.NewQuad(core.NewVec3(0.05, 0, 0.7), core.NewVec3(0, 0.9, 0), core.NewVec3(0.8, 0, 0), veil),
	}

	edf := material.NewDiffuseEDF(core.NewVec3(15, 15, 12))
	light := lights.NewQuadLight(
		core.NewVec3(-0.3, 1.999, -0.3),
		core.NewVec3(0.6, 0, 0),
		core.NewVec3(0, 0, 0.6),
		edf,
		material.NewEmissiveSurface(edf))
	shapes = append(shapes, light)

	camera := renderer.NewPinholeCamera(renderer.CameraConfig{
		LookFrom:    core.NewVec3(0, 1, 3.4),
		LookAt:      core.NewVec3(0, 1, 0),
		VUp:         core.NewVec3(0, 1, 0),
		VFov:        40,
		AspectRatio: aspectRatio,
		FocalLength: 0.035,
	})

	intersector := geometry.NewSceneIntersector(shapes)
	lightSampler := lights.NewUniformLightSampler([]core.Light{light})

	return camera, intersector, lightSampler
}
