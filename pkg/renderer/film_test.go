package renderer

import (
	"math"
	"testing"

	"github.com/lumen-render/lumen/pkg/core"
)

func TestFilmAddSample(t *testing.T) {
	film := NewFilm(10, 10)

	// NDC (0.55, 0.25) lands in pixel (5, 2)
	film.AddSample(core.Sample{Position: core.NewVec2(0.55, 0.25), Color: core.NewVec3(1, 2, 3), Alpha: 1})
	film.AddSample(core.Sample{Position: core.NewVec2(0.551, 0.251), Color: core.NewVec3(1, 0, 0), Alpha: 1})

	got := film.PixelColor(5, 2)
	if got != core.NewVec3(2, 2, 3) {
		t.Errorf("Expected accumulated color (2,2,3), got %v", got)
	}

	if other := film.PixelColor(0, 0); other != (core.Vec3{}) {
		t.Errorf("Expected untouched pixel to be zero, got %v", other)
	}
}

func TestFilmRejectsOutOfBounds(t *testing.T) {
	film := NewFilm(4, 4)

	film.AddSample(core.Sample{Position: core.NewVec2(1.0, 0.5), Color: core.NewVec3(1, 1, 1)})
	film.AddSample(core.Sample{Position: core.NewVec2(-0.1, 0.5), Color: core.NewVec3(1, 1, 1)})
	film.AddSample(core.Sample{Position: core.NewVec2(0.5, 1.5), Color: core.NewVec3(1, 1, 1)})

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if film.PixelColor(x, y) != (core.Vec3{}) {
				t.Fatalf("Expected pixel (%d,%d) untouched by out-of-bounds samples", x, y)
			}
		}
	}
}

func TestFilmDevelopScaling(t *testing.T) {
	film := NewFilm(2, 2)

	// One splat of radiance 1 in one pixel, 4 paths traced over a 4 pixel
	// film: the estimate for that pixel is 1 * 4/4 = 1
	film.AddSample(core.Sample{Position: core.NewVec2(0.25, 0.25), Color: core.NewVec3(1, 1, 1), Alpha: 1})

	img := film.Develop(4, 1.0)

	c := img.RGBAAt(0, 0)
	if c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("Expected white pixel, got %v", c)
	}

	empty := img.RGBAAt(1, 1)
	if empty.R != 0 || empty.G != 0 || empty.B != 0 {
		t.Errorf("Expected black pixel where nothing splatted, got %v", empty)
	}
}

func TestFilmDevelopGamma(t *testing.T) {
	film := NewFilm(1, 1)
	film.AddSample(core.Sample{Position: core.NewVec2(0.5, 0.5), Color: core.NewVec3(0.5, 0.5, 0.5), Alpha: 1})

	img := film.Develop(1, 1.0)

	expected := uint8(math.Min(255, math.Pow(0.5, 1/2.2)*256))
	if c := img.RGBAAt(0, 0); c.R != expected {
		t.Errorf("Expected gamma-corrected value %d, got %d", expected, c.R)
	}
}

func TestFilmDevelopNoPaths(t *testing.T) {
	film := NewFilm(2, 2)
	film.AddSample(core.Sample{Position: core.NewVec2(0.25, 0.25), Color: core.NewVec3(1, 1, 1)})

	// Zero traced paths means there is no estimate to normalize by
	img := film.Develop(0, 1.0)
	if c := img.RGBAAt(0, 0); c.R != 0 {
		t.Errorf("Expected black image for zero paths, got %v", c)
	}
}

func TestRescale(t *testing.T) {
	film := NewFilm(4, 4)
	img := film.Develop(1, 1.0)

	scaled := Rescale(img, 8, 8)
	if scaled.Bounds().Dx() != 8 || scaled.Bounds().Dy() != 8 {
		t.Errorf("Expected 8x8 image, got %v", scaled.Bounds())
	}

	// Same size passes through unchanged
	same := Rescale(img, 4, 4)
	if same != img {
		t.Error("Expected identical image back for same-size rescale")
	}
}
