package renderer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/draw"

	"github.com/lumen-render/lumen/pkg/core"
)

// Film accumulates image-plane samples into a pixel grid. Splatted
// radiance is averaged per pixel by the number of light paths traced,
// not by the per-pixel sample count: a pixel nothing reached is simply
// black.
type Film struct {
	width  int
	height int
	pixels []pixelAccum
}

type pixelAccum struct {
	color core.Vec3
	alpha float64
}

// NewFilm creates a film with the given resolution
func NewFilm(width, height int) *Film {
	return &Film{
		width:  width,
		height: height,
		pixels: make([]pixelAccum, width*height),
	}
}

// Width returns the horizontal resolution
func (f *Film) Width() int { return f.width }

// Height returns the vertical resolution
func (f *Film) Height() int { return f.height }

// AddSample accumulates one sample. Samples outside [0,1)^2 are
// discarded.
func (f *Film) AddSample(sample core.Sample) {
	if !sample.Position.InUnitSquare() {
		return
	}

	x := int(sample.Position.X * float64(f.width))
	y := int(sample.Position.Y * float64(f.height))

	p := &f.pixels[y*f.width+x]
	p.color = p.color.Add(sample.Color)
	p.alpha += sample.Alpha
}

// Accumulate adds a batch of samples
func (f *Film) Accumulate(samples []core.Sample) {
	for _, sample := range samples {
		f.AddSample(sample)
	}
}

// PixelColor returns the raw accumulated color of a pixel
func (f *Film) PixelColor(x, y int) core.Vec3 {
	return f.pixels[y*f.width+x].color
}

// Develop converts the accumulated radiance to an 8-bit image. Each
// pixel's estimate is the sum of its splats scaled by
// pixelCount/pathCount, since every traced light path had a chance to
// splat anywhere on the film.
func (f *Film) Develop(pathCount int, exposure float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))

	scale := 0.0
	if pathCount > 0 {
		scale = exposure * float64(f.width*f.height) / float64(pathCount)
	}

	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			radiance := f.pixels[y*f.width+x].color.Multiply(scale)
			img.SetRGBA(x, y, vec3ToColor(radiance))
		}
	}

	return img
}

// Rescale resamples an image to a new resolution with a high quality
// filter
func Rescale(img *image.RGBA, width, height int) *image.RGBA {
	if img.Bounds().Dx() == width && img.Bounds().Dy() == height {
		return img
	}
	scaled := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Over, nil)
	return scaled
}

// WritePNG writes an image to disk
func WritePNG(img *image.RGBA, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}

// vec3ToColor converts linear radiance to an sRGB display color
func vec3ToColor(v core.Vec3) color.RGBA {
	corrected := v.Clamp(0, 1).GammaCorrect(2.2)

	return color.RGBA{
		R: uint8(math.Min(255, corrected.X*256)),
		G: uint8(math.Min(255, corrected.Y*256)),
		B: uint8(math.Min(255, corrected.Z*256)),
		A: 255,
	}
}
