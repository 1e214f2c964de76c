package core

import (
	"math"
	"testing"
)

func TestSampleCosineHemisphere(t *testing.T) {
	normal := NewVec3(0, 1, 0)
	basis := NewBasis(normal)
	s := NewSampler(42)

	sum := 0.0
	const n = 10000
	for i := 0; i < n; i++ {
		dir := SampleCosineHemisphere(basis, s.Get2D())

		if math.Abs(dir.Length()-1.0) > 1e-9 {
			t.Fatalf("Expected unit direction, got length %v", dir.Length())
		}

		cos := dir.Dot(normal)
		if cos < 0 {
			t.Fatalf("Expected direction above surface, got cos %v", cos)
		}
		sum += cos
	}

	// Cosine-weighted sampling has E[cos] = 2/3
	mean := sum / n
	if math.Abs(mean-2.0/3.0) > 0.01 {
		t.Errorf("Expected mean cosine near 2/3, got %v", mean)
	}
}

func TestCosineHemispherePdf(t *testing.T) {
	if got := CosineHemispherePdf(1.0); math.Abs(got-1.0/math.Pi) > 1e-12 {
		t.Errorf("Expected 1/pi at normal incidence, got %v", got)
	}
	if got := CosineHemispherePdf(-0.5); got != 0 {
		t.Errorf("Expected 0 below the surface, got %v", got)
	}
}

func TestSampleUniformSphere(t *testing.T) {
	s := NewSampler(42)

	mean := Vec3{}
	const n = 20000
	for i := 0; i < n; i++ {
		dir := SampleUniformSphere(s.Get2D())
		if math.Abs(dir.Length()-1.0) > 1e-9 {
			t.Fatalf("Expected unit direction, got length %v", dir.Length())
		}
		mean = mean.Add(dir)
	}

	// Uniform directions should average out to near zero
	mean = mean.Multiply(1.0 / n)
	if mean.Length() > 0.02 {
		t.Errorf("Expected near-zero mean direction, got %v", mean)
	}
}

func TestPowerHeuristic(t *testing.T) {
	// Symmetric densities split the weight evenly
	if got := PowerHeuristic(1, 0.5, 1, 0.5); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("Expected 0.5 for equal densities, got %v", got)
	}

	// Complementary weights sum to one
	w1 := PowerHeuristic(1, 0.8, 1, 0.2)
	w2 := PowerHeuristic(1, 0.2, 1, 0.8)
	if math.Abs(w1+w2-1.0) > 1e-12 {
		t.Errorf("Expected complementary weights to sum to 1, got %v", w1+w2)
	}

	// A dominant density takes nearly all of the weight
	if got := PowerHeuristic(1, 100, 1, 0.01); got < 0.99 {
		t.Errorf("Expected weight near 1 for dominant density, got %v", got)
	}

	// Degenerate case: both densities zero
	if got := PowerHeuristic(1, 0, 1, 0); got != 0 {
		t.Errorf("Expected 0 for zero densities, got %v", got)
	}

	// Sample counts scale the effective densities
	if got := PowerHeuristic(4, 0.25, 1, 1); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("Expected 0.5 with matching effective densities, got %v", got)
	}
}
