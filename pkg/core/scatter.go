package core

// ScatterMode classifies a sampled BSDF lobe. Values form a bitmask so
// callers can build walks that accept only a subset of modes.
type ScatterMode int

const (
	ScatterDiffuse ScatterMode = 1 << iota
	ScatterGlossy
	ScatterSpecular

	ScatterNone ScatterMode = 0
	ScatterAll              = ScatterDiffuse | ScatterGlossy | ScatterSpecular
)

// Accepts reports whether the given mode is in this mask
func (m ScatterMode) Accepts(mode ScatterMode) bool {
	return m&mode != 0
}

// String returns a readable name for diagnostics
func (m ScatterMode) String() string {
	switch m {
	case ScatterDiffuse:
		return "diffuse"
	case ScatterGlossy:
		return "glossy"
	case ScatterSpecular:
		return "specular"
	case ScatterNone:
		return "none"
	}
	return "mixed"
}

// Pdf is a probability density that is either a finite value or a Dirac
// delta. Perfectly specular lobes sample with a delta density: the value
// cannot be divided by and the sample cannot be reproduced by any other
// technique, which disables both the pdf division and MIS weighting.
type Pdf struct {
	value float64
	delta bool
}

// FinitePdf wraps an ordinary probability density value
func FinitePdf(value float64) Pdf {
	return Pdf{value: value}
}

// DeltaPdf returns the Dirac delta density
func DeltaPdf() Pdf {
	return Pdf{delta: true}
}

// IsDelta reports whether this is a Dirac delta density
func (p Pdf) IsDelta() bool {
	return p.delta
}

// Value returns the finite density value, or 0 for a delta
func (p Pdf) Value() float64 {
	if p.delta {
		return 0
	}
	return p.value
}
