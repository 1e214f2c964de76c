package stats

import (
	"math"
)

// Population tracks the running statistics of a stream of values
// without storing them
type Population struct {
	count int
	min   float64
	max   float64
	sum   float64
	sqSum float64
}

// Insert adds a value to the population
func (p *Population) Insert(value float64) {
	if p.count == 0 || value < p.min {
		p.min = value
	}
	if p.count == 0 || value > p.max {
		p.max = value
	}
	p.count++
	p.sum += value
	p.sqSum += value * value
}

// Count returns the number of inserted values
func (p *Population) Count() int {
	return p.count
}

// Min returns the smallest inserted value, 0 for an empty population
func (p *Population) Min() float64 {
	return p.min
}

// Max returns the largest inserted value, 0 for an empty population
func (p *Population) Max() float64 {
	return p.max
}

// Mean returns the average of the inserted values
func (p *Population) Mean() float64 {
	if p.count == 0 {
		return 0
	}
	return p.sum / float64(p.count)
}

// Variance returns the population variance
func (p *Population) Variance() float64 {
	if p.count == 0 {
		return 0
	}
	mean := p.Mean()
	v := p.sqSum/float64(p.count) - mean*mean
	// Guard against negative values from floating point cancellation
	return math.Max(v, 0)
}

// StdDev returns the population standard deviation
func (p *Population) StdDev() float64 {
	return math.Sqrt(p.Variance())
}

// Clear resets the population to empty
func (p *Population) Clear() {
	*p = Population{}
}
