package common

import (
	"math"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot/plotter"
)

//ECDF of the samples; the input slice is left untouched
func ECDF(samples []float64) plotter.XYs {
	sorted := sortedCopy(samples)
	n := len(sorted)
	ecdfs := make(plotter.XYs, n)
	for i := 0; i < n; i++ {
		ecdfs[i].X = sorted[i]
		ecdfs[i].Y = stat.CDF(sorted[i], stat.Empirical, sorted, nil)
	}
	return ecdfs
}

func sortedCopy(samples []float64) []float64 {
	sorted := slices.Clone(samples)
	slices.Sort(sorted)
	return sorted
}

// SampleSet holds the values observed for one field, in arrival order.
// Every value is >= 0; negative inputs are dropped before they get here.
type SampleSet struct {
	values []float64
}

func (s *SampleSet) Add(v float64) {
	s.values = append(s.values, v)
}

func (s *SampleSet) N() int { return len(s.values) }

// Values returns a copy of the samples.
func (s *SampleSet) Values() []float64 { return slices.Clone(s.values) }

func (s *SampleSet) Min() float64 {
	if len(s.values) == 0 {
		return math.NaN()
	}
	return floats.Min(s.values)
}

func (s *SampleSet) Max() float64 {
	if len(s.values) == 0 {
		return math.NaN()
	}
	return floats.Max(s.values)
}

func (s *SampleSet) Mean() float64 {
	if len(s.values) == 0 {
		return math.NaN()
	}
	return stat.Mean(s.values, nil)
}

// StdDev is the sample standard deviation (n-1 denominator). A single
// sample has no spread.
func (s *SampleSet) StdDev() float64 {
	switch len(s.values) {
	case 0:
		return math.NaN()
	case 1:
		return 0
	}
	_, std := stat.MeanStdDev(s.values, nil)
	return std
}

// Percentile estimates the p-th percentile (0 < p <= 100) by linear
// interpolation between order statistics at rank p(n+1)/100.
func (s *SampleSet) Percentile(p float64) float64 {
	return percentile(sortedCopy(s.values), p)
}

func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 || p <= 0 || p > 100 || math.IsNaN(p) {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}
	pos := p * float64(n+1) / 100
	if pos < 1 {
		return sorted[0]
	}
	if pos >= float64(n) {
		return sorted[n-1]
	}
	fpos := math.Floor(pos)
	lower := sorted[int(fpos)-1]
	upper := sorted[int(fpos)]
	return lower + (pos-fpos)*(upper-lower)
}
