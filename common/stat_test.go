package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentile(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	for _, tc := range []struct {
		p    float64
		want float64
	}{
		{p: 50, want: 5.5},
		{p: 90, want: 9.9},
		{p: 99, want: 10},
		{p: 100, want: 10},
		{p: 5, want: 1},
		{p: 25, want: 2.75},
	} {
		assert.InDelta(t, tc.want, percentile(sorted, tc.p), 1e-9, "p%v", tc.p)
	}
	assert.True(t, math.IsNaN(percentile(nil, 50)))
	assert.True(t, math.IsNaN(percentile(sorted, 0)))
	assert.True(t, math.IsNaN(percentile(sorted, 101)))
	assert.Equal(t, 42.0, percentile([]float64{42}, 99))
}

func TestSampleSet(t *testing.T) {
	var s SampleSet
	assert.Equal(t, 0, s.N())
	assert.True(t, math.IsNaN(s.Min()))
	assert.True(t, math.IsNaN(s.Mean()))
	assert.True(t, math.IsNaN(s.StdDev()))

	s.Add(4)
	assert.Equal(t, 0.0, s.StdDev())

	for _, v := range []float64{2, 4, 4, 5, 5, 7, 9} {
		s.Add(v)
	}
	assert.Equal(t, 8, s.N())
	assert.Equal(t, 2.0, s.Min())
	assert.Equal(t, 9.0, s.Max())
	assert.Equal(t, 5.0, s.Mean())
	// sample variance 32/7
	assert.InDelta(t, math.Sqrt(32.0/7.0), s.StdDev(), 1e-12)
	assert.Equal(t, 4.5, s.Percentile(50))

	// arrival order is kept
	assert.Equal(t, []float64{4, 2, 4, 4, 5, 5, 7, 9}, s.Values())
}

func TestECDF(t *testing.T) {
	samples := []float64{3, 1, 2, 2}
	xys := ECDF(samples)
	assert.Equal(t, []float64{3, 1, 2, 2}, samples)
	assert.Len(t, xys, 4)
	assert.Equal(t, 1.0, xys[0].X)
	assert.Equal(t, 0.25, xys[0].Y)
	assert.Equal(t, 2.0, xys[1].X)
	assert.Equal(t, 0.75, xys[1].Y)
	assert.Equal(t, 3.0, xys[3].X)
	assert.Equal(t, 1.0, xys[3].Y)
}
