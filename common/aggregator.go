package common

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Aggregator collects samples per field during one conversion run.
// It is not safe for concurrent use.
type Aggregator struct {
	sets map[Field]*SampleSet
}

func NewAggregator() *Aggregator {
	return &Aggregator{sets: make(map[Field]*SampleSet)}
}

// Observe records text as a sample of field. Empty text records nothing, nor
// do negative, NaN or infinite values: every stored sample is >= 0.
func (a *Aggregator) Observe(field Field, text string) error {
	if text == "" {
		return nil
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return errors.Wrapf(err, "observe %s", field)
	}
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	set, ok := a.sets[field]
	if !ok {
		set = &SampleSet{}
		a.sets[field] = set
	}
	set.Add(v)
	return nil
}

// Set returns the samples of field, nil if it was never observed.
func (a *Aggregator) Set(field Field) *SampleSet {
	return a.sets[field]
}

// Fields lists the observed fields sorted by context then name.
func (a *Aggregator) Fields() []Field {
	fields := maps.Keys(a.sets)
	slices.SortFunc(fields, func(x, y Field) int {
		if c := strings.Compare(x.Context, y.Context); c != 0 {
			return c
		}
		return strings.Compare(x.Name, y.Name)
	})
	return fields
}

// Summary is the scaled descriptive statistics of one field.
type Summary struct {
	Field  Field   `json:"field"`
	Scale  float64 `json:"scale"`
	Found  bool    `json:"found"`
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std"`
	Median float64 `json:"median"`
	P90    float64 `json:"p90"`
	P99    float64 `json:"p99"`
	Max    float64 `json:"max"`
}

// Summarize computes the statistics of field with every value divided by
// scale. A scale <= 0 is treated as 1.
func (a *Aggregator) Summarize(field Field, scale float64) Summary {
	if scale <= 0 {
		scale = 1
	}
	sum := Summary{Field: field, Scale: scale}
	set := a.sets[field]
	if set == nil || set.N() == 0 {
		return sum
	}
	sorted := sortedCopy(set.values)
	sum.Found = true
	sum.Count = set.N()
	sum.Min = sorted[0] / scale
	sum.Max = sorted[len(sorted)-1] / scale
	sum.Mean = set.Mean() / scale
	sum.StdDev = set.StdDev() / scale
	sum.Median = percentile(sorted, 50) / scale
	sum.P90 = percentile(sorted, 90) / scale
	sum.P99 = percentile(sorted, 99) / scale
	return sum
}

func (s Summary) String() string {
	if !s.Found {
		return fmt.Sprintf("Statistics -> %s : # NOT Found", s.Field.Name)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Statistics -> %s : #%d", s.Field.Name, s.Count)
	for _, line := range []struct {
		label string
		v     float64
	}{
		{"Min   ", s.Min},
		{"Mean  ", s.Mean},
		{"STD   ", s.StdDev},
		{"Median", s.Median},
		{"90%   ", s.P90},
		{"99%   ", s.P99},
		{"Max   ", s.Max},
	} {
		fmt.Fprintf(&b, "\n %s = %.2f", line.label, line.v)
	}
	return b.String()
}

// Report writes the summary of field, followed by a newline, to w.
func (a *Aggregator) Report(w io.Writer, field Field, scale float64) error {
	_, err := fmt.Fprintln(w, a.Summarize(field, scale).String())
	return err
}
