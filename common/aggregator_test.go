package common

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	agg := NewAggregator()
	dns := TimingFields[4]
	connect := TimingFields[5]

	require.NoError(t, agg.Observe(dns, ""))
	require.NoError(t, agg.Observe(connect, "12.5"))

	assert.Nil(t, agg.Set(dns))
	require.NotNil(t, agg.Set(connect))
	assert.Equal(t, []float64{12.5}, agg.Set(connect).Values())
	assert.Equal(t, []Field{connect}, agg.Fields())

	err := agg.Observe(connect, "fast")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timings.connect")
	assert.Equal(t, 1, agg.Set(connect).N())
}

func TestObserveSkipsNonFiniteAndNegative(t *testing.T) {
	agg := NewAggregator()
	for _, text := range []string{"-5", "-0.1", "NaN", "Inf", "+Inf", "-Inf"} {
		require.NoError(t, agg.Observe(FieldTime, text), text)
	}
	assert.Nil(t, agg.Set(FieldTime))
	assert.Equal(t, "Statistics -> time : # NOT Found", agg.Summarize(FieldTime, 1).String())

	require.NoError(t, agg.Observe(FieldTime, "-5"))
	require.NoError(t, agg.Observe(FieldTime, "7"))
	require.NoError(t, agg.Observe(FieldTime, "0"))
	assert.Equal(t, []float64{7, 0}, agg.Set(FieldTime).Values())
	assert.Equal(t, 0.0, agg.Summarize(FieldTime, 1).Min)
}

func TestFieldsKeyedByContext(t *testing.T) {
	agg := NewAggregator()
	bodySize := Field{Context: "response", Name: "size"}
	require.NoError(t, agg.Observe(FieldSize, "2048"))
	require.NoError(t, agg.Observe(bodySize, "10"))

	assert.Equal(t, 1, agg.Set(FieldSize).N())
	assert.Equal(t, 1, agg.Set(bodySize).N())
	assert.Equal(t, []Field{FieldSize, bodySize}, agg.Fields())
}

func TestSummarizeTwoSamples(t *testing.T) {
	agg := NewAggregator()
	require.NoError(t, agg.Observe(FieldTime, "100"))
	require.NoError(t, agg.Observe(FieldTime, "300"))

	sum := agg.Summarize(FieldTime, ScaleMillis)
	assert.True(t, sum.Found)
	assert.Equal(t, 2, sum.Count)
	assert.Equal(t, 100.0, sum.Min)
	assert.Equal(t, 300.0, sum.Max)
	assert.Equal(t, 200.0, sum.Mean)
	assert.Equal(t, 200.0, sum.Median)
	assert.InDelta(t, 141.42, sum.StdDev, 0.01)
	assert.Equal(t, 300.0, sum.P90)
	assert.Equal(t, 300.0, sum.P99)
}

func TestSummarizeScale(t *testing.T) {
	agg := NewAggregator()
	for _, v := range []string{"1000", "2000", "4500"} {
		require.NoError(t, agg.Observe(FieldSize, v))
	}
	sum := agg.Summarize(FieldSize, ScaleKiloBytes)
	assert.Equal(t, 3, sum.Count)
	assert.Equal(t, 1.0, sum.Min)
	assert.Equal(t, 4.5, sum.Max)
	assert.Equal(t, 2.5, sum.Mean)
	assert.Equal(t, 2.0, sum.Median)

	// non-positive scale behaves like 1
	assert.Equal(t, 4500.0, agg.Summarize(FieldSize, 0).Max)
}

func TestSummarizeOrdering(t *testing.T) {
	agg := NewAggregator()
	for _, v := range []string{"7", "0", "3.5", "120", "9", "9", "44.25"} {
		require.NoError(t, agg.Observe(FieldTime, v))
	}
	sum := agg.Summarize(FieldTime, 1)
	assert.Equal(t, 7, sum.Count)
	assert.LessOrEqual(t, sum.Min, sum.Median)
	assert.LessOrEqual(t, sum.Median, sum.P90)
	assert.LessOrEqual(t, sum.P90, sum.P99)
	assert.LessOrEqual(t, sum.P99, sum.Max)
	assert.LessOrEqual(t, sum.Min, sum.Mean)
	assert.LessOrEqual(t, sum.Mean, sum.Max)
	assert.Equal(t, 9.0, sum.Median)
}

func TestSummaryString(t *testing.T) {
	agg := NewAggregator()
	require.NoError(t, agg.Observe(FieldTime, "100"))
	require.NoError(t, agg.Observe(FieldTime, "300"))

	want := strings.Join([]string{
		"Statistics -> time : #2",
		" Min    = 100.00",
		" Mean   = 200.00",
		" STD    = 141.42",
		" Median = 200.00",
		" 90%    = 300.00",
		" 99%    = 300.00",
		" Max    = 300.00",
	}, "\n")
	assert.Equal(t, want, agg.Summarize(FieldTime, 1).String())
}

func TestReportNotFound(t *testing.T) {
	agg := NewAggregator()
	var buf bytes.Buffer
	require.NoError(t, agg.Report(&buf, TimingFields[6], 1))
	assert.Equal(t, "Statistics -> ssl : # NOT Found\n", buf.String())
	assert.False(t, agg.Summarize(TimingFields[6], 1).Found)
}

func TestReportOrder(t *testing.T) {
	order := ReportOrder()
	require.Len(t, order, 9)
	assert.Equal(t, FieldTime, order[0].Field)
	names := make([]string, 0, len(order))
	for _, tr := range order {
		names = append(names, tr.Name)
	}
	assert.Equal(t, []string{"time", "wait", "receive", "blocked", "send", "dns", "connect", "ssl", "size"}, names)
	assert.Equal(t, ScaleKiloBytes, order[8].Scale)
	assert.Equal(t, ScaleMillis, order[1].Scale)
}
