package common

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalResult(t *testing.T) {
	agg := NewAggregator()
	require.NoError(t, agg.Observe(FieldTime, "100"))
	require.NoError(t, agg.Observe(FieldTime, "300"))
	in := []Summary{agg.Summarize(FieldTime, 1), agg.Summarize(FieldSize, ScaleKiloBytes)}

	r, err := MarshalResult(in)
	require.NoError(t, err)
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Contains(t, string(b), "\n  ")
	assert.NotContains(t, string(b), "\t")

	var out []Summary
	require.NoError(t, UnMarshalResult(bytes.NewReader(b), &out))
	assert.Equal(t, in, out)
}
