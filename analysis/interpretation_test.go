package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpretationInsertionOrder(t *testing.T) {
	p := NewInterpretation()
	p.Set("A", 0.9)
	p.Set("f#", 0.8)
	p.Set("E", 0.7)
	assert.Equal(t, []string{"A", "f#", "E"}, p.Names())
	assert.Equal(t, 3, p.Len())

	// Re-setting an existing name updates the value, not the order.
	p.Set("f#", 0.95)
	assert.Equal(t, []string{"A", "f#", "E"}, p.Names())
	c, ok := p.Coefficient("f#")
	require.True(t, ok)
	assert.Equal(t, 0.95, c)
}

func TestInterpretationBest(t *testing.T) {
	p := NewInterpretation()
	p.Set("A", 0.9)
	p.Set("f#", 0.8)
	name, ok := p.Best()
	require.True(t, ok)
	assert.Equal(t, "A", name)

	p.Accumulate("f#", 0.2)
	name, _ = p.Best()
	assert.Equal(t, "f#", name)
}

func TestInterpretationBestTieFirstSeen(t *testing.T) {
	p := NewInterpretation()
	p.Set("b", 0.5)
	p.Set("A", 0.5)
	name, ok := p.Best()
	require.True(t, ok)
	assert.Equal(t, "b", name, "ties resolve to the earliest-inserted hypothesis")
}

func TestInterpretationBestEmpty(t *testing.T) {
	_, ok := NewInterpretation().Best()
	assert.False(t, ok)
}

func TestInterpretationCloneIndependence(t *testing.T) {
	orig := NewInterpretation()
	orig.Set("A", 0.9)
	orig.Set("f#", 0.8)

	clone := orig.Clone()
	clone.Accumulate("A", 1.0)
	clone.Set("E", 0.4)

	c, _ := orig.Coefficient("A")
	assert.Equal(t, 0.9, c, "mutating the clone must not touch the original")
	_, ok := orig.Coefficient("E")
	assert.False(t, ok)
	assert.Equal(t, 2, orig.Len())
}

func TestInterpretationAccumulateUnknownInserts(t *testing.T) {
	p := NewInterpretation()
	p.Accumulate("A", 0.3)
	c, ok := p.Coefficient("A")
	require.True(t, ok)
	assert.Equal(t, 0.3, c)
}
