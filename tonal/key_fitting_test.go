package tonal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacobtylerwalls/music21/score"
)

// distFromPitchClasses builds an equal-weight distribution over the given
// pitch classes.
func distFromPitchClasses(t *testing.T, pcs ...int) []float64 {
	t.Helper()
	dist := make([]float64, 12)
	for _, pc := range pcs {
		dist[pc] += 1.0
	}
	return dist
}

func TestFitCMajorScale(t *testing.T) {
	kf := NewKeyFitter()
	// C D E F G A B, equal weights.
	res, err := kf.Fit(distFromPitchClasses(t, 0, 2, 4, 5, 7, 9, 11))
	require.NoError(t, err)

	assert.Equal(t, "C", res.Best.Key.Name())
	// The relative minor is the strongest competitor for a flat diatonic set.
	require.NotEmpty(t, res.Alternates)
	assert.Equal(t, "a", res.Alternates[0].Key.Name())
	assert.Len(t, res.Alternates, 23)
}

func TestFitCMajorTriad(t *testing.T) {
	kf := NewKeyFitter()
	dist := make([]float64, 12)
	dist[0] = 2.0
	dist[4] = 1.5
	dist[7] = 1.5
	res, err := kf.Fit(dist)
	require.NoError(t, err)
	assert.Equal(t, "C", res.Best.Key.Name())
	assert.Greater(t, res.Clarity, 0.0)
}

func TestFitMinorLeaningDistribution(t *testing.T) {
	kf := NewKeyFitter()
	dist := make([]float64, 12)
	dist[9] = 2.0 // A
	dist[0] = 1.5 // C
	dist[4] = 1.5 // E
	dist[11] = 0.5
	dist[2] = 0.5
	res, err := kf.Fit(dist)
	require.NoError(t, err)
	assert.Equal(t, "a", res.Best.Key.Name())
}

func TestFitAlternatesDescending(t *testing.T) {
	kf := NewKeyFitter()
	res, err := kf.Fit(distFromPitchClasses(t, 0, 2, 4, 5, 7, 9, 11))
	require.NoError(t, err)

	prev := res.Best.Coefficient
	for _, alt := range res.Alternates {
		assert.LessOrEqual(t, alt.Coefficient, prev)
		prev = alt.Coefficient
	}
}

func TestFitMaxAlternates(t *testing.T) {
	kf := NewKeyFitterWithParams(FitParams{Profile: ProfileTemperley, MaxAlternates: 3})
	res, err := kf.Fit(distFromPitchClasses(t, 0, 4, 7))
	require.NoError(t, err)
	assert.Len(t, res.Alternates, 3)
	assert.Equal(t, ProfileTemperley, res.Profile)
}

func TestFitErrors(t *testing.T) {
	kf := NewKeyFitter()

	_, err := kf.Fit([]float64{1, 2, 3})
	assert.Error(t, err)

	_, err = kf.Fit(make([]float64, 12))
	assert.Error(t, err, "zero-variance distribution cannot be correlated")
}

func TestFitMeasure(t *testing.T) {
	kf := NewKeyFitter()
	m := &score.Measure{Number: 1, Notes: []score.Note{
		{Name: "C", Quarters: 2},
		{Name: "E", Quarters: 1.5},
		{Name: "G", Quarters: 1.5},
	}}
	res, err := kf.FitMeasure(m)
	require.NoError(t, err)
	assert.Equal(t, "C", res.Best.Key.Name())

	_, err = kf.FitMeasure(&score.Measure{Number: 2})
	assert.Error(t, err)
	_, err = kf.FitMeasure(nil)
	assert.Error(t, err)
}

func TestProfileString(t *testing.T) {
	assert.Equal(t, "Krumhansl-Schmuckler", ProfileKrumhansl.String())
	assert.Equal(t, "Temperley", ProfileTemperley.String())
	assert.Equal(t, "Diatonic", ProfileDiatonic.String())
}
