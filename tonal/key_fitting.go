// Package tonal implements correlation-based key fitting for symbolic music.
// A pitch-class distribution is correlated against rotated major and minor
// key profiles; the best-correlated of the 24 candidate keys wins.
package tonal

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/jacobtylerwalls/music21/key"
	"github.com/jacobtylerwalls/music21/score"
)

// Profile selects the key profile table used for correlation
type Profile int

const (
	ProfileKrumhansl Profile = iota
	ProfileTemperley
	ProfileDiatonic
)

func (p Profile) String() string {
	switch p {
	case ProfileKrumhansl:
		return "Krumhansl-Schmuckler"
	case ProfileTemperley:
		return "Temperley"
	case ProfileDiatonic:
		return "Diatonic"
	default:
		return "Unknown"
	}
}

// profileTemplate holds the untransposed major and minor profiles for a table
type profileTemplate struct {
	major []float64
	minor []float64
}

var profiles = map[Profile]profileTemplate{
	// Krumhansl-Schmuckler profiles (empirically derived)
	ProfileKrumhansl: {
		major: []float64{6.35, 2.23, 3.48, 2.33, 4.38, 4.09, 2.52, 5.19, 2.39, 3.66, 2.29, 2.88},
		minor: []float64{6.33, 2.68, 3.52, 5.38, 2.60, 3.53, 2.54, 4.75, 3.98, 2.69, 3.34, 3.17},
	},
	// Temperley profiles (corpus-based)
	ProfileTemperley: {
		major: []float64{5.0, 2.0, 3.5, 2.0, 4.5, 4.0, 2.0, 4.5, 2.0, 3.5, 1.5, 4.0},
		minor: []float64{5.0, 2.0, 3.5, 4.5, 2.0, 4.0, 2.0, 4.5, 3.5, 2.0, 1.5, 4.0},
	},
	// Diatonic profiles (simple scale-membership weights)
	ProfileDiatonic: {
		major: []float64{5.0, 0.0, 3.0, 0.0, 4.0, 3.5, 0.0, 4.5, 0.0, 3.0, 0.0, 2.0},
		minor: []float64{5.0, 0.0, 3.0, 3.5, 0.0, 3.5, 0.0, 4.5, 3.0, 0.0, 2.0, 0.0},
	},
}

// Hypothesis represents a candidate key with its correlation coefficient
type Hypothesis struct {
	Key         key.Key `json:"key"`
	Coefficient float64 `json:"coefficient"`
}

// FitResult contains the ranked outcome of fitting one distribution
type FitResult struct {
	Best       Hypothesis   `json:"best"`
	Alternates []Hypothesis `json:"alternates"` // Remaining candidates, descending coefficient

	// Quality metrics
	Clarity float64 `json:"clarity"` // (best - second best) / best

	Profile Profile `json:"profile"`
}

// FitParams contains parameters for key fitting
type FitParams struct {
	Profile       Profile `json:"profile"`
	MaxAlternates int     `json:"max_alternates"` // 0 keeps all 23 alternates
}

// DefaultFitParams returns the default fitting parameters
func DefaultFitParams() FitParams {
	return FitParams{
		Profile:       ProfileKrumhansl,
		MaxAlternates: 0,
	}
}

// KeyFitter fits tonal keys to pitch-class distributions
type KeyFitter struct {
	params FitParams
}

// NewKeyFitter creates a key fitter with default parameters
func NewKeyFitter() *KeyFitter {
	return &KeyFitter{params: DefaultFitParams()}
}

// NewKeyFitterWithParams creates a key fitter with custom parameters
func NewKeyFitterWithParams(params FitParams) *KeyFitter {
	return &KeyFitter{params: params}
}

// Params returns the current fitting parameters
func (kf *KeyFitter) Params() FitParams {
	return kf.params
}

// Fit correlates a 12-bin pitch-class distribution with all 24 transposed
// key profiles and returns the ranked hypotheses. The distribution must
// have 12 bins and nonzero variance.
func (kf *KeyFitter) Fit(dist []float64) (*FitResult, error) {
	if len(dist) != 12 {
		return nil, fmt.Errorf("distribution must have 12 bins, got %d", len(dist))
	}
	if floats.Max(dist) == floats.Min(dist) {
		return nil, fmt.Errorf("distribution has no variance, cannot correlate")
	}

	tmpl, ok := profiles[kf.params.Profile]
	if !ok {
		tmpl = profiles[ProfileKrumhansl]
	}

	candidates := make([]Hypothesis, 0, 24)
	for tonic := 0; tonic < 12; tonic++ {
		candidates = append(candidates, Hypothesis{
			Key:         key.New(tonic, key.ModeMajor),
			Coefficient: correlateAtTonic(dist, tmpl.major, tonic),
		})
		candidates = append(candidates, Hypothesis{
			Key:         key.New(tonic, key.ModeMinor),
			Coefficient: correlateAtTonic(dist, tmpl.minor, tonic),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Coefficient > candidates[j].Coefficient
	})

	best := candidates[0]
	alternates := candidates[1:]
	if kf.params.MaxAlternates > 0 && len(alternates) > kf.params.MaxAlternates {
		alternates = alternates[:kf.params.MaxAlternates]
	}

	clarity := 0.0
	if best.Coefficient > 0 {
		clarity = (best.Coefficient - candidates[1].Coefficient) / best.Coefficient
	}

	return &FitResult{
		Best:       best,
		Alternates: alternates,
		Clarity:    clarity,
		Profile:    kf.params.Profile,
	}, nil
}

// FitMeasure fits a key to one measure's duration-weighted distribution.
// Returns an error for measures without notes.
func (kf *KeyFitter) FitMeasure(m *score.Measure) (*FitResult, error) {
	if m == nil || !m.HasNotes() {
		return nil, fmt.Errorf("measure has no notes to fit")
	}
	return kf.Fit(m.PitchClassDistribution())
}

// correlateAtTonic rotates the profile so its tonic lands on the given pitch
// class, then computes the Pearson correlation with the distribution.
func correlateAtTonic(dist, profile []float64, tonic int) float64 {
	rotated := make([]float64, len(profile))
	for pc := range profile {
		rotated[(pc+tonic)%len(profile)] = profile[pc]
	}
	return stat.Correlation(dist, rotated, nil)
}
