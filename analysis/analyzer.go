// Package analysis estimates the local key of a piece measure by measure,
// then smooths the estimates across a window of neighboring measures. Raw
// per-measure fitting tends to overreact to non-chord tones and short
// tonicizations; blending each measure's key coefficients with its
// neighbors', attenuated by distance, yields a far more stable key track.
package analysis

import (
	"errors"
	"fmt"

	"github.com/jacobtylerwalls/music21/key"
	"github.com/jacobtylerwalls/music21/logging"
	"github.com/jacobtylerwalls/music21/score"
	"github.com/jacobtylerwalls/music21/tonal"
)

var (
	// ErrNoScore is returned when an analyzer is constructed without a score.
	ErrNoScore = errors.New("analysis: need a score to initialize")

	// ErrNoMeasures is returned when the score's representative part
	// contains no measures.
	ErrNoMeasures = errors.New("analysis: score must have measures inside it")
)

// RawEstimate is one measure's unsmoothed key estimate: the best-fit
// hypothesis plus the remaining candidates in rank order.
type RawEstimate struct {
	Primary    tonal.Hypothesis
	Alternates []tonal.Hypothesis
}

// Estimator is the per-measure key-fitting collaborator. EstimateMeasure
// returns ok=false when the measure yields no estimate (no notes).
type Estimator interface {
	EstimateMeasure(m *score.Measure) (*RawEstimate, bool)
}

// fitterEstimator adapts a tonal.KeyFitter to the Estimator interface.
type fitterEstimator struct {
	fitter *tonal.KeyFitter
}

func (fe *fitterEstimator) EstimateMeasure(m *score.Measure) (*RawEstimate, bool) {
	res, err := fe.fitter.FitMeasure(m)
	if err != nil {
		return nil, false
	}
	return &RawEstimate{Primary: res.Best, Alternates: res.Alternates}, true
}

// KeyAnalyzer estimates and smooths the key of a score measure by measure.
//
// WindowSize (default 4) controls how many measures on each side vote on a
// measure's key. Make it larger for pieces with few key changes (a Mozart
// sonata movement), smaller for pieces with many (a Bach chorale), or derive
// it from NumMeasures. WeightFunc (default Divide) controls how a neighbor's
// vote decays with distance. Both may be changed between Run calls; they
// only affect the smoothing pass, so the interpretation cache stays valid
// across such changes. Swapping the estimator or editing the score requires
// Reset (or a new analyzer).
//
// A KeyAnalyzer is not safe for concurrent use.
type KeyAnalyzer struct {
	WindowSize int
	WeightFunc WeightFunc

	score     *score.Score
	measures  []*score.Measure
	estimator Estimator
	logger    logging.Logger

	rawByMeasure    []*RawEstimate
	rawDone         bool
	interpretations map[int]*Interpretation
}

// NewKeyAnalyzer creates an analyzer over the score's representative part
// using the default correlation key fitter.
func NewKeyAnalyzer(s *score.Score) (*KeyAnalyzer, error) {
	return NewKeyAnalyzerWithEstimator(s, &fitterEstimator{fitter: tonal.NewKeyFitter()})
}

// NewKeyAnalyzerWithEstimator creates an analyzer with a custom per-measure
// estimator.
func NewKeyAnalyzerWithEstimator(s *score.Score, e Estimator) (*KeyAnalyzer, error) {
	if s == nil {
		return nil, ErrNoScore
	}
	measures := s.Measures()
	if len(measures) == 0 {
		return nil, ErrNoMeasures
	}
	if e == nil {
		e = &fitterEstimator{fitter: tonal.NewKeyFitter()}
	}
	return &KeyAnalyzer{
		WindowSize:      4,
		WeightFunc:      Divide,
		score:           s,
		measures:        measures,
		estimator:       e,
		logger:          logging.GetGlobalLogger().WithFields(logging.Fields{"component": "key_analyzer"}),
		interpretations: make(map[int]*Interpretation),
	}, nil
}

// NumMeasures returns the number of measures under analysis, including
// measures without notes.
func (ka *KeyAnalyzer) NumMeasures() int {
	return len(ka.measures)
}

// Run performs the raw estimation pass followed by the smoothing pass and
// returns one resolved key per measure that had notes, in measure order.
func (ka *KeyAnalyzer) Run() ([]key.Key, error) {
	ka.rawEstimates()
	return ka.smoothKeyByMeasure()
}

// Reset clears both caches so the next access recomputes from the current
// score and estimator.
func (ka *KeyAnalyzer) Reset() {
	ka.rawByMeasure = nil
	ka.rawDone = false
	ka.interpretations = make(map[int]*Interpretation)
}

// RawEstimates returns the memoized per-measure raw estimates, index-aligned
// with the measure sequence. Entries for measures without notes are nil.
func (ka *KeyAnalyzer) RawEstimates() []*RawEstimate {
	return ka.rawEstimates()
}

// RawKeyByMeasure returns the unsmoothed best-fit key per measure,
// index-aligned with the measure sequence; nil for measures without notes.
func (ka *KeyAnalyzer) RawKeyByMeasure() []*key.Key {
	raw := ka.rawEstimates()
	keys := make([]*key.Key, len(raw))
	for i, est := range raw {
		if est == nil {
			continue
		}
		k := est.Primary.Key
		keys[i] = &k
	}
	return keys
}

// rawEstimates runs the estimator over every measure once and memoizes the
// aligned result sequence for the analyzer's lifetime.
func (ka *KeyAnalyzer) rawEstimates() []*RawEstimate {
	if ka.rawDone {
		return ka.rawByMeasure
	}
	estimates := make([]*RawEstimate, len(ka.measures))
	estimated := 0
	for i, m := range ka.measures {
		if !m.HasNotes() {
			continue
		}
		if est, ok := ka.estimator.EstimateMeasure(m); ok {
			estimates[i] = est
			estimated++
		}
	}
	ka.rawByMeasure = estimates
	ka.rawDone = true
	ka.logger.Debug("raw key estimation complete", logging.Fields{
		"measures":  len(ka.measures),
		"estimated": estimated,
	})
	return estimates
}

// InterpretationByMeasure returns an independent copy of the ranked
// key-to-coefficient distribution for a measure, addressed by the score's
// own measure number. When anacrusis is true the numbering is 0-based
// (pickup measure present) and the number is also the positional index;
// otherwise numbering starts at 1 and the index is number-1.
//
// Returns nil for measures without an estimate. The copy is the caller's to
// mutate; the cached original is never handed out.
func (ka *KeyAnalyzer) InterpretationByMeasure(mNumber int, anacrusis bool) *Interpretation {
	if cached, ok := ka.interpretations[mNumber]; ok {
		return cached.Clone()
	}
	raw := ka.rawEstimates()
	i := mNumber
	if !anacrusis {
		i = mNumber - 1
	}
	if i < 0 || i >= len(raw) {
		return nil
	}
	est := raw[i]
	if est == nil {
		return nil
	}
	interp := NewInterpretation()
	interp.Set(est.Primary.Key.Name(), est.Primary.Coefficient)
	for _, alt := range est.Alternates {
		interp.Set(alt.Key.Name(), alt.Coefficient)
	}
	ka.interpretations[mNumber] = interp
	return interp.Clone()
}

// resolveKey converts a winning key name back into a key object.
func resolveKey(name string) (key.Key, error) {
	k, err := key.Parse(name)
	if err != nil {
		return key.Key{}, fmt.Errorf("analysis: estimator produced unresolvable key name %q: %w", name, err)
	}
	return k, nil
}
