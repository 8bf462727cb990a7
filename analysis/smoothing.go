package analysis

import (
	"github.com/jacobtylerwalls/music21/key"
	"github.com/jacobtylerwalls/music21/logging"
)

// smoothKeyByMeasure aggregates each measure's key coefficients with its
// neighbors' within +/-WindowSize, re-weighted by distance, and emits the
// winning key per measure in traversal order. Measures without an estimate
// are skipped and do not appear in the output.
//
// The vote space for a measure is fixed to its own hypotheses: neighbors can
// reinforce or suppress candidates the measure proposed, but never introduce
// new ones. A neighbor that lacks one of the base hypotheses contributes
// zero for it.
func (ka *KeyAnalyzer) smoothKeyByMeasure() ([]key.Key, error) {
	weight := ka.WeightFunc
	if weight == nil {
		weight = Divide
	}

	// The numbering mode is decided once per run from the first measure:
	// number 0 means a pickup measure and 0-based numbering throughout.
	maxMNum := len(ka.measures)
	anacrusis := false
	if ka.measures[0].Number == 0 {
		anacrusis = true
		maxMNum--
	}

	smoothed := make([]key.Key, 0, len(ka.measures))
	for _, m := range ka.measures {
		i := m.Number
		base := ka.InterpretationByMeasure(i, anacrusis)
		if base == nil {
			continue
		}
		for j := -ka.WindowSize; j <= ka.WindowSize; j++ {
			mNum := i + j
			// Guard the neighbor number before any lookup: inside the
			// piece, not the base measure itself, and measure 0 only
			// exists when there is a pickup.
			if mNum < 0 || mNum > maxMNum || mNum == i || (!anacrusis && mNum == 0) {
				continue
			}
			neighbor := ka.InterpretationByMeasure(mNum, anacrusis)
			if neighbor == nil {
				continue
			}
			for _, name := range base.Names() {
				coefficient, ok := neighbor.Coefficient(name)
				if !ok {
					continue
				}
				base.Accumulate(name, weight(coefficient, j))
			}
		}
		bestName, ok := base.Best()
		if !ok {
			continue
		}
		k, err := resolveKey(bestName)
		if err != nil {
			return nil, err
		}
		smoothed = append(smoothed, k)
	}

	ka.logger.Debug("smoothing pass complete", logging.Fields{
		"window_size": ka.WindowSize,
		"anacrusis":   anacrusis,
		"emitted":     len(smoothed),
	})
	return smoothed, nil
}
