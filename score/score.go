// Package score holds a minimal symbolic score model: parts made of numbered
// measures, measures made of notes. It is the input side of measure-level
// tonal analysis; nothing here parses notation or mutates a score.
package score

import (
	"fmt"
	"strings"
)

// pitchClasses maps note names (sharps with "#", flats with "-") to 0-11.
var pitchClasses = map[string]int{
	"C": 0, "C#": 1, "D-": 1, "D": 2, "D#": 3, "E-": 3,
	"E": 4, "F-": 4, "E#": 5, "F": 5, "F#": 6, "G-": 6,
	"G": 7, "G#": 8, "A-": 8, "A": 9, "A#": 10, "B-": 10,
	"B": 11, "C-": 11, "B#": 0,
}

// Note represents a single pitched note event.
type Note struct {
	Name     string  `json:"name"`     // Pitch name, e.g. "F#", "B-"
	Octave   int     `json:"octave"`   // Scientific octave (4 = middle C octave)
	Quarters float64 `json:"quarters"` // Duration in quarter notes
}

// PitchClass returns the note's pitch class (0=C ... 11=B).
func (n Note) PitchClass() (int, error) {
	name := n.Name
	if name != "" {
		name = strings.ToUpper(name[:1]) + name[1:]
	}
	pc, ok := pitchClasses[name]
	if !ok {
		return 0, fmt.Errorf("unknown pitch name %q", n.Name)
	}
	return pc, nil
}

// Measure represents one numbered measure of a part.
//
// Number follows the score's own convention: 0 for a pickup (anacrusis)
// measure, otherwise numbering starts at 1.
type Measure struct {
	Number int    `json:"number"`
	Notes  []Note `json:"notes"`
}

// HasNotes reports whether the measure contains at least one note.
// Rest-only and empty measures report false.
func (m *Measure) HasNotes() bool {
	return len(m.Notes) > 0
}

// PitchClassDistribution builds a duration-weighted 12-bin pitch class
// histogram of the measure's notes. Notes with unknown names are skipped;
// a note without an explicit duration counts as one quarter.
func (m *Measure) PitchClassDistribution() []float64 {
	dist := make([]float64, 12)
	for _, n := range m.Notes {
		pc, err := n.PitchClass()
		if err != nil {
			continue
		}
		q := n.Quarters
		if q <= 0 {
			q = 1.0
		}
		dist[pc] += q
	}
	return dist
}

// Part represents one voice or instrument line as an ordered measure sequence.
type Part struct {
	ID       string     `json:"id"`
	Measures []*Measure `json:"measures"`
}

// Score represents a piece as one or more parts.
type Score struct {
	Parts []*Part `json:"parts"`
}

// HasMultipleParts reports whether the score has more than one part.
func (s *Score) HasMultipleParts() bool {
	return len(s.Parts) > 1
}

// FirstPart returns the representative part for single-line analysis,
// or nil for an empty score.
func (s *Score) FirstPart() *Part {
	if len(s.Parts) == 0 {
		return nil
	}
	return s.Parts[0]
}

// Measures returns the representative part's ordered measures.
// Multi-part scores are analyzed through their first part.
func (s *Score) Measures() []*Measure {
	p := s.FirstPart()
	if p == nil {
		return nil
	}
	return p.Measures
}
