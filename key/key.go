package key

import (
	"fmt"
	"strings"
)

// Mode represents major or minor mode
type Mode int

const (
	ModeMajor Mode = iota
	ModeMinor
)

func (m Mode) String() string {
	switch m {
	case ModeMajor:
		return "major"
	case ModeMinor:
		return "minor"
	default:
		return "unknown"
	}
}

// pitchClasses maps canonical pitch names to pitch class numbers (0=C ... 11=B).
// Flats use the "-" suffix convention ("E-" is E flat).
var pitchClasses = map[string]int{
	"C": 0, "C#": 1, "D-": 1, "D": 2, "D#": 3, "E-": 3,
	"E": 4, "F-": 4, "E#": 5, "F": 5, "F#": 6, "G-": 6,
	"G": 7, "G#": 8, "A-": 8, "A": 9, "A#": 10, "B-": 10,
	"B": 11, "C-": 11, "B#": 0,
}

// sharpNames is the canonical spelling used when converting a pitch class
// back into a name.
var sharpNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Key represents a tonal key: a tonic pitch name plus a mode.
// The zero value is C major.
type Key struct {
	Tonic string `json:"tonic"` // Tonic pitch name, always upper-case ("F#", "B-")
	Mode  Mode   `json:"mode"`  // Major or Minor
}

// tonic returns the tonic name, defaulting the zero value to "C".
func (k Key) tonic() string {
	if k.Tonic == "" {
		return "C"
	}
	return k.Tonic
}

// New builds a Key from a pitch class and mode using sharp spellings.
func New(pitchClass int, mode Mode) Key {
	pc := ((pitchClass % 12) + 12) % 12
	return Key{Tonic: sharpNames[pc], Mode: mode}
}

// Name returns the case-sensitive key identifier: the tonic name upper-case
// for major keys and lower-case for minor keys, so "A" is A major and "a"
// is A minor. Two keys are equal iff their names match, and Parse inverts
// this exactly.
func (k Key) Name() string {
	t := k.tonic()
	if k.Mode == ModeMinor {
		return strings.ToLower(t[:1]) + t[1:]
	}
	return t
}

// String returns a human-readable form such as "f# minor".
func (k Key) String() string {
	return fmt.Sprintf("%s %s", k.Name(), k.Mode)
}

// PitchClass returns the tonic's pitch class (0=C ... 11=B).
func (k Key) PitchClass() (int, error) {
	t := k.tonic()
	pc, ok := pitchClasses[strings.ToUpper(t[:1])+t[1:]]
	if !ok {
		return 0, fmt.Errorf("unknown tonic name %q", k.Tonic)
	}
	return pc, nil
}

// Parse reconstructs a Key from its case-sensitive identifier.
// Round-trip invariant: Parse(k.Name()).Name() == k.Name().
func Parse(name string) (Key, error) {
	if name == "" {
		return Key{}, fmt.Errorf("empty key name")
	}
	mode := ModeMajor
	if name[:1] == strings.ToLower(name[:1]) {
		mode = ModeMinor
	}
	tonic := strings.ToUpper(name[:1]) + name[1:]
	if _, ok := pitchClasses[tonic]; !ok {
		return Key{}, fmt.Errorf("unknown key name %q", name)
	}
	return Key{Tonic: tonic, Mode: mode}, nil
}

// Relative returns the relative major/minor key.
func (k Key) Relative() Key {
	pc, err := k.PitchClass()
	if err != nil {
		return k
	}
	if k.Mode == ModeMajor {
		return New(pc-3, ModeMinor)
	}
	return New(pc+3, ModeMajor)
}

// Parallel returns the parallel major/minor key.
func (k Key) Parallel() Key {
	if k.Mode == ModeMajor {
		return Key{Tonic: k.Tonic, Mode: ModeMinor}
	}
	return Key{Tonic: k.Tonic, Mode: ModeMajor}
}

// Dominant returns the key a perfect fifth above, same mode.
func (k Key) Dominant() Key {
	pc, err := k.PitchClass()
	if err != nil {
		return k
	}
	return New(pc+7, k.Mode)
}

// Subdominant returns the key a perfect fifth below, same mode.
func (k Key) Subdominant() Key {
	pc, err := k.PitchClass()
	if err != nil {
		return k
	}
	return New(pc-7, k.Mode)
}
