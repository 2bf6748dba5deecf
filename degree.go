package fundamental

import (
	"errors"
	"fmt"
	"sort"

	"gitlab.com/gomidi/midi/v2"
)

type (
	// DegreeTable maps scale degree tokens such as "b3" or "#4" to their
	// offset from the root in semitones, 0 - 11.
	DegreeTable map[string]int

	// Mask tells which of the 12 semitones of an octave are enabled. Index 0
	// is the root, index 11 the major seventh.
	Mask [SemitonesPerOctave]bool

	// DegreeError is returned when a scale uses a degree token that is not in
	// the degree table.
	DegreeError struct {
		Scale string
		Token string
	}
)

const SemitonesPerOctave = 12

var (
	ErrUnknownDegree = errors.New("unknown scale degree")
	ErrSemitoneRange = errors.New("semitone out of range")
)

// Degrees returns the degree tokens of the scale table with their semitone
// offsets. Enharmonic spellings share an offset, e.g. "#1" and "b2".
func Degrees() DegreeTable {
	return DegreeTable{
		"1":   0,
		"#1":  1,
		"b2":  1,
		"2":   2,
		"#2":  3,
		"b3":  3,
		"3":   4,
		"b4":  4,
		"4":   5,
		"#4":  6,
		"b5":  6,
		"5":   7,
		"#5":  8,
		"b6":  8,
		"6":   9,
		"bb7": 9,
		"#6":  10,
		"b7":  10,
		"7":   11,
	}
}

func (e *DegreeError) Error() string {
	return fmt.Sprintf("scale %q: %v %q", e.Scale, ErrUnknownDegree, e.Token)
}

func (e *DegreeError) Unwrap() error { return ErrUnknownDegree }

// Semitone returns the semitone offset of a degree token.
func (t DegreeTable) Semitone(token string) (int, error) {
	s, ok := t[token]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownDegree, token)
	}
	if s < 0 || s >= SemitonesPerOctave {
		return 0, fmt.Errorf("degree %q maps to %d: %w", token, s, ErrSemitoneRange)
	}
	return s, nil
}

// Mask returns the enabled note mask of the scale. The first token missing
// from the table aborts with a *DegreeError.
func (t DegreeTable) Mask(scale Scale) (Mask, error) {
	var m Mask
	for _, token := range scale.Tokens() {
		s, err := t.Semitone(token)
		if errors.Is(err, ErrUnknownDegree) {
			return Mask{}, &DegreeError{Scale: scale.Name, Token: token}
		}
		if err != nil {
			return Mask{}, fmt.Errorf("scale %q: %w", scale.Name, err)
		}
		m[s] = true
	}
	return m, nil
}

// Tokens returns all tokens of the table, sorted by semitone and then by
// spelling.
func (t DegreeTable) Tokens() []string {
	ret := make([]string, 0, len(t))
	for k := range t {
		ret = append(ret, k)
	}
	sort.Slice(ret, func(i, j int) bool {
		if t[ret[i]] != t[ret[j]] {
			return t[ret[i]] < t[ret[j]]
		}
		return ret[i] < ret[j]
	})
	return ret
}

// Semitones returns the enabled semitone offsets, ascending.
func (m Mask) Semitones() []int {
	ret := []int{}
	for i, on := range m {
		if on {
			ret = append(ret, i)
		}
	}
	return ret
}

// Notes names the enabled semitones as if the root was C.
func (m Mask) Notes() []string {
	ret := []string{}
	for _, s := range m.Semitones() {
		ret = append(ret, midi.Note(s).Name())
	}
	return ret
}

// String draws the mask as 12 characters, "x" for enabled and "." for
// disabled semitones.
func (m Mask) String() string {
	b := make([]byte, SemitonesPerOctave)
	for i, on := range m {
		b[i] = '.'
		if on {
			b[i] = 'x'
		}
	}
	return string(b)
}
