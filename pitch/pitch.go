// Package pitch converts between pitch-class names, pitch-class numbers and
// absolute midi pitches. Pitch classes live internally as plain semitone
// ints 0-11; the flat-biased canonical name table is only applied when
// producing text, while input accepts sharp spellings too.
package pitch

import (
	"regexp"
	"strconv"
	"strings"
)

// canonical output spellings, flat-biased
var classNames = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

// accepted input spellings, lowercased
var classNumbers = map[string]int{
	"c": 0, "c#": 1, "db": 1,
	"d": 2, "d#": 3, "eb": 3,
	"e": 4, "f": 5, "f#": 6, "gb": 6,
	"g": 7, "g#": 8, "ab": 8,
	"a": 9, "a#": 10, "bb": 10,
	"b": 11,
}

var pitchNameRe = regexp.MustCompile(`^([a-g][#b]?)(-?[0-9]+)$`)

// NameToSemitone resolves a pitch-class name (case-insensitive, sharp or
// flat) to its semitone number 0-11.
func NameToSemitone(name string) (int, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	semitone, ok := classNumbers[normalized]
	if !ok {
		return 0, &InvalidPitchClassError{Name: name}
	}
	return semitone, nil
}

// SemitoneToName gives the canonical flat-biased name for a semitone 0-11.
func SemitoneToName(n int) (string, error) {
	if n < 0 || n > 11 {
		return "", &InvalidPitchClassNumberError{Number: n}
	}
	return classNames[n], nil
}

// MidiToName renders a midi pitch 0-127 as "<Name><Octave>", where
// midi 60 is "C3" and midi 0 is "C-2".
func MidiToName(midi int) (string, error) {
	if midi < 0 || midi > 127 {
		return "", &InvalidMidiError{Midi: midi}
	}
	octave := midi/12 - 2
	return classNames[midi%12] + strconv.Itoa(octave), nil
}

// NameToMidi parses "<letter><accidental?><signed-octave>" into a midi
// pitch. Malformed text and well-formed-but-out-of-range values fail with
// different errors.
func NameToMidi(text string) (uint8, error) {
	normalized := strings.ToLower(strings.TrimSpace(text))
	m := pitchNameRe.FindStringSubmatch(normalized)
	if m == nil {
		return 0, &InvalidPitchNameError{Name: text}
	}
	semitone, ok := classNumbers[m[1]]
	if !ok {
		// shaped like a pitch but an unrecognized spelling, e.g. "cb" or "e#"
		return 0, &InvalidPitchNameError{Name: text}
	}
	octave, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, &InvalidPitchNameError{Name: text}
	}
	midi := (octave+2)*12 + semitone
	if midi < 0 || midi > 127 {
		return 0, &OutOfRangeError{Name: text, Midi: midi}
	}
	return uint8(midi), nil
}
