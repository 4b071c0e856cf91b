package pitch

import "fmt"

// Each conversion failure gets its own error type naming the violated
// constraint and echoing the offending input.

type InvalidPitchClassError struct {
	Name string
}

func (e *InvalidPitchClassError) Error() string {
	return fmt.Sprintf("invalid pitch class: %q", e.Name)
}

type InvalidPitchClassNumberError struct {
	Number int
}

func (e *InvalidPitchClassNumberError) Error() string {
	return fmt.Sprintf("invalid pitch class number: %v (must be 0-11)", e.Number)
}

type InvalidMidiError struct {
	Midi int
}

func (e *InvalidMidiError) Error() string {
	return fmt.Sprintf("invalid midi pitch: %v (must be 0-127)", e.Midi)
}

type InvalidPitchNameError struct {
	Name string
}

func (e *InvalidPitchNameError) Error() string {
	return fmt.Sprintf("invalid pitch name: %q (expected e.g. \"C3\", \"Eb-1\", \"f#2\")", e.Name)
}

// OutOfRangeError means the name was well formed but lands outside midi
// 0-127. Distinct from InvalidPitchNameError on purpose.
type OutOfRangeError struct {
	Name string
	Midi int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("pitch %q is midi %v, outside 0-127", e.Name, e.Midi)
}
