package model

// SequenceElement is the closed set of things that can appear in a Voice.
// The marker method keeps the union closed to this package so both compiler
// passes can type-switch over it exhaustively.
type SequenceElement interface {
	sequenceElement()
}

// Note is a single pitch. Duration, Velocity and TimeUntilNext are nil when
// unset; the compiler fills them from ancestors or global defaults.
type Note struct {
	Pitch         uint8
	Duration      *Beats
	Velocity      *uint8
	TimeUntilNext *Beats
}

// ChordNote is one member of a Chord. It can carry its own duration and
// velocity but never its own TimeUntilNext; the chord advances as a whole.
type ChordNote struct {
	Pitch    uint8
	Duration *Beats
	Velocity *uint8
}

// Chord is a non-empty set of notes sounding at the same instant.
type Chord struct {
	Notes         []ChordNote
	Duration      *Beats
	Velocity      *uint8
	TimeUntilNext *Beats
}

// Rest advances time without emitting anything.
type Rest struct {
	Duration *Beats
}

// Grouping applies modifiers to its content without affecting layout.
type Grouping struct {
	Content       []SequenceElement
	Duration      *Beats
	Velocity      *uint8
	TimeUntilNext *Beats
}

// Repetition plays its content Repeat times back to back.
type Repetition struct {
	Content       []SequenceElement
	Repeat        int
	Duration      *Beats
	Velocity      *uint8
	TimeUntilNext *Beats
}

func (Note) sequenceElement()       {}
func (Chord) sequenceElement()      {}
func (Rest) sequenceElement()       {}
func (Grouping) sequenceElement()   {}
func (Repetition) sequenceElement() {}

// Voice is one sequential line, laid out from beat 0.
type Voice []SequenceElement

// Score is one or more voices performed simultaneously.
type Score struct {
	Voices []Voice
}

// SingleVoice wraps one voice as a Score.
func SingleVoice(v Voice) Score {
	return Score{Voices: []Voice{v}}
}
