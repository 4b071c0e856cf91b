// Package compiler turns a Score tree into a flat, timestamped Event list.
// It runs two passes: modifier resolution (inheritance down the tree) and
// timeline flattening (sequential cursor per voice). The compiler trusts
// its input; validating pitches, velocities and durations is the producing
// grammar's job.
package compiler

import (
	"github.com/jsphweid/seqc/model"
)

// Compile flattens every voice of the score, each independently timed from
// beat 0, and concatenates the results in voice order.
func Compile(score model.Score) []model.Event {
	var events []model.Event
	for _, voice := range score.Voices {
		resolved := resolveVoice(voice, inherited{})
		voiceEvents, _ := flatten(resolved, model.NewBeats(0, 1))
		events = append(events, voiceEvents...)
	}
	return events
}

// CompileVoice compiles a single voice from beat 0.
func CompileVoice(voice model.Voice) []model.Event {
	return Compile(model.SingleVoice(voice))
}
