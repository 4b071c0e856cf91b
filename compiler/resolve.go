package compiler

import "github.com/jsphweid/seqc/model"

// inherited is the modifier set carried down the tree during pass 1. Nil
// fields mean "nothing inherited yet"; they stay nil all the way down so
// pass 2 can apply the global defaults.
type inherited struct {
	duration      *model.Beats
	velocity      *uint8
	timeUntilNext *model.Beats
}

func pickBeats(own, fallback *model.Beats) *model.Beats {
	if own != nil {
		return own
	}
	return fallback
}

func pickVelocity(own, fallback *uint8) *uint8 {
	if own != nil {
		return own
	}
	return fallback
}

func resolveVoice(voice model.Voice, inh inherited) model.Voice {
	resolved := make(model.Voice, len(voice))
	for i, el := range voice {
		resolved[i] = resolveElement(el, inh)
	}
	return resolved
}

// resolveElement returns a copy of el with every modifier either explicit,
// inherited, or still nil for pass 2 defaulting. The input is never mutated.
func resolveElement(el model.SequenceElement, inh inherited) model.SequenceElement {
	switch e := el.(type) {
	case model.Note:
		return model.Note{
			Pitch:         e.Pitch,
			Duration:      pickBeats(e.Duration, inh.duration),
			Velocity:      pickVelocity(e.Velocity, inh.velocity),
			TimeUntilNext: pickBeats(e.TimeUntilNext, inh.timeUntilNext),
		}
	case model.Rest:
		// rests ignore velocity
		return model.Rest{Duration: pickBeats(e.Duration, inh.duration)}
	case model.Chord:
		// the chord's own modifiers resolve first; inner notes then resolve
		// against the chord's resolved values, not its raw fields
		duration := pickBeats(e.Duration, inh.duration)
		velocity := pickVelocity(e.Velocity, inh.velocity)
		notes := make([]model.ChordNote, len(e.Notes))
		for i, n := range e.Notes {
			notes[i] = model.ChordNote{
				Pitch:    n.Pitch,
				Duration: pickBeats(n.Duration, duration),
				Velocity: pickVelocity(n.Velocity, velocity),
			}
		}
		return model.Chord{
			Notes:         notes,
			Duration:      duration,
			Velocity:      velocity,
			TimeUntilNext: pickBeats(e.TimeUntilNext, inh.timeUntilNext),
		}
	case model.Grouping:
		next := inherited{
			duration:      pickBeats(e.Duration, inh.duration),
			velocity:      pickVelocity(e.Velocity, inh.velocity),
			timeUntilNext: pickBeats(e.TimeUntilNext, inh.timeUntilNext),
		}
		return model.Grouping{
			Content:       resolveVoice(model.Voice(e.Content), next),
			Duration:      next.duration,
			Velocity:      next.velocity,
			TimeUntilNext: next.timeUntilNext,
		}
	case model.Repetition:
		// resolved once; every repeated playback reuses the same set
		next := inherited{
			duration:      pickBeats(e.Duration, inh.duration),
			velocity:      pickVelocity(e.Velocity, inh.velocity),
			timeUntilNext: pickBeats(e.TimeUntilNext, inh.timeUntilNext),
		}
		return model.Repetition{
			Content:       resolveVoice(model.Voice(e.Content), next),
			Repeat:        e.Repeat,
			Duration:      next.duration,
			Velocity:      next.velocity,
			TimeUntilNext: next.timeUntilNext,
		}
	default:
		panic("resolveElement: unhandled sequence element")
	}
}
