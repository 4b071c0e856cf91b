package compiler

import (
	"math/big"

	"github.com/jsphweid/seqc/constants"
	"github.com/jsphweid/seqc/model"
)

func durationOrDefault(d *model.Beats) *model.Beats {
	if d != nil {
		return d
	}
	return model.NewBeats(constants.DefaultDurationBeats, 1)
}

func velocityOrDefault(v *uint8) uint8 {
	if v != nil {
		return *v
	}
	return constants.DefaultVelocity
}

func addBeats(a, b *model.Beats) *model.Beats {
	return (*model.Beats)(new(big.Rat).Add(a.Rat(), b.Rat()))
}

// flatten lays out pass-1-resolved elements starting at start and returns
// the events plus the elapsed span. The cursor only ever moves forward.
func flatten(elements model.Voice, start *model.Beats) ([]model.Event, *model.Beats) {
	var events []model.Event
	t := start.Copy()
	for _, el := range elements {
		switch e := el.(type) {
		case model.Rest:
			t = addBeats(t, durationOrDefault(e.Duration))
		case model.Note:
			duration := durationOrDefault(e.Duration)
			events = append(events, model.Event{
				Pitch:     e.Pitch,
				StartTime: t.Copy(),
				Duration:  duration.Copy(),
				Velocity:  velocityOrDefault(e.Velocity),
			})
			advance := duration
			if e.TimeUntilNext != nil {
				advance = e.TimeUntilNext
			}
			t = addBeats(t, advance)
		case model.Chord:
			// all notes share the chord's start; the cursor advances once,
			// by the longest of the inner durations and the chord's own
			var longest *model.Beats
			if e.Duration != nil {
				longest = e.Duration
			}
			for _, n := range e.Notes {
				duration := durationOrDefault(pickBeats(n.Duration, e.Duration))
				if longest == nil || duration.Cmp(longest) > 0 {
					longest = duration
				}
				events = append(events, model.Event{
					Pitch:     n.Pitch,
					StartTime: t.Copy(),
					Duration:  duration.Copy(),
					Velocity:  velocityOrDefault(pickVelocity(n.Velocity, e.Velocity)),
				})
			}
			advance := durationOrDefault(longest)
			if e.TimeUntilNext != nil {
				advance = e.TimeUntilNext
			}
			t = addBeats(t, advance)
		case model.Grouping:
			// natural span of the content always wins, even when the
			// grouping carries its own timeUntilNext
			sub, span := flatten(e.Content, t)
			events = append(events, sub...)
			t = addBeats(t, span)
		case model.Repetition:
			// content is pure, so one computed pass time-shifted per repeat
			// is identical to recomputing it
			sub, span := flatten(e.Content, t)
			for i := 0; i < e.Repeat; i++ {
				if i == 0 {
					events = append(events, sub...)
					continue
				}
				shift := (*model.Beats)(new(big.Rat).Mul(
					big.NewRat(int64(i), 1), span.Rat()))
				for _, evt := range sub {
					events = append(events, model.Event{
						Pitch:     evt.Pitch,
						StartTime: addBeats(evt.StartTime, shift),
						Duration:  evt.Duration.Copy(),
						Velocity:  evt.Velocity,
					})
				}
			}
			total := (*model.Beats)(new(big.Rat).Mul(
				big.NewRat(int64(e.Repeat), 1), span.Rat()))
			t = addBeats(t, total)
		default:
			panic("flatten: unhandled sequence element")
		}
	}
	span := (*model.Beats)(new(big.Rat).Sub(t.Rat(), start.Rat()))
	return events, span
}
