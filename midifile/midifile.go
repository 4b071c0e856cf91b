// Package midifile renders a compiled event timeline to a standard MIDI
// file, the format most scheduling hosts take directly.
package midifile

import (
	"io"
	"math/big"
	"os"
	"sort"

	"github.com/jsphweid/seqc/constants"
	"github.com/jsphweid/seqc/model"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

type timedMessage struct {
	absTicks  int64
	isNoteOff bool
	key       uint8
	velocity  uint8
}

// beatsToTicks rounds to the nearest tick; times are never negative here
func beatsToTicks(b *model.Beats) int64 {
	r := new(big.Rat).Mul(b.Rat(), big.NewRat(constants.TicksPerBeat, 1))
	num, den := r.Num().Int64(), r.Denom().Int64()
	return (2*num + den) / (2 * den)
}

// ToSMF lays the events out on a single track at constants.TicksPerBeat
// resolution. Note-offs sort before note-ons at the same tick so
// back-to-back repeats of a pitch retrigger instead of swallowing each
// other.
func ToSMF(events []model.Event) *smf.SMF {
	var timed []timedMessage
	for _, evt := range events {
		start := beatsToTicks(evt.StartTime)
		end := start + beatsToTicks(evt.Duration)
		timed = append(timed, timedMessage{absTicks: start, key: evt.Pitch, velocity: evt.Velocity})
		timed = append(timed, timedMessage{absTicks: end, isNoteOff: true, key: evt.Pitch})
	}

	sort.SliceStable(timed, func(i, j int) bool {
		if timed[i].absTicks != timed[j].absTicks {
			return timed[i].absTicks < timed[j].absTicks
		}
		return timed[i].isNoteOff && !timed[j].isNoteOff
	})

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(constants.TicksPerBeat)

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(constants.ExportBPM))
	var prevTicks int64
	for _, tm := range timed {
		delta := uint32(tm.absTicks - prevTicks)
		prevTicks = tm.absTicks
		if tm.isNoteOff {
			tr.Add(delta, midi.NoteOff(0, tm.key))
		} else {
			tr.Add(delta, midi.NoteOn(0, tm.key, tm.velocity))
		}
	}
	tr.Close(0)
	s.Add(tr)
	return s
}

// Write renders events as a standard MIDI file to w.
func Write(events []model.Event, w io.Writer) error {
	_, err := ToSMF(events).WriteTo(w)
	return err
}

// WriteFile renders events as a standard MIDI file at path.
func WriteFile(events []model.Event, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(events, f)
}
