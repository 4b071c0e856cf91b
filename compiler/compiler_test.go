package compiler

import (
	"fmt"
	"testing"

	"github.com/jsphweid/seqc/model"
	"github.com/stretchr/testify/assert"
)

func velocity(v uint8) *uint8 {
	return &v
}

func beats(num, den int64) *model.Beats {
	return model.NewBeats(num, den)
}

// summarize renders events as strings so expected values compare by value
// rather than by big.Rat internals.
func summarize(events []model.Event) []string {
	res := make([]string, len(events))
	for i, e := range events {
		res[i] = fmt.Sprintf("pitch=%v start=%v dur=%v vel=%v", e.Pitch, e.StartTime, e.Duration, e.Velocity)
	}
	return res
}

func TestNoteRestNoteScenario(t *testing.T) {
	voice := model.Voice{
		model.Note{Pitch: 60},
		model.Rest{Duration: beats(1, 1)},
		model.Note{Pitch: 64, Duration: beats(2, 1)},
	}
	events := CompileVoice(voice)

	assert.Equal(t, []string{
		"pitch=60 start=0 dur=1 vel=70",
		"pitch=64 start=2 dur=2 vel=70",
	}, summarize(events))
}

func TestChordNotesShareStartAndAdvanceOnce(t *testing.T) {
	voice := model.Voice{
		model.Chord{
			Notes:    []model.ChordNote{{Pitch: 60}, {Pitch: 64}, {Pitch: 67}},
			Duration: beats(2, 1),
		},
		model.Note{Pitch: 72},
	}
	events := CompileVoice(voice)

	assert.Equal(t, []string{
		"pitch=60 start=0 dur=2 vel=70",
		"pitch=64 start=0 dur=2 vel=70",
		"pitch=67 start=0 dur=2 vel=70",
		"pitch=72 start=2 dur=1 vel=70",
	}, summarize(events))
}

func TestChordAdvancesByLongestInnerDuration(t *testing.T) {
	voice := model.Voice{
		model.Chord{
			Notes: []model.ChordNote{
				{Pitch: 60, Duration: beats(1, 2)},
				{Pitch: 64, Duration: beats(3, 1)},
			},
		},
		model.Note{Pitch: 72},
	}
	events := CompileVoice(voice)

	assert.Equal(t, "pitch=72 start=3 dur=1 vel=70", summarize(events)[2])
}

func TestChordTimeUntilNextOverridesAdvance(t *testing.T) {
	voice := model.Voice{
		model.Chord{
			Notes:         []model.ChordNote{{Pitch: 60}},
			Duration:      beats(4, 1),
			TimeUntilNext: beats(1, 2),
		},
		model.Note{Pitch: 62},
	}
	events := CompileVoice(voice)

	// overlap: the chord still rings while the next note starts
	assert.Equal(t, []string{
		"pitch=60 start=0 dur=4 vel=70",
		"pitch=62 start=1/2 dur=1 vel=70",
	}, summarize(events))
}

func TestGroupingVelocityInheritsUnlessExplicit(t *testing.T) {
	voice := model.Voice{
		model.Grouping{
			Velocity: velocity(90),
			Content: []model.SequenceElement{
				model.Note{Pitch: 60},
				model.Grouping{
					Content: []model.SequenceElement{
						model.Note{Pitch: 62, Velocity: velocity(111)},
						model.Note{Pitch: 64},
					},
				},
			},
		},
	}
	events := CompileVoice(voice)

	assert.Equal(t, []string{
		"pitch=60 start=0 dur=1 vel=90",
		"pitch=62 start=1 dur=1 vel=111",
		"pitch=64 start=2 dur=1 vel=90",
	}, summarize(events))
}

func TestChordInnerNotesResolveAgainstChordResolvedValues(t *testing.T) {
	// the grouping's duration reaches inner chord notes through the chord
	voice := model.Voice{
		model.Grouping{
			Duration: beats(3, 1),
			Content: []model.SequenceElement{
				model.Chord{Notes: []model.ChordNote{
					{Pitch: 60},
					{Pitch: 64, Duration: beats(1, 1)},
				}},
			},
		},
	}
	events := CompileVoice(voice)

	assert.Equal(t, []string{
		"pitch=60 start=0 dur=3 vel=70",
		"pitch=64 start=0 dur=1 vel=70",
	}, summarize(events))
}

func TestGroupingNaturalSpanWinsOverItsOwnTimeUntilNext(t *testing.T) {
	// the grouping's own timeUntilNext does not shorten the layout, but it
	// is still inherited by the note inside
	voice := model.Voice{
		model.Grouping{
			TimeUntilNext: beats(1, 2),
			Content: []model.SequenceElement{
				model.Note{Pitch: 60},
				model.Note{Pitch: 62},
			},
		},
		model.Note{Pitch: 64},
	}
	events := CompileVoice(voice)

	assert.Equal(t, []string{
		"pitch=60 start=0 dur=1 vel=70",
		"pitch=62 start=1/2 dur=1 vel=70",
		"pitch=64 start=1 dur=1 vel=70",
	}, summarize(events))
}

func TestRestIgnoresInheritedVelocity(t *testing.T) {
	voice := model.Voice{
		model.Grouping{
			Velocity: velocity(100),
			Duration: beats(2, 1),
			Content: []model.SequenceElement{
				model.Rest{},
				model.Note{Pitch: 60},
			},
		},
	}
	events := CompileVoice(voice)

	// the rest still inherits duration 2, so the note starts at 2
	assert.Equal(t, []string{"pitch=60 start=2 dur=2 vel=100"}, summarize(events))
}

func TestRepetitionReplaysShiftedCopies(t *testing.T) {
	voice := model.Voice{
		model.Repetition{
			Repeat: 3,
			Content: []model.SequenceElement{
				model.Note{Pitch: 60, Duration: beats(1, 2)},
			},
		},
		model.Note{Pitch: 72},
	}
	events := CompileVoice(voice)

	assert.Equal(t, []string{
		"pitch=60 start=0 dur=1/2 vel=70",
		"pitch=60 start=1/2 dur=1/2 vel=70",
		"pitch=60 start=1 dur=1/2 vel=70",
		"pitch=72 start=3/2 dur=1 vel=70",
	}, summarize(events))
}

func TestRepetitionEqualsManualUnrolling(t *testing.T) {
	content := []model.SequenceElement{
		model.Note{Pitch: 60, Duration: beats(1, 2)},
		model.Chord{Notes: []model.ChordNote{{Pitch: 64}, {Pitch: 67}}},
		model.Rest{Duration: beats(1, 4)},
	}

	repeated := CompileVoice(model.Voice{
		model.Repetition{Repeat: 4, Content: content, Velocity: velocity(80)},
	})

	var unrolled model.Voice
	for i := 0; i < 4; i++ {
		unrolled = append(unrolled, model.Grouping{Content: content, Velocity: velocity(80)})
	}

	assert.Equal(t, summarize(CompileVoice(unrolled)), summarize(repeated))
}

func TestCompileIsDeterministic(t *testing.T) {
	score := model.Score{Voices: []model.Voice{
		{
			model.Repetition{Repeat: 2, Content: []model.SequenceElement{
				model.Note{Pitch: 60, TimeUntilNext: beats(1, 4)},
				model.Chord{Notes: []model.ChordNote{{Pitch: 64}, {Pitch: 67}}},
			}},
		},
		{model.Note{Pitch: 48, Duration: beats(8, 1)}},
	}}

	assert.Equal(t, summarize(Compile(score)), summarize(Compile(score)))
}

func TestVoicesAreIndependentlyTimedFromZero(t *testing.T) {
	score := model.Score{Voices: []model.Voice{
		{model.Rest{Duration: beats(4, 1)}, model.Note{Pitch: 60}},
		{model.Note{Pitch: 40}},
	}}
	events := Compile(score)

	assert.Equal(t, []string{
		"pitch=60 start=4 dur=1 vel=70",
		"pitch=40 start=0 dur=1 vel=70",
	}, summarize(events))
}

func TestCompileDoesNotMutateItsInput(t *testing.T) {
	note := model.Note{Pitch: 60}
	voice := model.Voice{model.Grouping{Velocity: velocity(90), Content: []model.SequenceElement{note}}}
	CompileVoice(voice)

	inner := voice[0].(model.Grouping).Content[0].(model.Note)
	assert.Nil(t, inner.Velocity)
	assert.Nil(t, inner.Duration)
}
