package scale

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var majorIntervals = []int{0, 2, 4, 5, 7, 9, 11}

func TestNewMaskWrapsAndCollapses(t *testing.T) {
	assert := assert.New(t)

	cMajor := NewMask(0, majorIntervals)
	assert.True(cMajor.Contains(0))
	assert.True(cMajor.Contains(4))
	assert.True(cMajor.Contains(11))
	assert.False(cMajor.Contains(1))
	assert.False(cMajor.Contains(6))

	// negative intervals and duplicates land on the same classes
	same := NewMask(0, []int{0, 12, -12, 2, 14, 4, 5, 7, 9, 11, 23})
	assert.Equal(cMajor, same)

	// rooted masks shift: D major contains F# (class 6)
	dMajor := NewMask(2, majorIntervals)
	assert.True(dMajor.Contains(6))
	assert.False(dMajor.Contains(5))
}

func TestQuantizeTieBreakPrefersHigherPitch(t *testing.T) {
	assert := assert.New(t)
	cMajor := NewMask(0, majorIntervals)

	// 61 is one semitone from both 60 and 62; higher wins
	assert.Equal(uint8(62), cMajor.Quantize(61))
	assert.Equal(uint8(67), cMajor.Quantize(66))
}

func TestQuantizeIsIdempotent(t *testing.T) {
	assert := assert.New(t)
	masks := []Mask{
		NewMask(0, majorIntervals),
		NewMask(7, []int{0, 2, 3, 5, 7, 8, 10}),
		NewMask(0, []int{0}),
	}
	for _, mask := range masks {
		for p := 0; p <= 127; p++ {
			once := mask.Quantize(float64(p))
			twice := mask.Quantize(float64(once))
			assert.Equal(once, twice, "mask %012b pitch %v", mask, p)
		}
	}
}

func TestQuantizeRoundsBeforeSearching(t *testing.T) {
	assert := assert.New(t)
	cMajor := NewMask(0, majorIntervals)
	assert.Equal(uint8(60), cMajor.Quantize(60.4))
	assert.Equal(uint8(62), cMajor.Quantize(60.6))
}

func TestQuantizeClampsAtBoundaries(t *testing.T) {
	assert := assert.New(t)

	// only pitch class 1 is in scale; near the top the raw candidate 133
	// is out of midi range, so scan down from 127 to the nearest Db
	onlyDb := NewMask(1, []int{0})
	assert.Equal(uint8(121), onlyDb.Quantize(127))

	// near the bottom, class 11 forces an upward scan from 0
	onlyB := NewMask(11, []int{0})
	assert.Equal(uint8(11), onlyB.Quantize(0))
}

func TestQuantizeEmptyMaskJustRoundsAndClamps(t *testing.T) {
	assert := assert.New(t)
	var empty Mask
	assert.Equal(uint8(61), empty.Quantize(60.7))
	assert.Equal(uint8(127), empty.Quantize(200))
	assert.Equal(uint8(0), empty.Quantize(-5))
}

func TestStepZeroEqualsQuantize(t *testing.T) {
	assert := assert.New(t)
	cMajor := NewMask(0, majorIntervals)
	for p := 0; p <= 127; p++ {
		assert.Equal(cMajor.Quantize(float64(p)), cMajor.Step(float64(p), 0))
	}
}

func TestStepWalksScaleDegrees(t *testing.T) {
	cMajor := NewMask(0, majorIntervals)
	cases := []struct {
		base     float64
		steps    int
		expected uint8
	}{
		{60, 1, 62},
		{60, 2, 64},
		{60, 3, 65},
		{60, 7, 72},
		{60, -1, 59},
		{60, -2, 57},
		{61, 1, 64}, // anchors on 62 first
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("from %v by %v", c.base, c.steps), func(t *testing.T) {
			assert.Equal(t, c.expected, cMajor.Step(c.base, c.steps))
		})
	}
}

func TestStepStopsAtBoundary(t *testing.T) {
	assert := assert.New(t)
	cMajor := NewMask(0, majorIntervals)

	// G8 (127) is the top in-scale pitch; walking past it stays put
	assert.Equal(uint8(127), cMajor.Step(127, 5))
	assert.Equal(uint8(0), cMajor.Step(0, -3))
}
