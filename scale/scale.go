// Package scale does scale-mask arithmetic: building 12-bit in-key masks
// and snapping arbitrary pitches to them.
package scale

import (
	"math"

	"github.com/jsphweid/seqc/util"
)

// Mask is a 12-bit set of pitch classes; bit N set means class N is in key.
type Mask uint16

// NewMask builds a mask from a root class 0-11 and signed semitone
// intervals. Duplicate intervals collapse harmlessly.
func NewMask(root int, intervals []int) Mask {
	var m Mask
	for _, interval := range intervals {
		class := ((root+interval)%12 + 12) % 12
		m |= 1 << class
	}
	return m
}

// Contains reports whether the pitch class of p is in the mask. p can be any
// integer pitch, not just 0-11.
func (m Mask) Contains(p int) bool {
	class := (p%12 + 12) % 12
	return m&(1<<class) != 0
}

func clampMidi(p int) uint8 {
	return uint8(util.Max(0, util.Min(127, p)))
}

// boundary clamp: nearest in-scale pitch scanning inward from 127 or 0
func (m Mask) clampInScale(p int) uint8 {
	if p > 127 {
		for q := 127; q >= 0; q-- {
			if m.Contains(q) {
				return uint8(q)
			}
		}
	}
	if p < 0 {
		for q := 0; q <= 127; q++ {
			if m.Contains(q) {
				return uint8(q)
			}
		}
	}
	return clampMidi(p)
}

// Quantize snaps pitch to the nearest in-scale midi pitch. At equal distance
// the higher candidate wins: rounded+d is tested before rounded-d. An empty
// mask just rounds and clamps.
func (m Mask) Quantize(pitch float64) uint8 {
	rounded := int(math.Round(pitch))
	if m == 0 {
		return clampMidi(rounded)
	}
	for d := 0; d < 12; d++ {
		if m.Contains(rounded + d) {
			return m.clampInScale(rounded + d)
		}
		if d > 0 && m.Contains(rounded-d) {
			return m.clampInScale(rounded - d)
		}
	}
	return clampMidi(rounded)
}

// Step quantizes base and then walks abs(steps) in-scale semitone landings
// in the sign direction of steps. Hitting the midi boundary stops the walk
// at the last in-scale pitch reached.
func (m Mask) Step(base float64, steps int) uint8 {
	cur := int(m.Quantize(base))
	if steps == 0 || m == 0 {
		return uint8(cur)
	}
	dir := 1
	remaining := steps
	if steps < 0 {
		dir = -1
		remaining = -steps
	}
	last := cur
	for remaining > 0 {
		cur += dir
		if cur < 0 || cur > 127 {
			break
		}
		if m.Contains(cur) {
			last = cur
			remaining--
		}
	}
	return uint8(last)
}
