package model

import (
	"fmt"
	"math/big"

	"gopkg.in/yaml.v3"
)

// Beats is an exact rational number of beats. We keep rationals instead of
// float64 so that compiled timelines round-trip through JSON/YAML without
// drift and so chord/grouping spans compare exactly.
type Beats big.Rat

func NewBeats(num, den int64) *Beats {
	return (*Beats)(big.NewRat(num, den))
}

// ParseBeats accepts "2", "0.5" and "3/2" spellings.
func ParseBeats(s string) (*Beats, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("not a valid beat quantity: %q", s)
	}
	return (*Beats)(r), nil
}

func (b *Beats) Rat() *big.Rat {
	return (*big.Rat)(b)
}

func (b *Beats) Copy() *Beats {
	return (*Beats)(new(big.Rat).Set(b.Rat()))
}

func (b *Beats) Float64() float64 {
	f, _ := b.Rat().Float64()
	return f
}

func (b *Beats) Cmp(other *Beats) int {
	return b.Rat().Cmp(other.Rat())
}

func (b *Beats) Positive() bool {
	return b.Rat().Sign() > 0
}

// String renders "2" for whole numbers and "3/2" otherwise.
func (b *Beats) String() string {
	return b.Rat().RatString()
}

func (b *Beats) MarshalJSON() ([]byte, error) {
	return []byte(`"` + b.String() + `"`), nil
}

func (b *Beats) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := ParseBeats(s)
	if err != nil {
		return err
	}
	*b = *parsed
	return nil
}

func (b *Beats) MarshalYAML() (interface{}, error) {
	return b.String(), nil
}

func (b *Beats) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseBeats(node.Value)
	if err != nil {
		return fmt.Errorf("line %v: %v", node.Line, err)
	}
	*b = *parsed
	return nil
}
