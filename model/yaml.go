package model

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Scores can be fed to the compiler straight from YAML, skipping the textual
// notation grammar. Elements are mappings tagged with a "type" key:
//
//	voices:
//	  - - type: note
//	      pitch: 60
//	      duration: 1/2
//	    - type: chord
//	      notes: [{pitch: 60}, {pitch: 64, velocity: 80}]
//	      duration: 2
//	    - type: repetition
//	      repeat: 3
//	      content: [...]
//
// A top-level sequence is also accepted and read as a single voice.

type yamlChordNote struct {
	Pitch    uint8  `yaml:"pitch"`
	Duration *Beats `yaml:"duration"`
	Velocity *uint8 `yaml:"velocity"`
}

type yamlElement struct {
	Type          string          `yaml:"type"`
	Pitch         uint8           `yaml:"pitch"`
	Notes         []yamlChordNote `yaml:"notes"`
	Content       Voice           `yaml:"content"`
	Repeat        int             `yaml:"repeat"`
	Duration      *Beats          `yaml:"duration"`
	Velocity      *uint8          `yaml:"velocity"`
	TimeUntilNext *Beats          `yaml:"timeUntilNext"`
}

// The YAML surface validates the same ranges the notation grammar does, so
// the compiler can trust trees from either producer.

func checkPitch(line int, p uint8) error {
	if p > 127 {
		return fmt.Errorf("line %v: pitch must be 0-127, got %v", line, p)
	}
	return nil
}

func checkVelocity(line int, v *uint8) error {
	if v != nil && (*v < 1 || *v > 127) {
		return fmt.Errorf("line %v: velocity must be 1-127, got %v", line, *v)
	}
	return nil
}

func checkBeats(line int, field string, b *Beats) error {
	if b != nil && !b.Positive() {
		return fmt.Errorf("line %v: %v must be positive, got %v", line, field, b)
	}
	return nil
}

func (raw yamlElement) check(line int) error {
	if err := checkBeats(line, "duration", raw.Duration); err != nil {
		return err
	}
	if err := checkVelocity(line, raw.Velocity); err != nil {
		return err
	}
	return checkBeats(line, "timeUntilNext", raw.TimeUntilNext)
}

func (raw yamlElement) toElement(line int) (SequenceElement, error) {
	if err := raw.check(line); err != nil {
		return nil, err
	}
	switch raw.Type {
	case "note":
		if err := checkPitch(line, raw.Pitch); err != nil {
			return nil, err
		}
		return Note{
			Pitch:         raw.Pitch,
			Duration:      raw.Duration,
			Velocity:      raw.Velocity,
			TimeUntilNext: raw.TimeUntilNext,
		}, nil
	case "chord":
		if len(raw.Notes) == 0 {
			return nil, fmt.Errorf("line %v: chord needs at least one note", line)
		}
		notes := make([]ChordNote, len(raw.Notes))
		for i, n := range raw.Notes {
			if err := checkPitch(line, n.Pitch); err != nil {
				return nil, err
			}
			if err := checkBeats(line, "duration", n.Duration); err != nil {
				return nil, err
			}
			if err := checkVelocity(line, n.Velocity); err != nil {
				return nil, err
			}
			notes[i] = ChordNote{Pitch: n.Pitch, Duration: n.Duration, Velocity: n.Velocity}
		}
		return Chord{
			Notes:         notes,
			Duration:      raw.Duration,
			Velocity:      raw.Velocity,
			TimeUntilNext: raw.TimeUntilNext,
		}, nil
	case "rest":
		return Rest{Duration: raw.Duration}, nil
	case "grouping":
		return Grouping{
			Content:       raw.Content,
			Duration:      raw.Duration,
			Velocity:      raw.Velocity,
			TimeUntilNext: raw.TimeUntilNext,
		}, nil
	case "repetition":
		if raw.Repeat < 1 {
			return nil, fmt.Errorf("line %v: repetition needs repeat >= 1", line)
		}
		return Repetition{
			Content:       raw.Content,
			Repeat:        raw.Repeat,
			Duration:      raw.Duration,
			Velocity:      raw.Velocity,
			TimeUntilNext: raw.TimeUntilNext,
		}, nil
	case "":
		return nil, fmt.Errorf("line %v: element is missing a type", line)
	default:
		return nil, fmt.Errorf("line %v: unknown element type %q", line, raw.Type)
	}
}

func (v *Voice) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %v: a voice must be a sequence of elements", node.Line)
	}
	elements := make(Voice, 0, len(node.Content))
	for _, item := range node.Content {
		var raw yamlElement
		if err := item.Decode(&raw); err != nil {
			return err
		}
		el, err := raw.toElement(item.Line)
		if err != nil {
			return err
		}
		elements = append(elements, el)
	}
	*v = elements
	return nil
}

func (s *Score) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.MappingNode {
		var raw struct {
			Voices []Voice `yaml:"voices"`
		}
		if err := node.Decode(&raw); err != nil {
			return err
		}
		s.Voices = raw.Voices
		return nil
	}
	var single Voice
	if err := single.UnmarshalYAML(node); err != nil {
		return err
	}
	s.Voices = []Voice{single}
	return nil
}

// ParseScoreYAML decodes a Score tree from YAML bytes.
func ParseScoreYAML(data []byte) (Score, error) {
	var s Score
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Score{}, err
	}
	return s, nil
}
