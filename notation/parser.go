// Package notation parses the textual score grammar into the model tree the
// compiler consumes. The grammar is whitespace separated:
//
//	c3 eb3d1/2 (c3 e3 g3)d2v90 { c4 d4 }v80 x3{ g2 rd2 } ; c2d4
//
//	note        <letter><#|b?><octave>  with modifiers attached, e.g. c3d2v90u1/4
//	rest        r with an optional d modifier
//	chord       ( notes... ) with modifiers; inner notes take d and v only
//	grouping    { elements... } with modifiers
//	repetition  x<count>{ elements... } with modifiers
//	;           ends the current voice; voices play simultaneously
//	#           comments out the rest of the line
//
// Modifier numbers are integers, decimals or fractions ("2", "0.5", "3/2");
// velocity must be an integer 1-127. Pitch text resolves through
// pitch.NameToMidi, so "c3" is midi 60 and octaves can be negative.
//
// All range checking happens here: the compiler downstream trusts the tree.
package notation

import (
	"strconv"
	"strings"

	"github.com/jsphweid/seqc/model"
	"github.com/jsphweid/seqc/pitch"
)

const (
	modDuration = 1 << iota
	modVelocity
	modUntil
)

type modifiers struct {
	duration *model.Beats
	velocity *uint8
	until    *model.Beats
}

type parser struct {
	src string
	pos int
}

// Parse turns notation source text into a Score.
func Parse(source string) (model.Score, error) {
	p := &parser{src: source}
	var voices []model.Voice
	var current model.Voice
	for {
		p.skipSpace()
		if p.eof() {
			break
		}
		if p.peek() == ';' {
			p.pos++
			voices = append(voices, current)
			current = nil
			continue
		}
		el, err := p.parseElement()
		if err != nil {
			return model.Score{}, err
		}
		current = append(current, el)
	}
	if len(current) > 0 || len(voices) == 0 {
		voices = append(voices, current)
	}
	return model.Score{Voices: voices}, nil
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *parser) peek() byte {
	return p.src[p.pos]
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

func isPitchLetter(b byte) bool {
	return b >= 'a' && b <= 'g'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func (p *parser) skipSpace() {
	for !p.eof() {
		switch p.peek() {
		case ' ', '\t', '\r', '\n':
			p.pos++
		case '#':
			for !p.eof() && p.peek() != '\n' {
				p.pos++
			}
		default:
			return
		}
	}
}

func (p *parser) scanDigits() string {
	start := p.pos
	for !p.eof() && isDigit(p.peek()) {
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *parser) errorAt(offset int, token, hint string) *SyntaxError {
	return syntaxErrorAt(p.src, offset, token, hint)
}

func (p *parser) parseElement() (model.SequenceElement, error) {
	ch := lower(p.peek())
	switch {
	case isPitchLetter(ch):
		return p.parseNote()
	case ch == 'r':
		return p.parseRest()
	case ch == '(':
		return p.parseChord()
	case ch == '{':
		return p.parseGrouping()
	case ch == 'x':
		return p.parseRepetition()
	case isDigit(ch):
		start := p.pos
		token := p.scanDigits()
		return nil, p.errorAt(start, token, hintBareNumber)
	case ch == '.':
		return nil, p.errorAt(p.pos, ".", hintBareDot)
	default:
		return nil, p.errorAt(p.pos, string(p.peek()), hintUnexpected(p.peek()))
	}
}

// parsePitch consumes "<letter><#|b?><signed-octave>" and resolves it to a
// midi pitch through the pitch engine.
func (p *parser) parsePitch() (uint8, error) {
	start := p.pos
	p.pos++ // pitch letter
	if !p.eof() && (p.peek() == '#' || lower(p.peek()) == 'b') {
		p.pos++
	}
	if !p.eof() && p.peek() == '-' {
		p.pos++
	}
	digits := p.scanDigits()
	token := p.src[start:p.pos]
	if digits == "" {
		return 0, p.errorAt(start, token, "pitch name is missing an octave number, e.g. c3")
	}
	midi, err := pitch.NameToMidi(token)
	if err != nil {
		return 0, p.errorAt(start, token, err.Error())
	}
	return midi, nil
}

func (p *parser) parseNote() (model.SequenceElement, error) {
	midi, err := p.parsePitch()
	if err != nil {
		return nil, err
	}
	m, err := p.parseModifiers(modDuration | modVelocity | modUntil)
	if err != nil {
		return nil, err
	}
	return model.Note{
		Pitch:         midi,
		Duration:      m.duration,
		Velocity:      m.velocity,
		TimeUntilNext: m.until,
	}, nil
}

func (p *parser) parseRest() (model.SequenceElement, error) {
	p.pos++ // r
	m, err := p.parseModifiers(modDuration)
	if err != nil {
		return nil, err
	}
	return model.Rest{Duration: m.duration}, nil
}

func (p *parser) parseChord() (model.SequenceElement, error) {
	open := p.pos
	p.pos++ // (
	var notes []model.ChordNote
	for {
		p.skipSpace()
		if p.eof() {
			return nil, p.errorAt(open, "(", "unclosed chord; expected )")
		}
		if p.peek() == ')' {
			p.pos++
			break
		}
		if !isPitchLetter(lower(p.peek())) {
			return nil, p.errorAt(p.pos, string(p.peek()), "chords may only contain notes, e.g. (c3 e3v80 g3)")
		}
		midi, err := p.parsePitch()
		if err != nil {
			return nil, err
		}
		m, err := p.parseModifiers(modDuration | modVelocity)
		if err != nil {
			return nil, err
		}
		notes = append(notes, model.ChordNote{Pitch: midi, Duration: m.duration, Velocity: m.velocity})
	}
	if len(notes) == 0 {
		return nil, p.errorAt(open, "()", "chord needs at least one note")
	}
	m, err := p.parseModifiers(modDuration | modVelocity | modUntil)
	if err != nil {
		return nil, err
	}
	return model.Chord{
		Notes:         notes,
		Duration:      m.duration,
		Velocity:      m.velocity,
		TimeUntilNext: m.until,
	}, nil
}

// parseBody consumes "{ elements... }" and returns the elements.
func (p *parser) parseBody() ([]model.SequenceElement, error) {
	open := p.pos
	p.pos++ // {
	var elements []model.SequenceElement
	for {
		p.skipSpace()
		if p.eof() {
			return nil, p.errorAt(open, "{", "unclosed grouping; expected }")
		}
		if p.peek() == '}' {
			p.pos++
			return elements, nil
		}
		el, err := p.parseElement()
		if err != nil {
			return nil, err
		}
		elements = append(elements, el)
	}
}

func (p *parser) parseGrouping() (model.SequenceElement, error) {
	content, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	m, err := p.parseModifiers(modDuration | modVelocity | modUntil)
	if err != nil {
		return nil, err
	}
	return model.Grouping{
		Content:       content,
		Duration:      m.duration,
		Velocity:      m.velocity,
		TimeUntilNext: m.until,
	}, nil
}

func (p *parser) parseRepetition() (model.SequenceElement, error) {
	start := p.pos
	p.pos++ // x
	digits := p.scanDigits()
	if digits == "" {
		return nil, p.errorAt(start, "x", "repetition count must follow x, e.g. x3{ c3 d3 }")
	}
	count, err := strconv.Atoi(digits)
	if err != nil || count < 1 {
		return nil, p.errorAt(start, "x"+digits, "repetition count must be a positive integer")
	}
	p.skipSpace()
	if p.eof() || p.peek() != '{' {
		return nil, p.errorAt(p.pos, "x"+digits, "repetition needs a { ... } body")
	}
	content, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	m, err := p.parseModifiers(modDuration | modVelocity | modUntil)
	if err != nil {
		return nil, err
	}
	return model.Repetition{
		Content:       content,
		Repeat:        count,
		Duration:      m.duration,
		Velocity:      m.velocity,
		TimeUntilNext: m.until,
	}, nil
}

func (p *parser) parseModifiers(allowed int) (modifiers, error) {
	var m modifiers
	for !p.eof() {
		switch ch := lower(p.peek()); {
		case ch == 'd' && allowed&modDuration != 0:
			p.pos++
			b, err := p.parseBeatsNumber()
			if err != nil {
				return m, err
			}
			m.duration = b
		case ch == 'v' && allowed&modVelocity != 0:
			p.pos++
			v, err := p.parseVelocity()
			if err != nil {
				return m, err
			}
			m.velocity = v
		case ch == 'u' && allowed&modUntil != 0:
			p.pos++
			b, err := p.parseBeatsNumber()
			if err != nil {
				return m, err
			}
			m.until = b
		default:
			return m, nil
		}
	}
	return m, nil
}

// parseBeatsNumber reads "2", "0.5", ".5" or "3/2" after a modifier letter.
func (p *parser) parseBeatsNumber() (*model.Beats, error) {
	start := p.pos
	intPart := p.scanDigits()
	switch {
	case !p.eof() && p.peek() == '.':
		p.pos++
		if p.scanDigits() == "" {
			return nil, p.errorAt(start, p.src[start:p.pos], hintBareDot)
		}
	case !p.eof() && p.peek() == '/' && intPart != "":
		p.pos++
		denom := p.scanDigits()
		if denom == "" {
			return nil, p.errorAt(start, p.src[start:p.pos], "fraction is missing a denominator")
		}
		if strings.Trim(denom, "0") == "" {
			return nil, p.errorAt(start, p.src[start:p.pos], "fraction denominator cannot be zero")
		}
	case intPart == "":
		if p.eof() {
			return nil, p.errorAt(start, p.src[start-1:], "modifier is missing its number")
		}
		return nil, p.errorAt(start, string(p.peek()), "modifier is missing its number")
	}
	token := p.src[start:p.pos]
	literal := token
	if literal[0] == '.' {
		literal = "0" + literal
	}
	b, err := model.ParseBeats(literal)
	if err != nil {
		return nil, p.errorAt(start, token, err.Error())
	}
	if !b.Positive() {
		return nil, p.errorAt(start, token, "beat quantities must be positive")
	}
	return b, nil
}

func (p *parser) parseVelocity() (*uint8, error) {
	start := p.pos
	digits := p.scanDigits()
	if digits == "" {
		if !p.eof() && p.peek() == '.' {
			return nil, p.errorAt(start, ".", hintBareDot)
		}
		return nil, p.errorAt(start, "v", "velocity needs an integer 1-127")
	}
	v, err := strconv.Atoi(digits)
	if err != nil || v < 1 || v > 127 {
		return nil, p.errorAt(start, digits, "velocity must be an integer 1-127")
	}
	velocity := uint8(v)
	return &velocity, nil
}
