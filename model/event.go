package model

// Event is one scheduled note. It is a plain value with no identity beyond
// its fields, ready for serialization or host scheduling.
type Event struct {
	Pitch     uint8  `json:"pitch"`
	StartTime *Beats `json:"start_time"`
	Duration  *Beats `json:"duration"`
	Velocity  uint8  `json:"velocity"`
}
