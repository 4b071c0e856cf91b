package model

type CompileRequestBody struct {
	Source string `json:"source"`
}

type CompileResponse struct {
	NumEvents int     `json:"num_events"`
	Events    []Event `json:"events"`
}

type QuantizeRequestBody struct {
	Pitch     float64 `json:"pitch"`
	Root      int     `json:"root"`
	Intervals []int   `json:"intervals"`
	Steps     int     `json:"steps"`
}

type QuantizeResponse struct {
	Pitch uint8 `json:"pitch"`
}

type PitchResponse struct {
	Name string `json:"name"`
	Midi uint8  `json:"midi"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
