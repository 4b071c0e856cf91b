package constants

import "os"

// defaults applied by the compiler when nothing explicit or inherited exists
const DefaultVelocity = 70
const DefaultDurationBeats = 1

// resolution used when rendering event timelines to standard MIDI files
const TicksPerBeat = 960

// tempo stamped into exported MIDI files; beats in the timeline are
// abstract, so this only fixes the playback rate of the file itself
const ExportBPM = 120

func GetPort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return port
	}
	return "8080"
}
