package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jsphweid/seqc/compiler"
	"github.com/jsphweid/seqc/constants"
	"github.com/jsphweid/seqc/model"
	"github.com/jsphweid/seqc/notation"
	"github.com/jsphweid/seqc/pitch"
	"github.com/jsphweid/seqc/scale"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the compiler and pitch engine over HTTP",
	Long:  `Serves the compiler and pitch engine over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}

func HandleCompile(w http.ResponseWriter, r *http.Request) {
	var input model.CompileRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, err)
		return
	}

	score, err := notation.Parse(input.Source)
	if err != nil {
		// syntax errors pass through unchanged, position and all
		writeError(w, 400, err)
		return
	}

	events := compiler.Compile(score)
	if events == nil {
		events = make([]model.Event, 0)
	}
	json.NewEncoder(w).Encode(model.CompileResponse{NumEvents: len(events), Events: events})
}

func HandleQuantize(w http.ResponseWriter, r *http.Request) {
	var input model.QuantizeRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, err)
		return
	}
	if input.Root < 0 || input.Root > 11 {
		writeError(w, 400, fmt.Errorf("root must be 0-11, got %v", input.Root))
		return
	}

	mask := scale.NewMask(input.Root, input.Intervals)
	json.NewEncoder(w).Encode(model.QuantizeResponse{Pitch: mask.Step(input.Pitch, input.Steps)})
}

func HandlePitchName(w http.ResponseWriter, r *http.Request) {
	midi, err := pitch.NameToMidi(mux.Vars(r)["name"])
	if err != nil {
		writeError(w, 400, err)
		return
	}
	canonical, _ := pitch.MidiToName(int(midi))
	json.NewEncoder(w).Encode(model.PitchResponse{Name: canonical, Midi: midi})
}

func HandleMidi(w http.ResponseWriter, r *http.Request) {
	midi, err := strconv.Atoi(mux.Vars(r)["midi"])
	if err != nil {
		writeError(w, 400, err)
		return
	}
	name, err := pitch.MidiToName(midi)
	if err != nil {
		writeError(w, 400, err)
		return
	}
	json.NewEncoder(w).Encode(model.PitchResponse{Name: name, Midi: uint8(midi)})
}

// NewRouter builds the HTTP surface; split out so tests can hit it directly.
func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/compile", HandleCompile).Methods("POST")
	router.HandleFunc("/quantize", HandleQuantize).Methods("POST")
	router.HandleFunc("/pitch/{name}", HandlePitchName).Methods("GET")
	router.HandleFunc("/midi/{midi}", HandleMidi).Methods("GET")
	return cors.Default().Handler(router)
}

func serve() {
	log.Fatal(http.ListenAndServe(":"+constants.GetPort(), NewRouter()))
}
