package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/jsphweid/seqc/compiler"
	"github.com/jsphweid/seqc/model"
	"github.com/jsphweid/seqc/notation"
	"github.com/jsphweid/seqc/util"
	"github.com/spf13/cobra"
)

var compileFromYaml bool

func init() {
	compileCmd.Flags().BoolVar(&compileFromYaml, "yaml", false, "read the file as a YAML score tree instead of notation text")
	rootCmd.AddCommand(compileCmd)
}

var compileCmd = &cobra.Command{
	Use:   "compile <file>",
	Short: "Compiles notation to event JSON",
	Long:  `Compiles notation to event JSON`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		events, err := compileFile(args[0], compileFromYaml)
		cobra.CheckErr(err)

		res := model.CompileResponse{NumEvents: len(events), Events: events}
		data, err := json.MarshalIndent(res, "", "  ")
		cobra.CheckErr(err)
		fmt.Println(string(data))
	},
}

func compileFile(path string, fromYaml bool) ([]model.Event, error) {
	data := util.ReadFileOrPanic(path)

	var score model.Score
	var err error
	if fromYaml {
		score, err = model.ParseScoreYAML(data)
	} else {
		score, err = notation.Parse(string(data))
	}
	if err != nil {
		return nil, err
	}

	events := compiler.Compile(score)
	if events == nil {
		events = make([]model.Event, 0)
	}
	return events, nil
}
