package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jsphweid/seqc/midifile"
	"github.com/spf13/cobra"
)

var exportFromYaml bool
var exportOut string

func init() {
	exportCmd.Flags().BoolVar(&exportFromYaml, "yaml", false, "read the file as a YAML score tree instead of notation text")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output .mid path")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Exports notation as a MIDI file",
	Long:  `Exports notation as a MIDI file`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		events, err := compileFile(args[0], exportFromYaml)
		cobra.CheckErr(err)

		out := exportOut
		if out == "" {
			out = uuid.New().String() + ".mid"
		}
		cobra.CheckErr(midifile.WriteFile(events, out))
		fmt.Printf("Wrote %v events to %v\n", len(events), out)
	},
}
