package cmd

import (
	"fmt"
	"strconv"

	"github.com/jsphweid/seqc/pitch"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert <name|midi>",
	Short: "Converts between pitch names and midi numbers",
	Long:  `Converts between pitch names and midi numbers, e.g. "convert c3" or "convert 60"`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if midi, err := strconv.Atoi(args[0]); err == nil {
			name, err := pitch.MidiToName(midi)
			cobra.CheckErr(err)
			fmt.Println(name)
			return
		}
		midi, err := pitch.NameToMidi(args[0])
		cobra.CheckErr(err)
		fmt.Println(midi)
	},
}
