package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "seqc",
	Short: "Sequence compiler",
	Long:  `Compiles symbolic notation into timestamped note events.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
