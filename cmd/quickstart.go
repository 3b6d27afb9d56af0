package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var quickstartCmd = &cobra.Command{
	Use:   "quickstart",
	Short: "Explain first-run setup and the command risk levels",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), `
First run:

  gptautocli            # asks for anything missing, then starts
  gptautocli setup      # only configures missing values

  1. OpenAI API key
     Checked with one small request before it is saved.

  2. Command risk threshold (0-6)
     Every generated command gets a risk score from 1 (e.g. "ls") to
     5 (e.g. "rm -rf *"). Commands scoring below the threshold run
     without asking; the rest wait for your confirmation.

       0   confirm every command
       1-5 confirm commands scoring at or above this value
       6   never ask

Changing a value:

  gptautocli config show               # current values, key masked
  gptautocli config unset Command_Risk # asked again on next run
  gptautocli config path               # where the file lives

`)
	},
}

func init() {
	rootCmd.AddCommand(quickstartCmd)
}
