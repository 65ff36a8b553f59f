package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chukul/credctl/internal"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "credctl version %s\n", internal.CurrentVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
