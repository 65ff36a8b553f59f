package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chukul/credctl/internal"
)

func init() {
	rootCmd.AddCommand(logoutCmd)
}

var logoutCmd = &cobra.Command{
	Use:   "logout NAME",
	Short: "Remove a profile section from the shared credentials file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newProvider()
		if err != nil {
			return err
		}
		path := p.Request().CredentialsFile
		if path == "" {
			return fmt.Errorf("no credentials file location known")
		}

		found, err := internal.RemoveSection(path, args[0])
		if err != nil {
			return fmt.Errorf("failed to remove profile %s: %w", args[0], err)
		}
		if !found {
			return fmt.Errorf("profile %s not found in %s", args[0], path)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Profile '%s' removed from %s\n", args[0], path)
		return nil
	},
}
