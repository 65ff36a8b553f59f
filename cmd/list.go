package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/chukul/credctl/internal/profile"
	"github.com/chukul/credctl/internal/ui"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List profiles found in the shared credentials and config files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newProvider()
		if err != nil {
			return err
		}
		store, err := profile.LoadStore(p.Request(), logger)
		if err != nil {
			return err
		}

		names := store.Profiles()
		out := cmd.OutOrStdout()
		if len(names) == 0 {
			fmt.Fprintln(out, "No profiles found.")
			return nil
		}

		fmt.Fprintln(out, ui.HeaderStyle.Render(fmt.Sprintf("%d profiles", len(names))))
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "PROFILE\tACCESS KEY\tSECRET\tSESSION TOKEN\tREGION")
		for _, name := range names {
			marker := " "
			if name == p.Profile() {
				marker = "*"
			}
			_, _ = fmt.Fprintf(w, "%s %s\t%s\t%s\t%s\t%s\n",
				marker, displayName(name),
				keyColumn(store, name, profile.KeyAccessKeyID, mask),
				keyColumn(store, name, profile.KeySecretAccessKey, func(string) string { return "set" }),
				sessionColumn(store, name),
				keyColumn(store, name, "region", func(v string) string { return v }),
			)
		}
		return w.Flush()
	},
}

func displayName(name string) string {
	if name == "" {
		return `""`
	}
	return name
}

func keyColumn(s *profile.Store, name, key string, render func(string) string) string {
	v, ok := s.Property(name, key)
	if !ok || v == "" {
		return "-"
	}
	return render(v)
}

func sessionColumn(s *profile.Store, name string) string {
	for _, key := range []string{profile.KeySessionToken, profile.KeySecurityToken} {
		if v, ok := s.Property(name, key); ok && v != "" {
			return "set"
		}
	}
	return "-"
}
