package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/chukul/credctl/internal/profile"
	"github.com/chukul/credctl/internal/ui"
)

var (
	resolveOutput string
	resolvePick   bool
)

func init() {
	resolveCmd.Flags().StringVarP(&resolveOutput, "output", "o", outputEnv, "Output format: env, json or yaml")
	resolveCmd.Flags().BoolVar(&resolvePick, "pick", false, "Choose the profile interactively")
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve a profile and print its credentials",
	Long: `Resolve reads the shared credentials file, then the config file, and prints
the credentials of the selected profile.

  eval "$(credctl resolve --profile dev)"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newProvider()
		if err != nil {
			return err
		}

		if resolvePick {
			p, err = pickProfile(p)
			if err != nil {
				return err
			}
		}

		cred, err := p.Resolve(cmd.Context())
		if err != nil {
			return err
		}
		logger.Debug("resolved profile", zap.String("profile", p.Profile()))
		return writeCredentials(cmd.OutOrStdout(), resolveOutput, cred)
	},
}

// pickProfile lets the user choose among the profiles found in p's files and
// returns a provider for the choice.
func pickProfile(p *profile.Provider) (*profile.Provider, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, fmt.Errorf("--pick needs an interactive terminal")
	}

	store, err := profile.LoadStore(p.Request(), logger)
	if err != nil {
		return nil, err
	}
	name, err := ui.SelectProfile("Select AWS Profile", store.Profiles())
	if err != nil {
		return nil, err
	}

	req := p.Request()
	return profile.New(
		profile.WithProfile(name),
		profile.WithCredentialsFile(req.CredentialsFile),
		profile.WithConfigFile(req.ConfigFile),
		profile.WithLogger(logger),
	)
}
