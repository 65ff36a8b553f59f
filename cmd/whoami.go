package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/chukul/credctl/internal"
	"github.com/chukul/credctl/internal/profile"
	"github.com/chukul/credctl/internal/ui"
)

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the identity behind the resolved credentials",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newProvider()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		id, err := withSpinner(fmt.Sprintf("Calling STS as %s...", p.Profile()), func() (*internal.Identity, error) {
			client, err := newSTSClient(ctx, p, p)
			if err != nil {
				return nil, err
			}
			return internal.CallerIdentity(ctx, client)
		})
		if err != nil {
			return fmt.Errorf("failed to get caller identity: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Profile:  %s\n", p.Profile())
		fmt.Fprintf(out, "Account:  %s\n", id.Account)
		fmt.Fprintf(out, "ARN:      %s\n", id.Arn)
		fmt.Fprintf(out, "User ID:  %s\n", ui.DimStyle.Render(id.UserID))
		return nil
	},
}

// newSTSClient builds an STS client signing with creds and reading region
// and other settings from the files and profile p resolved.
func newSTSClient(ctx context.Context, p *profile.Provider, creds aws.CredentialsProvider) (*sts.Client, error) {
	return internal.NewSTSClient(ctx, internal.ClientOptions{
		Credentials: creds,
		Request:     p.Request(),
		Region:      flagRegion,
		Logger:      logger,
	})
}

// withSpinner shows a spinner while task runs when stderr is a terminal.
func withSpinner[T any](text string, task func() (T, error)) (T, error) {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return task()
	}
	return ui.Spin(text, task)
}

