package cmd

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chukul/credctl/internal"
	"github.com/chukul/credctl/internal/profile"
	"github.com/chukul/credctl/internal/ui"
)

var (
	assumeRoleArn     string
	assumeMfaSerial   string
	assumeTokenCode   string
	assumeSessionName string
	assumeDuration    time.Duration
	assumeWrite       string
	assumeOutput      string
)

func init() {
	assumeCmd.Flags().StringVar(&assumeRoleArn, "role", "", "Role ARN to assume")
	assumeCmd.Flags().StringVar(&assumeMfaSerial, "mfa-serial", "", "MFA device ARN")
	assumeCmd.Flags().StringVar(&assumeTokenCode, "token-code", "", "MFA token code (prompted for when omitted)")
	assumeCmd.Flags().StringVar(&assumeSessionName, "session-name", "", "STS session name (default credctl-<random>)")
	assumeCmd.Flags().DurationVar(&assumeDuration, "duration", time.Hour, "Session duration")
	assumeCmd.Flags().StringVar(&assumeWrite, "write", "", "Write the session to the credentials file under this profile name")
	assumeCmd.Flags().StringVarP(&assumeOutput, "output", "o", outputEnv, "Output format when not writing: env, json or yaml")
	_ = assumeCmd.MarkFlagRequired("role")

	rootCmd.AddCommand(assumeCmd)
}

var assumeCmd = &cobra.Command{
	Use:   "assume",
	Short: "Assume an IAM role with the resolved credentials",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if assumeWrite != "" && !profile.IsIdentifier(assumeWrite) {
			return fmt.Errorf("invalid profile name %q", assumeWrite)
		}
		if assumeDuration != 0 && (assumeDuration < 15*time.Minute || assumeDuration > 12*time.Hour) {
			return fmt.Errorf("duration must be between 15m and 12h")
		}

		p, err := newProvider()
		if err != nil {
			return err
		}

		in := internal.AssumeRoleInput{
			RoleArn:     assumeRoleArn,
			SessionName: sessionName(assumeSessionName),
			Duration:    int32(assumeDuration / time.Second),
			MfaSerial:   assumeMfaSerial,
		}
		if assumeMfaSerial != "" {
			code := assumeTokenCode
			if code == "" {
				if code, err = readMFACode(assumeMfaSerial); err != nil {
					return err
				}
			}
			if !ui.ValidMFACode(code) {
				return fmt.Errorf("MFA code must be 6 digits")
			}
			in.TokenCode = code
		}

		ctx := cmd.Context()
		sess, err := withSpinner(fmt.Sprintf("Assuming %s...", assumeRoleArn), func() (*internal.Session, error) {
			client, err := newSTSClient(ctx, p, p)
			if err != nil {
				return nil, err
			}
			return internal.AssumeRole(ctx, client, in)
		})
		if err != nil {
			return fmt.Errorf("failed to assume role: %w", err)
		}

		// confirm the new credentials work before handing them out
		id, err := withSpinner("Verifying session...", func() (*internal.Identity, error) {
			client, err := newSTSClient(ctx, p, sess.Provider())
			if err != nil {
				return nil, err
			}
			return internal.CallerIdentity(ctx, client)
		})
		if err != nil {
			return fmt.Errorf("assumed session failed verification: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "🔐 Assumed %s\n", id.Arn)
		sess.SourceProfile = p.Profile()
		sess.Region = flagRegion
		logger.Debug("assumed role",
			zap.String("role_arn", sess.RoleArn),
			zap.String("session_name", sess.SessionName),
			zap.String("source_profile", sess.SourceProfile),
			zap.Time("expiration", sess.Expiration))

		if assumeWrite == "" {
			exp := sess.Expiration
			return writeCredentials(cmd.OutOrStdout(), assumeOutput, profile.Credential{
				AccessKeyID:     sess.AccessKey,
				SecretAccessKey: sess.SecretKey,
				SessionToken:    sess.SessionToken,
				Expires:         &exp,
			})
		}

		path := p.Request().CredentialsFile
		if path == "" {
			return fmt.Errorf("no credentials file location known")
		}
		sess.Profile = assumeWrite
		if err := internal.WriteSession(path, sess); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "✅ Session stored as profile %s in %s (expires %s, %s)\n",
			assumeWrite, path, internal.FormatTime(sess.Expiration), internal.Remaining(sess.Expiration, time.Now()))
		return nil
	},
}

func sessionName(name string) string {
	if name != "" {
		return name
	}
	return "credctl-" + uuid.NewString()[:8]
}
