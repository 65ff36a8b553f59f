package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/chukul/credctl/internal/profile"
)

var (
	flagProfile         string
	flagCredentialsFile string
	flagConfigFile      string
	flagRegion          string
	flagVerbose         bool

	logger = zap.NewNop()
)

var banner = []string{
	`   ██████╗██████╗ ███████╗██████╗  ██████╗████████╗██╗`,
	`  ██╔════╝██╔══██╗██╔════╝██╔══██╗██╔════╝╚══██╔══╝██║`,
	`  ██║     ██████╔╝█████╗  ██║  ██║██║        ██║   ██║`,
	`  ██║     ██╔══██╗██╔══╝  ██║  ██║██║        ██║   ██║`,
	`  ╚██████╗██║  ██║███████╗██████╔╝╚██████╗   ██║   ███████╗`,
	`   ╚═════╝╚═╝  ╚═╝╚══════╝╚═════╝  ╚═════╝   ╚═╝   ╚══════╝`,
}

type rgb struct{ r, g, b float64 }

// gradient stops, left to right
var bannerStops = []rgb{{0, 176, 255}, {170, 0, 255}, {255, 0, 128}}

// blend returns the colour at position t in [0,1] along stops.
func blend(stops []rgb, t float64) lipgloss.Color {
	seg := t * float64(len(stops)-1)
	i := min(int(seg), len(stops)-2)
	f := seg - float64(i)
	a, b := stops[i], stops[i+1]
	mix := func(x, y float64) int { return int(x + (y-x)*f) }
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", mix(a.r, b.r), mix(a.g, b.g), mix(a.b, b.b)))
}

func renderBanner() string {
	width := 0
	for _, line := range banner {
		width = max(width, len([]rune(line)))
	}

	var sb strings.Builder
	for _, line := range banner {
		for i, r := range []rune(line) {
			style := lipgloss.NewStyle().Foreground(blend(bannerStops, float64(i)/float64(width)))
			sb.WriteString(style.Render(string(r)))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(lipgloss.NewStyle().Bold(true).Render("  Resolve AWS credentials from shared credentials and config files"))
	sb.WriteByte('\n')
	return sb.String()
}

var rootCmd = &cobra.Command{
	Use:   "credctl",
	Short: "credctl resolves AWS credentials from the shared profile files",
	Long: `credctl reads ~/.aws/credentials and ~/.aws/config the way the AWS SDKs do,
resolves a profile to static credentials and uses them to talk to STS.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(flagVerbose)
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&flagProfile, "profile", "p", "", "Profile to use (default $AWS_PROFILE or \"default\")")
	flags.StringVar(&flagCredentialsFile, "credentials-file", "", "Shared credentials file (default $AWS_SHARED_CREDENTIALS_FILE or ~/.aws/credentials)")
	flags.StringVar(&flagConfigFile, "config-file", "", "Shared config file (default $AWS_CONFIG_FILE or ~/.aws/config)")
	flags.StringVar(&flagRegion, "region", "", "Region for STS calls")
	flags.BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.Sampling = nil
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}

// newProvider builds a profile provider from the persistent flags and the
// process environment.
func newProvider() (*profile.Provider, error) {
	return profile.New(
		profile.WithProfile(flagProfile),
		profile.WithCredentialsFile(flagCredentialsFile),
		profile.WithConfigFile(flagConfigFile),
		profile.WithLogger(logger),
	)
}

// Execute runs the CLI
func Execute() {
	if len(os.Args) <= 1 || os.Args[1] == "help" {
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, renderBanner())
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}
