package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/aem-labs/aemx/internal/branding"
	"github.com/aem-labs/aemx/internal/config"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	logLevel string
	logger   = log.New(io.Discard)
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default from config log.level)")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` generates AEM component skeletons and client-library folders
inside a content package, and reports Java classes that AEM instantiates or injects implicitly.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		l, err := newLogger(os.Stderr, logLevel)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
}

// newLogger builds the stderr logger. An empty level falls back to the
// log.level config key.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	if level == "" {
		level = config.Get(config.KeyLogLevel)
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: branding.CLIName(),
		Level:  lvl,
	}), nil
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
