package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sofmeright/lintcompose/src/config"
	"github.com/sofmeright/lintcompose/src/lint"
	"github.com/sofmeright/lintcompose/src/log"
)

var (
	cfgFile  string
	verbose  bool
	logLevel string
	cfg      *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "lintcompose",
	Short: "Compose flat lint configurations from topic presets",
	Long: `lintcompose builds the ordered list of flat-config fragments a linter
applies: core topics, auto-detected framework topics, custom fragments and
global overrides, in that order.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := logLevel
		if verbose && level == "" {
			level = "debug"
		}
		log.Configure(log.Config{Level: level, Console: true})

		// Skip config loading for commands that don't need it.
		if cmd.Name() == "version" || cmd.Name() == "migrate" {
			return nil
		}
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		warnings, err := config.Validate(cfg, lint.Known)
		logger := log.WithComponent("config")
		for _, w := range warnings {
			logger.Warn().Str("file", cfg.File).Msg(w)
		}
		return err
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .lintcompose.yml, .lintcompose.yaml or .lintcompose.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (default: $LOG_LEVEL, then warn)")
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}
