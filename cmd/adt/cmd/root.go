package cmd

import (
	"fmt"
	"os"

	"github.com/pavanmanishd/adt/internal/config"
	"github.com/pavanmanishd/adt/internal/logging"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  *logging.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "adt",
	Short: "Lay out lines of text with growable containers",
	Long: `adt reads lines from standard input into a growable array of
NUL-terminated strings, optionally sorts them, and prints them using a
column layout such as small-int, wide-int, long-int or string.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfigWithExplicitFlag(cfgFile, cmd.Flags().Changed("config"))
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logLevel := cfg.LogLevel
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			logLevel = "debug"
		}
		logger = logging.New(logLevel, cfg.LogFormat, cmd.ErrOrStderr())
		return nil
	},
	Version: getVersion(),
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.adt.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log buffer statistics")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(layoutsCmd)
	rootCmd.AddCommand(configCmd)
}

// Set at build time
var version = "dev"

func getVersion() string {
	return version
}

// GetConfig returns the loaded configuration
func GetConfig() *config.Config {
	return cfg
}

// GetLogger returns the configured logger
func GetLogger() *logging.Logger {
	return logger
}
