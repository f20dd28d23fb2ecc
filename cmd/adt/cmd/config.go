package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pavanmanishd/adt/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Manage adt configuration files.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Initialize a new configuration file",
	Long: `Initialize a new configuration file with default values.

If no path is specified, the config will be created at ~/.adt.yaml`,
	Example: `  # Create config in home directory
  adt config init

  # Create config at specific path
  adt config init ./my-config.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the current configuration values.`,
	RunE:  runConfigShow,
}

var configExampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Show example configuration",
	Long:  `Display an example configuration file with all available options.`,
	RunE:  runConfigExample,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configExampleCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	var configPath string
	if len(args) > 0 {
		configPath = args[0]
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		configPath = filepath.Join(home, ".adt.yaml")
	}

	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("configuration file already exists: %s", configPath)
	}

	if err := config.DefaultConfig().SaveConfig(configPath); err != nil {
		return fmt.Errorf("failed to create configuration file: %w", err)
	}

	GetLogger().Info("Configuration file created", "path", configPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created at: %s\n", configPath)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Current Configuration:")
	fmt.Fprintf(out, "  Log Level: %s\n", cfg.LogLevel)
	fmt.Fprintf(out, "  Log Format: %s\n", cfg.LogFormat)
	fmt.Fprintf(out, "  Initial Capacity: %d\n", cfg.InitialCapacity)
	fmt.Fprintf(out, "  Default Layout: %s\n", cfg.DefaultLayout)
	fmt.Fprintf(out, "  Custom Layouts: %d\n", len(cfg.Layouts))
	return nil
}

func runConfigExample(cmd *cobra.Command, args []string) error {
	fmt.Fprint(cmd.OutOrStdout(), config.GenerateExampleConfig())
	return nil
}
