// Package cmd provides the CLI commands for goalgraph.
package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"goalgraph/internal/config"
	"goalgraph/internal/logging"
)

// Version is the tool version, overridden at link time
var Version = "0.1.0"

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "goalgraph",
	Short: "Validate and plan dependencies between financial goals",
	Long: `goalgraph checks how financial goals depend on each other.

It reads goal files (HCL, YAML or JSON), reports circular dependencies,
references to unknown goals and deadline conflicts, and derives the
critical path and the order in which goals can be funded.

Examples:
  goalgraph validate goals.hcl
  goalgraph validate --format json ./goals
  goalgraph plan goals.yaml`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	defer logging.Sync()
	if err := rootCmd.Execute(); err != nil {
		logging.Error("command failed", zap.Error(err))
		return err
	}
	return nil
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.goalgraph.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		logging.Fatal("failed to load config", zap.String("path", path), zap.Error(err))
	}
	config.Set(cfg)

	// Initialize logging
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		logging.Warn("failed to initialize logging, keeping defaults", zap.Error(err))
	}
	logging.Debug("configuration loaded", zap.String("path", path))
	logging.Sugar.Debugf("default output format is %s", cfg.Output.DefaultFormat)
}

// runLogger returns the global logger tagged for one command invocation
func runLogger(cmd *cobra.Command) (*zap.Logger, string) {
	runID := uuid.NewString()
	return logging.With(zap.String("run_id", runID), zap.String("command", cmd.Name())), runID
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "goalgraph version %s\n", Version)
	},
}
