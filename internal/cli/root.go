package cli

import (
	"github.com/huimingz/commitbuddy-go/internal/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	debugMode  bool
	configFile string
	styleName  string

	// Version info
	version   = "dev"
	gitCommit = "unknown"
	buildTime = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "commitbuddy",
	Short: "Interactive Conventional Commits assistant with Jira support",
	Long: `CommitBuddy is a command-line tool that builds well-formed commit messages
by asking a fixed sequence of questions:
  - Conventional Commits types with scope and breaking-change support
  - Optional Jira issue keys and smart-commit metadata
  - Schema validation for commit-msg hooks and CI

Use "commitbuddy [command] --help" for more information about a command.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Set debug mode before any command runs
		if debugMode {
			log.SetDebugMode(true)
			log.Debug("Debug mode enabled")
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets version information from build flags
func SetVersionInfo(v, commit, time string) {
	version = v
	gitCommit = commit
	buildTime = time
}

// GetVersionInfo returns version information
func GetVersionInfo() (string, string, string) {
	return version, gitCommit, buildTime
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug mode for verbose output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file path (default: ~/.commitbuddy.yaml)")
	rootCmd.PersistentFlags().StringVar(&styleName, "style", "", "Commit style to use (overrides config)")
}
