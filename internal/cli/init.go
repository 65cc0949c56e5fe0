package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/huimingz/commitbuddy-go/internal/config"
	"github.com/spf13/cobra"
)

const defaultConfigTemplate = `# CommitBuddy Configuration File
# See: https://github.com/huimingz/commitbuddy-go

# Commit style used by 'commitbuddy commit'
style: conventional_jira

# Append "!" to the title of breaking-change commits
# (the BREAKING CHANGE footer is always written either way)
breaking_change_exclamation_in_title: false

# Charset used to read style resources (IANA name)
encoding: utf-8

# Override the bundled style description shown by 'commitbuddy info'
# info_path: ~/.commitbuddy-info.txt
`

var (
	initForce bool
	initLocal bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize CommitBuddy configuration",
	Long: `Create a default configuration file (~/.commitbuddy.yaml).

This command creates a template configuration file with the default
settings. Edit the file to change the commit style or its options.
Use --local to write the file into the current directory instead,
where it takes priority over the home configuration.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var configPath string
		if initLocal {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get current directory: %w", err)
			}
			configPath = filepath.Join(cwd, config.ConfigFileName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("failed to get home directory: %w", err)
			}
			configPath = filepath.Join(homeDir, config.ConfigFileName)
		}

		// Check if file exists
		if _, err := os.Stat(configPath); err == nil && !initForce {
			return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", configPath)
		}

		// Write config file
		err := os.WriteFile(configPath, []byte(defaultConfigTemplate), 0600)
		if err != nil {
			return fmt.Errorf("failed to write config file: %w", err)
		}

		fmt.Printf("✅ Configuration file created: %s\n", configPath)
		fmt.Println("\nNext steps:")
		fmt.Println("  1. Edit the config file to adjust the commit style options")
		fmt.Println("  2. Run 'commitbuddy commit' to write your first commit")

		return nil
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite existing config file")
	initCmd.Flags().BoolVar(&initLocal, "local", false, "Write the config file into the current directory")
	rootCmd.AddCommand(initCmd)
}
