package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/huimingz/commitbuddy-go/internal/config"
	"github.com/huimingz/commitbuddy-go/internal/cz"
	"github.com/spf13/cobra"
)

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List available commit styles",
	Long:  `List all commit styles this build supports and mark the active one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		factory := cz.NewStyleFactory()
		active := cfg.GetStyle(styleName)

		bold := color.New(color.Bold)
		green := color.New(color.FgGreen)
		cyan := color.New(color.FgCyan)

		bold.Println("Available Styles:")
		fmt.Println()

		for _, name := range factory.Names() {
			if name == active {
				green.Printf("  ✓ %s (active)\n", name)
			} else {
				fmt.Printf("    %s\n", name)
			}

			style, err := factory.Create(name, cfg)
			if err != nil {
				continue
			}
			firstLine, _, _ := strings.Cut(style.Example(), "\n")
			cyan.Printf("      Example: %s\n", firstLine)
			fmt.Println()
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(stylesCmd)
}
