package cli

import (
	"fmt"

	"github.com/huimingz/commitbuddy-go/internal/config"
	"github.com/huimingz/commitbuddy-go/internal/cz"
	"github.com/spf13/cobra"
)

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Show an example commit message",
	Long:  `Show an example commit message written in the active style.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		factory := cz.NewStyleFactory()
		style, err := factory.CreateFromConfig(cfg, styleName)
		if err != nil {
			return err
		}

		fmt.Println(style.Example())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exampleCmd)
}
