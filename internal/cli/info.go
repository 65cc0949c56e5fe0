package cli

import (
	"fmt"

	"github.com/huimingz/commitbuddy-go/internal/config"
	"github.com/huimingz/commitbuddy-go/internal/cz"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe the active commit style",
	Long: `Print the long-form description of the active commit style.

The bundled description can be replaced by pointing info_path in the
configuration file at a text file of your own.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := cfg.Validate(); err != nil {
			return err
		}

		factory := cz.NewStyleFactory()
		style, err := factory.CreateFromConfig(cfg, styleName)
		if err != nil {
			return err
		}

		info, err := style.Info()
		if err != nil {
			return fmt.Errorf("failed to load style info: %w", err)
		}

		fmt.Println(info)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
