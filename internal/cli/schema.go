package cli

import (
	"fmt"

	"github.com/huimingz/commitbuddy-go/internal/config"
	"github.com/huimingz/commitbuddy-go/internal/cz"
	"github.com/spf13/cobra"
)

var schemaShowPattern bool

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Show the commit message schema",
	Long: `Show the commit message layout the active style produces.

With --pattern the matching regular expression is printed instead,
which is what 'commitbuddy check' validates messages against.`,
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

		if schemaShowPattern {
			fmt.Println(style.SchemaPattern())
			return nil
		}

		fmt.Println(style.Schema())
		return nil
	},
}

func init() {
	schemaCmd.Flags().BoolVar(&schemaShowPattern, "pattern", false, "Print the validation regular expression")
	rootCmd.AddCommand(schemaCmd)
}
