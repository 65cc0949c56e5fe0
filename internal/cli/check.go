package cli

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/fatih/color"
	"github.com/huimingz/commitbuddy-go/internal/config"
	"github.com/huimingz/commitbuddy-go/internal/cz"
	"github.com/huimingz/commitbuddy-go/internal/git"
	"github.com/huimingz/commitbuddy-go/internal/log"
	"github.com/spf13/cobra"
)

var (
	checkMessage     string
	checkMessageFile string
	checkRevRange    string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate commit messages against the style schema",
	Long: `Validate one or more commit messages against the configured style's
schema pattern.

The messages to check come from --message, from a file (suitable for the
git commit-msg hook, "#" comment lines are ignored), or from a revision
range.

Examples:
  commitbuddy check --message "fix: correct typo"
  commitbuddy check --commit-msg-file .git/COMMIT_EDITMSG
  commitbuddy check --rev-range origin/main..HEAD`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkMessage, "message", "m", "", "Commit message to check")
	checkCmd.Flags().StringVar(&checkMessageFile, "commit-msg-file", "", "Path to a file holding the commit message")
	checkCmd.Flags().StringVar(&checkRevRange, "rev-range", "", "Git revision range whose commit messages are checked")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log.DebugConfig("Configuration", cfg)

	// Resolve the commit style
	factory := cz.NewStyleFactory()
	style, err := factory.CreateFromConfig(cfg, styleName)
	if err != nil {
		return err
	}

	pattern, err := regexp.Compile(style.SchemaPattern())
	if err != nil {
		return fmt.Errorf("invalid schema pattern for style %s: %w", style.Name(), err)
	}

	messages, err := collectCheckMessages(ctx)
	if err != nil {
		return err
	}

	if len(messages) == 0 {
		fmt.Println("No commit messages to check.")
		return nil
	}

	var failed []string
	for _, message := range messages {
		if !matchesSchema(pattern, message) {
			failed = append(failed, message)
		}
	}

	if len(failed) > 0 {
		red := color.New(color.FgRed)
		red.Println("commit validation failed!")
		fmt.Printf("\nExpected schema:\n%s\n", style.Schema())
		for _, message := range failed {
			fmt.Printf("\ncommit %q does not follow the schema\n", message)
		}
		return fmt.Errorf("%d of %d commit message(s) do not follow the %s schema", len(failed), len(messages), style.Name())
	}

	fmt.Printf("✅ All %d commit message(s) follow the %s schema.\n", len(messages), style.Name())
	return nil
}

// collectCheckMessages gathers the messages to validate from exactly one
// of the supported sources
func collectCheckMessages(ctx context.Context) ([]string, error) {
	switch {
	case checkMessage != "":
		return []string{strings.TrimSpace(checkMessage)}, nil

	case checkMessageFile != "":
		raw, err := os.ReadFile(checkMessageFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read commit message file: %w", err)
		}
		message := stripCommentLines(string(raw))
		if message == "" {
			return nil, nil
		}
		return []string{message}, nil

	case checkRevRange != "":
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		return git.NewExecutor(cwd).LogMessages(ctx, checkRevRange)

	default:
		return nil, fmt.Errorf("one of --message, --commit-msg-file or --rev-range is required")
	}
}

// matchesSchema reports whether the message satisfies the schema pattern.
// The pattern is anchored at the end only, so the match must additionally
// start at the beginning of the message.
func matchesSchema(pattern *regexp.Regexp, message string) bool {
	loc := pattern.FindStringIndex(message)
	return loc != nil && loc[0] == 0
}

// stripCommentLines removes the "#" comment lines git adds to the message
// buffer while a commit is being edited
func stripCommentLines(message string) string {
	lines := strings.Split(message, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(line, "#") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}
