package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/huimingz/commitbuddy-go/internal/config"
	"github.com/huimingz/commitbuddy-go/internal/cz"
	"github.com/huimingz/commitbuddy-go/internal/git"
	"github.com/huimingz/commitbuddy-go/internal/interview"
	"github.com/huimingz/commitbuddy-go/internal/log"
	"github.com/huimingz/commitbuddy-go/internal/ui"
	"github.com/spf13/cobra"
)

var (
	commitDryRun  bool
	commitAutoYes bool
	commitAll     bool
	commitSignoff bool
)

var commitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Build a commit message interactively and create the commit",
	Long: `Build a commit message by answering a fixed sequence of questions.

This command will:
1. Ask about Jira issues, change type, scope, subject, body and footer
2. Assemble a Conventional Commits message from the answers
3. Ask for confirmation before committing

Examples:
  commitbuddy commit
  commitbuddy commit --dry-run
  commitbuddy commit -a -y
  commitbuddy commit --style conventional_jira`,
	RunE: runCommit,
}

func init() {
	commitCmd.Flags().BoolVar(&commitDryRun, "dry-run", false, "Print the message without creating a commit")
	commitCmd.Flags().BoolVarP(&commitAutoYes, "yes", "y", false, "Auto-confirm the commit without prompting")
	commitCmd.Flags().BoolVarP(&commitAll, "all", "a", false, "Stage modified and deleted tracked files before committing")
	commitCmd.Flags().BoolVarP(&commitSignoff, "signoff", "s", false, "Add a Signed-off-by trailer to the commit")
	rootCmd.AddCommand(commitCmd)
}

func runCommit(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler := NewInterruptHandler(cancel)
	handler.Start()
	defer handler.Stop()

	// Load configuration
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log.DebugConfig("Configuration", cfg)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Resolve the commit style (CLI flag > env > config > default)
	factory := cz.NewStyleFactory()
	style, err := factory.CreateFromConfig(cfg, styleName)
	if err != nil {
		return err
	}

	log.Debug("Using style: %s", style.Name())

	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Create git executor
	gitExec := git.NewExecutor(cwd)

	if !commitDryRun {
		// Check if there is anything to commit
		staged, err := gitExec.DiffCached(ctx)
		if err != nil {
			return fmt.Errorf("failed to get staged changes: %w", err)
		}

		unstaged := ""
		if commitAll {
			unstaged, err = gitExec.Diff(ctx)
			if err != nil {
				return fmt.Errorf("failed to get unstaged changes: %w", err)
			}
		}

		if staged == "" && unstaged == "" {
			fmt.Println("No staged changes found.")
			fmt.Println("\nTo stage changes, use:")
			fmt.Println("  git add <file>")
			fmt.Println("  git add -A")
			return nil
		}

		if branch, err := gitExec.CurrentBranch(ctx); err == nil {
			log.Debug("Committing on branch: %s", branch)
		}
	}

	// Run the interview
	prompter := ui.NewPrompter(os.Stdin, os.Stdout)
	interviewer := interview.New(prompter)

	answers, err := interviewer.Run(ctx, style.Questions())
	if err != nil {
		if isCancelled(err) {
			fmt.Println("\nCommit cancelled.")
			return nil
		}
		return err
	}

	// Assemble the commit message
	commitMessage := style.Message(answers)

	// Print the commit message
	err = ui.ShowCommitMessage(commitMessage, os.Stdout)
	if err != nil {
		return err
	}

	if commitDryRun {
		return nil
	}

	// Ask for confirmation (default is Yes)
	if !commitAutoYes {
		confirmed, err := prompter.ConfirmWithDefault("\nDo you want to commit with this message?", true)
		if err != nil {
			if isCancelled(err) {
				fmt.Println("\nCommit cancelled.")
				return nil
			}
			return err
		}
		if !confirmed {
			fmt.Println("Commit cancelled.")
			return nil
		}
	}

	// Execute commit
	start := time.Now()
	err = gitExec.Commit(ctx, commitMessage, git.CommitOptions{All: commitAll, Signoff: commitSignoff})
	if err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	log.DebugDuration("git commit", time.Since(start))

	fmt.Println("\n✅ Commit created successfully!")
	return nil
}

// isCancelled reports whether the interview ended because the user backed
// out rather than because something failed
func isCancelled(err error) bool {
	return errors.Is(err, ui.ErrInterrupted) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, context.Canceled)
}
