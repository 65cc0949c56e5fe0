package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// CommitOptions represents options for git commit command
type CommitOptions struct {
	All     bool // stage modified and deleted tracked files first
	Signoff bool // add a Signed-off-by trailer
}

// Executor defines the interface for git command execution
type Executor interface {
	// Diff returns the diff of unstaged changes
	Diff(ctx context.Context) (string, error)

	// DiffCached returns the diff of staged changes
	DiffCached(ctx context.Context) (string, error)

	// Commit executes a git commit with the given message
	Commit(ctx context.Context, message string, opts CommitOptions) error

	// CurrentBranch returns the current branch name
	CurrentBranch(ctx context.Context) (string, error)

	// LogMessages returns the full commit messages of a revision range,
	// newest first
	LogMessages(ctx context.Context, revRange string) ([]string, error)
}

// DefaultExecutor is the default implementation of Executor
type DefaultExecutor struct {
	workDir string
}

// NewExecutor creates a new DefaultExecutor
func NewExecutor(workDir string) *DefaultExecutor {
	return &DefaultExecutor{workDir: workDir}
}

// runGit runs a git command and returns the output
func (e *DefaultExecutor) runGit(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = e.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s failed: %w\n%s", strings.Join(args, " "), err, stderr.String())
	}

	return strings.TrimSpace(stdout.String()), nil
}

// Diff returns the diff of unstaged changes
func (e *DefaultExecutor) Diff(ctx context.Context) (string, error) {
	return e.runGit(ctx, "diff")
}

// DiffCached returns the diff of staged changes
func (e *DefaultExecutor) DiffCached(ctx context.Context) (string, error) {
	return e.runGit(ctx, "diff", "--cached")
}

// Commit executes a git commit with the given message
func (e *DefaultExecutor) Commit(ctx context.Context, message string, opts CommitOptions) error {
	args := []string{"commit", "-m", message}
	if opts.All {
		args = append(args, "-a")
	}
	if opts.Signoff {
		args = append(args, "-s")
	}
	_, err := e.runGit(ctx, args...)
	return err
}

// CurrentBranch returns the current branch name
func (e *DefaultExecutor) CurrentBranch(ctx context.Context) (string, error) {
	return e.runGit(ctx, "rev-parse", "--abbrev-ref", "HEAD")
}

// LogMessages returns the full commit messages of the given revision range,
// newest first. An empty range means the whole history of HEAD.
func (e *DefaultExecutor) LogMessages(ctx context.Context, revRange string) ([]string, error) {
	args := []string{"log", "--format=%B%x00"}
	if revRange != "" {
		args = append(args, revRange)
	}

	output, err := e.runGit(ctx, args...)
	if err != nil {
		// Empty repo returns error, return no messages instead
		if strings.Contains(err.Error(), "does not have any commits") {
			return nil, nil
		}
		return nil, err
	}

	var messages []string
	for _, raw := range strings.Split(output, "\x00") {
		if msg := strings.TrimSpace(raw); msg != "" {
			messages = append(messages, msg)
		}
	}
	return messages, nil
}
