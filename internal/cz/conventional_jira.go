package cz

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/huimingz/commitbuddy-go/internal/config"
)

// StyleNameConventionalJira is the configuration name of the Conventional
// Commits style with optional Jira metadata
const StyleNameConventionalJira = "conventional_jira"

var jiraIssueKeyPattern = regexp.MustCompile(`^[A-Z]{2,}-\d+$`)

func parseScope(text string) (string, error) {
	return strings.Join(strings.Fields(text), "-"), nil
}

func parseSubject(text string) (string, error) {
	return RequiredValidator(strings.TrimSpace(strings.TrimRight(text, ".")), "Subject is required.")
}

func parseJiraIssues(text string) (string, error) {
	issues := strings.Fields(text)
	for _, issue := range issues {
		if !jiraIssueKeyPattern.MatchString(issue) {
			return "", &AnswerValidationError{Msg: "Enter valid Jira issue keys (e.g., JRA-123)."}
		}
	}
	return strings.Join(issues, " "), nil
}

func parseJiraWorkflow(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", nil
	}
	return "#" + strings.ReplaceAll(trimmed, " ", "-"), nil
}

func parseJiraTime(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", nil
	}
	return "#time " + trimmed, nil
}

func parseJiraComment(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	return "#comment " + text, nil
}

func parseBody(text string) (string, error) {
	return MultipleLineBreaker(text, "|"), nil
}

// ConventionalJiraStyle produces Conventional Commits messages that may
// carry Jira issue keys in the title and Jira smart-commit metadata
// (workflow transition, time spent, comment) in a dedicated section
type ConventionalJiraStyle struct {
	cfg *config.Config
}

// NewConventionalJiraStyle creates a new ConventionalJiraStyle
func NewConventionalJiraStyle(cfg *config.Config) *ConventionalJiraStyle {
	return &ConventionalJiraStyle{cfg: cfg}
}

// Name returns the style name
func (s *ConventionalJiraStyle) Name() string {
	return StyleNameConventionalJira
}

// Questions returns the interview questions in prompt order
func (s *ConventionalJiraStyle) Questions() []Question {
	return []Question{
		{
			Type:    QuestionInput,
			Name:    "jira_issues",
			Message: "Jira Issue ID(s) separated by spaces (optional):\n",
			Filter:  parseJiraIssues,
		},
		{
			Type:    QuestionInput,
			Name:    "jira_workflow",
			Message: "Workflow command (testing, closed, etc.) (optional):\n",
			Filter:  parseJiraWorkflow,
		},
		{
			Type:    QuestionInput,
			Name:    "jira_time",
			Message: "Time spent (i.e. 3h 15m) (optional):\n",
			Filter:  parseJiraTime,
		},
		{
			Type:    QuestionInput,
			Name:    "jira_comment",
			Message: "Jira comment (optional):\n",
			Filter:  parseJiraComment,
		},
		{
			Type:    QuestionList,
			Name:    "prefix",
			Message: "Select the type of change you are committing",
			Choices: []Choice{
				{
					Value: "fix",
					Name:  "fix: A bug fix. Correlates with PATCH in SemVer",
					Key:   "x",
				},
				{
					Value: "feat",
					Name:  "feat: A new feature. Correlates with MINOR in SemVer",
					Key:   "f",
				},
				{
					Value: "docs",
					Name:  "docs: Documentation only changes",
					Key:   "d",
				},
				{
					Value: "style",
					Name: "style: Changes that do not affect the meaning of the code" +
						" (white-space, formatting, missing semi-colons, etc)",
					Key: "s",
				},
				{
					Value: "refactor",
					Name:  "refactor: A code change that neither fixes a bug nor adds a feature",
					Key:   "r",
				},
				{
					Value: "perf",
					Name:  "perf: A code change that improves performance",
					Key:   "p",
				},
				{
					Value: "test",
					Name:  "test: Adding missing or correcting existing tests",
					Key:   "t",
				},
				{
					Value: "build",
					Name: "build: Changes that affect the build system or external" +
						" dependencies (example scopes: pip, docker, npm)",
					Key: "b",
				},
				{
					Value: "chore",
					Name:  "chore: Other changes that don't modify src or test files",
					Key:   "c",
				},
				{
					Value: "ci",
					Name:  "ci: Changes to CI configuration files and scripts (example scopes: GitLabCI)",
					Key:   "i",
				},
			},
		},
		{
			Type:    QuestionInput,
			Name:    "scope",
			Message: "What is the scope of this change? (class or file name): (press [enter] to skip)\n",
			Filter:  parseScope,
		},
		{
			Type:    QuestionInput,
			Name:    "subject",
			Message: "Write a short and imperative summary of the code changes: (lower case and no period)\n",
			Filter:  parseSubject,
		},
		{
			Type:    QuestionInput,
			Name:    "body",
			Message: "Provide additional contextual information about the code changes: (press [enter] to skip)\n",
			Filter:  parseBody,
		},
		{
			Type:       QuestionConfirm,
			Name:       "is_breaking_change",
			Message:    "Is this a BREAKING CHANGE? Correlates with MAJOR in SemVer",
			DefaultYes: false,
		},
		{
			Type:    QuestionInput,
			Name:    "footer",
			Message: "Footer. Information about Breaking Changes and reference issues that this commit closes: (press [enter] to skip)\n",
		},
	}
}

// Message assembles the commit message from the collected answers. The
// answers are expected to have passed the question filters already; no
// validation happens here.
func (s *ConventionalJiraStyle) Message(answers Answers) string {
	jiraIssues := answers.String("jira_issues")
	jiraWorkflow := answers.String("jira_workflow")
	jiraTime := answers.String("jira_time")
	jiraComment := answers.String("jira_comment")

	prefix := answers.String("prefix")
	scope := answers.String("scope")
	subject := answers.String("subject")
	body := answers.String("body")
	footer := answers.String("footer")
	isBreakingChange := answers.Bool("is_breaking_change")

	title := prefix
	if scope != "" {
		title = fmt.Sprintf("%s(%s)", title, scope)
	}

	if isBreakingChange && s.cfg.BreakingChangeExclamationInTitle {
		title += "!"
	}

	if jiraIssues != "" {
		title = fmt.Sprintf("%s: %s %s", title, jiraIssues, subject)
	} else {
		title = fmt.Sprintf("%s: %s", title, subject)
	}

	formattedBody := ""
	if body != "" {
		formattedBody = "\n\n" + body
	}

	jiraParts := make([]string, 0, 3)
	for _, part := range []string{jiraWorkflow, jiraTime, jiraComment} {
		if part != "" {
			jiraParts = append(jiraParts, part)
		}
	}
	formattedJira := ""
	if len(jiraParts) > 0 {
		formattedJira = "\n\n" + strings.Join(jiraParts, " ")
	}

	// A breaking change always renders a footer section, even when the
	// user gave no footer text
	if isBreakingChange {
		footer = "BREAKING CHANGE: " + footer
	}
	formattedFooter := ""
	if footer != "" {
		formattedFooter = "\n\n" + footer
	}

	return title + formattedBody + formattedJira + formattedFooter
}
