package cz

import (
	"errors"
	"strings"
	"testing"

	"github.com/huimingz/commitbuddy-go/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScope(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "plain word", text: "parser", want: "parser"},
		{name: "spaces become hyphens", text: "My Class", want: "My-Class"},
		{name: "surrounding whitespace trimmed", text: "  My Class  ", want: "My-Class"},
		{name: "runs of whitespace collapse", text: "a   b\tc", want: "a-b-c"},
		{name: "empty stays empty", text: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseScope(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSubject(t *testing.T) {
	t.Run("trailing period removed", func(t *testing.T) {
		got, err := parseSubject("fix a bug.")
		require.NoError(t, err)
		assert.Equal(t, "fix a bug", got)
	})

	t.Run("trailing periods and whitespace removed", func(t *testing.T) {
		got, err := parseSubject("fix a bug...  ")
		require.NoError(t, err)
		assert.Equal(t, "fix a bug", got)
	})

	t.Run("inner periods survive", func(t *testing.T) {
		got, err := parseSubject("support v2.0 manifests")
		require.NoError(t, err)
		assert.Equal(t, "support v2.0 manifests", got)
	})

	t.Run("whitespace only is rejected", func(t *testing.T) {
		_, err := parseSubject("   ")
		require.Error(t, err)

		var reqErr *RequiredFieldError
		require.True(t, errors.As(err, &reqErr))
		assert.Equal(t, "Subject is required.", reqErr.Error())
	})

	t.Run("lone period is rejected", func(t *testing.T) {
		_, err := parseSubject(".")
		require.Error(t, err)

		var reqErr *RequiredFieldError
		assert.True(t, errors.As(err, &reqErr))
	})
}

func TestParseJiraIssues(t *testing.T) {
	t.Run("single key", func(t *testing.T) {
		got, err := parseJiraIssues("JRA-123")
		require.NoError(t, err)
		assert.Equal(t, "JRA-123", got)
	})

	t.Run("extra whitespace collapses", func(t *testing.T) {
		got, err := parseJiraIssues("JRA-123  ABC-45")
		require.NoError(t, err)
		assert.Equal(t, "JRA-123 ABC-45", got)
	})

	t.Run("empty input is allowed", func(t *testing.T) {
		got, err := parseJiraIssues("")
		require.NoError(t, err)
		assert.Equal(t, "", got)
	})

	t.Run("lowercase key is rejected", func(t *testing.T) {
		_, err := parseJiraIssues("jra-123")
		require.Error(t, err)

		var valErr *AnswerValidationError
		require.True(t, errors.As(err, &valErr))
		assert.Equal(t, "Enter valid Jira issue keys (e.g., JRA-123).", valErr.Error())
	})

	t.Run("one bad key rejects the whole answer", func(t *testing.T) {
		_, err := parseJiraIssues("JRA-123 bogus")
		require.Error(t, err)

		var valErr *AnswerValidationError
		assert.True(t, errors.As(err, &valErr))
	})

	t.Run("single letter project is rejected", func(t *testing.T) {
		_, err := parseJiraIssues("J-1")
		assert.Error(t, err)
	})
}

func TestParseJiraWorkflow(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "single word", text: "closed", want: "#closed"},
		{name: "spaces become hyphens", text: "in review", want: "#in-review"},
		{name: "trimmed before prefixing", text: "  testing  ", want: "#testing"},
		{name: "empty stays empty", text: "", want: ""},
		{name: "whitespace only stays empty", text: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseJiraWorkflow(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseJiraTime(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "hours and minutes", text: "3h 15m", want: "#time 3h 15m"},
		{name: "trimmed before prefixing", text: "  1d  ", want: "#time 1d"},
		{name: "empty stays empty", text: "", want: ""},
		{name: "whitespace only stays empty", text: "  ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseJiraTime(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseJiraComment(t *testing.T) {
	t.Run("comment text kept verbatim", func(t *testing.T) {
		got, err := parseJiraComment("waiting on QA")
		require.NoError(t, err)
		assert.Equal(t, "#comment waiting on QA", got)
	})

	t.Run("empty stays empty", func(t *testing.T) {
		got, err := parseJiraComment("")
		require.NoError(t, err)
		assert.Equal(t, "", got)
	})

	t.Run("whitespace only stays empty", func(t *testing.T) {
		got, err := parseJiraComment("   ")
		require.NoError(t, err)
		assert.Equal(t, "", got)
	})
}

func TestParseBody(t *testing.T) {
	got, err := parseBody("first paragraph|second paragraph")
	require.NoError(t, err)
	assert.Equal(t, "first paragraph\nsecond paragraph", got)
}

// baseAnswers returns a validated answer set producing the smallest
// well-formed message. Tests mutate single fields from here.
func baseAnswers() Answers {
	return Answers{
		"jira_issues":        "",
		"jira_workflow":      "",
		"jira_time":          "",
		"jira_comment":       "",
		"prefix":             "fix",
		"scope":              "parser",
		"subject":            "handle empty input",
		"body":               "",
		"is_breaking_change": false,
		"footer":             "",
	}
}

func newTestStyle(exclamation bool) *ConventionalJiraStyle {
	cfg := config.DefaultConfig()
	cfg.BreakingChangeExclamationInTitle = exclamation
	return NewConventionalJiraStyle(cfg)
}

func TestConventionalJiraStyle_Message(t *testing.T) {
	t.Run("minimal message", func(t *testing.T) {
		style := newTestStyle(false)
		got := style.Message(baseAnswers())
		assert.Equal(t, "fix(parser): handle empty input", got)
	})

	t.Run("without scope", func(t *testing.T) {
		style := newTestStyle(false)
		answers := baseAnswers()
		answers["scope"] = ""

		got := style.Message(answers)
		assert.Equal(t, "fix: handle empty input", got)
	})

	t.Run("jira issues appear before the subject", func(t *testing.T) {
		style := newTestStyle(false)
		answers := baseAnswers()
		answers["jira_issues"] = "JRA-42"

		got := style.Message(answers)
		assert.Equal(t, "fix(parser): JRA-42 handle empty input", got)
	})

	t.Run("multiple jira issues stay space joined", func(t *testing.T) {
		style := newTestStyle(false)
		answers := baseAnswers()
		answers["jira_issues"] = "JRA-42 ABC-7"

		got := style.Message(answers)
		assert.Equal(t, "fix(parser): JRA-42 ABC-7 handle empty input", got)
	})

	t.Run("body is separated by a blank line", func(t *testing.T) {
		style := newTestStyle(false)
		answers := baseAnswers()
		answers["body"] = "the parser crashed on empty files"

		got := style.Message(answers)
		assert.Equal(t, "fix(parser): handle empty input\n\nthe parser crashed on empty files", got)
	})

	t.Run("jira metadata section joins the present parts", func(t *testing.T) {
		style := newTestStyle(false)
		answers := baseAnswers()
		answers["jira_workflow"] = "#closed"
		answers["jira_time"] = "#time 3h 15m"
		answers["jira_comment"] = "#comment looks good"

		got := style.Message(answers)
		assert.Equal(t, "fix(parser): handle empty input\n\n#closed #time 3h 15m #comment looks good", got)
	})

	t.Run("absent metadata parts leave no gaps", func(t *testing.T) {
		style := newTestStyle(false)
		answers := baseAnswers()
		answers["jira_time"] = "#time 45m"

		got := style.Message(answers)
		assert.Equal(t, "fix(parser): handle empty input\n\n#time 45m", got)
	})

	t.Run("footer is separated by a blank line", func(t *testing.T) {
		style := newTestStyle(false)
		answers := baseAnswers()
		answers["footer"] = "closes issue #12"

		got := style.Message(answers)
		assert.Equal(t, "fix(parser): handle empty input\n\ncloses issue #12", got)
	})

	t.Run("breaking change prefixes the footer", func(t *testing.T) {
		style := newTestStyle(true)
		answers := baseAnswers()
		answers["is_breaking_change"] = true
		answers["footer"] = "removes old API"

		got := style.Message(answers)
		assert.True(t, strings.HasPrefix(got, "fix(parser)!: "))
		assert.True(t, strings.HasSuffix(got, "\n\nBREAKING CHANGE: removes old API"))
	})

	t.Run("breaking change without footer text still renders the marker", func(t *testing.T) {
		style := newTestStyle(false)
		answers := baseAnswers()
		answers["is_breaking_change"] = true

		got := style.Message(answers)
		assert.True(t, strings.HasSuffix(got, "\n\nBREAKING CHANGE: "))
	})

	t.Run("exclamation only when configured", func(t *testing.T) {
		answers := baseAnswers()
		answers["is_breaking_change"] = true

		withFlag := newTestStyle(true).Message(answers)
		withoutFlag := newTestStyle(false).Message(answers)

		assert.True(t, strings.HasPrefix(withFlag, "fix(parser)!: "))
		assert.True(t, strings.HasPrefix(withoutFlag, "fix(parser): "))
	})

	t.Run("exclamation needs a breaking change", func(t *testing.T) {
		style := newTestStyle(true)

		got := style.Message(baseAnswers())
		assert.Equal(t, "fix(parser): handle empty input", got)
	})

	t.Run("all sections in order", func(t *testing.T) {
		style := newTestStyle(true)
		answers := Answers{
			"jira_issues":        "JRA-42",
			"jira_workflow":      "#closed",
			"jira_time":          "#time 3h",
			"jira_comment":       "#comment done",
			"prefix":             "feat",
			"scope":              "api",
			"subject":            "add bulk export",
			"body":               "exports all records\nsupports CSV and JSON",
			"is_breaking_change": true,
			"footer":             "removes the old export flag",
		}

		got := style.Message(answers)
		want := "feat(api)!: JRA-42 add bulk export\n" +
			"\n" +
			"exports all records\nsupports CSV and JSON\n" +
			"\n" +
			"#closed #time 3h #comment done\n" +
			"\n" +
			"BREAKING CHANGE: removes the old export flag"
		assert.Equal(t, want, got)
	})

	t.Run("composition is deterministic", func(t *testing.T) {
		style := newTestStyle(true)
		answers := baseAnswers()
		answers["jira_issues"] = "JRA-1"
		answers["is_breaking_change"] = true
		answers["footer"] = "drops legacy mode"

		first := style.Message(answers)
		second := style.Message(answers)
		assert.Equal(t, first, second)
	})
}

func TestConventionalJiraStyle_Questions(t *testing.T) {
	style := newTestStyle(false)
	questions := style.Questions()

	wantOrder := []string{
		"jira_issues",
		"jira_workflow",
		"jira_time",
		"jira_comment",
		"prefix",
		"scope",
		"subject",
		"body",
		"is_breaking_change",
		"footer",
	}

	require.Len(t, questions, len(wantOrder))
	for i, name := range wantOrder {
		assert.Equal(t, name, questions[i].Name, "question %d", i)
	}

	t.Run("prefix choices carry stable keys", func(t *testing.T) {
		var prefix Question
		for _, q := range questions {
			if q.Name == "prefix" {
				prefix = q
			}
		}
		require.Equal(t, QuestionList, prefix.Type)

		wantKeys := map[string]string{
			"fix":      "x",
			"feat":     "f",
			"docs":     "d",
			"style":    "s",
			"refactor": "r",
			"perf":     "p",
			"test":     "t",
			"build":    "b",
			"chore":    "c",
			"ci":       "i",
		}
		require.Len(t, prefix.Choices, len(wantKeys))
		for _, choice := range prefix.Choices {
			assert.Equal(t, wantKeys[choice.Value], choice.Key, "choice %s", choice.Value)
		}
	})

	t.Run("breaking change defaults to no", func(t *testing.T) {
		for _, q := range questions {
			if q.Name == "is_breaking_change" {
				assert.Equal(t, QuestionConfirm, q.Type)
				assert.False(t, q.DefaultYes)
			}
		}
	})

	t.Run("filters are attached where validation happens", func(t *testing.T) {
		filtered := map[string]bool{}
		for _, q := range questions {
			filtered[q.Name] = q.Filter != nil
		}
		assert.True(t, filtered["jira_issues"])
		assert.True(t, filtered["subject"])
		assert.True(t, filtered["body"])
		assert.False(t, filtered["footer"])
	})
}
