package cz

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
)

// commitTypes is the closed set of change-type tags a well-formed message
// may start with. The schema pattern is built from this same set so that
// prompting and validation cannot drift apart.
var commitTypes = []string{
	"build",
	"bump",
	"chore",
	"ci",
	"docs",
	"feat",
	"fix",
	"perf",
	"refactor",
	"revert",
	"style",
	"test",
}

//go:embed conventional_jira_info.txt
var conventionalJiraInfo string

// Example returns an example commit message
func (s *ConventionalJiraStyle) Example() string {
	return "fix: correct minor typos in code\n" +
		"\n" +
		"see the issue for details on the typos fixed\n" +
		"\n" +
		"closes issue #12"
}

// Schema returns the human-readable layout of a commit message
func (s *ConventionalJiraStyle) Schema() string {
	return "<type>(<scope>): <jira_issues> <subject>\n" +
		"<BLANK LINE>\n" +
		"<body>\n" +
		"<BLANK LINE>\n" +
		"<jira_workflow> <jira_time> <jira_comment>\n" +
		"(BREAKING CHANGE: )<footer>"
}

// SchemaPattern returns the regular expression a well-formed commit message
// matches. Newlines count as ordinary characters so the body may span
// multiple lines; the pattern is anchored at the end of input.
func (s *ConventionalJiraStyle) SchemaPattern() string {
	jiraIssuesPattern := `([A-Z]{2,}-\d+( [A-Z]{2,}-\d+)*)?`
	jiraMetadataPattern := `(?:\s#\w+(?: [^\s#]+)?)?`

	return `(?s)` +
		`(` + strings.Join(commitTypes, "|") + `)` + // type
		`(\(\S+\))?` + // optional scope
		`!?` +
		`: ` +
		jiraIssuesPattern + // Jira issues
		`\s*([^\n\r]+)?` + // subject
		`(\n\n.*)?` + // optional body
		`(` + jiraMetadataPattern + `)*` + // optional Jira metadata repeated
		`$`
}

// Info returns the long-form description of the style. A configured
// info_path overrides the bundled text and is decoded with the configured
// encoding.
func (s *ConventionalJiraStyle) Info() (string, error) {
	path, err := s.cfg.GetInfoPath()
	if err != nil {
		return "", err
	}
	if path == "" {
		return conventionalJiraInfo, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read info file: %w", err)
	}
	return decodeCharset(raw, s.cfg.GetEncoding())
}

// decodeCharset converts raw bytes from the named IANA charset into a
// UTF-8 string
func decodeCharset(raw []byte, charset string) (string, error) {
	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil {
		return "", fmt.Errorf("unsupported encoding %q: %w", charset, err)
	}
	if enc == nil {
		// The index knows the name but carries no converter. Such
		// charsets are ASCII-compatible, so the bytes pass through.
		return string(raw), nil
	}
	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("failed to decode info file: %w", err)
	}
	return string(decoded), nil
}
