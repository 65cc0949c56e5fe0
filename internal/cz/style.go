package cz

import (
	"github.com/huimingz/commitbuddy-go/pkg/bump"
)

// Style defines the interface for commit message styles
type Style interface {
	// Name returns the style name used in configuration
	Name() string

	// Questions returns the interview questions in prompt order
	Questions() []Question

	// Message assembles the commit message from the collected answers
	Message(answers Answers) string

	// Example returns an example commit message
	Example() string

	// Schema returns the human-readable layout of a commit message
	Schema() string

	// SchemaPattern returns the regular expression a well-formed commit
	// message matches
	SchemaPattern() string

	// Info returns the long-form description of the style
	Info() (string, error)

	// BumpRules returns the version-bump artifacts of the style
	BumpRules() BumpRules
}

// BumpRule pairs a commit-title pattern with the version increment it demands
type BumpRule struct {
	Pattern   string
	Increment bump.Increment
}

// BumpRules carries the artifacts release tooling consumes to derive version
// bumps and changelog entries from commit history. The rules are data only;
// the bump engine itself lives outside this tool.
type BumpRules struct {
	// BumpPattern matches commit titles that may trigger a version bump
	BumpPattern string

	// BumpMap maps title patterns to increments. Order is precedence,
	// the first matching entry wins.
	BumpMap []BumpRule

	// BumpMapMajorVersionZero is BumpMap with MAJOR demoted to MINOR,
	// for projects still on a 0.x version
	BumpMapMajorVersionZero []BumpRule

	// ChangelogPattern selects the commits a changelog includes
	ChangelogPattern string

	// CommitParser extracts the change_type, scope, breaking and message
	// groups from a commit title
	CommitParser string

	// ChangeTypeMap renames parsed change types for changelog headings
	ChangeTypeMap map[string]string
}
