package cz

import "github.com/huimingz/commitbuddy-go/pkg/bump"

// bumpPattern matches commit titles that may trigger a version bump
const bumpPattern = `^((BREAKING[\-\ ]CHANGE|\w+)(\(.+\))?!?):`

// commitParser extracts the change_type, scope, breaking and message
// groups from a commit title for changelog generation
const commitParser = `^((?P<change_type>feat|fix|refactor|perf|BREAKING CHANGE)(?:\((?P<scope>[^()\r\n]*)\)|\()?(?P<breaking>!)?|\w+!):\s(?P<message>.*)?`

// bumpMap orders title patterns by precedence; the first matching entry
// decides the increment
var bumpMap = []BumpRule{
	{Pattern: `^.+!$`, Increment: bump.Major},
	{Pattern: `^BREAKING[\-\ ]CHANGE`, Increment: bump.Major},
	{Pattern: `^feat`, Increment: bump.Minor},
	{Pattern: `^fix`, Increment: bump.Patch},
	{Pattern: `^refactor`, Increment: bump.Patch},
	{Pattern: `^perf`, Increment: bump.Patch},
}

// bumpMapMajorVersionZero keeps pre-1.0 projects on minor bumps even for
// breaking changes
var bumpMapMajorVersionZero = []BumpRule{
	{Pattern: `^.+!$`, Increment: bump.Minor},
	{Pattern: `^BREAKING[\-\ ]CHANGE`, Increment: bump.Minor},
	{Pattern: `^feat`, Increment: bump.Minor},
	{Pattern: `^fix`, Increment: bump.Patch},
	{Pattern: `^refactor`, Increment: bump.Patch},
	{Pattern: `^perf`, Increment: bump.Patch},
}

var changeTypeMap = map[string]string{
	"feat":     "Feat",
	"fix":      "Fix",
	"refactor": "Refactor",
	"perf":     "Perf",
}

// BumpRules returns the version-bump artifacts of the style
func (s *ConventionalJiraStyle) BumpRules() BumpRules {
	return BumpRules{
		BumpPattern:             bumpPattern,
		BumpMap:                 bumpMap,
		BumpMapMajorVersionZero: bumpMapMajorVersionZero,
		ChangelogPattern:        bumpPattern,
		CommitParser:            commitParser,
		ChangeTypeMap:           changeTypeMap,
	}
}
