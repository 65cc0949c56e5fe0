package cz

// QuestionType identifies how a question is rendered
type QuestionType string

const (
	// QuestionInput collects a single line of free text
	QuestionInput QuestionType = "input"
	// QuestionList selects one value from a fixed choice set
	QuestionList QuestionType = "list"
	// QuestionConfirm collects a yes/no answer
	QuestionConfirm QuestionType = "confirm"
)

// Choice is one selectable entry of a list question
type Choice struct {
	Value string // answer stored when selected
	Name  string // line shown to the user
	Key   string // single-character shortcut
}

// Filter transforms a raw answer before it is stored. A returned error
// keeps the question open until the user gives a valid answer.
type Filter func(text string) (string, error)

// Question describes one prompt of a style's interview
type Question struct {
	Type       QuestionType
	Name       string
	Message    string
	Choices    []Choice // list questions only
	DefaultYes bool     // confirm questions only
	Filter     Filter   // optional
}

// Answers holds the collected answers keyed by question name
type Answers map[string]any

// String returns the named answer as a string, or "" when absent or not
// a string
func (a Answers) String(name string) string {
	v, _ := a[name].(string)
	return v
}

// Bool returns the named answer as a bool, or false when absent or not
// a bool
func (a Answers) Bool(name string) bool {
	v, _ := a[name].(bool)
	return v
}
