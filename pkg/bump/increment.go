package bump

// Increment represents a semantic version increment level
type Increment string

const (
	Major Increment = "MAJOR"
	Minor Increment = "MINOR"
	Patch Increment = "PATCH"
)

// String returns the string representation of the increment
func (i Increment) String() string {
	return string(i)
}

// IsValid checks if the increment is valid
func (i Increment) IsValid() bool {
	switch i {
	case Major, Minor, Patch:
		return true
	default:
		return false
	}
}

// ParseIncrement parses a string to an Increment, returning false when the
// string names no known level
func ParseIncrement(s string) (Increment, bool) {
	i := Increment(s)
	return i, i.IsValid()
}
