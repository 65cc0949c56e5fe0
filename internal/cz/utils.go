package cz

import "strings"

// RequiredValidator returns text unchanged when it is non-empty and a
// RequiredFieldError carrying msg otherwise
func RequiredValidator(text, msg string) (string, error) {
	if text == "" {
		return "", &RequiredFieldError{Msg: msg}
	}
	return text, nil
}

// MultipleLineBreaker splits text on sep, trims each segment and joins the
// non-empty segments with newlines. It turns an answer typed on a single
// line into a multi-line block; consecutive separators collapse.
func MultipleLineBreaker(text, sep string) string {
	parts := strings.Split(text, sep)
	lines := make([]string, 0, len(parts))
	for _, part := range parts {
		if line := strings.TrimSpace(part); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
