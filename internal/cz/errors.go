package cz

// RequiredFieldError reports a mandatory answer that was left empty
type RequiredFieldError struct {
	Msg string
}

func (e *RequiredFieldError) Error() string {
	return e.Msg
}

// AnswerValidationError reports an answer that does not satisfy the
// question's expected format
type AnswerValidationError struct {
	Msg string
}

func (e *AnswerValidationError) Error() string {
	return e.Msg
}
