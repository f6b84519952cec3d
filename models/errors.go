package models

// ValidationError is returned when user input fails a pre-flight check.
// Message is shown to the user verbatim.
type ValidationError struct {
	Message string
	// Err is the sentinel identifying the failed check, if any.
	Err error
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
