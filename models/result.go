package models

// Result is the terminal outcome of a store or pipeline operation: a
// success flag plus a human-readable message for the user.
type Result struct {
	Success bool
	Message string
}

// Succeeded builds a successful Result.
func Succeeded(message string) Result {
	return Result{Success: true, Message: message}
}

// Failed builds a failed Result.
func Failed(message string) Result {
	return Result{Success: false, Message: message}
}
