package tui

import "errors"

var (
	// ErrUserQuit is returned when the user leaves a view before the
	// operation it shows has finished.
	ErrUserQuit = errors.New("user quit")

	errNoResult = errors.New("operation finished without a result")
)
