package data

import "errors"

// ErrJobNotFound is returned when a job id has no record in the store.
var ErrJobNotFound = errors.New("job not found")

// ErrJobTerminal is returned when a terminal transition is attempted on a
// job that already reached completed or failed.
var ErrJobTerminal = errors.New("job already in terminal status")
