package scheduler

import "errors"

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidDuration = errors.New("duration must be positive")
)
