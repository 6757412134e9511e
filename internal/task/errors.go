package task

import "errors"

var (
	ErrEmptyInput   = errors.New("input text is empty")
	ErrTaskNotFound = errors.New("task not found")
)
