package query

import "errors"

var (
	ErrEmptyQuery = errors.New("query text is empty")
)
