package chat

import "errors"

var (
	ErrEmptyInput = errors.New("message text is empty")
)
