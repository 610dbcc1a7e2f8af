package openai

import (
	"errors"
	"fmt"
)

// ErrStreamInterrupted indicates a stream terminated before its done
// marker. Text accumulated up to that point must not be treated as a
// finalized reply.
var ErrStreamInterrupted = errors.New("openai: stream interrupted")

// APIError carries an upstream rejection or a malformed upstream
// response. The message never contains credentials.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("openai: API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("openai: %s", e.Message)
}
