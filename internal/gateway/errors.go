package gateway

import (
	"errors"
	"fmt"
)

// TransportError indicates no well-formed response could be obtained:
// network failure, timeout, non-2xx status without an error body, or
// malformed JSON.
type TransportError struct {
	Op         string
	StatusCode int // 0 when no response arrived
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// IsTransport reports whether err is (or wraps) a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
