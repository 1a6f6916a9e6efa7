package httpclient

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrRequestFailed  = errors.New("httpclient: request failed")
	ErrServiceError   = errors.New("httpclient: service error")
	ErrDecodeResponse = errors.New("httpclient: failed to decode response")
	ErrEncodeBody     = errors.New("httpclient: failed to encode request")
	ErrNoResponse     = errors.New("httpclient: no response received")
	ErrAuthFailed     = errors.New("httpclient: authentication failed")
	ErrUnknownClient  = errors.New("httpclient: client not registered")

	ErrUnauthorized = errors.New("httpclient: unauthorized")
	ErrForbidden    = errors.New("httpclient: forbidden")
	ErrNotFound     = errors.New("httpclient: not found")
	ErrConflict     = errors.New("httpclient: conflict")
	ErrRateLimited  = errors.New("httpclient: rate limited")
)

// Error is returned for every failed call: Code is zero when the request
// never produced a response.
type Error struct {
	Message  string
	Code     int
	Response string
	Type     string
	Err      error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}

	if e.Code != 0 {
		return fmt.Sprintf("httpclient: service returned status %d", e.Code)
	}

	if e.Err != nil {
		return e.Err.Error()
	}

	return ErrRequestFailed.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the status sentinels, so callers can test
// errors.Is(err, httpclient.ErrNotFound).
func (e *Error) Is(target error) bool {
	switch e.Code {
	case http.StatusUnauthorized:
		return target == ErrUnauthorized
	case http.StatusForbidden:
		return target == ErrForbidden
	case http.StatusNotFound:
		return target == ErrNotFound
	case http.StatusConflict:
		return target == ErrConflict
	case http.StatusTooManyRequests:
		return target == ErrRateLimited
	}

	return false
}

func NewServiceError(code int, message, response, errType string) *Error {
	return &Error{
		Message:  message,
		Code:     code,
		Response: response,
		Type:     errType,
		Err:      ErrServiceError,
	}
}

func newCallError(sentinel, cause error) *Error {
	return &Error{
		Message:  cause.Error(),
		Code:     0,
		Response: "",
		Type:     "",
		Err:      fmt.Errorf("%w: %w", sentinel, cause),
	}
}

func IsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}
