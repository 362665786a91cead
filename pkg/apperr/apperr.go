package apperr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput marks user-correctable request problems: a missing or
	// blank field, or an unknown voice. Handlers answer these with 400.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUpstream marks a failed or unusable completion call.
	ErrUpstream = errors.New("upstream error")
)

// UpstreamError wraps the cause of a failed completion call.
type UpstreamError struct {
	Cause error
}

func (e *UpstreamError) Error() string {
	if e.Cause == nil {
		return ErrUpstream.Error()
	}
	return fmt.Sprintf("%s: %v", ErrUpstream, e.Cause)
}

func (e *UpstreamError) Unwrap() error { return e.Cause }

func (e *UpstreamError) Is(target error) bool { return target == ErrUpstream }

// Upstream wraps err as an UpstreamError. A nil err stays nil.
func Upstream(err error) error {
	if err == nil {
		return nil
	}
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return err
	}
	return &UpstreamError{Cause: err}
}

// Invalid returns an error wrapping ErrInvalidInput with a readable message.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Message strips the taxonomy prefix, leaving the text meant for the client.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var ue *UpstreamError
	if errors.As(err, &ue) && ue.Cause != nil {
		return ue.Cause.Error()
	}
	msg, _ := strings.CutPrefix(err.Error(), ErrInvalidInput.Error()+": ")
	return msg
}
