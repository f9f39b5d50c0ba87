package prompt

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of a prompt failure
type ErrorType int

const (
	// ErrTypeConfig indicates an invalid layout, title or oversize content.
	// It is a programming error and is never retried.
	ErrTypeConfig ErrorType = iota
	// ErrTypeDisplay indicates the display sink failed to render a frame
	ErrTypeDisplay
	// ErrTypeContent indicates the caller's content writer failed
	ErrTypeContent
	// ErrTypeInput indicates the input source failed or the context ended
	ErrTypeInput
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeConfig:
		return "Config Error"
	case ErrTypeDisplay:
		return "Display Error"
	case ErrTypeContent:
		return "Content Error"
	case ErrTypeInput:
		return "Input Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// ErrRejected is returned by FinalAcceptPrompt when the user rejects.
// It is deliberately not an *Error.
var ErrRejected = errors.New("rejected by user")

// Error is a failure raised while preparing or running a prompt
type Error struct {
	Type    ErrorType // Category of error
	Message string    // Human-readable error message
	Page    int       // Zero-based page being shown, -1 if none
	Err     error     // Underlying error (if any)
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Type, e.Message)
	if e.Page >= 0 {
		msg = fmt.Sprintf("%s (page %d)", msg, e.Page+1)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// NewConfigError creates a configuration error
func NewConfigError(format string, args ...any) *Error {
	return &Error{Type: ErrTypeConfig, Message: fmt.Sprintf(format, args...), Page: -1}
}

// NewDisplayError wraps a sink failure on the given page
func NewDisplayError(page int, err error) *Error {
	return &Error{Type: ErrTypeDisplay, Message: "render failed", Page: page, Err: err}
}

// NewContentError wraps a content writer failure
func NewContentError(title string, err error) *Error {
	return &Error{Type: ErrTypeContent, Message: fmt.Sprintf("content for %q failed", title), Page: -1, Err: err}
}

// NewInputError wraps an input source failure
func NewInputError(err error) *Error {
	return &Error{Type: ErrTypeInput, Message: "reading input failed", Page: -1, Err: err}
}

func isType(err error, t ErrorType) bool {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Type == t
	}
	return false
}

// IsConfigError checks if an error is a configuration error
func IsConfigError(err error) bool {
	return isType(err, ErrTypeConfig)
}

// IsDisplayError checks if an error is a display error
func IsDisplayError(err error) bool {
	return isType(err, ErrTypeDisplay)
}

// IsContentError checks if an error is a content writer error
func IsContentError(err error) bool {
	return isType(err, ErrTypeContent)
}

// IsInputError checks if an error is an input error
func IsInputError(err error) bool {
	return isType(err, ErrTypeInput)
}
