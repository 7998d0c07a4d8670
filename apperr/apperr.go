package apperr

import "errors"

// Error kinds. Match with errors.Is against any error returned by the store or services.
var (
	ErrValidation      = errors.New("validation error")
	ErrNotFound        = errors.New("not found")
	ErrUpstreamQuery   = errors.New("upstream query error")
	ErrExternalService = errors.New("external service error")
	ErrTranslation     = errors.New("translation error")

	// ErrNotConfigured is returned by external clients that are missing credentials.
	ErrNotConfigured = errors.New("external service not configured")
)

// Error carries a client-safe message, its kind and the underlying cause.
type Error struct {
	kind  error
	msg   string
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

// Message is the part of the error that is safe to return to a caller.
func (e *Error) Message() string { return e.msg }

func (e *Error) Is(target error) bool { return target == e.kind }

func (e *Error) Unwrap() error { return e.cause }

func Validation(msg string) error { return &Error{kind: ErrValidation, msg: msg} }

func NotFound(msg string) error { return &Error{kind: ErrNotFound, msg: msg} }

func Upstream(msg string, cause error) error {
	return &Error{kind: ErrUpstreamQuery, msg: msg, cause: cause}
}

func External(msg string, cause error) error {
	return &Error{kind: ErrExternalService, msg: msg, cause: cause}
}

func Translation(msg string, cause error) error {
	return &Error{kind: ErrTranslation, msg: msg, cause: cause}
}

// Message returns the client-safe message of err, or fallback when err is not an *Error.
func Message(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) {
		return e.msg
	}
	return fallback
}
