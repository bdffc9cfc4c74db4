package webfetch

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL     = "internal"
	EINVALID      = "invalid"
	EROBOTSFETCH  = "robots_fetch"
	EROBOTSDENIED = "robots_denied"
	EFETCH        = "fetch"
	EFETCHSTATUS  = "fetch_status"
)

// Error represents an application-specific error.
// Application errors can be unwrapped by the caller to extract the code and message.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable error message.
	Message string

	// Underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("webfetch error: code=%s message=%s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("webfetch error: code=%s message=%s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapError returns an Error with a given code and formatted message that wraps err.
func WrapError(code string, err error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// PolicyDeniedError is returned when a site's robots.txt does not allow
// autonomous fetching of a URL.
type PolicyDeniedError struct {
	RobotsURL  string
	UserAgent  string
	URL        string
	RobotsText string

	// StatusCode is set when the denial comes from the robots.txt request
	// itself (401 or 403) rather than from its rules.
	StatusCode int
}

func (e *PolicyDeniedError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("When fetching robots.txt (%s), received status %d so assuming that autonomous fetching is not allowed, "+
			"the user can try manually fetching by using the fetch prompt", e.RobotsURL, e.StatusCode)
	}
	return fmt.Sprintf("The site's robots.txt (%s) specifies that autonomous fetching of this page is not allowed, "+
		"<useragent>%s</useragent>\n"+
		"<url>%s</url>"+
		"<robots>\n%s\n</robots>\n"+
		"The assistant must let the user know that it failed to view the page. "+
		"The assistant may provide further guidance based on the above information.\n"+
		"The assistant can tell the user that they can try manually fetching the page by using the fetch prompt within their UI.",
		e.RobotsURL, e.UserAgent, e.URL, e.RobotsText)
}

// StatusError is returned when a fetched resource responds with status >= 400.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Failed to fetch %s - status code %d", e.URL, e.StatusCode)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	var denied *PolicyDeniedError
	var status *StatusError
	switch {
	case errors.As(err, &e):
		return e.Code
	case errors.As(err, &denied):
		return EROBOTSDENIED
	case errors.As(err, &status):
		return EFETCHSTATUS
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	var denied *PolicyDeniedError
	var status *StatusError
	switch {
	case errors.As(err, &e):
		if e.Err != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Err)
		}
		return e.Message
	case errors.As(err, &denied):
		return denied.Error()
	case errors.As(err, &status):
		return status.Error()
	}
	return "Internal error."
}
