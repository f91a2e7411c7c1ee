package analysis

import "strings"

// User-facing messages for terminal-but-classifiable failures. The
// presentation layer shows these verbatim.
const (
	MsgInvalidRequest     = "Invalid request. Please check your inputs."
	MsgAccessDenied       = "Access denied. Please check your API key configuration."
	MsgRateLimited        = "Too many requests. Please wait a moment before trying again."
	MsgServiceUnavailable = "AI Service is temporarily unavailable. Please try again."
	MsgBlocked            = "Analysis was blocked by safety filters. Please try a different image or stock."
	MsgUnclassified       = "Failed to analyze stock. Please try again."
)

// UserError carries a human-readable message for the presentation layer.
// The original transport error stays reachable through Unwrap for logging.
type UserError struct {
	Message string
	cause   error
}

func (e *UserError) Error() string { return e.Message }

func (e *UserError) Unwrap() error { return e.cause }

// classifyUserError maps a terminal model-invocation failure to one of a
// small set of user-facing messages by matching substrings in the error.
func classifyUserError(err error) *UserError {
	msg := err.Error()
	userMsg := MsgUnclassified

	switch {
	case strings.Contains(msg, "400"):
		userMsg = MsgInvalidRequest
	case strings.Contains(msg, "403") || strings.Contains(msg, "API key"):
		userMsg = MsgAccessDenied
	case strings.Contains(msg, "429"):
		userMsg = MsgRateLimited
	case strings.Contains(msg, "500") || strings.Contains(msg, "503"):
		userMsg = MsgServiceUnavailable
	case strings.Contains(msg, "SAFETY") || strings.Contains(msg, "blocked"):
		userMsg = MsgBlocked
	}

	return &UserError{Message: userMsg, cause: err}
}
