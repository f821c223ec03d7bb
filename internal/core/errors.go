package core

// Error codes surfaced to clients at the protocol level.
const (
	ErrCodeBadRequest     = "bad_request"
	ErrCodeInvalidMessage = "invalid_message"
	ErrCodeRateLimited    = "rate_limited"
)

// Acknowledgment messages paired with CodeOK / CodeNotFound.
const (
	MsgLoggedIn          = "logged in"
	MsgDelivered         = "delivered"
	MsgRecipientNotFound = "recipient not found"
)

// CoreError wraps a code and human-readable message.
type CoreError struct {
	Code    string
	Message string
}

func (e *CoreError) Error() string {
	return e.Message
}
