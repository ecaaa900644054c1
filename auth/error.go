package auth

import "fmt"

type ErrorReason string

const (
	REASON_ADMIN_DOES_NOT_EXIST ErrorReason = "ADMIN_DOES_NOT_EXIST"
	REASON_INVALID_CREDENTIALS  ErrorReason = "INVALID_CREDENTIALS"
	REASON_INVALID_TOKEN        ErrorReason = "INVALID_TOKEN"
	REASON_FAILED_TO_FETCH      ErrorReason = "FAILED_TO_FETCH"
)

type Error struct {
	Reason  ErrorReason
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s. Cause: %s", e.Reason, e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newAuthError(reason ErrorReason, message string, cause error) *Error {
	return &Error{
		Reason:  reason,
		Message: message,
		Cause:   cause,
	}
}

func NewAdminDoesNotExistError(username string) *Error {
	return newAuthError(REASON_ADMIN_DOES_NOT_EXIST, fmt.Sprintf("Admin %q does not exist", username), nil)
}

// NewInvalidCredentialsError covers both an unknown username and a wrong
// password so the response gives no enumeration signal.
func NewInvalidCredentialsError(cause error) *Error {
	return newAuthError(REASON_INVALID_CREDENTIALS, "Unknown username or wrong password", cause)
}

func NewInvalidTokenError(message string, cause error) *Error {
	return newAuthError(REASON_INVALID_TOKEN, message, cause)
}

func NewFailedToFetchError(message string, cause error) *Error {
	return newAuthError(REASON_FAILED_TO_FETCH, message, cause)
}
