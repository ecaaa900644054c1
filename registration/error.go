package registration

import "fmt"

type ErrorReason string

const (
	REASON_UNKNOWN_KIND              ErrorReason = "UNKNOWN_KIND"
	REASON_INVALID_FORM              ErrorReason = "INVALID_FORM"
	REASON_FAILED_TO_DECODE_METADATA ErrorReason = "FAILED_TO_DECODE_METADATA"
	REASON_FAILED_TO_WRITE           ErrorReason = "FAILED_TO_WRITE"
	REASON_FAILED_TO_FETCH           ErrorReason = "FAILED_TO_FETCH"
	REASON_ALREADY_RECORDED          ErrorReason = "ALREADY_RECORDED"
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

func newRegistrationError(reason ErrorReason, message string, cause error) *Error {
	return &Error{
		Reason:  reason,
		Message: message,
		Cause:   cause,
	}
}

func NewUnknownKindError(kind string) *Error {
	return newRegistrationError(REASON_UNKNOWN_KIND, fmt.Sprintf("Unknown registration kind: %q", kind), nil)
}

func NewInvalidFormError(message string, cause error) *Error {
	return newRegistrationError(REASON_INVALID_FORM, message, cause)
}

func NewFailedToDecodeMetadataError(message string, cause error) *Error {
	return newRegistrationError(REASON_FAILED_TO_DECODE_METADATA, message, cause)
}

func NewFailedToWriteError(message string, cause error) *Error {
	return newRegistrationError(REASON_FAILED_TO_WRITE, message, cause)
}

func NewFailedToFetchError(message string, cause error) *Error {
	return newRegistrationError(REASON_FAILED_TO_FETCH, message, cause)
}

func NewAlreadyRecordedError(paymentID string, cause error) *Error {
	return newRegistrationError(REASON_ALREADY_RECORDED, fmt.Sprintf("Payment %q is already recorded", paymentID), cause)
}
