package v1

import (
	"errors"

	"github.com/maslahat/backend/internal/service"
)

// Errors
const (
	UnknownErrorCode    = 0
	UnknownErrorMessage = "unknown error"

	PhoneAlreadyInUseCode    = 1001
	PhoneAlreadyInUseMessage = "phone number already in use"

	UserNotFoundCode    = 1002
	UserNotFoundMessage = "user does not exist"

	PasswordMismatchCode    = 1003
	PasswordMismatchMessage = "password does not match"

	CodeMismatchCode    = 1004
	CodeMismatchMessage = "code does not match"

	AlreadyVerifiedCode    = 1005
	AlreadyVerifiedMessage = "user already verified"

	ResendThrottledCode    = 1006
	ResendThrottledMessage = "too many code requests, try again later"

	RefreshTokenInvalidCode    = 1007
	RefreshTokenInvalidMessage = "refresh token invalid"

	RefreshTokenExpiredCode    = 1008
	RefreshTokenExpiredMessage = "refresh token expired"

	UserNotVerifiedCode    = 1009
	UserNotVerifiedMessage = "user not verified"

	ExpertNotFoundCode    = 1010
	ExpertNotFoundMessage = "expert not found"

	InvalidIdentifierCode    = 1011
	InvalidIdentifierMessage = "invalid identifier"
)

type ErrorCode int
type ErrorMessage string

type ErrorStruct struct {
	ErrorCode    `json:"error_code"`
	ErrorMessage `json:"error_message"`
} // @name ErrorStruct

type ValidationErrorStruct struct {
	ErrorCode    int               `json:"error_code"`
	ErrorMessage string            `json:"error_message"`
	Errors       []ValidationError `json:"validation_errors"`
}

type ValidationError struct {
	FieldKey     string `json:"field_key"`
	ErrorMessage string `json:"error_message"`
}

func getErrorStruct(code ErrorCode) *ErrorStruct {
	errorStruct := &ErrorStruct{
		ErrorCode:    UnknownErrorCode,
		ErrorMessage: UnknownErrorMessage,
	}

	switch code {
	case PhoneAlreadyInUseCode:
		errorStruct.ErrorCode = PhoneAlreadyInUseCode
		errorStruct.ErrorMessage = PhoneAlreadyInUseMessage
	case UserNotFoundCode:
		errorStruct.ErrorCode = UserNotFoundCode
		errorStruct.ErrorMessage = UserNotFoundMessage
	case PasswordMismatchCode:
		errorStruct.ErrorCode = PasswordMismatchCode
		errorStruct.ErrorMessage = PasswordMismatchMessage
	case CodeMismatchCode:
		errorStruct.ErrorCode = CodeMismatchCode
		errorStruct.ErrorMessage = CodeMismatchMessage
	case AlreadyVerifiedCode:
		errorStruct.ErrorCode = AlreadyVerifiedCode
		errorStruct.ErrorMessage = AlreadyVerifiedMessage
	case ResendThrottledCode:
		errorStruct.ErrorCode = ResendThrottledCode
		errorStruct.ErrorMessage = ResendThrottledMessage
	case RefreshTokenInvalidCode:
		errorStruct.ErrorCode = RefreshTokenInvalidCode
		errorStruct.ErrorMessage = RefreshTokenInvalidMessage
	case RefreshTokenExpiredCode:
		errorStruct.ErrorCode = RefreshTokenExpiredCode
		errorStruct.ErrorMessage = RefreshTokenExpiredMessage
	case UserNotVerifiedCode:
		errorStruct.ErrorCode = UserNotVerifiedCode
		errorStruct.ErrorMessage = UserNotVerifiedMessage
	case ExpertNotFoundCode:
		errorStruct.ErrorCode = ExpertNotFoundCode
		errorStruct.ErrorMessage = ExpertNotFoundMessage
	case InvalidIdentifierCode:
		errorStruct.ErrorCode = InvalidIdentifierCode
		errorStruct.ErrorMessage = InvalidIdentifierMessage
	}

	return errorStruct
}

// errorCodeFor maps service preconditions to wire-level error codes.
// Unmapped errors are infrastructure failures and belong to a 500 path.
func errorCodeFor(err error) (ErrorCode, bool) {
	switch {
	case errors.Is(err, service.ErrPhoneAlreadyInUse):
		return PhoneAlreadyInUseCode, true
	case errors.Is(err, service.ErrUserNotFound):
		return UserNotFoundCode, true
	case errors.Is(err, service.ErrPasswordMismatch):
		return PasswordMismatchCode, true
	case errors.Is(err, service.ErrCodeMismatch):
		return CodeMismatchCode, true
	case errors.Is(err, service.ErrAlreadyVerified):
		return AlreadyVerifiedCode, true
	case errors.Is(err, service.ErrResendThrottled):
		return ResendThrottledCode, true
	case errors.Is(err, service.ErrSessionNotFound):
		return RefreshTokenInvalidCode, true
	case errors.Is(err, service.ErrSessionExpired):
		return RefreshTokenExpiredCode, true
	case errors.Is(err, service.ErrUserNotVerified):
		return UserNotVerifiedCode, true
	case errors.Is(err, service.ErrExpertNotFound):
		return ExpertNotFoundCode, true
	}

	return UnknownErrorCode, false
}
