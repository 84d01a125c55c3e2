package service

import "errors"

var (
	ErrUserNotFound      = errors.New("user does not exist")
	ErrPhoneAlreadyInUse = errors.New("phone number already in use")
	ErrPasswordMismatch  = errors.New("password does not match")
	ErrCodeMismatch      = errors.New("code does not match")
	ErrAlreadyVerified   = errors.New("user already verified")
	ErrUserNotVerified   = errors.New("user not verified")
	ErrResendThrottled   = errors.New("resend throttled")
	ErrSessionNotFound   = errors.New("refresh session not found")
	ErrSessionExpired    = errors.New("refresh session expired")

	ErrExpertNotFound = errors.New("expert not found")
)
