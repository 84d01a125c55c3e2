package sms

import "context"

// Sender delivers a text message to a phone number out-of-band.
// The auth flow only depends on this interface; the concrete gateway
// lives in the eskiz subpackage.
type Sender interface {
	Send(ctx context.Context, phoneNumber string, text string) error
}
