package model

import "context"

// Mailer delivers out-of-band notifications. Only password reset links
// go through it.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
