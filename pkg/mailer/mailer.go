// Package mailer defines the outbound email interface used by background
// workers.
//
//go:generate mockgen -package mockmailer -source=mailer.go -destination=mock/mockmailer.go *
package mailer

import "context"

// Message is a single outbound email.
type Message struct {
	// To is the recipient address.
	To string
	// Subject is the subject line.
	Subject string
	// Body is the plain-text message body.
	Body string
}

// Mailer sends email messages.
type Mailer interface {
	// Send delivers the message. The context controls cancellation of the
	// delivery attempt.
	Send(ctx context.Context, msg Message) error
}
