// Package smtp implements the mailer interface over SMTP.
package smtp

import (
	"context"
	"fmt"

	"accounts/pkg/mailer"
	"accounts/pkg/serrors"

	gomail "github.com/wneessen/go-mail"
)

// Options defines the configuration parameters for the SMTP connection.
type Options struct {
	// Host is the SMTP server hostname.
	Host string
	// Port is the SMTP server port.
	Port int
	// Username authenticates against the server, empty disables auth.
	Username string
	// Password is the credential for Username.
	Password string
	// From is the sender address placed on outgoing messages.
	From string
}

// SMTP implements mailer.Mailer using an SMTP client.
type SMTP struct {
	client *gomail.Client
	from   string
}

var _ mailer.Mailer = (*SMTP)(nil)

// New creates an SMTP mailer. The connection is established lazily on the
// first Send.
func New(options Options) (*SMTP, error) {
	opts := []gomail.Option{
		gomail.WithPort(options.Port),
	}
	if options.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(options.Username),
			gomail.WithPassword(options.Password),
		)
	}

	client, err := gomail.NewClient(options.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not create smtp client: %w", err)
	}

	return &SMTP{
		client: client,
		from:   options.From,
	}, nil
}

func (s *SMTP) Send(ctx context.Context, msg mailer.Message) error {
	m := gomail.NewMsg()
	if err := m.From(s.from); err != nil {
		return fmt.Errorf("could not set from address: %w", err)
	}
	// an unparseable recipient is a permanent failure, tag it so callers can
	// tell it apart from delivery errors
	if err := m.To(msg.To); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid recipient address")
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextPlain, msg.Body)

	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("could not send mail: %w", err)
	}

	return nil
}
