package mailer

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/mpetrov/storefront-server/internal/logger"
	"github.com/mpetrov/storefront-server/internal/model"
)

var _ model.Mailer = (*SendGrid)(nil)

// SendGrid delivers mail through the SendGrid API.
type SendGrid struct {
	client *sendgrid.Client
	from   string
	logger *logger.Logger
}

// NewSendGrid creates a SendGrid mailer with the given API key and
// sender address.
func NewSendGrid(apiKey, from string, logger *logger.Logger) *SendGrid {
	return &SendGrid{
		client: sendgrid.NewSendClient(apiKey),
		from:   from,
		logger: logger,
	}
}

// Send delivers a plain-text message to a single recipient.
func (s *SendGrid) Send(ctx context.Context, to, subject, body string) error {
	message := mail.NewSingleEmail(
		mail.NewEmail("", s.from),
		subject,
		mail.NewEmail("", to),
		body,
		body,
	)

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 300 {
		return fmt.Errorf("failed to send email: status code %d", response.StatusCode)
	}

	s.logger.Debug("Mailer: email sent",
		"to", to,
		"subject", subject)

	return nil
}
