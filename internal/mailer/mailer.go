// Package mailer sends transactional email for the application.
package mailer

import (
	"context"
	"fmt"

	"quill/internal/config"
	"quill/internal/observability"

	"github.com/wneessen/go-mail"
)

// Message is a plain-text email to be delivered.
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}

// Mailer delivers messages. Implementations must be safe for concurrent use.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// smtpMailer delivers mail over SMTP using go-mail.
type smtpMailer struct {
	host     string
	port     int
	username string
	password string
}

// NewSMTPMailer creates a Mailer backed by the SMTP server from config.
func NewSMTPMailer(cfg *config.Config) Mailer {
	return &smtpMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUser,
		password: cfg.SMTPPassword,
	}
}

func (m *smtpMailer) Send(ctx context.Context, msg Message) error {
	mm := mail.NewMsg()
	if err := mm.From(msg.From); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := mm.To(msg.To); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	mm.Subject(msg.Subject)
	mm.SetBodyString(mail.TypeTextPlain, msg.Body)

	opts := []mail.Option{mail.WithPort(m.port)}
	if m.username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.username),
			mail.WithPassword(m.password),
		)
	} else {
		// Local dev relays (e.g. Mailpit) take unauthenticated plaintext.
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	}

	client, err := mail.NewClient(m.host, opts...)
	if err != nil {
		observability.MailDeliveries.WithLabelValues("error").Inc()
		return fmt.Errorf("failed to create mail client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, mm); err != nil {
		observability.MailDeliveries.WithLabelValues("error").Inc()
		return fmt.Errorf("failed to send mail: %w", err)
	}

	observability.MailDeliveries.WithLabelValues("sent").Inc()
	return nil
}
