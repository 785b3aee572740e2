package email

import (
	"fmt"
	"time"

	"github.com/go-mail/mail/v2"
)

type SMTPClient struct {
	dialer *mail.Dialer
	from   string
}

func NewSMTPClient(host string, port int, username, password, from string) *SMTPClient {
	dialer := mail.NewDialer(host, port, username, password)
	dialer.Timeout = 30 * time.Second

	if port == 587 {
		dialer.StartTLSPolicy = mail.MandatoryStartTLS
	} else if port == 465 {
		dialer.SSL = true
		dialer.StartTLSPolicy = mail.NoStartTLS
	} else {
		dialer.StartTLSPolicy = mail.OpportunisticStartTLS
	}

	return &SMTPClient{
		dialer: dialer,
		from:   from,
	}
}

// SendWelcome greets a newly registered customer.
func (s *SMTPClient) SendWelcome(to, name string) error {
	if name == "" {
		name = "there"
	}

	msg := mail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Welcome to our store")

	msg.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nYour account has been created. You can now sign in and start shopping.\n\nIf you did not create this account, please contact support.",
		name,
	))

	if err := s.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send welcome email: %w", err)
	}
	return nil
}
