// Package email sends HTML emails over SMTP.
package email

import (
	"fmt"

	"gopkg.in/mail.v2"
)

// Client sends emails through a single SMTP relay.
type Client struct {
	dialer *mail.Dialer
	from   string
}

// NewClient creates a Client for the given SMTP relay and sender address.
func NewClient(smtpHost string, smtpPort int, username, password, from string) *Client {
	return &Client{
		dialer: mail.NewDialer(smtpHost, smtpPort, username, password),
		from:   from,
	}
}

// Send delivers one HTML email to a single recipient.
func (c *Client) Send(to, subject, htmlBody string) error {
	message := mail.NewMessage()

	message.SetHeader("From", c.from)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)

	message.SetBody("text/html", htmlBody)

	if err := c.dialer.DialAndSend(message); err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}

	return nil
}
