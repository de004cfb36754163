package mail

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopmart/backend/internal/adapter/config"
	"gopkg.in/gomail.v2"
)

// SMTPTransport delivers rendered notifications over SMTP. One SendRaw call
// is one delivery attempt; retries are left to the caller's policy.
type SMTPTransport struct {
	dialer *gomail.Dialer
	host   string
	from   string
}

func NewSMTPTransport(conf *config.SMTP) *SMTPTransport {
	return &SMTPTransport{
		dialer: gomail.NewDialer(conf.Host, conf.Port, conf.Username, conf.Password),
		host:   conf.Host,
		from:   conf.From,
	}
}

// SendRaw sends one message with text and HTML alternatives. gomail has no
// context support, so the dial-and-send runs in its own goroutine and the
// call abandons it once ctx expires; the timeout counts as a send failure.
func (t *SMTPTransport) SendRaw(ctx context.Context, to string, subject string, html string, text string) (string, error) {
	messageID := fmt.Sprintf("<%s@%s>", uuid.NewString(), t.host)

	m := gomail.NewMessage()
	m.SetHeader("From", t.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetHeader("Message-ID", messageID)
	m.SetBody("text/plain", text)
	if html != "" {
		m.AddAlternative("text/html", html)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- t.dialer.DialAndSend(m)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return "", fmt.Errorf("smtp send: %w", err)
		}
		return messageID, nil
	case <-ctx.Done():
		return "", fmt.Errorf("smtp send: %w", ctx.Err())
	}
}
