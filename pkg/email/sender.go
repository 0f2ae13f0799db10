package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/iota-uz/servicedesk/pkg/configuration"
)

// Sender is the outbound notification capability. Implementations must treat
// every call as independent; there is no batching or retry contract here.
type Sender interface {
	Send(ctx context.Context, recipient, subject, body string) error
}

type SMTPSender struct {
	cfg configuration.SMTPOptions
}

func NewSMTPSender(cfg configuration.SMTPOptions) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) Send(ctx context.Context, recipient, subject, body string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if !s.cfg.Configured() {
		return fmt.Errorf("smtp host not configured")
	}

	var auth smtp.Auth
	if s.cfg.User != "" {
		auth = smtp.PlainAuth("", s.cfg.User, s.cfg.Password, s.cfg.Host)
	}

	msg := strings.Join([]string{
		"From: " + s.cfg.From,
		"To: " + recipient,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		`Content-Type: text/plain; charset="utf-8"`,
		"",
		body,
	}, "\r\n")

	if err := smtp.SendMail(s.cfg.Addr(), auth, s.cfg.From, []string{recipient}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send mail via %s: %w", s.cfg.Addr(), err)
	}
	return nil
}

// LogSender is the fallback transport used when no SMTP host is configured.
// It reports success so that lifecycle operations behave the same with and
// without a real transport.
type LogSender struct {
	logger *logrus.Logger
}

func NewLogSender(logger *logrus.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(_ context.Context, recipient, subject, _ string) error {
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{
			"recipient": recipient,
			"subject":   subject,
		}).Info("email transport not configured, notification logged only")
	}
	return nil
}
