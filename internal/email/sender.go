package email

import (
	"fmt"
	"net/smtp"
	"strings"

	"flight-booking/pkg/utils"

	"go.uber.org/zap"
)

// Sender delivers plain-text mail over SMTP. With no host configured it
// logs the message instead, which keeps local development working
// without a mail relay.
type Sender struct {
	cfg utils.EmailConfig
	log *zap.Logger
}

func NewSender(cfg utils.EmailConfig, log *zap.Logger) *Sender {
	return &Sender{
		cfg: cfg,
		log: log.With(zap.String("component", "email_sender")),
	}
}

func (s *Sender) Send(to, subject, body string) error {
	if s.cfg.Host == "" {
		s.log.Info("SMTP not configured, logging message instead",
			zap.String("to", to),
			zap.String("subject", subject),
		)
		return nil
	}

	msg := buildMessage(s.cfg.From, to, subject, body)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var auth smtp.Auth
	if s.cfg.User != "" {
		auth = smtp.PlainAuth("", s.cfg.User, s.cfg.Password, s.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{to}, msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}

	s.log.Info("Email sent",
		zap.String("to", to),
		zap.String("subject", subject),
	)
	return nil
}

func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}
