// Package notify sends booking confirmations and OTP codes to customers
// over email and SMS.
package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/smtp"
)

var ErrSendFailed = errors.New("failed to send notification")

// Mailer delivers a plain-text email.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SMSSender delivers a short text message to a phone number.
type SMSSender interface {
	Send(ctx context.Context, phone, message string) error
}

// SMTPMailer sends mail through an SMTP relay using STARTTLS.
type SMTPMailer struct {
	host     string
	port     int
	sender   string
	password string
	logger   *slog.Logger
}

func NewSMTPMailer(host string, port int, sender, password string, logger *slog.Logger) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		sender:   sender,
		password: password,
		logger:   logger,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	// Without credentials we log instead of sending, so development
	// environments work without an SMTP account.
	if m.password == "" {
		m.logger.InfoContext(ctx, "email not configured, skipping send",
			"to", to, "subject", subject)
		return nil
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n%s",
		m.sender, to, subject, body)

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	auth := smtp.PlainAuth("", m.sender, m.password, m.host)
	if err := smtp.SendMail(addr, auth, m.sender, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	return nil
}

// LogSMSSender stands in for an SMS gateway. Messages are logged so the
// notification path stays observable; a provider integration can drop
// in behind SMSSender.
type LogSMSSender struct {
	apiKey string
	logger *slog.Logger
}

func NewLogSMSSender(apiKey string, logger *slog.Logger) *LogSMSSender {
	return &LogSMSSender{apiKey: apiKey, logger: logger}
}

func (s *LogSMSSender) Send(ctx context.Context, phone, message string) error {
	if s.apiKey == "" {
		s.logger.InfoContext(ctx, "sms not configured, skipping send", "phone", phone)
		return nil
	}
	s.logger.InfoContext(ctx, "sms sent", "phone", phone, "message", message)
	return nil
}
