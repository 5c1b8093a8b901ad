// Package otp issues and verifies one-time codes for user registration.
// Codes live for five minutes and allow three verification attempts.
package otp

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/everylingua/dealership-backend/notify"
)

const (
	Expiry      = 5 * time.Minute
	maxAttempts = 3
)

var (
	ErrNotFound        = errors.New("OTP not found or expired")
	ErrExpired         = errors.New("OTP has expired. Please request a new one")
	ErrTooManyAttempts = errors.New("too many failed attempts. Please request a new OTP")
	ErrInvalidCode     = errors.New("invalid OTP")
	ErrNoPending       = errors.New("no pending OTP found. Please start registration again")
	ErrInvalidMethod   = errors.New("invalid verification method")
)

// Record is a stored one-time code.
type Record struct {
	Code      string    `json:"code"`
	Method    string    `json:"method"`
	ExpiresAt time.Time `json:"expires_at"`
	Attempts  int       `json:"attempts"`
}

// Store persists pending codes keyed by the registration identifier
// (email address or phone number).
type Store interface {
	Put(ctx context.Context, identifier string, rec Record) error
	Get(ctx context.Context, identifier string) (Record, bool, error)
	Delete(ctx context.Context, identifier string) error
}

type Service struct {
	store  Store
	mailer notify.Mailer
	sms    notify.SMSSender
	logger *slog.Logger
}

func NewService(store Store, mailer notify.Mailer, sms notify.SMSSender, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		mailer: mailer,
		sms:    sms,
		logger: logger,
	}
}

// Send generates a new code for the identifier and delivers it over the
// requested channel ("email" or "sms").
func (s *Service) Send(ctx context.Context, identifier, method string) error {
	if method != "email" && method != "sms" {
		return ErrInvalidMethod
	}

	code, err := generateCode()
	if err != nil {
		return err
	}

	rec := Record{
		Code:      code,
		Method:    method,
		ExpiresAt: time.Now().Add(Expiry),
	}
	if err := s.store.Put(ctx, identifier, rec); err != nil {
		return fmt.Errorf("store otp: %w", err)
	}

	return s.deliver(ctx, identifier, method, code)
}

// Verify checks the provided code. The code is consumed on success and
// purged after expiry or too many failed attempts.
func (s *Service) Verify(ctx context.Context, identifier, code string) error {
	rec, ok, err := s.store.Get(ctx, identifier)
	if err != nil {
		return fmt.Errorf("load otp: %w", err)
	}
	if !ok {
		return ErrNotFound
	}

	if time.Now().After(rec.ExpiresAt) {
		_ = s.store.Delete(ctx, identifier)
		return ErrExpired
	}

	if rec.Attempts >= maxAttempts {
		_ = s.store.Delete(ctx, identifier)
		return ErrTooManyAttempts
	}

	if rec.Code != code {
		rec.Attempts++
		if err := s.store.Put(ctx, identifier, rec); err != nil {
			return fmt.Errorf("store otp: %w", err)
		}
		return fmt.Errorf("%w: %d attempts remaining", ErrInvalidCode, maxAttempts-rec.Attempts)
	}

	return s.store.Delete(ctx, identifier)
}

// Resend issues a fresh code only when one is already pending.
func (s *Service) Resend(ctx context.Context, identifier, method string) error {
	_, ok, err := s.store.Get(ctx, identifier)
	if err != nil {
		return fmt.Errorf("load otp: %w", err)
	}
	if !ok {
		return ErrNoPending
	}
	return s.Send(ctx, identifier, method)
}

func (s *Service) deliver(ctx context.Context, identifier, method, code string) error {
	switch method {
	case "email":
		body := fmt.Sprintf(`Welcome to EveryLingua AI!

Your registration OTP is: %s

This OTP is valid for %d minutes. Do not share it with anyone.
If you didn't request this OTP, please ignore this email.

Best regards,
EveryLingua AI Team
`, code, int(Expiry.Minutes()))
		return s.mailer.Send(ctx, identifier, "EveryLingua AI - Registration OTP", body)
	case "sms":
		return s.sms.Send(ctx, identifier, fmt.Sprintf("Your EveryLingua AI registration OTP is %s. Valid for %d minutes.", code, int(Expiry.Minutes())))
	}
	return ErrInvalidMethod
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
