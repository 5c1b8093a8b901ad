package otp

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/everylingua/dealership-backend/notify"
)

func newTestService() (*Service, *MemoryStore, *notify.FakeMailer, *notify.FakeSMSSender) {
	store := NewMemoryStore()
	mailer := notify.NewFakeMailer()
	sms := notify.NewFakeSMSSender()
	svc := NewService(store, mailer, sms, slog.Default())
	return svc, store, mailer, sms
}

var codePattern = regexp.MustCompile(`\b\d{6}\b`)

func TestSendAndVerify(t *testing.T) {
	ctx := context.Background()
	svc, _, mailer, _ := newTestService()

	if err := svc.Send(ctx, "rider@example.com", "email"); err != nil {
		t.Fatalf("send: %v", err)
	}

	emails := mailer.Sent()
	if len(emails) != 1 {
		t.Fatalf("expected 1 email, got %d", len(emails))
	}
	code := codePattern.FindString(emails[0].Body)
	if code == "" {
		t.Fatalf("no code in email body: %q", emails[0].Body)
	}

	if err := svc.Verify(ctx, "rider@example.com", code); err != nil {
		t.Fatalf("verify: %v", err)
	}

	// A code can only be used once.
	if err := svc.Verify(ctx, "rider@example.com", code); !errors.Is(err, ErrNotFound) {
		t.Errorf("second verify err = %v, want ErrNotFound", err)
	}
}

func TestSendViaSMS(t *testing.T) {
	ctx := context.Background()
	svc, _, _, sms := newTestService()

	if err := svc.Send(ctx, "+919876543210", "sms"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if len(sms.Sent()) != 1 {
		t.Fatalf("expected 1 sms, got %d", len(sms.Sent()))
	}
}

func TestSendInvalidMethod(t *testing.T) {
	svc, _, _, _ := newTestService()

	if err := svc.Send(context.Background(), "rider@example.com", "carrier-pigeon"); !errors.Is(err, ErrInvalidMethod) {
		t.Errorf("err = %v, want ErrInvalidMethod", err)
	}
}

func TestVerifyWrongCodeAttempts(t *testing.T) {
	ctx := context.Background()
	svc, store, _, _ := newTestService()

	store.Put(ctx, "rider@example.com", Record{
		Code:      "123456",
		Method:    "email",
		ExpiresAt: time.Now().Add(Expiry),
	})

	for i := 0; i < 3; i++ {
		if err := svc.Verify(ctx, "rider@example.com", "000000"); !errors.Is(err, ErrInvalidCode) {
			t.Fatalf("attempt %d err = %v, want ErrInvalidCode", i+1, err)
		}
	}

	// Fourth attempt hits the limit and the code is purged, even for
	// the correct value.
	if err := svc.Verify(ctx, "rider@example.com", "123456"); !errors.Is(err, ErrTooManyAttempts) {
		t.Errorf("err = %v, want ErrTooManyAttempts", err)
	}
	if err := svc.Verify(ctx, "rider@example.com", "123456"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err after purge = %v, want ErrNotFound", err)
	}
}

func TestVerifyExpired(t *testing.T) {
	ctx := context.Background()
	svc, store, _, _ := newTestService()

	store.Put(ctx, "rider@example.com", Record{
		Code:      "123456",
		Method:    "email",
		ExpiresAt: time.Now().Add(-time.Minute),
	})

	if err := svc.Verify(ctx, "rider@example.com", "123456"); !errors.Is(err, ErrExpired) {
		t.Errorf("err = %v, want ErrExpired", err)
	}
}

func TestResendRequiresPending(t *testing.T) {
	ctx := context.Background()
	svc, _, mailer, _ := newTestService()

	if err := svc.Resend(ctx, "rider@example.com", "email"); !errors.Is(err, ErrNoPending) {
		t.Fatalf("err = %v, want ErrNoPending", err)
	}

	if err := svc.Send(ctx, "rider@example.com", "email"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if err := svc.Resend(ctx, "rider@example.com", "email"); err != nil {
		t.Fatalf("resend: %v", err)
	}
	if len(mailer.Sent()) != 2 {
		t.Errorf("expected 2 emails, got %d", len(mailer.Sent()))
	}
}
