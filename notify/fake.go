package notify

import (
	"context"
	"sync"
)

// FakeMailer is a test implementation of Mailer that records messages.
type FakeMailer struct {
	mu     sync.Mutex
	Err    error
	Emails []FakeEmail
}

type FakeEmail struct {
	To      string
	Subject string
	Body    string
}

func NewFakeMailer() *FakeMailer {
	return &FakeMailer{}
}

func (m *FakeMailer) Send(ctx context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}
	m.Emails = append(m.Emails, FakeEmail{To: to, Subject: subject, Body: body})
	return nil
}

func (m *FakeMailer) Sent() []FakeEmail {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]FakeEmail, len(m.Emails))
	copy(out, m.Emails)
	return out
}

// FakeSMSSender is a test implementation of SMSSender.
type FakeSMSSender struct {
	mu       sync.Mutex
	Err      error
	Messages []FakeSMS
}

type FakeSMS struct {
	Phone   string
	Message string
}

func NewFakeSMSSender() *FakeSMSSender {
	return &FakeSMSSender{}
}

func (s *FakeSMSSender) Send(ctx context.Context, phone, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return s.Err
	}
	s.Messages = append(s.Messages, FakeSMS{Phone: phone, Message: message})
	return nil
}

func (s *FakeSMSSender) Sent() []FakeSMS {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]FakeSMS, len(s.Messages))
	copy(out, s.Messages)
	return out
}
