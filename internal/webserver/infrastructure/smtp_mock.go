package infrastructure

import "sync"

type Email struct {
	Address string
	Subject string
	Body    string
}

type SMTPMock struct {
	sent []Email
	mu   sync.Mutex
}

func (s *SMTPMock) Send(address, subject, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sent = append(s.sent, Email{Address: address, Subject: subject, Body: body})
	return nil
}

// Sent returns the emails sent so far
func (s *SMTPMock) Sent() []Email {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Email(nil), s.sent...)
}
