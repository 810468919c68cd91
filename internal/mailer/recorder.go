package mailer

import (
	"context"
	"sync"
)

// Recorder is a Mailer that records messages instead of delivering them.
// Used in tests and available behind SMTP_HOST="" for local runs.
type Recorder struct {
	mu       sync.Mutex
	messages []Message
	Err      error
}

// NewRecorder creates an in-memory Mailer.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Send(_ context.Context, msg Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.messages = append(r.messages, msg)
	return nil
}

// Messages returns a copy of everything sent so far.
func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Message, len(r.messages))
	copy(out, r.messages)
	return out
}
