package llm

import (
	"context"
	"sync"
)

// StubClient is a test double for Client. Reply/Err are returned verbatim;
// calls are recorded for assertions. The negotiation scenarios in this repo
// are required to pass with Err set on every call — decisions never depend on
// the model being reachable.
type StubClient struct {
	Reply string
	Err   error

	mu    sync.Mutex
	calls [][]Message
}

// Complete implements Client.
func (s *StubClient) Complete(_ context.Context, messages []Message, _ Options) (string, error) {
	s.mu.Lock()
	copied := make([]Message, len(messages))
	copy(copied, messages)
	s.calls = append(s.calls, copied)
	s.mu.Unlock()

	if s.Err != nil {
		return "", s.Err
	}
	return s.Reply, nil
}

// Calls returns the recorded conversations.
func (s *StubClient) Calls() [][]Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]Message, len(s.calls))
	copy(out, s.calls)
	return out
}

// CallCount returns how many completions were requested.
func (s *StubClient) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}
