package e2e

import (
	"context"
	"errors"
	"sync"

	"github.com/moim-labs/moim/pkg/llm"
)

// errLLMDown is the scripted client's default answer. The pipeline is built
// to run whole negotiations on its deterministic fallbacks when the model is
// unreachable, so scenarios exercise exactly that path unless a test queues
// completions.
var errLLMDown = errors.New("completion endpoint unavailable")

// ScriptedLLM is an llm.Client fed from a queue. Each Complete call pops one
// entry; an empty queue answers errLLMDown. Safe for concurrent agents.
type ScriptedLLM struct {
	mu    sync.Mutex
	queue []scriptedCompletion
	calls int
}

type scriptedCompletion struct {
	text string
	err  error
}

func NewScriptedLLM() *ScriptedLLM {
	return &ScriptedLLM{}
}

// Complete implements llm.Client.
func (s *ScriptedLLM) Complete(_ context.Context, _ []llm.Message, _ llm.Options) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if len(s.queue) == 0 {
		return "", errLLMDown
	}
	next := s.queue[0]
	s.queue = s.queue[1:]
	return next.text, next.err
}

// EnqueueText queues one successful completion.
func (s *ScriptedLLM) EnqueueText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = append(s.queue, scriptedCompletion{text: text})
}

// EnqueueError queues one failing completion.
func (s *ScriptedLLM) EnqueueError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = append(s.queue, scriptedCompletion{err: err})
}

// Calls reports how many completions were requested so far.
func (s *ScriptedLLM) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
