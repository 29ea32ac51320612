package services

import (
	"context"
	"sync"
)

type stubGenerator struct {
	mu         sync.Mutex
	response   string
	err        error
	calls      int
	lastPrompt string
}

func (s *stubGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubGenerator) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
