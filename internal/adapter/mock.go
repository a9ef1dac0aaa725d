package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// MockAdapter returns simulated translations with a configurable delay.
// Used for development and testing without a real translation service.
type MockAdapter struct {
	Delay time.Duration
}

func (m *MockAdapter) Name() string { return "Mock" }

func (m *MockAdapter) Translate(ctx context.Context, req Request) (Result, error) {
	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return Result{}, fmt.Errorf("mock: %w", ctx.Err())
		}
	}

	text := strings.TrimSpace(req.Text)
	return Result{Text: fmt.Sprintf("[%s->%s] %s", req.SourceLang, req.TargetLang, text)}, nil
}

func (m *MockAdapter) Available() bool { return true }
