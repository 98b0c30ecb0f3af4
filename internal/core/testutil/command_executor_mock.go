package testutil

import (
	"context"
	"errors"
)

// MockCommandExecutor is a mock implementation of ports.CommandExecutor.
type MockCommandExecutor struct {
	RunFunc func(ctx context.Context, name string, args ...string) (stdout string, stderr string, err error)
	// RunCalls records the argv of each call.
	RunCalls [][]string
}

// Run calls the mock RunFunc.
func (m *MockCommandExecutor) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	m.RunCalls = append(m.RunCalls, append([]string{name}, args...))
	if m.RunFunc != nil {
		return m.RunFunc(ctx, name, args...)
	}
	return "", "", errors.New("MockCommandExecutor.RunFunc not implemented")
}
