package testutil

import "github.com/AntonioJCosta/aliasfinder/internal/core/ports"

// MockHistoryFileFinder returns a fixed path or error.
type MockHistoryFileFinder struct {
	Path string
	Err  error
	// FindFunc overrides Path and Err when set.
	FindFunc func() (string, error)
}

func (m *MockHistoryFileFinder) Find() (string, error) {
	if m.FindFunc != nil {
		return m.FindFunc()
	}
	return m.Path, m.Err
}

var _ ports.HistoryFileFinder = (*MockHistoryFileFinder)(nil)
