package testutil

import (
	"context"

	"github.com/AntonioJCosta/aliasfinder/internal/core/domain/history"
	"github.com/AntonioJCosta/aliasfinder/internal/core/ports"
)

// MockHistoryProvider stands in for the shell history reader used by audit.
type MockHistoryProvider struct {
	GetCommandFrequenciesFunc func(ctx context.Context, scanLimit int, outputLimit int) ([]history.CommandFrequency, error)
	GetSourceIdentifierFunc   func() string
	// Path is returned by GetHistoryFilePath.
	Path string
}

func (m *MockHistoryProvider) GetCommandFrequencies(ctx context.Context, scanLimit int, outputLimit int) ([]history.CommandFrequency, error) {
	if m.GetCommandFrequenciesFunc == nil {
		return nil, nil
	}
	return m.GetCommandFrequenciesFunc(ctx, scanLimit, outputLimit)
}

func (m *MockHistoryProvider) GetHistoryFilePath() string {
	return m.Path
}

func (m *MockHistoryProvider) GetSourceIdentifier() string {
	if m.GetSourceIdentifierFunc == nil {
		return "mock history"
	}
	return m.GetSourceIdentifierFunc()
}

var _ ports.HistoryProvider = (*MockHistoryProvider)(nil)
