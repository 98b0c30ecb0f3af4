package testutil

import (
	"github.com/AntonioJCosta/aliasfinder/internal/core/domain/command"
	"github.com/AntonioJCosta/aliasfinder/internal/core/ports"
)

// MockCommandAnalyzer records the raw command texts it is asked to analyze.
// Without AnalyzeFunc every text analyzes to the empty command.
type MockCommandAnalyzer struct {
	AnalyzeFunc  func(text string) command.AnalyzedCommand
	AnalyzeCalls []string
}

func NewMockCommandAnalyzer() *MockCommandAnalyzer {
	return &MockCommandAnalyzer{AnalyzeCalls: []string{}}
}

func (m *MockCommandAnalyzer) Analyze(text string) command.AnalyzedCommand {
	m.AnalyzeCalls = append(m.AnalyzeCalls, text)
	if m.AnalyzeFunc == nil {
		return command.AnalyzedCommand{}
	}
	return m.AnalyzeFunc(text)
}

var _ ports.CommandAnalyzer = (*MockCommandAnalyzer)(nil)
