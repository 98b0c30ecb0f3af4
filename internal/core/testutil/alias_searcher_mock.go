package testutil

import (
	"context"

	"github.com/AntonioJCosta/aliasfinder/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasfinder/internal/core/domain/match"
	"github.com/AntonioJCosta/aliasfinder/internal/core/ports"
)

// MockAliasSearcher is a mock implementation of ports.AliasSearcher.
type MockAliasSearcher struct {
	SearchFunc func(snapshot []alias.Alias, probe match.Probe) ([]alias.Alias, error)
	// Probes records every probe received, in order.
	Probes []match.Probe
}

// Search records the probe and calls SearchFunc if set.
func (m *MockAliasSearcher) Search(snapshot []alias.Alias, probe match.Probe) ([]alias.Alias, error) {
	m.Probes = append(m.Probes, probe)
	if m.SearchFunc != nil {
		return m.SearchFunc(snapshot, probe)
	}
	return nil, nil
}

var _ ports.AliasSearcher = (*MockAliasSearcher)(nil)

// MockAliasSource is a mock implementation of ports.AliasSource.
type MockAliasSource struct {
	Aliases     []alias.Alias
	Err         error
	Description string
}

func (m *MockAliasSource) Snapshot(_ context.Context) ([]alias.Alias, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Aliases, nil
}

func (m *MockAliasSource) Describe() string {
	return m.Description
}

var _ ports.AliasSource = (*MockAliasSource)(nil)
