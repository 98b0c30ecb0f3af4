package ports

import (
	"github.com/AntonioJCosta/aliasfinder/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasfinder/internal/core/domain/match"
)

// AliasFinderService defines the contract for matching typed commands against aliases.
type AliasFinderService interface {
	// Find runs the on-demand progressive search and returns every match in discovery order.
	Find(snapshot []alias.Alias, req match.Request) (match.Result, error)

	// Suggest runs the automatic variant and returns the best covering alias.
	Suggest(snapshot []alias.Alias, req match.Request) (match.Suggestion, error)
}
