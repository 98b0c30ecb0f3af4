package ports

import (
	"context"

	"github.com/AntonioJCosta/aliasfinder/internal/core/domain/alias"
)

/*
AliasSource supplies the snapshot of alias definitions a query runs against.
Implementations return names already deduplicated, last definition wins.
This is a driven port.
*/
type AliasSource interface {
	Snapshot(ctx context.Context) ([]alias.Alias, error)
	// Describe returns a short human-readable description of where aliases come from.
	Describe() string
}
