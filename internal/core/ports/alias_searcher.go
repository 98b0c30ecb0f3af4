package ports

import (
	"github.com/AntonioJCosta/aliasfinder/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasfinder/internal/core/domain/match"
)

/*
AliasSearcher returns the aliases of a snapshot matching a single probe, in
snapshot order. Every implementation must return the same set for the same
input; the choice between them is a performance matter only.
*/
type AliasSearcher interface {
	Search(snapshot []alias.Alias, probe match.Probe) ([]alias.Alias, error)
}
