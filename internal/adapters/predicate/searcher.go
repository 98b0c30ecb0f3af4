/*
Package predicate matches aliases with plain string predicates over
structured (name, command) pairs. It is the default search engine.
*/
package predicate

import (
	"strings"
	"unicode/utf8"

	"github.com/AntonioJCosta/aliasfinder/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasfinder/internal/core/domain/match"
	"github.com/AntonioJCosta/aliasfinder/internal/core/ports"
)

// Searcher implements ports.AliasSearcher with per-mode predicates.
type Searcher struct{}

// NewSearcher creates a new predicate Searcher.
func NewSearcher() ports.AliasSearcher {
	return &Searcher{}
}

// MatchExact reports whether the expansion equals the text.
func MatchExact(a alias.Alias, text string) bool {
	return a.Command == text
}

// MatchPrefix reports whether the expansion starts with the text.
func MatchPrefix(a alias.Alias, text string) bool {
	return strings.HasPrefix(a.Command, text)
}

// MatchContains reports whether the text occurs anywhere in the expansion.
func MatchContains(a alias.Alias, text string) bool {
	return strings.Contains(a.Command, text)
}

// Cheaper reports whether the alias name is strictly shorter than the text, in runes.
func Cheaper(a alias.Alias, text string) bool {
	n := utf8.RuneCountInString(a.Name)
	return n >= 1 && n < utf8.RuneCountInString(text)
}

// For returns the predicate used for a mode.
func For(mode match.Mode) func(alias.Alias, string) bool {
	switch mode {
	case match.Exact:
		return MatchExact
	case match.Longer:
		return MatchContains
	default:
		return MatchPrefix
	}
}

// Search returns the aliases of snapshot that satisfy the probe, in snapshot order.
func (s *Searcher) Search(snapshot []alias.Alias, probe match.Probe) ([]alias.Alias, error) {
	if probe.Cheaper && utf8.RuneCountInString(probe.Text) <= 1 {
		return nil, nil
	}
	pred := For(probe.Mode)

	var found []alias.Alias
	for _, a := range snapshot {
		if probe.Cheaper && !Cheaper(a, probe.Text) {
			continue
		}
		if pred(a, probe.Text) {
			found = append(found, a)
		}
	}
	return found, nil
}
