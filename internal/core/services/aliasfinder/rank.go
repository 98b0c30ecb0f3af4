package aliasfinder

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/AntonioJCosta/aliasfinder/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasfinder/internal/core/domain/command"
)

// rank filters automatic-mode candidates against the typed command and orders
// them shortest name first. Ties keep discovery order.
func rank(candidates []alias.Alias, typed command.AnalyzedCommand, cheaper bool) []alias.Alias {
	seen := make(map[alias.Alias]bool, len(candidates))

	kept := make([]alias.Alias, 0, len(candidates))
	for _, a := range candidates {
		if !strings.HasPrefix(typed.Normalized, a.Command) {
			continue
		}
		if cheaper && utf8.RuneCountInString(a.Name) >= typed.Length {
			continue
		}
		if seen[a] {
			continue
		}
		seen[a] = true
		kept = append(kept, a)
	}

	slices.SortStableFunc(kept, func(x, y alias.Alias) int {
		return utf8.RuneCountInString(x.Name) - utf8.RuneCountInString(y.Name)
	})
	return kept
}
