package aliasfinder

import (
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/AntonioJCosta/aliasfinder/internal/core/domain/match"
)

/*
Candidates yields the words joined by single spaces, followed by progressively
shorter texts with the last word removed, until no word is left. maxTrims caps
the number of removals; a negative value means no cap. The sequence is finite
and can be ranged over more than once.
*/
func Candidates(words []string, maxTrims int) iter.Seq[string] {
	return func(yield func(string) bool) {
		for n := len(words); n > 0; n-- {
			if maxTrims >= 0 && len(words)-n > maxTrims {
				return
			}
			if !yield(strings.Join(words[:n], " ")) {
				return
			}
		}
	}
}

// stopPolicy decides after a probe whether the search is over.
type stopPolicy func(mode match.Mode, matched int) bool

// stopAfterFirstProbe ends the on-demand search after one probe unless the mode
// is Default. Exact and Longer make no sense against shorter probes.
var stopAfterFirstProbe stopPolicy = func(mode match.Mode, _ int) bool {
	return mode != match.Default
}

// stopOnFirstMatch ends the automatic search at the first round that found anything.
var stopOnFirstMatch stopPolicy = func(_ match.Mode, matched int) bool {
	return matched > 0
}

// cheaperPossible reports whether any alias name can be shorter than text.
func cheaperPossible(text string) bool {
	return utf8.RuneCountInString(text) > 1
}
