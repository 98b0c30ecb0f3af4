package linesearch

import (
	"fmt"
	"unicode/utf8"

	"github.com/AntonioJCosta/aliasfinder/internal/core/domain/match"
)

// maxRepeat is the largest bounded repetition the stdlib engine accepts.
const maxRepeat = 1000

// Pattern is a compiled-to-be search over listing lines.
type Pattern struct {
	Main   string
	Filter string // optional pre-filter, empty when unused
}

/*
BuildPattern constructs the patterns for a probe. Lines have the form
name='command' as rendered by alias.Alias.Line, and the surrounding quotes
are part of every pattern so that a quote in the text only matches a quote
inside the command.

  - Exact requires the command to equal the text.
  - Longer requires the text anywhere in the command.
  - Default requires the command to start with the text.

Cheaper adds a pre-filter on the name: 1 to len(text)-1 characters. The
caller must not build a Cheaper pattern for texts of one rune or less.
*/
func BuildPattern(probe match.Probe) Pattern {
	text := Escape(probe.Text)

	var p Pattern
	switch probe.Mode {
	case match.Exact:
		p.Main = fmt.Sprintf(`(?s)^[^=]*='%s'$`, text)
	case match.Longer:
		p.Main = fmt.Sprintf(`(?s)^[^=]*='.*%s.*'$`, text)
	default:
		p.Main = fmt.Sprintf(`(?s)^[^=]*='%s`, text)
	}

	if probe.Cheaper {
		limit := utf8.RuneCountInString(probe.Text) - 1
		if limit > maxRepeat {
			limit = maxRepeat
		}
		p.Filter = fmt.Sprintf(`(?s)^[^=]{1,%d}=`, limit)
	}
	return p
}
