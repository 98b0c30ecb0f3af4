/*
Package match defines the request and result types of the alias matcher.
*/
package match

import (
	"errors"

	"github.com/AntonioJCosta/aliasfinder/internal/core/domain/alias"
)

// ErrEmptyCommand is returned when a request carries no command text.
var ErrEmptyCommand = errors.New("no command text given")

// ErrNoMatch signals an expected empty outcome; callers usually stay silent on it.
var ErrNoMatch = errors.New("no matching alias found")

// Mode selects how a command text relates to an alias expansion.
type Mode int

const (
	// Default matches expansions that start with the command text.
	Default Mode = iota
	// Exact matches expansions equal to the command text.
	Exact
	// Longer matches expansions containing the command text anywhere.
	Longer
)

func (m Mode) String() string {
	switch m {
	case Exact:
		return "exact"
	case Longer:
		return "longer"
	default:
		return "default"
	}
}

// ModeFromFlags resolves the exact/longer flag pair. Exact wins when both are set.
func ModeFromFlags(exact, longer bool) Mode {
	if exact {
		return Exact
	}
	if longer {
		return Longer
	}
	return Default
}

// Request is one query against an alias snapshot.
type Request struct {
	CommandText string
	Mode        Mode
	Cheaper     bool // only aliases whose name is shorter than the command text
	Automatic   bool // rank and filter the way the preexec hook does
}

// Probe is a single search at one trim level.
type Probe struct {
	Text    string
	Mode    Mode
	Cheaper bool
}

// Result holds matches in discovery order. Duplicates across trim levels are kept.
type Result struct {
	Matches []alias.Alias
}

// Found reports whether any alias matched.
func (r Result) Found() bool {
	return len(r.Matches) > 0
}

/*
Suggestion is the outcome of the automatic variant: the shortest-named alias
that covers the typed command and how many other candidates were found.
Candidates is ordered by name length, shortest first.
*/
type Suggestion struct {
	Best       alias.Alias
	Additional int
	Candidates []alias.Alias
}

// Found reports whether a suggestion exists.
func (s Suggestion) Found() bool {
	return len(s.Candidates) > 0
}
