package commandanalysis

import (
	"strings"
	"unicode/utf8"

	"github.com/AntonioJCosta/aliasfinder/internal/core/domain/command"
	"github.com/AntonioJCosta/aliasfinder/internal/core/ports"
)

// BasicAnalyzer provides a simple implementation of command analysis.
type BasicAnalyzer struct{}

// NewBasicAnalyzer creates a new BasicAnalyzer.
func NewBasicAnalyzer() ports.CommandAnalyzer {
	return &BasicAnalyzer{}
}

// Analyze normalizes a command string and breaks it into words.
func (a *BasicAnalyzer) Analyze(commandStr string) command.AnalyzedCommand {
	words := strings.Fields(commandStr)
	normalized := strings.Join(words, " ")

	if len(words) == 0 {
		words = []string{}
	}

	return command.AnalyzedCommand{
		Normalized: normalized,
		Words:      words,
		Length:     utf8.RuneCountInString(normalized),
	}
}

/*
Normalize collapses every run of whitespace, newlines included, into a single
space and trims both ends. Normalize(Normalize(s)) == Normalize(s).
*/
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
