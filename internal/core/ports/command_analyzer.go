package ports

import "github.com/AntonioJCosta/aliasfinder/internal/core/domain/command"

/*
CommandAnalyzer defines the contract for a service that normalizes a typed
command string and splits it into words.
This is a driven port, representing a domain capability.
*/
type CommandAnalyzer interface {
	Analyze(commandStr string) command.AnalyzedCommand
}
