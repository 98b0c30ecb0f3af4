package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/AntonioJCosta/aliasfinder/internal/adapters/commandanalysis"
	"github.com/AntonioJCosta/aliasfinder/internal/adapters/linesearch"
	"github.com/AntonioJCosta/aliasfinder/internal/adapters/oscommand"
	"github.com/AntonioJCosta/aliasfinder/internal/adapters/predicate"
	"github.com/AntonioJCosta/aliasfinder/internal/config"
	"github.com/AntonioJCosta/aliasfinder/internal/core/domain/match"
	"github.com/AntonioJCosta/aliasfinder/internal/core/ports"
	"github.com/AntonioJCosta/aliasfinder/internal/core/services/aliasfinder"
	"github.com/AntonioJCosta/aliasfinder/internal/handlers/cli"
	"github.com/AntonioJCosta/aliasfinder/internal/handlers/ui"
	"github.com/AntonioJCosta/aliasfinder/internal/repositories/aliassource"
	"github.com/AntonioJCosta/aliasfinder/internal/repositories/history"
)

// Version is set at build time
var Version = "dev"

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "alias-finder"})
	cmdExec := oscommand.NewOSCommandExecutor()

	// history only backs the audit command; a failure here must not break searches
	historyRepo, err := history.NewHistoryProvider(cmdExec, history.NewDefaultHistoryFileFinder(), logger)
	if err != nil {
		logger.Debug("history provider unavailable", "err", err)
		historyRepo = nil
	}

	rootCmd := cli.NewRootCommand(Version, cli.Deps{
		NewFinder: newFinder,
		NewSource: func(cfg *config.Config, stdin io.Reader, logger *log.Logger) (ports.AliasSource, error) {
			return newSource(cfg, stdin, cmdExec, logger)
		},
		History: historyRepo,
		Logger:  logger,
	})

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, match.ErrNoMatch) {
			fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Error: %v", err)))
		}
		os.Exit(1)
	}
}

// newFinder wires the finder service to the searcher for engine.
func newFinder(engine string, logger *log.Logger) (ports.AliasFinderService, error) {
	var searcher ports.AliasSearcher
	switch engine {
	case "predicate":
		searcher = predicate.NewSearcher()
	default:
		var err error
		if searcher, err = linesearch.NewPreferred(engine, logger); err != nil {
			return nil, err
		}
	}
	return aliasfinder.NewService(commandanalysis.NewBasicAnalyzer(), searcher, logger), nil
}

func newSource(cfg *config.Config, stdin io.Reader, executor ports.CommandExecutor, logger *log.Logger) (ports.AliasSource, error) {
	return aliassource.New(cfg.Source, aliassource.Options{
		Stdin:    stdin,
		Executor: executor,
		Command:  cfg.AliasCommand,
		Files:    cfg.AliasFiles,
		Logger:   logger,
	})
}
