package history

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/AntonioJCosta/aliasfinder/internal/core/domain/history"
	"github.com/AntonioJCosta/aliasfinder/internal/core/ports"
	"github.com/AntonioJCosta/aliasfinder/internal/repositories/homepath"
)

/*
HistoryProvider provides access to shell command history stored in files.
It implements the ports.HistoryProvider interface.
*/
type HistoryProvider struct {
	Shell            string // shell name, e.g. zsh
	ShellPath        string // shell executable that runs the history pipeline
	HistoryFile      string // Stores the absolute path
	cmdExecutor      ports.CommandExecutor
	sourceIdentifier string // Stores the user-friendly source identifier
}

func (hp *HistoryProvider) GetSourceIdentifier() string {
	if hp.sourceIdentifier != "" {
		return hp.sourceIdentifier
	}
	if hp.HistoryFile != "" {
		return fmt.Sprintf("File: %s", homepath.Friendly(hp.HistoryFile))
	}
	return fmt.Sprintf("Shell: %s (history file path unknown)", hp.Shell)
}

// NewHistoryProvider creates a new HistoryProvider. A missing history file is
// logged and leaves the provider usable but empty-handed.
func NewHistoryProvider(cmdExecutor ports.CommandExecutor, fileFinder ports.HistoryFileFinder, logger *log.Logger) (ports.HistoryProvider, error) {
	if logger == nil {
		logger = log.Default()
	}
	shellPath := os.Getenv("SHELL")
	if shellPath == "" {
		return nil, fmt.Errorf("SHELL environment variable not set")
	}

	shellName := strings.ToLower(filepath.Base(shellPath))
	histFilePath, err := fileFinder.Find()

	if err != nil {
		logger.Warn("could not find a history file; audit is unavailable", "err", err)
		return &HistoryProvider{
			Shell:            shellName,
			ShellPath:        shellPath,
			cmdExecutor:      cmdExecutor,
			sourceIdentifier: fmt.Sprintf("Shell: %s (history file not found or configured)", shellName),
		}, nil
	}

	return &HistoryProvider{
		HistoryFile:      histFilePath,
		Shell:            shellName,
		ShellPath:        shellPath,
		cmdExecutor:      cmdExecutor,
		sourceIdentifier: fmt.Sprintf("File: %s", homepath.Friendly(histFilePath)),
	}, nil
}

// GetCommandFrequencies implements the ports.HistoryProvider interface.
func (hp *HistoryProvider) GetCommandFrequencies(ctx context.Context, scanLimit int, outputLimit int) ([]history.CommandFrequency, error) {
	if hp.HistoryFile == "" {
		return nil, fmt.Errorf("history file not found or configured for shell %s. Cannot fetch command frequencies", hp.Shell)
	}

	return hp.getHistoryFrequencies(ctx, scanLimit, outputLimit)
}

func (hp *HistoryProvider) GetHistoryFilePath() string {
	return hp.HistoryFile
}
