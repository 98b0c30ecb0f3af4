package history

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/AntonioJCosta/aliasfinder/internal/core/domain/history"
	"github.com/AntonioJCosta/aliasfinder/internal/repositories/homepath"
)

// findUserHistoryFile attempts to find a shell history file by checking HISTFILE and common locations.
func findUserHistoryFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}

	// HISTFILE is only exported by some setups, but wins when it is
	if histFileEnvVal := os.Getenv("HISTFILE"); histFileEnvVal != "" {
		pathToCheck := histFileEnvVal
		if !filepath.IsAbs(pathToCheck) {
			pathToCheck = filepath.Join(homeDir, pathToCheck)
		}
		if _, err := os.Stat(pathToCheck); err == nil {
			return pathToCheck, nil
		}
	}

	potentialPaths := []string{
		filepath.Join(homeDir, ".zsh_history"),
		filepath.Join(homeDir, ".zhistory"),
		filepath.Join(homeDir, ".bash_history"),
	}

	for _, p := range potentialPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("could not automatically find a common shell history file. Please ensure your history file is in a standard location (e.g., ~/.bash_history, ~/.zsh_history) or set the HISTFILE environment variable")
}

// parsePipelineOutput parses `uniq -c` style lines into frequencies.
func parsePipelineOutput(output string) []history.CommandFrequency {
	frequencies := []history.CommandFrequency{}
	for line := range strings.SplitSeq(output, "\n") {
		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}
		count, err := strconv.Atoi(parts[0])
		if err != nil {
			continue
		}
		frequencies = append(frequencies, history.CommandFrequency{Command: strings.Join(parts[1:], " "), Count: count})
	}
	return frequencies
}

// determineScanCount determines how many history entries to scan.
func determineScanCount(scanLimit int) int {
	if scanLimit > 0 {
		return scanLimit
	}
	if histSize, err := strconv.Atoi(os.Getenv("HISTSIZE")); err == nil && histSize > 0 {
		return histSize
	}
	return 500
}

func (p *HistoryProvider) getHistoryFrequencies(ctx context.Context, scanLimit, outputLimit int) ([]history.CommandFrequency, error) {
	if p.HistoryFile == "" {
		return nil, fmt.Errorf("history file path is not set in HistoryProvider")
	}
	pipeline, err := buildShellPipeline(p.HistoryFile, determineScanCount(scanLimit), outputLimit)
	if err != nil {
		return nil, fmt.Errorf("building shell pipeline: %w", err)
	}

	shell := p.ShellPath
	if shell == "" {
		shell = "/bin/sh"
	}
	stdout, stderrOutput, err := p.cmdExecutor.Run(ctx, shell, "-c", pipeline)
	if err != nil {
		if stderrOutput != "" {
			return nil, fmt.Errorf("executing shell pipeline: %w. Stderr: %s", err, strings.TrimSpace(stderrOutput))
		}
		return nil, fmt.Errorf("executing shell pipeline: %w", err)
	}

	return parsePipelineOutput(stdout), nil
}

// buildShellPipeline constructs the pipeline counting the most frequent recent commands.
// zsh extended history prefixes (": 1700000000:0;") are stripped first.
func buildShellPipeline(historyFilePath string, scanCount int, outputLimit int) (string, error) {
	if _, err := os.Stat(historyFilePath); os.IsNotExist(err) {
		return "", fmt.Errorf("history file does not exist: %s", homepath.Friendly(historyFilePath))
	}
	if outputLimit <= 0 {
		outputLimit = 10
	}
	return fmt.Sprintf(
		"tail -n %d %s | sed -E 's/^: [0-9]+:[0-9]+;//; s/[[:space:]]*$//' | grep -v '^$' | sort | uniq -c | sort -nr | head -n %d",
		scanCount, shellQuote(historyFilePath), outputLimit,
	), nil
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
