package aliassource

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/shlex"

	"github.com/AntonioJCosta/aliasfinder/internal/adapters/aliasparse"
	"github.com/AntonioJCosta/aliasfinder/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasfinder/internal/core/ports"
)

// DefaultCaptureCommand lists aliases from the user's interactive shell.
const DefaultCaptureCommand = "$SHELL -ic alias"

// CaptureSource runs a listing command and parses its output.
type CaptureSource struct {
	executor ports.CommandExecutor
	command  string
	timeout  time.Duration
	logger   *log.Logger
}

// NewCaptureSource creates a CaptureSource. An empty command uses
// DefaultCaptureCommand and a non-positive timeout uses DefaultCaptureTimeout.
func NewCaptureSource(executor ports.CommandExecutor, command string, timeout time.Duration, logger *log.Logger) ports.AliasSource {
	if strings.TrimSpace(command) == "" {
		command = DefaultCaptureCommand
	}
	if timeout <= 0 {
		timeout = DefaultCaptureTimeout
	}
	if logger == nil {
		logger = log.Default()
	}
	return &CaptureSource{executor: executor, command: command, timeout: timeout, logger: logger}
}

// Snapshot runs the listing command. Environment variables are expanded in each word after splitting.
func (s *CaptureSource) Snapshot(ctx context.Context) ([]alias.Alias, error) {
	argv, err := s.argv()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	s.logger.Debug("capturing aliases", "argv", argv, "timeout", s.timeout)
	stdout, stderr, err := s.executor.Run(ctx, argv[0], argv[1:]...)
	if err != nil {
		return nil, fmt.Errorf("capturing aliases with %q: %w", s.command, err)
	}
	if stderr != "" {
		// interactive shells often complain about job control; not fatal
		s.logger.Debug("alias command wrote to stderr", "stderr", strings.TrimSpace(stderr))
	}

	defs, err := aliasparse.ParseListing(stdout)
	if err != nil {
		return nil, fmt.Errorf("parsing output of %q: %w", s.command, err)
	}
	return dedupe(defs, s.Describe(), s.logger), nil
}

func (s *CaptureSource) argv() ([]string, error) {
	argv, err := shlex.Split(s.command)
	if err != nil {
		return nil, fmt.Errorf("splitting alias command %q: %w", s.command, err)
	}
	for i := range argv {
		argv[i] = os.ExpandEnv(argv[i])
	}
	if len(argv) == 0 || argv[0] == "" {
		return nil, fmt.Errorf("alias command %q is empty after expansion; is SHELL set?", s.command)
	}
	return argv, nil
}

func (s *CaptureSource) Describe() string {
	return "command: " + s.command
}
