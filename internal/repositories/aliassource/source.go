/*
Package aliassource provides the alias snapshot sources: a listing piped on
stdin, a listing captured from an interactive shell, and alias files on disk.
*/
package aliassource

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"

	"github.com/AntonioJCosta/aliasfinder/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasfinder/internal/core/ports"
)

// Source kinds accepted by New.
const (
	KindAuto    = "auto"
	KindStdin   = "stdin"
	KindCapture = "capture"
	KindFiles   = "files"
)

// DefaultCaptureTimeout bounds how long the interactive shell may take to list its aliases.
const DefaultCaptureTimeout = 5 * time.Second

// Options configures New.
type Options struct {
	Stdin    io.Reader
	Executor ports.CommandExecutor
	Command  string   // listing command for the capture source
	Files    []string // files or directories for the files source
	Timeout  time.Duration
	Logger   *log.Logger
}

// New returns the source of the given kind. KindAuto reads stdin when it is
// piped and captures from the shell otherwise.
func New(kind string, opts Options) (ports.AliasSource, error) {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if kind == KindAuto {
		kind = KindCapture
		if isPiped(opts.Stdin) {
			kind = KindStdin
		}
		opts.Logger.Debug("resolved alias source", "source", kind)
	}

	switch kind {
	case KindStdin:
		if opts.Stdin == nil {
			return nil, fmt.Errorf("stdin source needs an input reader")
		}
		return NewReaderSource(opts.Stdin, opts.Logger), nil
	case KindCapture:
		if opts.Executor == nil {
			return nil, fmt.Errorf("capture source needs a command executor")
		}
		return NewCaptureSource(opts.Executor, opts.Command, opts.Timeout, opts.Logger), nil
	case KindFiles:
		return NewFilesSource(opts.Files, opts.Logger), nil
	default:
		return nil, fmt.Errorf("unknown alias source %q", kind)
	}
}

// isPiped reports whether r is a file that is not a terminal.
// Readers that are not files count as piped.
func isPiped(r io.Reader) bool {
	if r == nil {
		return false
	}
	f, ok := r.(*os.File)
	if !ok {
		return true
	}
	fd := f.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

// dedupe keeps the last definition of each name and reports overridden names.
func dedupe(defs []alias.Alias, origin string, logger *log.Logger) []alias.Alias {
	seen := make(map[string]bool, len(defs))
	for _, a := range defs {
		if seen[a.Name] {
			logger.Warn("alias defined more than once, using the last definition", "alias", a.Name, "source", origin)
		}
		seen[a.Name] = true
	}
	return alias.Dedupe(defs)
}
