package ports

import "context"

// CommandExecutor defines an interface for running external processes.
type CommandExecutor interface {
	// Run executes name with args and returns its stdout and stderr.
	Run(ctx context.Context, name string, args ...string) (stdout string, stderr string, err error)
}
