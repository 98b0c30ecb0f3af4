package oscommand

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/AntonioJCosta/aliasfinder/internal/core/ports"
)

// OSCommandExecutor implements the CommandExecutor interface by spawning processes.
type OSCommandExecutor struct{}

// NewOSCommandExecutor creates a new OSCommandExecutor.
func NewOSCommandExecutor() ports.CommandExecutor {
	return &OSCommandExecutor{}
}

// Run executes name with args and returns its stdout, stderr, and any error.
// The process is killed when ctx is done.
func (e *OSCommandExecutor) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	stdout := outBuf.String()
	stderr := errBuf.String()

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return stdout, stderr, fmt.Errorf("running '%s': %w", name, ctxErr)
		}
		// Include stderr in the error message for better diagnostics.
		return stdout, stderr, fmt.Errorf("running '%s': %w. Stderr: %s", name, err, strings.TrimSpace(stderr))
	}
	return stdout, stderr, nil
}
