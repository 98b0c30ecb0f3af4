package cli

import (
	"embed"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

//go:embed scripts/alias-finder.*
var hookScripts embed.FS

var supportedShells = []string{"zsh", "bash"}

// NewInitCommand creates the 'init' subcommand printing the shell hook.
func NewInitCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "init <zsh|bash>",
		Short:     "Print the shell hook that suggests aliases automatically.",
		Long:      `Prints a script to eval from your shell rc file. Before each command it runs 'alias-finder suggest' with the command line. Nothing is hooked unless automatic mode is enabled (automatic: true, or ALIAS_FINDER_AUTOMATIC=1).`,
		Example:   `  eval "$(alias-finder init zsh)"`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: supportedShells,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(cmd, args[0])
		},
	}
}

func (a *app) runInit(cmd *cobra.Command, shell string) error {
	if !slices.Contains(supportedShells, shell) {
		return fmt.Errorf("%w: unsupported shell %q (expected one of %s)", ErrUsage, shell, strings.Join(supportedShells, ", "))
	}
	out := cmd.OutOrStdout()
	if !a.cfg.Automatic {
		fmt.Fprintln(out, "# alias-finder: automatic mode is disabled, no hook installed")
		return nil
	}
	script, err := hookScripts.ReadFile("scripts/alias-finder." + shell)
	if err != nil {
		return fmt.Errorf("reading %s hook: %w", shell, err)
	}
	_, err = out.Write(script)
	return err
}
