package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/aliasfinder/internal/core/domain/match"
	"github.com/AntonioJCosta/aliasfinder/internal/handlers/ui"
)

// runFind is the root command: an on-demand search printing every match.
func (a *app) runFind(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command given. Run '%s --help' for usage", ErrUsage, cmd.CommandPath())
	}

	finder, err := a.finder()
	if err != nil {
		return err
	}
	src, err := a.source(cmd)
	if err != nil {
		return err
	}
	snapshot, err := src.Snapshot(cmd.Context())
	if err != nil {
		return fmt.Errorf("could not load aliases: %w", err)
	}
	a.deps.Logger.Debug("alias snapshot loaded", "source", src.Describe(), "aliases", len(snapshot))

	req := match.Request{
		CommandText: strings.Join(args, " "),
		Mode:        match.ModeFromFlags(a.cfg.Exact, a.cfg.Longer),
		Cheaper:     a.cfg.Cheaper,
	}
	result, err := finder.Find(snapshot, req)
	if err != nil {
		if errors.Is(err, match.ErrEmptyCommand) {
			return fmt.Errorf("%w: %w", ErrUsage, err)
		}
		return err
	}
	if !result.Found() {
		return match.ErrNoMatch
	}

	out := cmd.OutOrStdout()
	for _, m := range result.Matches {
		fmt.Fprintf(out, "%s='%s'\n", ui.AliasNameColor(m.Name), ui.AliasCmdColor(m.Command))
	}
	return nil
}
