package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/aliasfinder/internal/core/domain/match"
	"github.com/AntonioJCosta/aliasfinder/internal/handlers/ui"
)

// NewSuggestCommand creates the 'suggest' subcommand run by the shell hook before each command.
func NewSuggestCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest [--cheaper] -- <command...>",
		Short: "Suggest the best existing alias for a command about to run.",
		Long: `Runs the automatic search used by the shell hook: only aliases whose
expansion is a prefix of the command are kept, and the one with the shortest
name is suggested. Prints nothing when no alias applies.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSuggest(cmd, args)
		},
	}
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().BoolP("cheaper", "c", false, "Only aliases whose name is shorter than the command")
	return cmd
}

func (a *app) runSuggest(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	if strings.TrimSpace(text) == "" {
		// the hook fires for empty command lines too
		return nil
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

	suggestion, err := finder.Suggest(snapshot, match.Request{CommandText: text, Cheaper: a.cfg.Cheaper})
	if err != nil {
		if errors.Is(err, match.ErrEmptyCommand) {
			return nil
		}
		return err
	}
	if !suggestion.Found() {
		return nil
	}

	msg := fmt.Sprintf("Found existing alias for %s. You should use: %s",
		ui.InfoColor(`"`+text+`"`),
		ui.AliasNameColor(`"`+suggestion.Best.Name+`"`))
	if suggestion.Additional > 0 {
		msg += ui.DetailColor(fmt.Sprintf(" (%d more)", suggestion.Additional))
	}
	fmt.Fprintln(cmd.OutOrStdout(), msg)
	return nil
}
