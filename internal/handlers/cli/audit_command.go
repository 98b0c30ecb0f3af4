package cli

import (
	"fmt"
	"slices"
	"strconv"
	"unicode/utf8"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/aliasfinder/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasfinder/internal/core/domain/history"
	"github.com/AntonioJCosta/aliasfinder/internal/core/domain/match"
	"github.com/AntonioJCosta/aliasfinder/internal/handlers/ui"
)

// missedAlias is a frequent history command that an existing alias covers.
type missedAlias struct {
	history.CommandFrequency
	Alias alias.Alias
}

// savedPerUse is the number of keystrokes the alias saves each time.
func (m missedAlias) savedPerUse() int {
	return utf8.RuneCountInString(m.Alias.Command) - utf8.RuneCountInString(m.Alias.Name)
}

func (m missedAlias) savedTotal() int {
	return m.savedPerUse() * m.Count
}

// NewAuditCommand creates the 'audit' subcommand.
func NewAuditCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Find frequent history commands you typed in full despite having an alias.",
		Long:  `Scans recent shell history, runs the automatic search for each frequent command and lists the aliases that would have saved typing.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runAudit(cmd)
		},
	}
	cmd.Flags().IntP("scan-limit", "s", 0, "Number of recent history entries to scan (default HISTSIZE or 500).")
	cmd.Flags().IntP("output-limit", "o", 0, "Number of most frequent commands to check (default 50).")
	return cmd
}

func (a *app) runAudit(cmd *cobra.Command) error {
	if a.deps.History == nil {
		return fmt.Errorf("shell history is unavailable; is SHELL set?")
	}
	scanLimit, _ := cmd.Flags().GetInt("scan-limit")
	outputLimit, _ := cmd.Flags().GetInt("output-limit")
	if outputLimit <= 0 {
		outputLimit = 50
	}

	frequencies, err := a.deps.History.GetCommandFrequencies(cmd.Context(), scanLimit, outputLimit)
	if err != nil {
		return fmt.Errorf("could not read history: %w", err)
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

	var missed []missedAlias
	for _, freq := range frequencies {
		suggestion, err := finder.Suggest(snapshot, match.Request{CommandText: freq.Command, Cheaper: a.cfg.Cheaper})
		if err != nil {
			a.deps.Logger.Debug("skipping history entry", "command", freq.Command, "err", err)
			continue
		}
		if suggestion.Found() && suggestion.Best.Name != freq.Command {
			missed = append(missed, missedAlias{CommandFrequency: freq, Alias: suggestion.Best})
		}
	}

	out := cmd.OutOrStdout()
	if len(missed) == 0 {
		fmt.Fprintln(out, ui.SuccessColor("No missed aliases found."))
		fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("Context: %s", a.deps.History.GetSourceIdentifier())))
		return nil
	}

	slices.SortStableFunc(missed, func(x, y missedAlias) int { return y.savedTotal() - x.savedTotal() })

	fmt.Fprintln(out, ui.HeaderColor("Commands you could have typed shorter:"))
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Count", "Command", "Alias", "Saved"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
	for _, m := range missed {
		table.Append([]string{
			strconv.Itoa(m.Count),
			m.Command,
			fmt.Sprintf("%s='%s'", m.Alias.Name, m.Alias.Command),
			strconv.Itoa(m.savedTotal()),
		})
	}
	table.Render()
	fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("(Source: %s)", a.deps.History.GetSourceIdentifier())))
	return nil
}
