package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/aliasfinder/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasfinder/internal/handlers/ui"
)

// NewListCommand creates the 'list' subcommand.
func NewListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the aliases alias-finder searches.",
		Long:  `Displays the alias snapshot read from the configured source, sorted by name.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runList(cmd)
		},
	}
}

func (a *app) runList(cmd *cobra.Command) error {
	src, err := a.source(cmd)
	if err != nil {
		return err
	}
	aliases, err := src.Snapshot(cmd.Context())
	if err != nil {
		return fmt.Errorf("could not list aliases: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(aliases) == 0 {
		fmt.Fprintln(out, ui.InfoColor("No aliases found."))
		fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("Source: %s", src.Describe())))
		return nil
	}

	sorted := slices.Clone(aliases)
	slices.SortFunc(sorted, func(x, y alias.Alias) int { return strings.Compare(x.Name, y.Name) })

	fmt.Fprintln(out, ui.HeaderColor(fmt.Sprintf("Aliases (%d):", len(sorted))))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Alias Name", "Command"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})
	for _, def := range sorted {
		table.Append([]string{def.Name, def.Command})
	}
	table.Render()

	fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("(Source: %s)", src.Describe())))
	return nil
}
