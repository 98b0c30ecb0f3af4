package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/aliasfinder/internal/config"
	"github.com/AntonioJCosta/aliasfinder/internal/core/ports"
)

// ErrUsage marks errors caused by how the command was invoked.
var ErrUsage = errors.New("usage error")

// Deps are the collaborators the commands are built from.
type Deps struct {
	// NewFinder builds the finder service for a search engine name.
	NewFinder func(engine string, logger *log.Logger) (ports.AliasFinderService, error)
	// NewSource builds the alias snapshot source for the loaded configuration.
	NewSource func(cfg *config.Config, stdin io.Reader, logger *log.Logger) (ports.AliasSource, error)
	// History feeds the audit command. It may be nil.
	History ports.HistoryProvider
	Logger  *log.Logger
}

// app holds state shared by the commands of one invocation.
type app struct {
	deps       Deps
	cfg        *config.Config
	configPath string
	verbose    bool
}

// NewRootCommand creates the root command. Run with command words it looks up
// aliases for them; the subcommands are suggest, init, list and audit.
func NewRootCommand(version string, deps Deps) *cobra.Command {
	if deps.Logger == nil {
		deps.Logger = log.Default()
	}
	a := &app{deps: deps}

	rootCmd := &cobra.Command{
		Use:   "alias-finder [flags] [--] <command...>",
		Short: "alias-finder finds the shell aliases you already have for a command.",
		Long: `alias-finder searches your alias table for aliases whose expansion matches
a command. Without flags it reports aliases whose expansion starts with the
command, dropping trailing words until something matches.

The alias table is read from stdin when it is piped (alias | alias-finder git status),
otherwise it is captured from your interactive shell.

Use -- before a command that collides with a subcommand name, e.g. alias-finder -- list.`,
		Example: `  alias | alias-finder git status
  alias-finder -e git status
  alias-finder -l git
  alias-finder -c git checkout main`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.loadConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFind(cmd, args)
		},
	}
	// command words may carry their own flags: alias-finder git commit -m
	rootCmd.Flags().SetInterspersed(false)

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/alias-finder/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log debug details to stderr")
	rootCmd.Flags().BoolP("exact", "e", false, "Only aliases whose expansion is exactly the command")
	rootCmd.Flags().BoolP("longer", "l", false, "Aliases whose expansion contains the command anywhere")
	rootCmd.Flags().BoolP("cheaper", "c", false, "Only aliases whose name is shorter than the command")

	rootCmd.AddCommand(NewSuggestCommand(a))
	rootCmd.AddCommand(NewInitCommand(a))
	rootCmd.AddCommand(NewListCommand(a))
	rootCmd.AddCommand(NewAuditCommand(a))

	return rootCmd
}

func (a *app) loadConfig(cmd *cobra.Command) error {
	cfg, path, err := config.Load(config.LoadOptions{ConfigFilePath: a.configPath, Flags: cmd.Flags()})
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.Level()
	if a.verbose {
		level = log.DebugLevel
	}
	a.deps.Logger.SetLevel(level)
	a.deps.Logger.Debug("configuration loaded", "file", path, "engine", cfg.Engine, "source", cfg.Source)
	return nil
}

func (a *app) finder() (ports.AliasFinderService, error) {
	if a.deps.NewFinder == nil {
		return nil, fmt.Errorf("alias finder not initialized")
	}
	return a.deps.NewFinder(a.cfg.Engine, a.deps.Logger)
}

func (a *app) source(cmd *cobra.Command) (ports.AliasSource, error) {
	if a.deps.NewSource == nil {
		return nil, fmt.Errorf("alias source not initialized")
	}
	return a.deps.NewSource(a.cfg, cmd.InOrStdin(), a.deps.Logger)
}
