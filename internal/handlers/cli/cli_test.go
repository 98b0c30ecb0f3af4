package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonioJCosta/aliasfinder/internal/adapters/commandanalysis"
	"github.com/AntonioJCosta/aliasfinder/internal/adapters/predicate"
	"github.com/AntonioJCosta/aliasfinder/internal/config"
	"github.com/AntonioJCosta/aliasfinder/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasfinder/internal/core/domain/history"
	"github.com/AntonioJCosta/aliasfinder/internal/core/domain/match"
	"github.com/AntonioJCosta/aliasfinder/internal/core/ports"
	"github.com/AntonioJCosta/aliasfinder/internal/core/services/aliasfinder"
	"github.com/AntonioJCosta/aliasfinder/internal/core/testutil"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

var testSnapshot = []alias.Alias{
	{Name: "gs", Command: "git status"},
	{Name: "longname", Command: "git status"},
	{Name: "ga", Command: "git add"},
	{Name: "gcm", Command: "git commit -m"},
	{Name: "l", Command: "ls -la"},
}

type harness struct {
	deps    Deps
	source  *testutil.MockAliasSource
	engines []string
	stdin   io.Reader
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, key := range []string{"EXACT", "LONGER", "CHEAPER", "AUTOMATIC", "ENGINE", "SOURCE", "LOG_LEVEL"} {
		t.Setenv(config.EnvPrefix+"_"+key, "")
	}

	h := &harness{source: &testutil.MockAliasSource{Aliases: testSnapshot, Description: "test"}}
	h.deps = Deps{
		NewFinder: func(engine string, logger *log.Logger) (ports.AliasFinderService, error) {
			h.engines = append(h.engines, engine)
			return aliasfinder.NewService(commandanalysis.NewBasicAnalyzer(), predicate.NewSearcher(), logger), nil
		},
		NewSource: func(_ *config.Config, stdin io.Reader, _ *log.Logger) (ports.AliasSource, error) {
			h.stdin = stdin
			return h.source, nil
		},
		Logger: log.New(io.Discard),
	}
	return h
}

func (h *harness) run(args ...string) (string, error) {
	root := NewRootCommand("test", h.deps)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetIn(strings.NewReader(""))
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestFind(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		args    []string
		want    string
		wantErr error
	}{
		{name: "prefix match", args: []string{"git", "status"}, want: "gs='git status'\nlongname='git status'\n"},
		{name: "trims trailing words", args: []string{"git", "add", "-A"}, want: "ga='git add'\n"},
		{name: "command flags are not parsed", args: []string{"git", "commit", "-m", "wip"}, want: "gcm='git commit -m'\n"},
		{name: "exact", args: []string{"-e", "git", "add"}, want: "ga='git add'\n"},
		{name: "exact without match", args: []string{"-e", "git"}, wantErr: match.ErrNoMatch},
		{name: "longer", args: []string{"-l", "status"}, want: "gs='git status'\nlongname='git status'\n"},
		{name: "exact wins over longer", args: []string{"-e", "-l", "status"}, wantErr: match.ErrNoMatch},
		{name: "cheaper", args: []string{"-c", "-e", "git status"}, want: "gs='git status'\nlongname='git status'\n"},
		{name: "cheaper keeps short names", args: []string{"-c", "-e", "ls", "-la"}, want: "l='ls -la'\n"},
		{name: "no match", args: []string{"kubectl", "get", "pods"}, wantErr: match.ErrNoMatch},
		{name: "separator before subcommand name", args: []string{"--", "list"}, wantErr: match.ErrNoMatch},
		{name: "no command", args: []string{}, wantErr: ErrUsage},
		{name: "blank command", args: []string{"  "}, wantErr: ErrUsage},
		{name: "env enables longer", env: map[string]string{"ALIAS_FINDER_LONGER": "1"}, args: []string{"status"}, want: "gs='git status'\nlongname='git status'\n"},
		{name: "explicit flag overrides env", env: map[string]string{"ALIAS_FINDER_EXACT": "true"}, args: []string{"--exact=false", "git"}, want: "gs='git status'\nlongname='git status'\nga='git add'\ngcm='git commit -m'\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			out, err := h.run(tt.args...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, out)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestFind_UsesConfiguredEngineAndStdin(t *testing.T) {
	h := newHarness(t)
	t.Setenv("ALIAS_FINDER_ENGINE", "regexp2")

	_, err := h.run("git")
	require.NoError(t, err)
	assert.Equal(t, []string{"regexp2"}, h.engines)
	assert.NotNil(t, h.stdin)
}

func TestFind_InvalidConfig(t *testing.T) {
	h := newHarness(t)
	t.Setenv("ALIAS_FINDER_ENGINE", "pcre")

	_, err := h.run("git")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid engine "pcre"`)
}

func TestFind_SourceError(t *testing.T) {
	h := newHarness(t)
	h.source.Err = errors.New("shell exploded")

	_, err := h.run("git")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not load aliases: shell exploded")
}

func TestFind_UnknownFlag(t *testing.T) {
	h := newHarness(t)
	_, err := h.run("--frobnicate", "git")
	assert.Error(t, err)
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "best alias with more candidates",
			args: []string{"suggest", "--", "git", "status"},
			want: "Found existing alias for \"git status\". You should use: \"gs\" (1 more)\n",
		},
		{
			name: "single candidate",
			args: []string{"suggest", "--", "git", "add", "-A"},
			want: "Found existing alias for \"git add -A\". You should use: \"ga\"\n",
		},
		{
			name: "expansion longer than the command is not suggested",
			args: []string{"suggest", "--", "git"},
			want: "",
		},
		{
			name: "cheaper",
			args: []string{"suggest", "--cheaper", "--", "git", "status"},
			want: "Found existing alias for \"git status\". You should use: \"gs\" (1 more)\n",
		},
		{
			name: "no alias",
			args: []string{"suggest", "--", "kubectl", "get", "pods"},
			want: "",
		},
		{
			name: "empty command line",
			args: []string{"suggest", "--", ""},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			out, err := h.run(tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestInit(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("init", "zsh")
	require.NoError(t, err)
	assert.Contains(t, out, "add-zsh-hook preexec _alias_finder_preexec")
	assert.Contains(t, out, `alias-finder suggest -- "$1"`)

	out, err = h.run("init", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "preexec_functions+=(_alias_finder_preexec)")
	assert.Contains(t, out, "bash-preexec is not loaded")

	_, err = h.run("init", "fish")
	assert.ErrorIs(t, err, ErrUsage)

	_, err = h.run("init")
	assert.Error(t, err)
}

func TestInit_AutomaticDisabled(t *testing.T) {
	h := newHarness(t)
	t.Setenv("ALIAS_FINDER_AUTOMATIC", "false")

	out, err := h.run("init", "zsh")
	require.NoError(t, err)
	assert.Equal(t, "# alias-finder: automatic mode is disabled, no hook installed\n", out)
}

func TestList(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("list")
	require.NoError(t, err)
	assert.Contains(t, out, "Aliases (5):")
	assert.Contains(t, out, "git commit -m")
	assert.Contains(t, out, "(Source: test)")
	assert.Less(t, strings.Index(out, "ga "), strings.Index(out, "gs "), "rows are sorted by name")

	h.source.Aliases = nil
	out, err = h.run("list")
	require.NoError(t, err)
	assert.Contains(t, out, "No aliases found.")
}

func TestAudit(t *testing.T) {
	h := newHarness(t)
	var gotScan, gotOutput int
	h.deps.History = &testutil.MockHistoryProvider{
		GetCommandFrequenciesFunc: func(_ context.Context, scanLimit, outputLimit int) ([]history.CommandFrequency, error) {
			gotScan, gotOutput = scanLimit, outputLimit
			return []history.CommandFrequency{
				{Command: "git status", Count: 3},
				{Command: "git add -A", Count: 10},
				{Command: "kubectl get pods", Count: 7},
			}, nil
		},
		GetSourceIdentifierFunc: func() string { return "File: ~/.zsh_history" },
	}

	out, err := h.run("audit", "--scan-limit", "200")
	require.NoError(t, err)
	assert.Equal(t, 200, gotScan)
	assert.Equal(t, 50, gotOutput)
	assert.Contains(t, out, "gs='git status'")
	assert.Contains(t, out, "ga='git add'")
	assert.NotContains(t, out, "kubectl")
	// ga saves 5 keystrokes ten times, gs saves 8 three times
	assert.Less(t, strings.Index(out, "ga='git add'"), strings.Index(out, "gs='git status'"))
	assert.Contains(t, out, "(Source: File: ~/.zsh_history)")
}

func TestAudit_NothingMissed(t *testing.T) {
	h := newHarness(t)
	h.deps.History = &testutil.MockHistoryProvider{
		GetCommandFrequenciesFunc: func(context.Context, int, int) ([]history.CommandFrequency, error) {
			return []history.CommandFrequency{{Command: "make", Count: 4}}, nil
		},
	}

	out, err := h.run("audit")
	require.NoError(t, err)
	assert.Contains(t, out, "No missed aliases found.")
}

func TestAudit_Errors(t *testing.T) {
	h := newHarness(t)
	_, err := h.run("audit")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "history is unavailable")

	h.deps.History = &testutil.MockHistoryProvider{
		GetCommandFrequenciesFunc: func(context.Context, int, int) ([]history.CommandFrequency, error) {
			return nil, errors.New("no history file")
		},
	}
	_, err = h.run("audit")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not read history: no history file")
}

func TestMissedAliasSavings(t *testing.T) {
	m := missedAlias{
		CommandFrequency: history.CommandFrequency{Command: "git status -sb", Count: 4},
		Alias:            alias.Alias{Name: "gs", Command: "git status"},
	}
	assert.Equal(t, 8, m.savedPerUse())
	assert.Equal(t, 32, m.savedTotal())
}
