package yamlaliases

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/AntonioJCosta/aliasfinder/internal/core/domain/alias"
)

func TestDecode(t *testing.T) {
	validAliasesYAML := `
- command: git
  alias: g
- command: kubectl
  alias: k
`
	expectedValidAliases := []alias.Alias{
		{Name: "g", Command: "git"},
		{Name: "k", Command: "kubectl"},
	}

	tests := []struct {
		name                string
		content             string
		wantAliases         []alias.Alias
		wantErr             bool
		wantErrorMsgSnippet string
	}{
		{
			name:        "valid content",
			content:     validAliasesYAML,
			wantAliases: expectedValidAliases,
		},
		{
			name:        "empty list",
			content:     `[]`,
			wantAliases: []alias.Alias{},
		},
		{
			name:        "empty content",
			content:     ``,
			wantAliases: []alias.Alias{},
		},
		{
			name:        "only comments",
			content:     "# nothing here\n---\n",
			wantAliases: []alias.Alias{},
		},
		{
			name: "unknown field",
			content: `
- alias: g
  command: git
  invalid_field: "rejected"
`,
			wantErr:             true,
			wantErrorMsgSnippet: "field invalid_field not found",
		},
		{
			name:    "not a list",
			content: `alias: g command: git`,
			wantErr: true,
		},
		{
			name:                "missing alias name",
			content:             "- command: git\n",
			wantErr:             true,
			wantErrorMsgSnippet: "has no alias name",
		},
		{
			name:                "equals sign in alias name",
			content:             "- alias: a=b\n  command: git\n",
			wantErr:             true,
			wantErrorMsgSnippet: "contains '='",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(strings.NewReader(tt.content))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Decode() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if tt.wantErrorMsgSnippet != "" && !strings.Contains(err.Error(), tt.wantErrorMsgSnippet) {
					t.Errorf("Decode() error = %q, want it to contain %q", err.Error(), tt.wantErrorMsgSnippet)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.wantAliases) {
				t.Errorf("Decode() = %v, want %v", got, tt.wantAliases)
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "aliases.yaml")
	if err := os.WriteFile(path, []byte("- alias: gs\n  command: git status\n"), 0600); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() unexpected error = %v", err)
	}
	want := []alias.Alias{{Name: "gs", Command: "git status"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadFile() = %v, want %v", got, want)
	}

	got, err = ReadFile(filepath.Join(dir, "missing.yaml"))
	if err != nil {
		t.Errorf("ReadFile() on a missing file unexpected error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ReadFile() on a missing file = %v, want empty", got)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("- nope: 1\n"), 0600); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	if _, err := ReadFile(bad); err == nil || !strings.Contains(err.Error(), bad) {
		t.Errorf("ReadFile() error = %v, want it to name %s", err, bad)
	}
}
