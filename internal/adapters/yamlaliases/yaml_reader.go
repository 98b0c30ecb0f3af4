// Package yamlaliases reads alias definitions from YAML documents holding a
// list of entries such as {alias: gs, command: git status}.
package yamlaliases

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/AntonioJCosta/aliasfinder/internal/core/domain/alias"
)

// ReadFile reads and parses aliases from the YAML file at path.
// If the file does not exist or is empty, it returns an empty list and no error.
func ReadFile(path string) ([]alias.Alias, error) {
	yamlFile, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []alias.Alias{}, nil
		}
		return nil, fmt.Errorf("failed to read alias file %s: %w", path, err)
	}
	defs, err := Decode(bytes.NewReader(yamlFile))
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal aliases from %s: %w", path, err)
	}
	return defs, nil
}

// Decode parses a YAML alias list. Unknown fields are rejected, and so are
// entries whose name is empty or contains '=', which no shell accepts.
func Decode(r io.Reader) ([]alias.Alias, error) {
	defs := []alias.Alias{}

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	if err := decoder.Decode(&defs); err != nil {
		// A document with only comments or "---" has no content.
		if errors.Is(err, io.EOF) {
			return []alias.Alias{}, nil
		}
		return nil, err
	}
	if defs == nil {
		return []alias.Alias{}, nil
	}

	for i, a := range defs {
		if a.Name == "" {
			return nil, fmt.Errorf("entry %d (command %q) has no alias name", i+1, a.Command)
		}
		if strings.Contains(a.Name, "=") {
			return nil, fmt.Errorf("entry %d: alias name %q contains '='", i+1, a.Name)
		}
	}
	return defs, nil
}
