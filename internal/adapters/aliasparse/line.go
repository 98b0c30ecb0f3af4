package aliasparse

import (
	"bufio"
	"strings"

	"github.com/AntonioJCosta/aliasfinder/internal/core/domain/alias"
)

// parseLines is the lenient fallback: one definition per line, outer quotes
// stripped. With requireKeyword only `alias name=cmd` lines count.
func parseLines(src string, requireKeyword bool) []alias.Alias {
	var defs []alias.Alias
	scanner := bufio.NewScanner(strings.NewReader(src))
	for scanner.Scan() {
		name, command, isAlias := parseAliasLine(scanner.Text(), requireKeyword)
		if isAlias {
			defs = append(defs, alias.Alias{Name: name, Command: command})
		}
	}
	return defs
}

func parseAliasLine(line string, requireKeyword bool) (name string, command string, isAlias bool) {
	trimmedLine := strings.TrimSpace(line)

	if trimmedLine == "" || strings.HasPrefix(trimmedLine, "#") {
		return "", "", false
	}

	content, hasKeyword := strings.CutPrefix(trimmedLine, "alias ")
	if requireKeyword && !hasKeyword {
		return "", "", false
	}

	// Split into name and value by the first '='
	name, commandValue, found := strings.Cut(content, "=")
	if !found {
		return "", "", false
	}
	name = unquote(strings.TrimSpace(name))
	if name == "" {
		return "", "", false
	}
	return name, unquote(strings.TrimSpace(commandValue)), true
}

func unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '\'' && last == '\'') || (first == '"' && last == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
