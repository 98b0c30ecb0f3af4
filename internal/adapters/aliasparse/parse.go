/*
Package aliasparse turns shell text into alias definitions. It understands the
listing a shell prints for `alias` or `alias -p` as well as alias builtin
calls inside rc files, and resolves shell quoting the way the shell would.
*/
package aliasparse

import (
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/syntax"

	"github.com/AntonioJCosta/aliasfinder/internal/core/domain/alias"
)

/*
ParseListing parses the output of a shell's alias listing. Each line is either
a bare assignment (zsh: gs='git status') or an alias builtin call
(bash: alias gs='git status'). If the listing is not valid shell, it is parsed
line by line instead, so that one odd entry does not hide the rest.
*/
func ParseListing(src string) ([]alias.Alias, error) {
	file, err := parse(src, "listing")
	if err != nil {
		return parseLines(src, false), nil
	}

	var defs []alias.Alias
	for _, stmt := range file.Stmts {
		call, ok := stmt.Cmd.(*syntax.CallExpr)
		if !ok {
			continue
		}
		switch {
		case len(call.Args) == 0:
			for _, as := range call.Assigns {
				if a, ok := fromAssign(src, as); ok {
					defs = append(defs, a)
				}
			}
		case isAliasCall(call):
			defs = append(defs, fromAliasArgs(src, call.Args[1:])...)
		case len(call.Assigns) == 0 && len(call.Args) == 1:
			// names the parser does not accept as assignments, e.g. -='cd -'
			if a, ok := splitDefinition(flatten(src, call.Args[0])); ok {
				defs = append(defs, a)
			}
		}
	}
	return defs, nil
}

/*
ParseScript extracts the definitions made by alias builtin calls anywhere in
a shell script, including inside functions and conditionals. Plain variable
assignments are ignored. Scripts the parser rejects fall back to a line scan
for lines starting with "alias ".
*/
func ParseScript(src, name string) ([]alias.Alias, error) {
	file, err := parse(src, name)
	if err != nil {
		return parseLines(src, true), fmt.Errorf("parsing %s: %w", name, err)
	}

	var defs []alias.Alias
	syntax.Walk(file, func(node syntax.Node) bool {
		call, ok := node.(*syntax.CallExpr)
		if ok && isAliasCall(call) {
			defs = append(defs, fromAliasArgs(src, call.Args[1:])...)
		}
		return true
	})
	return defs, nil
}

func parse(src, name string) (*syntax.File, error) {
	parser := syntax.NewParser(syntax.Variant(syntax.LangBash))
	return parser.Parse(strings.NewReader(src), name)
}

func isAliasCall(call *syntax.CallExpr) bool {
	return len(call.Args) > 0 && call.Args[0].Lit() == "alias"
}

func fromAssign(src string, as *syntax.Assign) (alias.Alias, bool) {
	if as.Name == nil || as.Array != nil || as.Index != nil || as.Append {
		return alias.Alias{}, false
	}
	a := alias.Alias{Name: as.Name.Value}
	if as.Value != nil {
		a.Command = flatten(src, as.Value)
	}
	return a, true
}

func fromAliasArgs(src string, args []*syntax.Word) []alias.Alias {
	var defs []alias.Alias
	for _, w := range args {
		if a, ok := splitDefinition(flatten(src, w)); ok {
			defs = append(defs, a)
		}
	}
	return defs
}

// splitDefinition splits name=command at the first '='. Flags such as -p and
// lookups such as `alias gs` carry no '=' and are skipped.
func splitDefinition(word string) (alias.Alias, bool) {
	name, command, ok := strings.Cut(word, "=")
	if !ok || name == "" {
		return alias.Alias{}, false
	}
	return alias.Alias{Name: name, Command: command}, true
}

// flatten returns the value a word has after quote removal. Expansions are
// kept as written, since an alias stores them unexpanded.
func flatten(src string, w *syntax.Word) string {
	var sb strings.Builder
	for _, part := range w.Parts {
		switch p := part.(type) {
		case *syntax.Lit:
			sb.WriteString(unescape(p.Value, nil))
		case *syntax.SglQuoted:
			sb.WriteString(p.Value)
		case *syntax.DblQuoted:
			for _, inner := range p.Parts {
				if lit, ok := inner.(*syntax.Lit); ok {
					sb.WriteString(unescape(lit.Value, dblQuoteEscapable))
				} else {
					sb.WriteString(source(src, inner))
				}
			}
		default:
			sb.WriteString(source(src, part))
		}
	}
	return sb.String()
}

func dblQuoteEscapable(c byte) bool {
	return c == '$' || c == '`' || c == '"' || c == '\\' || c == '\n'
}

// unescape removes backslash escapes. With a nil filter every character can be
// escaped, as outside quotes.
func unescape(s string, escapable func(byte) bool) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			sb.WriteByte(c)
			continue
		}
		next := s[i+1]
		if escapable != nil && !escapable(next) {
			sb.WriteByte(c)
			continue
		}
		i++
		if next != '\n' {
			sb.WriteByte(next)
		}
	}
	return sb.String()
}

func source(src string, n syntax.Node) string {
	start, end := n.Pos().Offset(), n.End().Offset()
	if end > uint(len(src)) || start > end {
		return ""
	}
	return src[start:end]
}
