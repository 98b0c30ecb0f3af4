/*
Package alias defines the core domain entity for an alias.
*/
package alias

import "fmt"

/*
Alias represents one alias definition from the shell's alias table: a short
name and the full command it expands to. Snapshot entries are never mutated
by the matcher.
*/
type Alias struct {
	Command string `yaml:"command"`
	Name    string `yaml:"alias"`
}

// Line renders the alias in the conventional listing form name='command'.
func (a Alias) Line() string {
	return fmt.Sprintf("%s='%s'", a.Name, a.Command)
}

/*
Dedupe returns the snapshot with one entry per name. The last definition of a
name wins, as in the shell itself, and surviving entries keep the relative
order of their final definitions.
*/
func Dedupe(defs []Alias) []Alias {
	last := make(map[string]int, len(defs))
	for i, a := range defs {
		last[a.Name] = i
	}
	out := make([]Alias, 0, len(last))
	for i, a := range defs {
		if last[a.Name] == i {
			out = append(out, a)
		}
	}
	return out
}
