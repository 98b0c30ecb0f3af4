// Package history holds what the audit command reads from the shell history.
package history

// CommandFrequency is a distinct history line and how many times it was run.
type CommandFrequency struct {
	Command string
	Count   int
}
