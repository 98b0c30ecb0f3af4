package command

// AnalyzedCommand holds the results of analyzing a typed command string.
type AnalyzedCommand struct {
	Normalized string   // whitespace runs collapsed, ends trimmed
	Words      []string // whitespace-delimited words of Normalized
	Length     int      // rune count of Normalized
}

// IsEmpty reports whether the command had no text besides whitespace.
func (c AnalyzedCommand) IsEmpty() bool {
	return c.Normalized == ""
}
