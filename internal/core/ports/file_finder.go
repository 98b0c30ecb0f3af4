package ports

// HistoryFileFinder locates the shell history file read by the audit command.
type HistoryFileFinder interface {
	Find() (string, error)
}
