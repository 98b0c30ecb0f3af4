package history

import "github.com/AntonioJCosta/aliasfinder/internal/core/ports"

type homeHistoryFileFinder struct{}

// NewDefaultHistoryFileFinder returns a finder that checks HISTFILE, then the
// usual zsh and bash history files in the home directory.
func NewDefaultHistoryFileFinder() ports.HistoryFileFinder {
	return homeHistoryFileFinder{}
}

func (homeHistoryFileFinder) Find() (string, error) {
	return findUserHistoryFile()
}
