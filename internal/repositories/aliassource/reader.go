package aliassource

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/AntonioJCosta/aliasfinder/internal/adapters/aliasparse"
	"github.com/AntonioJCosta/aliasfinder/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasfinder/internal/core/ports"
)

// ReaderSource parses an alias listing from a reader, typically `alias | alias-finder`.
type ReaderSource struct {
	r      io.Reader
	logger *log.Logger
}

// NewReaderSource creates a ReaderSource.
func NewReaderSource(r io.Reader, logger *log.Logger) ports.AliasSource {
	if logger == nil {
		logger = log.Default()
	}
	return &ReaderSource{r: r, logger: logger}
}

// Snapshot reads the whole listing. The reader is consumed on the first call.
func (s *ReaderSource) Snapshot(_ context.Context) ([]alias.Alias, error) {
	data, err := io.ReadAll(s.r)
	if err != nil {
		return nil, fmt.Errorf("reading alias listing: %w", err)
	}
	defs, err := aliasparse.ParseListing(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing alias listing: %w", err)
	}
	return dedupe(defs, s.Describe(), s.logger), nil
}

func (s *ReaderSource) Describe() string {
	return "stdin"
}
