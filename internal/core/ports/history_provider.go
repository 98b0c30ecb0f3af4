package ports

import (
	"context"

	"github.com/AntonioJCosta/aliasfinder/internal/core/domain/history"
)

type HistoryProvider interface {
	GetCommandFrequencies(ctx context.Context, scanLimit int, outputLimit int) ([]history.CommandFrequency, error)
	GetHistoryFilePath() string
	GetSourceIdentifier() string
}
