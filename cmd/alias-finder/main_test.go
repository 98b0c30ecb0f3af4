package main

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonioJCosta/aliasfinder/internal/config"
	"github.com/AntonioJCosta/aliasfinder/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasfinder/internal/core/domain/match"
	"github.com/AntonioJCosta/aliasfinder/internal/core/testutil"
)

func TestNewFinder(t *testing.T) {
	logger := log.New(io.Discard)
	snapshot := []alias.Alias{{Name: "gs", Command: "git status"}}

	for _, engine := range config.Engines {
		t.Run(engine, func(t *testing.T) {
			finder, err := newFinder(engine, logger)
			require.NoError(t, err)

			res, err := finder.Find(snapshot, match.Request{CommandText: "git status"})
			require.NoError(t, err)
			assert.Equal(t, snapshot, res.Matches)
		})
	}

	_, err := newFinder("pcre", logger)
	assert.Error(t, err)
}

func TestNewSource(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Source = "stdin"

	src, err := newSource(cfg, strings.NewReader("gs='git status'\n"), &testutil.MockCommandExecutor{}, log.New(io.Discard))
	require.NoError(t, err)

	got, err := src.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []alias.Alias{{Name: "gs", Command: "git status"}}, got)
}
