package aliassource

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/AntonioJCosta/aliasfinder/internal/adapters/aliasparse"
	"github.com/AntonioJCosta/aliasfinder/internal/adapters/yamlaliases"
	"github.com/AntonioJCosta/aliasfinder/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasfinder/internal/core/ports"
	"github.com/AntonioJCosta/aliasfinder/internal/repositories/homepath"
)

// FilesSource reads aliases from shell scripts and YAML alias files.
type FilesSource struct {
	paths  []string
	logger *log.Logger
}

// NewFilesSource creates a FilesSource. Each path is a file or a directory
// whose regular files are read in name order.
func NewFilesSource(paths []string, logger *log.Logger) ports.AliasSource {
	if logger == nil {
		logger = log.Default()
	}
	return &FilesSource{paths: paths, logger: logger}
}

// Snapshot reads every configured path. Missing paths are skipped and files
// that cannot be read or parsed are reported and skipped; later files
// override earlier ones.
func (s *FilesSource) Snapshot(ctx context.Context) ([]alias.Alias, error) {
	var defs []alias.Alias
	for _, p := range s.paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		files, err := listFiles(homepath.Expand(p))
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			fileAliases, err := s.readFile(f)
			if err != nil {
				s.logger.Warn("could not read aliases", "file", homepath.Friendly(f), "err", err)
			}
			defs = append(defs, fileAliases...)
		}
	}
	return dedupe(defs, s.Describe(), s.logger), nil
}

func (s *FilesSource) readFile(path string) ([]alias.Alias, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlaliases.ReadFile(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open alias file: %w", err)
	}
	// a parse error still yields the aliases found by the line scan
	return aliasparse.ParseScript(string(data), filepath.Base(path))
}

func listFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to stat alias path %s: %w", homepath.Friendly(path), err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read alias directory %s: %w", homepath.Friendly(path), err)
	}
	var files []string
	for _, entry := range dirEntries {
		if entry.Type().IsRegular() {
			files = append(files, filepath.Join(path, entry.Name()))
		}
	}
	return files, nil
}

func (s *FilesSource) Describe() string {
	friendly := make([]string, len(s.paths))
	for i, p := range s.paths {
		friendly[i] = homepath.Friendly(homepath.Expand(p))
	}
	return "files: " + strings.Join(friendly, ", ")
}
