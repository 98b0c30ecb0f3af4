package linesearch

import (
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/AntonioJCosta/aliasfinder/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasfinder/internal/core/domain/match"
	"github.com/AntonioJCosta/aliasfinder/internal/core/ports"
)

/*
Searcher implements ports.AliasSearcher over rendered listing lines. The
primary backend is tried first; if it cannot compile or evaluate a pattern the
fallback backend is used silently.
*/
type Searcher struct {
	primary  Backend
	fallback Backend // may be nil
	logger   *log.Logger
}

// NewSearcher creates a Searcher. It panics if primary is nil.
func NewSearcher(primary, fallback Backend, logger *log.Logger) ports.AliasSearcher {
	if primary == nil {
		panic("primary backend cannot be nil")
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Searcher{primary: primary, fallback: fallback, logger: logger}
}

// NewPreferred returns a Searcher preferring the named backend, with the other as fallback.
func NewPreferred(name string, logger *log.Logger) (ports.AliasSearcher, error) {
	primary, err := BackendByName(name)
	if err != nil {
		return nil, err
	}
	var fallback Backend = StdBackend{}
	if _, ok := primary.(StdBackend); ok {
		fallback = Regexp2Backend{}
	}
	return NewSearcher(primary, fallback, logger), nil
}

// Search returns the aliases whose listing line matches the probe, in snapshot order.
func (s *Searcher) Search(snapshot []alias.Alias, probe match.Probe) ([]alias.Alias, error) {
	if probe.Cheaper && utf8.RuneCountInString(probe.Text) <= 1 {
		return nil, nil
	}
	pattern := BuildPattern(probe)

	found, err := searchWith(s.primary, pattern, snapshot)
	if err == nil {
		return found, nil
	}
	if s.fallback == nil {
		return nil, err
	}
	s.logger.Debug("regex backend failed, using fallback", "backend", s.primary.Name(), "fallback", s.fallback.Name(), "err", err)
	return searchWith(s.fallback, pattern, snapshot)
}

func searchWith(backend Backend, pattern Pattern, snapshot []alias.Alias) ([]alias.Alias, error) {
	main, err := backend.Compile(pattern.Main)
	if err != nil {
		return nil, err
	}
	var filter Matcher
	if pattern.Filter != "" {
		if filter, err = backend.Compile(pattern.Filter); err != nil {
			return nil, err
		}
	}

	var found []alias.Alias
	for _, a := range snapshot {
		line := a.Line()
		if filter != nil {
			ok, err := filter.MatchString(line)
			if err != nil {
				return nil, fmt.Errorf("%s: filtering %q: %w", backend.Name(), a.Name, err)
			}
			if !ok {
				continue
			}
		}
		ok, err := main.MatchString(line)
		if err != nil {
			return nil, fmt.Errorf("%s: matching %q: %w", backend.Name(), a.Name, err)
		}
		if ok {
			found = append(found, a)
		}
	}
	return found, nil
}
