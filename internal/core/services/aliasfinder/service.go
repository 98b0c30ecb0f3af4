package aliasfinder

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/AntonioJCosta/aliasfinder/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasfinder/internal/core/domain/match"
	"github.com/AntonioJCosta/aliasfinder/internal/core/ports"
)

// AutomaticRounds is how many word-trimming rounds the automatic variant runs
// after probing the untrimmed command.
const AutomaticRounds = 8

type service struct {
	analyzer ports.CommandAnalyzer
	searcher ports.AliasSearcher
	logger   *log.Logger
}

// NewService creates a new alias finder service.
// It panics if the analyzer or searcher is nil. A nil logger uses the default logger.
func NewService(analyzer ports.CommandAnalyzer, searcher ports.AliasSearcher, logger *log.Logger) ports.AliasFinderService {
	if analyzer == nil {
		panic("analyzer cannot be nil")
	}
	if searcher == nil {
		panic("searcher cannot be nil")
	}
	if logger == nil {
		logger = log.Default()
	}
	return &service{analyzer: analyzer, searcher: searcher, logger: logger}
}

/*
Find runs the progressive search. The command text is probed as typed, then
with its trailing words removed one at a time, and every match is accumulated
in discovery order. Exact and Longer stop after the first probe. An empty
Result is a valid outcome, not an error. Automatic requests return the ranked
candidates of Suggest instead.
*/
func (s *service) Find(snapshot []alias.Alias, req match.Request) (match.Result, error) {
	if req.Automatic {
		sug, err := s.Suggest(snapshot, req)
		return match.Result{Matches: sug.Candidates}, err
	}

	var result match.Result

	cmd := s.analyzer.Analyze(req.CommandText)
	if cmd.IsEmpty() {
		return result, match.ErrEmptyCommand
	}

	for text := range Candidates(cmd.Words, -1) {
		if req.Cheaper && !cheaperPossible(text) {
			break
		}
		found, err := s.probe(snapshot, match.Probe{Text: text, Mode: req.Mode, Cheaper: req.Cheaper})
		if err != nil {
			return match.Result{}, err
		}
		result.Matches = append(result.Matches, found...)
		if stopAfterFirstProbe(req.Mode, len(found)) {
			break
		}
	}
	return result, nil
}

/*
Suggest runs the automatic variant. Each round probes Exact then Default for
one trim level and the search stops at the first round with any match. The
candidates are then filtered to those whose expansion is a prefix of the
typed command, optionally to cheaper names, deduplicated and ranked by name
length.
*/
func (s *service) Suggest(snapshot []alias.Alias, req match.Request) (match.Suggestion, error) {
	cmd := s.analyzer.Analyze(req.CommandText)
	if cmd.IsEmpty() {
		return match.Suggestion{}, match.ErrEmptyCommand
	}

	var candidates []alias.Alias
	for text := range Candidates(cmd.Words, AutomaticRounds) {
		var round []alias.Alias
		for _, mode := range []match.Mode{match.Exact, match.Default} {
			found, err := s.probe(snapshot, match.Probe{Text: text, Mode: mode})
			if err != nil {
				return match.Suggestion{}, err
			}
			round = append(round, found...)
		}
		candidates = append(candidates, round...)
		if stopOnFirstMatch(match.Default, len(round)) {
			break
		}
	}

	ranked := rank(candidates, cmd, req.Cheaper)
	if len(ranked) == 0 {
		return match.Suggestion{}, nil
	}
	return match.Suggestion{
		Best:       ranked[0],
		Additional: len(ranked) - 1,
		Candidates: ranked,
	}, nil
}

func (s *service) probe(snapshot []alias.Alias, probe match.Probe) ([]alias.Alias, error) {
	found, err := s.searcher.Search(snapshot, probe)
	if err != nil {
		return nil, fmt.Errorf("searching aliases for %q (%s): %w", probe.Text, probe.Mode, err)
	}
	s.logger.Debug("probe", "text", probe.Text, "mode", probe.Mode, "cheaper", probe.Cheaper, "matches", len(found))
	return found, nil
}
